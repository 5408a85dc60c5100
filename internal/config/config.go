package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string
	APIKey      string // API key for admin endpoints

	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int

	BaseURL        string // public page the share link points at
	WishVariant    string
	WishPolicyFile string

	ClassifierProvider  string
	ClassifierTimeout   time.Duration
	HFAPIToken          string
	HFBaseURL           string
	HFModel             string
	ONNXRuntimeLib      string
	ONNXModelPath       string
	ONNXTokenizerPath   string
	ONNXMaxSeqLen       int
	GeminiAPIKey        string
	GeminiModel         string
	StaticLabel         string
	StaticScore         float64
	ClassifierCacheSize int
	ClassifierCacheTTL  time.Duration

	SessionTTL          time.Duration
	SessionCapacity     int
	SessionCookieSecure bool

	RedisURL string
	LuckTTL  time.Duration

	UsageSampleInterval time.Duration // 0 disables the usage sampler

	OTELEnabled     bool
	OTELEndpoint    string
	OTELInsecure    bool
	OTELSampleRatio float64

	RateLimitRequests int
	RateLimitWindow   time.Duration
	MaxBodyBytes      int64
	TrustedProxies    []string // peers whose X-Forwarded-For is believed

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:     getEnv("VERSION", "dev"),
		APIKey:      getEnv("API_KEY", ""),

		LogFile:       getEnv("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvAsInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: getEnvAsInt("LOG_MAX_AGE_DAYS", 30),

		BaseURL:        getEnv("PUBLIC_BASE_URL", DefaultBaseURL),
		WishVariant:    getEnv("WISH_VARIANT", DefaultWishVariant),
		WishPolicyFile: getEnv("WISH_POLICY_FILE", ""),

		ClassifierProvider:  strings.ToLower(getEnv("CLASSIFIER_PROVIDER", DefaultClassifierProvider)),
		ClassifierTimeout:   getEnvAsDuration("CLASSIFIER_TIMEOUT", DefaultClassifierTimeout),
		HFAPIToken:          getEnv("HF_API_TOKEN", ""),
		HFBaseURL:           getEnv("HF_BASE_URL", DefaultHFBaseURL),
		HFModel:             getEnv("HF_MODEL", DefaultHFModel),
		ONNXRuntimeLib:      getEnv("ONNX_RUNTIME_LIB", ""),
		ONNXModelPath:       getEnv("ONNX_MODEL_PATH", ""),
		ONNXTokenizerPath:   getEnv("ONNX_TOKENIZER_PATH", ""),
		ONNXMaxSeqLen:       getEnvAsInt("ONNX_MAX_SEQ_LEN", DefaultONNXMaxSeqLen),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		GeminiModel:         getEnv("GEMINI_MODEL", DefaultGeminiModel),
		StaticLabel:         getEnv("STATIC_LABEL", DefaultStaticLabel),
		StaticScore:         getEnvAsFloat("STATIC_SCORE", DefaultStaticScore),
		ClassifierCacheSize: getEnvAsInt("CLASSIFIER_CACHE_SIZE", DefaultCacheSize),
		ClassifierCacheTTL:  getEnvAsDuration("CLASSIFIER_CACHE_TTL", DefaultCacheTTL),

		SessionTTL:          getEnvAsDuration("SESSION_TTL", DefaultSessionTTL),
		SessionCapacity:     getEnvAsInt("SESSION_CAPACITY", DefaultSessionCapacity),
		SessionCookieSecure: getEnvAsBool("SESSION_COOKIE_SECURE", false),

		RedisURL: getEnv("REDIS_URL", ""),
		LuckTTL:  getEnvAsDuration("LUCK_TTL", DefaultLuckTTL),

		UsageSampleInterval: getEnvAsDuration("USAGE_SAMPLE_INTERVAL", DefaultUsageSampleInterval),

		OTELEnabled:     getEnvAsBool("OTEL_ENABLED", false),
		OTELEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", DefaultOTELEndpoint),
		OTELInsecure:    getEnvAsBool("OTEL_INSECURE", true),
		OTELSampleRatio: getEnvAsFloat("OTEL_SAMPLE_RATIO", DefaultOTELSampleRatio),

		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", DefaultRateLimitRequests),
		RateLimitWindow:   getEnvAsDuration("RATE_LIMIT_WINDOW", DefaultRateLimitWindow),
		MaxBodyBytes:      int64(getEnvAsInt("MAX_BODY_BYTES", DefaultMaxBodyBytes)),
		TrustedProxies:    getEnvAsList("TRUSTED_PROXIES"),

		ReadTimeout:     getEnvAsDuration("HTTP_READ_TIMEOUT", DefaultReadTimeout),
		WriteTimeout:    getEnvAsDuration("HTTP_WRITE_TIMEOUT", DefaultWriteTimeout),
		IdleTimeout:     getEnvAsDuration("HTTP_IDLE_TIMEOUT", DefaultIdleTimeout),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// Validate checks ranges and cross-field constraints. Load does not call it so
// that tooling can read a partial configuration.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat))
	}
	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("PUBLIC_BASE_URL must be an absolute URL, got %q", c.BaseURL))
	}
	if !validProviders[c.ClassifierProvider] {
		errs = append(errs, fmt.Errorf("unknown CLASSIFIER_PROVIDER %q", c.ClassifierProvider))
	}
	switch c.ClassifierProvider {
	case "onnx":
		if c.ONNXModelPath == "" || c.ONNXTokenizerPath == "" {
			errs = append(errs, errors.New("ONNX_MODEL_PATH and ONNX_TOKENIZER_PATH are required for the onnx provider"))
		}
	case "gemini":
		if c.GeminiAPIKey == "" {
			errs = append(errs, errors.New("GEMINI_API_KEY is required for the gemini provider"))
		}
	}
	if c.ClassifierTimeout <= 0 {
		errs = append(errs, errors.New("CLASSIFIER_TIMEOUT must be positive"))
	}
	if c.StaticScore < 0 || c.StaticScore > 1 {
		errs = append(errs, fmt.Errorf("STATIC_SCORE must be within [0, 1], got %v", c.StaticScore))
	}
	if c.SessionTTL <= 0 || c.SessionCapacity <= 0 {
		errs = append(errs, errors.New("SESSION_TTL and SESSION_CAPACITY must be positive"))
	}
	if c.OTELSampleRatio < 0 || c.OTELSampleRatio > 1 {
		errs = append(errs, fmt.Errorf("OTEL_SAMPLE_RATIO must be within [0, 1], got %v", c.OTELSampleRatio))
	}
	if c.UsageSampleInterval < 0 {
		errs = append(errs, errors.New("USAGE_SAMPLE_INTERVAL must not be negative"))
	}
	for _, proxy := range c.TrustedProxies {
		if net.ParseIP(proxy) == nil {
			errs = append(errs, fmt.Errorf("TRUSTED_PROXIES entries must be IP addresses, got %q", proxy))
		}
	}
	if c.RateLimitRequests <= 0 || c.RateLimitWindow <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW must be positive"))
	}

	return errors.Join(errs...)
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProd || c.Environment == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the integer value of key, or defaultValue when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsFloat returns the float value of key, or defaultValue when unset or malformed
func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool returns the boolean value of key, or defaultValue when unset or malformed
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses values like "30s" or "1h30m"; plain numbers fall back to defaultValue
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated value, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
