package config

import "time"

// Environment names
const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

// Defaults applied when the matching environment variable is unset
const (
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = EnvDev
	DefaultBaseURL     = "http://localhost:8080/"
	DefaultWishVariant = "classic"

	DefaultClassifierProvider = "huggingface"
	DefaultClassifierTimeout  = 15 * time.Second
	DefaultHFBaseURL          = "https://router.huggingface.co/hf-inference"
	DefaultHFModel            = "distilbert-base-uncased-finetuned-sst-2-english"
	DefaultGeminiModel        = "gemini-2.5-flash"
	DefaultONNXMaxSeqLen      = 512
	DefaultStaticLabel        = "POSITIVE"
	DefaultStaticScore        = 0.9
	DefaultCacheSize          = 1024
	DefaultCacheTTL           = time.Hour

	DefaultSessionTTL      = 24 * time.Hour
	DefaultSessionCapacity = 10000
	DefaultLuckTTL         = 48 * time.Hour

	DefaultUsageSampleInterval = 30 * time.Second

	DefaultOTELEndpoint    = "localhost:4318"
	DefaultOTELSampleRatio = 1.0

	DefaultRateLimitRequests = 1000
	DefaultRateLimitWindow   = 5 * time.Minute
	DefaultMaxBodyBytes      = 1 << 20

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 0 // SSE streams stay open
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// Known classifier providers
var validProviders = map[string]bool{
	"huggingface": true,
	"onnx":        true,
	"gemini":      true,
	"static":      true,
}

// Example values shipped in .env.example
const (
	exampleAPIKey  = "generate_with_openssl_rand_hex_32"
	exampleHFToken = "hf_your_token_here"
)
