package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)
		// Must set API_KEY or it fails validation
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
		assert.Equal(t, "test-key", cfg.APIKey)
		assert.Empty(t, cfg.RedisURL, "Friend luck stays in memory by default")
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("PORT", "3000")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("PUBLIC_BASE_URL", "https://wish.example.com/")
		t.Setenv("REDIS_URL", "redis://cache:6379/0")
		t.Setenv("SESSION_TTL", "2h")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 10.0.0.2,")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, "https://wish.example.com/", cfg.BaseURL)
		assert.Equal(t, "redis://cache:6379/0", cfg.RedisURL)
		assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.True(t, cfg.IsProduction())
	})

	t.Run("returns error when API_KEY is missing", func(t *testing.T) {
		clearEnvVars(t)
		os.Unsetenv("API_KEY")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "API_KEY")
		assert.Contains(t, err.Error(), "must be set")
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT")
	})

	t.Run("handles negative port number", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("PORT", "-1")

		// Loads; Validate rejects it
		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, -1, cfg.Port)
		assert.Error(t, cfg.Validate())
	})

	t.Run("handles PORT edge cases", func(t *testing.T) {
		testCases := []struct {
			name        string
			portValue   string
			shouldError bool
		}{
			{"zero port", "0", false},
			{"max valid port", "65535", false},
			{"above max port", "65536", false}, // Loads but invalid for use
			{"float port", "8080.5", true},
			{"empty string", "", true},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv("API_KEY", "test-key")
				t.Setenv("PORT", tc.portValue)

				_, err := Load()

				if tc.shouldError {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func(t *testing.T) *Config {
		t.Helper()
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		cfg, err := Load()
		require.NoError(t, err)
		return cfg
	}

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, valid(t).Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"port above range", func(c *Config) { c.Port = 70000 }, "PORT"},
		{"unknown log format", func(c *Config) { c.LogFormat = "xml" }, "LOG_FORMAT"},
		{"relative base url", func(c *Config) { c.BaseURL = "/wish" }, "PUBLIC_BASE_URL"},
		{"unknown provider", func(c *Config) { c.ClassifierProvider = "crystal-ball" }, "CLASSIFIER_PROVIDER"},
		{"onnx without model", func(c *Config) { c.ClassifierProvider = "onnx" }, "ONNX_MODEL_PATH"},
		{"gemini without key", func(c *Config) { c.ClassifierProvider = "gemini" }, "GEMINI_API_KEY"},
		{"static score out of range", func(c *Config) { c.StaticScore = 1.5 }, "STATIC_SCORE"},
		{"zero session ttl", func(c *Config) { c.SessionTTL = 0 }, "SESSION_TTL"},
		{"sample ratio out of range", func(c *Config) { c.OTELSampleRatio = -0.1 }, "OTEL_SAMPLE_RATIO"},
		{"no rate limit", func(c *Config) { c.RateLimitRequests = 0 }, "RATE_LIMIT_REQUESTS"},
		{"proxy is not an ip", func(c *Config) { c.TrustedProxies = []string{"proxy.internal"} }, "TRUSTED_PROXIES"},
		{"negative usage interval", func(c *Config) { c.UsageSampleInterval = -time.Second }, "USAGE_SAMPLE_INTERVAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid(t)
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("collects every problem", func(t *testing.T) {
		cfg := valid(t)
		cfg.Port = 0
		cfg.StaticScore = -1

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PORT")
		assert.Contains(t, err.Error(), "STATIC_SCORE")
	})
}

func TestConfig_RealWorldScenarios(t *testing.T) {
	t.Run("typical development environment", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "dev-api-key-12345")
		t.Setenv("ENVIRONMENT", "dev")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("CLASSIFIER_PROVIDER", "static")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.False(t, cfg.IsProduction())
		assert.NoError(t, cfg.Validate())
	})

	t.Run("typical production environment", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "prod-secure-key")
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("LOG_LEVEL", "warn")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("LOG_FILE", "/var/log/wish-eval/app.log")
		t.Setenv("PUBLIC_BASE_URL", "https://wish.example.com/")
		t.Setenv("SESSION_COOKIE_SECURE", "true")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat, "Prod should use JSON logging")
		assert.Equal(t, "/var/log/wish-eval/app.log", cfg.LogFile)
		assert.True(t, cfg.SessionCookieSecure)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("docker compose environment", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "docker-key")
		t.Setenv("REDIS_URL", "redis://redis:6379/0") // Docker service name
		t.Setenv("OTEL_ENABLED", "true")
		t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "jaeger:4318")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "redis://redis:6379/0", cfg.RedisURL)
		assert.True(t, cfg.OTELEnabled)
		assert.Equal(t, "jaeger:4318", cfg.OTELEndpoint)
	})
}

// Helper function to clear environment variables
func clearEnvVars(t *testing.T) {
	t.Helper()

	// Clear all config-related env vars to ensure clean test state
	envVars := []string{
		"PORT", "API_KEY", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE",
		"VERSION", "ENVIRONMENT", "PUBLIC_BASE_URL", "WISH_VARIANT", "WISH_POLICY_FILE",
		"CLASSIFIER_PROVIDER", "CLASSIFIER_TIMEOUT", "CLASSIFIER_CACHE_SIZE", "CLASSIFIER_CACHE_TTL",
		"HF_API_TOKEN", "HF_MODEL", "GEMINI_API_KEY", "STATIC_LABEL", "STATIC_SCORE",
		"SESSION_TTL", "SESSION_CAPACITY", "SESSION_COOKIE_SECURE",
		"REDIS_URL", "LUCK_TTL", "USAGE_SAMPLE_INTERVAL", "TRUSTED_PROXIES", "OTEL_ENABLED", "OTEL_EXPORTER_OTLP_ENDPOINT",
	}

	for _, key := range envVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
