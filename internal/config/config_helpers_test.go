package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetEnvAsInt tests the getEnvAsInt helper function
func TestGetEnvAsInt(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_INT_VAR")
		result := getEnvAsInt("TEST_INT_VAR", 42)
		assert.Equal(t, 42, result)
	})

	t.Run("parses valid integer from env var", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "100")
		result := getEnvAsInt("TEST_INT_VAR", 42)
		assert.Equal(t, 100, result)
	})

	t.Run("returns default for invalid integer", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "not-a-number")
		result := getEnvAsInt("TEST_INT_VAR", 42)
		assert.Equal(t, 42, result, "Should return default for invalid integer")
	})

	t.Run("parses negative integers", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "-10")
		result := getEnvAsInt("TEST_INT_VAR", 42)
		assert.Equal(t, -10, result)
	})

	t.Run("parses zero", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "0")
		result := getEnvAsInt("TEST_INT_VAR", 42)
		assert.Equal(t, 0, result)
	})

	t.Run("returns default for float values", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "42.5")
		result := getEnvAsInt("TEST_INT_VAR", 10)
		assert.Equal(t, 10, result, "Should return default for float values")
	})

	t.Run("returns default for empty string", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "")
		result := getEnvAsInt("TEST_INT_VAR", 42)
		assert.Equal(t, 42, result)
	})
}

// TestGetEnvAsDuration tests the getEnvAsDuration helper function
func TestGetEnvAsList(t *testing.T) {
	t.Run("returns nil when env var not set", func(t *testing.T) {
		t.Setenv("TEST_LIST", "")
		assert.Nil(t, getEnvAsList("TEST_LIST"))
	})

	t.Run("splits and trims entries", func(t *testing.T) {
		t.Setenv("TEST_LIST", " 10.0.0.1 ,,192.168.1.1 ")
		assert.Equal(t, []string{"10.0.0.1", "192.168.1.1"}, getEnvAsList("TEST_LIST"))
	})
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_DURATION_VAR")
		result := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		assert.Equal(t, 5*time.Minute, result)
	})

	t.Run("parses valid duration from env var", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "10m")
		result := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		assert.Equal(t, 10*time.Minute, result)
	})

	t.Run("parses seconds", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "30s")
		result := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		assert.Equal(t, 30*time.Second, result)
	})

	t.Run("parses hours", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "2h")
		result := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		assert.Equal(t, 2*time.Hour, result)
	})

	t.Run("parses complex duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "1h30m45s")
		result := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		expected := 1*time.Hour + 30*time.Minute + 45*time.Second
		assert.Equal(t, expected, result)
	})

	t.Run("returns default for invalid duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "not-a-duration")
		result := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		assert.Equal(t, 5*time.Minute, result, "Should return default for invalid duration")
	})

	t.Run("returns default for plain numbers without unit", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "100")
		result := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		assert.Equal(t, 5*time.Minute, result, "Should return default for numbers without unit")
	})

	t.Run("returns default for empty string", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "")
		result := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		assert.Equal(t, 5*time.Minute, result)
	})

	t.Run("parses nanoseconds", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "500ns")
		result := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		assert.Equal(t, 500*time.Nanosecond, result)
	})

	t.Run("parses microseconds", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "500us")
		result := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		assert.Equal(t, 500*time.Microsecond, result)
	})

	t.Run("parses milliseconds", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "500ms")
		result := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		assert.Equal(t, 500*time.Millisecond, result)
	})
}


func TestGetEnvAsFloat(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_FLOAT_VAR")
		assert.Equal(t, 0.9, getEnvAsFloat("TEST_FLOAT_VAR", 0.9))
	})

	t.Run("parses decimal", func(t *testing.T) {
		t.Setenv("TEST_FLOAT_VAR", "0.25")
		assert.Equal(t, 0.25, getEnvAsFloat("TEST_FLOAT_VAR", 0.9))
	})

	t.Run("returns default for invalid float", func(t *testing.T) {
		t.Setenv("TEST_FLOAT_VAR", "lots")
		assert.Equal(t, 0.9, getEnvAsFloat("TEST_FLOAT_VAR", 0.9))
	})
}

func TestGetEnvAsBool(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_BOOL_VAR")
		assert.True(t, getEnvAsBool("TEST_BOOL_VAR", true))
	})

	t.Run("parses true variants", func(t *testing.T) {
		for _, v := range []string{"true", "TRUE", "1", "t"} {
			t.Setenv("TEST_BOOL_VAR", v)
			assert.True(t, getEnvAsBool("TEST_BOOL_VAR", false), v)
		}
	})

	t.Run("returns default for garbage", func(t *testing.T) {
		t.Setenv("TEST_BOOL_VAR", "yes please")
		assert.False(t, getEnvAsBool("TEST_BOOL_VAR", false))
	})
}

// TestLoad_ClassifierConfig tests that classifier and session settings are loaded correctly
func TestLoad_ClassifierConfig(t *testing.T) {
	t.Run("loads default classifier configuration", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "huggingface", cfg.ClassifierProvider)
		assert.Equal(t, 15*time.Second, cfg.ClassifierTimeout)
		assert.Equal(t, DefaultHFModel, cfg.HFModel)
		assert.Equal(t, 1024, cfg.ClassifierCacheSize)
		assert.Equal(t, time.Hour, cfg.ClassifierCacheTTL)
		assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
		assert.Equal(t, 48*time.Hour, cfg.LuckTTL)
		assert.Equal(t, "classic", cfg.WishVariant)
	})

	t.Run("loads custom classifier configuration", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("CLASSIFIER_PROVIDER", "Static")
		t.Setenv("STATIC_LABEL", "NEGATIVE")
		t.Setenv("STATIC_SCORE", "0.4")
		t.Setenv("CLASSIFIER_CACHE_TTL", "10m")
		t.Setenv("WISH_VARIANT", "festive")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "static", cfg.ClassifierProvider)
		assert.Equal(t, "NEGATIVE", cfg.StaticLabel)
		assert.Equal(t, 0.4, cfg.StaticScore)
		assert.Equal(t, 10*time.Minute, cfg.ClassifierCacheTTL)
		assert.Equal(t, "festive", cfg.WishVariant)
	})

	t.Run("uses defaults for invalid values", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("CLASSIFIER_TIMEOUT", "soon")
		t.Setenv("SESSION_CAPACITY", "many")
		t.Setenv("OTEL_ENABLED", "maybe")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 15*time.Second, cfg.ClassifierTimeout)
		assert.Equal(t, 10000, cfg.SessionCapacity)
		assert.False(t, cfg.OTELEnabled)
	})
}
