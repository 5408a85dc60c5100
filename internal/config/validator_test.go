package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_MissingVersion(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "")
	os.Unsetenv("ENV_SCHEMA_VERSION")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("PUBLIC_BASE_URL", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), "PUBLIC_BASE_URL")
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("API_KEY", "0f3c9a")
	t.Setenv("PUBLIC_BASE_URL", "https://wish.example.com/")
	t.Setenv("CLASSIFIER_PROVIDER", "")
	t.Setenv("HF_API_TOKEN", "hf_real")
	t.Setenv("ENVIRONMENT", "")
}

func TestValidateEnvWithWarnings_Clean(t *testing.T) {
	setRequired(t)

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestValidateEnvWithWarnings_InsecureDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("API_KEY", "generate_with_openssl_rand_hex_32")
	t.Setenv("HF_API_TOKEN", "hf_your_token_here")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err, "Should not error even with warnings")
	require.Len(t, warnings, 2, "Should have 2 warnings")
	assert.Contains(t, warnings[0], "API_KEY")
	assert.Contains(t, warnings[1], "HF_API_TOKEN")
}

func TestValidateEnvWithWarnings_ProviderAndURL(t *testing.T) {
	setRequired(t)
	t.Setenv("CLASSIFIER_PROVIDER", "static")
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("PUBLIC_BASE_URL", "http://localhost:8080/")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "static")
	assert.Contains(t, warnings[1], "PUBLIC_BASE_URL")
}
