package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"API_KEY",
	"PUBLIC_BASE_URL",
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using example values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("API_KEY") == exampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	provider := strings.ToLower(os.Getenv("CLASSIFIER_PROVIDER"))
	if provider == "" || provider == DefaultClassifierProvider {
		switch os.Getenv("HF_API_TOKEN") {
		case "":
			warnings = append(warnings, "HF_API_TOKEN is not set - the hosted classifier may reject anonymous requests and every wish will get the fallback result")
		case exampleHFToken:
			warnings = append(warnings, "HF_API_TOKEN appears to be using the example value")
		}
	}

	if provider == "static" {
		warnings = append(warnings, "CLASSIFIER_PROVIDER=static returns a fixed sentiment for every wish")
	}

	env := os.Getenv("ENVIRONMENT")
	if (env == EnvProd || env == "production") && strings.Contains(os.Getenv("PUBLIC_BASE_URL"), "localhost") {
		warnings = append(warnings, "PUBLIC_BASE_URL points at localhost in production - share links will not work for friends")
	}

	return warnings, nil
}
