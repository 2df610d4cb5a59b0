package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables holding the generation endpoint settings.
const (
	EnvAPIKey   = "CHANGELOG_API_KEY"
	EnvEndpoint = "CHANGELOG_API_URL"

	// Read when the variables above are unset or empty.
	FallbackEnvAPIKey   = "CLAUDE_API_KEY"
	FallbackEnvEndpoint = "ANTHROPIC_PROXY"
)

// Credentials are the values read from the process environment at startup.
type Credentials struct {
	APIKey   string
	Endpoint string
}

// LoadCredentials reads the API key and endpoint from the environment.
// Variables from a .env file in the working directory are loaded first
// without overriding anything already set. Missing values are left empty.
func LoadCredentials() Credentials {
	_ = godotenv.Load()

	return credentialsFromEnv()
}

// LoadCredentialsFile behaves like LoadCredentials but reads the given
// env files instead of ./.env. A missing file is an error.
func LoadCredentialsFile(paths ...string) (Credentials, error) {
	if err := godotenv.Load(paths...); err != nil {
		return Credentials{}, err
	}
	return credentialsFromEnv(), nil
}

func credentialsFromEnv() Credentials {
	return Credentials{
		APIKey:   getenv(EnvAPIKey, FallbackEnvAPIKey),
		Endpoint: getenv(EnvEndpoint, FallbackEnvEndpoint),
	}
}

// getenv returns the first non-empty variable among names.
func getenv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
