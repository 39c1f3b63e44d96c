package imagedit

import (
	"errors"
	"os"
)

// EnvAPIKey is the environment variable holding the Gemini API key.
const EnvAPIKey = "GEMINI_API_KEY"

// ErrMissingAPIKey is returned when no API key is present in the environment.
var ErrMissingAPIKey = errors.New("missing " + EnvAPIKey + " environment variable")

// APIKeyFromEnv reads the API key from the process environment.
func APIKeyFromEnv() (string, error) {
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key, nil
	}
	return "", ErrMissingAPIKey
}
