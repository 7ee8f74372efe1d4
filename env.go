package docaroo

import (
	"fmt"
	"os"
)

// Environment variable names for configuration.
const (
	// EnvAPIKey is the environment variable for the API key.
	EnvAPIKey = "DOCAROO_API_KEY"
	// EnvBaseURL is the environment variable for a base URL override.
	EnvBaseURL = "DOCAROO_BASE_URL"
)

// NewFromEnv creates a new client using environment variables for
// configuration. DOCAROO_API_KEY is required; DOCAROO_BASE_URL overrides the
// production gateway when set. Explicit options take precedence over
// environment values.
//
// Example:
//
//	client, err := docaroo.NewFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewFromEnv(opts ...ClientOption) (*Client, error) {
	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("docaroo: %s environment variable is required", EnvAPIKey)
	}

	// Prepend env var options so explicit options can override them
	var envOpts []ClientOption
	if baseURL := os.Getenv(EnvBaseURL); baseURL != "" {
		envOpts = append(envOpts, WithBaseURL(baseURL))
	}

	allOpts := append(envOpts, opts...)

	return NewClient(apiKey, allOpts...), nil
}
