package docaroo

import (
	"strings"
	"testing"
)

// TestNewFromEnv verifies environment configuration.
func TestNewFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvBaseURL, "https://sandbox.example.com")

	client, err := NewFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.apiKey != "env-key" {
		t.Errorf("expected apiKey env-key, got %s", client.apiKey)
	}
	if client.BaseURL() != "https://sandbox.example.com" {
		t.Errorf("expected env base URL, got %s", client.BaseURL())
	}
}

// TestNewFromEnv_MissingKey verifies the required variable is enforced.
func TestNewFromEnv_MissingKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	_, err := NewFromEnv()
	if err == nil {
		t.Fatal("expected error when API key is unset")
	}
	if !strings.Contains(err.Error(), EnvAPIKey) {
		t.Errorf("error should name the missing variable: %v", err)
	}
}

// TestNewFromEnv_ExplicitOverride verifies explicit options beat env values.
func TestNewFromEnv_ExplicitOverride(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvBaseURL, "https://sandbox.example.com")

	client, err := NewFromEnv(WithBaseURL("https://override.example.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.BaseURL() != "https://override.example.com" {
		t.Errorf("expected explicit base URL to win, got %s", client.BaseURL())
	}
}
