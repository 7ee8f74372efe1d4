package docaroo

import (
	"fmt"
	"net/http"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds file-based client configuration, intended for CLI and example
// programs that prefer a config file over environment variables.
type Config struct {
	// APIKey authenticates against the gateway. Supports ${VAR} references
	// so the key itself can stay out of the file.
	APIKey string `yaml:"api_key"`

	// BaseURL overrides the production gateway when set.
	BaseURL string `yaml:"base_url"`

	// TimeoutSeconds overrides the default HTTP timeout when positive.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// LoadConfig reads client configuration from a YAML file. Environment
// variable references in the API key are expanded.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("docaroo: failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("docaroo: failed to parse config file: %w", err)
	}

	cfg.APIKey = expandEnvVar(cfg.APIKey)

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("docaroo: config file %s does not set api_key", path)
	}

	return &cfg, nil
}

// NewClient builds a client from the loaded configuration. Explicit options
// take precedence over file values.
func (cfg *Config) NewClient(opts ...ClientOption) *Client {
	var cfgOpts []ClientOption
	if cfg.BaseURL != "" {
		cfgOpts = append(cfgOpts, WithBaseURL(cfg.BaseURL))
	}
	if cfg.TimeoutSeconds > 0 {
		cfgOpts = append(cfgOpts, WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		}))
	}

	return NewClient(cfg.APIKey, append(cfgOpts, opts...)...)
}

var envVarPattern = regexp.MustCompile(`\$\{?([A-Za-z_][A-Za-z0-9_]*)\}?`)

// expandEnvVar expands ${VAR} and $VAR references in a configuration value.
func expandEnvVar(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(name)
	})
}
