package classifier

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the settings for the LLM completion client.
type Config struct {
	// BaseURL is the full URL of the OpenAI-compatible chat completions
	// endpoint (e.g. https://api.openai.com/v1/chat/completions).
	BaseURL string

	// APIKey is sent as a bearer token. Optional for local deployments.
	APIKey string

	// Model is the completion model name.
	Model string

	// HTTPTimeoutS bounds each completion call in seconds.
	HTTPTimeoutS int
}

// Logger matches the subset of internal/logger.Logger this package needs.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Default values for configuration.
const (
	DefaultModel        = "gpt-4o-mini"
	DefaultHTTPTimeoutS = 60
)

// NewConfig reads the completion client configuration from environment
// variables.
func NewConfig() Config {
	cfg := Config{
		BaseURL: os.Getenv("LLM_API_URL"),
		APIKey:  os.Getenv("LLM_API_KEY"),
		Model:   os.Getenv("LLM_MODEL"),
	}
	if v := os.Getenv("LLM_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPTimeoutS = n
		}
	}
	return cfg
}

// Validate ensures required fields are present once defaults are applied.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("classifier: missing completion endpoint")
	}
	if c.Model == "" {
		return fmt.Errorf("classifier: missing model")
	}
	return nil
}
