package embedding

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the settings for the embedding service client.
type Config struct {
	// Endpoint is the full URL of the embedding API
	// (e.g. http://localhost:11434/api/embeddings).
	Endpoint string

	// Model is the embedding model name sent with every request.
	Model string

	// HTTPTimeoutS bounds each embedding call in seconds (default 30).
	HTTPTimeoutS int

	// Dimensions, when non-zero, is the expected vector length. Responses
	// with a different length are rejected.
	Dimensions int
}

// Default values for configuration.
const (
	DefaultEndpoint     = "http://localhost:11434/api/embeddings"
	DefaultModel        = "paraphrase-multilingual"
	DefaultHTTPTimeoutS = 30
)

// NewConfig reads the embedding configuration from environment variables.
func NewConfig() Config {
	cfg := Config{
		Endpoint: os.Getenv("EMBEDDING_ENDPOINT"),
		Model:    os.Getenv("EMBEDDING_MODEL"),
	}
	if v := os.Getenv("EMBEDDING_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPTimeoutS = n
		}
	}
	if v := os.Getenv("EMBEDDING_DIMENSIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Dimensions = n
		}
	}
	return cfg
}

// Validate ensures required fields are present once defaults are applied.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("embedding: missing endpoint")
	}
	if c.Model == "" {
		return fmt.Errorf("embedding: missing model")
	}
	return nil
}
