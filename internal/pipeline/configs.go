package pipeline

import (
	"os"
	"strconv"
	"time"
)

// Config carries the pipeline-level tunables: the similarity cut-off for
// retrieved examples plus the cache and rate-limit settings handed to the
// component constructors.
type Config struct {
	// SimilarityThreshold is the minimum index score a retrieved example
	// needs to enter the prompt context.
	SimilarityThreshold float64

	// CacheEnabled toggles the response cache.
	CacheEnabled bool

	// CacheTTL is the response cache entry lifetime from write time.
	CacheTTL time.Duration

	// RateLimitEnabled toggles admission control.
	RateLimitEnabled bool

	// RateLimitMax is the maximum number of non-cached requests per
	// identity inside one window.
	RateLimitMax int64

	// RateLimitWindow is the counter TTL set on first write.
	RateLimitWindow time.Duration
}

// Default values for configuration.
const (
	DefaultSimilarityThreshold = 0.9
	DefaultCacheTTL            = time.Hour
	DefaultRateLimitMax        = 10000
	DefaultRateLimitWindow     = 60 * time.Second
)

// NewConfig reads the pipeline configuration from environment variables,
// falling back to package defaults.
func NewConfig() Config {
	cfg := Config{
		SimilarityThreshold: DefaultSimilarityThreshold,
		CacheEnabled:        true,
		CacheTTL:            DefaultCacheTTL,
		RateLimitEnabled:    true,
		RateLimitMax:        DefaultRateLimitMax,
		RateLimitWindow:     DefaultRateLimitWindow,
	}
	if v := os.Getenv("EXAMPLES_SIMILARITY_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.SimilarityThreshold = f
		}
	}
	if v := os.Getenv("CACHE_ENABLED"); v != "" {
		cfg.CacheEnabled = parseBool(v)
	}
	if v := os.Getenv("CACHE_EXPIRATION_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CacheTTL = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		cfg.RateLimitEnabled = parseBool(v)
	}
	if v := os.Getenv("RATE_LIMIT_MAX_REQUESTS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.RateLimitMax = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateLimitWindow = time.Duration(n) * time.Second
		}
	}
	return cfg
}

func parseBool(v string) bool {
	switch v {
	case "true", "1", "t", "y", "yes", "True", "TRUE":
		return true
	}
	return false
}
