package search

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the settings for the document/example index client.
type Config struct {
	// Addresses are the Elasticsearch node URLs.
	Addresses []string

	// Username and Password for basic auth. Optional.
	Username string
	Password string

	// CategoriesIndex is the index holding taxonomy documents with
	// SUPERCATEGORY / CATEGORY / SUBCATEGORY keyword fields.
	CategoriesIndex string

	// ExamplesIndex is the index holding labelled example documents with a
	// dense-vector "embedding" field.
	ExamplesIndex string

	// AggregationSize is the terms-aggregation bucket cap per level.
	// Vocabularies larger than this are silently truncated.
	AggregationSize int

	// KNNSize is the number of nearest neighbours requested (k).
	KNNSize int

	// KNNCandidates is the candidate pool examined per shard (num_candidates).
	KNNCandidates int

	// Logger is the optional structured logger for query events.
	Logger Logger
}

// Logger matches the subset of internal/logger.Logger this package needs.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Default values for configuration.
const (
	DefaultAddress         = "http://localhost:9200"
	DefaultCategoriesIndex = "semcat_categories"
	DefaultExamplesIndex   = "semcat_examples"
	DefaultAggregationSize = 1000
	DefaultKNNSize         = 5
	DefaultKNNCandidates   = 10
)

// NewConfig reads the index configuration from environment variables,
// falling back to package defaults.
func NewConfig() Config {
	cfg := Config{
		Username:        os.Getenv("ELASTICSEARCH_USERNAME"),
		Password:        os.Getenv("ELASTICSEARCH_PASSWORD"),
		CategoriesIndex: os.Getenv("CATEGORIES_INDEX"),
		ExamplesIndex:   os.Getenv("EXAMPLES_INDEX"),
	}
	if v := os.Getenv("ELASTICSEARCH_URL"); v != "" {
		cfg.Addresses = []string{v}
	}
	if v := os.Getenv("TAXONOMY_AGGREGATION_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.AggregationSize = n
		}
	}
	if v := os.Getenv("EXAMPLES_KNN_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.KNNSize = n
		}
	}
	if v := os.Getenv("EXAMPLES_KNN_CANDIDATES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.KNNCandidates = n
		}
	}
	return cfg
}

// Validate ensures the configuration is usable once defaults are applied.
func (c *Config) Validate() error {
	if len(c.Addresses) == 0 {
		return fmt.Errorf("search: no Elasticsearch addresses configured")
	}
	if c.KNNCandidates < c.KNNSize {
		return fmt.Errorf("search: num_candidates (%d) must be >= k (%d)", c.KNNCandidates, c.KNNSize)
	}
	return nil
}
