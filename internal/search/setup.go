package search

import (
	"fmt"

	elasticsearch "github.com/elastic/go-elasticsearch/v8"
)

// Client wraps the Elasticsearch client with the retrieval operations the
// classification pipeline needs: the three-level taxonomy aggregation and
// approximate nearest-neighbour example search, plus the document CRUD used
// by the taxonomy management endpoints.
//
// Client implements the Index interface.
type Client struct {
	es     *elasticsearch.Client
	cfg    Config
	logger Logger
}

// NewClient creates an index client from Config.
// Missing fields are filled with package defaults before validation.
func NewClient(cfg Config) (*Client, error) {
	if len(cfg.Addresses) == 0 {
		cfg.Addresses = []string{DefaultAddress}
	}
	if cfg.CategoriesIndex == "" {
		cfg.CategoriesIndex = DefaultCategoriesIndex
	}
	if cfg.ExamplesIndex == "" {
		cfg.ExamplesIndex = DefaultExamplesIndex
	}
	if cfg.AggregationSize == 0 {
		cfg.AggregationSize = DefaultAggregationSize
	}
	if cfg.KNNSize == 0 {
		cfg.KNNSize = DefaultKNNSize
	}
	if cfg.KNNCandidates == 0 {
		cfg.KNNCandidates = DefaultKNNCandidates
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("search: failed to create Elasticsearch client: %w", err)
	}

	return &Client{es: es, cfg: cfg, logger: cfg.Logger}, nil
}
