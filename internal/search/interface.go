package search

import "context"

// Index is the contract the pipeline and taxonomy handlers depend on.
// It is implemented by the concrete *Client type.
type Index interface {
	// FetchTaxonomy returns the full three-level hierarchy.
	FetchTaxonomy(ctx context.Context) (Taxonomy, error)

	// SearchExamples returns the k nearest labelled examples for the
	// query embedding, unfiltered.
	SearchExamples(ctx context.Context, embedding []float64) ([]Example, error)

	// Taxonomy entry management.
	IndexEntry(ctx context.Context, id string, entry Entry) (string, error)
	UpdateEntry(ctx context.Context, id string, entry Entry) error
	DeleteEntry(ctx context.Context, id string) error
}

var _ Index = (*Client)(nil)
