package classifier

import (
	"context"

	"github.com/semcat/semcat/internal/search"
)

// Labeler is the contract the pipeline depends on for classification.
// Implemented by the concrete *Classifier type.
type Labeler interface {
	Classify(ctx context.Context, query string, taxonomy search.Taxonomy, examples []search.Example) Result
}

var _ Labeler = (*Classifier)(nil)
