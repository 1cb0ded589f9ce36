package embedding

import "context"

// Embedder turns text into a fixed-length numeric vector.
// Implemented by the concrete *Client type.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

var _ Embedder = (*Client)(nil)
