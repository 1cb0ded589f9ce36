package embedding

import "errors"

// ErrNoEmbedding is returned when the embedding service fails to produce a
// vector, whatever the underlying cause (transport, status, payload shape).
var ErrNoEmbedding = errors.New("embedding: no embedding produced")
