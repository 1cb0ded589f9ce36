// Package embedding is the client for the external embedding service.
//
// The service speaks a minimal JSON protocol: POST {"model", "prompt"} and
// read back {"embedding": [...]}. The per-call timeout (default 30s) bounds
// the worst-case latency of the classification pipeline's first external
// call.
//
// Unlike taxonomy and example retrieval, an embedding failure is fatal to
// the classification request: without the query vector there is nothing to
// search with.
package embedding
