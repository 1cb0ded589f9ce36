// Package metrics exposes Prometheus metrics for the classification
// pipeline: request outcomes, cache hit/miss counts, rate-limit rejections,
// degraded retrievals and end-to-end latency.
//
// Each process keeps its own isolated registry with a constant service
// label, served on a dedicated /metrics listener separate from the API
// server.
package metrics
