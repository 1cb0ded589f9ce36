// Package search is the client for the document/example index.
//
// It covers the two retrieval shapes the classification pipeline needs:
//
//   - FetchTaxonomy: a terms aggregation nested three deep
//     (SUPERCATEGORY → CATEGORY → SUBCATEGORY) building the authoritative
//     hierarchy fresh per request
//   - SearchExamples: approximate k-NN over the dense-vector "embedding"
//     field of the examples index
//
// plus the create/update/delete operations behind the taxonomy management
// endpoints.
//
// Retrieval failures are returned as errors; the pipeline decides whether to
// degrade (it does — a context-free classification beats a failed request).
package search
