// Package pipeline sequences the classification request through admission,
// cache lookup, retrieval, classification and accounting.
//
// The degrade-vs-fail policy lives here: admission rejection and embedding
// failure are the only terminal error outcomes; taxonomy and example
// retrieval degrade to empty context, and a failed completion call surfaces
// as a successful response carrying sentinel labels. Cache hits return
// before the rate counter is ever touched — cached answers are free.
package pipeline
