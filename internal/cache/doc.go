// Package cache implements the cache-aside response store for classification
// results.
//
// The key is the raw query string with no normalisation; lookups are
// exact-match only. Values are JSON-encoded label triples with a TTL
// counted from write time. An unreachable or disabled backing store degrades
// to always-miss / always-no-op and never fails a request.
package cache
