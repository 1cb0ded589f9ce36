// Package logger provides the structured logger used across the service.
//
// It wraps go.uber.org/zap with a small field-map based API
// (Info/Debug/Warn/Error/Fatal) so call sites can attach context without
// constructing zap.Field values directly:
//
//	log.Info("cache hit", nil, map[string]interface{}{
//	    "query": query,
//	})
//
// The logger emits JSON to stderr with ISO8601 timestamps and stamps every
// entry with the service name and process id.
package logger
