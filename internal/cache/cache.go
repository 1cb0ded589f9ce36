package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/semcat/semcat/internal/classifier"
	"github.com/semcat/semcat/internal/redisclient"
)

// ResponseCache is a cache-aside store for classification results, keyed by
// the literal query text. Lookups are exact-match only: case and whitespace
// differences are distinct keys.
//
// Every failure of the backing store degrades to a miss (on Get) or a no-op
// (on Put). The cache exists to protect the LLM from repeated cost, so an
// unreachable cache must never fail the request it was meant to cheapen.
type ResponseCache struct {
	store   redisclient.Store
	ttl     time.Duration
	enabled bool
	logger  Logger
}

// Logger matches the subset of internal/logger.Logger this package needs.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
}

// New constructs a ResponseCache.
//
// When enabled is false every Get is a miss and every Put a no-op; the
// pipeline does not need to know the difference.
func New(store redisclient.Store, ttl time.Duration, enabled bool, logger Logger) *ResponseCache {
	return &ResponseCache{
		store:   store,
		ttl:     ttl,
		enabled: enabled,
		logger:  logger,
	}
}

// Get looks up the cached result for the given query.
// The second return value reports whether a usable entry was found.
func (c *ResponseCache) Get(ctx context.Context, query string) (classifier.Result, bool) {
	if !c.enabled {
		return classifier.Result{}, false
	}

	raw, err := c.store.Get(ctx, query)
	if err != nil {
		if !redisclient.IsNilError(err) && c.logger != nil {
			c.logger.Warn("cache lookup failed, treating as miss", err, map[string]interface{}{
				"query": query,
			})
		}
		return classifier.Result{}, false
	}

	var result classifier.Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		// A corrupt entry is a miss; the fresh result will overwrite it.
		if c.logger != nil {
			c.logger.Warn("cache entry undecodable, treating as miss", err, map[string]interface{}{
				"query": query,
			})
		}
		return classifier.Result{}, false
	}

	return result, true
}

// Put stores the result for the given query with the configured TTL.
func (c *ResponseCache) Put(ctx context.Context, query string, result classifier.Result) {
	if !c.enabled {
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("failed to encode result for cache", err)
		}
		return
	}

	if err := c.store.SetEX(ctx, query, payload, c.ttl); err != nil {
		if c.logger != nil {
			c.logger.Warn("cache store failed, skipping", err, map[string]interface{}{
				"query": query,
			})
		}
		return
	}

	if c.logger != nil {
		c.logger.Info("cached response", nil, map[string]interface{}{
			"query":       query,
			"ttl_seconds": int(c.ttl.Seconds()),
		})
	}
}
