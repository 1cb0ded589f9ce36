package redisclient

import (
	"context"
	"time"
)

// Store is the contract the cache and rate limiter depend on. It mirrors the
// atomic primitives of the backing store: GET, SETEX, INCR, EXISTS, TTL.
//
// This interface is implemented by the concrete *Client type; tests
// substitute fakes for failure-path coverage.
type Store interface {
	Ping(ctx context.Context) error
	Get(ctx context.Context, key string) (string, error)
	SetEX(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
	Exists(ctx context.Context, keys ...string) (int64, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
	Delete(ctx context.Context, keys ...string) (int64, error)
	Close() error
}

var _ Store = (*Client)(nil)
