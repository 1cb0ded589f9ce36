package redisclient

import (
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Client wraps the go-redis client with the small command surface the
// service needs: string get/set with TTL and atomic counters.
//
// Client implements the Store interface.
type Client struct {
	client redis.UniversalClient
	logger Logger
}

// NewClient creates and initialises a Redis client for a standalone server.
//
// Missing config fields are filled with package defaults. The connection is
// not verified here; call Ping (the fx lifecycle hook does) to check health.
//
// Example:
//
//	client := redisclient.NewClient(redisclient.Config{
//		Host: "localhost",
//		Port: 6379,
//	})
//	defer client.Close()
func NewClient(cfg Config) *Client {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = DefaultDialTimeout
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}

	opts := &redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		MaxRetries:   cfg.MaxRetries,
	}

	return &Client{
		client: redis.NewClient(opts),
		logger: cfg.Logger,
	}
}

// NewClientFromUniversal wraps an existing go-redis client. Used by tests to
// point the wrapper at a miniredis instance.
func NewClientFromUniversal(uc redis.UniversalClient) *Client {
	return &Client{client: uc}
}

// Underlying returns the wrapped go-redis client for advanced operations.
func (c *Client) Underlying() redis.UniversalClient {
	return c.client
}

// Close closes the Redis client and releases all pooled connections.
func (c *Client) Close() error {
	if c.logger != nil {
		c.logger.Info("closing redis client", nil)
	}
	return c.client.Close()
}
