package redisclient

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides the Redis client and registers its lifecycle.
//
// Usage:
//
//	app := fx.New(
//	    redisclient.FXModule,
//	    fx.Provide(func() redisclient.Config { return loadRedisConfig() }),
//	)
var FXModule = fx.Module("redisclient",
	fx.Provide(
		NewClientWithDI,
		func(c *Client) Store { return c },
	),
	fx.Invoke(RegisterLifecycle),
)

// Params groups the dependencies needed to create the Redis client.
type Params struct {
	fx.In

	Config Config
	Logger Logger `optional:"true"`
}

// NewClientWithDI creates the Redis client for the Fx graph, injecting the
// optional logger into the config before delegating to NewClient.
func NewClientWithDI(params Params) *Client {
	if params.Logger != nil {
		params.Config.Logger = params.Logger
	}
	return NewClient(params.Config)
}

// RegisterLifecycle pings Redis on startup and closes the client on stop.
//
// A failed startup ping is logged but not fatal: the cache and rate limiter
// both degrade gracefully when the store is unreachable, so the service can
// still serve classifications without Redis.
func RegisterLifecycle(lc fx.Lifecycle, c *Client) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := c.Ping(ctx); err != nil {
				if c.logger != nil {
					c.logger.Warn("redis unreachable at startup, cache and rate limiting will degrade", err)
				}
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return c.Close()
		},
	})
}
