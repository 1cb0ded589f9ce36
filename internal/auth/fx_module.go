package auth

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides the token manager and the user store.
var FXModule = fx.Module("auth",
	fx.Provide(
		NewTokenManager,
		func(m *TokenManager) Tokens { return m },
		NewUserStoreWithDI,
		func(s *UserStore) Users { return s },
	),
	fx.Invoke(RegisterStoreLifecycle),
)

// NewUserStoreWithDI creates the user store from the shared auth config.
func NewUserStoreWithDI(cfg Config) (*UserStore, error) {
	return NewUserStore(cfg.Postgres)
}

// RegisterStoreLifecycle closes the database pool on shutdown.
func RegisterStoreLifecycle(lc fx.Lifecycle, s *UserStore) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return s.Close()
		},
	})
}
