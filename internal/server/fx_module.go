package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"go.uber.org/fx"

	"github.com/semcat/semcat/internal/logger"
)

// FXModule provides the HTTP handlers, router and server, and manages the
// server's lifecycle.
var FXModule = fx.Module("server",
	fx.Provide(
		NewHandlers,
		NewRouter,
		NewServer,
	),
	fx.Invoke(RegisterServerLifecycle),
)

// NewServer builds the API http.Server from Config.
func NewServer(cfg Config, handler http.Handler) *http.Server {
	if cfg.Address == "" {
		cfg.Address = DefaultAddress
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = DefaultWriteTimeout
	}

	return &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

// RegisterServerLifecycle binds the listener on start and drains
// connections gracefully on stop.
func RegisterServerLifecycle(lc fx.Lifecycle, srv *http.Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("api server listening", nil, map[string]interface{}{
				"address": srv.Addr,
			})
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("api server terminated unexpectedly", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
