package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides the application logger to the Fx dependency graph.
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle flushes buffered log entries on shutdown.
func RegisterLoggerLifecycle(lc fx.Lifecycle, l *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			// Sync on stderr can legitimately fail (EINVAL on some
			// platforms); nothing actionable to do with the error here.
			_ = l.Sync()
			return nil
		},
	})
}
