// Command semcat runs the semantic category classification service.
package main

import (
	"go.uber.org/fx"

	"github.com/semcat/semcat/internal/auth"
	"github.com/semcat/semcat/internal/classifier"
	"github.com/semcat/semcat/internal/config"
	"github.com/semcat/semcat/internal/embedding"
	"github.com/semcat/semcat/internal/logger"
	"github.com/semcat/semcat/internal/metrics"
	"github.com/semcat/semcat/internal/pipeline"
	"github.com/semcat/semcat/internal/redisclient"
	"github.com/semcat/semcat/internal/search"
	"github.com/semcat/semcat/internal/server"
)

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		fx.Provide(
			// Adapt the shared logger to the interface each package
			// declares locally.
			func(l *logger.Logger) redisclient.Logger { return l },
			func(l *logger.Logger) search.Logger { return l },
			func(l *logger.Logger) classifier.Logger { return l },
		),

		logger.FXModule,
		redisclient.FXModule,
		search.FXModule,
		embedding.FXModule,
		classifier.FXModule,
		pipeline.FXModule,
		auth.FXModule,
		metrics.FXModule,
		server.FXModule,
	)

	app.Run()
}
