package pipeline

import (
	"go.uber.org/fx"

	"github.com/semcat/semcat/internal/cache"
	"github.com/semcat/semcat/internal/classifier"
	"github.com/semcat/semcat/internal/embedding"
	"github.com/semcat/semcat/internal/logger"
	"github.com/semcat/semcat/internal/metrics"
	"github.com/semcat/semcat/internal/ratelimit"
	"github.com/semcat/semcat/internal/redisclient"
	"github.com/semcat/semcat/internal/search"
)

// FXModule assembles the response cache, the rate limiter and the
// orchestrator from their injected collaborators.
var FXModule = fx.Module("pipeline",
	fx.Provide(
		NewCacheWithDI,
		NewLimiterWithDI,
		NewWithDI,
	),
)

// Params groups the dependencies needed to build the orchestrator.
type Params struct {
	fx.In

	Config   Config
	Limiter  *ratelimit.Limiter
	Cache    *cache.ResponseCache
	Embedder embedding.Embedder
	Index    search.Index
	Labeler  classifier.Labeler
	Metrics  *metrics.Metrics `optional:"true"`
	Logger   *logger.Logger
}

// NewWithDI creates the orchestrator for the Fx graph.
func NewWithDI(params Params) *Orchestrator {
	return New(
		params.Limiter,
		params.Cache,
		params.Embedder,
		params.Index,
		params.Labeler,
		params.Metrics,
		params.Logger,
		params.Config.SimilarityThreshold,
	)
}

// NewCacheWithDI builds the response cache from the pipeline config.
func NewCacheWithDI(cfg Config, store redisclient.Store, log *logger.Logger) *cache.ResponseCache {
	return cache.New(store, cfg.CacheTTL, cfg.CacheEnabled, log)
}

// NewLimiterWithDI builds the rate limiter from the pipeline config.
func NewLimiterWithDI(cfg Config, store redisclient.Store, log *logger.Logger) *ratelimit.Limiter {
	return ratelimit.New(store, cfg.RateLimitMax, cfg.RateLimitWindow, cfg.RateLimitEnabled, log)
}
