package pipeline

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/semcat/semcat/internal/cache"
	"github.com/semcat/semcat/internal/classifier"
	"github.com/semcat/semcat/internal/embedding"
	"github.com/semcat/semcat/internal/metrics"
	"github.com/semcat/semcat/internal/ratelimit"
	"github.com/semcat/semcat/internal/search"
)

// Status is the terminal state of a classification request.
type Status int

const (
	// StatusOK means a result was produced, fresh or cached. A sentinel
	// triple is still StatusOK: classification uncertainty is data.
	StatusOK Status = iota

	// StatusRateLimited means admission was rejected. No side effects.
	StatusRateLimited

	// StatusEmbeddingFailed means the query vector could not be computed.
	// Fatal to the request: no partial result, no cache write.
	StatusEmbeddingFailed
)

// Request is a single classification request.
type Request struct {
	// Identity is the opaque principal id used for rate-limit keying only.
	Identity string

	// Query is the free text to classify, also the cache key verbatim.
	Query string
}

// Outcome is the assembled result of running the pipeline.
type Outcome struct {
	Status Status

	// Result is meaningful only when Status is StatusOK.
	Result classifier.Result

	// Cached reports whether the result came from the response cache.
	Cached bool

	// Elapsed is wall-clock seconds, rounded to two decimals.
	Elapsed float64
}

// Orchestrator sequences admission, cache lookup, retrieval, classification
// and accounting into the end-to-end classify operation.
//
// All collaborators are injected at construction; the orchestrator holds no
// cross-request mutable state.
type Orchestrator struct {
	limiter   *ratelimit.Limiter
	cache     *cache.ResponseCache
	embedder  embedding.Embedder
	index     search.Index
	labeler   classifier.Labeler
	metrics   *metrics.Metrics
	logger    Logger
	threshold float64
}

// Logger matches the subset of internal/logger.Logger this package needs.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// New constructs an Orchestrator. The metrics instance may be nil in tests.
func New(
	limiter *ratelimit.Limiter,
	respCache *cache.ResponseCache,
	embedder embedding.Embedder,
	index search.Index,
	labeler classifier.Labeler,
	m *metrics.Metrics,
	logger Logger,
	similarityThreshold float64,
) *Orchestrator {
	return &Orchestrator{
		limiter:   limiter,
		cache:     respCache,
		embedder:  embedder,
		index:     index,
		labeler:   labeler,
		metrics:   m,
		logger:    logger,
		threshold: similarityThreshold,
	}
}

// Classify runs the request through the pipeline state machine, terminal on
// first return:
//
//  1. admission check (no mutation)
//  2. cache lookup — hits return immediately and never touch the counter
//  3. embed the query (fatal on failure), then retrieve taxonomy and
//     examples concurrently (each degrades to empty on failure), classify
//  4. store the fresh result, record the request against the counter
//  5. respond with timing and cache metadata
func (o *Orchestrator) Classify(ctx context.Context, req Request) Outcome {
	start := time.Now()

	decision := o.limiter.Check(ctx, req.Identity)
	if !decision.Allowed {
		o.logger.Warn("rate limit exceeded", nil, map[string]interface{}{
			"identity": req.Identity,
			"count":    decision.Count,
		})
		if o.metrics != nil {
			o.metrics.ObserveRateLimited()
			o.metrics.ObserveClassification("rate_limited")
		}
		return Outcome{Status: StatusRateLimited, Elapsed: elapsedSince(start)}
	}

	if result, ok := o.cache.Get(ctx, req.Query); ok {
		o.logger.Info("cache hit", nil, map[string]interface{}{
			"query": req.Query,
		})
		if o.metrics != nil {
			o.metrics.ObserveCacheLookup("hit")
			o.metrics.ObserveClassification("cached")
			o.metrics.ObserveDuration(start, true)
		}
		return Outcome{
			Status:  StatusOK,
			Result:  result,
			Cached:  true,
			Elapsed: elapsedSince(start),
		}
	}
	if o.metrics != nil {
		o.metrics.ObserveCacheLookup("miss")
	}

	vector, err := o.embedder.Embed(ctx, req.Query)
	if err != nil {
		o.logger.Error("failed to generate query embedding", err, map[string]interface{}{
			"query": req.Query,
		})
		if o.metrics != nil {
			o.metrics.ObserveClassification("embedding_failed")
		}
		return Outcome{Status: StatusEmbeddingFailed, Elapsed: elapsedSince(start)}
	}

	taxonomy, examples := o.retrieveContext(ctx, vector)

	result := o.labeler.Classify(ctx, req.Query, taxonomy, examples)

	o.cache.Put(ctx, req.Query, result)
	o.limiter.Record(ctx, req.Identity, decision.Exists)

	elapsed := elapsedSince(start)
	o.logger.Info("classification completed", nil, map[string]interface{}{
		"query":   req.Query,
		"elapsed": elapsed,
	})
	if o.metrics != nil {
		o.metrics.ObserveClassification("ok")
		o.metrics.ObserveDuration(start, false)
	}

	return Outcome{
		Status:  StatusOK,
		Result:  result,
		Cached:  false,
		Elapsed: elapsed,
	}
}

// retrieveContext fetches the taxonomy and the similarity-filtered examples
// concurrently. The two queries have no data dependency on each other, and
// each one degrades independently: a failure becomes empty context, never an
// error to the caller.
func (o *Orchestrator) retrieveContext(ctx context.Context, vector []float64) (search.Taxonomy, []search.Example) {
	var (
		taxonomy search.Taxonomy
		examples []search.Example
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		tree, err := o.index.FetchTaxonomy(gctx)
		if err != nil {
			o.logger.Warn("taxonomy retrieval failed, classifying without hierarchy", err)
			if o.metrics != nil {
				o.metrics.ObserveDegradedRetrieval("taxonomy")
			}
			taxonomy = search.Taxonomy{}
			return nil
		}
		taxonomy = tree
		return nil
	})

	g.Go(func() error {
		matches, err := o.index.SearchExamples(gctx, vector)
		if err != nil {
			o.logger.Warn("example retrieval failed, classifying without examples", err)
			if o.metrics != nil {
				o.metrics.ObserveDegradedRetrieval("examples")
			}
			examples = nil
			return nil
		}
		examples = o.filterExamples(matches)
		return nil
	})

	// The goroutines never return errors; Wait is only a join point.
	_ = g.Wait()

	return taxonomy, examples
}

// filterExamples keeps matches at or above the similarity threshold. When
// nothing clears the bar it returns nil, the explicit "no examples" signal
// that makes the prompt omit the examples section entirely.
func (o *Orchestrator) filterExamples(matches []search.Example) []search.Example {
	var relevant []search.Example
	for _, m := range matches {
		if m.Score >= o.threshold {
			relevant = append(relevant, m)
		} else {
			o.logger.Info("example below similarity threshold, dropped", nil, map[string]interface{}{
				"title":     m.Title,
				"score":     m.Score,
				"threshold": o.threshold,
			})
		}
	}
	return relevant
}

// elapsedSince returns wall-clock seconds since start, rounded to two
// decimal places to match the wire format of the time field.
func elapsedSince(start time.Time) float64 {
	return math.Round(time.Since(start).Seconds()*100) / 100
}
