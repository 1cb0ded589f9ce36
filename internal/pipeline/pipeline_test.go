package pipeline

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semcat/semcat/internal/cache"
	"github.com/semcat/semcat/internal/classifier"
	"github.com/semcat/semcat/internal/ratelimit"
	"github.com/semcat/semcat/internal/redisclient"
	"github.com/semcat/semcat/internal/search"
)

// fakeEmbedder returns a canned vector or an error.
type fakeEmbedder struct {
	vector []float64
	err    error
	calls  atomic.Int64
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.vector, nil
}

// fakeIndex serves a canned taxonomy and example set, each independently
// switchable to a failure.
type fakeIndex struct {
	taxonomy    search.Taxonomy
	taxonomyErr error
	examples    []search.Example
	examplesErr error
}

func (f *fakeIndex) FetchTaxonomy(ctx context.Context) (search.Taxonomy, error) {
	if f.taxonomyErr != nil {
		return nil, f.taxonomyErr
	}
	return f.taxonomy, nil
}

func (f *fakeIndex) SearchExamples(ctx context.Context, embedding []float64) ([]search.Example, error) {
	if f.examplesErr != nil {
		return nil, f.examplesErr
	}
	return f.examples, nil
}

func (f *fakeIndex) IndexEntry(ctx context.Context, id string, entry search.Entry) (string, error) {
	return id, nil
}

func (f *fakeIndex) UpdateEntry(ctx context.Context, id string, entry search.Entry) error {
	return nil
}

func (f *fakeIndex) DeleteEntry(ctx context.Context, id string) error { return nil }

// fakeLabeler records what it was asked to classify and returns a canned
// result.
type fakeLabeler struct {
	result       classifier.Result
	calls        atomic.Int64
	lastTaxonomy search.Taxonomy
	lastExamples []search.Example
}

func (f *fakeLabeler) Classify(ctx context.Context, query string, taxonomy search.Taxonomy, examples []search.Example) classifier.Result {
	f.calls.Add(1)
	f.lastTaxonomy = taxonomy
	f.lastExamples = examples
	return f.result
}

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Info(msg string, err error, fields ...map[string]interface{})  {}
func (nopLogger) Debug(msg string, err error, fields ...map[string]interface{}) {}
func (nopLogger) Warn(msg string, err error, fields ...map[string]interface{})  {}
func (nopLogger) Error(msg string, err error, fields ...map[string]interface{}) {}

type fixture struct {
	orchestrator *Orchestrator
	mr           *miniredis.Miniredis
	embedder     *fakeEmbedder
	index        *fakeIndex
	labeler      *fakeLabeler
}

type fixtureOpts struct {
	rateLimitMax    int64
	rateLimitWindow time.Duration
	cacheTTL        time.Duration
	threshold       float64
}

func newFixture(t *testing.T, opts fixtureOpts) *fixture {
	t.Helper()

	if opts.rateLimitMax == 0 {
		opts.rateLimitMax = 100
	}
	if opts.rateLimitWindow == 0 {
		opts.rateLimitWindow = time.Minute
	}
	if opts.cacheTTL == 0 {
		opts.cacheTTL = time.Hour
	}
	if opts.threshold == 0 {
		opts.threshold = 0.9
	}

	mr := miniredis.RunT(t)
	store := redisclient.NewClientFromUniversal(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	embedder := &fakeEmbedder{vector: []float64{0.1, 0.2, 0.3}}
	index := &fakeIndex{
		taxonomy: search.Taxonomy{
			"Hardware": {"Laptops": {nil}},
		},
		examples: []search.Example{
			{Title: "broken screen", Supercategory: "Hardware", Category: "Laptops", Score: 0.95},
		},
	}
	labeler := &fakeLabeler{
		result: classifier.Result{Supercategory: "Hardware", Category: "Laptops", Subcategory: "None"},
	}

	orchestrator := New(
		ratelimit.New(store, opts.rateLimitMax, opts.rateLimitWindow, true, nopLogger{}),
		cache.New(store, opts.cacheTTL, true, nopLogger{}),
		embedder,
		index,
		labeler,
		nil,
		nopLogger{},
		opts.threshold,
	)

	return &fixture{
		orchestrator: orchestrator,
		mr:           mr,
		embedder:     embedder,
		index:        index,
		labeler:      labeler,
	}
}

func TestClassify_FreshResult(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOpts{})

	out := f.orchestrator.Classify(ctx, Request{Identity: "U1", Query: "laptop is dead"})

	require.Equal(t, StatusOK, out.Status)
	assert.False(t, out.Cached)
	assert.Equal(t, f.labeler.result, out.Result)
	assert.GreaterOrEqual(t, out.Elapsed, 0.0)

	// The fresh result is cached and the request accounted.
	assert.True(t, f.mr.Exists("laptop is dead"))
	counter, err := f.mr.Get("rate_limit:U1")
	require.NoError(t, err)
	assert.Equal(t, "1", counter)
}

func TestClassify_CacheHitSkipsComputeAndAccounting(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOpts{})

	req := Request{Identity: "U1", Query: "laptop is dead"}

	first := f.orchestrator.Classify(ctx, req)
	require.Equal(t, StatusOK, first.Status)
	require.False(t, first.Cached)
	require.EqualValues(t, 1, f.embedder.calls.Load())

	second := f.orchestrator.Classify(ctx, req)
	require.Equal(t, StatusOK, second.Status)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Result, second.Result)

	// The hit reached neither the embedder nor the labeler, and the
	// counter stayed where the first request left it.
	assert.EqualValues(t, 1, f.embedder.calls.Load())
	assert.EqualValues(t, 1, f.labeler.calls.Load())
	counter, err := f.mr.Get("rate_limit:U1")
	require.NoError(t, err)
	assert.Equal(t, "1", counter)
}

func TestClassify_RateLimitWindow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOpts{rateLimitMax: 2, rateLimitWindow: time.Minute})

	// Distinct queries so the cache never short-circuits admission.
	require.Equal(t, StatusOK, f.orchestrator.Classify(ctx, Request{Identity: "U1", Query: "q1"}).Status)
	require.Equal(t, StatusOK, f.orchestrator.Classify(ctx, Request{Identity: "U1", Query: "q2"}).Status)

	out := f.orchestrator.Classify(ctx, Request{Identity: "U1", Query: "q3"})
	require.Equal(t, StatusRateLimited, out.Status)

	// Rejection is side-effect free: nothing embedded, nothing cached,
	// counter untouched.
	assert.EqualValues(t, 2, f.embedder.calls.Load())
	assert.False(t, f.mr.Exists("q3"))
	counter, err := f.mr.Get("rate_limit:U1")
	require.NoError(t, err)
	assert.Equal(t, "2", counter)

	// Admission runs before the cache lookup, so even a previously cached
	// query is rejected while the identity is limited.
	out = f.orchestrator.Classify(ctx, Request{Identity: "U1", Query: "q1"})
	assert.Equal(t, StatusRateLimited, out.Status)

	// Another identity is unaffected.
	out = f.orchestrator.Classify(ctx, Request{Identity: "U2", Query: "q3"})
	assert.Equal(t, StatusOK, out.Status)

	// The window expiring readmits the first identity.
	f.mr.FastForward(61 * time.Second)
	out = f.orchestrator.Classify(ctx, Request{Identity: "U1", Query: "q4"})
	assert.Equal(t, StatusOK, out.Status)
}

func TestClassify_EmbeddingFailureIsFatal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOpts{})
	f.embedder.err = errors.New("embedding service unreachable")

	out := f.orchestrator.Classify(ctx, Request{Identity: "U1", Query: "q"})

	require.Equal(t, StatusEmbeddingFailed, out.Status)
	assert.EqualValues(t, 0, f.labeler.calls.Load())
	assert.False(t, f.mr.Exists("q"))
	// The failed request is not accounted against the identity.
	assert.False(t, f.mr.Exists("rate_limit:U1"))
}

func TestClassify_RetrievalFailuresDegrade(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOpts{})
	f.index.taxonomyErr = errors.New("index down")
	f.index.examplesErr = errors.New("index down")

	out := f.orchestrator.Classify(ctx, Request{Identity: "U1", Query: "q"})

	// Both retrievals failing still produces a classification, just with
	// empty context.
	require.Equal(t, StatusOK, out.Status)
	require.EqualValues(t, 1, f.labeler.calls.Load())
	assert.True(t, f.labeler.lastTaxonomy.Empty())
	assert.Nil(t, f.labeler.lastExamples)
}

func TestClassify_SimilarityFilter(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOpts{threshold: 0.9})
	f.index.examples = []search.Example{
		{Title: "relevant", Score: 0.95},
		{Title: "borderline", Score: 0.9},
		{Title: "noise", Score: 0.4},
	}

	out := f.orchestrator.Classify(ctx, Request{Identity: "U1", Query: "q"})

	require.Equal(t, StatusOK, out.Status)
	require.Len(t, f.labeler.lastExamples, 2)
	assert.Equal(t, "relevant", f.labeler.lastExamples[0].Title)
	assert.Equal(t, "borderline", f.labeler.lastExamples[1].Title)
}

func TestClassify_NoExampleAboveThresholdPassesNil(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOpts{threshold: 0.9})
	f.index.examples = []search.Example{
		{Title: "noise", Score: 0.1},
	}

	out := f.orchestrator.Classify(ctx, Request{Identity: "U1", Query: "q"})

	require.Equal(t, StatusOK, out.Status)
	// nil, not an empty slice: the prompt builder keys the examples
	// section off this distinction.
	assert.Nil(t, f.labeler.lastExamples)
}

func TestClassify_SentinelResultIsCached(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOpts{})
	f.labeler.result = classifier.SentinelResult()

	out := f.orchestrator.Classify(ctx, Request{Identity: "U1", Query: "q"})
	require.Equal(t, StatusOK, out.Status)
	assert.Equal(t, classifier.SentinelResult(), out.Result)

	// The sentinel triple is a valid answer and cached like any other.
	second := f.orchestrator.Classify(ctx, Request{Identity: "U1", Query: "q"})
	require.Equal(t, StatusOK, second.Status)
	assert.True(t, second.Cached)
	assert.Equal(t, classifier.SentinelResult(), second.Result)
}
