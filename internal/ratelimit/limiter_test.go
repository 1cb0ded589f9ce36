package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semcat/semcat/internal/redisclient"
)

func newTestLimiter(t *testing.T, max int64, window time.Duration) (*Limiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store := redisclient.NewClientFromUniversal(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	return New(store, max, window, true, nil), mr
}

func TestLimiter_WindowEnforcement(t *testing.T) {
	ctx := context.Background()
	limiter, mr := newTestLimiter(t, 2, 60*time.Second)

	// First request: no counter yet.
	d1 := limiter.Check(ctx, "U1")
	require.True(t, d1.Allowed)
	require.False(t, d1.Exists)
	limiter.Record(ctx, "U1", d1.Exists)
	require.Equal(t, "1", mrGet(t, mr, "rate_limit:U1"))

	// Second request sees count 1, still under the cap.
	d2 := limiter.Check(ctx, "U1")
	require.True(t, d2.Allowed)
	require.True(t, d2.Exists)
	require.EqualValues(t, 1, d2.Count)
	limiter.Record(ctx, "U1", d2.Exists)

	// Third request inside the window is rejected without mutation.
	d3 := limiter.Check(ctx, "U1")
	assert.False(t, d3.Allowed)
	assert.EqualValues(t, 2, d3.Count)
	assert.Equal(t, "2", mrGet(t, mr, "rate_limit:U1"))

	// After the window elapses the counter expires and the retry is
	// admitted.
	mr.FastForward(61 * time.Second)
	d4 := limiter.Check(ctx, "U1")
	assert.True(t, d4.Allowed)
	assert.False(t, d4.Exists)
}

func TestLimiter_WindowTTLSetOnFirstWriteOnly(t *testing.T) {
	ctx := context.Background()
	limiter, mr := newTestLimiter(t, 10, 60*time.Second)

	d := limiter.Check(ctx, "U1")
	limiter.Record(ctx, "U1", d.Exists)
	require.Equal(t, 60*time.Second, mr.TTL("rate_limit:U1"))

	mr.FastForward(30 * time.Second)

	// Increments must not refresh the TTL; the window is fixed from the
	// first write.
	d = limiter.Check(ctx, "U1")
	limiter.Record(ctx, "U1", d.Exists)
	assert.Equal(t, 30*time.Second, mr.TTL("rate_limit:U1"))
}

func TestLimiter_IdentitiesAreIndependent(t *testing.T) {
	ctx := context.Background()
	limiter, _ := newTestLimiter(t, 1, time.Minute)

	d := limiter.Check(ctx, "U1")
	limiter.Record(ctx, "U1", d.Exists)

	assert.False(t, limiter.Check(ctx, "U1").Allowed)
	assert.True(t, limiter.Check(ctx, "U2").Allowed)
}

func TestLimiter_DisabledAdmitsEverything(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	store := redisclient.NewClientFromUniversal(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	limiter := New(store, 1, time.Minute, false, nil)

	for i := 0; i < 10; i++ {
		d := limiter.Check(ctx, "U1")
		require.True(t, d.Allowed)
		limiter.Record(ctx, "U1", d.Exists)
	}

	// Disabled mode never touches the store.
	assert.False(t, mr.Exists("rate_limit:U1"))
}

func TestLimiter_StoreFailureFailsOpen(t *testing.T) {
	limiter := New(failingStore{}, 1, time.Minute, true, nil)

	d := limiter.Check(context.Background(), "U1")
	assert.True(t, d.Allowed)

	// Record must swallow the failure as well.
	limiter.Record(context.Background(), "U1", d.Exists)
}

func mrGet(t *testing.T, mr *miniredis.Miniredis, key string) string {
	t.Helper()
	v, err := mr.Get(key)
	require.NoError(t, err)
	return v
}

// failingStore errors on every operation.
type failingStore struct{}

var errStoreDown = errors.New("store down")

func (failingStore) Ping(ctx context.Context) error                 { return errStoreDown }
func (failingStore) Get(ctx context.Context, key string) (string, error) { return "", errStoreDown }
func (failingStore) SetEX(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return errStoreDown
}
func (failingStore) Incr(ctx context.Context, key string) (int64, error) { return 0, errStoreDown }
func (failingStore) Exists(ctx context.Context, keys ...string) (int64, error) {
	return 0, errStoreDown
}
func (failingStore) TTL(ctx context.Context, key string) (time.Duration, error) {
	return 0, errStoreDown
}
func (failingStore) Delete(ctx context.Context, keys ...string) (int64, error) {
	return 0, errStoreDown
}
func (failingStore) Close() error { return nil }
