package ratelimit

import (
	"context"
	"strconv"
	"time"

	"github.com/semcat/semcat/internal/redisclient"
)

// keyPrefix namespaces rate-limit counters away from cache entries, which
// share the same Redis database and use raw query strings as keys.
const keyPrefix = "rate_limit:"

// Decision is the outcome of an admission check.
type Decision struct {
	// Allowed reports whether the request may proceed.
	Allowed bool

	// Count is the counter value observed at check time; zero when the
	// counter did not exist.
	Count int64

	// Exists reports whether a counter was present for the identity.
	// Record uses it to choose between INCR and SETEX, so the window TTL
	// is only set on the first write and never refreshed.
	Exists bool
}

// Limiter bounds how many classification requests per identity are accepted
// inside a fixed time window, backed by an atomic external counter.
//
// The admission check and the counter increment are deliberately separate
// operations (see Check and Record): the pipeline only records requests that
// actually reached the compute stage, so cache hits stay free. The price is
// a benign race under concurrent bursts from one identity; the limit is a
// soft cap, not an exact one.
type Limiter struct {
	store   redisclient.Store
	max     int64
	window  time.Duration
	enabled bool
	logger  Logger
}

// Logger matches the subset of internal/logger.Logger this package needs.
type Logger interface {
	Warn(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
}

// New constructs a Limiter.
// When enabled is false every Check admits and Record does nothing.
func New(store redisclient.Store, max int64, window time.Duration, enabled bool, logger Logger) *Limiter {
	return &Limiter{
		store:   store,
		max:     max,
		window:  window,
		enabled: enabled,
		logger:  logger,
	}
}

// Check reads the counter for the identity and decides admission without
// mutating any state. A missing counter counts as zero. A store failure
// fails open: admission is granted and the failure logged, because an
// unreachable counter store must not take the service down with it.
func (l *Limiter) Check(ctx context.Context, identity string) Decision {
	if !l.enabled {
		return Decision{Allowed: true}
	}

	raw, err := l.store.Get(ctx, keyPrefix+identity)
	if err != nil {
		if redisclient.IsNilError(err) {
			return Decision{Allowed: true, Count: 0, Exists: false}
		}
		if l.logger != nil {
			l.logger.Warn("rate limit check failed, admitting", err, map[string]interface{}{
				"identity": identity,
			})
		}
		return Decision{Allowed: true}
	}

	count, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if l.logger != nil {
			l.logger.Warn("rate limit counter not an integer, admitting", err, map[string]interface{}{
				"identity": identity,
			})
		}
		return Decision{Allowed: true, Exists: true}
	}

	return Decision{
		Allowed: count < l.max,
		Count:   count,
		Exists:  true,
	}
}

// Record accounts one admitted, non-cached request for the identity.
//
// When the admission check saw an existing counter the value is atomically
// incremented, leaving the original window TTL untouched. Otherwise the
// counter is created at 1 with the window as its TTL; expiry is the only
// way a counter ever resets. Failures are logged and swallowed: a request
// that already produced a result is not failed retroactively over
// accounting.
func (l *Limiter) Record(ctx context.Context, identity string, hadCounter bool) {
	if !l.enabled {
		return
	}

	key := keyPrefix + identity
	if hadCounter {
		if _, err := l.store.Incr(ctx, key); err != nil {
			if l.logger != nil {
				l.logger.Warn("rate limit increment failed", err, map[string]interface{}{
					"identity": identity,
				})
			}
		}
		return
	}

	if err := l.store.SetEX(ctx, key, 1, l.window); err != nil {
		if l.logger != nil {
			l.logger.Warn("rate limit counter create failed", err, map[string]interface{}{
				"identity": identity,
			})
		}
	}
}
