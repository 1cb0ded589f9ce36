// Package ratelimit implements the fixed-window request limiter in front of
// the classification pipeline.
//
// Counters live in the external counter store under "rate_limit:<identity>"
// keys with a first-write TTL equal to the window; TTL expiry is the only
// reset. The check and the increment are two separate operations on purpose:
// cache hits are never recorded, and the admitted race between concurrent
// checks makes the limit a best-effort cap of max plus in-flight requests.
package ratelimit
