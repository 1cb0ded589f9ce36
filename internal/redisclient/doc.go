// Package redisclient wraps github.com/redis/go-redis/v9 with the narrow
// command surface the service uses: string GET/SETEX, atomic INCR, EXISTS
// and TTL.
//
// The package follows the "accept interfaces, return structs" pattern:
//   - Store interface: the contract consumed by cache and ratelimit
//   - Client struct: concrete implementation
//   - NewClient constructor: returns *Client
//   - FXModule: provides both *Client and Store for dependency injection
//
// Both the response cache and the rate-limit counters live in this one
// Redis instance; keys never collide because counters are namespaced with a
// "rate_limit:" prefix while cache keys are raw query strings.
package redisclient
