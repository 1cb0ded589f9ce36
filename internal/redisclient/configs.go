package redisclient

import (
	"os"
	"strconv"
	"time"
)

// Config holds the settings for connecting to a standalone Redis instance.
//
// Redis backs both the response cache and the rate-limit counters; the two
// concerns share one connection pool.
type Config struct {
	// Host is the Redis server hostname or IP address.
	Host string

	// Port is the Redis server port.
	Port int

	// Username for Redis ACL authentication (Redis 6+). Optional.
	Username string

	// Password for authentication. Optional.
	Password string

	// DB is the database number to select after connecting.
	DB int

	// PoolSize is the maximum number of socket connections.
	// Zero lets go-redis pick its default (10 per CPU).
	PoolSize int

	// DialTimeout bounds connection establishment.
	DialTimeout time.Duration

	// ReadTimeout bounds socket reads.
	ReadTimeout time.Duration

	// WriteTimeout bounds socket writes. Zero means ReadTimeout.
	WriteTimeout time.Duration

	// MaxRetries is the number of retries before giving up on a command.
	MaxRetries int

	// Logger is the optional structured logger for client events.
	Logger Logger
}

// Logger matches the subset of internal/logger.Logger this package needs.
// Declared locally so the package has no dependency on the logger package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Default values for configuration.
const (
	DefaultHost        = "localhost"
	DefaultPort        = 6379
	DefaultDialTimeout = 5 * time.Second
	DefaultReadTimeout = 3 * time.Second
	DefaultMaxRetries  = 3
)

// NewConfig reads the Redis configuration from environment variables,
// falling back to package defaults.
func NewConfig() Config {
	cfg := Config{
		Host:     os.Getenv("REDIS_HOST"),
		Username: os.Getenv("REDIS_USERNAME"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Port = n
		}
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DB = n
		}
	}
	return cfg
}
