package server

import (
	"os"
	"time"
)

// Config holds the settings for the API HTTP server.
type Config struct {
	// Address is the listen address, e.g. ":5000".
	Address string

	// ReadTimeout and WriteTimeout bound request handling. The write
	// timeout must cover the pipeline's worst case: up to four sequential
	// external calls on a cache miss.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Default values for configuration.
const (
	DefaultAddress      = ":5000"
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 120 * time.Second
)

// NewConfig reads the server configuration from environment variables.
func NewConfig() Config {
	cfg := Config{
		Address: os.Getenv("LISTEN_ADDRESS"),
	}
	return cfg
}
