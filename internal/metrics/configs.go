package metrics

import "os"

// Config holds the settings for the metrics server.
type Config struct {
	// Address is the listen address of the /metrics HTTP server.
	Address string

	// ServiceName is added as a constant "service" label to all metrics.
	ServiceName string

	// EnableDefaultCollectors registers the Go and process collectors.
	EnableDefaultCollectors bool
}

// Default values for configuration.
const (
	DefaultAddress     = ":9090"
	DefaultServiceName = "semcat"
)

// NewConfig reads the metrics configuration from environment variables.
func NewConfig() Config {
	cfg := Config{
		Address:                 os.Getenv("METRICS_ADDRESS"),
		ServiceName:             os.Getenv("SERVICE_NAME"),
		EnableDefaultCollectors: true,
	}
	return cfg
}
