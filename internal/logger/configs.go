package logger

import "os"

// Level represents the minimum severity that will be emitted.
type Level string

const (
	Debug   Level = "debug"
	Info    Level = "info"
	Warning Level = "warning"
	Error   Level = "error"
)

// Config holds the settings for the application logger.
type Config struct {
	// Level is the minimum log level. Messages below this level are dropped.
	Level Level

	// ServiceName is attached to every log entry as the "service" field.
	ServiceName string
}

// NewConfig reads the logger configuration from environment variables.
// LOG_LEVEL defaults to "info" when unset or unrecognised.
func NewConfig() Config {
	level := Info
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		level = Debug
	case "warning", "warn":
		level = Warning
	case "error":
		level = Error
	}

	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "semcat"
	}

	return Config{
		Level:       level,
		ServiceName: service,
	}
}
