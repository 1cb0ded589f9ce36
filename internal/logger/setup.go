package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin wrapper around Uber's Zap logger.
//
// The wrapper methods take an optional error plus free-form field maps so
// call sites do not need to build zap.Field slices by hand. The underlying
// zap.Logger is exposed for the rare case where direct access is needed
// (e.g. the HTTP request logging middleware).
type Logger struct {
	// Zap is the underlying zap.Logger instance.
	Zap *zap.Logger
}

// NewLogger builds a configured production logger.
//
// The logger uses JSON encoding with ISO8601 timestamps, includes caller
// information, and stamps every entry with the process id and service name.
// Output goes to stderr. If construction fails the process terminates; a
// service without a logger is not worth starting.
func NewLogger(cfg Config) *Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	logLevel := zap.InfoLevel
	switch cfg.Level {
	case Debug:
		logLevel = zap.DebugLevel
	case Info:
		logLevel = zap.InfoLevel
	case Warning:
		logLevel = zap.WarnLevel
	case Error:
		logLevel = zap.ErrorLevel
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(logLevel),
		Development:       false,
		DisableCaller:     false,
		DisableStacktrace: true,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	zl, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		log.Fatal(err)
	}

	return &Logger{Zap: zl}
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.Zap.Sync()
}
