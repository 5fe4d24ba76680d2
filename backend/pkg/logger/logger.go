package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global *zap.Logger

// Init builds the process-wide logger. Production gets sampled JSON at info
// level; everything else gets colored console output at debug level.
func Init(env string) error {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	built, err := cfg.Build()
	if err != nil {
		return err
	}
	global = built.Named("docgraph")
	return nil
}

// Sync flushes any buffered log entries
func Sync() {
	if global != nil {
		_ = global.Sync()
	}
}

// Get returns the process logger, or a no-op logger before Init runs so
// library code and tests never need a nil check
func Get() *zap.Logger {
	if global == nil {
		return zap.NewNop()
	}
	return global
}
