package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger defaults to a no-op so packages can log unconditionally; Init swaps
// in a real logger once configuration is known.
var logger = zap.NewNop()

// DebugEnabled returns true if debug mode is enabled via the DOIT_DEBUG
// environment variable.
func DebugEnabled() bool {
	return os.Getenv("DOIT_DEBUG") != ""
}

// Init builds the process-wide logger. Development mode uses the human
// readable console encoder; production mode emits JSON to stderr.
func Init(development bool) error {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")

	built, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = built
	return nil
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = logger.Sync()
}

// Debug logs a message at debug level.
func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

// Info logs a message at info level.
func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

// Warn logs a message at warn level.
func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

// Error logs a message at error level, attaching err when non-nil.
func Error(msg string, err error, fields ...zap.Field) {
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	logger.Error(msg, fields...)
}
