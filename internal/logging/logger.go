package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "LIGHTMIXER_LOG_LEVEL"

// LogFileEnvVar redirects log output to a file. The dashboard owns the
// terminal while it runs, so anything written to stderr would tear the screen.
const LogFileEnvVar = "LIGHTMIXER_LOG_FILE"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks LIGHTMIXER_LOG_LEVEL.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{outputPath()},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// SetLogger replaces the global logger. Tests use this with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		return zapcore.InfoLevel
	}
}

func outputPath() string {
	if path := os.Getenv(LogFileEnvVar); path != "" {
		return path
	}
	return "stderr"
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogDiscovery logs the outcome of scanning one root directory.
func LogDiscovery(root string, found, skipped int) {
	Debug("Scanned controller root",
		zap.String("root", root),
		zap.Int("found", found),
		zap.Int("skipped", skipped),
	)
}

// LogSkippedRoot logs a root directory that could not be opened.
func LogSkippedRoot(root string, err error) {
	Debug("Skipping controller root",
		zap.String("root", root),
		zap.Error(err),
	)
}

// LogSkippedEntry logs a directory entry that did not yield a controller.
func LogSkippedEntry(path string, err error) {
	Debug("Skipping controller entry",
		zap.String("path", path),
		zap.Error(err),
	)
}

// LogBrightnessWrite logs a brightness write and its result.
func LogBrightnessWrite(path string, value uint64, err error) {
	if err != nil {
		Warn("Brightness write failed",
			zap.String("path", path),
			zap.Uint64("value", value),
			zap.Error(err),
		)
		return
	}
	Info("Brightness written",
		zap.String("path", path),
		zap.Uint64("value", value),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
