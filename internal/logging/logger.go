package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger *zap.Logger

// LogLevelEnvVar overrides the console log level when set.
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "ENOCEANMQTT_LOG_LEVEL"

// Log file rotation defaults
const (
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 28
)

// Options controls logger construction.
type Options struct {
	// Debug lowers both the console and the file level to debug.
	Debug bool
	// LogFile enables a rotating log file when non-empty.
	LogFile string
	// ConsoleLevel overrides the console level ("debug", "info", "warn", "error").
	// When empty, LogLevelEnvVar is consulted, then Debug.
	ConsoleLevel string
}

// Initialize builds the global logger from opts.
//
// The console only shows errors unless debugging is enabled, so the gateway
// stays quiet on a terminal. The log file records info and above.
func Initialize(opts Options) error {
	consoleLevel := zapcore.ErrorLevel
	fileLevel := zapcore.InfoLevel
	if opts.Debug {
		consoleLevel = zapcore.DebugLevel
		fileLevel = zapcore.DebugLevel
	}

	levelName := opts.ConsoleLevel
	if levelName == "" {
		levelName = os.Getenv(LogLevelEnvVar)
	}
	if levelName != "" {
		lvl, err := ParseLevel(levelName)
		if err != nil {
			return err
		}
		consoleLevel = lvl
	}

	consoleEncoder := zap.NewDevelopmentEncoderConfig()
	consoleEncoder.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleEncoder.EncodeTime = zapcore.ISO8601TimeEncoder
	consoleEncoder.EncodeCaller = zapcore.ShortCallerEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleEncoder),
			zapcore.Lock(os.Stderr),
			consoleLevel,
		),
	}

	if opts.LogFile != "" {
		fileEncoder := zap.NewProductionEncoderConfig()
		fileEncoder.EncodeTime = zapcore.ISO8601TimeEncoder

		rotator := &lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    DefaultMaxSizeMB,
			MaxBackups: DefaultMaxBackups,
			MaxAge:     DefaultMaxAgeDays,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(fileEncoder),
			zapcore.AddSync(rotator),
			fileLevel,
		))
	}

	logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller())

	if opts.LogFile != "" {
		Info("Logging to file", zap.String("path", opts.LogFile))
	}
	if opts.Debug {
		Info("Logging debug to console")
	}

	return nil
}

// ParseLevel converts a level name to a zap level.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q (valid: debug, info, warn, error)", name)
	}
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Not initialized: stay silent
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

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
