// Package log is the socksd process logger, a thin wrapper around a sugared
// go.uber.org/zap logger. Only the command layer logs; library packages return
// errors instead.
package log

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevelAt(levelFromEnv())

// Logger is the global logger instance.
var Logger = newLogger()

func levelFromEnv() zapcore.Level {
	lvl := zapcore.InfoLevel
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		if err := lvl.UnmarshalText([]byte(s)); err != nil {
			return zapcore.InfoLevel
		}
	}
	return lvl
}

func newConfig() zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg
}

func newLogger() *zap.SugaredLogger {
	l, err := newConfig().Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

// SetDebug switches the logger between debug and info level.
func SetDebug(on bool) {
	if on {
		level.SetLevel(zapcore.DebugLevel)
		return
	}
	level.SetLevel(zapcore.InfoLevel)
}

// Sync flushes buffered log entries.
func Sync() { _ = Logger.Sync() }

// Info logs a message at info level with optional key-value pairs.
func Info(msg string, kv ...any) { Logger.Infow(msg, kv...) }

// Error logs a message at error level with optional key-value pairs.
func Error(msg string, kv ...any) { Logger.Errorw(msg, kv...) }

// Debug logs a message at debug level with optional key-value pairs.
func Debug(msg string, kv ...any) { Logger.Debugw(msg, kv...) }
