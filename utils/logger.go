package utils

import (
	"log"

	"medcrm/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global logger instance
var Logger *zap.Logger

// parseLogLevel resolves the configured LOG_LEVEL, falling back to the
// environment default when unset or unparseable.
func parseLogLevel(s string, fallback zapcore.Level) zapcore.Level {
	if s == "" {
		return fallback
	}
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return fallback
	}
	return level
}

// InitializeLogger sets up the logging configuration
func InitializeLogger() {
	var cfg zap.Config
	var fallback zapcore.Level

	if config.IsProduction() {
		cfg = zap.NewProductionConfig()
		fallback = zap.InfoLevel
	} else {
		cfg = zap.NewDevelopmentConfig()
		fallback = zap.DebugLevel
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(parseLogLevel(config.AppConfig.LogLevel, fallback))

	// Create logger
	var err error
	Logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

// GetLogger retrieves the global logger
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}
