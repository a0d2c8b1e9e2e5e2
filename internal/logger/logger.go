package logger

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logEnvKey     = "LOG_ENV"
	logLevelKey   = "LOG_LEVEL"
	defaultLogEnv = "dev"
)

var logger *zap.Logger

func init() {
	var err error
	logger, err = build(os.Getenv(logEnvKey), os.Getenv(logLevelKey))
	if err != nil {
		log.Fatal("logger init: ", err)
	}
}

// build creates the logger for env. A non-empty level overrides the default
// level of that env.
func build(env, level string) (*zap.Logger, error) {
	if env == "" {
		env = defaultLogEnv
	}

	var cfg zap.Config
	switch env {
	case "dev":
		cfg = zap.NewDevelopmentConfig()
	case "prod":
		cfg = zap.NewProductionConfig()
	case "none":
		return zap.NewNop(), nil
	default:
		return nil, fmt.Errorf("unknown %s %q", logEnvKey, env)
	}

	if level != "" {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", logLevelKey, level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	// skip this package's wrappers when reporting the caller
	return cfg.Build(zap.AddCallerSkip(1))
}

// Sync flushes buffered entries, call it before the process exits.
func Sync() {
	_ = logger.Sync()
}

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	logger.Fatal(msg, fields...)
}
