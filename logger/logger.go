package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewProductionLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(logLevel())
	return config.Build()
}

func Suggar(logger *zap.Logger) *zap.SugaredLogger {
	return logger.Sugar()
}

// TELEMETRY_LOG_LEVEL accepts any zap level name; unset or unparsable
// values fall back to debug.
func logLevel() zapcore.Level {
	var level zapcore.Level
	if raw := os.Getenv("TELEMETRY_LOG_LEVEL"); raw != "" {
		if err := level.Set(raw); err == nil {
			return level
		}
	}
	return zapcore.DebugLevel
}
