// Package logging builds the application logger. The terminal belongs to
// the TUI, so records go to a file or nowhere.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"carfleet/internal/config"
)

// New returns a JSON logger appending to cfg.File at cfg.Level.
// An empty file path yields a no-op logger.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	if level == zapcore.DebugLevel {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(f),
		level,
	)
	return zap.New(core, zap.AddCaller()), nil
}
