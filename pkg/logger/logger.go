// Package logger builds the zap logger used by commands and the TUI.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pluqqy/shuttle/pkg/models"
)

// New creates a zap logger from the log settings. Output goes to stderr
// unless a file is configured.
func New(cfg models.LogSettings) (*zap.Logger, error) {
	var config zap.Config

	if strings.EqualFold(cfg.Level, "debug") {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			level = zapcore.InfoLevel
		}
		config.Level = zap.NewAtomicLevelAt(level)
	}

	if cfg.Format == "json" {
		config.Encoding = "json"
	} else {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		config.DisableStacktrace = true
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	output := "stderr"
	if cfg.File != "" {
		output = cfg.File
	}
	config.OutputPaths = []string{output}
	config.ErrorOutputPaths = []string{output}

	return config.Build()
}

// ForTUI creates a logger that never writes to the terminal. Without a
// log file it returns a no-op logger.
func ForTUI(cfg models.LogSettings) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}
	return New(cfg)
}
