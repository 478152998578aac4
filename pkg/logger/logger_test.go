package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/pluqqy/shuttle/pkg/models"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shuttle.log")

	log, err := New(models.LogSettings{Level: "info", Format: "json", File: path})
	require.NoError(t, err)

	log.Info("hello")
	log.Debug("hidden")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewDebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	log, err := New(models.LogSettings{Level: "debug", Format: "console", File: path})
	require.NoError(t, err)

	log.Debug("visible")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.log")

	log, err := New(models.LogSettings{Level: "loud", File: path})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestForTUIWithoutFile(t *testing.T) {
	log, err := ForTUI(models.LogSettings{Level: "debug"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}
