package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitializeToFile(t *testing.T) {
	defer InitializeDefault()

	path := filepath.Join(t.TempDir(), "run.log")
	require.NoError(t, Initialize(Config{Level: "debug", Format: "json", Output: path}))

	Debug("descend", zap.Int("make", 50))
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"descend"`)
	assert.Contains(t, string(data), `"make":50`)
}

func TestInvalidLevelFallsBackToWarn(t *testing.T) {
	defer InitializeDefault()

	require.NoError(t, Initialize(Config{Level: "loud", Format: "console", Output: "stderr"}))
	assert.False(t, Logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, Logger.Core().Enabled(zap.WarnLevel))
}

func TestSetLogger(t *testing.T) {
	defer InitializeDefault()

	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))

	With(zap.String("run_id", "abc")).Info("calculation complete")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "calculation complete", entry.Message)
	assert.Equal(t, "abc", entry.ContextMap()["run_id"])
}
