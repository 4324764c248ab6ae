package bootstrap

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DropsMiner_Go/internal/config"
)

func restoreDefaultLogger(t *testing.T) {
	t.Helper()
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })
}

func TestSetupLogger(t *testing.T) {
	restoreDefaultLogger(t)

	dir := filepath.Join(t.TempDir(), "logs")
	cfg := &config.Config{
		LogDir:      dir,
		LogLevel:    "info",
		LogFormat:   "json",
		ServiceName: "drops-miner",
		Version:     "test",
		Environment: "prod",
	}
	var stdout bytes.Buffer
	now := time.Date(2024, 5, 1, 17, 0, 0, 0, time.UTC)

	logFile, err := setupLogger(cfg, &stdout, now)
	require.NoError(t, err)
	defer logFile.Close()

	assert.Equal(t, filepath.Join(dir, "miner_2024-05-01_17-00-00.log"), logFile.Name())

	slog.Info("hello")

	content, err := os.ReadFile(logFile.Name())
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"hello"`)
	assert.Contains(t, string(content), `"service":"drops-miner"`)
	assert.Contains(t, stdout.String(), `"msg":"hello"`, "records go to stdout as well")
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("miner_2024-05-%02d_00-00-00.log", i+1)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	cleanupLogs(dir, 9)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, 10, "nine logs plus the unrelated file")
	assert.Contains(t, names, "notes.txt")
	assert.NotContains(t, names, "miner_2024-05-01_00-00-00.log")
	assert.NotContains(t, names, "miner_2024-05-03_00-00-00.log")
	assert.Contains(t, names, "miner_2024-05-04_00-00-00.log")
	assert.Contains(t, names, "miner_2024-05-12_00-00-00.log")
}

func TestCleanupLogs_MissingDir(t *testing.T) {
	assert.NotPanics(t, func() {
		cleanupLogs(filepath.Join(t.TempDir(), "nope"), 9)
	})
}
