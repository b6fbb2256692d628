package main

import (
	"os"
	"path/filepath"
	"testing"

	"task-manager/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFailsOnUnusableDatabase(t *testing.T) {
	tmpDir := t.TempDir()

	// Parent "directory" is a regular file, so the store cannot be created
	blocker := filepath.Join(tmpDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	logPath := filepath.Join(tmpDir, "logs", "tasks.log")
	cfg := &config.Config{
		Env:          "test",
		DBPath:       filepath.Join(blocker, "tasks.db"),
		LogLevel:     "info",
		LogFormat:    "text",
		LogFile:      logPath,
		LogMaxSizeMB: 1,
	}

	code := run(cfg, make(chan os.Signal))
	assert.Equal(t, 1, code)

	// The failure reaches the log file before run returns
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "failed to initialize database")
}

func TestRunStopsOnSignal(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "tasks.log")

	cfg := &config.Config{
		Port:         "0",
		Env:          "test",
		DBPath:       filepath.Join(tmpDir, "tasks.db"),
		CORSOrigins:  "*",
		RateLimitMax: 10,
		LogLevel:     "info",
		LogFormat:    "text",
		LogFile:      logPath,
		LogMaxSizeMB: 1,
	}

	stop := make(chan os.Signal, 1)
	stop <- os.Interrupt

	code := run(cfg, stop)
	assert.Equal(t, 0, code)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "server stopped")
	assert.Contains(t, string(data), "database closed")
}
