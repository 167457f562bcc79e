package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"alltopia/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.NoError(t, scanner.Err())
	return entries
}

func TestNew_JSONWithServiceField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log, err := New(Config{Level: "info", Encoding: "json", OutputPath: path, Service: "alltopia-api"})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("visible")
	_ = log.Sync()

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "visible", entries[0]["msg"])
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "alltopia-api", entries[0]["service"])
	assert.Contains(t, entries[0], "timestamp")
	assert.NotContains(t, entries[0], "caller")
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log, err := New(Config{Level: "loud", Encoding: "yaml", OutputPath: path})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Warn("shown")
	_ = log.Sync()

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.NotContains(t, entries[0], "service")
}

func TestNew_DevelopmentAddsCaller(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log, err := New(Config{Encoding: "json", OutputPath: path, Development: true})
	require.NoError(t, err)

	log.Info("with caller")
	_ = log.Sync()

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0]["caller"], "logger_test.go")
}

func TestFromConfig(t *testing.T) {
	got := FromConfig(&config.Config{Env: "development", LogLevel: "debug", LogEncoding: "console"}, "alltopia-api")
	assert.Equal(t, Config{Level: "debug", Encoding: "console", Service: "alltopia-api", Development: true}, got)

	got = FromConfig(&config.Config{Env: "production"}, "x")
	assert.False(t, got.Development)
}
