package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every XDG directory into a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("ENV", "")
	return dir
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "1s", mgr.viper.GetString("sync.debounce"))
	assert.Equal(t, time.Second, mgr.viper.GetDuration("sync.debounce"))
	assert.Equal(t, 100, mgr.viper.GetInt("sync.history_queue_size"))
	assert.True(t, mgr.viper.GetBool("suggestions.enabled"))
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config", "atlas", "config.toml")

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.FileExists(t, path)
	cfg := mgr.Get()
	assert.Equal(t, time.Second, cfg.Sync.Debounce)
	assert.Equal(t, filepath.Join(dir, "data", "atlas", "atlas.sqlite"), cfg.Database.Path)
	assert.Equal(t, path, mgr.ConfigFile())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestManager_LoadReadsFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	writeConfig(t, path, `
default_search_engine = "duckduckgo"

[api]
base_url = "https://api.example.com/"
timeout = "3s"

[sync]
debounce = "250ms"
history_queue_size = 8

[suggestions]
enabled = false

[database]
path = "/tmp/atlas-test.sqlite"

[logging]
level = "DEBUG"
`)

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "https://api.example.com", cfg.API.BaseURL, "trailing slash trimmed")
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Sync.Debounce)
	assert.Equal(t, 8, cfg.Sync.HistoryQueueSize)
	assert.Equal(t, "https://duckduckgo.com/?q=", cfg.DefaultSearchEngine, "engine id expanded")
	assert.False(t, cfg.Suggestions.Enabled)
	assert.Equal(t, 2, cfg.Suggestions.MinQueryLength, "unset keys keep defaults")
	assert.Equal(t, "/tmp/atlas-test.sqlite", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Offline())
}

func TestManager_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	writeConfig(t, path, "[sync]\ndebounce = \"2s\"\n")
	t.Setenv("ATLAS_SYNC_DEBOUNCE", "500ms")
	t.Setenv("ATLAS_LOG_LEVEL", "warn")

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 500*time.Millisecond, cfg.Sync.Debounce)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	writeConfig(t, path, "[sync]\nhistory_queue_size = 0\n")

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync.history_queue_size")
}

func TestManager_LoadRejectsMalformedTOML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	writeConfig(t, path, "[sync\n")

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	assert.Error(t, mgr.Load())
}

func TestManager_GetBeforeLoadReturnsDefaults(t *testing.T) {
	mgr, err := NewManagerWithFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestManager_GetReturnsCopy(t *testing.T) {
	dir := isolate(t)
	mgr, err := NewManagerWithFile(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Sync.HistoryQueueSize = 1

	assert.Equal(t, 100, mgr.Get().Sync.HistoryQueueSize)
}

func TestManager_ReloadNotifiesCallbacks(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	writeConfig(t, path, "[suggestions]\nmin_query_length = 3\n")

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got []int
	mgr.OnConfigChange(func(c *Config) { got = append(got, c.Suggestions.MinQueryLength) })

	writeConfig(t, path, "[suggestions]\nmin_query_length = 5\n")
	require.NoError(t, mgr.Reload())

	assert.Equal(t, []int{5}, got)
	assert.Equal(t, 5, mgr.Get().Suggestions.MinQueryLength)
}

func TestManager_InvalidReloadKeepsPrevious(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	writeConfig(t, path, "[suggestions]\nmin_query_length = 3\n")

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	called := false
	mgr.OnConfigChange(func(*Config) { called = true })

	writeConfig(t, path, "[suggestions]\nmin_query_length = -4\n")
	require.Error(t, mgr.Reload())

	assert.False(t, called)
	assert.Equal(t, 3, mgr.Get().Suggestions.MinQueryLength)
}

func TestNewManagerWithFile_EmptyPath(t *testing.T) {
	_, err := NewManagerWithFile("")
	assert.Error(t, err)
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Atlas Configuration", doc["title"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"api", "sync", "default_search_engine", "suggestions", "database", "logging"} {
		assert.Contains(t, props, key)
	}

	sync, ok := props["sync"].(map[string]any)
	require.True(t, ok)
	syncProps, ok := sync["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, syncProps, "history_queue_size")
}

func TestWriteSchemaFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteSchemaFile(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.schema.json"), path)
	assert.FileExists(t, path)
}
