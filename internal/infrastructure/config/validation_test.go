package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "https api", mutate: func(c *Config) { c.API.BaseURL = "https://api.example.com" }},
		{name: "api without scheme", mutate: func(c *Config) { c.API.BaseURL = "api.example.com" }, wantKey: "api.base_url"},
		{name: "ftp api", mutate: func(c *Config) { c.API.BaseURL = "ftp://example.com" }, wantKey: "api.base_url"},
		{name: "negative timeout", mutate: func(c *Config) { c.API.Timeout = -time.Second }, wantKey: "api.timeout"},
		{name: "zero debounce", mutate: func(c *Config) { c.Sync.Debounce = 0 }},
		{name: "huge debounce", mutate: func(c *Config) { c.Sync.Debounce = time.Hour }, wantKey: "sync.debounce"},
		{name: "empty queue", mutate: func(c *Config) { c.Sync.HistoryQueueSize = 0 }, wantKey: "sync.history_queue_size"},
		{name: "placeholder template", mutate: func(c *Config) { c.DefaultSearchEngine = "https://search.example.com/?q=%s&lang=en" }},
		{name: "empty engine", mutate: func(c *Config) { c.DefaultSearchEngine = "" }, wantKey: "default_search_engine"},
		{name: "engine not a url", mutate: func(c *Config) { c.DefaultSearchEngine = "yandex" }, wantKey: "default_search_engine"},
		{name: "negative min length", mutate: func(c *Config) { c.Suggestions.MinQueryLength = -1 }, wantKey: "suggestions.min_query_length"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantKey: "logging.level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantKey: "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantKey == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestValidateConfig_ReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sync.HistoryQueueSize = 0
	cfg.Logging.Format = "xml"

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync.history_queue_size")
	assert.Contains(t, err.Error(), "logging.format")
}
