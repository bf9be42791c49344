package config

import "time"

// Config represents the complete configuration for atlas.
type Config struct {
	// API locates the remote account/sync service. An empty base URL runs atlas offline.
	API APIConfig `mapstructure:"api" toml:"api" json:"api"`
	// Sync tunes how local changes are pushed to the remote store.
	Sync SyncConfig `mapstructure:"sync" toml:"sync" json:"sync"`
	// DefaultSearchEngine is a template such as "https://duckduckgo.com/?q=" or an
	// engine id (google, bing, duckduckgo). Used until the user picks another engine.
	DefaultSearchEngine string `mapstructure:"default_search_engine" toml:"default_search_engine" json:"default_search_engine" jsonschema:"description=Search template or engine id used for new sessions"`
	// Suggestions controls address-bar autocomplete.
	Suggestions SuggestionsConfig `mapstructure:"suggestions" toml:"suggestions" json:"suggestions"`
	// Database locates the local snapshot cache.
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	// Logging controls log level, format and optional file output.
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
}

// APIConfig configures the remote service client.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url" toml:"base_url" json:"base_url" jsonschema:"description=Root URL of the remote service; empty disables sign-in and sync"`
	Timeout time.Duration `mapstructure:"timeout" toml:"timeout" json:"timeout" jsonschema:"type=string,description=Per-request timeout such as 10s"`
}

// SyncConfig configures the sync orchestrator.
type SyncConfig struct {
	Debounce         time.Duration `mapstructure:"debounce" toml:"debounce" json:"debounce" jsonschema:"type=string,description=Quiet period before a collection is pushed such as 1s"`
	HistoryQueueSize int           `mapstructure:"history_queue_size" toml:"history_queue_size" json:"history_queue_size" jsonschema:"minimum=1,description=History operations buffered while the remote is slow"`
}

// SuggestionsConfig configures autocomplete.
type SuggestionsConfig struct {
	Enabled        bool `mapstructure:"enabled" toml:"enabled" json:"enabled" jsonschema:"description=Ask the remote service for search suggestions"`
	MinQueryLength int  `mapstructure:"min_query_length" toml:"min_query_length" json:"min_query_length" jsonschema:"minimum=0,description=Shortest query sent for remote suggestions"`
}

// DatabaseConfig configures the local cache.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path" jsonschema:"description=SQLite file for cached sessions; defaults to the XDG data directory"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File enables JSON lines in the XDG state directory; interactive commands log only there.
	File bool `mapstructure:"file" toml:"file" json:"file" jsonschema:"description=Also write logs to a rotating file in the state directory"`
}
