package config

import (
	"time"

	"github.com/bnema/atlas/internal/domain/entity"
)

// Default configuration constants
const (
	defaultAPITimeout       = 10 * time.Second
	defaultSyncDebounce     = time.Second
	defaultHistoryQueueSize = 100
	defaultMinQueryLength   = 2
	defaultLogLevel         = "info"
	defaultLogFormat        = "console"
)

// DefaultConfig returns the built-in configuration. Database.Path is left
// empty and resolved to the XDG data directory at load time.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Timeout: defaultAPITimeout,
		},
		Sync: SyncConfig{
			Debounce:         defaultSyncDebounce,
			HistoryQueueSize: defaultHistoryQueueSize,
		},
		DefaultSearchEngine: entity.DefaultSearchEngine,
		Suggestions: SuggestionsConfig{
			Enabled:        true,
			MinQueryLength: defaultMinQueryLength,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
