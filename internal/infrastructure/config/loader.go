// Package config loads atlas settings from TOML, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	domainurl "github.com/bnema/atlas/internal/domain/url"
	"github.com/spf13/viper"
)

const envPrefix = "ATLAS"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a manager for the XDG config file.
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithFile(configFile)
}

// NewManagerWithFile creates a manager for an explicit TOML file.
func NewManagerWithFile(configFile string) (*Manager, error) {
	if configFile == "" {
		return nil, errors.New("config file path cannot be empty")
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// ATLAS_API_BASE_URL, ATLAS_SYNC_DEBOUNCE, ...
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shared with logging.NewFromEnv so early startup logs agree with the config.
	if err := v.BindEnv("logging.level", "ATLAS_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind ATLAS_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "ATLAS_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind ATLAS_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load reads the config file, creating it with defaults on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.ensureConfigFile(); err != nil {
		return err
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

// decode unmarshals, fills derived values and validates.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}

	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return nil, fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func (m *Manager) ensureConfigFile() error {
	_, err := os.Stat(m.configFile)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return fmt.Errorf(
			"failed to create config directory %s: %w\nTry creating the directory manually or check permissions",
			filepath.Dir(m.configFile),
			err,
		)
	}
	if err := m.viper.SafeWriteConfigAs(m.configFile); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}
	if err := os.Chmod(m.configFile, filePerm); err != nil {
		return fmt.Errorf("failed to restrict config permissions: %w", err)
	}
	return nil
}

// setDefaults registers every key so env overrides and the first-run file
// see the full key set. Durations are strings to keep the TOML readable.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("api.base_url", defaults.API.BaseURL)
	m.viper.SetDefault("api.timeout", defaults.API.Timeout.String())

	m.viper.SetDefault("sync.debounce", defaults.Sync.Debounce.String())
	m.viper.SetDefault("sync.history_queue_size", defaults.Sync.HistoryQueueSize)

	m.viper.SetDefault("default_search_engine", defaults.DefaultSearchEngine)

	m.viper.SetDefault("suggestions.enabled", defaults.Suggestions.Enabled)
	m.viper.SetDefault("suggestions.min_query_length", defaults.Suggestions.MinQueryLength)

	m.viper.SetDefault("database.path", defaults.Database.Path)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
}

// normalizeConfig trims values and expands an engine id into its template.
func normalizeConfig(config *Config) {
	config.API.BaseURL = strings.TrimRight(strings.TrimSpace(config.API.BaseURL), "/")
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	engine := strings.TrimSpace(config.DefaultSearchEngine)
	for _, e := range domainurl.Engines {
		if strings.EqualFold(engine, e.ID) {
			engine = e.Template
			break
		}
	}
	config.DefaultSearchEngine = engine
}

// Get returns a copy of the loaded configuration, or the defaults before Load.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// ConfigFile returns the path of the TOML file.
func (m *Manager) ConfigFile() string {
	return m.configFile
}

// Offline reports whether no remote service is configured.
func (c *Config) Offline() bool {
	return c.API.BaseURL == ""
}
