package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// validateConfig collects every problem so the user can fix them in one pass.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateAPI(config)...)
	validationErrors = append(validationErrors, validateSync(config)...)
	validationErrors = append(validationErrors, validateSearchEngine(config)...)
	validationErrors = append(validationErrors, validateSuggestions(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateAPI(config *Config) []string {
	var validationErrors []string
	if config.API.BaseURL != "" {
		if msg := checkHTTPURL(config.API.BaseURL); msg != "" {
			validationErrors = append(validationErrors, "api.base_url "+msg)
		}
	}
	if config.API.Timeout < 0 {
		validationErrors = append(validationErrors, "api.timeout must be non-negative")
	}
	return validationErrors
}

func validateSync(config *Config) []string {
	var validationErrors []string
	if config.Sync.Debounce < 0 || config.Sync.Debounce > time.Minute {
		validationErrors = append(validationErrors, "sync.debounce must be between 0s and 1m")
	}
	if config.Sync.HistoryQueueSize < 1 {
		validationErrors = append(validationErrors, "sync.history_queue_size must be at least 1")
	}
	return validationErrors
}

func validateSearchEngine(config *Config) []string {
	if config.DefaultSearchEngine == "" {
		return []string{"default_search_engine cannot be empty"}
	}
	template := strings.Replace(config.DefaultSearchEngine, "%s", "", 1)
	if msg := checkHTTPURL(template); msg != "" {
		return []string{"default_search_engine " + msg}
	}
	return nil
}

func validateSuggestions(config *Config) []string {
	if config.Suggestions.MinQueryLength < 0 {
		return []string{"suggestions.min_query_length must be non-negative"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func checkHTTPURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Sprintf("is not a valid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Sprintf("must use http or https (got %q)", raw)
	}
	if u.Host == "" {
		return fmt.Sprintf("must include a host (got %q)", raw)
	}
	return ""
}
