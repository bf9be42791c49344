package cache

import (
	"context"
	"time"

	"github.com/bnema/atlas/internal/application/port"
	"github.com/bnema/atlas/internal/logging"
)

// Defaults for NewSuggestionCache.
const (
	DefaultSuggestionCapacity = 256
	DefaultSuggestionTTL      = 2 * time.Minute
)

// SuggestionCache memoizes a SuggestionProvider per (engine, query). Only
// successful responses are stored, so a failing service is retried on the
// next keystroke.
type SuggestionCache struct {
	next    port.SuggestionProvider
	entries port.Cache[string, []string]
}

var _ port.SuggestionProvider = (*SuggestionCache)(nil)

// NewSuggestionCache wraps next. Non-positive capacity or ttl select the defaults.
func NewSuggestionCache(next port.SuggestionProvider, capacity int, ttl time.Duration) *SuggestionCache {
	if capacity <= 0 {
		capacity = DefaultSuggestionCapacity
	}
	if ttl <= 0 {
		ttl = DefaultSuggestionTTL
	}
	return &SuggestionCache{
		next:    next,
		entries: NewLRU[string, []string](capacity, ttl),
	}
}

// Suggest implements port.SuggestionProvider.
func (c *SuggestionCache) Suggest(ctx context.Context, query, engine string) ([]string, error) {
	key := engine + "\x00" + query
	if phrases, ok := c.entries.Get(key); ok {
		logging.FromContext(ctx).Trace().Str("engine", engine).Str("query", query).Msg("suggestion cache hit")
		return append([]string(nil), phrases...), nil
	}

	phrases, err := c.next.Suggest(ctx, query, engine)
	if err != nil {
		return nil, err
	}
	c.entries.Set(key, append([]string(nil), phrases...))
	return phrases, nil
}
