package usecase

import (
	"context"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/atlas/internal/application/port"
	"github.com/bnema/atlas/internal/domain/autocomplete"
	"github.com/bnema/atlas/internal/domain/url"
	"github.com/bnema/atlas/internal/logging"
)

// DefaultMinRemoteQueryLength is the shortest trimmed query sent to the suggestion service.
const DefaultMinRemoteQueryLength = 2

// SuggestUseCase merges local matches with remote search suggestions.
type SuggestUseCase struct {
	provider       port.SuggestionProvider
	minQueryLength atomic.Int64
}

// NewSuggestUseCase creates the aggregator. A nil provider yields local-only
// results; minQueryLength <= 0 selects the default.
func NewSuggestUseCase(provider port.SuggestionProvider, minQueryLength int) *SuggestUseCase {
	uc := &SuggestUseCase{provider: provider}
	uc.SetMinQueryLength(minQueryLength)
	return uc
}

// SetMinQueryLength changes the remote threshold; safe during Suggest calls.
func (uc *SuggestUseCase) SetMinQueryLength(n int) {
	if n <= 0 {
		n = DefaultMinRemoteQueryLength
	}
	uc.minQueryLength.Store(int64(n))
}

// Suggest returns up to autocomplete.MaxCombined suggestions for query:
// local matches first, then remote phrases. Remote failures degrade to
// local-only results. Recomputed on every call.
func (uc *SuggestUseCase) Suggest(
	ctx context.Context,
	query string,
	data autocomplete.LocalData,
	template string,
) []autocomplete.Suggestion {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	var local, remote []autocomplete.Suggestion

	var g errgroup.Group
	g.Go(func() error {
		local = autocomplete.LocalMatches(query, data)
		return nil
	})
	g.Go(func() error {
		remote = uc.remoteSuggestions(ctx, query, template)
		return nil
	})
	_ = g.Wait()

	merged := autocomplete.Merge(local, remote)
	logging.FromContext(ctx).Debug().
		Str("query", query).
		Int("local", len(local)).
		Int("remote", len(remote)).
		Int("merged", len(merged)).
		Msg("suggestions computed")
	return merged
}

func (uc *SuggestUseCase) remoteSuggestions(ctx context.Context, query, template string) []autocomplete.Suggestion {
	trimmed := strings.TrimSpace(query)
	if uc.provider == nil || int64(utf8.RuneCountInString(trimmed)) < uc.minQueryLength.Load() {
		return nil
	}

	engine := url.EngineFor(template).ID
	phrases, err := uc.provider.Suggest(ctx, trimmed, engine)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("engine", engine).Msg("remote suggestions unavailable")
		return nil
	}

	out := make([]autocomplete.Suggestion, 0, len(phrases))
	for _, phrase := range phrases {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			continue
		}
		out = append(out, autocomplete.Suggestion{Source: autocomplete.SourceSearch, Text: phrase})
	}
	return out
}
