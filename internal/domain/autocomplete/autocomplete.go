// Package autocomplete provides domain types and rules for address-bar suggestions.
package autocomplete

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/bnema/atlas/internal/domain/entity"
	"github.com/bnema/atlas/internal/domain/url"
)

// SuggestionSource indicates the origin of a suggestion.
type SuggestionSource string

const (
	SourceShortcut SuggestionSource = "shortcut"
	SourceBookmark SuggestionSource = "bookmark"
	SourceHistory  SuggestionSource = "history"
	SourceSearch   SuggestionSource = "search"
)

// Result caps.
const (
	MaxLocal    = 5
	MaxCombined = 8
)

// Suggestion is one candidate shown under the address bar.
// URL is empty for search-style suggestions, which navigate by Text.
type Suggestion struct {
	Source SuggestionSource `json:"source"`
	Text   string           `json:"text"`
	URL    string           `json:"url,omitempty"`
}

// IsSearch reports whether selecting the suggestion submits Text as a query.
func (s Suggestion) IsSearch() bool {
	return s.URL == ""
}

// Target is what the address bar should submit for this suggestion.
func (s Suggestion) Target() string {
	if s.URL != "" {
		return s.URL
	}
	return s.Text
}

// LocalData holds the user collections searched for local matches.
type LocalData struct {
	History   []entity.HistoryEntry
	Bookmarks []entity.Bookmark
	Shortcuts []entity.Shortcut
}

// Fold returns the case-folded form used for matching and deduplication.
// Casers are stateful, so each call gets its own.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// fromItem derives the display text of a stored url/title pair.
// Search-result items (query in the URL, or a title that carried an engine
// suffix) become search suggestions without a URL.
func fromItem(source SuggestionSource, rawURL, rawTitle string) Suggestion {
	cleaned := url.CleanTitle(rawTitle)
	query, isQuery := url.ExtractQuery(rawURL)
	if !isQuery || query == "" {
		isQuery = cleaned != strings.TrimSpace(rawTitle) && cleaned != ""
		query = cleaned
	}

	if isQuery {
		return Suggestion{Source: source, Text: query}
	}

	text := cleaned
	if text == "" {
		text = rawURL
	}
	return Suggestion{Source: source, Text: text, URL: rawURL}
}

// LocalMatches returns up to MaxLocal local suggestions whose text starts with
// query (case-insensitive): shortcuts first, then bookmarks, then history.
// Duplicates by text, and by URL when present, are dropped.
func LocalMatches(query string, data LocalData) []Suggestion {
	if query == "" {
		return nil
	}
	prefix := Fold(query)

	var candidates []Suggestion
	consider := func(s Suggestion) {
		if s.Text != "" && strings.HasPrefix(Fold(s.Text), prefix) {
			candidates = append(candidates, s)
		}
	}
	for _, sc := range data.Shortcuts {
		consider(fromItem(SourceShortcut, sc.URL, sc.Title))
	}
	for _, b := range data.Bookmarks {
		consider(fromItem(SourceBookmark, b.URL, b.Title))
	}
	for _, h := range data.History {
		consider(fromItem(SourceHistory, h.URL, h.Title))
	}

	out := make([]Suggestion, 0, MaxLocal)
	seenText := make(map[string]bool)
	seenURL := make(map[string]bool)
	for _, c := range candidates {
		if len(out) >= MaxLocal {
			break
		}
		textKey := Fold(c.Text)
		urlKey := Fold(c.URL)
		if seenText[textKey] || (urlKey != "" && seenURL[urlKey]) {
			continue
		}
		seenText[textKey] = true
		if urlKey != "" {
			seenURL[urlKey] = true
		}
		out = append(out, c)
	}
	return out
}

// Merge concatenates local then remote suggestions, dropping any whose
// folded URL-or-text key was already seen, and caps the result at MaxCombined.
func Merge(local, remote []Suggestion) []Suggestion {
	out := make([]Suggestion, 0, MaxCombined)
	seen := make(map[string]bool)
	for _, list := range [][]Suggestion{local, remote} {
		for _, s := range list {
			if len(out) >= MaxCombined {
				return out
			}
			key := Fold(s.Target())
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, s)
		}
	}
	return out
}
