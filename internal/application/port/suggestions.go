package port

import "context"

// SuggestionProvider returns remote autocomplete phrases for a query.
// engine is a search engine id such as "google".
type SuggestionProvider interface {
	Suggest(ctx context.Context, query, engine string) ([]string, error)
}
