package entity

// DefaultSearchEngine is the query template used until the user picks another engine.
const DefaultSearchEngine = "https://www.google.com/search?q="

// Settings holds synced user preferences.
type Settings struct {
	SearchEngine string `json:"searchEngine"`
}

// DefaultSettings returns the settings of a fresh session.
func DefaultSettings() Settings {
	return Settings{SearchEngine: DefaultSearchEngine}
}
