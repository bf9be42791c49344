package url

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Engine describes a search engine offered to the user.
type Engine struct {
	ID       string
	Name     string
	Template string
}

// Engines lists the selectable search engines, default first.
var Engines = []Engine{
	{ID: "google", Name: "Google", Template: "https://www.google.com/search?q="},
	{ID: "bing", Name: "Microsoft Bing", Template: "https://www.bing.com/search?q="},
	{ID: "duckduckgo", Name: "DuckDuckGo", Template: "https://duckduckgo.com/?q="},
}

var defaultTemplate = Engines[0].Template

// searchFamilies are registrable-domain labels of engines whose result URLs
// carry the user's query.
var searchFamilies = map[string]bool{
	"google":     true,
	"bing":       true,
	"duckduckgo": true,
	"yahoo":      true,
	"ecosia":     true,
}

// queryParams are tried in order; the first present parameter wins.
var queryParams = []string{"q", "query", "p", "term"}

// EngineFor returns the catalogue engine whose family matches the template's
// host, falling back to the default engine.
func EngineFor(template string) Engine {
	family := engineFamily(template)
	for _, e := range Engines {
		if e.ID == family {
			return e
		}
	}
	return Engines[0]
}

// ExtractQuery returns the search text embedded in a known search engine's
// result URL. ok is false for any other URL.
func ExtractQuery(rawURL string) (query string, ok bool) {
	if rawURL == "" {
		return "", false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	if !searchFamilies[familyOfHost(parsed.Hostname())] {
		return "", false
	}
	values := parsed.Query()
	for _, param := range queryParams {
		if values.Has(param) {
			return values.Get(param), true
		}
	}
	return "", false
}

// IsSearchURL reports whether rawURL is a recoverable search-result URL.
func IsSearchURL(rawURL string) bool {
	_, ok := ExtractQuery(rawURL)
	return ok
}

func engineFamily(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return familyOfHost(parsed.Hostname())
}

// familyOfHost maps "www.google.co.uk" to "google".
func familyOfHost(host string) string {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if host == "" {
		return ""
	}
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return ""
	}
	suffix, _ := publicsuffix.PublicSuffix(registrable)
	return strings.TrimSuffix(strings.TrimSuffix(registrable, suffix), ".")
}
