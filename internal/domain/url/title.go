package url

import (
	"regexp"
	"strings"
)

// engineTitleSuffixes match the decorations search engines append to result page titles.
var engineTitleSuffixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s+-\s+google\s+search$`),
	regexp.MustCompile(`(?i)\s+-\s+bing$`),
	regexp.MustCompile(`(?i)\s+at\s+duckduckgo$`),
	regexp.MustCompile(`(?i)\s+-\s+ecosia$`),
	regexp.MustCompile(`(?i)\s+-\s+[\p{L}\p{N}.!]+\s+search(?:\s+results)?$`),
}

// CleanTitle strips search-engine suffixes such as " - Google Search" from a
// page title and trims the result. It is idempotent.
func CleanTitle(text string) string {
	cleaned := strings.TrimSpace(text)
	for {
		next := cleaned
		for _, re := range engineTitleSuffixes {
			next = strings.TrimSpace(re.ReplaceAllString(next, ""))
		}
		if next == cleaned {
			return cleaned
		}
		cleaned = next
	}
}

// TitleForURL is the synthetic title of a freshly navigated URL: the query
// for search-result URLs, otherwise the display host.
func TitleForURL(rawURL string) string {
	if q, ok := ExtractQuery(rawURL); ok && strings.TrimSpace(q) != "" {
		return q
	}
	return DisplayTitle(rawURL)
}
