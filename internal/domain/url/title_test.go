package url_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/atlas/internal/domain/url"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"google", "rust programming - Google Search", "rust programming"},
		{"case insensitive", "rust - GOOGLE search", "rust"},
		{"bing", "weather - Bing", "weather"},
		{"duckduckgo", "privacy tools at DuckDuckGo", "privacy tools"},
		{"ecosia", "trees - Ecosia", "trees"},
		{"generic engine", "news - Yahoo Search Results", "news"},
		{"generic engine plain", "cats - Brave Search", "cats"},
		{"stacked suffixes", "x - Google Search - Google Search", "x"},
		{"untouched", "The Go Programming Language", "The Go Programming Language"},
		{"hyphen inside title kept", "Go - the language", "Go - the language"},
		{"trims", "  padded  ", "padded"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, url.CleanTitle(tt.in))
		})
	}
}

func TestCleanTitle_Idempotent(t *testing.T) {
	inputs := []string{
		"rust programming - Google Search",
		"a - Bing - Bing ",
		" q at DuckDuckGo at DuckDuckGo",
		"plain",
		"  ",
		"Search - Google Search",
		"x -  Foo Search Results",
	}
	for _, in := range inputs {
		once := url.CleanTitle(in)
		assert.Equal(t, once, url.CleanTitle(once), in)
	}
}

func TestTitleForURL(t *testing.T) {
	assert.Equal(t, "rust", url.TitleForURL("https://www.google.com/search?q=rust"))
	assert.Equal(t, "example.com", url.TitleForURL("https://www.example.com"))
	assert.Equal(t, "New Tab", url.TitleForURL(""))
	assert.Equal(t, "google.com", url.TitleForURL("https://www.google.com/search?q="))
}
