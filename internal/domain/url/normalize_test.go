package url_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/atlas/internal/domain/url"
)

const googleTemplate = "https://www.google.com/search?q="

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"https unchanged", "https://x.com", "https://x.com"},
		{"http unchanged", "http://x.com/a?b=c", "http://x.com/a?b=c"},
		{"file unchanged", "file:///tmp/a.html", "file:///tmp/a.html"},
		{"bare domain", "example.com", "https://example.com"},
		{"subdomain with path", "docs.go.dev/ref/spec#Types", "https://docs.go.dev/ref/spec#Types"},
		{"domain with port", "example.com:8080/x", "https://example.com:8080/x"},
		{"localhost", "localhost", "https://localhost"},
		{"localhost with port and path", "localhost:3000/app", "https://localhost:3000/app"},
		{"ipv4", "192.168.1.10", "https://192.168.1.10"},
		{"ipv4 with port", "10.0.0.1:8443/admin", "https://10.0.0.1:8443/admin"},
		{"idn domain", "bücher.de", "https://bücher.de"},
		{"surrounding whitespace trimmed", "  example.com  ", "https://example.com"},
		{"search words", "hello world", googleTemplate + "hello%20world"},
		{"single word", "golang", googleTemplate + "golang"},
		{"numeric dots are not a domain", "1.5", googleTemplate + "1.5"},
		{"single-letter tld is a query", "a.b", googleTemplate + "a.b"},
		{"single-letter tld with path is a query", "node.j/docs", googleTemplate + "node.j%2Fdocs"},
		{"two-letter tld is a domain", "x.io", "https://x.io"},
		{"invalid octet is a query", "999.1.1.1", googleTemplate + "999.1.1.1"},
		{"reserved characters encoded", "a&b=c+d", googleTemplate + "a%26b%3Dc%2Bd"},
		{"empty is home", "", ""},
		{"whitespace is home", "   \t", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, url.Resolve(tt.input, googleTemplate))
		})
	}
}

func TestResolve_PlaceholderTemplate(t *testing.T) {
	got := url.Resolve("go generics", "https://duckduckgo.com/?q=%s&ia=web")

	assert.Equal(t, "https://duckduckgo.com/?q=go%20generics&ia=web", got)
}

func TestResolve_EmptyTemplateFallsBackToDefaultEngine(t *testing.T) {
	assert.Equal(t, googleTemplate+"x%20y", url.Resolve("x y", ""))
}

func TestLooksLikeHost(t *testing.T) {
	assert.True(t, url.LooksLikeHost("github.com"))
	assert.True(t, url.LooksLikeHost("LOCALHOST:80"))
	assert.False(t, url.LooksLikeHost("not a host.com"))
	assert.False(t, url.LooksLikeHost("-bad-.com"))
	assert.False(t, url.LooksLikeHost("readme"))
}

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "New Tab"},
		{"strips www", "https://www.example.com/path", "example.com"},
		{"keeps other subdomains", "https://docs.example.com", "docs.example.com"},
		{"drops port", "https://localhost:3000/x", "localhost"},
		{"unparseable returned raw", "not a url", "not a url"},
		{"bad escape returned raw", "https://exa mple.com/%zz", "https://exa mple.com/%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, url.DisplayTitle(tt.in))
		})
	}
}
