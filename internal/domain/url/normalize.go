// Package url resolves address-bar input into navigable URLs and recovers
// search queries and clean titles from search-engine result pages.
package url

import (
	"net/netip"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

// QueryPlaceholder marks where the encoded query goes in a search template.
// Templates without it get the query appended.
const QueryPlaceholder = "%s"

var (
	// labels of letters/digits/hyphens, alphabetic TLD, optional port and path.
	domainPattern = regexp.MustCompile(
		`^(?i)(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,63}\.?(?::\d{1,5})?(?:[/?#]\S*)?$`)
	localhostPattern = regexp.MustCompile(`^(?i)localhost(?::\d{1,5})?(?:[/?#]\S*)?$`)
	ipv4Pattern      = regexp.MustCompile(`^(\d{1,3}(?:\.\d{1,3}){3})(?::\d{1,5})?(?:[/?#]\S*)?$`)
)

// Resolve turns raw address-bar input into a navigable URL.
//
//	"https://x.com"  → unchanged
//	"example.com"    → "https://example.com"
//	"localhost:3000" → "https://localhost:3000"
//	"hello world"    → template with "hello%20world" inserted
//	"   "            → "" (home)
func Resolve(input, template string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if HasNavigableScheme(input) {
		return input
	}

	if LooksLikeHost(input) {
		return "https://" + input
	}

	return BuildSearchURL(input, template)
}

// HasNavigableScheme reports whether input already carries an http, https or file scheme.
func HasNavigableScheme(input string) bool {
	switch {
	case strings.HasPrefix(input, "http://"),
		strings.HasPrefix(input, "https://"),
		strings.HasPrefix(input, "file://"):
		return true
	}
	return false
}

// LooksLikeHost reports whether input is a domain name, localhost or a
// dotted-quad IPv4 address, each optionally followed by a port and a path.
// Classification is purely lexical.
func LooksLikeHost(input string) bool {
	if strings.ContainsAny(input, " \t\n") {
		return false
	}
	if localhostPattern.MatchString(input) {
		return true
	}
	if m := ipv4Pattern.FindStringSubmatch(input); m != nil {
		addr, err := netip.ParseAddr(m[1])
		return err == nil && addr.Is4()
	}
	return domainPattern.MatchString(asciiHost(input))
}

// asciiHost converts internationalized labels of the host part to punycode
// so "bücher.de/x" is matched like "xn--bcher-kva.de/x". Input that idna
// rejects is returned unchanged and left to the pattern.
func asciiHost(input string) string {
	end := strings.IndexAny(input, ":/?#")
	if end < 0 {
		end = len(input)
	}
	host, rest := input[:end], input[end:]
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return input
	}
	return ascii + rest
}

// BuildSearchURL inserts the encoded query into template.
func BuildSearchURL(query, template string) string {
	if template == "" {
		template = defaultTemplate
	}
	encoded := EncodeQueryComponent(query)
	if strings.Contains(template, QueryPlaceholder) {
		return strings.Replace(template, QueryPlaceholder, encoded, 1)
	}
	return template + encoded
}

// EncodeQueryComponent percent-encodes s for use inside a query value,
// encoding spaces as %20 rather than '+'.
func EncodeQueryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// DisplayTitle returns the label shown for a URL before the page reports a
// title: "New Tab" for the home page, otherwise the host without "www.".
// Unparseable input is returned unchanged.
func DisplayTitle(rawURL string) string {
	if strings.TrimSpace(rawURL) == "" {
		return newTabTitle
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return rawURL
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}

const newTabTitle = "New Tab"
