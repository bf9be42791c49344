// Package validation checks user-supplied values before they enter a session.
package validation

import (
	"net/url"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/bnema/atlas/internal/domain/entity"
)

const (
	maxShortcutTitle = 64
	maxShortcutIcon  = 4
)

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether value is a #RRGGBB color.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ValidateShortcut returns one message per invalid field of a custom
// shortcut. rawURL is the resolved target; title, icon and gradient may be
// empty and are defaulted by the caller.
func ValidateShortcut(title, rawURL, icon, gradient string) []string {
	var errs []string
	errs = append(errs, validateShortcutTitle(title)...)
	errs = append(errs, validateShortcutURL(rawURL)...)
	errs = append(errs, validateShortcutIcon(icon)...)
	errs = append(errs, validateShortcutGradient(gradient)...)
	return errs
}

func validateShortcutTitle(value string) []string {
	var errs []string
	if strings.ContainsAny(value, "\r\n") {
		errs = append(errs, "shortcut title must not contain newlines")
	}
	if utf8.RuneCountInString(value) > maxShortcutTitle {
		errs = append(errs, "shortcut title is too long")
	}
	return errs
}

func validateShortcutURL(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return []string{"shortcut url cannot be empty"}
	}
	parsed, err := url.Parse(value)
	if err != nil || parsed.Scheme == "" || (parsed.Host == "" && parsed.Opaque == "") {
		return []string{"shortcut url must be a valid absolute URL"}
	}
	return nil
}

// validateShortcutIcon accepts a short label (a letter or an emoji) or an
// http(s) image URL.
func validateShortcutIcon(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" || utf8.RuneCountInString(value) <= maxShortcutIcon {
		return nil
	}
	if parsed, err := url.Parse(value); err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != "" {
		return nil
	}
	return []string{"shortcut icon must be at most 4 characters or an http(s) URL"}
}

// validateShortcutGradient accepts a named tile gradient or a #RRGGBB color.
func validateShortcutGradient(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" || IsHexColor(value) || slices.Contains(entity.ShortcutGradients, value) {
		return nil
	}
	return []string{"shortcut gradient must be one of " + strings.Join(entity.ShortcutGradients, ", ") + " or a hex color like #RRGGBB"}
}
