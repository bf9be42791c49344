package entity

import (
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ShortcutGradients are the named tile backgrounds of the start page.
var ShortcutGradients = []string{"gradient-1", "gradient-2", "gradient-3"}

// Shortcut is a start-page tile.
type Shortcut struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
	Gradient string `json:"gradient"`
	IsCustom bool   `json:"isCustom"`
}

// NewCustomShortcut creates a user-defined shortcut with a fresh id. An empty
// icon becomes the title's first letter, an empty gradient a random named one.
func NewCustomShortcut(title, url, icon, gradient string) Shortcut {
	icon = strings.TrimSpace(icon)
	if icon == "" {
		icon = initial(title)
	}
	gradient = strings.TrimSpace(gradient)
	if gradient == "" {
		gradient = ShortcutGradients[rand.IntN(len(ShortcutGradients))]
	}
	return Shortcut{
		ID:       uuid.NewString(),
		Title:    title,
		URL:      url,
		Icon:     icon,
		Gradient: gradient,
		IsCustom: true,
	}
}

func initial(title string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(title))
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}
