package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateShortcut(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		url      string
		icon     string
		gradient string
		wantErrs int
	}{
		{name: "minimal", url: "https://go.dev"},
		{name: "full", title: "Go", url: "https://go.dev", icon: "G", gradient: "gradient-2"},
		{name: "hex gradient", url: "https://go.dev", gradient: "#1a2B3c"},
		{name: "icon url", url: "https://go.dev", icon: "https://go.dev/favicon.ico"},
		{name: "emoji icon", url: "https://go.dev", icon: "🐹"},
		{name: "about url", url: "about:blank"},
		{name: "empty url", url: "  ", wantErrs: 1},
		{name: "relative url", url: "go.dev", wantErrs: 1},
		{name: "title newline", title: "a\nb", url: "https://go.dev", wantErrs: 1},
		{name: "title too long", title: strings.Repeat("x", 65), url: "https://go.dev", wantErrs: 1},
		{name: "long icon", url: "https://go.dev", icon: "gopher", wantErrs: 1},
		{name: "unknown gradient", url: "https://go.dev", gradient: "blue", wantErrs: 1},
		{name: "everything wrong", title: "a\nb", url: "", icon: "gopher", gradient: "#fff", wantErrs: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateShortcut(tt.title, tt.url, tt.icon, tt.gradient)
			assert.Len(t, errs, tt.wantErrs, "%v", errs)
		})
	}
}

func TestIsHexColor(t *testing.T) {
	assert.True(t, IsHexColor("#00ADD8"))
	assert.False(t, IsHexColor("00ADD8"))
	assert.False(t, IsHexColor("#00ADD"))
	assert.False(t, IsHexColor("#00ADDG"))
}
