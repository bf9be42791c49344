package styles

import (
	"fmt"
	"time"
)

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// ZoomBadge renders a zoom factor as a percentage, or nothing at 100%.
func (t *Theme) ZoomBadge(zoom float64) string {
	pct := int(zoom*100 + 0.5)
	if pct == 100 {
		return ""
	}
	return t.BadgeMuted.Render(fmt.Sprintf("%d%%", pct))
}

// RelativeTime formats tm relative to now.
func RelativeTime(tm, now time.Time) string {
	if tm.IsZero() {
		return "never"
	}
	diff := now.Sub(tm)

	plural := func(n int, unit string) string {
		return fmt.Sprintf("%d%s ago", n, unit)
	}

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return plural(int(diff.Minutes()), "m")
	case diff < 24*time.Hour:
		return plural(int(diff.Hours()), "h")
	case diff < 7*24*time.Hour:
		return plural(int(diff.Hours()/24), "d")
	default:
		return tm.Format("2006-01-02")
	}
}
