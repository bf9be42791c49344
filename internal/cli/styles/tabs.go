package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/atlas/internal/domain/entity"
)

const maxTabLabel = 24

// TabLabel is the short label shown in the tab strip.
func TabLabel(tab entity.Tab) string {
	title := strings.TrimSpace(tab.Title)
	if title == "" {
		title = entity.DefaultTabTitle
	}
	return fmt.Sprintf("%d %s", tab.ID, Truncate(title, maxTabLabel))
}

// TabStrip renders tabs on one line, highlighting the active one.
func (t *Theme) TabStrip(tabs []entity.Tab, active entity.TabID) string {
	cells := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		style := t.InactiveTab
		if tab.ID == active {
			style = t.ActiveTab
		}
		cells = append(cells, style.Render(TabLabel(tab)))
	}
	gap := lipgloss.NewStyle().Foreground(t.Border).Render("│")
	return t.TabBar.Render(strings.Join(cells, gap))
}

// Truncate shortens s to max runes, ending with an ellipsis.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if max <= 1 || len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
