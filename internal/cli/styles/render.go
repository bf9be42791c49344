package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/atlas/internal/domain/autocomplete"
	"github.com/bnema/atlas/internal/domain/entity"
)

const maxURLWidth = 72

// TabList renders one line per tab with its position in its own history.
func (t *Theme) TabList(tabs []entity.Tab, active entity.TabID, now time.Time) string {
	var b strings.Builder
	for _, tab := range tabs {
		marker := "  "
		style := t.ListItem
		if tab.ID == active {
			marker = "▶ "
			style = t.ListItemSelected
		}
		line := fmt.Sprintf("%s%s", marker, TabLabel(tab))
		meta := []string{
			t.MutedBadge(fmt.Sprintf("%d/%d", tab.CurrentIndex+1, len(tab.History))),
			t.ListItemDesc.Render(RelativeTime(tab.LastRefresh, now)),
		}
		if z := t.ZoomBadge(tab.Zoom); z != "" {
			meta = append(meta, z)
		}
		b.WriteString(style.Render(line) + " " + strings.Join(meta, " ") + "\n")
		if tab.URL != "" {
			b.WriteString(t.ListItemDesc.Render("    "+Truncate(tab.URL, maxURLWidth)) + "\n")
		}
	}
	return b.String()
}

// TabDetail renders the active tab's address and back/forward state.
func (t *Theme) TabDetail(tab entity.Tab) string {
	address := tab.URL
	if address == "" {
		address = t.Subtle.Render("(start page)")
	}
	nav := fmt.Sprintf("back:%v forward:%v", tab.CanGoBack(), tab.CanGoForward())
	line := t.Title.Render(TabLabel(tab)) + "  " + t.Subtle.Render(nav)
	if z := t.ZoomBadge(tab.Zoom); z != "" {
		line += " " + z
	}
	return line + "\n" + t.Highlight.Render(address) + "\n"
}

// BookmarkList renders saved bookmarks, marking the one matching current.
func (t *Theme) BookmarkList(bookmarks []entity.Bookmark) string {
	if len(bookmarks) == 0 {
		return t.Subtle.Render("No bookmarks") + "\n"
	}
	var b strings.Builder
	for i, bm := range bookmarks {
		fmt.Fprintf(&b, "%s %s\n", t.Subtle.Render(fmt.Sprintf("%3d", i+1)), t.Normal.Render(bm.Title))
		b.WriteString(t.ListItemDesc.Render("    "+Truncate(bm.URL, maxURLWidth)) + "\n")
	}
	return b.String()
}

// ShortcutList renders start-page shortcuts.
func (t *Theme) ShortcutList(shortcuts []entity.Shortcut) string {
	if len(shortcuts) == 0 {
		return t.Subtle.Render("No shortcuts") + "\n"
	}
	var b strings.Builder
	for _, sc := range shortcuts {
		title := t.Normal.Render(sc.Title)
		if sc.IsCustom {
			title += " " + t.MutedBadge("custom")
		}
		fmt.Fprintf(&b, "%s  %s\n", t.Subtle.Render(sc.ID), title)
		b.WriteString(t.ListItemDesc.Render("    "+Truncate(sc.URL, maxURLWidth)) + "\n")
	}
	return b.String()
}

// HistoryList renders history entries newest first, at most limit (0 = all).
func (t *Theme) HistoryList(entries []entity.HistoryEntry, limit int) string {
	if len(entries) == 0 {
		return t.Subtle.Render("History is empty") + "\n"
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	var b strings.Builder
	for _, e := range entries {
		title := e.Title
		if title == "" {
			title = e.URL
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			t.Subtle.Render(e.Timestamp),
			t.Normal.Render(Truncate(title, maxURLWidth)),
			t.Subtle.Render(fmt.Sprintf("#%d", e.ID)))
		b.WriteString(t.ListItemDesc.Render("         "+Truncate(e.URL, maxURLWidth)) + "\n")
	}
	return b.String()
}

// SuggestionList renders suggestions with the selected row highlighted (-1 = none).
func (t *Theme) SuggestionList(suggestions []autocomplete.Suggestion, selected int) string {
	var b strings.Builder
	for i, s := range suggestions {
		style := t.ListItem
		if i == selected {
			style = t.ListItemSelected
		}
		line := style.Render(s.Text) + " " + t.MutedBadge(string(s.Source))
		if s.URL != "" {
			line += " " + t.ListItemDesc.Render(Truncate(s.URL, maxURLWidth/2))
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// SyncLine renders the sync state of one entity.
func (t *Theme) SyncLine(entity string, pending bool, err error) string {
	status := t.SuccessStyle.Render("ok")
	switch {
	case err != nil:
		status = t.ErrorStyle.Render("error: " + err.Error())
	case pending:
		status = t.WarningStyle.Render("pending")
	}
	return fmt.Sprintf("%-10s %s\n", entity, status)
}
