package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ShellKeyMap defines the shell's keybindings.
type ShellKeyMap struct {
	Go        key.Binding
	Up        key.Binding
	Down      key.Binding
	Back      key.Binding
	Forward   key.Binding
	Refresh   key.Binding
	NewTab    key.Binding
	CloseTab  key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Bookmark  key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	ZoomReset key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k ShellKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Go, k.Back, k.Forward, k.NewTab, k.Bookmark, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k ShellKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Go, k.Up, k.Down},
		{k.Back, k.Forward, k.Refresh},
		{k.NewTab, k.CloseTab, k.NextTab, k.PrevTab},
		{k.Bookmark, k.ZoomIn, k.ZoomOut, k.ZoomReset},
		{k.Help, k.Quit},
	}
}

// DefaultShellKeyMap returns the default shell keybindings.
func DefaultShellKeyMap() ShellKeyMap {
	return ShellKeyMap{
		Go:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go")),
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev suggestion")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next suggestion")),
		Back:      key.NewBinding(key.WithKeys("alt+left", "ctrl+b"), key.WithHelp("alt+←", "back")),
		Forward:   key.NewBinding(key.WithKeys("alt+right", "ctrl+f"), key.WithHelp("alt+→", "forward")),
		Refresh:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "refresh")),
		NewTab:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "new tab")),
		CloseTab:  key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "close tab")),
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Bookmark:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "bookmark")),
		ZoomIn:    key.NewBinding(key.WithKeys("ctrl+up"), key.WithHelp("ctrl+↑", "zoom in")),
		ZoomOut:   key.NewBinding(key.WithKeys("ctrl+down"), key.WithHelp("ctrl+↓", "zoom out")),
		ZoomReset: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "reset zoom")),
		Help:      key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = theme.HelpDesc
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.Ellipsis = theme.Subtle
	return h
}
