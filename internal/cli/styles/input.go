package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

const addressCharLimit = 2048

// NewAddressInput creates the address bar input.
func NewAddressInput(theme *Theme) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search or enter address"
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.Prompt = "→ "
	ti.CharLimit = addressCharLimit
	return ti
}
