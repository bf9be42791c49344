// Package model holds the Bubble Tea models behind interactive commands.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/atlas/internal/application/usecase"
	"github.com/bnema/atlas/internal/cli/styles"
	"github.com/bnema/atlas/internal/domain/autocomplete"
	"github.com/bnema/atlas/internal/domain/entity"
)

// suggestDelay coalesces keystrokes before suggestions are computed.
const suggestDelay = 150 * time.Millisecond

// ShellModel is an address bar with live suggestions over the session's tabs.
type ShellModel struct {
	input textinput.Model
	help  help.Model
	keys  styles.ShellKeyMap

	suggestions []autocomplete.Suggestion
	selected    int // -1 when the typed text is used as is
	seq         int // invalidates suggestion results for older input
	status      string
	statusErr   bool
	showHelp    bool
	width       int

	onChange func()

	ctx       context.Context
	session   *usecase.Session
	suggestUC *usecase.SuggestUseCase
	theme     *styles.Theme
}

// NewShellModel creates the shell over a restored session.
func NewShellModel(ctx context.Context, theme *styles.Theme, session *usecase.Session, suggestUC *usecase.SuggestUseCase) ShellModel {
	input := styles.NewAddressInput(theme)
	input.Focus()

	return ShellModel{
		input:     input,
		help:      styles.NewStyledHelp(theme),
		keys:      styles.DefaultShellKeyMap(),
		selected:  -1,
		width:     80,
		ctx:       ctx,
		session:   session,
		suggestUC: suggestUC,
		theme:     theme,
	}
}

// OnChange registers fn to run after every key that modifies the session.
func (m ShellModel) OnChange(fn func()) ShellModel {
	m.onChange = fn
	return m
}

func (m ShellModel) changed() {
	if m.onChange != nil {
		m.onChange()
	}
}

type suggestTickMsg struct{ seq int }

type suggestionsMsg struct {
	seq   int
	items []autocomplete.Suggestion
}

// ConfigReloadedMsg tells the shell its configuration was reloaded.
type ConfigReloadedMsg struct{}

// Init implements tea.Model.
func (m ShellModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m ShellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-8, 10)
		return m, nil

	case suggestTickMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		return m, m.fetchSuggestions(msg.seq, m.input.Value())

	case suggestionsMsg:
		if msg.seq == m.seq {
			m.suggestions = msg.items
			m.selected = -1
		}
		return m, nil

	case ConfigReloadedMsg:
		m.setStatus("configuration reloaded", false)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ShellModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Go):
		m.submit()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if len(m.suggestions) > 0 {
			m.selected = (m.selected + 1) % len(m.suggestions)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if len(m.suggestions) > 0 {
			m.selected--
			if m.selected < -1 {
				m.selected = len(m.suggestions) - 1
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if !m.session.GoBack(m.ctx) {
			m.setStatus("no previous page", true)
		} else {
			m.setStatus("", false)
			m.changed()
		}
		return m, nil

	case key.Matches(msg, m.keys.Forward):
		if !m.session.GoForward(m.ctx) {
			m.setStatus("no next page", true)
		} else {
			m.setStatus("", false)
			m.changed()
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		tab := m.session.Refresh(m.ctx)
		m.setStatus("refreshed "+displayURL(tab.URL), false)
		m.changed()
		return m, nil

	case key.Matches(msg, m.keys.NewTab):
		tab := m.session.AddTab(m.ctx)
		m.setStatus(fmt.Sprintf("opened tab %d", tab.ID), false)
		m.changed()
		return m, nil

	case key.Matches(msg, m.keys.CloseTab):
		m.closeActiveTab()
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.cycleTab(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.cycleTab(-1)
		return m, nil

	case key.Matches(msg, m.keys.Bookmark):
		switch {
		case m.session.ActiveTab().URL == entity.HomeURL:
			m.setStatus("nothing to bookmark", true)
		case m.session.ToggleBookmark(m.ctx):
			m.setStatus("bookmark added", false)
			m.changed()
		default:
			m.setStatus("bookmark removed", false)
			m.changed()
		}
		return m, nil

	case key.Matches(msg, m.keys.ZoomIn):
		m.zoom(entity.ZoomIn)
		return m, nil

	case key.Matches(msg, m.keys.ZoomOut):
		m.zoom(entity.ZoomOut)
		return m, nil

	case key.Matches(msg, m.keys.ZoomReset):
		m.zoom(entity.ZoomReset)
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}

	m.seq++
	m.selected = -1
	if strings.TrimSpace(m.input.Value()) == "" {
		m.suggestions = nil
		return m, cmd
	}
	seq := m.seq
	tick := tea.Tick(suggestDelay, func(time.Time) tea.Msg { return suggestTickMsg{seq: seq} })
	return m, tea.Batch(cmd, tick)
}

func (m ShellModel) fetchSuggestions(seq int, query string) tea.Cmd {
	data := m.session.LocalData()
	template := m.session.Settings().SearchEngine
	return func() tea.Msg {
		return suggestionsMsg{seq: seq, items: m.suggestUC.Suggest(m.ctx, query, data, template)}
	}
}

// submit navigates the active tab to the selected suggestion or the typed text.
func (m *ShellModel) submit() {
	target := m.input.Value()
	if m.selected >= 0 && m.selected < len(m.suggestions) {
		target = m.suggestions[m.selected].Target()
	}
	if strings.TrimSpace(target) == "" {
		return
	}

	tab := m.session.Navigate(m.ctx, target)
	m.input.SetValue("")
	m.suggestions = nil
	m.selected = -1
	m.seq++
	m.setStatus("→ "+displayURL(tab.URL), false)
	m.changed()
}

func (m *ShellModel) closeActiveTab() {
	tabs := m.session.Tabs()
	if len(tabs) <= 1 {
		m.setStatus("cannot close the last tab", true)
		return
	}
	id := m.session.ActiveTab().ID
	m.session.CloseTab(m.ctx, id)
	m.setStatus(fmt.Sprintf("closed tab %d", id), false)
	m.changed()
}

func (m *ShellModel) cycleTab(step int) {
	tabs := m.session.Tabs()
	if len(tabs) < 2 {
		return
	}
	active := m.session.ActiveTab().ID
	for i, tab := range tabs {
		if tab.ID == active {
			next := tabs[(i+step+len(tabs))%len(tabs)]
			m.session.ActivateTab(m.ctx, next.ID)
			m.changed()
			return
		}
	}
}

func (m *ShellModel) zoom(dir entity.ZoomDirection) {
	factor := m.session.HandleZoom(m.ctx, dir)
	m.setStatus(fmt.Sprintf("zoom %d%%", int(factor*100+0.5)), false)
	m.changed()
}

func (m *ShellModel) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// Status returns the last status line, for tests.
func (m ShellModel) Status() string {
	return m.status
}

// Suggestions returns the suggestions currently displayed.
func (m ShellModel) Suggestions() []autocomplete.Suggestion {
	return m.suggestions
}

// View implements tea.Model.
func (m ShellModel) View() string {
	active := m.session.ActiveTab()

	sections := []string{
		m.theme.TabStrip(m.session.Tabs(), active.ID),
		m.theme.InputBox(m.input.View(), true, m.width),
	}
	if len(m.suggestions) > 0 {
		sections = append(sections, m.theme.SuggestionList(m.suggestions, m.selected))
	}

	detail := m.theme.TabDetail(active)
	if m.session.IsBookmarked() {
		detail = strings.TrimRight(detail, "\n") + " " + m.theme.AccentBadge("★") + "\n"
	}
	sections = append(sections, detail)

	if m.status != "" {
		style := m.theme.Subtle
		if m.statusErr {
			style = m.theme.WarningStyle
		}
		sections = append(sections, style.Render(m.status))
	}

	if user := m.session.Username(); user != "" {
		sections = append(sections, m.theme.Subtle.Render("signed in as "+user))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func displayURL(u string) string {
	if u == "" {
		return "start page"
	}
	return styles.Truncate(u, 60)
}
