// Package tui renders the language filter in a terminal. It drives the same
// reducer as the web widget; only the input mapping and drawing differ.
package tui

import (
	"strings"

	"langfilter/models"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultListHeight = 8

var (
	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	rowStyle    = lipgloss.NewStyle().PaddingLeft(2)
	activeStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("25")).
			Bold(true)
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model for one language filter.
type Model struct {
	entries []models.Entry
	state   models.FilterState
	input   textinput.Model

	height int // visible rows in the list
	offset int // first visible row
}

// New creates a closed filter over the given entries.
func New(entries []models.Entry) Model {
	ti := textinput.New()
	ti.Placeholder = "Filter Languages"
	ti.Prompt = "/ "

	return Model{
		entries: entries,
		state:   models.NewFilterState(),
		input:   ti,
		height:  defaultListHeight,
	}
}

// State exposes the current widget state.
func (m Model) State() models.FilterState {
	return m.state
}

// Offset is the first visible row of the list viewport.
func (m Model) Offset() int {
	return m.offset
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Button, header, input and hint take the rest
		if h := msg.Height - 8; h > 0 {
			m.height = h
			m.scrollToActive()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		return m.dispatch(models.Event{Kind: models.EventToggle})
	}

	if !m.state.ShowDropdown {
		switch msg.String() {
		case "enter", " ":
			return m.dispatch(models.Event{Kind: models.EventToggle})
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "up":
		return m.dispatch(models.Event{Kind: models.EventKeyDown, Key: models.KeyArrowUp})
	case "down":
		return m.dispatch(models.Event{Kind: models.EventKeyDown, Key: models.KeyArrowDown})
	case "esc":
		// The terminal has no pointer, so esc stands in for leaving the input
		return m.dispatch(models.Event{Kind: models.EventBlur})
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		next, nextCmd := m.dispatch(models.Event{Kind: models.EventFilterInput, Value: after})
		return next, tea.Batch(cmd, nextCmd)
	}
	return m, cmd
}

// dispatch runs the reducer and carries out its effects.
func (m Model) dispatch(ev models.Event) (Model, tea.Cmd) {
	next, fx := models.Reduce(m.state, ev, m.entries)
	m.state = next

	var cmd tea.Cmd
	if fx.FocusInput {
		cmd = m.input.Focus()
	}
	if !next.ShowDropdown {
		m.input.Blur()
	}
	if next.FilterText != m.input.Value() {
		m.input.SetValue(next.FilterText)
	}
	if fx.ScrollToActive {
		m.scrollToActive()
	}

	return m, cmd
}

// scrollToActive brings the highlighted row into view, aligned to the
// bottom edge of the list when it sits below the viewport.
func (m *Model) scrollToActive() {
	idx := m.state.SelectedIndex
	switch {
	case idx < m.offset:
		m.offset = idx
	case idx >= m.offset+m.height:
		m.offset = idx - m.height + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(buttonStyle.Render("▾ " + m.state.Label()))
	sb.WriteString("\n")

	if !m.state.ShowDropdown {
		sb.WriteString(hintStyle.Render("enter: open • q: quit"))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(headerStyle.Render("Search Language"))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")

	filtered := models.FilterEntries(m.entries, m.state.FilterText)
	end := m.offset + m.height
	if end > len(filtered) {
		end = len(filtered)
	}
	for i := m.offset; i < end; i++ {
		if i == m.state.SelectedIndex {
			sb.WriteString(activeStyle.Render("› " + filtered[i].Title))
		} else {
			sb.WriteString(rowStyle.Render(filtered[i].Title))
		}
		sb.WriteString("\n")
	}
	if len(filtered) == 0 {
		sb.WriteString(hintStyle.Render("  no matching languages"))
		sb.WriteString("\n")
	}

	sb.WriteString(hintStyle.Render("↑/↓: move • esc: close • tab: toggle"))
	sb.WriteString("\n")
	return sb.String()
}
