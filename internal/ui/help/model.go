// Package help is the keyboard shortcuts overlay.
package help

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pyanpyan/routinely/internal/keys"
	"github.com/pyanpyan/routinely/internal/theme"
)

// Model shows every binding, grouped the way KeyMap.FullHelp groups them.
type Model struct {
	keys   *keys.KeyMap
	help   help.Model
	width  int
	height int
}

// New creates the help overlay.
func New(k *keys.KeyMap, width, height int) Model {
	h := help.New()
	h.ShowAll = true
	h.Width = width - 4
	return Model{keys: k, help: h, width: width, height: height}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the overlay panel.
func (m Model) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1).
		Render("Keyboard Shortcuts")

	sections := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		m.help.View(m.keys),
		"",
		theme.HelpStyle.Render("Press ? again to close."),
	)

	return theme.PanelStyle.
		Width(m.width - 4).
		Render(sections)
}

// SetSize updates the overlay dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width - 4
}
