// Package checklist is the single-checklist view: open it, tick items off,
// ignore them for today, or reset the day.
package checklist

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pyanpyan/routinely/internal/access"
	"github.com/pyanpyan/routinely/internal/command"
	"github.com/pyanpyan/routinely/internal/keys"
	"github.com/pyanpyan/routinely/internal/model"
	"github.com/pyanpyan/routinely/internal/repository"
	"github.com/pyanpyan/routinely/internal/theme"
)

// OpenedMsg is sent when the checklist has been loaded through the access
// flow (auto-reset applied).
type OpenedMsg struct {
	Checklist model.Checklist
}

// OpenErrorMsg is sent when the open flow fails.
type OpenErrorMsg struct {
	Err error
}

// SavedMsg is sent after an item mutation has been persisted.
type SavedMsg struct {
	Checklist model.Checklist
}

// SaveErrorMsg is sent when persisting a mutation fails.
type SaveErrorMsg struct {
	Err error
}

// BackMsg is sent when the user leaves the view.
type BackMsg struct{}

// Model is the checklist view component.
type Model struct {
	accessor  *access.Accessor
	repo      repository.Repository
	keys      *keys.KeyMap
	checklist model.Checklist
	cursor    int
	loading   bool
	err       error
	width     int
	height    int
}

// New creates a checklist view model.
func New(accessor *access.Accessor, repo repository.Repository, k *keys.KeyMap, width, height int) Model {
	return Model{accessor: accessor, repo: repo, keys: k, width: width, height: height}
}

// Open runs the access flow for the given checklist.
func (m *Model) Open(id model.ChecklistID) tea.Cmd {
	m.loading = true
	m.err = nil
	m.cursor = 0
	accessor := m.accessor
	return func() tea.Msg {
		c, err := accessor.Open(context.Background(), id)
		if err != nil {
			return OpenErrorMsg{Err: err}
		}
		return OpenedMsg{Checklist: c}
	}
}

// Update handles messages for the checklist view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case OpenedMsg:
		m.loading = false
		m.checklist = msg.Checklist
		return m, nil

	case OpenErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case SavedMsg:
		m.checklist = msg.Checklist
		return m, nil

	case SaveErrorMsg:
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}
	return m, nil
}

func (m Model) handleKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return BackMsg{} }

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.checklist.Items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Done):
		return m.mutateCurrent(func(item model.ChecklistItem) (model.ChecklistItem, error) {
			return command.MarkItemDone{ItemID: item.ID}.Execute(item)
		})
	case key.Matches(msg, m.keys.Ignore):
		return m.mutateCurrent(func(item model.ChecklistItem) (model.ChecklistItem, error) {
			return command.IgnoreItemToday{ItemID: item.ID}.Execute(item)
		})
	case key.Matches(msg, m.keys.Undo):
		return m.mutateCurrent(func(item model.ChecklistItem) (model.ChecklistItem, error) {
			return item.Reset(), nil
		})

	case key.Matches(msg, m.keys.Reset):
		updated := command.ResetDailyState{}.Execute(m.checklist)
		return m, m.persist(updated)
	}
	return m, nil
}

// mutateCurrent applies fn to the item under the cursor and persists the
// resulting checklist.
func (m Model) mutateCurrent(fn func(model.ChecklistItem) (model.ChecklistItem, error)) (Model, tea.Cmd) {
	if m.cursor >= len(m.checklist.Items) {
		return m, nil
	}
	item, err := fn(m.checklist.Items[m.cursor])
	if err != nil {
		m.err = err
		return m, nil
	}
	updated := m.checklist.UpdateItem(item)
	return m, m.persist(updated)
}

func (m Model) persist(updated model.Checklist) tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		if err := repo.SaveChecklist(context.Background(), updated); err != nil {
			return SaveErrorMsg{Err: err}
		}
		return SavedMsg{Checklist: updated}
	}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Checklist returns the currently displayed checklist.
func (m Model) Checklist() model.Checklist {
	return m.checklist
}

// View renders the checklist.
func (m Model) View() string {
	if m.loading {
		return theme.PanelStyle.Render("Loading…")
	}
	if m.err != nil {
		return theme.PanelStyle.Render(
			theme.ErrorStyle.Render("Something went wrong") + "\n\n" + m.err.Error(),
		)
	}

	var b strings.Builder

	title := theme.ChecklistTint(m.checklist.Color).Bold(true).Render(m.checklist.Name)
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render(fmt.Sprintf(
		"resets after %s", strings.ToLower(m.checklist.StatePersistence.DisplayName()),
	)))
	b.WriteString("\n\n")

	for i, item := range m.checklist.Items {
		glyph := theme.StateStyle(item.State).Render(theme.StateGlyph(item.State))
		title := item.Title
		if item.IconID != nil {
			title = fmt.Sprintf("%s (%s)", title, *item.IconID)
		}
		line := glyph + " " + title
		if i == m.cursor {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = theme.ListItemStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.checklist.Items) == 0 {
		b.WriteString(theme.HelpStyle.Render("No items yet — press e to edit."))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
