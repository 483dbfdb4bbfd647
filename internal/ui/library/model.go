// Package library is the home view: every checklist, active ones first.
package library

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pyanpyan/routinely/internal/keys"
	"github.com/pyanpyan/routinely/internal/model"
	"github.com/pyanpyan/routinely/internal/query"
	"github.com/pyanpyan/routinely/internal/repository"
	"github.com/pyanpyan/routinely/internal/theme"
)

// LoadedMsg is sent when the checklists have been loaded and classified.
type LoadedMsg struct {
	Entries []Entry
}

// LoadErrorMsg is sent when loading the collection fails.
type LoadErrorMsg struct {
	Err error
}

// OpenMsg is sent when the user selects a checklist to open.
type OpenMsg struct {
	ID model.ChecklistID
}

// EditMsg is sent when the user wants to edit the selected checklist.
type EditMsg struct {
	Checklist model.Checklist
}

// DeleteMsg is sent when the user deletes the selected checklist.
type DeleteMsg struct {
	ID model.ChecklistID
}

// Model is the library view component.
type Model struct {
	list    list.Model
	repo    repository.Repository
	keys    *keys.KeyMap
	now     func() time.Time
	loadErr error
	width   int
	height  int
}

// New creates a library model.
func New(repo repository.Repository, k *keys.KeyMap, now func() time.Time, width, height int) Model {
	l := list.New([]list.Item{}, Delegate{}, width, height)
	l.Title = "Checklists"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	if now == nil {
		now = time.Now
	}
	return Model{list: l, repo: repo, keys: k, now: now, width: width, height: height}
}

// Init loads the collection.
func (m Model) Init() tea.Cmd {
	return m.Load()
}

// Load reads all checklists, classifies them against the current moment,
// and sorts active ones first.
func (m Model) Load() tea.Cmd {
	repo := m.repo
	now := m.now()
	return func() tea.Msg {
		checklists, err := repo.GetAllChecklists(context.Background())
		if err != nil {
			return LoadErrorMsg{Err: err}
		}
		entries := make([]Entry, len(checklists))
		for i, c := range checklists {
			entries[i] = Entry{Checklist: c, Activity: query.GetActivityState(c, now)}
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Activity == query.Active && entries[j].Activity == query.Inactive
		})
		return LoadedMsg{Entries: entries}
	}
}

// Update handles messages for the library view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		m.loadErr = nil
		items := make([]list.Item, len(msg.Entries))
		active := 0
		for i, e := range msg.Entries {
			items[i] = e
			if e.Activity == query.Active {
				active++
			}
		}
		cmd := m.list.SetItems(items)
		m.list.Title = listTitle(active, len(msg.Entries))
		return m, cmd

	case LoadErrorMsg:
		m.loadErr = msg.Err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Select):
			if e, ok := m.selected(); ok {
				return m, func() tea.Msg { return OpenMsg{ID: e.Checklist.ID} }
			}
		case key.Matches(msg, m.keys.Edit):
			if e, ok := m.selected(); ok {
				return m, func() tea.Msg { return EditMsg{Checklist: e.Checklist} }
			}
		case key.Matches(msg, m.keys.Delete):
			if e, ok := m.selected(); ok {
				return m, func() tea.Msg { return DeleteMsg{ID: e.Checklist.ID} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// SetSize resizes the embedded list.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height)
}

// View renders the library.
func (m Model) View() string {
	if m.loadErr != nil {
		return theme.PanelStyle.Render(
			theme.ErrorStyle.Render("Could not load checklists") + "\n\n" + m.loadErr.Error(),
		)
	}
	return m.list.View()
}

func (m Model) selected() (Entry, bool) {
	item := m.list.SelectedItem()
	if item == nil {
		return Entry{}, false
	}
	e, ok := item.(Entry)
	return e, ok
}

func listTitle(active, total int) string {
	if total == 0 {
		return "Checklists"
	}
	return fmt.Sprintf("Checklists (%d active of %d)", active, total)
}
