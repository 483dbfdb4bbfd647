package app

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pyanpyan/routinely/internal/command"
	"github.com/pyanpyan/routinely/internal/events"
	"github.com/pyanpyan/routinely/internal/model"
)

// settingsChangedMsg carries settings reloaded after an external file edit.
type settingsChangedMsg struct {
	settings model.AppSettings
}

// checklistSavedMsg reports a completed create or update.
type checklistSavedMsg struct {
	id model.ChecklistID
}

// checklistDeletedMsg reports a completed delete.
type checklistDeletedMsg struct {
	id model.ChecklistID
}

// repoErrorMsg carries a persistence failure to the status bar.
type repoErrorMsg struct {
	err error
}

// createChecklist persists a new checklist and records the event.
func (m Model) createChecklist(c model.Checklist) tea.Cmd {
	repo := m.repo
	journal := m.journal
	return func() tea.Msg {
		ctx := context.Background()
		if err := repo.SaveChecklist(ctx, c); err != nil {
			return repoErrorMsg{err: err}
		}
		record(ctx, journal, events.Created(c, time.Now()))
		return checklistSavedMsg{id: c.ID}
	}
}

// updateChecklist persists an edited checklist and records which fields
// changed.
func (m Model) updateChecklist(c model.Checklist, changes []command.ChangeKind) tea.Cmd {
	repo := m.repo
	journal := m.journal
	return func() tea.Msg {
		ctx := context.Background()
		if err := repo.SaveChecklist(ctx, c); err != nil {
			return repoErrorMsg{err: err}
		}
		record(ctx, journal, events.Updated(c.ID, changes, time.Now()))
		return checklistSavedMsg{id: c.ID}
	}
}

// deleteChecklist removes a checklist and records the event.
func (m Model) deleteChecklist(id model.ChecklistID) tea.Cmd {
	repo := m.repo
	journal := m.journal
	return func() tea.Msg {
		ctx := context.Background()
		if err := repo.DeleteChecklist(ctx, id); err != nil {
			return repoErrorMsg{err: err}
		}
		record(ctx, journal, events.Deleted(id, time.Now()))
		return checklistDeletedMsg{id: id}
	}
}

// saveSettings writes the preferences file in the background.
func (m Model) saveSettings(s model.AppSettings) tea.Cmd {
	prefs := m.prefs
	if prefs == nil {
		return nil
	}
	return func() tea.Msg {
		if err := prefs.Update(s); err != nil {
			return repoErrorMsg{err: err}
		}
		return nil
	}
}

// record appends to the journal, best effort. History must never block a
// write the user already sees as done.
func record(ctx context.Context, journal *events.Store, e events.Event) {
	if journal == nil {
		return
	}
	if err := journal.Append(ctx, e); err != nil {
		log.Printf("recording %s event: %v", e.Type, err)
	}
}
