package app

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyanpyan/routinely/internal/events"
	"github.com/pyanpyan/routinely/internal/model"
	"github.com/pyanpyan/routinely/internal/ui/checklistform"
	"github.com/pyanpyan/routinely/internal/ui/library"
	"github.com/pyanpyan/routinely/tests/testutil"
)

func newTestApp(t *testing.T) (Model, *events.Store) {
	t.Helper()
	repo := testutil.NewTestRepository(t)
	journal := testutil.NewTestJournal(t)

	m := New(repo, journal, nil)
	m = drive(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, journal
}

// drive sends a message through Update and, when a command comes back,
// feeds its result back in as well.
func drive(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd == nil {
		return m
	}
	if result := cmd(); result != nil {
		return drive(t, m, result)
	}
	return m
}

func TestOpeningAChecklistSwitchesViewAndRecordsAccess(t *testing.T) {
	m, journal := newTestApp(t)

	m = drive(t, m, library.OpenMsg{ID: "school"})

	assert.Equal(t, ViewChecklist, m.currentView)
	assert.Equal(t, model.ChecklistID("school"), m.checklistView.Checklist().ID)

	recent, err := journal.Recent(context.Background(), "school", 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, events.TypeAccessed, recent[0].Type)
}

func TestDeletingAChecklistRemovesItAndRecordsEvent(t *testing.T) {
	m, journal := newTestApp(t)
	repo := m.repo

	m = drive(t, m, library.DeleteMsg{ID: "school"})

	got, err := repo.GetChecklist(context.Background(), "school")
	require.NoError(t, err)
	assert.Nil(t, got)

	recent, err := journal.Recent(context.Background(), "school", 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, events.TypeDeleted, recent[0].Type)
	assert.Equal(t, ViewLibrary, m.currentView)
}

func TestCreatedChecklistIsPersistedAndJournaled(t *testing.T) {
	m, journal := newTestApp(t)
	repo := m.repo

	created := model.Checklist{
		ID:       "gym",
		Name:     "Gym",
		Schedule: model.AlwaysOnSchedule(),
		Items: []model.ChecklistItem{
			{ID: "shoes", Title: "Pack shoes", State: model.StatePending},
		},
		Color:            model.ColorCalmGreen,
		StatePersistence: model.DefaultStatePersistence,
	}
	m = drive(t, m, checklistform.CreatedMsg{Checklist: created})

	assert.Equal(t, ViewLibrary, m.currentView)

	got, err := repo.GetChecklist(context.Background(), "gym")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Gym", got.Name)

	recent, err := journal.Recent(context.Background(), "gym", 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, events.TypeCreated, recent[0].Type)
	assert.Equal(t, "Gym", recent[0].Name)
	assert.Equal(t, 1, recent[0].ItemCount)
}

func TestHelpToggles(t *testing.T) {
	m, _ := newTestApp(t)

	question := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}
	m = drive(t, m, question)
	assert.Equal(t, ViewHelp, m.currentView)

	m = drive(t, m, question)
	assert.Equal(t, ViewLibrary, m.currentView)
}
