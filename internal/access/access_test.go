package access

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyanpyan/routinely/internal/model"
	"github.com/pyanpyan/routinely/internal/repository"
)

// fakeRepo is an in-memory Repository with injectable save failures.
type fakeRepo struct {
	checklists map[model.ChecklistID]model.Checklist
	saveErr    error
	saved      []model.Checklist
}

func newFakeRepo(cs ...model.Checklist) *fakeRepo {
	r := &fakeRepo{checklists: make(map[model.ChecklistID]model.Checklist)}
	for _, c := range cs {
		r.checklists[c.ID] = c
	}
	return r
}

func (r *fakeRepo) GetAllChecklists(ctx context.Context) ([]model.Checklist, error) {
	var out []model.Checklist
	for _, c := range r.checklists {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeRepo) GetChecklist(ctx context.Context, id model.ChecklistID) (*model.Checklist, error) {
	c, ok := r.checklists[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeRepo) SaveChecklist(ctx context.Context, c model.Checklist) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.checklists[c.ID] = c
	r.saved = append(r.saved, c)
	return nil
}

func (r *fakeRepo) DeleteChecklist(ctx context.Context, id model.ChecklistID) error {
	delete(r.checklists, id)
	return nil
}

func (r *fakeRepo) ExportJSON(ctx context.Context) (string, error) { return "[]", nil }

func (r *fakeRepo) ImportFromJSON(ctx context.Context, text string) error { return nil }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func accessedChecklist(lastAccess *time.Time) model.Checklist {
	return model.Checklist{
		ID:       "morning",
		Name:     "Morning",
		Schedule: model.AlwaysOnSchedule(),
		Items: []model.ChecklistItem{
			{ID: "a", Title: "A", State: model.StateDone},
			{ID: "b", Title: "B", State: model.StatePending},
		},
		Color:            model.ColorSoftBlue,
		StatePersistence: model.PersistFifteenMinutes,
		LastAccessedAt:   lastAccess,
	}
}

func TestOpenResetsAfterPersistenceWindow(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	last := now.Add(-20 * time.Minute)
	repo := newFakeRepo(accessedChecklist(&last))

	a := New(repo, nil, fixedClock(now))
	got, err := a.Open(context.Background(), "morning")
	require.NoError(t, err)

	assert.Equal(t, model.StatePending, got.Items[0].State)
	require.NotNil(t, got.LastAccessedAt)
	assert.Equal(t, now, *got.LastAccessedAt)

	// The reset was persisted.
	stored := repo.checklists["morning"]
	assert.Equal(t, model.StatePending, stored.Items[0].State)
}

func TestOpenWithinWindowOnlyRefreshesStamp(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	last := now.Add(-10 * time.Minute)
	repo := newFakeRepo(accessedChecklist(&last))

	a := New(repo, nil, fixedClock(now))
	got, err := a.Open(context.Background(), "morning")
	require.NoError(t, err)

	assert.Equal(t, model.StateDone, got.Items[0].State)
	require.NotNil(t, got.LastAccessedAt)
	assert.Equal(t, now, *got.LastAccessedAt)
}

func TestFirstAccessNeverResets(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	repo := newFakeRepo(accessedChecklist(nil))

	a := New(repo, nil, fixedClock(now))
	got, err := a.Open(context.Background(), "morning")
	require.NoError(t, err)

	assert.Equal(t, model.StateDone, got.Items[0].State)
	require.NotNil(t, got.LastAccessedAt)
}

func TestNeverPersistenceNeverResets(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	last := now.Add(-1000 * time.Hour)
	c := accessedChecklist(&last)
	c.StatePersistence = model.PersistNever
	repo := newFakeRepo(c)

	a := New(repo, nil, fixedClock(now))
	got, err := a.Open(context.Background(), "morning")
	require.NoError(t, err)

	assert.Equal(t, model.StateDone, got.Items[0].State)
}

func TestOpenNotFound(t *testing.T) {
	a := New(newFakeRepo(), nil, nil)

	_, err := a.Open(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrChecklistNotFound)
}

func TestFailedResetWriteFallsBackToOriginal(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	last := now.Add(-20 * time.Minute)
	repo := newFakeRepo(accessedChecklist(&last))
	repo.saveErr = repository.NewError(repository.FileWrite, "disk full", nil)

	a := New(repo, nil, fixedClock(now))
	got, err := a.Open(context.Background(), "morning")
	require.NoError(t, err)

	// Real, unreset data is shown rather than a reset that was never stored.
	assert.Equal(t, model.StateDone, got.Items[0].State)
	require.NotNil(t, got.LastAccessedAt)
	assert.Equal(t, last, *got.LastAccessedAt)
}

func TestFailedStampWriteStillReturnsChecklist(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	last := now.Add(-10 * time.Minute)
	repo := newFakeRepo(accessedChecklist(&last))
	repo.saveErr = repository.NewError(repository.FileWrite, "disk full", nil)

	a := New(repo, nil, fixedClock(now))
	got, err := a.Open(context.Background(), "morning")
	require.NoError(t, err)

	assert.Equal(t, model.StateDone, got.Items[0].State)
	require.NotNil(t, got.LastAccessedAt)
	assert.Equal(t, now, *got.LastAccessedAt)
}
