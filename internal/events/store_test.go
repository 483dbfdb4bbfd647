package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyanpyan/routinely/internal/command"
	"github.com/pyanpyan/routinely/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})
	return s
}

func TestAppendAndRecent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

	c := model.Checklist{ID: "school", Name: "School",
		Items: []model.ChecklistItem{{ID: "a", Title: "A", State: model.StatePending}}}

	require.NoError(t, s.Append(ctx, Created(c, base)))
	require.NoError(t, s.Append(ctx, Accessed("school", base.Add(time.Minute))))
	require.NoError(t, s.Append(ctx, Updated("school", []command.ChangeKind{command.ChangeName}, base.Add(2*time.Minute))))
	require.NoError(t, s.Append(ctx, Accessed("other", base)))

	got, err := s.Recent(ctx, "school", 10)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Newest first.
	assert.Equal(t, TypeUpdated, got[0].Type)
	assert.Equal(t, []command.ChangeKind{command.ChangeName}, got[0].Changes)
	assert.Equal(t, TypeAccessed, got[1].Type)
	assert.Equal(t, TypeCreated, got[2].Type)
	assert.Equal(t, "School", got[2].Name)
	assert.Equal(t, 1, got[2].ItemCount)
	assert.NotEmpty(t, got[0].ID, "append fills in missing ids")
}

func TestRecentHonorsLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Append(ctx, Accessed("x", base.Add(time.Duration(i)*time.Minute))))
	}

	got, err := s.Recent(ctx, "x", 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRecentEmptyJournal(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Recent(context.Background(), "nobody", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}
