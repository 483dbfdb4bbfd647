package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecklistItemTransitions(t *testing.T) {
	icon := ItemIconID("tooth")
	base := ChecklistItem{
		ID:     "brushing-teeth",
		Title:  "Brushing teeth",
		IconID: &icon,
		State:  StatePending,
	}

	// Every transition is total: the outcome only depends on the target
	// state, never on the starting one.
	starts := []ChecklistItemState{StatePending, StateDone, StateIgnoredToday}
	for _, start := range starts {
		item := base
		item.State = start

		assert.Equal(t, StateDone, item.MarkDone().State, "from %s", start)
		assert.Equal(t, StateIgnoredToday, item.IgnoreToday().State, "from %s", start)
		assert.Equal(t, StatePending, item.Reset().State, "from %s", start)
	}
}

func TestChecklistItemTransitionsPreserveIdentity(t *testing.T) {
	icon := ItemIconID("tooth")
	item := ChecklistItem{ID: "a", Title: "Brush", IconID: &icon, State: StatePending}

	done := item.MarkDone()
	assert.Equal(t, item.ID, done.ID)
	assert.Equal(t, item.Title, done.Title)
	assert.Equal(t, item.IconID, done.IconID)

	// Original value untouched.
	assert.Equal(t, StatePending, item.State)
}
