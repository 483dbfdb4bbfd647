package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyanpyan/routinely/internal/model"
)

func TestMarkItemDone(t *testing.T) {
	item := model.ChecklistItem{ID: "a", Title: "First", State: model.StatePending}

	done, err := MarkItemDone{ItemID: "a"}.Execute(item)
	require.NoError(t, err)
	assert.Equal(t, model.StateDone, done.State)

	_, err = MarkItemDone{ItemID: "b"}.Execute(item)
	var perr *PreconditionError
	assert.ErrorAs(t, err, &perr)
}

func TestIgnoreItemToday(t *testing.T) {
	item := model.ChecklistItem{ID: "a", Title: "First", State: model.StateDone}

	ignored, err := IgnoreItemToday{ItemID: "a"}.Execute(item)
	require.NoError(t, err)
	assert.Equal(t, model.StateIgnoredToday, ignored.State)

	_, err = IgnoreItemToday{ItemID: "other"}.Execute(item)
	var perr *PreconditionError
	assert.ErrorAs(t, err, &perr)
}

func TestResetDailyState(t *testing.T) {
	c := model.Checklist{
		ID:   "x",
		Name: "X",
		Items: []model.ChecklistItem{
			{ID: "a", Title: "A", State: model.StateDone},
			{ID: "b", Title: "B", State: model.StateIgnoredToday},
			{ID: "c", Title: "C", State: model.StatePending},
		},
	}

	reset := ResetDailyState{}.Execute(c)
	for _, item := range reset.Items {
		assert.Equal(t, model.StatePending, item.State)
	}
}
