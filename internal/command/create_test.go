package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyanpyan/routinely/internal/model"
)

func timeOfDay(t *testing.T, s string) model.TimeOfDay {
	t.Helper()
	tod, err := model.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func TestCreateChecklistExecute(t *testing.T) {
	items := []model.ChecklistItem{
		{ID: "a", Title: "First", State: model.StatePending},
		{ID: "b", Title: "Second", State: model.StatePending},
	}
	cmd, err := NewCreateChecklist(
		"morning", "Morning", model.AlwaysOnSchedule(), items,
		model.ColorWarmPeach, model.PersistOneHour,
	)
	require.NoError(t, err)

	c := cmd.Execute()
	assert.Equal(t, model.ChecklistID("morning"), c.ID)
	assert.Equal(t, "Morning", c.Name)
	assert.Equal(t, items, c.Items)
	assert.Equal(t, model.ColorWarmPeach, c.Color)
	assert.Equal(t, model.PersistOneHour, c.StatePersistence)
	assert.Nil(t, c.LastAccessedAt, "a fresh checklist has never been accessed")
}

func TestCreateChecklistRejectsBlankName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := NewCreateChecklist(
			"x", name, model.AlwaysOnSchedule(), nil,
			model.ColorSoftBlue, model.DefaultStatePersistence,
		)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "name %q", name)
		assert.Equal(t, "Checklist name cannot be blank", verr.Message)
	}
}

func TestCreateChecklistRejectsInvertedTimeRange(t *testing.T) {
	schedule := model.ChecklistSchedule{
		TimeRange: model.Specific{
			StartTime: timeOfDay(t, "09:00"),
			EndTime:   timeOfDay(t, "06:00"),
		},
	}
	_, err := NewCreateChecklist(
		"x", "X", schedule, nil, model.ColorSoftBlue, model.DefaultStatePersistence,
	)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Start time must be before end time", verr.Message)

	// Equal bounds are inverted too: start must be strictly before end.
	schedule.TimeRange = model.Specific{
		StartTime: timeOfDay(t, "09:00"),
		EndTime:   timeOfDay(t, "09:00"),
	}
	_, err = NewCreateChecklist(
		"x", "X", schedule, nil, model.ColorSoftBlue, model.DefaultStatePersistence,
	)
	assert.ErrorAs(t, err, &verr)
}

func TestCreateChecklistRejectsDuplicateItemIDs(t *testing.T) {
	items := []model.ChecklistItem{
		{ID: "dup", Title: "One", State: model.StatePending},
		{ID: "dup", Title: "Two", State: model.StatePending},
	}
	_, err := NewCreateChecklist(
		"x", "X", model.AlwaysOnSchedule(), items,
		model.ColorSoftBlue, model.DefaultStatePersistence,
	)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Checklist items must have unique IDs", verr.Message)
}
