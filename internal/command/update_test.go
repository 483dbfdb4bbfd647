package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyanpyan/routinely/internal/model"
)

func existingChecklist() model.Checklist {
	return model.Checklist{
		ID:       "morning",
		Name:     "Morning",
		Schedule: model.AlwaysOnSchedule(),
		Items: []model.ChecklistItem{
			{ID: "a", Title: "First", State: model.StateDone},
		},
		Color:            model.ColorSoftBlue,
		StatePersistence: model.PersistFifteenMinutes,
	}
}

func TestUpdateChecklistOverwritesOnlyProvidedFields(t *testing.T) {
	name := "Early Morning"
	color := model.ColorCoolMint

	cmd, err := NewUpdateChecklist(existingChecklist(), ChecklistChanges{
		Name:  &name,
		Color: &color,
	})
	require.NoError(t, err)

	updated := cmd.Execute()
	assert.Equal(t, "Early Morning", updated.Name)
	assert.Equal(t, model.ColorCoolMint, updated.Color)

	// Untouched fields retained, items and state included.
	assert.Equal(t, model.AlwaysOnSchedule(), updated.Schedule)
	assert.Equal(t, model.PersistFifteenMinutes, updated.StatePersistence)
	assert.Equal(t, model.StateDone, updated.Items[0].State)

	assert.ElementsMatch(t, []ChangeKind{ChangeName, ChangeColor}, cmd.ChangedKinds())
}

func TestUpdateChecklistNoChangesIsIdentity(t *testing.T) {
	c := existingChecklist()
	cmd, err := NewUpdateChecklist(c, ChecklistChanges{})
	require.NoError(t, err)

	assert.Equal(t, c, cmd.Execute())
	assert.Empty(t, cmd.ChangedKinds())
}

func TestUpdateChecklistValidatesProvidedFields(t *testing.T) {
	blank := "  "
	_, err := NewUpdateChecklist(existingChecklist(), ChecklistChanges{Name: &blank})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Checklist name cannot be blank", verr.Message)

	inverted := model.ChecklistSchedule{
		TimeRange: model.Specific{
			StartTime: timeOfDay(t, "20:00"),
			EndTime:   timeOfDay(t, "07:00"),
		},
	}
	_, err = NewUpdateChecklist(existingChecklist(), ChecklistChanges{Schedule: &inverted})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Start time must be before end time", verr.Message)
}
