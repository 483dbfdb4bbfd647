package command

import (
	"strings"

	"github.com/pyanpyan/routinely/internal/model"
)

// CreateChecklist builds a new, validated checklist. Construct it with
// NewCreateChecklist; a value obtained that way always executes cleanly.
type CreateChecklist struct {
	id               model.ChecklistID
	name             string
	schedule         model.ChecklistSchedule
	items            []model.ChecklistItem
	color            model.ChecklistColor
	statePersistence model.StatePersistenceDuration
}

// NewCreateChecklist validates the inputs and returns the command.
func NewCreateChecklist(
	id model.ChecklistID,
	name string,
	schedule model.ChecklistSchedule,
	items []model.ChecklistItem,
	color model.ChecklistColor,
	statePersistence model.StatePersistenceDuration,
) (*CreateChecklist, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateSchedule(schedule); err != nil {
		return nil, err
	}
	seen := make(map[model.ChecklistItemID]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.ID]; dup {
			return nil, &ValidationError{Message: "Checklist items must have unique IDs"}
		}
		seen[item.ID] = struct{}{}
	}
	return &CreateChecklist{
		id:               id,
		name:             name,
		schedule:         schedule,
		items:            items,
		color:            color,
		statePersistence: statePersistence,
	}, nil
}

// Execute builds the checklist. A freshly created checklist has never been
// accessed, so LastAccessedAt starts nil and the first open never resets.
func (c *CreateChecklist) Execute() model.Checklist {
	items := make([]model.ChecklistItem, len(c.items))
	copy(items, c.items)
	return model.Checklist{
		ID:               c.id,
		Name:             c.name,
		Schedule:         c.schedule,
		Items:            items,
		Color:            c.color,
		StatePersistence: c.statePersistence,
		LastAccessedAt:   nil,
	}
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Message: "Checklist name cannot be blank"}
	}
	return nil
}

func validateSchedule(schedule model.ChecklistSchedule) error {
	if span, ok := schedule.TimeRange.(model.Specific); ok {
		if !span.StartTime.Before(span.EndTime) {
			return &ValidationError{Message: "Start time must be before end time"}
		}
	}
	return nil
}
