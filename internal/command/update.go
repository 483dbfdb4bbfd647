package command

import "github.com/pyanpyan/routinely/internal/model"

// ChecklistChanges carries the fields an update wants to overwrite; nil
// fields are left as they are.
type ChecklistChanges struct {
	Name             *string
	Schedule         *model.ChecklistSchedule
	Color            *model.ChecklistColor
	StatePersistence *model.StatePersistenceDuration
}

// ChangeKind names one updated aspect, used by the event journal.
type ChangeKind string

const (
	ChangeName             ChangeKind = "name"
	ChangeSchedule         ChangeKind = "schedule"
	ChangeColor            ChangeKind = "color"
	ChangeStatePersistence ChangeKind = "state_persistence"
)

// UpdateChecklist overwrites the supplied fields of an existing checklist.
// Validation rules match CreateChecklist but apply only to provided fields.
type UpdateChecklist struct {
	checklist model.Checklist
	changes   ChecklistChanges
}

// NewUpdateChecklist validates the provided fields and returns the command.
func NewUpdateChecklist(checklist model.Checklist, changes ChecklistChanges) (*UpdateChecklist, error) {
	if changes.Name != nil {
		if err := validateName(*changes.Name); err != nil {
			return nil, err
		}
	}
	if changes.Schedule != nil {
		if err := validateSchedule(*changes.Schedule); err != nil {
			return nil, err
		}
	}
	return &UpdateChecklist{checklist: checklist, changes: changes}, nil
}

// Execute returns the checklist with the supplied fields overwritten.
func (u *UpdateChecklist) Execute() model.Checklist {
	c := u.checklist
	if u.changes.Name != nil {
		c.Name = *u.changes.Name
	}
	if u.changes.Schedule != nil {
		c.Schedule = *u.changes.Schedule
	}
	if u.changes.Color != nil {
		c.Color = *u.changes.Color
	}
	if u.changes.StatePersistence != nil {
		c.StatePersistence = *u.changes.StatePersistence
	}
	return c
}

// ChangedKinds lists which aspects this update touches.
func (u *UpdateChecklist) ChangedKinds() []ChangeKind {
	var kinds []ChangeKind
	if u.changes.Name != nil {
		kinds = append(kinds, ChangeName)
	}
	if u.changes.Schedule != nil {
		kinds = append(kinds, ChangeSchedule)
	}
	if u.changes.Color != nil {
		kinds = append(kinds, ChangeColor)
	}
	if u.changes.StatePersistence != nil {
		kinds = append(kinds, ChangeStatePersistence)
	}
	return kinds
}
