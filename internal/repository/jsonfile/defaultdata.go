package jsonfile

import "github.com/pyanpyan/routinely/internal/model"

// DefaultChecklists is the dataset seeded on first-ever read: a single
// weekday-only "School" checklist with five pending items.
func DefaultChecklists() []model.Checklist {
	toothIcon := model.ItemIconID("tooth")
	return []model.Checklist{
		{
			ID:   "school",
			Name: "School",
			Schedule: model.ChecklistSchedule{
				DaysOfWeek: []model.Weekday{
					model.Monday, model.Tuesday, model.Wednesday,
					model.Thursday, model.Friday,
				},
				TimeRange: model.AllDay{},
			},
			Items: []model.ChecklistItem{
				{ID: "books", Title: "Books in bag", State: model.StatePending},
				{ID: "homework", Title: "Homework", State: model.StatePending},
				{ID: "pe-kit", Title: "PE kit", State: model.StatePending},
				{ID: "breakfast", Title: "Breakfast", State: model.StatePending},
				{ID: "brushing-teeth", Title: "Brushing teeth", IconID: &toothIcon, State: model.StatePending},
			},
			Color:            model.ColorSoftBlue,
			StatePersistence: model.PersistFifteenMinutes,
			LastAccessedAt:   nil,
		},
	}
}
