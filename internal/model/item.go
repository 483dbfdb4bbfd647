package model

// ChecklistItem is a single trackable task within a checklist. Mutators are
// pure: each returns a copy with the new state and never rejects a
// transition, so re-marking a Done item Done is a harmless overwrite.
type ChecklistItem struct {
	ID     ChecklistItemID    `json:"id"`
	Title  string             `json:"title"`
	IconID *ItemIconID        `json:"iconId,omitempty"`
	State  ChecklistItemState `json:"state"`
}

// MarkDone returns the item in the Done state.
func (i ChecklistItem) MarkDone() ChecklistItem {
	i.State = StateDone
	return i
}

// IgnoreToday returns the item in the IgnoredToday state.
func (i ChecklistItem) IgnoreToday() ChecklistItem {
	i.State = StateIgnoredToday
	return i
}

// Reset returns the item back in the Pending state.
func (i ChecklistItem) Reset() ChecklistItem {
	i.State = StatePending
	return i
}
