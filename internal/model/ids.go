package model

// ChecklistID uniquely identifies a checklist. It is a nominal wrapper so
// checklist, item, and icon ids cannot be mixed up by the type system.
type ChecklistID string

// ChecklistItemID uniquely identifies an item within a checklist.
type ChecklistItemID string

// ItemIconID names an icon associated with a checklist item.
type ItemIconID string

func (id ChecklistID) String() string     { return string(id) }
func (id ChecklistItemID) String() string { return string(id) }
func (id ItemIconID) String() string      { return string(id) }
