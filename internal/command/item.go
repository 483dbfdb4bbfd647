package command

import (
	"fmt"

	"github.com/pyanpyan/routinely/internal/model"
)

// MarkItemDone marks a single item Done. The command carries the target id
// so a caller passing the wrong item is caught instead of silently mutated.
type MarkItemDone struct {
	ItemID model.ChecklistItemID
}

// Execute transitions the item to Done.
func (c MarkItemDone) Execute(item model.ChecklistItem) (model.ChecklistItem, error) {
	if item.ID != c.ItemID {
		return model.ChecklistItem{}, itemMismatch(c.ItemID, item.ID)
	}
	return item.MarkDone(), nil
}

// IgnoreItemToday marks a single item IgnoredToday for the rest of the day.
type IgnoreItemToday struct {
	ItemID model.ChecklistItemID
}

// Execute transitions the item to IgnoredToday.
func (c IgnoreItemToday) Execute(item model.ChecklistItem) (model.ChecklistItem, error) {
	if item.ID != c.ItemID {
		return model.ChecklistItem{}, itemMismatch(c.ItemID, item.ID)
	}
	return item.IgnoreToday(), nil
}

func itemMismatch(want, got model.ChecklistItemID) error {
	return &PreconditionError{
		Message: fmt.Sprintf("item ID mismatch: command targets %q, got %q", want, got),
	}
}
