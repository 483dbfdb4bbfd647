package model

import "time"

// Checklist is a named, schedule-gated, ordered collection of items.
// Values are immutable: every mutator returns a fresh Checklist with a
// copied item slice, so callers never share backing arrays.
type Checklist struct {
	ID               ChecklistID              `json:"id"`
	Name             string                   `json:"name"`
	Schedule         ChecklistSchedule        `json:"schedule"`
	Items            []ChecklistItem          `json:"items"`
	Color            ChecklistColor           `json:"color"`
	StatePersistence StatePersistenceDuration `json:"statePersistence"`
	LastAccessedAt   *time.Time               `json:"lastAccessedAt,omitempty"`
}

// UpdateItem returns the checklist with the entry matching item's id
// replaced. If no entry has that id the result is an unchanged copy; the
// silent no-op mirrors the reference behavior and keeps the method total.
func (c Checklist) UpdateItem(item ChecklistItem) Checklist {
	items := make([]ChecklistItem, len(c.Items))
	for i, existing := range c.Items {
		if existing.ID == item.ID {
			items[i] = item
		} else {
			items[i] = existing
		}
	}
	c.Items = items
	return c
}

// ResetAllItems returns the checklist with every item back to Pending.
// LastAccessedAt is not touched.
func (c Checklist) ResetAllItems() Checklist {
	items := make([]ChecklistItem, len(c.Items))
	for i, item := range c.Items {
		items[i] = item.Reset()
	}
	c.Items = items
	return c
}

// FindItem returns the item with the given id, or nil if absent.
func (c Checklist) FindItem(id ChecklistItemID) *ChecklistItem {
	for i := range c.Items {
		if c.Items[i].ID == id {
			item := c.Items[i]
			return &item
		}
	}
	return nil
}

// WithLastAccessedAt returns the checklist stamped with the given access time.
func (c Checklist) WithLastAccessedAt(t time.Time) Checklist {
	c.LastAccessedAt = &t
	return c
}
