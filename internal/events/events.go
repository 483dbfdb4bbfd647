// Package events records a local journal of checklist lifecycle events so
// the UI can show recent activity per checklist.
package events

import (
	"time"

	"github.com/pyanpyan/routinely/internal/command"
	"github.com/pyanpyan/routinely/internal/model"
)

// Type identifies the kind of journal entry.
type Type string

const (
	TypeCreated  Type = "created"
	TypeUpdated  Type = "updated"
	TypeAccessed Type = "accessed"
	TypeDeleted  Type = "deleted"
)

// Event is a single journal entry. Name and ItemCount are populated for
// created events; Changes for updated events.
type Event struct {
	ID          string            `db:"id"`
	ChecklistID model.ChecklistID `db:"checklist_id"`
	Type        Type              `db:"type"`
	Timestamp   time.Time         `db:"timestamp"`

	Name      string               `db:"name"`
	ItemCount int                  `db:"item_count"`
	Changes   []command.ChangeKind `db:"-"`
}

// Created builds the journal entry for a newly created checklist.
func Created(c model.Checklist, at time.Time) Event {
	return Event{
		ChecklistID: c.ID,
		Type:        TypeCreated,
		Timestamp:   at,
		Name:        c.Name,
		ItemCount:   len(c.Items),
	}
}

// Updated builds the journal entry for an edited checklist.
func Updated(id model.ChecklistID, changes []command.ChangeKind, at time.Time) Event {
	return Event{
		ChecklistID: id,
		Type:        TypeUpdated,
		Timestamp:   at,
		Changes:     changes,
	}
}

// Accessed builds the journal entry for a checklist open.
func Accessed(id model.ChecklistID, at time.Time) Event {
	return Event{ChecklistID: id, Type: TypeAccessed, Timestamp: at}
}

// Deleted builds the journal entry for a removed checklist.
func Deleted(id model.ChecklistID, at time.Time) Event {
	return Event{ChecklistID: id, Type: TypeDeleted, Timestamp: at}
}
