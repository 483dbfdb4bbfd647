// Package access implements the checklist open flow: every open decides
// whether the elapsed time since the last access has outlived the
// checklist's state persistence, and if so clears yesterday's ticks.
package access

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/pyanpyan/routinely/internal/events"
	"github.com/pyanpyan/routinely/internal/model"
	"github.com/pyanpyan/routinely/internal/repository"
)

// ErrChecklistNotFound is returned when the requested checklist does not
// exist in the repository.
var ErrChecklistNotFound = errors.New("checklist not found")

// Journal is the slice of the event store the accessor needs.
type Journal interface {
	Append(ctx context.Context, e events.Event) error
}

// Accessor runs the open flow against a repository. The clock is injected
// so tests control elapsed time.
type Accessor struct {
	repo    repository.Repository
	journal Journal
	now     func() time.Time
}

// New creates an accessor. journal may be nil; now defaults to time.Now.
func New(repo repository.Repository, journal Journal, now func() time.Time) *Accessor {
	if now == nil {
		now = time.Now
	}
	return &Accessor{repo: repo, journal: journal, now: now}
}

// Open loads the checklist, applies the auto-reset policy, and returns the
// checklist to display.
//
// A failed reset write falls back to the original, unreset checklist so the
// caller never sees reset-looking state that was not persisted. A failed
// timestamp-only write is non-critical and the refreshed checklist is
// returned anyway.
func (a *Accessor) Open(ctx context.Context, id model.ChecklistID) (model.Checklist, error) {
	loaded, err := a.repo.GetChecklist(ctx, id)
	if err != nil {
		return model.Checklist{}, err
	}
	if loaded == nil {
		return model.Checklist{}, ErrChecklistNotFound
	}
	checklist := *loaded

	now := a.now()
	result := checklist

	if a.shouldReset(checklist, now) {
		reset := checklist.ResetAllItems().WithLastAccessedAt(now)
		if err := a.repo.SaveChecklist(ctx, reset); err != nil {
			log.Printf("auto-reset save failed for %s: %v", id, err)
			result = checklist
		} else {
			result = reset
		}
	} else {
		touched := checklist.WithLastAccessedAt(now)
		if err := a.repo.SaveChecklist(ctx, touched); err != nil {
			log.Printf("access stamp save failed for %s: %v", id, err)
		}
		result = touched
	}

	a.record(ctx, events.Accessed(id, now))
	return result, nil
}

// shouldReset applies the elapsed-time rule. A nil LastAccessedAt means a
// first-ever access, which never resets.
func (a *Accessor) shouldReset(c model.Checklist, now time.Time) bool {
	if c.LastAccessedAt == nil {
		return false
	}
	return c.StatePersistence.Exceeded(now.Sub(*c.LastAccessedAt))
}

// record appends to the journal best-effort; journal failures never affect
// the open flow.
func (a *Accessor) record(ctx context.Context, e events.Event) {
	if a.journal == nil {
		return
	}
	if err := a.journal.Append(ctx, e); err != nil {
		log.Printf("event journal append failed: %v", err)
	}
}
