// Package jsonfile persists the checklist collection as a single
// human-readable JSON document.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pyanpyan/routinely/internal/model"
	"github.com/pyanpyan/routinely/internal/repository"
)

const dataFileName = "checklists.json"

// Repository is the file-backed checklist store. Every save rewrites the
// whole collection (read, splice, write). A mutex serializes access within
// the process; the read-modify-write sequence is not atomic against other
// processes, which is acceptable under the single-writer assumption.
type Repository struct {
	mu   sync.Mutex
	path string
}

// New returns a repository storing its data under dir.
func New(dir string) *Repository {
	return &Repository{path: filepath.Join(dir, dataFileName)}
}

// GetAllChecklists returns the stored collection. When no backing file
// exists yet it seeds the default dataset, persists it, and returns it.
func (r *Repository) GetAllChecklists(ctx context.Context) ([]model.Checklist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked()
}

// GetChecklist returns the checklist with the given id, or nil when absent.
func (r *Repository) GetChecklist(ctx context.Context, id model.ChecklistID) (*model.Checklist, error) {
	checklists, err := r.GetAllChecklists(ctx)
	if err != nil {
		return nil, err
	}
	for i := range checklists {
		if checklists[i].ID == id {
			c := checklists[i]
			return &c, nil
		}
	}
	return nil, nil
}

// SaveChecklist upserts by id: replace in place if present, else append.
func (r *Repository) SaveChecklist(ctx context.Context, checklist model.Checklist) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	checklists, err := r.loadLocked()
	if err != nil {
		return err
	}
	replaced := false
	for i := range checklists {
		if checklists[i].ID == checklist.ID {
			checklists[i] = checklist
			replaced = true
			break
		}
	}
	if !replaced {
		checklists = append(checklists, checklist)
	}
	return r.writeLocked(checklists)
}

// DeleteChecklist removes the checklist with the given id. Deleting an
// absent id is not an error.
func (r *Repository) DeleteChecklist(ctx context.Context, id model.ChecklistID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	checklists, err := r.loadLocked()
	if err != nil {
		return err
	}
	kept := checklists[:0]
	for _, c := range checklists {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return r.writeLocked(kept)
}

// ExportJSON returns the raw stored document, or "[]" when nothing has been
// stored yet.
func (r *Repository) ExportJSON(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "[]", nil
	}
	if err != nil {
		return "", repository.NewError(repository.FileRead, "reading "+r.path, err)
	}
	return string(data), nil
}

// ImportFromJSON validates and parses a JSON array of checklists, then
// replaces the entire stored collection with it.
func (r *Repository) ImportFromJSON(ctx context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := validateCollection([]byte(text)); err != nil {
		return err
	}
	var checklists []model.Checklist
	if err := json.Unmarshal([]byte(text), &checklists); err != nil {
		return repository.NewError(repository.JSONParse, "parsing imported checklists", err)
	}
	return r.writeLocked(checklists)
}

func (r *Repository) loadLocked() ([]model.Checklist, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		defaults := DefaultChecklists()
		if err := r.writeLocked(defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, repository.NewError(repository.FileRead, "reading "+r.path, err)
	}
	var checklists []model.Checklist
	if err := json.Unmarshal(data, &checklists); err != nil {
		return nil, repository.NewError(repository.JSONParse, "parsing "+r.path, err)
	}
	return checklists, nil
}

func (r *Repository) writeLocked(checklists []model.Checklist) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return repository.NewError(repository.FileWrite, "creating data directory", err)
	}
	if checklists == nil {
		checklists = []model.Checklist{}
	}
	data, err := json.MarshalIndent(checklists, "", "  ")
	if err != nil {
		return repository.NewError(repository.FileWrite, "encoding checklists", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return repository.NewError(repository.FileWrite, "writing "+r.path, err)
	}
	return nil
}
