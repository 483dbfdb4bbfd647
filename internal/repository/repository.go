// Package repository defines the persistence boundary of the checklist
// domain. Implementations must return every failure as an *Error value;
// nothing panics or throws across this boundary.
package repository

import (
	"context"
	"fmt"

	"github.com/pyanpyan/routinely/internal/model"
)

// ErrorKind classifies a repository failure.
type ErrorKind string

const (
	// FileRead covers failures reading the backing store.
	FileRead ErrorKind = "file_read"
	// FileWrite covers failures writing the backing store.
	FileWrite ErrorKind = "file_write"
	// JSONParse covers malformed stored or imported documents.
	JSONParse ErrorKind = "json_parse"
	// InvalidData covers well-formed documents that violate the schema.
	InvalidData ErrorKind = "invalid_data"
)

// Error is the typed failure value crossing the repository boundary.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError builds a repository error of the given kind.
func NewError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Repository is the sole persistence contract for checklists. Absent ids are
// not errors: GetChecklist returns nil and DeleteChecklist succeeds.
type Repository interface {
	// GetAllChecklists returns the whole stored collection. A first-ever
	// read seeds and persists the default dataset.
	GetAllChecklists(ctx context.Context) ([]model.Checklist, error)

	// GetChecklist returns the checklist with the given id, or nil when it
	// does not exist.
	GetChecklist(ctx context.Context, id model.ChecklistID) (*model.Checklist, error)

	// SaveChecklist upserts by id: replace if present, append otherwise.
	SaveChecklist(ctx context.Context, checklist model.Checklist) error

	// DeleteChecklist removes the checklist with the given id.
	DeleteChecklist(ctx context.Context, id model.ChecklistID) error

	// ExportJSON returns the raw stored collection as a JSON array string,
	// or "[]" when nothing is stored.
	ExportJSON(ctx context.Context) (string, error)

	// ImportFromJSON parses a JSON array of checklists and replaces the
	// entire stored collection. Any reset-before-import policy is the
	// caller's responsibility.
	ImportFromJSON(ctx context.Context, text string) error
}
