package testutil

import (
	"testing"

	"github.com/pyanpyan/routinely/internal/events"
	"github.com/pyanpyan/routinely/internal/repository/jsonfile"
)

// NewTestRepository creates a JSON file repository rooted in a fresh
// temporary directory. The directory is removed when the test completes.
func NewTestRepository(t *testing.T) *jsonfile.Repository {
	t.Helper()
	return jsonfile.New(t.TempDir())
}

// NewTestJournal creates an in-memory event store with all migrations
// applied. It automatically closes the store when the test completes.
func NewTestJournal(t *testing.T) *events.Store {
	t.Helper()

	s, err := events.NewStore(":memory:")
	if err != nil {
		t.Fatalf("creating test journal: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test journal: %v", err)
		}
	})

	return s
}
