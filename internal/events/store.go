package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/pyanpyan/routinely/internal/command"
	"github.com/pyanpyan/routinely/internal/model"
)

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS checklist_events (
	id           TEXT PRIMARY KEY,
	checklist_id TEXT NOT NULL,
	type         TEXT NOT NULL,
	timestamp    DATETIME NOT NULL,
	name         TEXT NOT NULL DEFAULT '',
	item_count   INTEGER NOT NULL DEFAULT 0,
	changes      TEXT NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_events_checklist ON checklist_events(checklist_id, timestamp);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}

// Store is the SQLite-backed event journal.
type Store struct {
	db *sqlx.DB
}

// NewStore opens (or creates) the journal database at dbPath. Pass
// ":memory:" for an ephemeral journal in tests.
func NewStore(dbPath string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening journal db: %w", err)
	}

	// WAL keeps reads cheap while the UI appends.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// Append writes one journal entry. A missing id is filled in.
func (s *Store) Append(ctx context.Context, e Event) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	changes, err := json.Marshal(e.Changes)
	if err != nil {
		return fmt.Errorf("encoding event changes: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO checklist_events (id, checklist_id, type, timestamp, name, item_count, changes)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, string(e.ChecklistID), string(e.Type), e.Timestamp.UTC(),
		e.Name, e.ItemCount, string(changes),
	)
	if err != nil {
		return fmt.Errorf("appending event: %w", err)
	}
	return nil
}

// Recent returns up to limit entries for one checklist, newest first.
func (s *Store) Recent(ctx context.Context, id model.ChecklistID, limit int) ([]Event, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, checklist_id, type, timestamp, name, item_count, changes
		FROM checklist_events
		WHERE checklist_id = ?
		ORDER BY timestamp DESC
		LIMIT ?`,
		string(id), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var (
			e          Event
			changesRaw string
		)
		if err := rows.Scan(
			&e.ID, &e.ChecklistID, &e.Type, &e.Timestamp,
			&e.Name, &e.ItemCount, &changesRaw,
		); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		var changes []command.ChangeKind
		if err := json.Unmarshal([]byte(changesRaw), &changes); err != nil {
			return nil, fmt.Errorf("decoding event changes: %w", err)
		}
		e.Changes = changes
		out = append(out, e)
	}
	return out, rows.Err()
}
