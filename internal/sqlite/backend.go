// Package sqlite implements the SQLite storage backend for notespace:
// spaces (with their schemas and templates), users, notes, and saved
// filters. It is also the record mutation boundary where raw field payloads
// are sentinel-resolved, decoded, and validated against the space schema.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/plainfield/notespace/pkg/types"
)

// dbFileName is the single database file under the data directory.
const dbFileName = "notespace.db"

// Backend holds the database handle and the per-entity table accessors.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	log      *zap.Logger

	spaces  *SpacesTable
	users   *UsersTable
	notes   *NotesTable
	filters *FiltersTable
}

// NewBackend creates an unattached backend. The logger may be nil. Call
// Attach with a Config to open the database.
func NewBackend(log *zap.Logger) *Backend {
	if log == nil {
		log = zap.NewNop()
	}
	return &Backend{log: log}
}

// Attach opens (or creates) the database under config.DataDir and applies
// the schema. Returns ErrAlreadyAttached if called twice.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.attached = true
	b.spaces = &SpacesTable{backend: b}
	b.users = &UsersTable{backend: b}
	b.notes = &NotesTable{backend: b}
	b.filters = &FiltersTable{backend: b}

	b.log.Debug("backend attached", zap.String("db", dbPath))
	return nil
}

// Detach closes the database. Idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	b.attached = false
	b.db = nil
	b.log.Debug("backend detached")
	return nil
}

// Spaces returns the spaces table accessor.
func (b *Backend) Spaces() (*SpacesTable, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrDetached
	}
	return b.spaces, nil
}

// Users returns the users table accessor.
func (b *Backend) Users() (*UsersTable, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrDetached
	}
	return b.users, nil
}

// Notes returns the notes table accessor.
func (b *Backend) Notes() (*NotesTable, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrDetached
	}
	return b.notes, nil
}

// Filters returns the saved-filters table accessor.
func (b *Backend) Filters() (*FiltersTable, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrDetached
	}
	return b.filters, nil
}
