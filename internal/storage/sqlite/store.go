package sqlite

import (
	"context"
	"database/sql"

	"github.com/tabrez-nitr/doit/internal/errors"
	"github.com/tabrez-nitr/doit/internal/storage/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Store defines the interface for durable snapshot slots. Each slot holds
// one serialized collection under a unique key; Save replaces the whole
// value in a single statement, so a reader never observes a partial write.
type Store interface {
	// Load returns the raw bytes stored under key, or nil when the slot
	// does not exist. A missing slot is not an error.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save overwrites the slot with the given value.
	Save(ctx context.Context, key string, value []byte) error

	// Close releases the underlying database handle.
	Close() error
}

// SQLiteStore implements the Store interface on a local SQLite database
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLite-backed store instance
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load retrieves the snapshot stored under key
func (s *SQLiteStore) Load(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM slots WHERE key = ?`

	var value []byte
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewStorageError("load slot", err).WithContext("key", key)
	}
	return value, nil
}

// Save overwrites the snapshot stored under key
func (s *SQLiteStore) Save(ctx context.Context, key string, value []byte) error {
	query := `
	INSERT INTO slots (key, value, updated_at)
	VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return errors.NewStorageError("save slot", err).WithContext("key", key)
	}
	return nil
}
