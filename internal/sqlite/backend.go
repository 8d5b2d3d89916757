// Package sqlite implements the Store interface over a single SQLite
// database file. Every Update call maps to one SQL transaction, which gives
// the all-or-nothing guarantee the ledger's transitions rely on.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/duskfeline/catmart/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the database file created under the configured data dir.
const dbFileName = "catmart.db"

// Backend implements types.Store using SQLite. A single mutex serializes
// Update transactions, matching the sequential transaction model the ledger
// assumes.
type Backend struct {
	mu sync.Mutex
	db *sql.DB
}

// Open creates the data directory if needed, opens (or creates) the database
// file, and applies the schema.
func Open(cfg types.Config) (*Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dbPath, err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Backend{db: db}, nil
}

// InitScope inserts the scope row carrying the ID counter, starting at 1.
func (b *Backend) InitScope(scope types.Account) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var exists int
	err := b.db.QueryRow("SELECT 1 FROM scopes WHERE scope = ?", string(scope)).Scan(&exists)
	if err == nil {
		return types.ErrAlreadyInitialized
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("checking scope: %w", err)
	}

	if _, err := b.db.Exec(
		"INSERT INTO scopes (scope, next_cat_id) VALUES (?, 1)", string(scope),
	); err != nil {
		return fmt.Errorf("initializing scope: %w", err)
	}
	return nil
}

// Update runs fn inside one SQL transaction. Any error from fn (or any
// statement) rolls the whole transaction back.
func (b *Backend) Update(scope types.Account, fn func(types.Tx) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	sqlTx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer sqlTx.Rollback()

	if err := scopeExists(sqlTx, scope); err != nil {
		return err
	}

	if err := fn(&storeTx{tx: sqlTx, scope: scope}); err != nil {
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// View runs fn inside a transaction that is always rolled back.
func (b *Backend) View(scope types.Account, fn func(types.ReadTx) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	sqlTx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer sqlTx.Rollback()

	if err := scopeExists(sqlTx, scope); err != nil {
		return err
	}
	return fn(&storeTx{tx: sqlTx, scope: scope})
}

// Close closes the database. Idempotent.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}

func scopeExists(tx *sql.Tx, scope types.Account) error {
	var one int
	err := tx.QueryRow("SELECT 1 FROM scopes WHERE scope = ?", string(scope)).Scan(&one)
	if err == sql.ErrNoRows {
		return types.ErrNotInitialized
	}
	if err != nil {
		return fmt.Errorf("checking scope: %w", err)
	}
	return nil
}
