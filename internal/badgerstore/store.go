// Package badgerstore implements the Store interface over a Badger
// key-value database. Records are msgpack-encoded values behind per-concern
// key prefixes; every Update call maps to one badger transaction.
package badgerstore

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/duskfeline/catmart/pkg/types"
)

const (
	prefixScope    = "SCOPES:"
	prefixCounter  = "COUNTERS:"
	prefixCat      = "CATS:"
	prefixListing  = "LISTINGS:"
	prefixEvent    = "EVENTS:"
	prefixEventSeq = "EVENTSEQ:"
)

// gcInterval paces the value-log garbage collection loop.
const gcInterval = 5 * time.Minute

// Store implements types.Store using Badger. Badger's managed transactions
// supply the all-or-nothing guarantee; a mutex on top serializes writers the
// way the ledger's sequential transaction model assumes.
type Store struct {
	mu   sync.Mutex
	db   *badger.DB
	done chan struct{}
}

// Open opens (or creates) the Badger database under the configured data dir
// and starts the value-log GC loop.
func Open(cfg types.Config) (*Store, error) {
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

	opts := badger.DefaultOptions(dataDir)
	opts = opts.WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", dataDir, err)
	}

	s := &Store{db: db, done: make(chan struct{})}
	go s.runGC()
	return s, nil
}

// runGC periodically reclaims value-log space until Close.
func (s *Store) runGC() {
	ticker := time.NewTicker(gcInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			lsm, vlog := s.db.Size()
			slog.Debug("badger size", "lsm", lsm, "vlog", vlog)
			if err := s.db.RunValueLogGC(0.5); err != nil && !errors.Is(err, badger.ErrNoRewrite) {
				slog.Warn("badger value log gc", "err", err)
			}
		}
	}
}

// InitScope writes the scope marker and seeds the ID and event counters.
func (s *Store) InitScope(scope types.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(txn *badger.Txn) error {
		marker := scopeKey(scope)
		_, err := txn.Get(marker)
		if err == nil {
			return types.ErrAlreadyInitialized
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("checking scope: %w", err)
		}

		if err := txn.Set(marker, []byte{1}); err != nil {
			return err
		}
		if err := txn.Set(counterKey(scope), u64ToBytes(1)); err != nil {
			return err
		}
		return txn.Set(eventSeqKey(scope), u64ToBytes(0))
	})
}

// Update runs fn inside one badger read-write transaction.
func (s *Store) Update(scope types.Account, fn func(types.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(txn *badger.Txn) error {
		if err := scopeExists(txn, scope); err != nil {
			return err
		}
		return fn(&storeTx{txn: txn, scope: scope})
	})
}

// View runs fn inside a read-only transaction.
func (s *Store) View(scope types.Account, fn func(types.ReadTx) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		if err := scopeExists(txn, scope); err != nil {
			return err
		}
		return fn(&storeTx{txn: txn, scope: scope})
	})
}

// Close stops the GC loop and closes the database. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	close(s.done)
	err := s.db.Close()
	s.db = nil
	return err
}

func scopeExists(txn *badger.Txn, scope types.Account) error {
	_, err := txn.Get(scopeKey(scope))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return types.ErrNotInitialized
	}
	if err != nil {
		return fmt.Errorf("checking scope: %w", err)
	}
	return nil
}
