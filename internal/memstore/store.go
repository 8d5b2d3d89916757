// Package memstore implements the Store interface in process memory.
//
// Update transactions run against a deep copy of the scope's state and swap
// it in only when the transaction function succeeds, so a failed operation
// leaves no partial writes behind. The backend serves tests and ephemeral
// runs; durable deployments use the sqlite or badger backends.
package memstore

import (
	"sync"

	"github.com/duskfeline/catmart/pkg/types"
)

// Store holds all scopes behind a single mutex, which serializes operations
// the way the storage contract assumes.
type Store struct {
	mu     sync.RWMutex
	scopes map[types.Account]*scopeState
}

// scopeState is one scope's records. cats and listings are keyed by cat ID.
type scopeState struct {
	nextCatID uint64
	cats      map[uint64]types.Cat
	listings  map[uint64]types.Listing
	events    []types.Event
}

func (s *scopeState) clone() *scopeState {
	c := &scopeState{
		nextCatID: s.nextCatID,
		cats:      make(map[uint64]types.Cat, len(s.cats)),
		listings:  make(map[uint64]types.Listing, len(s.listings)),
		events:    make([]types.Event, len(s.events)),
	}
	for id, cat := range s.cats {
		c.cats[id] = cat
	}
	for id, l := range s.listings {
		c.listings[id] = l
	}
	copy(c.events, s.events)
	return c
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{scopes: make(map[types.Account]*scopeState)}
}

// InitScope creates empty storage and a fresh ID counter for the scope.
func (s *Store) InitScope(scope types.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.scopes[scope]; ok {
		return types.ErrAlreadyInitialized
	}
	s.scopes[scope] = &scopeState{
		nextCatID: 1,
		cats:      make(map[uint64]types.Cat),
		listings:  make(map[uint64]types.Listing),
	}
	return nil
}

// Update runs fn against a clone of the scope's state and commits the clone
// only on success.
func (s *Store) Update(scope types.Account, fn func(types.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.scopes[scope]
	if !ok {
		return types.ErrNotInitialized
	}

	working := state.clone()
	if err := fn(&memTx{state: working}); err != nil {
		return err
	}
	s.scopes[scope] = working
	return nil
}

// View runs fn against the scope's current state read-only.
func (s *Store) View(scope types.Account, fn func(types.ReadTx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.scopes[scope]
	if !ok {
		return types.ErrNotInitialized
	}
	return fn(&memTx{state: state})
}

// Close releases nothing; it exists to satisfy the Store interface.
func (s *Store) Close() error {
	return nil
}
