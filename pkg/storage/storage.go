// Package storage provides the public factory for opening a catmart store.
// Implementation details of the individual backends stay internal.
package storage

import (
	"github.com/duskfeline/catmart/internal/badgerstore"
	"github.com/duskfeline/catmart/internal/memstore"
	"github.com/duskfeline/catmart/internal/sqlite"
	"github.com/duskfeline/catmart/pkg/types"
)

// Open validates the config and opens the selected backend.
//
// Example:
//
//	store, err := storage.Open(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".catmart-db",
//	})
//	defer store.Close()
func Open(cfg types.Config) (types.Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case types.BackendMemory:
		return memstore.New(), nil
	case types.BackendSQLite:
		return sqlite.Open(cfg)
	case types.BackendBadger:
		return badgerstore.Open(cfg)
	default:
		return nil, types.ErrBackendUnknown
	}
}
