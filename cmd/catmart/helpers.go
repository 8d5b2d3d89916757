// Shared helpers for catmart CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/duskfeline/catmart/internal/clock"
	"github.com/duskfeline/catmart/internal/market"
	"github.com/duskfeline/catmart/internal/paths"
	"github.com/duskfeline/catmart/pkg/storage"
	"github.com/duskfeline/catmart/pkg/types"
)

// envAccount names the environment variable carrying the verified caller
// identity when --as is not given.
const envAccount = "CATMART_ACCOUNT"

// openMarket resolves the data directory, opens the configured backend, and
// wires the marketplace facade over it. The caller must invoke the returned
// cleanup function.
func openMarket() (*market.Market, func(), error) {
	dataDir, err := paths.ResolveDataDir(flagDataDir, configDataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: configBackend,
		DataDir: dataDir,
	}
	store, err := storage.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}

	var opts []market.Option
	if configRestoreOnPurge {
		opts = append(opts, market.WithRestoreOnPurge())
	}
	m := market.New(store, clock.System{}, opts...)
	return m, func() { store.Close() }, nil
}

// resolveCaller returns the verified caller account from the --as flag or
// the CATMART_ACCOUNT environment variable.
func resolveCaller() (types.Account, error) {
	raw := flagAs
	if raw == "" {
		raw = os.Getenv(envAccount)
	}
	if raw == "" {
		return "", fmt.Errorf("caller identity required: pass --as or set %s", envAccount)
	}
	account := types.Account(raw)
	if !account.Valid() {
		return "", fmt.Errorf("invalid caller account %q", raw)
	}
	return account, nil
}

// resolveScope returns the seller scope from --scope, defaulting to the
// caller's own scope.
func resolveScope(caller types.Account) types.Account {
	if flagScope != "" {
		return types.Account(flagScope)
	}
	return caller
}

// parseCatID parses a positional cat ID argument.
func parseCatID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid cat id %q", arg)
	}
	return id, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
