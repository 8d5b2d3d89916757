// Package integration exercises the market facade end to end against every
// storage backend.
package integration

import (
	"io"
	"log/slog"
	"testing"

	"github.com/duskfeline/catmart/internal/market"
	"github.com/duskfeline/catmart/internal/testutil"
	"github.com/duskfeline/catmart/pkg/storage"
	"github.com/duskfeline/catmart/pkg/types"
)

// backends lists every storage backend the integration suite runs against.
var backends = []string{types.BackendMemory, types.BackendSQLite, types.BackendBadger}

// setupMarket opens a market over the named backend with an isolated temp
// directory and a clock frozen at start. Each test case gets its own store.
func setupMarket(t *testing.T, backend string, start uint64, opts ...market.Option) (*market.Market, *testutil.Clock) {
	t.Helper()
	store, err := storage.Open(types.Config{Backend: backend, DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Open %s: %v", backend, err)
	}
	t.Cleanup(func() { store.Close() })

	clk := testutil.NewClock(start)
	opts = append([]market.Option{market.WithLogger(discardLogger())}, opts...)
	return market.New(store, clk, opts...), clk
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mustInit initializes a scope or fails the test.
func mustInit(t *testing.T, m *market.Market, scope types.Account) {
	t.Helper()
	if err := m.Init(scope); err != nil {
		t.Fatalf("Init %s: %v", scope, err)
	}
}

// mustMint mints a cat and returns its ID.
func mustMint(t *testing.T, m *market.Market, caller types.Account, name string, rarity uint8) uint64 {
	t.Helper()
	id, err := m.MintCat(caller, name, rarity)
	if err != nil {
		t.Fatalf("MintCat %q: %v", name, err)
	}
	return id
}

// mustList creates a listing or fails the test.
func mustList(t *testing.T, m *market.Market, scope types.Account, catID, price, ttl uint64, caller types.Account) *types.Listing {
	t.Helper()
	l, err := m.ListCat(scope, catID, price, ttl, caller)
	if err != nil {
		t.Fatalf("ListCat %d: %v", catID, err)
	}
	return l
}

// mustGetCat retrieves a cat or fails the test.
func mustGetCat(t *testing.T, m *market.Market, scope types.Account, catID uint64) *types.Cat {
	t.Helper()
	cat, err := m.GetCat(scope, catID)
	if err != nil {
		t.Fatalf("GetCat %d: %v", catID, err)
	}
	return cat
}
