package market

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskfeline/catmart/internal/memstore"
	"github.com/duskfeline/catmart/internal/testutil"
	"github.com/duskfeline/catmart/pkg/types"
)

// newMarket wires a market over the in-memory backend with a frozen clock.
func newMarket(t *testing.T, now uint64, opts ...Option) (*Market, *testutil.Clock) {
	t.Helper()
	clk := testutil.NewClock(now)
	opts = append(opts, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return New(memstore.New(), clk, opts...), clk
}

func TestInitTwice(t *testing.T) {
	m, _ := newMarket(t, 0)
	a := types.NewAccount()

	require.NoError(t, m.Init(a))
	assert.ErrorIs(t, m.Init(a), types.ErrAlreadyInitialized)
}

func TestMintBeforeInit(t *testing.T) {
	m, _ := newMarket(t, 0)

	_, err := m.MintCat(types.NewAccount(), "Tom", 3)
	assert.ErrorIs(t, err, types.ErrNotInitialized)
}

// Scenario: first mint returns id 1 and the cat is owned by the minter.
func TestMintAndGet(t *testing.T) {
	m, _ := newMarket(t, 100)
	a := types.NewAccount()
	require.NoError(t, m.Init(a))

	id, err := m.MintCat(a, "Tom", 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)

	cat, err := m.GetCat(a, 1)
	require.NoError(t, err)
	assert.Equal(t, "Tom", cat.Name)
	assert.Equal(t, uint8(3), cat.Rarity)
	assert.Equal(t, a, cat.Owner)
}

func TestMintIDsNeverReused(t *testing.T) {
	m, _ := newMarket(t, 100)
	a := types.NewAccount()
	require.NoError(t, m.Init(a))

	var last uint64
	for i := 0; i < 20; i++ {
		id, err := m.MintCat(a, "Cat", uint8(i%5))
		require.NoError(t, err)
		assert.Greater(t, id, last, "ids must be strictly increasing")
		last = id
	}
}

// Scenario: listing escrows the cat with the sentinel account.
func TestListEscrows(t *testing.T) {
	m, _ := newMarket(t, 1000)
	a := types.NewAccount()
	require.NoError(t, m.Init(a))
	id, err := m.MintCat(a, "Tom", 3)
	require.NoError(t, err)

	listing, err := m.ListCat(a, id, 100, 60, a)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), listing.Price)
	assert.Equal(t, uint64(1060), listing.ExpiresAt)

	cat, err := m.GetCat(a, id)
	require.NoError(t, err)
	assert.Equal(t, types.EscrowAccount, cat.Owner)
	assert.True(t, cat.Escrowed())
}

// Scenario: a buyer purchases before expiry; ownership moves, the listing is
// removed, and a cat_sold event is appended after the cat_minted one.
func TestBuyTransfersAndEmitsEvent(t *testing.T) {
	m, clk := newMarket(t, 1000)
	a, b := types.NewAccount(), types.NewAccount()
	require.NoError(t, m.Init(a))
	id, err := m.MintCat(a, "Tom", 3)
	require.NoError(t, err)
	_, err = m.ListCat(a, id, 100, 60, a)
	require.NoError(t, err)

	clk.Advance(30)
	sale, err := m.BuyCat(a, id, b)
	require.NoError(t, err)
	assert.Equal(t, &Sale{CatID: id, Seller: a, Buyer: b, Price: 100}, sale)

	cat, err := m.GetCat(a, id)
	require.NoError(t, err)
	assert.Equal(t, b, cat.Owner)

	_, err = m.BuyCat(a, id, types.NewAccount())
	assert.ErrorIs(t, err, types.ErrNotListed)

	events, err := m.Events(a)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, types.EventCatMinted, events[0].Type)
	sold := events[1]
	assert.Equal(t, types.EventCatSold, sold.Type)
	assert.Equal(t, uint64(2), sold.Seq)
	assert.Equal(t, a, sold.Seller)
	assert.Equal(t, b, sold.Buyer)
	assert.Equal(t, uint64(100), sold.Price)
	assert.Equal(t, uint64(1030), sold.At)
}

// A buyer can re-list a purchased cat in the original scope.
func TestResaleByNewOwner(t *testing.T) {
	m, _ := newMarket(t, 1000)
	a, b := types.NewAccount(), types.NewAccount()
	require.NoError(t, m.Init(a))
	id, err := m.MintCat(a, "Tom", 3)
	require.NoError(t, err)
	_, err = m.ListCat(a, id, 100, 60, a)
	require.NoError(t, err)
	_, err = m.BuyCat(a, id, b)
	require.NoError(t, err)

	// The original minter no longer owns the cat.
	_, err = m.ListCat(a, id, 500, 60, a)
	assert.ErrorIs(t, err, types.ErrNotOwner)

	// The buyer does, and lists in the cat's originating scope.
	_, err = m.ListCat(a, id, 500, 60, b)
	require.NoError(t, err)
}

// Scenario: cancel before purchase restores the seller.
func TestCancelListing(t *testing.T) {
	m, _ := newMarket(t, 1000)
	a := types.NewAccount()
	require.NoError(t, m.Init(a))
	id, err := m.MintCat(a, "Whiskers", 1)
	require.NoError(t, err)
	_, err = m.ListCat(a, id, 100, 60, a)
	require.NoError(t, err)

	require.NoError(t, m.CancelListing(a, id, a))

	cat, err := m.GetCat(a, id)
	require.NoError(t, err)
	assert.Equal(t, a, cat.Owner)

	_, err = m.BuyCat(a, id, types.NewAccount())
	assert.ErrorIs(t, err, types.ErrNotListed)
}

// Scenario: any account purges a strictly-expired listing; by default the
// cat remains with the escrow sentinel.
func TestPurgeExpiredStrandsByDefault(t *testing.T) {
	m, clk := newMarket(t, 1000)
	a := types.NewAccount()
	stranger := types.NewAccount()
	require.NoError(t, m.Init(a))
	id, err := m.MintCat(a, "Mittens", 2)
	require.NoError(t, err)
	_, err = m.ListCat(a, id, 100, 10, a)
	require.NoError(t, err)

	clk.Set(1010)
	assert.ErrorIs(t, m.PurgeExpired(a, id, stranger), types.ErrNotExpired)

	clk.Set(1011)
	require.NoError(t, m.PurgeExpired(a, id, stranger))

	cat, err := m.GetCat(a, id)
	require.NoError(t, err)
	assert.Equal(t, types.EscrowAccount, cat.Owner)
}

func TestPurgeExpiredRestoreOption(t *testing.T) {
	m, clk := newMarket(t, 1000, WithRestoreOnPurge())
	a := types.NewAccount()
	require.NoError(t, m.Init(a))
	id, err := m.MintCat(a, "Mittens", 2)
	require.NoError(t, err)
	_, err = m.ListCat(a, id, 100, 10, a)
	require.NoError(t, err)

	clk.Set(1011)
	require.NoError(t, m.PurgeExpired(a, id, types.NewAccount()))

	cat, err := m.GetCat(a, id)
	require.NoError(t, err)
	assert.Equal(t, a, cat.Owner)
}

// Expiration boundary triple: purchase succeeds at the expiration instant,
// purge fails there, and purge succeeds one second later.
func TestExpirationBoundary(t *testing.T) {
	m, clk := newMarket(t, 1000)
	a, b := types.NewAccount(), types.NewAccount()
	require.NoError(t, m.Init(a))

	id1, err := m.MintCat(a, "Tom", 1)
	require.NoError(t, err)
	id2, err := m.MintCat(a, "Whiskers", 1)
	require.NoError(t, err)
	_, err = m.ListCat(a, id1, 100, 60, a)
	require.NoError(t, err)
	_, err = m.ListCat(a, id2, 100, 60, a)
	require.NoError(t, err)

	clk.Set(1060)
	assert.ErrorIs(t, m.PurgeExpired(a, id1, b), types.ErrNotExpired)
	_, err = m.BuyCat(a, id1, b)
	assert.NoError(t, err, "purchase at now == expiration must succeed")

	clk.Set(1061)
	_, err = m.BuyCat(a, id2, b)
	assert.ErrorIs(t, err, types.ErrListingExpired)
	assert.NoError(t, m.PurgeExpired(a, id2, b))
}

// Two concurrent purchase attempts on the same listing: at most one wins and
// the loser observes ErrNotListed.
func TestConcurrentBuyersSingleWinner(t *testing.T) {
	m, _ := newMarket(t, 1000)
	a := types.NewAccount()
	require.NoError(t, m.Init(a))
	id, err := m.MintCat(a, "Tom", 3)
	require.NoError(t, err)
	_, err = m.ListCat(a, id, 100, 600, a)
	require.NoError(t, err)

	const buyers = 16
	var wg sync.WaitGroup
	results := make([]error, buyers)
	winners := make([]types.Account, buyers)
	for i := 0; i < buyers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			buyer := types.NewAccount()
			if _, err := m.BuyCat(a, id, buyer); err != nil {
				results[i] = err
				return
			}
			winners[i] = buyer
		}()
	}
	wg.Wait()

	var won int
	var winner types.Account
	for i := 0; i < buyers; i++ {
		if results[i] == nil {
			won++
			winner = winners[i]
		} else {
			assert.ErrorIs(t, results[i], types.ErrNotListed)
		}
	}
	require.Equal(t, 1, won, "exactly one buyer may win")

	cat, err := m.GetCat(a, id)
	require.NoError(t, err)
	assert.Equal(t, winner, cat.Owner)
}

// Single ownership holds across every state the facade can produce.
func TestSingleOwnershipInvariant(t *testing.T) {
	m, clk := newMarket(t, 1000)
	a, b := types.NewAccount(), types.NewAccount()
	require.NoError(t, m.Init(a))

	check := func(id uint64) {
		cat, err := m.GetCat(a, id)
		require.NoError(t, err)
		assert.NotEmpty(t, cat.Owner, "ownership is never null")
	}

	id, err := m.MintCat(a, "Tom", 3)
	require.NoError(t, err)
	check(id)

	_, err = m.ListCat(a, id, 100, 60, a)
	require.NoError(t, err)
	check(id)

	_, err = m.BuyCat(a, id, b)
	require.NoError(t, err)
	check(id)

	id2, err := m.MintCat(a, "Whiskers", 1)
	require.NoError(t, err)
	_, err = m.ListCat(a, id2, 50, 10, a)
	require.NoError(t, err)
	clk.Set(1011)
	require.NoError(t, m.PurgeExpired(a, id2, b))
	check(id2)
}

func TestGetCatUnknownScope(t *testing.T) {
	m, _ := newMarket(t, 0)
	_, err := m.GetCat(types.NewAccount(), 1)
	assert.ErrorIs(t, err, types.ErrNotInitialized)
}
