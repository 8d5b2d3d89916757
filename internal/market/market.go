// Package market is the caller-facing facade over the collectible registry
// and the listing ledger. Each operation takes an already-verified caller
// identity, runs as a single storage transaction, and surfaces the sentinel
// error taxonomy from pkg/types verbatim.
package market

import (
	"log/slog"

	"github.com/duskfeline/catmart/internal/ledger"
	"github.com/duskfeline/catmart/internal/registry"
	"github.com/duskfeline/catmart/pkg/types"
)

// Market orchestrates registry and ledger operations against a store.
type Market struct {
	store          types.Store
	clock          types.Clock
	logger         *slog.Logger
	restoreOnPurge bool
}

// Option configures a Market.
type Option func(*Market)

// WithRestoreOnPurge makes PurgeExpired hand ownership back to the recorded
// seller instead of leaving the cat with the escrow sentinel. The stranding
// default reproduces the historical purge contract; see the package tests
// for both behaviors.
func WithRestoreOnPurge() Option {
	return func(m *Market) {
		m.restoreOnPurge = true
	}
}

// WithLogger sets the structured logger used for operation logging.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Market) {
		m.logger = logger
	}
}

// New creates a Market over the given store and clock.
func New(store types.Store, clock types.Clock, opts ...Option) *Market {
	m := &Market{
		store:  store,
		clock:  clock,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Sale reports the outcome of a successful purchase. The facade computes
// seller and price; moving the actual value is the integrator's settlement
// step, composed outside this package.
type Sale struct {
	CatID  uint64        `json:"cat_id"`
	Seller types.Account `json:"seller"`
	Buyer  types.Account `json:"buyer"`
	Price  uint64        `json:"price"`
}

// Init creates the caller's registry and ledger storage. Fails with
// ErrAlreadyInitialized on repeat.
func (m *Market) Init(caller types.Account) error {
	if err := m.store.InitScope(caller); err != nil {
		return err
	}
	m.logger.Info("scope initialized", "scope", caller)
	return nil
}

// MintCat mints a new cat into the caller's scope and returns its ID.
func (m *Market) MintCat(caller types.Account, name string, rarity uint8) (uint64, error) {
	var id uint64
	err := m.store.Update(caller, func(tx types.Tx) error {
		var err error
		id, err = registry.Mint(tx, caller, name, rarity, m.clock.Now())
		return err
	})
	if err != nil {
		return 0, err
	}
	m.logger.Info("cat minted", "scope", caller, "cat", id, "name", name)
	return id, nil
}

// GetCat looks up a cat in the given scope.
func (m *Market) GetCat(scope types.Account, catID uint64) (*types.Cat, error) {
	var cat *types.Cat
	err := m.store.View(scope, func(tx types.ReadTx) error {
		var err error
		cat, err = registry.Get(tx, catID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cat, nil
}

// ListCat offers a cat for sale. The scope is the cat's originating scope,
// which may differ from the caller when the cat changed hands; the caller
// must be the cat's current owner.
func (m *Market) ListCat(scope types.Account, catID, price, ttlSeconds uint64, caller types.Account) (*types.Listing, error) {
	var listing *types.Listing
	err := m.store.Update(scope, func(tx types.Tx) error {
		var err error
		listing, err = ledger.Create(tx, catID, price, ttlSeconds, caller, m.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	m.logger.Info("cat listed", "scope", scope, "cat", catID, "price", price, "expires_at", listing.ExpiresAt)
	return listing, nil
}

// BuyCat purchases a listed cat for the buyer. The buyer's identity and the
// seller's scope are independent inputs. On success a cat_sold event is
// appended within the same transaction that removes the listing and
// transfers ownership.
func (m *Market) BuyCat(scope types.Account, catID uint64, buyer types.Account) (*Sale, error) {
	var sale *Sale
	err := m.store.Update(scope, func(tx types.Tx) error {
		now := m.clock.Now()
		seller, price, err := ledger.Purchase(tx, catID, buyer, now)
		if err != nil {
			return err
		}
		sale = &Sale{CatID: catID, Seller: seller, Buyer: buyer, Price: price}
		return tx.AppendEvent(&types.Event{
			Type:   types.EventCatSold,
			CatID:  catID,
			Seller: seller,
			Buyer:  buyer,
			Price:  price,
			At:     now,
		})
	})
	if err != nil {
		return nil, err
	}
	m.logger.Info("cat sold", "scope", scope, "cat", catID, "buyer", buyer, "price", sale.Price)
	return sale, nil
}

// CancelListing withdraws the caller's own listing and restores ownership to
// the seller.
func (m *Market) CancelListing(scope types.Account, catID uint64, caller types.Account) error {
	err := m.store.Update(scope, func(tx types.Tx) error {
		return ledger.Cancel(tx, catID, caller)
	})
	if err != nil {
		return err
	}
	m.logger.Info("listing cancelled", "scope", scope, "cat", catID)
	return nil
}

// PurgeExpired removes a strictly-expired listing. Any account may purge on
// another's behalf; the caller is recorded for logging only.
func (m *Market) PurgeExpired(scope types.Account, catID uint64, caller types.Account) error {
	err := m.store.Update(scope, func(tx types.Tx) error {
		return ledger.PurgeExpired(tx, catID, m.clock.Now(), m.restoreOnPurge)
	})
	if err != nil {
		return err
	}
	m.logger.Info("listing purged", "scope", scope, "cat", catID, "caller", caller)
	return nil
}

// Events returns the scope's notification log in emission order.
func (m *Market) Events(scope types.Account) ([]*types.Event, error) {
	var events []*types.Event
	err := m.store.View(scope, func(tx types.ReadTx) error {
		var err error
		events, err = tx.Events()
		return err
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}
