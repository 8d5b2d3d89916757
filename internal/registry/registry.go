// Package registry owns the catalogue of minted cats per scope. It is the
// single source of truth for who owns a cat right now; the listing ledger and
// the market facade mutate ownership only through SetOwner.
//
// All functions operate inside a storage transaction supplied by the caller,
// so each logical transition remains one all-or-nothing unit.
package registry

import (
	"fmt"

	"github.com/duskfeline/catmart/pkg/types"
)

// Mint allocates the next cat ID for the scope, stores a cat owned by the
// scope's controlling account, and appends a cat_minted event. IDs are
// monotonic from 1 and never reused.
func Mint(tx types.Tx, scope types.Account, name string, rarity uint8, now uint64) (uint64, error) {
	id, err := tx.NextCatID()
	if err != nil {
		return 0, fmt.Errorf("allocate cat id: %w", err)
	}

	cat := &types.Cat{
		ID:     id,
		Name:   name,
		Rarity: rarity,
		Owner:  scope,
	}
	if err := tx.PutCat(cat); err != nil {
		return 0, fmt.Errorf("store cat %d: %w", id, err)
	}

	ev := &types.Event{
		Type:   types.EventCatMinted,
		CatID:  id,
		Name:   name,
		Rarity: rarity,
		Owner:  scope,
		At:     now,
	}
	if err := tx.AppendEvent(ev); err != nil {
		return 0, fmt.Errorf("append mint event: %w", err)
	}

	return id, nil
}

// Get retrieves a cat by ID. Returns types.ErrNotFound if absent.
func Get(tx types.ReadTx, id uint64) (*types.Cat, error) {
	return tx.GetCat(id)
}

// SetOwner reassigns a cat to a new owner. Internal mutation used by the
// listing ledger during escrow and transfer transitions; not part of the
// caller-facing contract.
func SetOwner(tx types.Tx, id uint64, owner types.Account) error {
	cat, err := tx.GetCat(id)
	if err != nil {
		return err
	}
	cat.Owner = owner
	return tx.PutCat(cat)
}
