// Package ledger owns the set of active sale offers per scope and enforces
// the escrow transitions on the referenced cat: owned -> escrowed on listing,
// escrowed -> buyer on purchase, escrowed -> seller on cancel.
//
// Every function runs inside a storage transaction supplied by the caller and
// leaves state untouched when any precondition fails.
package ledger

import (
	"errors"
	"fmt"

	"github.com/duskfeline/catmart/internal/registry"
	"github.com/duskfeline/catmart/pkg/types"
)

// Create lists a cat for sale. Precondition order matters: an already-listed
// cat always fails with ErrAlreadyListed no matter who calls, so the listing
// check runs before the ownership check.
//
// On success the cat's ownership moves to the escrow sentinel and a listing
// keyed by the cat ID is inserted with Escrowed set.
func Create(tx types.Tx, catID, price, ttlSeconds uint64, caller types.Account, now uint64) (*types.Listing, error) {
	cat, err := tx.GetCat(catID)
	if err != nil {
		return nil, err
	}

	if _, err := tx.GetListing(catID); err == nil {
		return nil, types.ErrAlreadyListed
	} else if !errors.Is(err, types.ErrNotListed) {
		return nil, err
	}

	if cat.Owner != caller {
		return nil, types.ErrNotOwner
	}

	expiresAt := now + ttlSeconds
	if expiresAt < now {
		return nil, types.ErrInvalidTTL
	}

	if err := registry.SetOwner(tx, catID, types.EscrowAccount); err != nil {
		return nil, fmt.Errorf("escrow cat %d: %w", catID, err)
	}

	listing := &types.Listing{
		CatID:     catID,
		Seller:    caller,
		Price:     price,
		ExpiresAt: expiresAt,
		Escrowed:  true,
	}
	if err := tx.PutListing(listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// Purchase executes a buy against an active listing. A purchase at exactly
// the expiration instant still succeeds; later attempts fail with
// ErrListingExpired.
//
// Listing removal and ownership transfer happen in the same transaction, so
// exactly one buyer can win a listing: a second attempt against the same cat
// finds no listing and fails with ErrNotListed. Ownership goes from the
// escrow sentinel directly to the buyer, never transiently to the seller.
// Returns the seller and price so the caller can drive settlement and event
// emission.
func Purchase(tx types.Tx, catID uint64, buyer types.Account, now uint64) (types.Account, uint64, error) {
	listing, err := tx.GetListing(catID)
	if err != nil {
		return "", 0, err
	}
	if !listing.Purchasable(now) {
		return "", 0, types.ErrListingExpired
	}

	if err := tx.DeleteListing(catID); err != nil {
		return "", 0, err
	}
	if err := registry.SetOwner(tx, catID, buyer); err != nil {
		return "", 0, fmt.Errorf("transfer cat %d to buyer: %w", catID, err)
	}

	return listing.Seller, listing.Price, nil
}

// Cancel withdraws an active listing. Only the recorded seller may cancel;
// ownership of the cat returns from the escrow sentinel to the seller.
func Cancel(tx types.Tx, catID uint64, caller types.Account) error {
	listing, err := tx.GetListing(catID)
	if err != nil {
		return err
	}
	if listing.Seller != caller {
		return types.ErrNotOwner
	}

	if err := tx.DeleteListing(catID); err != nil {
		return err
	}
	return registry.SetOwner(tx, catID, listing.Seller)
}

// PurgeExpired removes a listing whose expiration is strictly past. It is
// permissionless garbage collection: no caller check, anyone may purge.
//
// When restoreOwner is false the cat stays owned by the escrow sentinel after
// the purge. That stranding reproduces the historical contract; pass
// restoreOwner to hand the cat back to the recorded seller instead.
func PurgeExpired(tx types.Tx, catID, now uint64, restoreOwner bool) error {
	listing, err := tx.GetListing(catID)
	if err != nil {
		return err
	}
	if !listing.Expired(now) {
		return types.ErrNotExpired
	}

	if err := tx.DeleteListing(catID); err != nil {
		return err
	}
	if restoreOwner {
		return registry.SetOwner(tx, catID, listing.Seller)
	}
	return nil
}
