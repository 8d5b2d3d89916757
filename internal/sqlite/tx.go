package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/duskfeline/catmart/pkg/types"
)

// Compile-time interface check: storeTx must implement Tx.
var _ types.Tx = (*storeTx)(nil)

// storeTx adapts one *sql.Tx to the typed store transaction contract. All
// values are stored as int64 and converted back on read; uint64 fields stay
// well inside the int64 range for any realistic clock or price.
type storeTx struct {
	tx    *sql.Tx
	scope types.Account
}

func (t *storeTx) GetCat(id uint64) (*types.Cat, error) {
	row := t.tx.QueryRow(
		"SELECT cat_id, name, rarity, owner FROM cats WHERE scope = ? AND cat_id = ?",
		string(t.scope), int64(id),
	)

	var catID int64
	var rarity int64
	cat := &types.Cat{}
	err := row.Scan(&catID, &cat.Name, &rarity, &cat.Owner)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting cat %d: %w", id, err)
	}
	cat.ID = uint64(catID)
	cat.Rarity = uint8(rarity)
	return cat, nil
}

func (t *storeTx) GetListing(catID uint64) (*types.Listing, error) {
	row := t.tx.QueryRow(
		"SELECT cat_id, seller, price, expires_at, escrowed FROM listings WHERE scope = ? AND cat_id = ?",
		string(t.scope), int64(catID),
	)

	var id, price, expiresAt int64
	var escrowed int64
	l := &types.Listing{}
	err := row.Scan(&id, &l.Seller, &price, &expiresAt, &escrowed)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotListed
	}
	if err != nil {
		return nil, fmt.Errorf("getting listing %d: %w", catID, err)
	}
	l.CatID = uint64(id)
	l.Price = uint64(price)
	l.ExpiresAt = uint64(expiresAt)
	l.Escrowed = escrowed != 0
	return l, nil
}

func (t *storeTx) Events() ([]*types.Event, error) {
	rows, err := t.tx.Query(
		"SELECT seq, type, cat_id, name, rarity, owner, seller, buyer, price, at FROM events WHERE scope = ? ORDER BY seq",
		string(t.scope),
	)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var events []*types.Event
	for rows.Next() {
		var seq, catID, rarity, price, at int64
		ev := &types.Event{}
		if err := rows.Scan(&seq, &ev.Type, &catID, &ev.Name, &rarity, &ev.Owner, &ev.Seller, &ev.Buyer, &price, &at); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		ev.Seq = uint64(seq)
		ev.CatID = uint64(catID)
		ev.Rarity = uint8(rarity)
		ev.Price = uint64(price)
		ev.At = uint64(at)
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (t *storeTx) NextCatID() (uint64, error) {
	var next int64
	err := t.tx.QueryRow(
		"SELECT next_cat_id FROM scopes WHERE scope = ?", string(t.scope),
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("reading id counter: %w", err)
	}

	if _, err := t.tx.Exec(
		"UPDATE scopes SET next_cat_id = next_cat_id + 1 WHERE scope = ?", string(t.scope),
	); err != nil {
		return 0, fmt.Errorf("advancing id counter: %w", err)
	}
	return uint64(next), nil
}

func (t *storeTx) PutCat(cat *types.Cat) error {
	_, err := t.tx.Exec(
		"INSERT OR REPLACE INTO cats (scope, cat_id, name, rarity, owner) VALUES (?, ?, ?, ?, ?)",
		string(t.scope), int64(cat.ID), cat.Name, int64(cat.Rarity), string(cat.Owner),
	)
	if err != nil {
		return fmt.Errorf("storing cat %d: %w", cat.ID, err)
	}
	return nil
}

func (t *storeTx) PutListing(listing *types.Listing) error {
	// Duplicate keys are rejected, never overwritten.
	var one int
	err := t.tx.QueryRow(
		"SELECT 1 FROM listings WHERE scope = ? AND cat_id = ?",
		string(t.scope), int64(listing.CatID),
	).Scan(&one)
	if err == nil {
		return types.ErrAlreadyListed
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("checking listing %d: %w", listing.CatID, err)
	}

	escrowed := 0
	if listing.Escrowed {
		escrowed = 1
	}
	_, err = t.tx.Exec(
		"INSERT INTO listings (scope, cat_id, seller, price, expires_at, escrowed) VALUES (?, ?, ?, ?, ?, ?)",
		string(t.scope), int64(listing.CatID), string(listing.Seller),
		int64(listing.Price), int64(listing.ExpiresAt), escrowed,
	)
	if err != nil {
		return fmt.Errorf("storing listing %d: %w", listing.CatID, err)
	}
	return nil
}

func (t *storeTx) DeleteListing(catID uint64) error {
	res, err := t.tx.Exec(
		"DELETE FROM listings WHERE scope = ? AND cat_id = ?",
		string(t.scope), int64(catID),
	)
	if err != nil {
		return fmt.Errorf("deleting listing %d: %w", catID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting listing %d: %w", catID, err)
	}
	if n == 0 {
		return types.ErrNotListed
	}
	return nil
}

func (t *storeTx) AppendEvent(ev *types.Event) error {
	var seq int64
	err := t.tx.QueryRow(
		"SELECT COALESCE(MAX(seq), 0) + 1 FROM events WHERE scope = ?", string(t.scope),
	).Scan(&seq)
	if err != nil {
		return fmt.Errorf("allocating event seq: %w", err)
	}

	_, err = t.tx.Exec(
		"INSERT INTO events (scope, seq, type, cat_id, name, rarity, owner, seller, buyer, price, at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		string(t.scope), seq, ev.Type, int64(ev.CatID), ev.Name, int64(ev.Rarity),
		string(ev.Owner), string(ev.Seller), string(ev.Buyer), int64(ev.Price), int64(ev.At),
	)
	if err != nil {
		return fmt.Errorf("appending event: %w", err)
	}
	return nil
}
