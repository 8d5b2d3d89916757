package badgerstore

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/duskfeline/catmart/pkg/types"
)

// Compile-time interface check: storeTx must implement Tx.
var _ types.Tx = (*storeTx)(nil)

// storeTx adapts one *badger.Txn to the typed store transaction contract.
type storeTx struct {
	txn   *badger.Txn
	scope types.Account
}

func (t *storeTx) GetCat(id uint64) (*types.Cat, error) {
	var cat types.Cat
	if err := t.get(catKey(t.scope, id), &cat, types.ErrNotFound); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (t *storeTx) GetListing(catID uint64) (*types.Listing, error) {
	var l types.Listing
	if err := t.get(listingKey(t.scope, catID), &l, types.ErrNotListed); err != nil {
		return nil, err
	}
	return &l, nil
}

func (t *storeTx) Events() ([]*types.Event, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = eventPrefix(t.scope)
	it := t.txn.NewIterator(opts)
	defer it.Close()

	var events []*types.Event
	for it.Seek(opts.Prefix); it.Valid(); it.Next() {
		val, err := it.Item().ValueCopy(nil)
		if err != nil {
			return nil, fmt.Errorf("reading event: %w", err)
		}
		var ev types.Event
		if err := msgpack.Unmarshal(val, &ev); err != nil {
			return nil, fmt.Errorf("decoding event: %w", err)
		}
		events = append(events, &ev)
	}
	return events, nil
}

func (t *storeTx) NextCatID() (uint64, error) {
	key := counterKey(t.scope)
	item, err := t.txn.Get(key)
	if err != nil {
		return 0, fmt.Errorf("reading id counter: %w", err)
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return 0, fmt.Errorf("reading id counter: %w", err)
	}

	id := bytesToU64(val)
	if err := t.txn.Set(key, u64ToBytes(id+1)); err != nil {
		return 0, fmt.Errorf("advancing id counter: %w", err)
	}
	return id, nil
}

func (t *storeTx) PutCat(cat *types.Cat) error {
	return t.set(catKey(t.scope, cat.ID), cat)
}

func (t *storeTx) PutListing(listing *types.Listing) error {
	key := listingKey(t.scope, listing.CatID)
	_, err := t.txn.Get(key)
	if err == nil {
		return types.ErrAlreadyListed
	}
	if !errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("checking listing %d: %w", listing.CatID, err)
	}
	return t.set(key, listing)
}

func (t *storeTx) DeleteListing(catID uint64) error {
	key := listingKey(t.scope, catID)
	if _, err := t.txn.Get(key); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return types.ErrNotListed
		}
		return fmt.Errorf("checking listing %d: %w", catID, err)
	}
	return t.txn.Delete(key)
}

func (t *storeTx) AppendEvent(ev *types.Event) error {
	seqKey := eventSeqKey(t.scope)
	item, err := t.txn.Get(seqKey)
	if err != nil {
		return fmt.Errorf("reading event seq: %w", err)
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return fmt.Errorf("reading event seq: %w", err)
	}

	seq := bytesToU64(val) + 1
	stored := *ev
	stored.Seq = seq
	if err := t.set(eventKey(t.scope, seq), &stored); err != nil {
		return err
	}
	return t.txn.Set(seqKey, u64ToBytes(seq))
}

func (t *storeTx) get(key []byte, out any, missing error) error {
	item, err := t.txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return missing
	}
	if err != nil {
		return fmt.Errorf("reading %q: %w", key, err)
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return fmt.Errorf("reading %q: %w", key, err)
	}
	if err := msgpack.Unmarshal(val, out); err != nil {
		return fmt.Errorf("decoding %q: %w", key, err)
	}
	return nil
}

func (t *storeTx) set(key []byte, v any) error {
	val, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	return t.txn.Set(key, val)
}
