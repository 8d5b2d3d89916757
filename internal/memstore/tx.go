package memstore

import "github.com/duskfeline/catmart/pkg/types"

// Compile-time interface check: memTx must implement Tx.
var _ types.Tx = (*memTx)(nil)

// memTx provides transactional access to one scope's cloned state. All
// methods hand out copies so callers never alias committed records.
type memTx struct {
	state *scopeState
}

func (t *memTx) GetCat(id uint64) (*types.Cat, error) {
	cat, ok := t.state.cats[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return &cat, nil
}

func (t *memTx) GetListing(catID uint64) (*types.Listing, error) {
	l, ok := t.state.listings[catID]
	if !ok {
		return nil, types.ErrNotListed
	}
	return &l, nil
}

func (t *memTx) Events() ([]*types.Event, error) {
	out := make([]*types.Event, len(t.state.events))
	for i := range t.state.events {
		ev := t.state.events[i]
		out[i] = &ev
	}
	return out, nil
}

func (t *memTx) NextCatID() (uint64, error) {
	id := t.state.nextCatID
	t.state.nextCatID++
	return id, nil
}

func (t *memTx) PutCat(cat *types.Cat) error {
	t.state.cats[cat.ID] = *cat
	return nil
}

func (t *memTx) PutListing(listing *types.Listing) error {
	if _, ok := t.state.listings[listing.CatID]; ok {
		return types.ErrAlreadyListed
	}
	t.state.listings[listing.CatID] = *listing
	return nil
}

func (t *memTx) DeleteListing(catID uint64) error {
	if _, ok := t.state.listings[catID]; !ok {
		return types.ErrNotListed
	}
	delete(t.state.listings, catID)
	return nil
}

func (t *memTx) AppendEvent(ev *types.Event) error {
	stored := *ev
	stored.Seq = uint64(len(t.state.events)) + 1
	t.state.events = append(t.state.events, stored)
	return nil
}
