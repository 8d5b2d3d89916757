package types

// Listing is an active sale offer for a cat. It is keyed by the cat ID it
// references, so at most one active listing can exist per cat.
//
// A listing is never mutated after creation; every transition (purchase,
// cancel, purge) removes it and optionally recreates state elsewhere.
type Listing struct {
	CatID     uint64  `json:"cat_id"`
	Seller    Account `json:"seller"`
	Price     uint64  `json:"price"`      // currency-agnostic unit
	ExpiresAt uint64  `json:"expires_at"` // absolute seconds, now + ttl at creation
	Escrowed  bool    `json:"escrowed"`   // true once the cat moved to EscrowAccount
}

// Purchasable reports whether a purchase at the given instant is still valid.
// The expiration instant itself favors the buyer.
func (l *Listing) Purchasable(now uint64) bool {
	return l.ExpiresAt >= now
}

// Expired reports whether the listing is strictly past its expiration, which
// is the mirror boundary of Purchasable: a listing is purgeable only once no
// purchase could succeed against it.
func (l *Listing) Expired(now uint64) bool {
	return l.ExpiresAt < now
}
