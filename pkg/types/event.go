package types

// Event types appended to the per-scope notification log.
const (
	EventCatMinted = "cat_minted"
	EventCatSold   = "cat_sold"
)

// Event is an immutable notification record. Events are append-only and
// ordered by emission: the store assigns Seq starting at 1. The core writes
// events for external observers and never reads them back.
//
// Mint events carry Name, Rarity, and Owner; sale events carry Seller, Buyer,
// and Price. Unused fields stay at their zero value.
type Event struct {
	Seq    uint64  `json:"seq"`
	Type   string  `json:"type"`
	CatID  uint64  `json:"cat_id"`
	Name   string  `json:"name,omitempty"`
	Rarity uint8   `json:"rarity,omitempty"`
	Owner  Account `json:"owner,omitempty"`
	Seller Account `json:"seller,omitempty"`
	Buyer  Account `json:"buyer,omitempty"`
	Price  uint64  `json:"price,omitempty"`
	At     uint64  `json:"at"` // clock seconds at emission
}
