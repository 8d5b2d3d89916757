package types

// Cat represents a unique minted collectible.
//
// Identity is the per-scope monotonic ID assigned at mint time; IDs start at 1
// and are never reused. Every cat has exactly one owner at all times: escrow is
// modeled as ownership temporarily held by EscrowAccount, so the single-owner
// invariant never breaks while a cat is listed.
type Cat struct {
	ID     uint64  `json:"cat_id"`
	Name   string  `json:"name"`
	Rarity uint8   `json:"rarity"` // opaque tag, domain meaning left to callers
	Owner  Account `json:"owner"`
}

// Escrowed reports whether the cat is currently held by the escrow sentinel,
// which is the case exactly while an active listing references it.
func (c *Cat) Escrowed() bool {
	return c.Owner == EscrowAccount
}
