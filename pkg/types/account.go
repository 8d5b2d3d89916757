package types

import "github.com/google/uuid"

// Account identifies a caller or scope. Accounts are UUID strings supplied by
// the external identity layer; the core never verifies them.
type Account string

// EscrowAccount is the reserved sentinel that holds ownership of a cat while
// it is listed. It is the nil UUID and is never assigned to a real caller.
const EscrowAccount Account = "00000000-0000-0000-0000-000000000000"

// NewAccount generates a fresh account identifier. UUID v7 keeps accounts
// roughly time-ordered; falls back to v4 if v7 generation fails.
func NewAccount() Account {
	id, err := uuid.NewV7()
	if err != nil {
		return Account(uuid.New().String())
	}
	return Account(id.String())
}

// Valid reports whether the account parses as a UUID and is not the escrow
// sentinel.
func (a Account) Valid() bool {
	if a == EscrowAccount {
		return false
	}
	_, err := uuid.Parse(string(a))
	return err == nil
}

func (a Account) String() string {
	return string(a)
}
