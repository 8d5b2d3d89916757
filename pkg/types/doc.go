// Package types defines the entity types, the Store and Tx interfaces, and
// the standard error taxonomy for the catmart collectible ledger.
//
// The package is pure data and contracts: storage backends live under
// internal/, and the ownership/escrow rules that mutate these types live in
// internal/registry, internal/ledger, and internal/market.
package types
