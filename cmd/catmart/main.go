// Package main provides the catmart CLI, the caller-facing surface of the
// collectible ownership and escrow ledger.
package main

func main() {
	Execute()
}
