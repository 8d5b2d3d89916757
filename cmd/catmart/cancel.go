// Cancel command withdraws the caller's own listing.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel <cat-id>",
	Short: "Withdraw a listing",
	Long: `Cancel removes the caller's sale offer for a cat and returns the cat
from escrow to the caller. Only the seller who created the listing may
cancel it.

Example:
  catmart cancel 1`,
	Args: cobra.ExactArgs(1),
	RunE: runCancel,
}

func runCancel(cmd *cobra.Command, args []string) error {
	caller, err := resolveCaller()
	if err != nil {
		return err
	}
	catID, err := parseCatID(args[0])
	if err != nil {
		return err
	}

	m, cleanup, err := openMarket()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := m.CancelListing(resolveScope(caller), catID, caller); err != nil {
		return fmt.Errorf("cancel listing %d: %w", catID, err)
	}

	fmt.Printf("cancelled listing for cat %d\n", catID)
	return nil
}
