// List command offers a cat for sale.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listPrice uint64
	listTTL   uint64
)

var listCmd = &cobra.Command{
	Use:   "list <cat-id>",
	Short: "Offer a cat for sale",
	Long: `List creates a sale offer for a cat the caller owns. The cat moves
into escrow for the duration of the listing; the offer expires ttl seconds
after creation.

Example:
  catmart list 1 --price 100 --ttl 3600`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().Uint64Var(&listPrice, "price", 0, "asking price (required)")
	listCmd.Flags().Uint64Var(&listTTL, "ttl", 0, "seconds until the offer expires (required)")
	_ = listCmd.MarkFlagRequired("price")
	_ = listCmd.MarkFlagRequired("ttl")
}

func runList(cmd *cobra.Command, args []string) error {
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

	listing, err := m.ListCat(resolveScope(caller), catID, listPrice, listTTL, caller)
	if err != nil {
		return fmt.Errorf("list cat %d: %w", catID, err)
	}

	if flagJSON {
		return printJSON(listing)
	}
	fmt.Println(formatListing(listing))
	return nil
}
