// Buy command purchases a listed cat.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var buyCmd = &cobra.Command{
	Use:   "buy <cat-id>",
	Short: "Buy a listed cat",
	Long: `Buy purchases a cat from another account's listing. The scope is the
seller's account; the caller becomes the new owner. Settlement of the price
happens in the external payment layer.

Example:
  catmart buy 1 --scope 018f4e8a-1111-7000-8000-000000000001`,
	Args: cobra.ExactArgs(1),
	RunE: runBuy,
}

func runBuy(cmd *cobra.Command, args []string) error {
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

	sale, err := m.BuyCat(resolveScope(caller), catID, caller)
	if err != nil {
		return fmt.Errorf("buy cat %d: %w", catID, err)
	}

	if flagJSON {
		return printJSON(sale)
	}
	fmt.Println(formatSale(sale))
	return nil
}
