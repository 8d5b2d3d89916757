// Mint command creates a new cat in the caller's scope.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	mintName   string
	mintRarity uint8
)

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Mint a new cat",
	Long: `Mint creates a new cat owned by the caller. IDs are assigned
monotonically per scope, starting at 1, and are never reused.

Example:
  catmart mint --name Tom --rarity 3`,
	RunE: runMint,
}

func init() {
	mintCmd.Flags().StringVar(&mintName, "name", "", "display name for the cat (required)")
	mintCmd.Flags().Uint8Var(&mintRarity, "rarity", 0, "rarity tier")
	_ = mintCmd.MarkFlagRequired("name")
}

func runMint(cmd *cobra.Command, args []string) error {
	caller, err := resolveCaller()
	if err != nil {
		return err
	}

	m, cleanup, err := openMarket()
	if err != nil {
		return err
	}
	defer cleanup()

	id, err := m.MintCat(caller, mintName, mintRarity)
	if err != nil {
		return fmt.Errorf("mint cat: %w", err)
	}

	cat, err := m.GetCat(caller, id)
	if err != nil {
		return fmt.Errorf("fetch minted cat: %w", err)
	}

	if flagJSON {
		return printJSON(cat)
	}
	fmt.Println(formatCat(cat))
	return nil
}
