// Get command looks up a cat by ID.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <cat-id>",
	Short: "Look up a cat",
	Long: `Get retrieves a cat from the given scope (default: the caller's own).

Example:
  catmart get 1
  catmart get 1 --scope 018f4e8a-1111-7000-8000-000000000001 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
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

	cat, err := m.GetCat(resolveScope(caller), catID)
	if err != nil {
		return fmt.Errorf("get cat %d: %w", catID, err)
	}

	if flagJSON {
		return printJSON(cat)
	}
	fmt.Println(formatCat(cat))
	return nil
}
