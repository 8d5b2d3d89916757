// Init command creates the caller's registry and ledger storage.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the caller's marketplace scope",
	Long: `Init creates empty collectible and listing storage for the caller's
account. Every account mints and lists within its own scope.

Example:
  catmart init --as 018f4e8a-1111-7000-8000-000000000001`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	caller, err := resolveCaller()
	if err != nil {
		return err
	}

	m, cleanup, err := openMarket()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := m.Init(caller); err != nil {
		return fmt.Errorf("initialize scope: %w", err)
	}

	fmt.Printf("initialized scope %s\n", caller)
	return nil
}
