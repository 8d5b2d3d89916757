// Purge command removes an expired listing.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var purgeCmd = &cobra.Command{
	Use:   "purge <cat-id>",
	Short: "Remove an expired listing",
	Long: `Purge deletes a listing whose expiration is strictly in the past.
Any caller may purge; the cat stays with the escrow account unless
restore_on_purge is enabled in the config file.

Example:
  catmart purge 1`,
	Args: cobra.ExactArgs(1),
	RunE: runPurge,
}

func runPurge(cmd *cobra.Command, args []string) error {
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

	if err := m.PurgeExpired(resolveScope(caller), catID, caller); err != nil {
		return fmt.Errorf("purge listing %d: %w", catID, err)
	}

	fmt.Printf("purged expired listing for cat %d\n", catID)
	return nil
}
