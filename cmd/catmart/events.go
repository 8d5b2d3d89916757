// Events command lists the scope's event log.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show the event log",
	Long: `Events prints every mint and sale recorded in the scope, in the
order the store assigned them.

Example:
  catmart events --json`,
	Args: cobra.NoArgs,
	RunE: runEvents,
}

func runEvents(cmd *cobra.Command, args []string) error {
	caller, err := resolveCaller()
	if err != nil {
		return err
	}

	m, cleanup, err := openMarket()
	if err != nil {
		return err
	}
	defer cleanup()

	events, err := m.Events(resolveScope(caller))
	if err != nil {
		return fmt.Errorf("list events: %w", err)
	}

	if flagJSON {
		return printJSON(events)
	}
	fmt.Print(formatEvents(events))
	return nil
}
