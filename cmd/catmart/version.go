package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release string stamped at build time.
const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the catmart version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("catmart v%s\n", Version)
	},
}
