// Root command for the catmart CLI.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/duskfeline/catmart/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagAs        string
	flagScope     string
	flagJSON      bool
	flagVerbose   bool
)

// Values loaded from config.yaml by PersistentPreRunE.
var (
	configBackend        string
	configDataDir        string
	configRestoreOnPurge bool
)

var rootCmd = &cobra.Command{
	Use:   "catmart",
	Short: "Catmart is a ledger for unique digital collectibles",
	Long: `Catmart tracks unique digital collectibles ("cats") and mediates their
transfer between owners through a listing/escrow/purchase protocol.

Caller identity is supplied with --as or the CATMART_ACCOUNT environment
variable; verification happens in the external authentication layer.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if flagVerbose {
			level = slog.LevelInfo
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		configBackend = cfg.GetString(cfgKeyBackend)
		configDataDir = cfg.GetString(cfgKeyDataDir)
		configRestoreOnPurge = cfg.GetBool(cfgKeyRestoreOnPurge)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.catmart-db)")
	rootCmd.PersistentFlags().StringVar(&flagAs, "as", "", "verified caller account (default: $CATMART_ACCOUNT)")
	rootCmd.PersistentFlags().StringVar(&flagScope, "scope", "", "seller scope account (default: the caller)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log operations to stderr")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(mintCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(purgeCmd)
	rootCmd.AddCommand(eventsCmd)
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}
