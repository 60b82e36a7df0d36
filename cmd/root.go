// Package cmd implements the dadops CLI commands.
package cmd

import (
	"fmt"
	"os"

	"dadops/internal/config"
	"dadops/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "dadops",
	Short: "Mission control for expecting fathers",
	Long:  "Track pregnancy costs and milestones: insurance math, a trimester roadmap, and a war chest budget. All data stays on this machine.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override the data directory")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// openStore is the shared load path used by all commands. The returned
// cleanup closes the backing database.
func openStore() (*store.Store, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}

	backend, err := store.OpenSQLite(config.StatePath(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("opening local state: %w", err)
	}

	s := store.Open(backend)
	return s, func() { _ = backend.Close() }, nil
}

// requireOnboarded opens the store and fails with a hint when onboarding
// hasn't run yet.
func requireOnboarded() (*store.Store, func(), error) {
	s, cleanup, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	if !s.IsOnboarded() {
		cleanup()
		return nil, nil, fmt.Errorf("no profile yet — run `dadops onboard` first")
	}
	return s, cleanup, nil
}
