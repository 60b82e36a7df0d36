package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all local data: profile, roadmap, and war chest",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetYes, "yes", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	s, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	if !s.IsOnboarded() && s.Tasks() == nil && s.Budget() == nil {
		fmt.Println("  Nothing to reset.")
		return nil
	}

	if !flagResetYes {
		var confirmed bool
		prompt := huh.NewConfirm().
			Title("Delete your profile, roadmap, and war chest?").
			Description("This cannot be undone.").
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("  Kept everything.")
			return nil
		}
	}

	s.ResetAllData()
	fmt.Println("  All local data deleted. Run `dadops onboard` to start over.")
	return nil
}
