package cmd

import (
	"errors"
	"fmt"

	"dadops/internal/token"

	"github.com/spf13/cobra"
)

var shareCmd = &cobra.Command{
	Use:   "share <token>",
	Short: "Open a shared comparison token",
	Long:  "Decode a scenario token someone sent you and render the plan comparison. Tokens are self-contained; nothing is saved.",
	Args:  cobra.ExactArgs(1),
	RunE:  runShare,
}

func init() {
	rootCmd.AddCommand(shareCmd)
}

func runShare(_ *cobra.Command, args []string) error {
	data, err := token.Decode(args[0])
	if err != nil {
		switch {
		case errors.Is(err, token.ErrMalformedToken):
			return fmt.Errorf("that token can't be read — check that it was copied completely")
		case errors.Is(err, token.ErrIncompleteData):
			return fmt.Errorf("that token is missing its due date or plans")
		default:
			return err
		}
	}

	renderComparison(data)
	return nil
}
