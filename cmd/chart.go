package cmd

import (
	"fmt"
	"os"
	"time"

	"dadops/internal/charts"
	"dadops/internal/costmodel"

	"github.com/spf13/cobra"
)

var flagChartOut string

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Export a PNG chart of your savings plan",
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().StringVarP(&flagChartOut, "out", "o", "dadops-savings.png", "Output file path")
	rootCmd.AddCommand(chartCmd)
}

func runChart(_ *cobra.Command, _ []string) error {
	s, cleanup, err := requireOnboarded()
	if err != nil {
		return err
	}
	defer cleanup()

	profile := s.Profile()
	costs := costmodel.Calculate(profile.Insurance, profile.DueDate, time.Now())

	cash := 0.0
	if profile.CashOnHand != nil {
		cash = *profile.CashOnHand
	}

	png, err := charts.SavingsProjection(costs, profile.DueDate, cash)
	if err != nil {
		return err
	}

	if err := os.WriteFile(flagChartOut, png, 0o644); err != nil {
		return fmt.Errorf("writing chart: %w", err)
	}

	if !flagQuiet {
		fmt.Printf("  Wrote %s (%d months to go, %s/month target)\n",
			flagChartOut, costs.MonthsRemaining, fmt.Sprintf("$%.0f", costs.MonthlySavingsTarget))
	}
	return nil
}
