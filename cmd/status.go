package cmd

import (
	"fmt"
	"sort"
	"time"

	"dadops/internal/cli"
	"dadops/internal/costmodel"
	"dadops/internal/datemath"
	"dadops/internal/model"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Countdown, cost breakdown, and your next moves",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	s, cleanup, err := requireOnboarded()
	if err != nil {
		return err
	}
	defer cleanup()

	profile := s.Profile()
	now := time.Now()

	dueLabel, err := datemath.FormatDueDate(profile.DueDate)
	if err != nil {
		return err
	}

	cd := datemath.CountdownAt(profile.DueDate, now)
	week := datemath.CurrentWeekAt(profile.DueDate, now)
	trimester := datemath.TrimesterForWeek(week)
	costs := costmodel.Calculate(profile.Insurance, profile.DueDate, now)

	fmt.Println()
	fmt.Println(cli.RenderTitle("DADOPS  MISSION STATUS"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title: fmt.Sprintf("Due %s", dueLabel),
		Rows: [][]string{
			{"Countdown", cli.FormatCountdown(cd.Weeks, cd.Days, cd.IsPast)},
			{"Current week", fmt.Sprintf("week %d of 40", week)},
			{"Trimester", cli.FormatTrimester(trimester)},
		},
	}))
	fmt.Println()

	costRows := [][]string{
		{"Annual premiums", cli.FormatCurrency(costs.AnnualPremium)},
		{"Expected out-of-pocket", cli.FormatCurrency(costs.ExpectedOOP)},
		{"Employer HSA/HRA", "-" + cli.FormatCurrency(profile.Insurance.EmployerHSA)},
		{"---"},
		{"Effective cost", cli.FormatCurrency(costs.EffectiveCost)},
		{"Monthly savings target", fmt.Sprintf("%s x %d months", cli.FormatCurrency(costs.MonthlySavingsTarget), costs.MonthsRemaining)},
	}
	fmt.Print(cli.RenderTable(cli.Table{Title: "Birth-year costs", Rows: costRows}))
	if costs.DoubleDeductibleRisk {
		fmt.Println(cli.Warn("  Double-deductible risk: this due date spans two plan years."))
	}
	fmt.Println()

	// War chest gauge
	cash := 0.0
	if profile.CashOnHand != nil {
		cash = *profile.CashOnHand
	}
	progress := costmodel.WarChestProgress(cash, costs.EffectiveCost)
	fmt.Printf("  War chest  %s  %s of %s\n",
		cli.RenderGauge(progress, 30),
		cli.FormatCurrency(cash),
		cli.FormatCurrency(costs.EffectiveCost),
	)
	fmt.Println()

	printUpcomingTasks(s.Tasks(), week)
	return nil
}

// printUpcomingTasks lists the next few incomplete tasks at or after the
// current week, high-stakes first.
func printUpcomingTasks(tasks []model.Task, currentWeek int) {
	if tasks == nil {
		return
	}

	upcoming := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			upcoming = append(upcoming, t)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].IsHighStakes != upcoming[j].IsHighStakes {
			return upcoming[i].IsHighStakes
		}
		return upcoming[i].WeekDue < upcoming[j].WeekDue
	})

	if len(upcoming) == 0 {
		fmt.Println(cli.Good("  Roadmap clear. Nothing outstanding."))
		return
	}

	fmt.Println(cli.Muted("  Next moves:"))
	shown := 0
	for _, t := range upcoming {
		if shown == 5 {
			break
		}
		marker := "·"
		if t.IsHighStakes {
			marker = "!"
		}
		line := fmt.Sprintf("  %s week %-2d  %s", marker, t.WeekDue, t.Title)
		if t.WeekDue < currentWeek {
			line += cli.Warn("  (overdue)")
		}
		fmt.Println(line)
		shown++
	}
	fmt.Println()
}
