package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"dadops/internal/cli"
	"dadops/internal/costmodel"
	"dadops/internal/datemath"
	"dadops/internal/model"
	"dadops/internal/store"
	"dadops/internal/validate"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "First-time setup: due date, insurance, and savings",
	RunE:  runOnboard,
}

func init() {
	rootCmd.AddCommand(onboardCmd)
}

// wholeNumber adapts the validation messages to huh's validator shape.
// Optional fields accept empty input.
func wholeNumber(optional bool) func(string) error {
	return func(value string) error {
		if value == "" {
			if optional {
				return nil
			}
			return errors.New("Please enter a valid whole number")
		}
		if msg := validate.WholeNumberError(value); msg != "" {
			return errors.New(msg)
		}
		return nil
	}
}

func runOnboard(_ *cobra.Command, _ []string) error {
	s, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	if s.IsOnboarded() {
		fmt.Println("\n  A profile already exists. Onboarding again replaces it")
		fmt.Println("  but keeps your roadmap and war chest data.")
	}

	var (
		monthName string
		yearIn    = strconv.Itoa(time.Now().Year() + 1)
		dayIn     string
		planName  string
		premiumIn string
		deductIn  string
		oopIn     string
		hsaIn     string
		cashIn    string
		confirmed bool
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Due month").
				Options(huh.NewOptions(datemath.MonthNames...)...).
				Value(&monthName),
			huh.NewInput().
				Title("Due year").
				Value(&yearIn).
				Validate(wholeNumber(false)),
			huh.NewInput().
				Title("Due day (optional)").
				Placeholder("leave blank if you only know the month").
				Value(&dayIn).
				Validate(wholeNumber(true)),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Insurance plan name").
				Placeholder("e.g. Aetna PPO Family").
				Value(&planName),
			huh.NewInput().
				Title("Monthly premium ($)").
				Value(&premiumIn).
				Validate(wholeNumber(false)),
			huh.NewInput().
				Title("Family deductible ($)").
				Value(&deductIn).
				Validate(wholeNumber(false)),
			huh.NewInput().
				Title("Family out-of-pocket max ($)").
				Value(&oopIn).
				Validate(wholeNumber(false)),
			huh.NewInput().
				Title("Employer HSA/HRA contribution ($, optional)").
				Value(&hsaIn).
				Validate(wholeNumber(true)),
			huh.NewInput().
				Title("Cash already saved ($, optional)").
				Value(&cashIn).
				Validate(wholeNumber(true)),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	due := model.DueDate{Month: datemath.MonthNumber(monthName)}
	if due.Month == 0 {
		return fmt.Errorf("invalid month: %q", monthName)
	}
	due.Year, err = strconv.Atoi(yearIn)
	if err != nil {
		return fmt.Errorf("invalid year: %q", yearIn)
	}
	if dayIn != "" {
		day, err := strconv.Atoi(dayIn)
		if err != nil || day < 1 || day > 31 {
			return fmt.Errorf("invalid day: %q", dayIn)
		}
		due.Day = &day
	}

	premium, err := validate.ParseAmount(premiumIn)
	if err != nil {
		return fmt.Errorf("monthly premium: %w", err)
	}
	deductible, err := validate.ParseAmount(deductIn)
	if err != nil {
		return fmt.Errorf("family deductible: %w", err)
	}
	oopMax, err := validate.ParseAmount(oopIn)
	if err != nil {
		return fmt.Errorf("out-of-pocket max: %w", err)
	}

	ins := model.Insurance{
		PlanName:         planName,
		MonthlyPremium:   premium,
		FamilyDeductible: deductible,
		FamilyOopMax:     oopMax,
		EmployerHSA:      lenientAmount(hsaIn),
	}

	costs := costmodel.Calculate(ins, due, time.Now())

	dueLabel, err := datemath.FormatDueDate(due)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("YOUR BIRTH-YEAR NUMBERS"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Rows: [][]string{
			{"Due date", dueLabel},
			{"Annual premiums", cli.FormatCurrency(costs.AnnualPremium)},
			{"Expected out-of-pocket", cli.FormatCurrency(costs.ExpectedOOP)},
			{"Employer HSA/HRA", "-" + cli.FormatCurrency(ins.EmployerHSA)},
			{"---"},
			{"Effective cost", cli.FormatCurrency(costs.EffectiveCost)},
			{"Monthly savings target", cli.FormatCurrency(costs.MonthlySavingsTarget)},
		},
	}))
	if costs.DoubleDeductibleRisk {
		fmt.Println(cli.Warn("  Heads up: a Jan-Mar due date can span two plan years,"))
		fmt.Println(cli.Warn("  risking your out-of-pocket max twice. Budget for it."))
	}
	fmt.Println()

	confirm := huh.NewConfirm().
		Title("Save this profile and build your roadmap?").
		Value(&confirmed)
	if err := confirm.Run(); err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("  Nothing saved.")
		return nil
	}

	profile := model.UserProfile{DueDate: due, Insurance: ins}
	if cash := lenientAmount(cashIn); cashIn != "" {
		profile.CashOnHand = &cash
	}

	s.InitializeUser(profile, store.CostSeed{
		AnnualPremium: costs.AnnualPremium,
		ExpectedOOP:   costs.ExpectedOOP,
		EmployerHSA:   ins.EmployerHSA,
	})

	fmt.Println()
	fmt.Println(cli.Good("  Profile saved. Try `dadops status` or `dadops roadmap list`."))
	return nil
}

// lenientAmount applies the optional-field policy: empty or unparseable
// input becomes 0.
func lenientAmount(value string) float64 {
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return n
}
