package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"dadops/internal/cli"
	"dadops/internal/compare"
	"dadops/internal/costmodel"
	"dadops/internal/datemath"
	"dadops/internal/model"
	"dadops/internal/token"

	"github.com/spf13/cobra"
)

var (
	flagPlans    []string
	flagDueMonth string
	flagDueYear  string
	flagShare    bool
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Rank up to three insurance plans by effective cost",
	Long: `Rank insurance plans by effective birth-year cost.

Each --plan takes name:premium:deductible:oopmax[:hsa], for example:
  dadops compare --due-month February --due-year 2027 \
    --plan "Hers PPO:500:3000:8000:1000" \
    --plan "His HDHP:350:6000:10000:2000"

Without --due-month/--due-year the due date from your profile is used.`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringArrayVarP(&flagPlans, "plan", "p", nil, "Plan as name:premium:deductible:oopmax[:hsa] (repeat up to 3x)")
	compareCmd.Flags().StringVar(&flagDueMonth, "due-month", "", "Due month name, e.g. February")
	compareCmd.Flags().StringVar(&flagDueYear, "due-year", "", "Due year, e.g. 2027")
	compareCmd.Flags().BoolVar(&flagShare, "share", false, "Print a shareable token for this comparison")
	rootCmd.AddCommand(compareCmd)
}

// parsePlanFlag splits a --plan value into its raw text fields. Numeric
// validation happens later: required fields loudly, the HSA leniently.
func parsePlanFlag(raw string) (token.FormPlan, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 4 || len(parts) > 5 {
		return token.FormPlan{}, fmt.Errorf("plan %q: want name:premium:deductible:oopmax[:hsa]", raw)
	}
	plan := token.FormPlan{
		Name:             strings.TrimSpace(parts[0]),
		MonthlyPremium:   strings.TrimSpace(parts[1]),
		FamilyDeductible: strings.TrimSpace(parts[2]),
		FamilyOopMax:     strings.TrimSpace(parts[3]),
	}
	if len(parts) == 5 {
		plan.EmployerHSA = strings.TrimSpace(parts[4])
	}
	return plan, nil
}

func runCompare(_ *cobra.Command, _ []string) error {
	if len(flagPlans) == 0 {
		return fmt.Errorf("at least one --plan is required (see `dadops compare --help`)")
	}
	if len(flagPlans) > 3 {
		return fmt.Errorf("at most 3 plans can be compared, got %d", len(flagPlans))
	}

	due, err := resolveDueDate()
	if err != nil {
		return err
	}

	forms := make([]token.FormPlan, 0, len(flagPlans))
	for _, raw := range flagPlans {
		plan, err := parsePlanFlag(raw)
		if err != nil {
			return err
		}
		forms = append(forms, plan)
	}

	monthName, err := datemath.MonthName(due.Month)
	if err != nil {
		return err
	}

	// Encode normalizes names, ids, and numbers exactly the way a share
	// token would, so the rendered result matches what a recipient sees.
	tok, err := token.Encode(monthName, strconv.Itoa(due.Year), forms)
	if err != nil {
		return err
	}
	data, err := token.Decode(tok)
	if err != nil {
		return err
	}

	renderComparison(data)

	if flagShare {
		fmt.Println(cli.Muted("  Share this scenario:"))
		fmt.Printf("  dadops share %s\n\n", tok)
	}
	return nil
}

// resolveDueDate prefers explicit flags, falling back to the stored profile.
func resolveDueDate() (model.DueDate, error) {
	if flagDueMonth != "" || flagDueYear != "" {
		month := datemath.MonthNumber(flagDueMonth)
		if month == 0 {
			return model.DueDate{}, fmt.Errorf("invalid month: %q", flagDueMonth)
		}
		year, err := strconv.Atoi(flagDueYear)
		if err != nil {
			return model.DueDate{}, fmt.Errorf("invalid year: %q", flagDueYear)
		}
		return model.DueDate{Month: month, Year: year}, nil
	}

	s, cleanup, err := requireOnboarded()
	if err != nil {
		return model.DueDate{}, fmt.Errorf("no due date: pass --due-month/--due-year or onboard first")
	}
	defer cleanup()
	return s.Profile().DueDate, nil
}

// renderComparison ranks decoded plans and prints the results table.
func renderComparison(data token.CalculatorData) {
	due := model.DueDate{Month: data.DueMonth, Year: data.DueYear}

	plans := make([]model.InsurancePlan, 0, len(data.Plans))
	for _, p := range data.Plans {
		plans = append(plans, model.InsurancePlan{
			ID:               strconv.Itoa(p.ID),
			Nickname:         p.Name,
			MonthlyPremium:   p.MonthlyPremium,
			FamilyDeductible: p.FamilyDeductible,
			FamilyOopMax:     p.FamilyOopMax,
			EmployerHSA:      p.EmployerHSA,
		})
	}
	plans = compare.FilterUsable(plans)

	comparisons := compare.Plans(plans, due)
	recommended := compare.Recommended(comparisons)

	dueLabel, _ := datemath.FormatDueDate(due)
	fmt.Println()
	fmt.Println(cli.RenderTitle("PLAN COMPARISON  " + dueLabel))
	fmt.Println()

	if recommended == nil {
		fmt.Println("  No usable plan data. A plan needs a premium or an OOP max.")
		fmt.Println()
		return
	}

	rows := make([][]string, 0, len(comparisons))
	for _, c := range comparisons {
		name := c.Plan.Nickname
		if c.Plan.ID == recommended.Plan.ID {
			name += " " + cli.Good("(best)")
		}
		rows = append(rows, []string{
			name,
			cli.FormatCurrency(c.AnnualPremium),
			cli.FormatCurrency(c.ExpectedOOP),
			cli.FormatCurrency(c.EffectiveCost),
			cli.FormatCurrency(compare.Savings(c, *recommended)),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Plan", "Premiums", "Expected OOP", "Effective", "vs Best"},
		Rows:    rows,
	}))

	if costmodel.DoubleDeductibleRisk(due.Month) {
		fmt.Println(cli.Warn("  Double-deductible risk: this due date spans two plan years,"))
		fmt.Println(cli.Warn("  so expected OOP is doubled for every plan."))
	}

	if runnerUp := compare.RunnerUp(comparisons); runnerUp != nil {
		saved := runnerUp.EffectiveCost - recommended.EffectiveCost
		fmt.Printf("\n  %s saves you %s over %s.\n",
			recommended.Plan.Nickname,
			cli.Good(cli.FormatCurrency(saved)),
			runnerUp.Plan.Nickname,
		)
	} else {
		costs := comparisons[0]
		fmt.Printf("\n  Quick estimate: plan on %s for the birth year.\n",
			cli.FormatCurrency(costs.EffectiveCost))
	}
	fmt.Println()
}
