package cmd

import (
	"fmt"
	"time"

	"dadops/internal/cli"
	"dadops/internal/costmodel"
	"dadops/internal/model"
	"dadops/internal/validate"

	"github.com/spf13/cobra"
)

var (
	flagItemEstimate string
	flagItemNote     string
)

var warchestCmd = &cobra.Command{
	Use:   "warchest",
	Short: "The birth-year budget, category by category",
	RunE:  runWarchestList,
}

var warchestListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all categories and line items",
	RunE:  runWarchestList,
}

var warchestAddCmd = &cobra.Command{
	Use:   "add <category-id> <name>",
	Short: "Add a line item to a category",
	Args:  cobra.ExactArgs(2),
	RunE:  runWarchestAdd,
}

var warchestBoughtCmd = &cobra.Command{
	Use:   "bought <category-id> <item-id>",
	Short: "Toggle an item as purchased",
	Args:  cobra.ExactArgs(2),
	RunE:  runWarchestBought,
}

var warchestSpentCmd = &cobra.Command{
	Use:   "spent <category-id> <item-id> <amount>",
	Short: "Record what an item actually cost",
	Args:  cobra.ExactArgs(3),
	RunE:  runWarchestSpent,
}

var warchestRmCmd = &cobra.Command{
	Use:   "rm <category-id> <item-id>",
	Short: "Delete a line item",
	Args:  cobra.ExactArgs(2),
	RunE:  runWarchestRm,
}

var warchestCashCmd = &cobra.Command{
	Use:   "cash <amount>",
	Short: "Update the cash you have saved so far",
	Args:  cobra.ExactArgs(1),
	RunE:  runWarchestCash,
}

func init() {
	warchestAddCmd.Flags().StringVarP(&flagItemEstimate, "estimate", "e", "0", "Estimated cost in whole dollars")
	warchestAddCmd.Flags().StringVar(&flagItemNote, "note", "", "Optional note")

	warchestCmd.AddCommand(warchestListCmd, warchestAddCmd, warchestBoughtCmd, warchestSpentCmd, warchestRmCmd, warchestCashCmd)
	rootCmd.AddCommand(warchestCmd)
}

func runWarchestList(_ *cobra.Command, _ []string) error {
	s, cleanup, err := requireOnboarded()
	if err != nil {
		return err
	}
	defer cleanup()

	budget := s.Budget()
	if len(budget) == 0 {
		fmt.Println("\n  No budget yet. Run `dadops onboard` to build one.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("WAR CHEST"))

	for _, cat := range budget {
		var estimated, actual float64
		bought := 0
		for _, item := range cat.Items {
			estimated += item.Estimated
			if item.Actual != nil {
				actual += *item.Actual
			}
			if item.Purchased {
				bought++
			}
		}

		fmt.Printf("\n  %s (%s)  %s\n",
			cat.Name, cat.ID,
			cli.Muted(fmt.Sprintf("%s estimated · %d/%d bought", cli.FormatCurrency(estimated), bought, len(cat.Items))),
		)

		if len(cat.Items) == 0 {
			fmt.Println(cli.Muted("    (no items)"))
			continue
		}

		rows := make([][]string, 0, len(cat.Items))
		for _, item := range cat.Items {
			check := " "
			if item.Purchased {
				check = "x"
			}
			actualStr := "-"
			if item.Actual != nil {
				actualStr = cli.FormatCurrency(*item.Actual)
			}
			name := item.Name
			if item.Note != "" {
				name += " " + cli.Muted("("+item.Note+")")
			}
			rows = append(rows, []string{
				fmt.Sprintf("[%s] %s", check, name),
				cli.FormatCurrency(item.Estimated),
				actualStr,
				item.ID,
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Item", "Est.", "Actual", "ID"},
			Rows:    rows,
		}))
	}

	fmt.Printf("\n  Total estimated: %s %s\n",
		cli.FormatCurrency(model.TotalBudget(budget)),
		cli.Muted("(offsets excluded)"),
	)
	fmt.Println()
	return nil
}

func runWarchestAdd(_ *cobra.Command, args []string) error {
	s, cleanup, err := requireOnboarded()
	if err != nil {
		return err
	}
	defer cleanup()

	categoryID, name := args[0], args[1]
	if !categoryExists(s.Budget(), categoryID) {
		return fmt.Errorf("no category with id %q", categoryID)
	}

	estimate, err := validate.ParseAmount(flagItemEstimate)
	if err != nil {
		return fmt.Errorf("estimate: %w", err)
	}

	s.AddBudgetItem(categoryID, model.BudgetItem{
		Name:      name,
		Estimated: estimate,
		Note:      flagItemNote,
	})
	fmt.Printf("\n  Added %q to %s at %s\n", name, categoryID, cli.FormatCurrency(estimate))
	return nil
}

func runWarchestBought(_ *cobra.Command, args []string) error {
	s, cleanup, err := requireOnboarded()
	if err != nil {
		return err
	}
	defer cleanup()

	categoryID, itemID := args[0], args[1]
	item, ok := findItem(s.Budget(), categoryID, itemID)
	if !ok {
		return fmt.Errorf("no item %q in category %q", itemID, categoryID)
	}

	s.ToggleBudgetItem(categoryID, itemID)
	if item.Purchased {
		fmt.Printf("\n  Unmarked %q\n", item.Name)
	} else {
		fmt.Printf("\n  Bought: %q\n", item.Name)
	}
	return nil
}

func runWarchestSpent(_ *cobra.Command, args []string) error {
	s, cleanup, err := requireOnboarded()
	if err != nil {
		return err
	}
	defer cleanup()

	categoryID, itemID := args[0], args[1]
	item, ok := findItem(s.Budget(), categoryID, itemID)
	if !ok {
		return fmt.Errorf("no item %q in category %q", itemID, categoryID)
	}

	amount, err := validate.ParseAmount(args[2])
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}

	purchased := true
	s.UpdateBudgetItem(categoryID, itemID, model.BudgetItemUpdate{
		Actual:    &amount,
		Purchased: &purchased,
	})

	delta := amount - item.Estimated
	switch {
	case delta > 0:
		fmt.Printf("\n  Recorded %s for %q — %s over estimate\n",
			cli.FormatCurrency(amount), item.Name, cli.FormatCurrency(delta))
	case delta < 0:
		fmt.Printf("\n  Recorded %s for %q — %s under estimate\n",
			cli.FormatCurrency(amount), item.Name, cli.FormatCurrency(-delta))
	default:
		fmt.Printf("\n  Recorded %s for %q — right on estimate\n",
			cli.FormatCurrency(amount), item.Name)
	}
	return nil
}

func runWarchestRm(_ *cobra.Command, args []string) error {
	s, cleanup, err := requireOnboarded()
	if err != nil {
		return err
	}
	defer cleanup()

	categoryID, itemID := args[0], args[1]
	item, ok := findItem(s.Budget(), categoryID, itemID)
	if !ok {
		return fmt.Errorf("no item %q in category %q", itemID, categoryID)
	}

	s.DeleteBudgetItem(categoryID, itemID)
	fmt.Printf("\n  Deleted %q from %s\n", item.Name, categoryID)
	return nil
}

func runWarchestCash(_ *cobra.Command, args []string) error {
	s, cleanup, err := requireOnboarded()
	if err != nil {
		return err
	}
	defer cleanup()

	amount, err := validate.ParseAmount(args[0])
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}

	s.UpdateCashOnHand(amount)

	costs := costmodel.Calculate(s.Profile().Insurance, s.Profile().DueDate, time.Now())
	progress := costmodel.WarChestProgress(amount, costs.EffectiveCost)
	fmt.Printf("\n  War chest  %s  %s of %s\n",
		cli.RenderGauge(progress, 30),
		cli.FormatCurrency(amount),
		cli.FormatCurrency(costs.EffectiveCost),
	)
	return nil
}

func categoryExists(budget []model.BudgetCategory, id string) bool {
	for _, cat := range budget {
		if cat.ID == id {
			return true
		}
	}
	return false
}

func findItem(budget []model.BudgetCategory, categoryID, itemID string) (model.BudgetItem, bool) {
	for _, cat := range budget {
		if cat.ID != categoryID {
			continue
		}
		for _, item := range cat.Items {
			if item.ID == itemID {
				return item, true
			}
		}
	}
	return model.BudgetItem{}, false
}
