package tui

import (
	"fmt"
	"strings"

	"dadops/internal/cli"
	"dadops/internal/costmodel"
	"dadops/internal/model"
	"dadops/internal/tui/components"
	"dadops/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) viewWarChest(width int) string {
	t := theme.Active
	p := a.store.Profile()
	budget := a.store.Budget()

	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	doneStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	cursorStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)

	var b strings.Builder

	var cash float64
	if p.CashOnHand != nil {
		cash = *p.CashOnHand
	}
	costs := costmodel.Calculate(p.Insurance, p.DueDate, a.now)
	b.WriteString(mutedStyle.Render(fmt.Sprintf(" Saved %s of %s",
		cli.FormatCurrency(cash), cli.FormatCurrency(costs.EffectiveCost))))
	b.WriteString("\n ")
	gaugeWidth := width - 12
	if gaugeWidth < 20 {
		gaugeWidth = 20
	}
	b.WriteString(components.Gauge(costmodel.WarChestProgress(cash, costs.EffectiveCost), gaugeWidth))
	b.WriteString("\n")

	row := 0
	for _, cat := range budget {
		var catTotal float64
		for _, item := range cat.Items {
			if item.Estimated > 0 {
				catTotal += item.Estimated
			}
		}
		b.WriteString("\n")
		b.WriteString(headStyle.Render(" " + cat.Name))
		b.WriteString(mutedStyle.Render("  " + cli.FormatCurrency(catTotal)))
		b.WriteString("\n")

		for _, item := range cat.Items {
			box := "[ ]"
			if item.Purchased {
				box = "[x]"
			}
			amount := cli.FormatCurrency(item.Estimated)
			if item.Actual != nil {
				amount = cli.FormatCurrency(*item.Actual) + " (est " + cli.FormatCurrency(item.Estimated) + ")"
			}
			line := fmt.Sprintf(" %s %-30s %s", box, item.Name, amount)
			switch {
			case row == a.chestCursor:
				line = cursorStyle.Render(line)
			case item.Purchased:
				line = doneStyle.Render(line)
			}
			b.WriteString(line + "\n")
			row++
		}
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf(" Total estimated: %s (offsets excluded)",
		cli.FormatCurrency(model.TotalBudget(budget)))))
	b.WriteString("\n")

	return b.String()
}
