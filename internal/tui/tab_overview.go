package tui

import (
	"fmt"
	"strings"

	"dadops/internal/cli"
	"dadops/internal/costmodel"
	"dadops/internal/datemath"
	"dadops/internal/tui/components"
	"dadops/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) viewOverview(width int) string {
	t := theme.Active
	p := a.store.Profile()

	countdown := datemath.CountdownAt(p.DueDate, a.now)
	week := datemath.CurrentWeekAt(p.DueDate, a.now)
	costs := costmodel.Calculate(p.Insurance, p.DueDate, a.now)

	widths := components.LayoutRow(width, 4)
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		components.MetricCard("Countdown",
			cli.FormatCountdown(countdown.Weeks, countdown.Days, countdown.IsPast),
			fmt.Sprintf("%d days to go", countdown.TotalDays), widths[0]),
		components.MetricCard("Pregnancy",
			fmt.Sprintf("Week %d", week),
			cli.FormatTrimester(datemath.TrimesterForWeek(week)), widths[1]),
		components.MetricCard("Monthly target",
			cli.FormatCurrency(costs.MonthlySavingsTarget),
			fmt.Sprintf("%d months left", costs.MonthsRemaining), widths[2]),
		components.MetricCard("Effective cost",
			cli.FormatCurrency(costs.EffectiveCost),
			p.Insurance.PlanName, widths[3]),
	)

	var b strings.Builder
	b.WriteString(cards)
	b.WriteString("\n\n")

	// War chest progress
	var cash float64
	if p.CashOnHand != nil {
		cash = *p.CashOnHand
	}
	frac := costmodel.WarChestProgress(cash, costs.EffectiveCost)
	label := lipgloss.NewStyle().Foreground(t.TextMuted).Render(
		fmt.Sprintf(" War chest  %s of %s",
			cli.FormatCurrency(cash), cli.FormatCurrency(costs.EffectiveCost)))
	b.WriteString(label + "\n ")
	gaugeWidth := width - 12
	if gaugeWidth < 20 {
		gaugeWidth = 20
	}
	b.WriteString(components.Gauge(frac, gaugeWidth))
	b.WriteString("\n")

	if costs.DoubleDeductibleRisk {
		warn := lipgloss.NewStyle().Foreground(t.Orange).Render(
			" Early-year due date: the deductible may reset mid-pregnancy, budget doubled.")
		b.WriteString("\n" + warn + "\n")
	}

	// High-stakes tasks still open
	var urgent []string
	for _, task := range a.sortedTasks() {
		if task.Completed || !task.IsHighStakes {
			continue
		}
		line := fmt.Sprintf("  %s (%s)", task.Title, task.Deadline)
		urgent = append(urgent, lipgloss.NewStyle().Foreground(t.Red).Render(line))
		if len(urgent) == 3 {
			break
		}
	}
	if len(urgent) > 0 {
		head := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(" Don't miss")
		b.WriteString("\n" + head + "\n" + strings.Join(urgent, "\n") + "\n")
	}

	return b.String()
}
