package tui

import (
	"fmt"
	"strings"

	"dadops/internal/cli"
	"dadops/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) viewRoadmap(width int) string {
	t := theme.Active
	tasks := a.sortedTasks()

	if len(tasks) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Render(" No tasks yet.")
	}

	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	doneStyle := lipgloss.NewStyle().Foreground(t.TextDim).Strikethrough(true)
	cursorStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	stakesStyle := lipgloss.NewStyle().Foreground(t.Red)

	var b strings.Builder
	lastTrimester := 0
	for i, task := range tasks {
		if task.Trimester != lastTrimester {
			lastTrimester = task.Trimester
			done, total := 0, 0
			for _, other := range tasks {
				if other.Trimester != task.Trimester {
					continue
				}
				total++
				if other.Completed {
					done++
				}
			}
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(headStyle.Render(fmt.Sprintf(" %s", cli.FormatTrimester(task.Trimester))))
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d/%d done", done, total)))
			b.WriteString("\n")
		}

		box := "[ ]"
		if task.Completed {
			box = "[x]"
		}
		line := fmt.Sprintf(" %s wk %-2d %s", box, task.WeekDue, task.Title)
		switch {
		case i == a.roadmapCursor:
			line = cursorStyle.Render(line)
		case task.Completed:
			line = doneStyle.Render(line)
		case task.IsHighStakes:
			line = stakesStyle.Render(line)
		}
		b.WriteString(line)
		if task.IsHighStakes && !task.Completed && i != a.roadmapCursor {
			b.WriteString(stakesStyle.Render("  !"))
		}
		b.WriteString("\n")
	}

	return b.String()
}
