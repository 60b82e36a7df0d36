package components

import (
	"dadops/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
)

// Gauge renders a horizontal progress bar for a fraction in [0, 1].
func Gauge(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	t := theme.Active
	bar := progress.New(
		progress.WithWidth(width),
		progress.WithGradient(string(t.Accent), string(t.GreenBright)),
	)
	return bar.ViewAs(fraction)
}
