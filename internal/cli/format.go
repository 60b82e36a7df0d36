// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatCurrency formats a USD amount in whole dollars with comma grouping.
// e.g., 1234.56 -> "$1,235", -1000 -> "-$1,000"
func FormatCurrency(amount float64) string {
	if amount < 0 {
		return "-" + FormatCurrency(-amount)
	}
	return "$" + FormatNumber(int64(math.Round(amount)))
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatCountdown renders remaining time as "14w 2d", or "any day now" once
// the due date has passed.
func FormatCountdown(weeks, days int, isPast bool) string {
	if isPast {
		return "any day now"
	}
	if weeks == 0 {
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%dw %dd", weeks, days)
}

// FormatTrimester renders a trimester number with its ordinal.
func FormatTrimester(t int) string {
	switch t {
	case 1:
		return "1st trimester"
	case 2:
		return "2nd trimester"
	default:
		return "3rd trimester"
	}
}
