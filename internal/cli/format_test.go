package cli

import "testing"

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0"},
		{999, "$999"},
		{1234, "$1,234"},
		{1234.56, "$1,235"},
		{21000, "$21,000"},
		{-1000, "-$1,000"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.amount); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatCountdown(t *testing.T) {
	if got := FormatCountdown(14, 2, false); got != "14w 2d" {
		t.Errorf("FormatCountdown = %q, want %q", got, "14w 2d")
	}
	if got := FormatCountdown(0, 5, false); got != "5d" {
		t.Errorf("FormatCountdown = %q, want %q", got, "5d")
	}
	if got := FormatCountdown(0, 0, true); got != "any day now" {
		t.Errorf("FormatCountdown = %q, want %q", got, "any day now")
	}
}
