package datemath

import (
	"testing"
	"time"

	"dadops/internal/model"
)

func intPtr(n int) *int { return &n }

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return parsed
}

func TestCountdownAt_HundredDaysOut(t *testing.T) {
	due := model.DueDate{Month: 6, Year: 2026, Day: intPtr(10)}
	now := mustTime(t, "2026-03-02") // 100 days before June 10

	cd := CountdownAt(due, now)
	if cd.IsPast {
		t.Fatal("IsPast = true for a future due date")
	}
	if cd.TotalDays != 100 {
		t.Fatalf("TotalDays = %d, want 100", cd.TotalDays)
	}
	if cd.Weeks != 14 || cd.Days != 2 {
		t.Fatalf("Weeks/Days = %d/%d, want 14/2", cd.Weeks, cd.Days)
	}
}

func TestCountdownAt_PastDueDate(t *testing.T) {
	due := model.DueDate{Month: 1, Year: 2026, Day: intPtr(1)}
	now := mustTime(t, "2026-02-01")

	cd := CountdownAt(due, now)
	if !cd.IsPast {
		t.Fatal("IsPast = false for a past due date")
	}
	if cd.Weeks != 0 || cd.Days != 0 || cd.TotalDays != 0 {
		t.Fatalf("past countdown not zeroed: %+v", cd)
	}
}

func TestCountdownAt_DayDefaultsToFifteenth(t *testing.T) {
	due := model.DueDate{Month: 6, Year: 2026} // no day
	now := mustTime(t, "2026-06-14")

	cd := CountdownAt(due, now)
	if cd.IsPast {
		t.Fatal("IsPast = true the day before the default 15th")
	}
	if cd.TotalDays != 1 {
		t.Fatalf("TotalDays = %d, want 1", cd.TotalDays)
	}
}

func TestCurrentWeekAt_ClampsAndProgresses(t *testing.T) {
	due := model.DueDate{Month: 10, Year: 2026, Day: intPtr(1)}

	tests := []struct {
		name string
		now  string
		want int
	}{
		{"before conception window", "2025-06-01", 1},
		{"one week before due", "2026-09-24", 40},
		{"after due date", "2026-11-01", 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentWeekAt(due, mustTime(t, tt.now))
			if got != tt.want {
				t.Fatalf("CurrentWeekAt(%s) = %d, want %d", tt.now, got, tt.want)
			}
		})
	}
}

func TestCurrentWeekAt_MonotonicTowardDueDate(t *testing.T) {
	due := model.DueDate{Month: 12, Year: 2026, Day: intPtr(20)}

	prev := 0
	for d := 0; d < 320; d += 5 {
		now := mustTime(t, "2026-02-01").AddDate(0, 0, d)
		week := CurrentWeekAt(due, now)
		if week < prev {
			t.Fatalf("week decreased from %d to %d at day offset %d", prev, week, d)
		}
		if week < 1 || week > 40 {
			t.Fatalf("week %d outside [1,40] at day offset %d", week, d)
		}
		prev = week
	}
}

func TestTrimesterDatesFor_FixedOffsets(t *testing.T) {
	due := model.DueDate{Month: 9, Year: 2026, Day: intPtr(20)}

	td := TrimesterDatesFor(due)
	if want := mustTime(t, "2025-12-14"); !td.FirstTrimesterStart.Equal(want) {
		t.Fatalf("FirstTrimesterStart = %v, want %v", td.FirstTrimesterStart, want)
	}
	if want := mustTime(t, "2026-03-08"); !td.SecondTrimesterStart.Equal(want) {
		t.Fatalf("SecondTrimesterStart = %v, want %v", td.SecondTrimesterStart, want)
	}
	if want := mustTime(t, "2026-06-14"); !td.ThirdTrimesterStart.Equal(want) {
		t.Fatalf("ThirdTrimesterStart = %v, want %v", td.ThirdTrimesterStart, want)
	}
}

func TestTrimesterForWeek_Boundaries(t *testing.T) {
	tests := []struct {
		week, want int
	}{
		{1, 1}, {12, 1}, {13, 2}, {26, 2}, {27, 3}, {40, 3},
	}
	for _, tt := range tests {
		if got := TrimesterForWeek(tt.week); got != tt.want {
			t.Errorf("TrimesterForWeek(%d) = %d, want %d", tt.week, got, tt.want)
		}
	}
}

func TestFormatDueDate(t *testing.T) {
	withDay := model.DueDate{Month: 2, Year: 2026, Day: intPtr(3)}
	got, err := FormatDueDate(withDay)
	if err != nil {
		t.Fatalf("FormatDueDate: %v", err)
	}
	if got != "February 3, 2026" {
		t.Fatalf("FormatDueDate = %q, want %q", got, "February 3, 2026")
	}

	noDay := model.DueDate{Month: 2, Year: 2026}
	got, err = FormatDueDate(noDay)
	if err != nil {
		t.Fatalf("FormatDueDate: %v", err)
	}
	if got != "February 2026" {
		t.Fatalf("FormatDueDate = %q, want %q", got, "February 2026")
	}

	if _, err := FormatDueDate(model.DueDate{Month: 13, Year: 2026}); err == nil {
		t.Fatal("FormatDueDate accepted month 13")
	}
}

func TestMonthNumber_RoundTrip(t *testing.T) {
	for i, name := range MonthNames {
		if got := MonthNumber(name); got != i+1 {
			t.Errorf("MonthNumber(%q) = %d, want %d", name, got, i+1)
		}
	}
	if got := MonthNumber("Smarch"); got != 0 {
		t.Errorf("MonthNumber(unknown) = %d, want 0", got)
	}
}
