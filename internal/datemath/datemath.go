// Package datemath implements the pregnancy calendar: countdowns, current
// week, trimester boundaries, and due-date formatting. Pregnancy is modeled
// as a fixed 280-day (40-week) window ending at the due date.
package datemath

import (
	"fmt"
	"math"
	"time"

	"dadops/internal/model"
)

const (
	// PregnancyDays is the full pregnancy window in days.
	PregnancyDays = 280
	// PregnancyWeeks is the full pregnancy window in weeks.
	PregnancyWeeks = 40
	// DefaultDueDay stands in when the user only knows the due month.
	DefaultDueDay = 15
)

// MonthNames lists calendar month names, index 0 = January.
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthNumber returns the 1-based month for a name, or 0 if unknown.
func MonthNumber(name string) int {
	for i, m := range MonthNames {
		if m == name {
			return i + 1
		}
	}
	return 0
}

// MonthName returns the name for a 1-based month number.
func MonthName(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("invalid month number: %d", month)
	}
	return MonthNames[month-1], nil
}

// DueTime resolves a due date to a concrete local time, applying the
// day-of-month default exactly once. All core date math goes through here.
func DueTime(due model.DueDate) time.Time {
	day := DefaultDueDay
	if due.Day != nil {
		day = *due.Day
	}
	return time.Date(due.Year, time.Month(due.Month), day, 0, 0, 0, 0, time.Local)
}

// Countdown is the remaining time to a due date.
type Countdown struct {
	Weeks     int
	Days      int
	TotalDays int
	IsPast    bool
}

// CountdownAt computes the countdown from now to the due date. A due date in
// the past or present yields IsPast=true with zeroed fields.
func CountdownAt(due model.DueDate, now time.Time) Countdown {
	diff := DueTime(due).Sub(now)
	if diff <= 0 {
		return Countdown{IsPast: true}
	}

	totalDays := int(math.Ceil(diff.Hours() / 24))
	return Countdown{
		Weeks:     totalDays / 7,
		Days:      totalDays % 7,
		TotalDays: totalDays,
	}
}

// CurrentWeekAt returns the pregnancy week in [1,40], counting backwards
// from the due date. Returns 40 once the due date has passed.
func CurrentWeekAt(due model.DueDate, now time.Time) int {
	cd := CountdownAt(due, now)
	if cd.IsPast {
		return PregnancyWeeks
	}

	daysPregnant := PregnancyDays - cd.TotalDays
	week := daysPregnant/7 + 1
	if week < 1 {
		return 1
	}
	if week > PregnancyWeeks {
		return PregnancyWeeks
	}
	return week
}

// TrimesterDates holds the start of each trimester.
type TrimesterDates struct {
	FirstTrimesterStart  time.Time // conception, due - 280d
	SecondTrimesterStart time.Time // week 13, due - 196d
	ThirdTrimesterStart  time.Time // week 27, due - 98d
}

// TrimesterDatesFor computes trimester boundaries as fixed offsets from the
// due date.
func TrimesterDatesFor(due model.DueDate) TrimesterDates {
	d := DueTime(due)
	return TrimesterDates{
		FirstTrimesterStart:  d.AddDate(0, 0, -280),
		SecondTrimesterStart: d.AddDate(0, 0, -196),
		ThirdTrimesterStart:  d.AddDate(0, 0, -98),
	}
}

// TrimesterForWeek maps a pregnancy week to its trimester.
func TrimesterForWeek(week int) int {
	switch {
	case week <= 12:
		return 1
	case week <= 26:
		return 2
	default:
		return 3
	}
}

// FormatDueDate renders a due date as "February 3, 2026", or "February 2026"
// when the day was never set.
func FormatDueDate(due model.DueDate) (string, error) {
	name, err := MonthName(due.Month)
	if err != nil {
		return "", err
	}
	if due.Day != nil {
		return fmt.Sprintf("%s %d, %d", name, *due.Day, due.Year), nil
	}
	return fmt.Sprintf("%s %d", name, due.Year), nil
}
