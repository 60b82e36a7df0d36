// Package costmodel computes the birth-year insurance cost model: annual
// premium, expected out-of-pocket spend, effective cost after employer
// contributions, and the monthly savings target to be ready by the due date.
package costmodel

import (
	"math"
	"time"

	"dadops/internal/datemath"
	"dadops/internal/model"
)

// DoubleDeductibleRisk reports whether a due month triggers the
// two-plan-year scenario: a Jan-Mar birth means prenatal care lands in one
// plan year and delivery in the next, risking the family OOP max in both.
func DoubleDeductibleRisk(dueMonth int) bool {
	return dueMonth <= 3
}

// Calculate derives every cost figure for one insurance plan against a due
// date. The reference instant is passed in so callers and tests control the
// clock; months remaining never drops below 1, so the savings target never
// divides by zero. EffectiveCost is intentionally unclamped and goes
// negative when the employer HSA exceeds the total cost.
func Calculate(ins model.Insurance, due model.DueDate, now time.Time) model.CalculatedCosts {
	annualPremium := ins.MonthlyPremium * 12

	risk := DoubleDeductibleRisk(due.Month)
	expectedOOP := ins.FamilyOopMax
	if risk {
		// Conservative worst case: OOP max hit in both plan years. Partial
		// deductible resets are not modeled.
		expectedOOP = ins.FamilyOopMax * 2
	}

	totalCost := annualPremium + expectedOOP
	effectiveCost := totalCost - ins.EmployerHSA

	months := MonthsRemaining(due, now)
	target := math.Ceil(effectiveCost / float64(months))

	return model.CalculatedCosts{
		AnnualPremium:        annualPremium,
		ExpectedOOP:          expectedOOP,
		TotalCost:            totalCost,
		EffectiveCost:        effectiveCost,
		MonthlySavingsTarget: target,
		MonthsRemaining:      months,
		DoubleDeductibleRisk: risk,
	}
}

// MonthsRemaining counts whole calendar months from now to the due month,
// using the 15th of the due month as the reference instant. Minimum 1.
func MonthsRemaining(due model.DueDate, now time.Time) int {
	ref := model.DueDate{Month: due.Month, Year: due.Year}
	dueTime := datemath.DueTime(ref)

	months := (dueTime.Year()-now.Year())*12 + int(dueTime.Month()) - int(now.Month())
	if months < 1 {
		return 1
	}
	return months
}

// WarChestProgress returns cash on hand as a fraction of effective cost,
// clamped to [0,1]. Zero or negative effective cost counts as fully funded.
func WarChestProgress(cashOnHand, effectiveCost float64) float64 {
	if effectiveCost <= 0 {
		return 1
	}
	p := cashOnHand / effectiveCost
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
