// Package compare ranks insurance plans by effective birth-year cost.
// All plans in one comparison share a single due date, so the double
// deductible risk flag is computed once and applied uniformly.
package compare

import (
	"dadops/internal/costmodel"
	"dadops/internal/model"
)

// Plans applies the cost model to each plan independently, preserving input
// order. One record per plan.
func Plans(plans []model.InsurancePlan, due model.DueDate) []model.PlanComparison {
	risk := costmodel.DoubleDeductibleRisk(due.Month)

	comparisons := make([]model.PlanComparison, 0, len(plans))
	for _, plan := range plans {
		annualPremium := plan.MonthlyPremium * 12
		expectedOOP := plan.FamilyOopMax
		if risk {
			expectedOOP = plan.FamilyOopMax * 2
		}
		totalCost := annualPremium + expectedOOP

		comparisons = append(comparisons, model.PlanComparison{
			Plan:          plan,
			AnnualPremium: annualPremium,
			ExpectedOOP:   expectedOOP,
			TotalCost:     totalCost,
			EffectiveCost: totalCost - plan.EmployerHSA,
		})
	}
	return comparisons
}

// Recommended returns the comparison with the lowest effective cost, first
// occurrence winning ties. Nil for an empty input; callers must handle it.
func Recommended(comparisons []model.PlanComparison) *model.PlanComparison {
	if len(comparisons) == 0 {
		return nil
	}

	best := &comparisons[0]
	for i := 1; i < len(comparisons); i++ {
		if comparisons[i].EffectiveCost < best.EffectiveCost {
			best = &comparisons[i]
		}
	}
	return best
}

// RunnerUp returns the second-cheapest comparison, or nil when fewer than
// two plans were compared. Ties follow the same first-wins rule as
// Recommended.
func RunnerUp(comparisons []model.PlanComparison) *model.PlanComparison {
	if len(comparisons) < 2 {
		return nil
	}

	best := Recommended(comparisons)
	var second *model.PlanComparison
	for i := range comparisons {
		c := &comparisons[i]
		if c == best {
			continue
		}
		if second == nil || c.EffectiveCost < second.EffectiveCost {
			second = c
		}
	}
	return second
}

// Savings is the extra cost of a plan over the recommended one. Zero for the
// recommended plan itself, never negative since recommended is the minimum.
func Savings(c, recommended model.PlanComparison) float64 {
	return c.EffectiveCost - recommended.EffectiveCost
}

// FilterUsable drops plans with no usable data: both the monthly premium and
// the family OOP max at zero. Comparing those would only produce meaningless
// zero-cost rankings.
func FilterUsable(plans []model.InsurancePlan) []model.InsurancePlan {
	usable := make([]model.InsurancePlan, 0, len(plans))
	for _, plan := range plans {
		if plan.MonthlyPremium == 0 && plan.FamilyOopMax == 0 {
			continue
		}
		usable = append(usable, plan)
	}
	return usable
}
