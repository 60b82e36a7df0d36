package model

// InsurancePlan is one plan under comparison. Plans are ephemeral: they live
// only inside a comparison session or a share token, never in the store.
type InsurancePlan struct {
	ID               string  `json:"id"`
	Nickname         string  `json:"nickname"`
	MonthlyPremium   float64 `json:"monthlyPremium"`
	FamilyDeductible float64 `json:"familyDeductible"`
	FamilyOopMax     float64 `json:"familyOopMax"`
	EmployerHSA      float64 `json:"employerHsa"`
}

// PlanComparison is the cost model applied to a single plan.
type PlanComparison struct {
	Plan          InsurancePlan
	AnnualPremium float64
	ExpectedOOP   float64
	TotalCost     float64
	EffectiveCost float64
}
