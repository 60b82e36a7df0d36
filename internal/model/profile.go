// Package model defines domain types for the DadOps profile, roadmap, and budget.
package model

// DueDate identifies the expected birth date. Day is optional; when nil the
// 15th is used for all date math but omitted from display formatting.
type DueDate struct {
	Month int  `json:"month"` // 1-12
	Year  int  `json:"year"`
	Day   *int `json:"day,omitempty"` // 1-31
}

// Insurance holds the user's current health plan figures, in whole USD.
type Insurance struct {
	PlanName         string  `json:"planName"`
	MonthlyPremium   float64 `json:"monthlyPremium"`
	FamilyDeductible float64 `json:"familyDeductible"`
	FamilyOopMax     float64 `json:"familyOopMax"`
	EmployerHSA      float64 `json:"employerHsa"`
}

// UserProfile is the single per-device profile created by onboarding.
type UserProfile struct {
	DueDate    DueDate   `json:"dueDate"`
	Insurance  Insurance `json:"insurance"`
	CashOnHand *float64  `json:"cashOnHand,omitempty"`
	CreatedAt  string    `json:"createdAt"` // RFC 3339, set once, never updated
}

// CalculatedCosts holds every derived value of the insurance cost model.
type CalculatedCosts struct {
	AnnualPremium        float64
	ExpectedOOP          float64
	TotalCost            float64
	EffectiveCost        float64
	MonthlySavingsTarget float64
	MonthsRemaining      int
	DoubleDeductibleRisk bool
}
