package costmodel

import (
	"testing"
	"time"

	"dadops/internal/model"
)

var scenarioInsurance = model.Insurance{
	PlanName:         "PPO Family",
	MonthlyPremium:   500,
	FamilyDeductible: 3000,
	FamilyOopMax:     8000,
	EmployerHSA:      1000,
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return parsed
}

func TestCalculate_FebruaryDueDate(t *testing.T) {
	due := model.DueDate{Month: 2, Year: 2027}
	now := mustTime(t, "2026-06-01")

	costs := Calculate(scenarioInsurance, due, now)

	if costs.AnnualPremium != 6000 {
		t.Errorf("AnnualPremium = %v, want 6000", costs.AnnualPremium)
	}
	if !costs.DoubleDeductibleRisk {
		t.Error("DoubleDeductibleRisk = false for a February due date")
	}
	if costs.ExpectedOOP != 16000 {
		t.Errorf("ExpectedOOP = %v, want 16000", costs.ExpectedOOP)
	}
	if costs.TotalCost != 22000 {
		t.Errorf("TotalCost = %v, want 22000", costs.TotalCost)
	}
	if costs.EffectiveCost != 21000 {
		t.Errorf("EffectiveCost = %v, want 21000", costs.EffectiveCost)
	}
}

func TestCalculate_AugustDueDate(t *testing.T) {
	due := model.DueDate{Month: 8, Year: 2026}
	now := mustTime(t, "2026-01-01")

	costs := Calculate(scenarioInsurance, due, now)

	if costs.DoubleDeductibleRisk {
		t.Error("DoubleDeductibleRisk = true for an August due date")
	}
	if costs.ExpectedOOP != 8000 {
		t.Errorf("ExpectedOOP = %v, want 8000", costs.ExpectedOOP)
	}
	if costs.TotalCost != 14000 {
		t.Errorf("TotalCost = %v, want 14000", costs.TotalCost)
	}
	if costs.EffectiveCost != 13000 {
		t.Errorf("EffectiveCost = %v, want 13000", costs.EffectiveCost)
	}
}

func TestDoubleDeductibleRisk_AllMonths(t *testing.T) {
	for month := 1; month <= 12; month++ {
		want := month <= 3
		if got := DoubleDeductibleRisk(month); got != want {
			t.Errorf("DoubleDeductibleRisk(%d) = %v, want %v", month, got, want)
		}
	}
}

func TestCalculate_EffectiveCostIdentity(t *testing.T) {
	plans := []model.Insurance{
		{MonthlyPremium: 0, FamilyOopMax: 0, EmployerHSA: 0},
		{MonthlyPremium: 250, FamilyOopMax: 5000, EmployerHSA: 750},
		{MonthlyPremium: 900, FamilyOopMax: 12000, EmployerHSA: 4000},
	}
	now := mustTime(t, "2026-03-01")

	for month := 1; month <= 12; month++ {
		due := model.DueDate{Month: month, Year: 2027}
		for _, ins := range plans {
			costs := Calculate(ins, due, now)
			want := costs.AnnualPremium + costs.ExpectedOOP - ins.EmployerHSA
			if costs.EffectiveCost != want {
				t.Fatalf("month %d: EffectiveCost = %v, want %v", month, costs.EffectiveCost, want)
			}
		}
	}
}

func TestCalculate_NegativeEffectiveCostNotClamped(t *testing.T) {
	ins := model.Insurance{MonthlyPremium: 10, FamilyOopMax: 100, EmployerHSA: 5000}
	due := model.DueDate{Month: 9, Year: 2027}

	costs := Calculate(ins, due, mustTime(t, "2026-09-01"))
	if costs.EffectiveCost != 120+100-5000 {
		t.Fatalf("EffectiveCost = %v, want %v", costs.EffectiveCost, 120+100-5000.0)
	}
}

func TestMonthsRemaining_CurrentMonthFloorsAtOne(t *testing.T) {
	due := model.DueDate{Month: 4, Year: 2026}

	tests := []struct {
		now  string
		want int
	}{
		{"2026-04-01", 1},  // same month
		{"2026-04-28", 1},  // same month, past the 15th
		{"2026-06-01", 1},  // already past, still 1
		{"2026-03-20", 1},  // one month out
		{"2026-01-02", 3},  // three months out
		{"2025-04-10", 12}, // a year out
	}
	for _, tt := range tests {
		if got := MonthsRemaining(due, mustTime(t, tt.now)); got != tt.want {
			t.Errorf("MonthsRemaining(now=%s) = %d, want %d", tt.now, got, tt.want)
		}
	}
}

func TestCalculate_SavingsTargetRoundsUp(t *testing.T) {
	// Effective cost 13000 over 7 months = 1857.14..., rounds up to 1858.
	due := model.DueDate{Month: 8, Year: 2026}
	costs := Calculate(scenarioInsurance, due, mustTime(t, "2026-01-10"))

	if costs.MonthsRemaining != 7 {
		t.Fatalf("MonthsRemaining = %d, want 7", costs.MonthsRemaining)
	}
	if costs.MonthlySavingsTarget != 1858 {
		t.Fatalf("MonthlySavingsTarget = %v, want 1858", costs.MonthlySavingsTarget)
	}
}

func TestWarChestProgress(t *testing.T) {
	tests := []struct {
		name      string
		cash      float64
		effective float64
		want      float64
	}{
		{"empty", 0, 10000, 0},
		{"halfway", 5000, 10000, 0.5},
		{"overfunded clamps", 15000, 10000, 1},
		{"negative effective cost counts as funded", 0, -500, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WarChestProgress(tt.cash, tt.effective); got != tt.want {
				t.Fatalf("WarChestProgress(%v, %v) = %v, want %v", tt.cash, tt.effective, got, tt.want)
			}
		})
	}
}
