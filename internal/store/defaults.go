package store

import "dadops/internal/model"

// CostSeed carries the calculated insurance figures used to build the
// medical budget category at onboarding.
type CostSeed struct {
	AnnualPremium float64
	ExpectedOOP   float64
	EmployerHSA   float64
}

// DefaultTasks returns a fresh copy of the built-in roadmap template.
// Trimesters are consistent with week-due throughout.
func DefaultTasks() []model.Task {
	tasks := []model.Task{
		{ID: "med-confirm-coverage", Title: "Confirm maternity coverage", Description: "Call your insurer and confirm prenatal care, delivery, and newborn coverage under your plan.", Category: model.CategoryMedical, Trimester: 1, WeekDue: 8},
		{ID: "fin-review-deductible", Title: "Review deductible and OOP max", Description: "Know your family deductible and out-of-pocket maximum before the bills start.", Category: model.CategoryFinance, Trimester: 1, WeekDue: 9},
		{ID: "fin-start-war-chest", Title: "Open a birth savings fund", Description: "Start setting aside the monthly savings target in a separate account.", Category: model.CategoryFinance, Trimester: 1, WeekDue: 10},
		{ID: "admin-hr-leave-policy", Title: "Read your parental leave policy", Description: "Find out how much paid leave you get and what paperwork HR needs.", Category: model.CategoryAdmin, Trimester: 1, WeekDue: 12},
		{ID: "fin-hsa-contribution", Title: "Max out HSA contributions", Description: "If you have an HSA-eligible plan, raise contributions while expenses are low.", Category: model.CategoryFinance, Trimester: 2, WeekDue: 14},
		{ID: "cc-daycare-tours", Title: "Tour daycare options", Description: "Waitlists run 6-12 months in many cities. Tour early, deposit early.", Category: model.CategoryChildcare, Trimester: 2, WeekDue: 18},
		{ID: "gear-research-car-seat", Title: "Research car seats", Description: "Pick a seat that fits your car. Many hospitals check for one before discharge.", Category: model.CategoryGear, Trimester: 2, WeekDue: 22},
		{ID: "home-nursery-plan", Title: "Plan the nursery", Description: "Decide the room, the furniture, and what can be bought used.", Category: model.CategoryHome, Trimester: 2, WeekDue: 24},
		{ID: "admin-leave-paperwork", Title: "File parental leave paperwork", Description: "Submit FMLA or company leave forms before the third trimester rush.", Category: model.CategoryAdmin, Trimester: 2, WeekDue: 26},
		{ID: "gear-install-car-seat", Title: "Install the car seat", Description: "Install and get it inspected at a fire station or certified technician.", Category: model.CategoryGear, Trimester: 3, WeekDue: 34},
		{ID: "prep-hospital-bag", Title: "Pack the hospital bag", Description: "Chargers, snacks, insurance card, a change of clothes. Keep it by the door.", Category: model.CategoryPreparation, Trimester: 3, WeekDue: 35},
		{ID: "prep-hospital-route", Title: "Do a hospital dry run", Description: "Drive the route, find parking and the right entrance, day and night.", Category: model.CategoryPreparation, Trimester: 3, WeekDue: 36},
		{ID: "fin-preregister-hospital", Title: "Pre-register at the hospital", Description: "Pre-registration speeds up admission and gets billing details sorted early.", Category: model.CategoryFinance, Trimester: 3, WeekDue: 36},
		{
			ID: "med-add-baby-insurance", Title: "Add baby to your insurance",
			Description: "Newborns must be added to your plan within the enrollment window after birth.",
			Category:    model.CategoryMedical, Trimester: 3, WeekDue: 40,
			Deadline: "Birth + 30 days", Consequence: "$0 coverage if missed", IsHighStakes: true,
		},
		{
			ID: "admin-birth-certificate", Title: "File the birth certificate",
			Description: "Usually handled at the hospital, but confirm it was submitted.",
			Category:    model.CategoryAdmin, Trimester: 3, WeekDue: 40,
			Deadline: "Birth + 10 days", IsHighStakes: true,
		},
	}

	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	return out
}

// DefaultBudgetCategories returns a fresh copy of the static budget
// template. The medical category is intentionally absent here; it is built
// from calculated costs by BuildMedicalCategory.
func DefaultBudgetCategories() []model.BudgetCategory {
	cats := []model.BudgetCategory{
		{
			ID: "gear", Name: "Gear", Description: "Strollers, car seats, carriers",
			Icon: "shopping_bag", Color: model.ColorPurple,
			Items: []model.BudgetItem{
				{ID: "gear-1", Name: "Car Seat", Estimated: 350},
				{ID: "gear-2", Name: "Stroller", Estimated: 500},
				{ID: "gear-3", Name: "Baby Monitor", Estimated: 150},
				{ID: "gear-4", Name: "Diaper Bag", Estimated: 80},
				{ID: "gear-5", Name: "Bottles & Feeding", Estimated: 100},
				{ID: "gear-6", Name: "Breast Pump", Estimated: 0, Note: "Often covered by insurance"},
			},
		},
		{
			ID: "nursery", Name: "Nursery", Description: "Furniture, decor, setup",
			Icon: "crib", Color: model.ColorTeal,
			Items: []model.BudgetItem{
				{ID: "nur-1", Name: "Crib", Estimated: 350},
				{ID: "nur-2", Name: "Crib Mattress", Estimated: 150},
				{ID: "nur-3", Name: "Dresser/Changing Table", Estimated: 400},
				{ID: "nur-4", Name: "Glider/Rocker", Estimated: 400},
				{ID: "nur-5", Name: "Bedding Set", Estimated: 100},
				{ID: "nur-6", Name: "Blackout Curtains", Estimated: 80},
				{ID: "nur-7", Name: "Sound Machine", Estimated: 40},
			},
		},
		{
			ID: "childcare", Name: "Childcare", Description: "Daycare deposits, backup care",
			Icon: "child_care", Color: model.ColorOrange,
			Items: []model.BudgetItem{
				{ID: "cc-1", Name: "Daycare Deposit", Estimated: 500},
				{ID: "cc-2", Name: "First Month Daycare", Estimated: 1500},
				{ID: "cc-3", Name: "Backup Care Fund", Estimated: 300},
			},
		},
	}

	out := make([]model.BudgetCategory, len(cats))
	for i, cat := range cats {
		items := make([]model.BudgetItem, len(cat.Items))
		copy(items, cat.Items)
		cat.Items = items
		out[i] = cat
	}
	return out
}

// BuildMedicalCategory turns calculated insurance costs into the medical
// budget category: premiums, expected OOP, and the HSA offset as a negative
// line item.
func BuildMedicalCategory(seed CostSeed) model.BudgetCategory {
	return model.BudgetCategory{
		ID:          "medical",
		Name:        "Medical",
		Description: "Insurance, hospital bills, OOP costs",
		Icon:        "medical_services",
		Color:       model.ColorBlue,
		Items: []model.BudgetItem{
			{ID: "med-1", Name: "Annual Premiums", Estimated: seed.AnnualPremium},
			{ID: "med-2", Name: "Out-of-Pocket Maximum", Estimated: seed.ExpectedOOP},
			{ID: "med-3", Name: "HSA/HRA Offset", Estimated: -seed.EmployerHSA, Note: "Reduces your costs"},
		},
	}
}
