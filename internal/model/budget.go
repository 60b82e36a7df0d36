package model

// CategoryColor is the accent color token for a budget category.
type CategoryColor string

// Category colors.
const (
	ColorBlue   CategoryColor = "blue"
	ColorPurple CategoryColor = "purple"
	ColorTeal   CategoryColor = "teal"
	ColorOrange CategoryColor = "orange"
	ColorGreen  CategoryColor = "green"
	ColorGray   CategoryColor = "gray"
	ColorPink   CategoryColor = "pink"
)

// BudgetItem is one line item inside a category. Actual stays nil until the
// user records what they really paid. Estimated may be negative for
// offset-style items such as an employer HSA contribution.
type BudgetItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Estimated float64  `json:"estimated"`
	Actual    *float64 `json:"actual"`
	Purchased bool     `json:"purchased"`
	Note      string   `json:"note,omitempty"`
}

// BudgetCategory groups line items for the war chest view. The "medical"
// category is built from calculated insurance costs at onboarding; all
// others come from the static default template.
type BudgetCategory struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Color       CategoryColor `json:"color"`
	Items       []BudgetItem  `json:"items"`
}

// BudgetItemUpdate holds a partial item mutation; nil fields are left untouched.
type BudgetItemUpdate struct {
	Name      *string
	Estimated *float64
	Actual    *float64
	Purchased *bool
	Note      *string
}

// TotalBudget sums estimated costs across all categories, counting only
// non-negative estimates so offset items don't shrink the headline number.
func TotalBudget(categories []BudgetCategory) float64 {
	var sum float64
	for _, cat := range categories {
		for _, item := range cat.Items {
			if item.Estimated > 0 {
				sum += item.Estimated
			}
		}
	}
	return sum
}
