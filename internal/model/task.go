package model

// TaskCategory groups roadmap tasks by theme.
type TaskCategory string

// Task categories.
const (
	CategoryMedical     TaskCategory = "Medical"
	CategoryFinance     TaskCategory = "Finance"
	CategoryGear        TaskCategory = "Gear"
	CategoryHome        TaskCategory = "Home"
	CategoryChildcare   TaskCategory = "Childcare"
	CategoryAdmin       TaskCategory = "Admin"
	CategoryPreparation TaskCategory = "Preparation"
)

// TaskCategories lists every valid category in display order.
var TaskCategories = []TaskCategory{
	CategoryMedical,
	CategoryFinance,
	CategoryGear,
	CategoryHome,
	CategoryChildcare,
	CategoryAdmin,
	CategoryPreparation,
}

// ValidTaskCategory reports whether c is a known category.
func ValidTaskCategory(c TaskCategory) bool {
	for _, known := range TaskCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Task is one roadmap checklist item. User-created tasks carry a "custom-"
// id prefix and UserAdded=true; only those may be deleted.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    TaskCategory `json:"category"`
	Trimester   int          `json:"trimester"` // 1-3, consistent with WeekDue
	WeekDue     int          `json:"weekDue"`   // 1-40
	Completed   bool         `json:"completed"`
	UserAdded   bool         `json:"userAdded"`

	// High-stakes metadata, set only on tasks with a hard external deadline.
	Deadline     string `json:"deadline,omitempty"`    // e.g. "Birth + 30 days"
	Consequence  string `json:"consequence,omitempty"` // e.g. "$0 coverage if missed"
	IsHighStakes bool   `json:"isHighStakes,omitempty"`
}

// TaskUpdate holds a partial task mutation; nil fields are left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Category    *TaskCategory
	Trimester   *int
	WeekDue     *int
	Completed   *bool
}
