package store

import (
	"strings"
	"testing"

	"dadops/internal/model"
)

func testProfile() model.UserProfile {
	day := 3
	return model.UserProfile{
		DueDate: model.DueDate{Month: 2, Year: 2027, Day: &day},
		Insurance: model.Insurance{
			PlanName:         "PPO Family",
			MonthlyPremium:   500,
			FamilyDeductible: 3000,
			FamilyOopMax:     8000,
			EmployerHSA:      1000,
		},
	}
}

func testSeed() CostSeed {
	return CostSeed{AnnualPremium: 6000, ExpectedOOP: 16000, EmployerHSA: 1000}
}

func openTestStore(t *testing.T) (*Store, *MemoryBackend) {
	t.Helper()
	backend := NewMemoryBackend()
	s := Open(backend)
	s.SetLogf(t.Logf)
	return s, backend
}

func TestOpen_EmptyBackend(t *testing.T) {
	s, _ := openTestStore(t)

	if !s.Loaded() {
		t.Fatal("Loaded() = false after Open")
	}
	if s.IsOnboarded() {
		t.Fatal("IsOnboarded() = true with no profile")
	}
	if s.Tasks() != nil || s.Budget() != nil {
		t.Fatal("collections not nil on an empty backend")
	}
}

func TestMutations_NoOpBeforeInitialize(t *testing.T) {
	s, _ := openTestStore(t)

	s.ToggleTask("med-confirm-coverage")
	s.AddTask(NewTaskInput{Title: "x", Category: model.CategoryAdmin, WeekDue: 10})
	s.DeleteTask("anything")
	s.ToggleBudgetItem("gear", "gear-1")
	s.AddBudgetItem("gear", model.BudgetItem{Name: "x"})
	s.UpdateCashOnHand(500)

	if s.Tasks() != nil {
		t.Error("task mutations initialized the task list")
	}
	if s.Budget() != nil {
		t.Error("budget mutations initialized the budget")
	}
	if s.Profile() != nil {
		t.Error("UpdateCashOnHand created a profile")
	}
}

func TestInitializeUser_SeedsDefaultsOnce(t *testing.T) {
	s, _ := openTestStore(t)
	s.InitializeUser(testProfile(), testSeed())

	if !s.IsOnboarded() {
		t.Fatal("IsOnboarded() = false after InitializeUser")
	}
	if s.Profile().CreatedAt == "" {
		t.Fatal("CreatedAt not set at creation")
	}
	if len(s.Tasks()) == 0 {
		t.Fatal("default tasks not seeded")
	}

	budget := s.Budget()
	if len(budget) == 0 || budget[0].ID != "medical" {
		t.Fatalf("medical category not first: %+v", budget)
	}
	items := budget[0].Items
	if len(items) != 3 {
		t.Fatalf("medical items = %d, want 3", len(items))
	}
	if items[0].Estimated != 6000 || items[1].Estimated != 16000 || items[2].Estimated != -1000 {
		t.Fatalf("medical estimates wrong: %+v", items)
	}

	// Second initialization must keep existing tasks/budget.
	s.ToggleTask(s.Tasks()[0].ID)
	s.AddBudgetItem("gear", model.BudgetItem{Name: "Bassinet", Estimated: 200})
	gearCount := len(findCategory(t, s, "gear").Items)

	created := s.Profile().CreatedAt
	s.InitializeUser(testProfile(), testSeed())

	if !s.Tasks()[0].Completed {
		t.Error("re-initialization clobbered task state")
	}
	if got := len(findCategory(t, s, "gear").Items); got != gearCount {
		t.Errorf("re-initialization clobbered budget: %d items, want %d", got, gearCount)
	}
	if s.Profile().CreatedAt != created {
		t.Error("CreatedAt changed on re-initialization")
	}
}

func findCategory(t *testing.T, s *Store, id string) model.BudgetCategory {
	t.Helper()
	for _, cat := range s.Budget() {
		if cat.ID == id {
			return cat
		}
	}
	t.Fatalf("category %q not found", id)
	return model.BudgetCategory{}
}

func TestTaskLifecycle(t *testing.T) {
	s, _ := openTestStore(t)
	s.InitializeUser(testProfile(), testSeed())
	base := len(s.Tasks())

	s.AddTask(NewTaskInput{Title: "Buy a deep freezer", Description: "For meal prep", Category: model.CategoryHome, WeekDue: 30})
	tasks := s.Tasks()
	if len(tasks) != base+1 {
		t.Fatalf("task count = %d, want %d", len(tasks), base+1)
	}

	added := tasks[len(tasks)-1]
	if !strings.HasPrefix(added.ID, "custom-") {
		t.Errorf("user task id = %q, want custom- prefix", added.ID)
	}
	if !added.UserAdded || added.Completed {
		t.Errorf("new task flags wrong: %+v", added)
	}
	if added.Trimester != 3 {
		t.Errorf("trimester = %d for week 30, want 3", added.Trimester)
	}

	s.ToggleTask(added.ID)
	if !taskByID(t, s, added.ID).Completed {
		t.Error("toggle did not complete the task")
	}
	s.ToggleTask(added.ID)
	if taskByID(t, s, added.ID).Completed {
		t.Error("second toggle did not uncomplete the task")
	}

	newTitle := "Buy a chest freezer"
	s.UpdateTask(added.ID, model.TaskUpdate{Title: &newTitle})
	if got := taskByID(t, s, added.ID).Title; got != newTitle {
		t.Errorf("title after update = %q, want %q", got, newTitle)
	}

	// Built-in tasks cannot be deleted.
	builtin := s.Tasks()[0].ID
	s.DeleteTask(builtin)
	if len(s.Tasks()) != base+1 {
		t.Error("built-in task was deleted")
	}

	s.DeleteTask(added.ID)
	if len(s.Tasks()) != base {
		t.Error("user task was not deleted")
	}
}

func taskByID(t *testing.T, s *Store, id string) model.Task {
	t.Helper()
	for _, task := range s.Tasks() {
		if task.ID == id {
			return task
		}
	}
	t.Fatalf("task %q not found", id)
	return model.Task{}
}

func TestBudgetLifecycle(t *testing.T) {
	s, _ := openTestStore(t)
	s.InitializeUser(testProfile(), testSeed())

	s.AddBudgetItem("nursery", model.BudgetItem{Name: "Humidifier", Estimated: 60})
	nursery := findCategory(t, s, "nursery")
	added := nursery.Items[len(nursery.Items)-1]
	if !strings.HasPrefix(added.ID, "nursery-") {
		t.Errorf("item id = %q, want nursery- prefix", added.ID)
	}
	if added.Actual != nil {
		t.Error("new item has a recorded actual cost")
	}

	s.ToggleBudgetItem("nursery", added.ID)
	if !itemByID(t, s, "nursery", added.ID).Purchased {
		t.Error("toggle did not mark the item purchased")
	}

	actual := 49.99
	s.UpdateBudgetItem("nursery", added.ID, model.BudgetItemUpdate{Actual: &actual})
	got := itemByID(t, s, "nursery", added.ID)
	if got.Actual == nil || *got.Actual != actual {
		t.Errorf("actual = %v, want %v", got.Actual, actual)
	}

	before := len(findCategory(t, s, "nursery").Items)
	s.DeleteBudgetItem("nursery", added.ID)
	if got := len(findCategory(t, s, "nursery").Items); got != before-1 {
		t.Errorf("item count after delete = %d, want %d", got, before-1)
	}

	// Unknown category: silently ignored.
	s.AddBudgetItem("vacation", model.BudgetItem{Name: "Flights"})
	for _, cat := range s.Budget() {
		if cat.ID == "vacation" {
			t.Fatal("unknown category was created")
		}
	}
}

func itemByID(t *testing.T, s *Store, catID, itemID string) model.BudgetItem {
	t.Helper()
	for _, item := range findCategory(t, s, catID).Items {
		if item.ID == itemID {
			return item
		}
	}
	t.Fatalf("item %q not found in %q", itemID, catID)
	return model.BudgetItem{}
}

func TestUpdateCashOnHand(t *testing.T) {
	s, _ := openTestStore(t)
	s.InitializeUser(testProfile(), testSeed())

	s.UpdateCashOnHand(4200)
	if s.Profile().CashOnHand == nil || *s.Profile().CashOnHand != 4200 {
		t.Fatalf("CashOnHand = %v, want 4200", s.Profile().CashOnHand)
	}
}

func TestResetAllData(t *testing.T) {
	backend := NewMemoryBackend()
	s := Open(backend)
	s.SetLogf(t.Logf)
	s.InitializeUser(testProfile(), testSeed())

	s.ResetAllData()
	if s.IsOnboarded() || s.Tasks() != nil || s.Budget() != nil {
		t.Fatal("collections not cleared in memory")
	}

	// A fresh store over the same backend must also see nothing.
	reopened := Open(backend)
	reopened.SetLogf(t.Logf)
	if reopened.IsOnboarded() || reopened.Tasks() != nil || reopened.Budget() != nil {
		t.Fatal("collections not cleared in the backend")
	}
}

func TestPersistence_SurvivesReopen(t *testing.T) {
	backend := NewMemoryBackend()
	s := Open(backend)
	s.SetLogf(t.Logf)
	s.InitializeUser(testProfile(), testSeed())
	s.AddTask(NewTaskInput{Title: "Install blackout blinds", Category: model.CategoryHome, WeekDue: 20})
	s.UpdateCashOnHand(1000)

	reopened := Open(backend)
	reopened.SetLogf(t.Logf)
	if !reopened.IsOnboarded() {
		t.Fatal("profile lost across reopen")
	}
	if len(reopened.Tasks()) != len(s.Tasks()) {
		t.Fatal("tasks lost across reopen")
	}
	if reopened.Profile().CashOnHand == nil || *reopened.Profile().CashOnHand != 1000 {
		t.Fatal("cash on hand lost across reopen")
	}
}

func TestWriteFailure_KeepsInMemoryState(t *testing.T) {
	backend := NewMemoryBackend()
	s := Open(backend)
	var warnings []string
	s.SetLogf(func(format string, args ...any) {
		warnings = append(warnings, format)
	})

	s.InitializeUser(testProfile(), testSeed())
	backend.FailWrites = true

	s.ToggleTask(s.Tasks()[0].ID)
	if !s.Tasks()[0].Completed {
		t.Fatal("in-memory state rolled back on write failure")
	}
	if len(warnings) == 0 {
		t.Fatal("write failure was not logged")
	}
}

func TestOpen_CorruptCollectionTreatedAsAbsent(t *testing.T) {
	backend := NewMemoryBackend()
	if err := backend.Set("tasks", []byte("{not json")); err != nil {
		t.Fatalf("seeding backend: %v", err)
	}

	s := Open(backend)
	s.SetLogf(t.Logf)
	if !s.Loaded() {
		t.Fatal("Loaded() = false after a corrupt read")
	}
	if s.Tasks() != nil {
		t.Fatal("corrupt tasks not treated as absent")
	}
}

func TestSQLiteBackend_RoundTrip(t *testing.T) {
	dbPath := t.TempDir() + "/state.db"
	backend, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer func() { _ = backend.Close() }()

	if _, ok, err := backend.Get("user"); err != nil || ok {
		t.Fatalf("Get on empty db = ok=%v err=%v, want absent", ok, err)
	}

	if err := backend.Set("user", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, ok, err := backend.Get("user")
	if err != nil || !ok || string(data) != `{"a":1}` {
		t.Fatalf("Get = %q ok=%v err=%v", data, ok, err)
	}

	if err := backend.Set("user", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	data, _, _ = backend.Get("user")
	if string(data) != `{"a":2}` {
		t.Fatalf("overwrite not applied: %q", data)
	}

	if err := backend.Delete("user"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := backend.Get("user"); ok {
		t.Fatal("key still present after delete")
	}
}
