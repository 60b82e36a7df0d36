package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"dadops/internal/datemath"
	"dadops/internal/model"
)

// Collection keys in the backend.
const (
	keyUser   = "user"
	keyTasks  = "tasks"
	keyBudget = "budget"
)

var errWriteFailed = errors.New("backend write failed")

// Store owns the three persisted collections. Nil means "never initialized"
// for each of them and is distinct from an empty collection. There is one
// logical writer; every mutation updates memory first, then persists
// best-effort. A failed write is logged and the in-memory state stays
// authoritative for the rest of the session.
type Store struct {
	backend Backend
	logf    func(format string, args ...any)

	profile *model.UserProfile
	tasks   []model.Task
	budget  []model.BudgetCategory
	loaded  bool
}

// Open loads all three collections from the backend exactly once. A missing
// key yields nil; a corrupt value is logged and treated as absent rather
// than failing the load.
func Open(backend Backend) *Store {
	s := &Store{
		backend: backend,
		logf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "  "+format+"\n", args...)
		},
	}

	loadJSON(s, keyUser, &s.profile)
	loadJSON(s, keyTasks, &s.tasks)
	loadJSON(s, keyBudget, &s.budget)
	s.loaded = true

	return s
}

func loadJSON[T any](s *Store, key string, dst *T) {
	data, ok, err := s.backend.Get(key)
	if err != nil {
		s.logf("warning: reading %s: %v", key, err)
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.logf("warning: stored %s is corrupt, starting fresh: %v", key, err)
		var zero T
		*dst = zero
	}
}

// persist writes one collection back, best-effort.
func (s *Store) persist(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logf("warning: encoding %s: %v", key, err)
		return
	}
	if err := s.backend.Set(key, data); err != nil {
		s.logf("warning: saving %s (changes kept in memory): %v", key, err)
	}
}

// Loaded reports whether the initial read of all three collections has run.
func (s *Store) Loaded() bool { return s.loaded }

// IsOnboarded is derived, never stored: true iff a profile exists.
func (s *Store) IsOnboarded() bool { return s.profile != nil }

// Profile returns the current profile, or nil before onboarding.
func (s *Store) Profile() *model.UserProfile { return s.profile }

// Tasks returns the task list, nil if never initialized.
func (s *Store) Tasks() []model.Task { return s.tasks }

// Budget returns the budget categories, nil if never initialized.
func (s *Store) Budget() []model.BudgetCategory { return s.budget }

// InitializeUser completes onboarding. The profile is always overwritten;
// tasks and budget are seeded only when still nil, so re-running onboarding
// never clobbers existing roadmap or budget data.
func (s *Store) InitializeUser(profile model.UserProfile, seed CostSeed) {
	if profile.CreatedAt == "" {
		profile.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	s.profile = &profile
	s.persist(keyUser, s.profile)

	if s.tasks == nil {
		s.tasks = DefaultTasks()
		s.persist(keyTasks, s.tasks)
	}

	if s.budget == nil {
		s.budget = append([]model.BudgetCategory{BuildMedicalCategory(seed)}, DefaultBudgetCategories()...)
		s.persist(keyBudget, s.budget)
	}
}

// UpdateProfile replaces profile fields in place, preserving CreatedAt.
// No-op before onboarding.
func (s *Store) UpdateProfile(due model.DueDate, ins model.Insurance) {
	if s.profile == nil {
		return
	}
	s.profile.DueDate = due
	s.profile.Insurance = ins
	s.persist(keyUser, s.profile)
}

// UpdateCashOnHand records the war chest balance. No-op before onboarding.
func (s *Store) UpdateCashOnHand(amount float64) {
	if s.profile == nil {
		return
	}
	s.profile.CashOnHand = &amount
	s.persist(keyUser, s.profile)
}

// NewTaskInput is the add-path payload. Trimester is derived from WeekDue,
// never taken from the caller.
type NewTaskInput struct {
	Title       string
	Description string
	Category    model.TaskCategory
	WeekDue     int
}

// AddTask appends a user-created task with a fresh unique id. No-op when the
// task list was never initialized.
func (s *Store) AddTask(input NewTaskInput) {
	if s.tasks == nil {
		return
	}
	s.tasks = append(s.tasks, model.Task{
		ID:          "custom-" + uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Trimester:   datemath.TrimesterForWeek(input.WeekDue),
		WeekDue:     input.WeekDue,
		UserAdded:   true,
	})
	s.persist(keyTasks, s.tasks)
}

// ToggleTask flips completion on the matching task. No-op when uninitialized
// or the id is unknown.
func (s *Store) ToggleTask(id string) {
	if s.tasks == nil {
		return
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			s.persist(keyTasks, s.tasks)
			return
		}
	}
}

// UpdateTask merges non-nil fields into the matching task.
func (s *Store) UpdateTask(id string, update model.TaskUpdate) {
	if s.tasks == nil {
		return
	}
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := &s.tasks[i]
		if update.Title != nil {
			t.Title = *update.Title
		}
		if update.Description != nil {
			t.Description = *update.Description
		}
		if update.Category != nil {
			t.Category = *update.Category
		}
		if update.Trimester != nil {
			t.Trimester = *update.Trimester
		}
		if update.WeekDue != nil {
			t.WeekDue = *update.WeekDue
		}
		if update.Completed != nil {
			t.Completed = *update.Completed
		}
		s.persist(keyTasks, s.tasks)
		return
	}
}

// DeleteTask removes a user-added task by id. Built-in tasks can only be
// toggled, never deleted; asking is silently ignored.
func (s *Store) DeleteTask(id string) {
	if s.tasks == nil {
		return
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			if !s.tasks[i].UserAdded {
				return
			}
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.persist(keyTasks, s.tasks)
			return
		}
	}
}

// AddBudgetItem appends an item with a fresh unique id to the matching
// category. No-op when the budget was never initialized.
func (s *Store) AddBudgetItem(categoryID string, item model.BudgetItem) {
	if s.budget == nil {
		return
	}
	for i := range s.budget {
		if s.budget[i].ID != categoryID {
			continue
		}
		item.ID = categoryID + "-" + shortID()
		s.budget[i].Items = append(s.budget[i].Items, item)
		s.persist(keyBudget, s.budget)
		return
	}
}

// ToggleBudgetItem flips purchased on the matching item.
func (s *Store) ToggleBudgetItem(categoryID, itemID string) {
	s.withItem(categoryID, itemID, func(item *model.BudgetItem) {
		item.Purchased = !item.Purchased
	})
}

// UpdateBudgetItem merges non-nil fields into the matching item. Recording
// an actual cost goes through here.
func (s *Store) UpdateBudgetItem(categoryID, itemID string, update model.BudgetItemUpdate) {
	s.withItem(categoryID, itemID, func(item *model.BudgetItem) {
		if update.Name != nil {
			item.Name = *update.Name
		}
		if update.Estimated != nil {
			item.Estimated = *update.Estimated
		}
		if update.Actual != nil {
			item.Actual = update.Actual
		}
		if update.Purchased != nil {
			item.Purchased = *update.Purchased
		}
		if update.Note != nil {
			item.Note = *update.Note
		}
	})
}

// DeleteBudgetItem removes an item by id within a category.
func (s *Store) DeleteBudgetItem(categoryID, itemID string) {
	if s.budget == nil {
		return
	}
	for i := range s.budget {
		if s.budget[i].ID != categoryID {
			continue
		}
		items := s.budget[i].Items
		for j := range items {
			if items[j].ID == itemID {
				s.budget[i].Items = append(items[:j], items[j+1:]...)
				s.persist(keyBudget, s.budget)
				return
			}
		}
		return
	}
}

func (s *Store) withItem(categoryID, itemID string, fn func(*model.BudgetItem)) {
	if s.budget == nil {
		return
	}
	for i := range s.budget {
		if s.budget[i].ID != categoryID {
			continue
		}
		for j := range s.budget[i].Items {
			if s.budget[i].Items[j].ID == itemID {
				fn(&s.budget[i].Items[j])
				s.persist(keyBudget, s.budget)
				return
			}
		}
		return
	}
}

// ResetAllData clears all three collections unconditionally. Irreversible.
func (s *Store) ResetAllData() {
	s.profile = nil
	s.tasks = nil
	s.budget = nil

	for _, key := range []string{keyUser, keyTasks, keyBudget} {
		if err := s.backend.Delete(key); err != nil {
			s.logf("warning: clearing %s: %v", key, err)
		}
	}
}

// SetLogf overrides the warning sink, primarily for tests.
func (s *Store) SetLogf(logf func(format string, args ...any)) {
	s.logf = logf
}

func shortID() string {
	return strings.Split(uuid.NewString(), "-")[0]
}
