// Package tui provides the interactive Bubble Tea dashboard for dadops.
package tui

import (
	"sort"
	"time"

	"dadops/internal/datemath"
	"dadops/internal/model"
	"dadops/internal/store"
	"dadops/internal/tui/components"
	"dadops/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 110
)

// tickMsg refreshes the countdown so a dashboard left open overnight
// doesn't show yesterday's numbers.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// App is the root Bubble Tea model.
type App struct {
	store *store.Store
	now   time.Time

	width     int
	height    int
	activeTab int
	showHelp  bool

	roadmapCursor int
	chestCursor   int
}

// NewApp creates the dashboard model on top of an opened store.
func NewApp(s *store.Store) App {
	return App{store: s, now: time.Now()}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tickCmd()
}

// sortedTasks returns the roadmap ordered by trimester, then week.
func (a App) sortedTasks() []model.Task {
	tasks := append([]model.Task(nil), a.store.Tasks()...)
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Trimester != tasks[j].Trimester {
			return tasks[i].Trimester < tasks[j].Trimester
		}
		return tasks[i].WeekDue < tasks[j].WeekDue
	})
	return tasks
}

// itemRef addresses one budget item across the category list.
type itemRef struct {
	categoryID string
	itemID     string
}

// chestItems flattens the budget into cursor-addressable item refs.
func (a App) chestItems() []itemRef {
	var refs []itemRef
	for _, cat := range a.store.Budget() {
		for _, item := range cat.Items {
			refs = append(refs, itemRef{categoryID: cat.ID, itemID: item.ID})
		}
	}
	return refs
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tickMsg:
		a.now = time.Time(msg)
		return a, tickCmd()

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "?" {
			a.showHelp = true
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Tab navigation
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}
		switch key {
		case "left", "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		switch a.activeTab {
		case 1:
			return a.updateRoadmap(key)
		case 2:
			return a.updateWarChest(key)
		}
		return a, nil
	}

	return a, nil
}

func (a App) updateRoadmap(key string) (tea.Model, tea.Cmd) {
	tasks := a.sortedTasks()
	switch key {
	case "j", "down":
		if a.roadmapCursor < len(tasks)-1 {
			a.roadmapCursor++
		}
	case "k", "up":
		if a.roadmapCursor > 0 {
			a.roadmapCursor--
		}
	case "g":
		a.roadmapCursor = 0
	case "G":
		a.roadmapCursor = len(tasks) - 1
		if a.roadmapCursor < 0 {
			a.roadmapCursor = 0
		}
	case " ", "enter", "x":
		if a.roadmapCursor < len(tasks) {
			a.store.ToggleTask(tasks[a.roadmapCursor].ID)
		}
	}
	return a, nil
}

func (a App) updateWarChest(key string) (tea.Model, tea.Cmd) {
	refs := a.chestItems()
	switch key {
	case "j", "down":
		if a.chestCursor < len(refs)-1 {
			a.chestCursor++
		}
	case "k", "up":
		if a.chestCursor > 0 {
			a.chestCursor--
		}
	case "g":
		a.chestCursor = 0
	case "G":
		a.chestCursor = len(refs) - 1
		if a.chestCursor < 0 {
			a.chestCursor = 0
		}
	case " ", "enter", "x":
		if a.chestCursor < len(refs) {
			ref := refs[a.chestCursor]
			a.store.ToggleBudgetItem(ref.categoryID, ref.itemID)
		}
	}
	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	t := theme.Active

	if a.width > 0 && a.width < minTerminalWidth {
		return lipgloss.NewStyle().
			Foreground(t.Orange).
			Padding(1, 2).
			Render("Terminal too narrow. Resize to at least 70 columns.")
	}

	if !a.store.IsOnboarded() {
		return lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Padding(1, 2).
			Render("No profile yet. Quit and run `dadops onboard` first.\n\n  [q]uit")
	}

	width := a.width
	if width <= 0 {
		width = 80
	}
	contentWidth := width - 2
	if contentWidth > maxContentWidth {
		contentWidth = maxContentWidth
	}

	if a.showHelp {
		return a.viewHelp()
	}

	var body string
	switch a.activeTab {
	case 0:
		body = a.viewOverview(contentWidth)
	case 1:
		body = a.viewRoadmap(contentWidth)
	case 2:
		body = a.viewWarChest(contentWidth)
	}

	due := ""
	if s, err := datemath.FormatDueDate(a.store.Profile().DueDate); err == nil {
		due = "Due " + s
	}

	return components.RenderTabBar(a.activeTab, width) + "\n\n" +
		body + "\n" +
		components.RenderStatusBar(width, due)
}

func (a App) viewHelp() string {
	t := theme.Active

	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	txtStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	row := func(key, desc string) string {
		return "  " + keyStyle.Render(key) + txtStyle.Render("  "+desc)
	}

	lines := []string{
		"",
		lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render("  Keys"),
		"",
		row("o / r / w ", "switch tab (Overview, Roadmap, War Chest)"),
		row("tab / arrows", "cycle tabs"),
		row("j / k     ", "move cursor"),
		row("g / G     ", "jump to top / bottom"),
		row("space     ", "toggle task done or item purchased"),
		row("?         ", "toggle this help"),
		row("q         ", "quit"),
		"",
		txtStyle.Render("  Press any key to close."),
	}

	var out string
	for _, l := range lines {
		out += l + "\n"
	}
	return out
}
