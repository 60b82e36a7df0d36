package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"dadops/internal/cli"
	"dadops/internal/model"
	"dadops/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagTaskCategory string
	flagTaskWeek     int
	flagTaskDesc     string
	flagTrimester    int
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "The trimester task roadmap",
	RunE:  runRoadmapList,
}

var roadmapListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks grouped by trimester",
	RunE:  runRoadmapList,
}

var roadmapAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a custom task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRoadmapAdd,
}

var roadmapDoneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Mark a task complete",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoadmapDone,
}

var roadmapUndoCmd = &cobra.Command{
	Use:   "undo <task-id>",
	Short: "Mark a completed task incomplete again",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoadmapUndo,
}

var roadmapRmCmd = &cobra.Command{
	Use:   "rm <task-id>",
	Short: "Delete a custom task",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoadmapRm,
}

func init() {
	roadmapListCmd.Flags().IntVarP(&flagTrimester, "trimester", "t", 0, "Only show one trimester (1-3)")
	roadmapAddCmd.Flags().StringVarP(&flagTaskCategory, "category", "c", "Preparation", "Task category")
	roadmapAddCmd.Flags().IntVarP(&flagTaskWeek, "week", "w", 20, "Week due (1-40)")
	roadmapAddCmd.Flags().StringVar(&flagTaskDesc, "desc", "", "Task description")

	roadmapCmd.AddCommand(roadmapListCmd, roadmapAddCmd, roadmapDoneCmd, roadmapUndoCmd, roadmapRmCmd)
	rootCmd.AddCommand(roadmapCmd)
}

func runRoadmapList(_ *cobra.Command, _ []string) error {
	s, cleanup, err := requireOnboarded()
	if err != nil {
		return err
	}
	defer cleanup()

	tasks := s.Tasks()
	if len(tasks) == 0 {
		fmt.Println("\n  Roadmap is empty. Add a task with `dadops roadmap add`.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("ROADMAP"))

	for trimester := 1; trimester <= 3; trimester++ {
		if flagTrimester != 0 && trimester != flagTrimester {
			continue
		}

		group := make([]model.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.Trimester == trimester {
				group = append(group, t)
			}
		}
		if len(group) == 0 {
			continue
		}
		sort.SliceStable(group, func(i, j int) bool { return group[i].WeekDue < group[j].WeekDue })

		done := 0
		for _, t := range group {
			if t.Completed {
				done++
			}
		}

		fmt.Printf("\n  %s  %s\n",
			cli.FormatTrimester(trimester),
			cli.Muted(fmt.Sprintf("%d/%d done", done, len(group))),
		)

		rows := make([][]string, 0, len(group))
		for _, t := range group {
			check := " "
			if t.Completed {
				check = "x"
			}
			title := t.Title
			if t.IsHighStakes {
				title += " " + cli.Warn("["+t.Deadline+"]")
			}
			rows = append(rows, []string{
				fmt.Sprintf("[%s] %s", check, title),
				"wk " + strconv.Itoa(t.WeekDue),
				string(t.Category),
				t.ID,
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{Rows: rows}))
	}
	fmt.Println()
	return nil
}

func runRoadmapAdd(_ *cobra.Command, args []string) error {
	s, cleanup, err := requireOnboarded()
	if err != nil {
		return err
	}
	defer cleanup()

	category := model.TaskCategory(flagTaskCategory)
	if !model.ValidTaskCategory(category) {
		names := make([]string, len(model.TaskCategories))
		for i, c := range model.TaskCategories {
			names[i] = string(c)
		}
		return fmt.Errorf("unknown category %q (one of: %s)", flagTaskCategory, strings.Join(names, ", "))
	}
	if flagTaskWeek < 1 || flagTaskWeek > 40 {
		return fmt.Errorf("week must be between 1 and 40, got %d", flagTaskWeek)
	}

	s.AddTask(store.NewTaskInput{
		Title:       strings.Join(args, " "),
		Description: flagTaskDesc,
		Category:    category,
		WeekDue:     flagTaskWeek,
	})

	added := s.Tasks()[len(s.Tasks())-1]
	fmt.Printf("\n  Added %q (week %d, %s) as %s\n", added.Title, added.WeekDue, cli.FormatTrimester(added.Trimester), added.ID)
	return nil
}

func runRoadmapDone(_ *cobra.Command, args []string) error {
	s, cleanup, err := requireOnboarded()
	if err != nil {
		return err
	}
	defer cleanup()

	id := args[0]
	task, ok := findTask(s.Tasks(), id)
	if !ok {
		return fmt.Errorf("no task with id %q", id)
	}
	if task.Completed {
		fmt.Printf("\n  %q is already done.\n", task.Title)
		return nil
	}

	s.ToggleTask(id)
	fmt.Printf("\n  Done: %q\n", task.Title)
	return nil
}

func runRoadmapUndo(_ *cobra.Command, args []string) error {
	s, cleanup, err := requireOnboarded()
	if err != nil {
		return err
	}
	defer cleanup()

	id := args[0]
	task, ok := findTask(s.Tasks(), id)
	if !ok {
		return fmt.Errorf("no task with id %q", id)
	}
	if !task.Completed {
		fmt.Printf("\n  %q is still open.\n", task.Title)
		return nil
	}

	s.ToggleTask(id)
	fmt.Printf("\n  Reopened %q\n", task.Title)
	return nil
}

func runRoadmapRm(_ *cobra.Command, args []string) error {
	s, cleanup, err := requireOnboarded()
	if err != nil {
		return err
	}
	defer cleanup()

	id := args[0]
	task, ok := findTask(s.Tasks(), id)
	if !ok {
		return fmt.Errorf("no task with id %q", id)
	}
	if !task.UserAdded {
		return fmt.Errorf("%q is a built-in task; it can be checked off but not deleted", task.Title)
	}

	s.DeleteTask(id)
	fmt.Printf("\n  Deleted %q\n", task.Title)
	return nil
}

func findTask(tasks []model.Task, id string) (model.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}
