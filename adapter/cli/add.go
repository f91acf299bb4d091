package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskelo/taskelo/internal/productivity/application/commands"
)

var (
	addPriority string
	addNotes    string
	addDue      string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Long: `Add a task to the ranked list.

The task starts at the neutral rating for its priority tier; pairwise
duels refine its position within the tier over time.

Examples:
  taskelo add "Buy groceries"
  taskelo add "Finish report" --priority high --due 2026-09-01
  taskelo add "Call mom" -p high -d tomorrow`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.CreateTaskHandler == nil {
			return fmt.Errorf("no database connection")
		}

		var due *time.Time
		if addDue != "" {
			parsed, err := parseDueDate(addDue, time.Now())
			if err != nil {
				return err
			}
			due = &parsed
		}

		result, err := app.CreateTaskHandler.Handle(cmd.Context(), commands.CreateTaskCommand{
			Title:    strings.Join(args, " "),
			Notes:    addNotes,
			Priority: addPriority,
			DueDate:  due,
		})
		if err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		fmt.Printf("Added task #%d\n", result.TaskID)
		if due != nil {
			fmt.Printf("  Due: %s\n", due.Format("Mon, Jan 2 2006"))
		}
		return nil
	},
}

// parseDueDate accepts "today", "tomorrow", a weekday name, or YYYY-MM-DD.
func parseDueDate(input string, now time.Time) (time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch strings.ToLower(input) {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
	if weekday, ok := weekdays[strings.ToLower(input)]; ok {
		daysUntil := int(weekday) - int(today.Weekday())
		if daysUntil <= 0 {
			daysUntil += 7
		}
		return today.AddDate(0, 0, daysUntil), nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", input, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q: use today, tomorrow, a weekday, or YYYY-MM-DD", input)
	}
	return parsed, nil
}

func init() {
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "priority tier: low, medium, high")
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "free-form notes")
	addCmd.Flags().StringVarP(&addDue, "due", "d", "", "due date (today, tomorrow, a weekday, or YYYY-MM-DD)")
	rootCmd.AddCommand(addCmd)
}
