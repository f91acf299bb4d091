package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskelo/taskelo/internal/productivity/application/commands"
)

var (
	editTitle    string
	editNotes    string
	editPriority string
	editDue      string
	editClearDue bool
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task",
	Long: `Edit a task's title, notes, priority tier, or due date.
Only the flags you pass are changed.

Examples:
  taskelo edit 3 --title "Finish the quarterly report"
  taskelo edit 3 --priority high --due friday
  taskelo edit 3 --clear-due`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.UpdateTaskHandler == nil {
			return fmt.Errorf("no database connection")
		}

		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		update := commands.UpdateTaskCommand{TaskID: id, ClearDueDate: editClearDue}
		if cmd.Flags().Changed("title") {
			update.Title = &editTitle
		}
		if cmd.Flags().Changed("notes") {
			update.Notes = &editNotes
		}
		if cmd.Flags().Changed("priority") {
			update.Priority = &editPriority
		}
		if cmd.Flags().Changed("due") {
			due, err := parseDueDate(editDue, time.Now())
			if err != nil {
				return err
			}
			update.DueDate = &due
		}

		if err := app.UpdateTaskHandler.Handle(cmd.Context(), update); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}

		fmt.Printf("Updated task #%d\n", id)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "new title")
	editCmd.Flags().StringVar(&editNotes, "notes", "", "new notes")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "priority tier: low, medium, high")
	editCmd.Flags().StringVarP(&editDue, "due", "d", "", "due date (today, tomorrow, a weekday, or YYYY-MM-DD)")
	editCmd.Flags().BoolVar(&editClearDue, "clear-due", false, "remove the due date")
	rootCmd.AddCommand(editCmd)
}
