package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskelo/taskelo/internal/productivity/application/commands"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.CompleteTaskHandler == nil {
			return fmt.Errorf("no database connection")
		}

		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		if err := app.CompleteTaskHandler.Handle(cmd.Context(), commands.CompleteTaskCommand{TaskID: id}); err != nil {
			return fmt.Errorf("failed to complete task: %w", err)
		}

		fmt.Printf("Completed task #%d\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
