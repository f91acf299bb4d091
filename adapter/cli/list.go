package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskelo/taskelo/internal/productivity/application/queries"
)

var listPlain bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the ranked task list",
	Long: `Show open tasks ordered by importance, highest first.

Importance is the product of the Elo-refined priority and the due-date
urgency of the task relative to every other open task. Rows marked with
"=" share their importance with another task; run "taskelo duel" to
break such ties.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.ListRankedHandler == nil {
			return fmt.Errorf("no database connection")
		}

		result, err := app.ListRankedHandler.Handle(cmd.Context(), queries.ListRankedQuery{})
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		if len(result.Tasks) == 0 {
			fmt.Println("No open tasks. Add one with: taskelo add \"...\"")
			return nil
		}

		printRankedTable(result.Tasks)

		tied := 0
		for _, row := range result.Tasks {
			if row.Tied {
				tied++
			}
		}
		if tied > 0 {
			fmt.Println(mutedStyle.Render(fmt.Sprintf(
				"%d tasks are tied. Run \"taskelo duel\" to break ties.", tied)))
		}
		return nil
	},
}

func printRankedTable(rows []queries.RankedTaskDTO) {
	header := fmt.Sprintf("%-5s %-6s %-40s %-8s %-6s %-6s %-10s",
		"RANK", "ID", "TITLE", "PRIO", "ELO", "SCORE", "DUE")
	if listPlain {
		fmt.Println(header)
	} else {
		fmt.Println(headerStyle.Render(header))
	}

	for i, row := range rows {
		title := row.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}

		due := row.DueDate
		if due == "" {
			due = "-"
		} else if !listPlain && isOverdue(row.DueDate) {
			due = highStyle.Render(due)
		}

		rank := fmt.Sprintf("%d", i+1)
		if row.Tied {
			rank += "="
		}

		line := fmt.Sprintf("%-5s %-6d %-40s %-8s %-6.0f %-6.2f %-10s",
			rank, row.ID, title, row.BasePriority, row.EloRating, row.Importance, due)
		if listPlain {
			fmt.Println(line)
			continue
		}
		if row.Tied {
			fmt.Println(tiedStyle.Render(line))
		} else {
			fmt.Println(priorityStyle(row.BasePriority).Render(line))
		}
	}
}

func isOverdue(isoDate string) bool {
	due, err := time.ParseInLocation("2006-01-02", isoDate, time.UTC)
	if err != nil {
		return false
	}
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return due.Before(today)
}

func init() {
	listCmd.Flags().BoolVar(&listPlain, "plain", false, "disable colored output")
	rootCmd.AddCommand(listCmd)
}
