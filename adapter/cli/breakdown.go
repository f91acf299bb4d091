package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskelo/taskelo/internal/productivity/application/queries"
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown <id>",
	Short: "Explain a task's importance score",
	Long: `Show how a task's importance score is assembled: the priority tier,
the Elo rating and the band position it maps to, and the due-date
urgency relative to the other open tasks.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.GetBreakdownHandler == nil {
			return fmt.Errorf("no database connection")
		}

		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		b, err := app.GetBreakdownHandler.Handle(cmd.Context(), queries.GetBreakdownQuery{TaskID: id})
		if err != nil {
			return fmt.Errorf("failed to score task: %w", err)
		}

		fmt.Println(titleStyle.Render(fmt.Sprintf("#%d %s", b.TaskID, b.Title)))
		fmt.Printf("  Priority tier:      %d\n", b.BasePriority)
		fmt.Printf("  Elo rating:         %.0f (%d comparisons)\n", b.EloRating, b.ComparisonCount)
		fmt.Printf("  Effective priority: %.2f\n", b.EffectivePriority)
		fmt.Printf("  Urgency:            %.2f\n", b.Urgency)
		if b.DueDate != "" {
			fmt.Printf("  Due:                %s\n", b.DueDate)
		} else {
			fmt.Printf("  Due:                none (urgency floor)\n")
		}
		fmt.Printf("  Importance:         %.2f = %.2f x %.2f\n",
			b.Importance, b.EffectivePriority, b.Urgency)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(breakdownCmd)
}
