package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskelo/taskelo/internal/productivity/application/commands"
)

var compareCmd = &cobra.Command{
	Use:   "compare <winner-id> <loser-id>",
	Short: "Record that one task matters more than another",
	Long: `Record the outcome of a pairwise comparison: the first task is the
one you would do first. Both Elo ratings move, which shifts the tasks
inside their priority bands on the next "taskelo list".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.RecordComparisonHandler == nil {
			return fmt.Errorf("no database connection")
		}

		winnerID, err := parseTaskID(args[0])
		if err != nil {
			return err
		}
		loserID, err := parseTaskID(args[1])
		if err != nil {
			return err
		}

		result, err := app.RecordComparisonHandler.Handle(cmd.Context(), commands.RecordComparisonCommand{
			WinnerID: winnerID,
			LoserID:  loserID,
			KFactor:  app.EloKFactor,
		})
		if err != nil {
			return fmt.Errorf("failed to record comparison: %w", err)
		}

		fmt.Printf("Recorded: #%d beats #%d\n", winnerID, loserID)
		fmt.Printf("  #%d rating: %.0f\n", winnerID, result.WinnerRating)
		fmt.Printf("  #%d rating: %.0f\n", loserID, result.LoserRating)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
