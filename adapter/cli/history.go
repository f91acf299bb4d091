package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskelo/taskelo/internal/productivity/application/queries"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent pairwise comparisons",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.ListComparisonsHandler == nil {
			return fmt.Errorf("no database connection")
		}

		limit := historyLimit
		if limit <= 0 {
			limit = app.HistoryLimit
		}

		comparisons, err := app.ListComparisonsHandler.Handle(cmd.Context(), queries.ListComparisonsQuery{Limit: limit})
		if err != nil {
			return fmt.Errorf("failed to list comparisons: %w", err)
		}

		if len(comparisons) == 0 {
			fmt.Println("No comparisons yet. Run \"taskelo duel\" to start.")
			return nil
		}

		for _, c := range comparisons {
			winner := c.WinnerTitle
			if winner == "" {
				winner = mutedStyle.Render("(deleted)")
			}
			loser := c.LoserTitle
			if loser == "" {
				loser = mutedStyle.Render("(deleted)")
			}
			fmt.Printf("%s  #%d %s beat #%d %s (%.0f->%.0f vs %.0f->%.0f)\n",
				c.CreatedAt.Local().Format("2006-01-02 15:04"),
				c.WinnerID, winner, c.LoserID, loser,
				c.WinnerBefore, c.WinnerAfter, c.LoserBefore, c.LoserAfter)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 0, "number of records to show")
	rootCmd.AddCommand(historyCmd)
}
