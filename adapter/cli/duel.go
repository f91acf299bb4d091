package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskelo/taskelo/internal/productivity/application/commands"
	"github.com/taskelo/taskelo/internal/productivity/application/queries"
)

var duelCmd = &cobra.Command{
	Use:   "duel",
	Short: "Answer the most informative pairwise comparison",
	Long: `Suggest the pair of open tasks whose importance scores are closest,
preferring exact ties, and ask which one you would do first. Answering
moves both Elo ratings and sharpens the ranking where it is fuzziest.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.NextDuelHandler == nil {
			return fmt.Errorf("no database connection")
		}

		duel, err := app.NextDuelHandler.Handle(cmd.Context(), queries.NextDuelQuery{})
		if err != nil {
			return fmt.Errorf("failed to pick a duel: %w", err)
		}

		if duel.Tied {
			fmt.Println(tiedStyle.Render("These tasks are tied. Which would you do first?"))
		} else {
			fmt.Println(titleStyle.Render("Which would you do first?"))
		}
		fmt.Printf("  [1] #%d %s (rating %.0f, score %.2f)\n",
			duel.A.ID, duel.A.Title, duel.A.EloRating, duel.A.Importance)
		fmt.Printf("  [2] #%d %s (rating %.0f, score %.2f)\n",
			duel.B.ID, duel.B.Title, duel.B.EloRating, duel.B.Importance)
		fmt.Print("Answer 1, 2, or s to skip: ")

		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return err
		}

		winnerID, loserID := duel.A.ID, duel.B.ID
		switch strings.TrimSpace(answer) {
		case "1":
		case "2":
			winnerID, loserID = duel.B.ID, duel.A.ID
		case "s", "S", "":
			fmt.Println("Skipped.")
			return nil
		default:
			return fmt.Errorf("unrecognized answer %q", strings.TrimSpace(answer))
		}

		result, err := app.RecordComparisonHandler.Handle(cmd.Context(), commands.RecordComparisonCommand{
			WinnerID: winnerID,
			LoserID:  loserID,
			KFactor:  app.EloKFactor,
		})
		if err != nil {
			return fmt.Errorf("failed to record comparison: %w", err)
		}

		fmt.Printf("Recorded: #%d beats #%d (%.0f vs %.0f)\n",
			winnerID, loserID, result.WinnerRating, result.LoserRating)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(duelCmd)
}
