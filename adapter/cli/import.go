package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import tasks from a JSON snapshot",
	Long: `Read a snapshot produced by "taskelo export" and insert its tasks as
new records. Existing tasks are untouched; snapshot IDs are not
preserved. Entries with an empty title or an unknown priority tier are
skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.TransferService == nil {
			return fmt.Errorf("no database connection")
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()

		result, err := app.TransferService.Import(cmd.Context(), f)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		fmt.Printf("Imported %d tasks", result.Imported)
		if result.Skipped > 0 {
			fmt.Printf(", skipped %d invalid entries", result.Skipped)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
