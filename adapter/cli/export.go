package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all tasks as JSON",
	Long: `Write a versioned JSON snapshot of every task, including completed
ones, to stdout or to a file.

Examples:
  taskelo export > backup.json
  taskelo export --out backup.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.TransferService == nil {
			return fmt.Errorf("no database connection")
		}

		out := os.Stdout
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", exportOut, err)
			}
			defer f.Close()
			out = f
		}

		snapshot, err := app.TransferService.Export(cmd.Context(), out)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOut != "" {
			fmt.Printf("Exported %d tasks to %s\n", len(snapshot.Tasks), exportOut)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write the snapshot to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
