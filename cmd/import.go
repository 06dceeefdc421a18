package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"travelog/importer"
)

var (
	importInputs     []string
	importFormat     string
	importCollection string
	importDBPath     string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import CSV/Excel trips into a collection",
	Long: `Read source files and persist each row as a travel log entry.

Recognized column headers (case-insensitive): origin/from, destination/to,
mode/transport, start/departure, end/arrival, description/note. Rows with
neither origin nor destination are skipped. When --format is omitted,
format is inferred from each input file extension.`,
	Example: `
  # Import one CSV file into the active collection
  travelog import -i trips.csv

  # Import multiple Excel files into a named collection
  travelog import -i january.xlsx -i february.xlsx -c "Commutes"

  # Force CSV parsing independent of extension
  travelog import -i export.txt --format csv
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace, store, err := openWorkspace(importDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		collection, err := targetCollection(workspace, importCollection)
		if err != nil {
			return err
		}

		result, err := importer.Run(importInputs, importFormat, collection)
		if err != nil {
			return err
		}

		fmt.Printf("Import completed. Files: %d, Rows read: %d, Rows imported: %d, Rows skipped: %d, Collection: %s\n",
			result.FilesProcessed,
			result.RowsRead,
			result.RowsImported,
			result.RowsSkipped,
			collection.Name(),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringArrayVarP(&importInputs, "input", "i", nil, "Input file path (repeatable)")
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "Input format: csv|excel (optional, inferred from extension when omitted)")
	importCmd.Flags().StringVarP(&importCollection, "collection", "c", "", "Collection name (default: active collection)")
	importCmd.Flags().StringVar(&importDBPath, "db", "", "Path to local SQLite database (default from config)")

	_ = importCmd.MarkFlagRequired("input")
}
