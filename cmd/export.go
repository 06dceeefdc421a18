package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"travelog/output"
)

var (
	exportFormat     string
	exportMode       string
	exportOutput     string
	exportCollection string
	exportDBPath     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export travel logs to CSV/Excel",
	Long: `Export the entries of a collection.

Modes:
- raw: export each entry row
- daily: export per-day aggregates (first departure, last arrival, trip count, travel time)

Output format can be selected explicitly via --format or inferred from --output extension.`,
	Example: `
  # Export raw rows to CSV
  travelog export --mode raw --output ./trips.csv

  # Export raw rows of a named collection to Excel
  travelog export --mode raw -c "Commutes" --output ./commutes.xlsx

  # Export daily summary to CSV
  travelog export --mode daily --output ./daily-summary.csv

  # Force Excel format independent of extension
  travelog export --mode daily --format excel --output ./daily-summary.out
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectExportFormat(exportOutput)
		}

		workspace, store, err := openWorkspace(exportDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		collection, err := targetCollection(workspace, exportCollection)
		if err != nil {
			return err
		}
		entries := collection.Entries()

		mode := strings.TrimSpace(strings.ToLower(exportMode))
		switch mode {
		case "", "raw":
			writer, writerErr := output.WriterForFormat(format)
			if writerErr != nil {
				return writerErr
			}
			if err := writer.Write(exportOutput, entries); err != nil {
				return err
			}
			fmt.Printf("Export completed. Rows: %d, Mode: raw, Format: %s, File: %s\n", len(entries), format, exportOutput)
		case "daily":
			summaries := output.BuildDailySummaries(entries)
			if err := output.WriteDailySummaries(exportOutput, format, summaries); err != nil {
				return err
			}
			fmt.Printf("Export completed. Days: %d, Mode: daily, Format: %s, File: %s\n", len(summaries), format, exportOutput)
		default:
			return fmt.Errorf("unsupported export mode: %s (supported: raw, daily)", exportMode)
		}
		return nil
	},
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportMode, "mode", "raw", "Export mode: raw|daily")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().StringVarP(&exportCollection, "collection", "c", "", "Collection name (default: active collection)")
	exportCmd.Flags().StringVar(&exportDBPath, "db", "", "Path to local SQLite database (default from config)")

	_ = exportCmd.MarkFlagRequired("output")
}
