package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"travelog/logbook"
)

var (
	listSort       string
	listDescending bool
	listCollection string
	listDBPath     string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the entries of a collection",
	Long: `Print the entries of the active collection (or the one named via
--collection) as a table, followed by the total and average travel time.

Sortable columns: ` + strings.Join(columnNames(), ", ") + `.`,
	Example: `
  # List the active collection in storage order
  travelog list

  # Longest trips first
  travelog list --sort duration --desc

  # Sort a named collection by start time
  travelog list -c "Business Trips" --sort start
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace, store, err := openWorkspace(listDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		collection, err := targetCollection(workspace, listCollection)
		if err != nil {
			return err
		}

		rows := collection.Rows()
		if strings.TrimSpace(listSort) != "" {
			column, err := logbook.ColumnByName(listSort)
			if err != nil {
				return err
			}
			rows = logbook.SortRows(rows, column, !listDescending)
		}

		writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(writer, "ID\tOrigin\tDestination\tMode\tStart\tEnd\tDuration\tDescription")
		for _, row := range rows {
			fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				row.ID, row.Origin, row.Destination, row.Mode, row.Start, row.End, row.Duration, row.Description)
		}
		if err := writer.Flush(); err != nil {
			return err
		}

		summary := collection.Aggregate()
		fmt.Printf("\nCollection: %s, Entries: %d", collection.Name(), summary.Count)
		if summary.Count > 0 {
			fmt.Printf(", Total: %s", summary.Total)
		}
		if summary.Count >= 2 {
			fmt.Printf(", Average: %s", summary.Average)
		}
		fmt.Println()
		return nil
	},
}

func columnNames() []string {
	columns := logbook.Columns()
	names := make([]string, 0, len(columns))
	for _, column := range columns {
		names = append(names, string(column))
	}
	return names
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort column (default: storage order)")
	listCmd.Flags().BoolVar(&listDescending, "desc", false, "Sort in descending order")
	listCmd.Flags().StringVarP(&listCollection, "collection", "c", "", "Collection name (default: active collection)")
	listCmd.Flags().StringVar(&listDBPath, "db", "", "Path to local SQLite database (default from config)")
}
