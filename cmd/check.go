package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"travelog/overlap"
)

var (
	checkCollection string
	checkDBPath     string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report overlapping trips in a collection",
	Long: `Scan a collection for same-day trips whose time ranges intersect.

The check is report-only: no entry is modified. Overlapping trips usually
point at a mistyped start or end time.`,
	Example: `
  # Check the active collection
  travelog check

  # Check a named collection
  travelog check -c "Commutes"
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace, store, err := openWorkspace(checkDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		collection, err := targetCollection(workspace, checkCollection)
		if err != nil {
			return err
		}

		report := overlap.Find(collection.Entries())
		fmt.Printf("Check completed. Collection: %s, Days processed: %d, Overlaps: %d\n",
			collection.Name(), report.DaysProcessed, len(report.Conflicts))

		for _, conflict := range report.Conflicts {
			fmt.Printf("%s: entry %d (%s -> %s, %s-%s) overlaps entry %d (%s -> %s, %s-%s)\n",
				conflict.Day,
				conflict.First.ID, conflict.First.Origin, conflict.First.Destination,
				conflict.First.Start.Format("15:04"), conflict.First.End.Format("15:04"),
				conflict.Other.ID, conflict.Other.Origin, conflict.Other.Destination,
				conflict.Other.Start.Format("15:04"), conflict.Other.End.Format("15:04"),
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkCollection, "collection", "c", "", "Collection name (default: active collection)")
	checkCmd.Flags().StringVar(&checkDBPath, "db", "", "Path to local SQLite database (default from config)")
}
