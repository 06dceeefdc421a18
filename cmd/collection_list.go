package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var collectionListDBPath string

var collectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all collections with their entry counts.",
	Example: `
  # List all collections
  travelog collection list
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace, store, err := openWorkspace(collectionListDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if workspace.Len() == 0 {
			fmt.Println("No collections. Create one with: travelog collection create <name>")
			return nil
		}

		writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(writer, "Name\tEntries\tTotal")
		for _, name := range workspace.Names() {
			collection, _ := workspace.Collection(name)
			summary := collection.Aggregate()
			total := summary.Total
			if summary.Count == 0 {
				total = "-"
			}
			fmt.Fprintf(writer, "%s\t%d\t%s\n", name, summary.Count, total)
		}
		return writer.Flush()
	},
}

func init() {
	collectionCmd.AddCommand(collectionListCmd)

	collectionListCmd.Flags().StringVar(&collectionListDBPath, "db", "", "Path to local SQLite database (default from config)")
}
