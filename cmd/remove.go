package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	removeID         int64
	removeCollection string
	removeDBPath     string
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a single travel log entry",
	Example: `
  # Remove entry 12 from the active collection
  travelog remove --id 12
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace, store, err := openWorkspace(removeDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		collection, err := targetCollection(workspace, removeCollection)
		if err != nil {
			return err
		}

		if err := collection.Delete(removeID); err != nil {
			return err
		}

		fmt.Printf("Removed entry %d from %q\n", removeID, collection.Name())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)

	removeCmd.Flags().Int64Var(&removeID, "id", 0, "ID of the entry to remove")
	removeCmd.Flags().StringVarP(&removeCollection, "collection", "c", "", "Collection name (default: active collection)")
	removeCmd.Flags().StringVar(&removeDBPath, "db", "", "Path to local SQLite database (default from config)")

	_ = removeCmd.MarkFlagRequired("id")
}
