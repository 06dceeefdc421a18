package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var collectionRenameDBPath string

var collectionRenameCmd = &cobra.Command{
	Use:   "rename <old-name> <new-name>",
	Short: "Rename a collection.",
	Long: `Rename a collection without touching its entries.

Renaming a collection to its current name is a no-op; renaming to a name
that already exists fails.`,
	Args: cobra.ExactArgs(2),
	Example: `
  # Rename a collection
  travelog collection rename "Business Trips" "Work Travel"
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace, store, err := openWorkspace(collectionRenameDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := workspace.SwitchActiveByName(args[0]); err != nil {
			return err
		}
		if err := workspace.RenameActive(args[1]); err != nil {
			return err
		}

		fmt.Printf("Renamed collection %q to %q\n", args[0], args[1])
		return nil
	},
}

func init() {
	collectionCmd.AddCommand(collectionRenameCmd)

	collectionRenameCmd.Flags().StringVar(&collectionRenameDBPath, "db", "", "Path to local SQLite database (default from config)")
}
