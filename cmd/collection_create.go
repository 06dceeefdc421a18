package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var collectionCreateDBPath string

var collectionCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new empty collection.",
	Args:  cobra.ExactArgs(1),
	Example: `
  # Create a new collection
  travelog collection create "Business Trips"
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace, store, err := openWorkspace(collectionCreateDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		collection, err := workspace.CreateCollection(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Created collection: %s\n", collection.Name())
		return nil
	},
}

func init() {
	collectionCmd.AddCommand(collectionCreateCmd)

	collectionCreateCmd.Flags().StringVar(&collectionCreateDBPath, "db", "", "Path to local SQLite database (default from config)")
}
