package cmd

import "github.com/spf13/cobra"

var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Manage named travel log collections.",
	Long: `Create, rename, delete, and list collections.

Every entry lives in exactly one collection; names are unique with exact,
case-sensitive matching.`,
	Example: `
  # Create a new collection
  travelog collection create "Business Trips"

  # Rename a collection
  travelog collection rename "Business Trips" "Work Travel"

  # Delete a collection and all of its entries
  travelog collection delete "Work Travel"

  # List all collections
  travelog collection list
`,
}

func init() {
	rootCmd.AddCommand(collectionCmd)
}
