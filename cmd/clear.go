package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	clearCollection string
	clearDBPath     string
)

var (
	clearPromptInput  io.Reader = os.Stdin
	clearPromptOutput io.Writer = os.Stdout
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every entry from a collection",
	Long: `Destructive cleanup of one collection.

The collection itself survives; only its entries are removed. Before
deletion, an interactive security prompt requires typing exactly "Y".`,
	Example: `
  # Clear the active collection (requires interactive confirmation)
  travelog clear

  # Clear a named collection
  travelog clear -c "Business Trips"
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace, store, err := openWorkspace(clearDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		collection, err := targetCollection(workspace, clearCollection)
		if err != nil {
			return err
		}

		message := fmt.Sprintf("Remove all %d entries from collection %q?", collection.Len(), collection.Name())
		confirmed, err := confirmPrompt(clearPromptInput, clearPromptOutput, message)
		if err != nil {
			return err
		}
		if !confirmed {
			return fmt.Errorf("clear aborted: confirmation was not 'Y'")
		}

		if err := collection.Clear(); err != nil {
			return err
		}

		fmt.Printf("Cleared collection: %s\n", collection.Name())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().StringVarP(&clearCollection, "collection", "c", "", "Collection name (default: active collection)")
	clearCmd.Flags().StringVar(&clearDBPath, "db", "", "Path to local SQLite database (default from config)")
}
