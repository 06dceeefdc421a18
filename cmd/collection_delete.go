package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var collectionDeleteDBPath string

var (
	collectionDeletePromptInput  io.Reader = os.Stdin
	collectionDeletePromptOutput io.Writer = os.Stdout
)

var collectionDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a collection and all of its entries.",
	Long: `Destructive collection cleanup.

The collection and every entry in it are removed from the database. Before
deletion, an interactive security prompt requires typing exactly "Y".`,
	Args: cobra.ExactArgs(1),
	Example: `
  # Delete a collection (requires interactive confirmation)
  travelog collection delete "Work Travel"
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace, store, err := openWorkspace(collectionDeleteDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := workspace.SwitchActiveByName(args[0]); err != nil {
			return err
		}
		collection, _ := workspace.Active()

		message := fmt.Sprintf("Delete collection %q with %d entries?", collection.Name(), collection.Len())
		confirmed, err := confirmPrompt(collectionDeletePromptInput, collectionDeletePromptOutput, message)
		if err != nil {
			return err
		}
		if !confirmed {
			return fmt.Errorf("delete aborted: confirmation was not 'Y'")
		}

		if err := workspace.DeleteActive(); err != nil {
			return err
		}

		fmt.Printf("Deleted collection: %s\n", args[0])
		return nil
	},
}

func init() {
	collectionCmd.AddCommand(collectionDeleteCmd)

	collectionDeleteCmd.Flags().StringVar(&collectionDeleteDBPath, "db", "", "Path to local SQLite database (default from config)")
}
