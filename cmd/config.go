package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage travelog configuration file values.",
	Long: `Create, edit, display, and delete the travelog configuration file.

The configuration stores application-wide values:
- database.path
- workspace.default_collection
- serve.port`,
	Example: `
  # Create default config in $HOME/.travelog.yaml
  travelog config create

  # Show active config and source file
  travelog config show

  # Open active config in editor (creates example if missing)
  travelog config edit

  # Delete active config file
  travelog config delete
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
