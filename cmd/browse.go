package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"travelog/internal/tui"
)

var browseDBPath string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse collections in a read-only terminal UI",
	Long: `Open an interactive terminal browser over all collections.

The browser is read-only; use "add", "edit", and "remove" or the web UI
for changes.`,
	Example: `
  # Browse the travel log
  travelog browse
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace, store, err := openWorkspace(browseDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		program := tea.NewProgram(tui.NewModel(workspace))
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("run terminal UI: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringVar(&browseDBPath, "db", "", "Path to local SQLite database (default from config)")
}
