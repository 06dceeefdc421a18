package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"travelog/triplog"
)

var (
	editID          int64
	editOrigin      string
	editDestination string
	editMode        string
	editStart       string
	editEnd         string
	editDescription string
	editCollection  string
	editDBPath      string
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a travel log entry",
	Long: `Replace fields of an existing entry, addressed by its id.

Unset flags keep the entry's current values; the edit is persisted as one
full replacement and the same validation as "add" applies to the result.`,
	Example: `
  # Fix the arrival time of entry 12
  travelog edit --id 12 --end "2026-01-05 09:10"

  # Change mode and note in one go
  travelog edit --id 12 --mode Bus --description "road works on A3"
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace, store, err := openWorkspace(editDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		collection, err := targetCollection(workspace, editCollection)
		if err != nil {
			return err
		}

		current, err := collection.Get(editID)
		if err != nil {
			return err
		}

		in := triplog.Input{
			Origin:      current.Origin,
			Destination: current.Destination,
			Mode:        current.Mode,
			Start:       current.Start,
			End:         current.End,
			Description: current.Description,
		}
		if cmd.Flags().Changed("origin") {
			in.Origin = editOrigin
		}
		if cmd.Flags().Changed("destination") {
			in.Destination = editDestination
		}
		if cmd.Flags().Changed("mode") {
			in.Mode = triplog.CanonicalMode(editMode)
		}
		if cmd.Flags().Changed("start") {
			in.Start, err = parseCLIDateTime("start", editStart)
			if err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("end") {
			in.End, err = parseCLIDateTime("end", editEnd)
			if err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("description") {
			in.Description = editDescription
		}

		entry, err := collection.Update(editID, in)
		if err != nil {
			return err
		}

		fmt.Printf("Updated entry %d in %q: %s -> %s\n", entry.ID, collection.Name(), entry.Origin, entry.Destination)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().Int64Var(&editID, "id", 0, "ID of the entry to edit")
	editCmd.Flags().StringVar(&editOrigin, "origin", "", "Trip origin")
	editCmd.Flags().StringVar(&editDestination, "destination", "", "Trip destination")
	editCmd.Flags().StringVar(&editMode, "mode", "", "Mode of transport")
	editCmd.Flags().StringVar(&editStart, "start", "", "Start datetime, format: YYYY-MM-DD HH:MM")
	editCmd.Flags().StringVar(&editEnd, "end", "", "End datetime, format: YYYY-MM-DD HH:MM")
	editCmd.Flags().StringVar(&editDescription, "description", "", "Free-text note")
	editCmd.Flags().StringVarP(&editCollection, "collection", "c", "", "Collection name (default: active collection)")
	editCmd.Flags().StringVar(&editDBPath, "db", "", "Path to local SQLite database (default from config)")

	_ = editCmd.MarkFlagRequired("id")
}
