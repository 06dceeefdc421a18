package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"travelog/triplog"
)

var (
	addOrigin      string
	addDestination string
	addMode        string
	addStart       string
	addEnd         string
	addDescription string
	addCollection  string
	addDBPath      string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a travel log entry to a collection",
	Long: `Add one trip to the active collection (or the one named via --collection).

All of origin, destination, mode, start, and end are required; end must be
strictly after start. Start and end use the format "YYYY-MM-DD HH:MM".`,
	Example: `
  # Add a commute to the active collection
  travelog add --origin Home --destination Office --mode Car --start "2026-01-05 08:10" --end "2026-01-05 08:55"

  # Add a trip with a note to a named collection
  travelog add -c "Business Trips" --origin FRA --destination JFK --mode Airplane --start "2026-02-01 10:30" --end "2026-02-01 19:05" --description "conference"
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseCLIDateTime("start", addStart)
		if err != nil {
			return err
		}
		end, err := parseCLIDateTime("end", addEnd)
		if err != nil {
			return err
		}

		workspace, store, err := openWorkspace(addDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		collection, err := targetCollection(workspace, addCollection)
		if err != nil {
			return err
		}

		entry, err := collection.Create(triplog.Input{
			Origin:      addOrigin,
			Destination: addDestination,
			Mode:        triplog.CanonicalMode(addMode),
			Start:       start,
			End:         end,
			Description: addDescription,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Added entry %d to %q: %s -> %s\n", entry.ID, collection.Name(), entry.Origin, entry.Destination)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addOrigin, "origin", "", "Trip origin")
	addCmd.Flags().StringVar(&addDestination, "destination", "", "Trip destination")
	addCmd.Flags().StringVar(&addMode, "mode", "", "Mode of transport (Car, Walk, Bus, Airplane, Bicycle, or free text)")
	addCmd.Flags().StringVar(&addStart, "start", "", "Start datetime, format: YYYY-MM-DD HH:MM")
	addCmd.Flags().StringVar(&addEnd, "end", "", "End datetime, format: YYYY-MM-DD HH:MM")
	addCmd.Flags().StringVar(&addDescription, "description", "", "Optional free-text note")
	addCmd.Flags().StringVarP(&addCollection, "collection", "c", "", "Collection name (default: active collection)")
	addCmd.Flags().StringVar(&addDBPath, "db", "", "Path to local SQLite database (default from config)")

	_ = addCmd.MarkFlagRequired("start")
	_ = addCmd.MarkFlagRequired("end")
}
