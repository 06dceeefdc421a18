/*
Copyright © 2025

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"travelog/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "travelog",
	Short: "Log, browse, and export travel times across named collections.",
	Long: `
**********************************************
*               TRAVELOG                     *
**********************************************

This CLI records trips (origin, destination, mode, start, end) into named
collections backed by a local SQLite database, renders human-readable
durations, and exports logs or daily summaries to CSV or Excel.

Supported import/export formats:
- Excel: .xlsx, .xlsm, .xls
- CSV: .csv
`,
	Example: `
  # Create configuration file
  travelog config create

  # Add a trip to the active collection
  travelog add --origin Home --destination Office --mode Car --start "2026-01-05 08:10" --end "2026-01-05 08:55"

  # List the active collection sorted by duration, longest first
  travelog list --sort duration --desc

  # Import trips from a CSV export
  travelog import -i trips.csv --format csv

  # Export raw rows
  travelog export --mode raw --output ./trips.csv

  # Export daily travel summary
  travelog export --mode daily --output ./daily-summary.xlsx

  # Check for overlapping trips
  travelog check

  # Start the local web UI
  travelog serve
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.travelog.yaml, then ./.travelog.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".travelog" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".travelog")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found. Create one first with: travelog config create")
	}
}
