package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/viper"

	"travelog/config"
	"travelog/logbook"
	"travelog/storage"
)

// cliDateTimeLayout is the strict datetime format accepted on the command
// line. The core never parses free-form user text; this is the CLI's edge.
const cliDateTimeLayout = "2006-01-02 15:04"

func resolveDBPath(flagValue string) string {
	if strings.TrimSpace(flagValue) != "" {
		return flagValue
	}
	return viper.GetString(config.KeyDatabasePath)
}

// openWorkspace opens the SQLite database and hydrates every persisted
// collection. The caller must Close the returned store.
func openWorkspace(dbPath string) (*logbook.Workspace, *storage.SQLiteStore, error) {
	store, err := storage.OpenSQLite(resolveDBPath(dbPath))
	if err != nil {
		return nil, nil, err
	}

	workspace, err := logbook.LoadWorkspace(store)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return workspace, store, nil
}

// targetCollection resolves the collection a mutating command works on:
// the named one when --collection is set, the active one otherwise. An
// empty workspace gets the configured default collection created on the
// spot, so the first add works without ceremony.
func targetCollection(workspace *logbook.Workspace, name string) (*logbook.Collection, error) {
	if strings.TrimSpace(name) != "" {
		collection, ok := workspace.Collection(name)
		if !ok {
			return nil, fmt.Errorf("collection %q does not exist", name)
		}
		return collection, nil
	}

	if collection, ok := workspace.Active(); ok {
		return collection, nil
	}

	defaultName := viper.GetString(config.KeyDefaultCollection)
	collection, err := workspace.CreateCollection(defaultName)
	if err != nil {
		return nil, fmt.Errorf("create default collection: %w", err)
	}
	fmt.Printf("Created collection: %s\n", defaultName)
	return collection, nil
}

func parseCLIDateTime(flag, value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(cliDateTimeLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s value %q (expected YYYY-MM-DD HH:MM)", flag, value)
	}
	return parsed, nil
}

// confirmPrompt asks the user to type exactly "Y" before a destructive
// action proceeds.
func confirmPrompt(input io.Reader, output io.Writer, message string) (bool, error) {
	if input == nil {
		return false, fmt.Errorf("confirmation input is not available")
	}

	if output == nil {
		output = io.Discard
	}

	if _, err := fmt.Fprintf(output, "%s Type Y to confirm: ", message); err != nil {
		return false, fmt.Errorf("write confirmation prompt: %w", err)
	}

	line, err := bufio.NewReader(input).ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return strings.TrimSpace(line) == "Y", nil
		}
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	return strings.TrimSpace(line) == "Y", nil
}
