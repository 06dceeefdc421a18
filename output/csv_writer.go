package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"travelog/internal/durtext"
	"travelog/internal/timetext"
	"travelog/triplog"
)

type CSVWriter struct{}

func (w *CSVWriter) Write(path string, entries []triplog.Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(rawHeaders()); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, entry := range entries {
		row := []string{
			strconv.FormatInt(entry.ID, 10),
			entry.Origin,
			entry.Destination,
			entry.Mode,
			timetext.FormatStorage(entry.Start),
			timetext.FormatStorage(entry.End),
			durtext.Render(entry.Start, entry.End),
			entry.Description,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}
