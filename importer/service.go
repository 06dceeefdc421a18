package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"travelog/logbook"
)

type Result struct {
	FilesProcessed int
	RowsRead       int
	RowsImported   int
	RowsSkipped    int
}

// Run imports every source file into the target collection. Each mapped row
// goes through the collection's create path, so validation and persistence
// behave exactly as a manual add.
func Run(paths []string, format string, collection *logbook.Collection) (*Result, error) {
	result := &Result{}

	for _, path := range paths {
		sourceFormat, err := inferFormat(path, format)
		if err != nil {
			return nil, err
		}
		reader, err := ReaderForFormat(sourceFormat)
		if err != nil {
			return nil, err
		}

		records, err := reader.Read(path)
		if err != nil {
			return nil, err
		}

		result.FilesProcessed++
		result.RowsRead += len(records)
		for _, record := range records {
			in, ok, err := MapRecord(record)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			if !ok {
				result.RowsSkipped++
				continue
			}

			if _, err := collection.Create(in); err != nil {
				return nil, fmt.Errorf("%s row %d: %w", path, record.RowNumber, err)
			}
			result.RowsImported++
		}
	}

	return result, nil
}

func inferFormat(path string, format string) (string, error) {
	if strings.TrimSpace(format) != "" {
		return format, nil
	}

	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch extension {
	case "csv":
		return "csv", nil
	case "xlsx", "xlsm", "xls":
		return "excel", nil
	default:
		return "", fmt.Errorf("unsupported file extension for %s", path)
	}
}
