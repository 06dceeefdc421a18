package output

import (
	"fmt"
	"strings"

	"travelog/triplog"
)

type Writer interface {
	Write(path string, entries []triplog.Entry) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

func rawHeaders() []string {
	return []string{"ID", "Origin", "Destination", "Mode", "Start", "End", "Duration", "Description"}
}
