package importer

import (
	"fmt"
	"strings"
	"time"

	"travelog/internal/timetext"
	"travelog/triplog"
)

// Input datetime layouts accepted from source files, tried in order. The
// canonical storage layout comes first.
var inputLayouts = []string{
	timetext.StorageLayout,
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"02.01.2006 15:04",
}

// MapRecord maps one source record onto candidate entry fields. A record
// with neither origin nor destination is treated as a blank row and
// skipped. Field validation happens later, on create.
func MapRecord(record Record) (triplog.Input, bool, error) {
	origin := record.Field(fieldOrigin)
	destination := record.Field(fieldDestination)
	if origin == "" && destination == "" {
		return triplog.Input{}, false, nil
	}

	start, err := parseInputDateTime(record.Field(fieldStart))
	if err != nil {
		return triplog.Input{}, false, fmt.Errorf("row %d: parse start datetime: %w", record.RowNumber, err)
	}
	end, err := parseInputDateTime(record.Field(fieldEnd))
	if err != nil {
		return triplog.Input{}, false, fmt.Errorf("row %d: parse end datetime: %w", record.RowNumber, err)
	}

	in := triplog.Input{
		Origin:      origin,
		Destination: destination,
		Mode:        triplog.CanonicalMode(record.Field(fieldMode)),
		Start:       start,
		End:         end,
		Description: record.Field(fieldDescription),
	}
	return in, true, nil
}

func parseInputDateTime(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty datetime value")
	}

	for _, layout := range inputLayouts {
		if parsed, err := time.ParseInLocation(layout, trimmed, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized datetime %q", trimmed)
}
