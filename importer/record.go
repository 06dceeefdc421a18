package importer

import (
	"strings"
)

// Trip fields a source row can carry. Readers resolve source headers onto
// these names at read time, so the mapper never sees raw sheet headers.
const (
	fieldOrigin      = "origin"
	fieldDestination = "destination"
	fieldMode        = "mode"
	fieldStart       = "start"
	fieldEnd         = "end"
	fieldDescription = "description"
)

// headerAliases maps normalized source headers onto trip fields. The
// vocabulary covers exported trip sheets ("From"/"To",
// "Departure"/"Arrival") alongside the canonical column names.
var headerAliases = map[string]string{
	"origin":        fieldOrigin,
	"from":          fieldOrigin,
	"destination":   fieldDestination,
	"to":            fieldDestination,
	"mode":          fieldMode,
	"transport":     fieldMode,
	"start":         fieldStart,
	"startdatetime": fieldStart,
	"departure":     fieldStart,
	"end":           fieldEnd,
	"enddatetime":   fieldEnd,
	"arrival":       fieldEnd,
	"description":   fieldDescription,
	"note":          fieldDescription,
	"notes":         fieldDescription,
}

// Record is one source row with its values keyed by trip field.
type Record struct {
	RowNumber int
	Fields    map[string]string
}

// Field returns the trimmed value for a trip field, or "" when the source
// sheet had no column for it.
func (r Record) Field(name string) string {
	return strings.TrimSpace(r.Fields[name])
}

// resolveHeaders maps a header row onto trip field names. Columns that
// match no known header resolve to "" and are dropped from records.
func resolveHeaders(headers []string) []string {
	fields := make([]string, len(headers))
	for i, header := range headers {
		fields[i] = headerAliases[normalizeHeader(header)]
	}
	return fields
}

// buildRecord pairs resolved fields with one data row. Cells past the end
// of a short row stay absent; Field treats them as empty.
func buildRecord(rowNumber int, fields []string, row []string) Record {
	values := make(map[string]string, len(fields))
	for i, field := range fields {
		if field == "" || i >= len(row) {
			continue
		}
		values[field] = row[i]
	}
	return Record{RowNumber: rowNumber, Fields: values}
}

func normalizeHeader(input string) string {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	trimmed = strings.ReplaceAll(trimmed, "_", "")
	trimmed = strings.ReplaceAll(trimmed, "-", "")
	trimmed = strings.ReplaceAll(trimmed, " ", "")
	return trimmed
}
