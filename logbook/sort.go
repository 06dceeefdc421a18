package logbook

import (
	"fmt"
	"sort"
)

// Column identifies a sortable presentation column.
type Column string

const (
	ColumnID          Column = "id"
	ColumnOrigin      Column = "origin"
	ColumnDestination Column = "destination"
	ColumnMode        Column = "mode"
	ColumnStart       Column = "start"
	ColumnEnd         Column = "end"
	ColumnDuration    Column = "duration"
	ColumnDescription Column = "description"
)

// Columns lists the sortable columns in presentation order.
func Columns() []Column {
	return []Column{
		ColumnID,
		ColumnOrigin,
		ColumnDestination,
		ColumnMode,
		ColumnStart,
		ColumnEnd,
		ColumnDuration,
		ColumnDescription,
	}
}

// ColumnByName resolves a column name as typed on the CLI.
func ColumnByName(name string) (Column, error) {
	for _, column := range Columns() {
		if string(column) == name {
			return column, nil
		}
	}
	return "", fmt.Errorf("unknown sort column: %s", name)
}

// SortRows returns a stably sorted copy of rows ordered by the column's
// sortable key. Timestamp and duration columns compare on their fixed-width
// keys, id compares numerically, text columns compare lexicographically.
// The input slice keeps its storage order.
func SortRows(rows []Row, column Column, ascending bool) []Row {
	sorted := append([]Row(nil), rows...)

	less := lessFunc(column)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return less(sorted[i], sorted[j])
		}
		return less(sorted[j], sorted[i])
	})
	return sorted
}

func lessFunc(column Column) func(a, b Row) bool {
	switch column {
	case ColumnID:
		return func(a, b Row) bool { return a.ID < b.ID }
	case ColumnOrigin:
		return func(a, b Row) bool { return a.Origin < b.Origin }
	case ColumnDestination:
		return func(a, b Row) bool { return a.Destination < b.Destination }
	case ColumnMode:
		return func(a, b Row) bool { return a.Mode < b.Mode }
	case ColumnStart:
		return func(a, b Row) bool { return a.startKey < b.startKey }
	case ColumnEnd:
		return func(a, b Row) bool { return a.endKey < b.endKey }
	case ColumnDuration:
		return func(a, b Row) bool { return a.durationKey < b.durationKey }
	default:
		return func(a, b Row) bool { return a.Description < b.Description }
	}
}
