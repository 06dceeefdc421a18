// Package timetext converts naive local timestamps between the canonical
// storage string, the human display string, and the fixed-width sortable
// key used for table column ordering.
package timetext

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// StorageLayout is the canonical machine-parseable timestamp format
	// used by the persistence layer.
	StorageLayout = "2006-01-02 15:04:05"

	dateLayout = "2006, Jan 2"
	timeLayout = "3:04 PM"
	keyLayout  = "200601021504"
)

// ErrDesync indicates that previously rendered display text no longer
// matches the codec grammar. This is an internal invariant violation, not a
// recoverable user error.
var ErrDesync = errors.New("display text does not match codec grammar")

func FormatStorage(value time.Time) string {
	return value.Format(StorageLayout)
}

func ParseStorage(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(StorageLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse storage timestamp %q: %w", value, err)
	}
	return parsed, nil
}

// Display renders a timestamp as `"2006, Jan 2 [3:04 PM]"`.
func Display(value time.Time) string {
	return value.Format(dateLayout) + " [" + value.Format(timeLayout) + "]"
}

// ParseDisplay recovers the timestamp from display text. Seconds are not
// part of the display grammar and come back as zero.
func ParseDisplay(text string) (time.Time, error) {
	datePart, timePart, ok := strings.Cut(text, "[")
	if !ok || !strings.HasSuffix(timePart, "]") {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDesync, text)
	}

	datePart = strings.TrimSpace(datePart)
	timePart = strings.TrimSpace(strings.TrimSuffix(timePart, "]"))

	parsed, err := time.ParseInLocation(dateLayout+" "+timeLayout, datePart+" "+timePart, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDesync, text)
	}
	return parsed, nil
}

// SortKey derives the lexicographically sortable `YYYYMMDDhhmm` key from
// display text. The hour is emitted in 24-hour form so text order equals
// chronological order independent of the meridiem marker.
func SortKey(text string) (string, error) {
	parsed, err := ParseDisplay(text)
	if err != nil {
		return "", err
	}
	return KeyFromTime(parsed), nil
}

// KeyFromTime derives the sortable key directly from a timestamp.
func KeyFromTime(value time.Time) string {
	return value.Format(keyLayout)
}
