package triplog

import (
	"errors"
	"strings"
	"time"
)

// Entry is the normalized travel log record used across storage, import,
// and presentation layers.
type Entry struct {
	ID          int64
	Origin      string
	Destination string
	Mode        string
	Start       time.Time
	End         time.Time
	Description string
}

// ErrNotFound is returned when an entry id does not exist in a collection
// or its backing store.
var ErrNotFound = errors.New("log entry not found")

// ModeOther marks a free-text travel mode outside the fixed vocabulary.
const ModeOther = "Other"

// Modes is the fixed travel mode vocabulary offered by the presentation
// layer. Any other non-empty value is accepted as a free-text mode.
func Modes() []string {
	return []string{"Car", "Walk", "Bus", "Airplane", "Bicycle"}
}

// IsStandardMode reports whether value matches the fixed vocabulary exactly.
func IsStandardMode(value string) bool {
	for _, mode := range Modes() {
		if value == mode {
			return true
		}
	}
	return false
}

// CanonicalMode folds case-insensitive matches and common aliases onto the
// fixed vocabulary. Unrecognized values pass through trimmed, as a free-text
// "Other" mode.
func CanonicalMode(value string) string {
	trimmed := strings.TrimSpace(value)
	lower := strings.ToLower(trimmed)

	for _, mode := range Modes() {
		if lower == strings.ToLower(mode) {
			return mode
		}
	}

	switch lower {
	case "auto", "automobile", "drive", "driving":
		return "Car"
	case "walking", "foot", "on foot":
		return "Walk"
	case "coach", "shuttle":
		return "Bus"
	case "plane", "flight", "air":
		return "Airplane"
	case "bike", "cycling", "cycle":
		return "Bicycle"
	}

	return trimmed
}
