// Package durtext renders elapsed time between two timestamps as
// conjunction-joined day/hour/minute text and derives a fixed-width sortable
// key from either the timestamps or previously rendered text.
package durtext

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
)

// ErrDesync indicates that previously rendered duration text no longer
// matches the rendering grammar.
var ErrDesync = errors.New("duration text does not match rendering grammar")

// One pattern per unit token; the integer immediately preceding the token is
// the component value, regardless of the join punctuation around it.
var (
	dayPattern    = regexp.MustCompile(`(\d+)\s*day`)
	hourPattern   = regexp.MustCompile(`(\d+)\s*hr`)
	minutePattern = regexp.MustCompile(`(\d+)\s*min`)
)

// Seconds returns the whole elapsed seconds between start and end.
func Seconds(start, end time.Time) int64 {
	return int64(end.Sub(start) / time.Second)
}

// Render renders the elapsed time between start and end. Seconds below one
// minute are discarded; a sub-minute span renders as "0 mins" so that
// re-parsing rendered text stays total.
func Render(start, end time.Time) string {
	return RenderSeconds(Seconds(start, end))
}

// RenderSeconds renders a total second count as day/hr/min text:
// one component stands alone, two join with "&", three with ", " and ", &".
func RenderSeconds(total int64) string {
	days := total / secondsPerDay
	hours := (total / secondsPerHour) % 24
	minutes := (total / secondsPerMinute) % 60

	components := make([]string, 0, 3)
	if days > 0 {
		components = append(components, pluralize(days, "day", "days"))
	}
	if hours > 0 {
		components = append(components, pluralize(hours, "hr", "hrs"))
	}
	if minutes > 0 {
		components = append(components, pluralize(minutes, "min", "mins"))
	}

	switch len(components) {
	case 0:
		return "0 mins"
	case 1:
		return components[0]
	case 2:
		return components[0] + " & " + components[1]
	default:
		return components[0] + ", " + components[1] + ", & " + components[2]
	}
}

func pluralize(value int64, singular, plural string) string {
	if value == 1 {
		return "1 " + singular
	}
	return strconv.FormatInt(value, 10) + " " + plural
}

// Key derives the 10-digit zero-padded sortable key directly from the
// timestamps, using the exact elapsed seconds.
func Key(start, end time.Time) string {
	return KeyFromSeconds(Seconds(start, end))
}

// KeyFromSeconds formats a total second count as a sortable key.
func KeyFromSeconds(total int64) string {
	return fmt.Sprintf("%010d", total)
}

// ParseText recovers the total seconds embedded in rendered duration text.
// Each present unit contributes independently, so every join-punctuation
// variant parses the same way. Text with no unit token at all is a desync.
func ParseText(text string) (int64, error) {
	total := int64(0)
	found := false

	for _, unit := range []struct {
		pattern *regexp.Regexp
		seconds int64
	}{
		{dayPattern, secondsPerDay},
		{hourPattern, secondsPerHour},
		{minutePattern, secondsPerMinute},
	} {
		match := unit.pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		value, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrDesync, text)
		}
		total += value * unit.seconds
		found = true
	}

	if !found {
		return 0, fmt.Errorf("%w: %q", ErrDesync, text)
	}
	return total, nil
}

// SortKey derives the sortable key by re-parsing rendered text. It agrees
// with Key for minute-aligned timestamps, which is everything the
// presentation layer can produce.
func SortKey(text string) (string, error) {
	total, err := ParseText(text)
	if err != nil {
		return "", err
	}
	return KeyFromSeconds(total), nil
}
