package dateutil

import (
	"strings"
	"time"
)

// Layout is the fixed calendar date format used in plan files (MM/DD/YYYY).
const Layout = "01/02/2006"

// Parse parses an MM/DD/YYYY date string. The second return value is false
// for empty or malformed input; an absent date is a valid state, not an error.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// YearOf extracts the calendar year from an MM/DD/YYYY date string.
// Returns false when the date is missing or malformed.
func YearOf(s string) (int, bool) {
	t, ok := Parse(s)
	if !ok {
		return 0, false
	}
	return t.Year(), true
}
