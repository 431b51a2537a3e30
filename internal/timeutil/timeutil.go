package timeutil

import (
	"strings"
	"time"
)

// DateLayout defines the canonical calendar date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string in UTC.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(value))
}

// IsCalendarDate reports whether value is a real YYYY-MM-DD date.
func IsCalendarDate(value string) bool {
	_, err := ParseDate(value)
	return err == nil
}
