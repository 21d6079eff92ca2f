// Package dateutils provides common date and time operations used throughout the application.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date format constants. Transaction timestamps are persisted in the full
// layout, which sorts lexicographically in date order.
const (
	DateLayoutISO  = "2006-01-02"
	DateLayoutFull = "2006-01-02 15:04:05"
)

// ParseFull parses a timestamp string in the full transaction layout.
func ParseFull(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayoutFull, CleanDateString(dateStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
	}
	return t, nil
}

// IsValidFull reports whether a timestamp string conforms to the full layout.
func IsValidFull(dateStr string) bool {
	_, err := ParseFull(dateStr)
	return err == nil
}

// NormalizeBareDate promotes a bare YYYY-MM-DD date to the full layout by
// defaulting the time to midnight.
func NormalizeBareDate(dateStr string) string {
	return CleanDateString(dateStr) + " 00:00:00"
}

// FormatFull formats a time.Time value in the full transaction layout.
func FormatFull(t time.Time) string {
	return t.Format(DateLayoutFull)
}

// CleanDateString normalizes whitespace in a date string.
func CleanDateString(dateStr string) string {
	return strings.Join(strings.Fields(dateStr), " ")
}
