// Package dateutils provides common date and time operations used throughout the application.
package dateutils

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO = "2006-01-02"
	// TimestampLayout is the xs:dateTime form with a mandatory UTC offset
	TimestampLayout = time.RFC3339
)

// ParseISODate parses an xs:date value (YYYY-MM-DD) into a calendar date
func ParseISODate(dateStr string) (civil.Date, error) {
	d, err := civil.ParseDate(strings.TrimSpace(dateStr))
	if err != nil {
		return civil.Date{}, fmt.Errorf("unable to parse date: %s", dateStr)
	}
	return d, nil
}

// ParseTimestamp parses an xs:dateTime value that carries an explicit UTC offset
// (or Z). The offset is kept in the returned time's location.
// Fractional seconds are accepted.
func ParseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse timestamp with offset: %s", value)
	}
	return t, nil
}

// LayoutFromPattern converts a human date pattern such as "DD.MM.YYYY" into a Go
// time layout. Patterns that already look like Go layouts are returned unchanged.
func LayoutFromPattern(pattern string) string {
	if pattern == "" {
		return DateLayoutISO
	}
	r := strings.NewReplacer(
		"YYYY", "2006",
		"MM", "01",
		"DD", "02",
	)
	return r.Replace(pattern)
}

// FormatDate formats a calendar date according to the specified layout
// If no layout is provided, DateLayoutISO is used
func FormatDate(date civil.Date, layout string) string {
	if layout == "" {
		layout = DateLayoutISO
	}
	return date.In(time.UTC).Format(layout)
}

// FormatTimestamp formats a timestamp in RFC 3339, keeping its own offset
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
