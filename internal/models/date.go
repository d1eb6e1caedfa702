package models

import (
	"time"

	"fjacquet/camt-report/internal/dateutils"

	"cloud.google.com/go/civil"
)

// Date is a calendar date without time of day (the Dt child of BookgDt, ValDt and Bal/Dt)
type Date struct {
	Dt civil.Date
}

// NewDate creates a Date from its components
func NewDate(year int, month time.Month, day int) Date {
	return Date{Dt: civil.Date{Year: year, Month: month, Day: day}}
}

// String returns the date in ISO 8601 form (YYYY-MM-DD)
func (d Date) String() string {
	return d.Dt.String()
}

// Format formats the date with a time layout
func (d Date) Format(layout string) string {
	return dateutils.FormatDate(d.Dt, layout)
}
