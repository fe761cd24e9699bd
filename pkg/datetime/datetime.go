// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/insurewise/agency-growth/pkg/constants"
)

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = constants.DateTimeLayout

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}

// MonthLabels returns n month labels starting at startMonth. The first label
// is startMonth itself; each following label is the next calendar month.
func MonthLabels(startMonth string, n int) ([]string, error) {
	if _, err := time.Parse(DateTimeLayout, startMonth); err != nil {
		return nil, err
	}
	labels := make([]string, 0, n)
	current := startMonth
	for i := 0; i < n; i++ {
		if i > 0 {
			next, err := OffsetDate(current, DateTimeLayout, 1)
			if err != nil {
				return nil, err
			}
			current = next
		}
		labels = append(labels, current)
	}
	return labels, nil
}
