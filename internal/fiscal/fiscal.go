// Package fiscal converts between calendar dates and Sri Lankan fiscal-year
// labels. A label is the starting calendar year as a string: "2024" means
// April 1 2024 through March 31 2025.
package fiscal

import (
	"strconv"
	"time"
)

// YearOf returns the fiscal-year label containing t. April through December
// map to the calendar year, January through March to the previous one.
func YearOf(t time.Time) string {
	year := t.Year()
	if t.Month() < time.April {
		year--
	}
	return strconv.Itoa(year)
}

// Current returns the fiscal-year label for the present moment.
func Current() string {
	return YearOf(time.Now())
}

// Range returns the inclusive [start, end] bounds of a fiscal year.
// A label that fails to parse yields the zero range, which no date falls in.
func Range(label string) (time.Time, time.Time) {
	year, err := strconv.Atoi(label)
	if err != nil {
		return time.Time{}, time.Time{}
	}
	start := time.Date(year, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year+1, time.March, 31, 23, 59, 59, 0, time.UTC)
	return start, end
}

// InYear reports whether t falls inside the fiscal year named by label.
func InYear(t time.Time, label string) bool {
	start, end := Range(label)
	if start.IsZero() {
		return false
	}
	return !t.Before(start) && !t.After(end)
}
