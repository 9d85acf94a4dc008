// Package daterange holds the calendar math every time-bounded query in the
// application is scoped with. All functions are pure and operate on the
// calendar day in the reference time's location.
package daterange

import "time"

const dateLayout = "2006-01-02"

// Range is an inclusive calendar-day window.
type Range struct {
	Start time.Time
	End   time.Time
}

// StartDate returns the start formatted as "YYYY-MM-DD".
func (r Range) StartDate() string {
	return r.Start.Format(dateLayout)
}

// EndDate returns the end formatted as "YYYY-MM-DD".
func (r Range) EndDate() string {
	return r.End.Format(dateLayout)
}

// Label returns the short month name of the window's start, e.g. "Feb".
func (r Range) Label() string {
	return r.Start.Format("Jan")
}

// MonthBounds returns the first and last calendar day of ref's month.
func MonthBounds(ref time.Time) Range {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 1, -1)
	return Range{Start: start, End: end}
}

// DayBounds returns ref's calendar day as a single-day range.
func DayBounds(ref time.Time) Range {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	return Range{Start: day, End: day}
}

// YearBounds returns January 1 through December 31 of ref's year.
func YearBounds(ref time.Time) Range {
	start := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location())
	end := time.Date(ref.Year(), time.December, 31, 0, 0, 0, 0, ref.Location())
	return Range{Start: start, End: end}
}

// TrailingMonths returns the month windows for the n months up to and
// including ref's month, oldest first. Anchoring on the first of the month
// before stepping back keeps year rollover exact (n=6 from February reaches
// September of the previous year).
func TrailingMonths(ref time.Time, n int) []Range {
	if n <= 0 {
		return nil
	}
	anchor := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	windows := make([]Range, 0, n)
	for i := n - 1; i >= 0; i-- {
		windows = append(windows, MonthBounds(anchor.AddDate(0, -i, 0)))
	}
	return windows
}
