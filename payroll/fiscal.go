package payroll

import "time"

// =============================================================================
// FISCAL WINDOW - The payroll month, 26th through 25th
// =============================================================================

// CutoffDay splits a calendar month between two adjacent fiscal months.
// Days on or after the cutoff belong to the next fiscal month.
const CutoffDay = 26

const monthKeyLayout = "2006-01"

// FiscalWindow is the inclusive date range of one fiscal month and the two
// calendar-month buckets its records are stored in. A fiscal month runs from
// the 26th of one calendar month through the 25th of the next, and is named
// after the month it ends in.
type FiscalWindow struct {
	Start time.Time
	End   time.Time

	// StartBucket and EndBucket are the YYYY-MM identifiers of the calendar
	// months the window spans. They are always adjacent.
	StartBucket string
	EndBucket   string
}

// WindowFor returns the fiscal window enclosing the given date. Any date in
// January resolves to a window starting December 26th of the previous year;
// time.Date normalizes the month-zero rollover.
func WindowFor(d time.Time) FiscalWindow {
	start := time.Date(d.Year(), d.Month()-1, CutoffDay, 0, 0, 0, 0, time.UTC)
	end := time.Date(d.Year(), d.Month(), CutoffDay-1, 0, 0, 0, 0, time.UTC)
	return FiscalWindow{
		Start:       start,
		End:         end,
		StartBucket: start.Format(monthKeyLayout),
		EndBucket:   end.Format(monthKeyLayout),
	}
}

// AnchorFor returns a date that resolves, via WindowFor, to the fiscal
// window containing d. WindowFor names the window after d's calendar month,
// so for days on or after the cutoff - which belong to the next fiscal
// month - the anchor moves to day 1 of the following month. Writes must
// anchor this way or a tail day would be filed into the wrong bucket.
func AnchorFor(d time.Time) time.Time {
	if d.Day() >= CutoffDay {
		return time.Date(d.Year(), d.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	}
	return d
}

// Contains reports whether the ISO date falls inside the window.
func (w FiscalWindow) Contains(date string) bool {
	d, err := ParseDate(date)
	if err != nil {
		return false
	}
	return !d.Before(w.Start) && !d.After(w.End)
}

// InStartBucket reports whether a date belongs to the window's tail of the
// preceding calendar month (day-of-month on or after the cutoff).
func InStartBucket(date string) bool {
	day := DayOfMonth(date)
	return day >= CutoffDay
}
