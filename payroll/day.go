package payroll

import "github.com/shopspring/decimal"

// =============================================================================
// DAY CALCULATOR - Pure per-day derivation rules
// =============================================================================

const minutesPerDay = 24 * 60

// HoursWorked returns the decimal hours between clock-in and clock-out.
// If either time is absent the day was not worked and the result is 0.
// An end at or before the start means the shift crossed midnight, so a
// full day is added to the end before subtracting. No upper bound.
func HoursWorked(start, end string) float64 {
	s, ok := ParseClock(start)
	if !ok {
		return 0
	}
	e, ok := ParseClock(end)
	if !ok {
		return 0
	}
	startMin := s.Minutes()
	endMin := e.Minutes()
	if endMin <= startMin {
		endMin += minutesPerDay
	}
	return float64(endMin-startMin) / 60
}

// NormalAllowanceUnits returns the weekday allowance units for the hours
// worked: 0 for an idle day, 2 past 12 hours, otherwise 1.
func NormalAllowanceUnits(hours float64) int {
	switch {
	case hours == 0:
		return 0
	case hours > 12:
		return 2
	default:
		return 1
	}
}

// WeekendAllowanceUnits returns the Saturday/Sunday allowance units:
// nothing up to 3 hours, 2 past 12 hours, otherwise 1.
func WeekendAllowanceUnits(hours float64) int {
	switch {
	case hours <= 3:
		return 0
	case hours > 12:
		return 2
	default:
		return 1
	}
}

// NightDifferential returns the fixed night bonus for a shift ending at the
// given time. The late band (hour 22-23 or 0-2) is checked before the early
// band (hour 3-9); the bands are disjoint but the order is part of the rule.
// Hours 10-21 and absent end times pay nothing.
func NightDifferential(end string) decimal.Decimal {
	e, ok := ParseClock(end)
	if !ok {
		return decimal.Zero
	}
	h := e.Hour
	if h >= 22 || h <= 2 {
		return RateNightLate
	}
	if h >= 3 && h <= 9 {
		return RateNightEarly
	}
	return decimal.Zero
}

// Derive computes every metric for one day. The weekend flag comes from the
// calendar date, not from when the shift started or ended.
func Derive(date string, rec DayRecord) DerivedDay {
	hours := HoursWorked(rec.StartTime, rec.EndTime)
	weekend := IsWeekendDate(date)

	d := DerivedDay{
		Date:        date,
		Record:      rec,
		Hours:       hours,
		Weekend:     weekend,
		NightAmount: NightDifferential(rec.EndTime),
	}
	if weekend {
		d.WeekendUnits = WeekendAllowanceUnits(hours)
	} else {
		d.NormalUnits = NormalAllowanceUnits(hours)
	}
	return d
}
