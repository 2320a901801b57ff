package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/alexvasa10/Mensualwork/payroll"
)

// =============================================================================
// HOURS WORKED
// =============================================================================

func TestHoursWorked(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		want       float64
	}{
		{"regular shift", "08:00", "16:00", 8},
		{"half hours", "09:30", "14:15", 4.75},
		{"crosses midnight", "22:00", "06:00", 8},
		{"end equals start wraps full day", "08:00", "08:00", 24},
		{"no start", "", "16:00", 0},
		{"no end", "08:00", "", 0},
		{"neither", "", "", 0},
		{"malformed start", "8h00", "16:00", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := payroll.HoursWorked(c.start, c.end)
			if got != c.want {
				t.Errorf("HoursWorked(%q, %q) = %v, want %v", c.start, c.end, got, c.want)
			}
			if got < 0 {
				t.Errorf("HoursWorked(%q, %q) is negative", c.start, c.end)
			}
		})
	}
}

// =============================================================================
// ALLOWANCE UNITS
// =============================================================================

func TestNormalAllowanceUnits(t *testing.T) {
	cases := []struct {
		hours float64
		want  int
	}{
		{0, 0},
		{0.5, 1},
		{8, 1},
		{12, 1},
		{12.5, 2},
		{13, 2},
	}
	for _, c := range cases {
		if got := payroll.NormalAllowanceUnits(c.hours); got != c.want {
			t.Errorf("NormalAllowanceUnits(%v) = %d, want %d", c.hours, got, c.want)
		}
	}
}

func TestWeekendAllowanceUnits(t *testing.T) {
	cases := []struct {
		hours float64
		want  int
	}{
		{0, 0},
		{3, 0}, // the short-shift rule: three hours or less pays nothing
		{3.5, 1},
		{12, 1},
		{12.5, 2},
	}
	for _, c := range cases {
		if got := payroll.WeekendAllowanceUnits(c.hours); got != c.want {
			t.Errorf("WeekendAllowanceUnits(%v) = %d, want %d", c.hours, got, c.want)
		}
	}
}

// =============================================================================
// NIGHT DIFFERENTIAL
// =============================================================================

func TestNightDifferential(t *testing.T) {
	cases := []struct {
		end  string
		want decimal.Decimal
	}{
		{"23:00", payroll.RateNightLate},
		{"22:00", payroll.RateNightLate},
		{"00:30", payroll.RateNightLate},
		{"02:59", payroll.RateNightLate},
		{"03:00", payroll.RateNightEarly},
		{"05:00", payroll.RateNightEarly},
		{"09:59", payroll.RateNightEarly},
		{"10:00", decimal.Zero},
		{"14:00", decimal.Zero},
		{"21:59", decimal.Zero},
		{"", decimal.Zero},
	}
	for _, c := range cases {
		if got := payroll.NightDifferential(c.end); !got.Equal(c.want) {
			t.Errorf("NightDifferential(%q) = %s, want %s", c.end, got, c.want)
		}
	}
}

// =============================================================================
// DERIVE - End-to-end per-day derivation
// =============================================================================

func TestDerive_ShortWeekendEveningShift(t *testing.T) {
	// GIVEN: A three-hour Sunday evening shift ending at 23:00
	rec := payroll.DayRecord{StartTime: "20:00", EndTime: "23:00"}

	// WHEN: Deriving the day (2024-03-10 is a Sunday)
	d := payroll.Derive("2024-03-10", rec)

	// THEN: Three hours, no weekend allowance (<=3h rule), late-band night pay
	if d.Hours != 3 {
		t.Errorf("Hours = %v, want 3", d.Hours)
	}
	if !d.Weekend {
		t.Error("expected weekend day")
	}
	if d.WeekendUnits != 0 {
		t.Errorf("WeekendUnits = %d, want 0", d.WeekendUnits)
	}
	if d.NormalUnits != 0 {
		t.Errorf("NormalUnits = %d, want 0 on a weekend", d.NormalUnits)
	}
	if !d.NightAmount.Equal(payroll.RateNightLate) {
		t.Errorf("NightAmount = %s, want %s", d.NightAmount, payroll.RateNightLate)
	}
}

func TestDerive_LongWeekdayShift(t *testing.T) {
	// GIVEN: A fourteen-hour Friday shift ending at 22:00
	rec := payroll.DayRecord{StartTime: "08:00", EndTime: "22:00"}

	// WHEN: Deriving the day (2024-03-15 is a Friday)
	d := payroll.Derive("2024-03-15", rec)

	// THEN: Double weekday allowance and late-band night pay
	if d.Hours != 14 {
		t.Errorf("Hours = %v, want 14", d.Hours)
	}
	if d.Weekend {
		t.Error("Friday is not a weekend")
	}
	if d.NormalUnits != 2 {
		t.Errorf("NormalUnits = %d, want 2", d.NormalUnits)
	}
	if !d.NightAmount.Equal(payroll.RateNightLate) {
		t.Errorf("NightAmount = %s, want %s", d.NightAmount, payroll.RateNightLate)
	}
}

func TestDerive_IdleDay(t *testing.T) {
	// GIVEN: A day with counters but no clock times
	rec := payroll.DayRecord{Pernocta: 1}

	// WHEN/THEN: Zero hours and zero allowance units, counters untouched
	d := payroll.Derive("2024-03-11", rec)
	if d.Hours != 0 || d.NormalUnits != 0 || d.WeekendUnits != 0 {
		t.Errorf("idle day derived non-zero work: %+v", d)
	}
	if d.Record.Pernocta != 1 {
		t.Errorf("Pernocta = %d, want 1", d.Record.Pernocta)
	}
}

// =============================================================================
// CLOCK PARSING
// =============================================================================

func TestParseClock(t *testing.T) {
	if _, ok := payroll.ParseClock(""); ok {
		t.Error("empty string should not parse")
	}
	if _, ok := payroll.ParseClock("24:00"); ok {
		t.Error("hour 24 should not parse")
	}
	if _, ok := payroll.ParseClock("12:60"); ok {
		t.Error("minute 60 should not parse")
	}
	c, ok := payroll.ParseClock("7:05")
	if !ok || c.Hour != 7 || c.Minute != 5 {
		t.Errorf("ParseClock(7:05) = %+v, %v", c, ok)
	}
	if c.String() != "07:05" {
		t.Errorf("String() = %q, want 07:05", c.String())
	}
}

func TestDayRecordWorked(t *testing.T) {
	if (payroll.DayRecord{}).Worked() {
		t.Error("empty record is not worked")
	}
	if (payroll.DayRecord{StartTime: "08:00"}).Worked() {
		t.Error("record without end time is not worked")
	}
	if !(payroll.DayRecord{StartTime: "08:00", EndTime: "16:00"}).Worked() {
		t.Error("record with both times is worked")
	}
}
