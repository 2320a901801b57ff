/*
Package payroll contains the pure calculation core for driver timesheets.

PURPOSE:
  This package holds the data model and the arithmetic rules for turning a
  day's raw clock entries and bonus counters into money. It has no knowledge
  of storage or HTTP - everything here is a pure function of its inputs.

KEY CONCEPTS IN THIS FILE (types.go):
  - DayRecord: One day's raw input as it is persisted (wire field names)
  - ClockTime: An explicit optional wall-clock time of day
  - DerivedDay: A day with all computed metrics attached
  - Summary: The folded totals for any set of derived days
  - Rate constants: The monetary value of each allowance/bonus unit

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal for every currency amount
  2. Explicit absence: ClockTime replaces the "" sentinel for unset times
  3. Wire compatibility: DayRecord JSON tags match the persisted format

SEE ALSO:
  - day.go: Per-day derivation rules
  - fiscal.go: Fiscal month windowing
  - summary.go: Aggregate fold
*/
package payroll

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// RATES - Monetary value of each unit
// =============================================================================

var (
	// RateDietNormal is paid per allowance unit on a weekday.
	RateDietNormal = decimal.NewFromInt(15)
	// RateDietWeekend is paid per allowance unit on a Saturday or Sunday.
	RateDietWeekend = decimal.NewFromInt(20)
	// RateDietaInt is paid per international trip allowance.
	RateDietaInt = decimal.NewFromInt(25)
	// RateExtra is paid per extra service.
	RateExtra = decimal.NewFromInt(120)
	// RatePernocta is paid per overnight stay.
	RatePernocta = decimal.NewFromInt(40)

	// RateNightLate is the night differential when the shift ends between
	// 22:00 and 02:59 (hour 22, 23, 0, 1 or 2).
	RateNightLate = decimal.NewFromInt(20)
	// RateNightEarly is the night differential when the shift ends between
	// 03:00 and 09:59.
	RateNightEarly = decimal.NewFromInt(40)
)

// =============================================================================
// DAY RECORD - Raw persisted input for one calendar day
// =============================================================================

// DayRecord is one day's raw input. The date is the map key it is stored
// under, not a field. JSON tags are the persisted wire names; StartTime and
// EndTime keep the empty string on the wire for "not worked".
type DayRecord struct {
	StartTime string          `json:"startTime"`
	EndTime   string          `json:"endTime"`
	DietaInt  int             `json:"dietaInt"`
	Extra     int             `json:"extra"`
	Pernocta  int             `json:"pernocta"`
	Propinas  decimal.Decimal `json:"propinas"`
}

// Worked reports whether the day has both clock times set.
func (r DayRecord) Worked() bool {
	_, okStart := ParseClock(r.StartTime)
	_, okEnd := ParseClock(r.EndTime)
	return okStart && okEnd
}

// MonthBucket is the unit of persistence: every record of one calendar
// month, keyed by ISO date string (YYYY-MM-DD).
type MonthBucket map[string]DayRecord

// =============================================================================
// CLOCK TIME - Explicit optional wall-clock time of day
// =============================================================================

// ClockTime is a wall-clock time of day with minute granularity.
type ClockTime struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// ParseClock parses "HH:MM" (or "H:MM"). An empty or malformed string
// returns ok=false, which callers treat as "not worked" rather than an error.
func ParseClock(s string) (ClockTime, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ClockTime{}, false
	}
	hh, mm, found := strings.Cut(s, ":")
	if !found {
		return ClockTime{}, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return ClockTime{}, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return ClockTime{}, false
	}
	return ClockTime{Hour: h, Minute: m}, true
}

// Minutes returns minutes since midnight.
func (c ClockTime) Minutes() int { return c.Hour*60 + c.Minute }

func (c ClockTime) String() string {
	return strconv.Itoa(c.Hour/10) + strconv.Itoa(c.Hour%10) + ":" +
		strconv.Itoa(c.Minute/10) + strconv.Itoa(c.Minute%10)
}

// =============================================================================
// DERIVED DAY - One day with computed metrics
// =============================================================================

// DerivedDay is a DayRecord with every computed metric attached.
// Derived values are never persisted; they are recomputed on each read.
type DerivedDay struct {
	Date    string
	Record  DayRecord
	Hours   float64
	Weekend bool
	// NormalUnits is set only on weekdays, WeekendUnits only on weekends.
	NormalUnits  int
	WeekendUnits int
	NightAmount  decimal.Decimal
}

// =============================================================================
// SUMMARY - Folded totals over a set of derived days
// =============================================================================

// Summary is the aggregate for a fiscal month, a year, or a report range.
// It is purely derived and recomputed on demand.
type Summary struct {
	TotalHours float64
	DaysWorked int

	NormalUnits       int
	WeekendUnits      int
	NormalDietAmount  decimal.Decimal
	WeekendDietAmount decimal.Decimal
	DietTotal         decimal.Decimal

	NightTotal decimal.Decimal

	DietaIntCount  int
	DietaIntAmount decimal.Decimal
	ExtraCount     int
	ExtraAmount    decimal.Decimal
	PernoctaCount  int
	PernoctaAmount decimal.Decimal

	TipsTotal   decimal.Decimal
	IncludeTips bool

	GrandTotal decimal.Decimal
}

// =============================================================================
// DATE HELPERS
// =============================================================================

const dateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date (YYYY-MM-DD) in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// FormatDate formats a date as an ISO calendar date string.
func FormatDate(t time.Time) string { return t.Format(dateLayout) }

// IsWeekendDate reports whether the ISO date falls on a Saturday or Sunday.
// A malformed date is not a weekend.
func IsWeekendDate(date string) bool {
	t, err := ParseDate(date)
	if err != nil {
		return false
	}
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DayOfMonth returns the day-of-month of an ISO date, or 0 if malformed.
func DayOfMonth(date string) int {
	t, err := ParseDate(date)
	if err != nil {
		return 0
	}
	return t.Day()
}
