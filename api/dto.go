/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication, decoupling the domain
  model from the external contract. Money is rendered as float64 for the
  UI; the domain keeps exact decimals.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import "github.com/alexvasa10/Mensualwork/payroll"

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// DayRowDTO is one derived day, ordered for the rendering collaborator.
type DayRowDTO struct {
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Hours        float64 `json:"hours"`
	Weekend      bool    `json:"weekend"`
	NormalUnits  int     `json:"normalUnits"`
	WeekendUnits int     `json:"weekendUnits"`
	NightAmount  float64 `json:"nightAmount"`
	DietaInt     int     `json:"dietaInt"`
	Extra        int     `json:"extra"`
	Pernocta     int     `json:"pernocta"`
	Propinas     float64 `json:"propinas"`
}

// SummaryDTO is the folded totals for a month, a year or a report range.
type SummaryDTO struct {
	TotalHours float64 `json:"totalHours"`
	DaysWorked int     `json:"daysWorked"`

	NormalUnits       int     `json:"normalUnits"`
	WeekendUnits      int     `json:"weekendUnits"`
	NormalDietAmount  float64 `json:"normalDietAmount"`
	WeekendDietAmount float64 `json:"weekendDietAmount"`
	DietTotal         float64 `json:"dietTotal"`

	NightTotal float64 `json:"nightTotal"`

	DietaIntCount  int     `json:"dietaIntCount"`
	DietaIntAmount float64 `json:"dietaIntAmount"`
	ExtraCount     int     `json:"extraCount"`
	ExtraAmount    float64 `json:"extraAmount"`
	PernoctaCount  int     `json:"pernoctaCount"`
	PernoctaAmount float64 `json:"pernoctaAmount"`

	TipsTotal   float64 `json:"tipsTotal"`
	IncludeTips bool    `json:"includeTips"`

	GrandTotal float64 `json:"grandTotal"`
}

// TimesheetResponse is a fiscal month: its window, rows and summary.
type TimesheetResponse struct {
	WindowStart string      `json:"windowStart"`
	WindowEnd   string      `json:"windowEnd"`
	Days        []DayRowDTO `json:"days"`
	Summary     SummaryDTO  `json:"summary"`
}

// UpdateDayRequest edits one field of one day. Value is always a string;
// counters and amounts are coerced server-side.
type UpdateDayRequest struct {
	Date  string `json:"date"`
	Field string `json:"field"`
	Value string `json:"value"`
}

// AnnualResponse is the rollup for one year.
type AnnualResponse struct {
	Year    int        `json:"year"`
	Summary SummaryDTO `json:"summary"`
}

// ReportResponse is the date-filtered rows and summary handed to the
// rendering collaborator.
type ReportResponse struct {
	From    string      `json:"from"`
	To      string      `json:"to"`
	Days    []DayRowDTO `json:"days"`
	Summary SummaryDTO  `json:"summary"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toDayRows(days []payroll.DerivedDay) []DayRowDTO {
	rows := make([]DayRowDTO, len(days))
	for i, d := range days {
		rows[i] = DayRowDTO{
			Date:         d.Date,
			StartTime:    d.Record.StartTime,
			EndTime:      d.Record.EndTime,
			Hours:        d.Hours,
			Weekend:      d.Weekend,
			NormalUnits:  d.NormalUnits,
			WeekendUnits: d.WeekendUnits,
			NightAmount:  d.NightAmount.InexactFloat64(),
			DietaInt:     d.Record.DietaInt,
			Extra:        d.Record.Extra,
			Pernocta:     d.Record.Pernocta,
			Propinas:     d.Record.Propinas.InexactFloat64(),
		}
	}
	return rows
}

func toSummaryDTO(s payroll.Summary) SummaryDTO {
	return SummaryDTO{
		TotalHours:        s.TotalHours,
		DaysWorked:        s.DaysWorked,
		NormalUnits:       s.NormalUnits,
		WeekendUnits:      s.WeekendUnits,
		NormalDietAmount:  s.NormalDietAmount.InexactFloat64(),
		WeekendDietAmount: s.WeekendDietAmount.InexactFloat64(),
		DietTotal:         s.DietTotal.InexactFloat64(),
		NightTotal:        s.NightTotal.InexactFloat64(),
		DietaIntCount:     s.DietaIntCount,
		DietaIntAmount:    s.DietaIntAmount.InexactFloat64(),
		ExtraCount:        s.ExtraCount,
		ExtraAmount:       s.ExtraAmount.InexactFloat64(),
		PernoctaCount:     s.PernoctaCount,
		PernoctaAmount:    s.PernoctaAmount.InexactFloat64(),
		TipsTotal:         s.TipsTotal.InexactFloat64(),
		IncludeTips:       s.IncludeTips,
		GrandTotal:        s.GrandTotal.InexactFloat64(),
	}
}
