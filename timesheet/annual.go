package timesheet

import (
	"context"
	"time"

	"github.com/alexvasa10/Mensualwork/payroll"
)

// =============================================================================
// ANNUAL ROLLUP - Re-derive every fiscal month of a year from raw storage
// =============================================================================

// Annual folds the twelve fiscal months named January through December of
// year into one summary. Each window is anchored at day 1 of its named
// month, so January reads back into December of the previous calendar year.
// Windows partition the calendar by the cutoff rule, so every stored day
// whose fiscal month is named in the year is counted exactly once.
func (a *Aggregator) Annual(ctx context.Context, year int, includeTips bool) (payroll.Summary, error) {
	var days []payroll.DerivedDay
	for m := time.January; m <= time.December; m++ {
		records, err := a.Load(ctx, time.Date(year, m, 1, 0, 0, 0, 0, time.UTC))
		if err != nil {
			return payroll.Summary{}, err
		}
		days = append(days, DeriveDays(records)...)
	}
	return payroll.Summarize(days, includeTips), nil
}
