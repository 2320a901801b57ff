package timesheet

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alexvasa10/Mensualwork/payroll"
)

// =============================================================================
// REPORT FILTER - Arbitrary date ranges, ignoring fiscal boundaries
// =============================================================================

// Report scans every stored record and returns the ordered rows inside the
// inclusive [from, to] range plus their summary, for the rendering layer to
// format. The range is caller-supplied and need not align with any fiscal
// month. A start after the end is rejected with a *RangeError before any
// store access. Cross-bucket date collisions are logged as consistency
// violations; the later bucket's record is kept.
func (a *Aggregator) Report(ctx context.Context, from, to time.Time, includeTips bool) ([]payroll.DerivedDay, payroll.Summary, error) {
	if from.After(to) {
		return nil, payroll.Summary{}, &RangeError{
			From: payroll.FormatDate(from),
			To:   payroll.FormatDate(to),
		}
	}

	all, conflicts, err := a.store.AllRecords(ctx)
	if err != nil {
		return nil, payroll.Summary{}, err
	}
	for _, c := range conflicts {
		a.log.WithFields(logrus.Fields{
			"date":    c.Date,
			"kept":    c.Kept,
			"dropped": c.Dropped,
		}).Warn("date stored in two buckets, keeping the later one")
	}

	lo := payroll.FormatDate(from)
	hi := payroll.FormatDate(to)
	inRange := make(map[string]payroll.DayRecord)
	for d, rec := range all {
		if d >= lo && d <= hi {
			inRange[d] = rec
		}
	}

	days := DeriveDays(inRange)
	return days, payroll.Summarize(days, includeTips), nil
}
