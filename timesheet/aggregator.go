/*
aggregator.go - Fiscal-month assembly and day updates

PURPOSE:
  Composes the fiscal window resolver, the bucket store, and the day
  calculator. Load reassembles the fiscal month around any date from its two
  calendar-month buckets; Save partitions a record set back into them.

PARTITION RULE:
  A date with day-of-month >= 26 lives in the start bucket (the tail of the
  preceding calendar month), anything earlier lives in the end bucket. The
  same rule drives both directions, so a save/load round trip is lossless
  for dates inside the window.

RECOVERY:
  Corrupt buckets degrade to empty after logging a warning. Nothing in this
  package is fatal; bad state costs visibility, not a crash.

SEE ALSO:
  - annual.go: Twelve-window rollup
  - report.go: Fiscal-agnostic range reports
*/
package timesheet

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/alexvasa10/Mensualwork/payroll"
)

// Aggregator assembles fiscal months from the bucket store. It holds no
// view state; everything is a function of the store and the query.
type Aggregator struct {
	store BucketStore
	log   *logrus.Logger
}

// NewAggregator creates an aggregator over the given store. A nil logger
// falls back to the logrus standard logger.
func NewAggregator(store BucketStore, log *logrus.Logger) *Aggregator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Aggregator{store: store, log: log}
}

// =============================================================================
// LOAD / SAVE - Fiscal month against two calendar-month buckets
// =============================================================================

// Load returns every record of the fiscal month enclosing date: the tail of
// the start bucket (days >= cutoff) unioned with the head of the end bucket
// (days < cutoff). The resolver guarantees a date can only match one side.
func (a *Aggregator) Load(ctx context.Context, date time.Time) (map[string]payroll.DayRecord, error) {
	w := payroll.WindowFor(date)

	startBucket, err := a.readBucket(ctx, w.StartBucket)
	if err != nil {
		return nil, err
	}
	endBucket, err := a.readBucket(ctx, w.EndBucket)
	if err != nil {
		return nil, err
	}

	records := make(map[string]payroll.DayRecord)
	for d, rec := range startBucket {
		if payroll.InStartBucket(d) {
			records[d] = rec
		}
	}
	for d, rec := range endBucket {
		if !payroll.InStartBucket(d) {
			records[d] = rec
		}
	}
	return records, nil
}

// Save partitions records by the cutoff rule and merges each non-empty
// partition into its bucket.
func (a *Aggregator) Save(ctx context.Context, date time.Time, records map[string]payroll.DayRecord) error {
	w := payroll.WindowFor(date)

	tail := make(payroll.MonthBucket)
	head := make(payroll.MonthBucket)
	for d, rec := range records {
		if payroll.InStartBucket(d) {
			tail[d] = rec
		} else {
			head[d] = rec
		}
	}

	if err := a.store.MergeBucket(ctx, w.StartBucket, tail); err != nil {
		return err
	}
	return a.store.MergeBucket(ctx, w.EndBucket, head)
}

// readBucket reads one bucket, logging and recovering from corruption.
func (a *Aggregator) readBucket(ctx context.Context, monthKey string) (payroll.MonthBucket, error) {
	bucket, err := a.store.GetBucket(ctx, monthKey)
	if err != nil {
		if errors.Is(err, ErrCorruptBucket) {
			a.log.WithField("bucket", monthKey).WithError(err).
				Warn("corrupt bucket payload, treating as empty")
			return payroll.MonthBucket{}, nil
		}
		return nil, err
	}
	return bucket, nil
}

// =============================================================================
// UPDATE DAY - Pure, non-destructive single-field edit
// =============================================================================

// Field names accepted by UpdateDay. These are the wire names the persisted
// JSON uses, which is also what the UI sends.
const (
	FieldStartTime = "startTime"
	FieldEndTime   = "endTime"
	FieldDietaInt  = "dietaInt"
	FieldExtra     = "extra"
	FieldPernocta  = "pernocta"
	FieldPropinas  = "propinas"
)

// UpdateDay returns a copy of records with one field of one day overwritten.
// A missing day is created with all-default fields first. Counter and tip
// values that fail to parse coerce to zero instead of poisoning later sums;
// an unknown field name is the only error.
func UpdateDay(records map[string]payroll.DayRecord, date, field, value string) (map[string]payroll.DayRecord, error) {
	rec := records[date]

	switch field {
	case FieldStartTime:
		rec.StartTime = strings.TrimSpace(value)
	case FieldEndTime:
		rec.EndTime = strings.TrimSpace(value)
	case FieldDietaInt:
		rec.DietaInt = coerceCount(value)
	case FieldExtra:
		rec.Extra = coerceCount(value)
	case FieldPernocta:
		rec.Pernocta = coerceCount(value)
	case FieldPropinas:
		rec.Propinas = coerceAmount(value)
	default:
		return nil, &UnknownFieldError{Field: field}
	}

	out := make(map[string]payroll.DayRecord, len(records)+1)
	for d, r := range records {
		out[d] = r
	}
	out[date] = rec
	return out, nil
}

// UnknownFieldError names a day field UpdateDay does not recognize.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string { return "unknown day field: " + e.Field }

func coerceCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func coerceAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// =============================================================================
// DERIVATION - Ordered rows and summary
// =============================================================================

// DeriveDays sorts the record dates ascending (lexical ISO order is
// chronological) and derives each day's metrics.
func DeriveDays(records map[string]payroll.DayRecord) []payroll.DerivedDay {
	dates := sortedDates(records)
	days := make([]payroll.DerivedDay, 0, len(dates))
	for _, d := range dates {
		days = append(days, payroll.Derive(d, records[d]))
	}
	return days
}

// Month loads, derives and summarizes the fiscal month enclosing date.
func (a *Aggregator) Month(ctx context.Context, date time.Time, includeTips bool) ([]payroll.DerivedDay, payroll.Summary, error) {
	records, err := a.Load(ctx, date)
	if err != nil {
		return nil, payroll.Summary{}, err
	}
	days := DeriveDays(records)
	return days, payroll.Summarize(days, includeTips), nil
}

func sortedDates(records map[string]payroll.DayRecord) []string {
	dates := make([]string, 0, len(records))
	for d := range records {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
