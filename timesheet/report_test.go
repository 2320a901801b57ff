package timesheet_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexvasa10/Mensualwork/payroll"
	"github.com/alexvasa10/Mensualwork/store/memory"
	"github.com/alexvasa10/Mensualwork/timesheet"
)

func TestReport_RangeCrossesFiscalBoundary(t *testing.T) {
	// GIVEN: Records spread over two fiscal months
	ctx := context.Background()
	agg := newTestAggregator()

	march := map[string]payroll.DayRecord{
		"2024-03-20": worked("08:00", "16:00"),
		"2024-03-25": worked("08:00", "16:00"),
	}
	april := map[string]payroll.DayRecord{
		"2024-03-26": worked("08:00", "16:00"),
		"2024-04-02": worked("08:00", "16:00"),
	}
	require.NoError(t, agg.Save(ctx, date(2024, time.March, 1), march))
	require.NoError(t, agg.Save(ctx, date(2024, time.April, 1), april))

	// WHEN: Reporting a range that straddles the March/April fiscal cutoff
	rows, summary, err := agg.Report(ctx, date(2024, time.March, 25), date(2024, time.March, 31), false)
	require.NoError(t, err)

	// THEN: Fiscal boundaries are ignored; only the calendar range matters
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-03-25", rows[0].Date)
	assert.Equal(t, "2024-03-26", rows[1].Date)
	assert.Equal(t, 2, summary.DaysWorked)
	assert.Equal(t, float64(16), summary.TotalHours)
}

func TestReport_InclusiveBounds(t *testing.T) {
	ctx := context.Background()
	agg := newTestAggregator()

	records := map[string]payroll.DayRecord{"2024-03-10": worked("08:00", "12:00")}
	require.NoError(t, agg.Save(ctx, date(2024, time.March, 1), records))

	// A single-day range containing exactly the record
	rows, _, err := agg.Report(ctx, date(2024, time.March, 10), date(2024, time.March, 10), false)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	// The day after: empty
	rows, _, err = agg.Report(ctx, date(2024, time.March, 11), date(2024, time.March, 11), false)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReport_RejectsInvertedRange(t *testing.T) {
	// GIVEN: A start after the end
	agg := newTestAggregator()

	_, _, err := agg.Report(context.Background(),
		date(2024, time.March, 20), date(2024, time.March, 10), false)

	// THEN: Rejected without touching the store
	require.Error(t, err)
	assert.ErrorIs(t, err, timesheet.ErrInvalidRange)
	var re *timesheet.RangeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "2024-03-20", re.From)
	assert.Equal(t, "2024-03-10", re.To)
}

func TestReport_LogsCrossBucketConflicts(t *testing.T) {
	// GIVEN: The same date stored in two buckets (a consistency violation)
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.MergeBucket(ctx, "2024-02", payroll.MonthBucket{
		"2024-03-01": worked("08:00", "12:00"),
	}))
	require.NoError(t, store.MergeBucket(ctx, "2024-03", payroll.MonthBucket{
		"2024-03-01": worked("08:00", "18:00"),
	}))

	log := logrus.New()
	log.SetOutput(io.Discard)
	hook := &captureHook{}
	log.AddHook(hook)
	agg := timesheet.NewAggregator(store, log)

	// WHEN: Reporting over the colliding date
	rows, _, err := agg.Report(ctx, date(2024, time.March, 1), date(2024, time.March, 1), false)
	require.NoError(t, err)

	// THEN: The later bucket's record wins and the conflict is logged
	require.Len(t, rows, 1)
	assert.Equal(t, float64(10), rows[0].Hours)
	require.Len(t, hook.entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.entries[0].Level)
	assert.Equal(t, "2024-03-01", hook.entries[0].Data["date"])
}

type captureHook struct {
	entries []*logrus.Entry
}

func (h *captureHook) Levels() []logrus.Level { return []logrus.Level{logrus.WarnLevel} }

func (h *captureHook) Fire(e *logrus.Entry) error {
	h.entries = append(h.entries, e)
	return nil
}
