/*
store.go - Persistence interface for month buckets

PURPOSE:
  Defines the interface between the aggregation logic and the storage
  backend. Records are persisted in calendar-month buckets; a fiscal month
  is always reassembled from two adjacent buckets at read time.

KEY INTERFACE:
  BucketStore: typed repository over month keys (YYYY-MM). The adapter owns
  any backend-specific key prefixing so swapping the backend never touches
  the aggregation code.

MERGE CONTRACT:
  MergeBucket is read-merge-write and must be atomic with respect to itself:
  partial entries overwrite same-date entries, everything else is kept, and
  an empty partial is a no-op so empty buckets are never written.

CORRUPTION:
  A bucket whose payload no longer decodes is surfaced as *CorruptBucketError
  instead of being silently dropped. Callers decide whether to log, repair,
  or fall back to an empty bucket.

IMPLEMENTATIONS:
  - store/sqlite: production backend
  - store/memory: in-memory for tests and dev

SEE ALSO:
  - aggregator.go: Fiscal-month assembly on top of this interface
*/
package timesheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexvasa10/Mensualwork/payroll"
)

// =============================================================================
// BUCKET STORE - Typed repository over calendar-month keys
// =============================================================================

// BucketStore persists day records partitioned by calendar month.
type BucketStore interface {
	// GetBucket returns the bucket for a YYYY-MM key. A missing bucket is an
	// empty map, not an error. A bucket that exists but no longer decodes
	// returns a *CorruptBucketError.
	GetBucket(ctx context.Context, monthKey string) (payroll.MonthBucket, error)

	// MergeBucket merges partial into the stored bucket and persists the
	// result. Same-date entries are overwritten, others kept. An empty
	// partial is a no-op.
	MergeBucket(ctx context.Context, monthKey string, partial payroll.MonthBucket) error

	// AllRecords unions every bucket's records keyed by date. Buckets are
	// visited in ascending key order and a later bucket wins a date
	// collision; each collision is reported as a Conflict because buckets
	// are disjoint by construction and an overlap means corrupted state.
	AllRecords(ctx context.Context) (map[string]payroll.DayRecord, []Conflict, error)
}

// Conflict records a cross-bucket date collision found by AllRecords.
type Conflict struct {
	Date    string // the colliding ISO date
	Kept    string // month key whose record won
	Dropped string // month key whose record was shadowed
}

func (c Conflict) String() string {
	return fmt.Sprintf("date %s present in buckets %s and %s (kept %s)", c.Date, c.Dropped, c.Kept, c.Kept)
}

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrCorruptBucket marks a stored bucket whose payload no longer decodes.
	ErrCorruptBucket = errors.New("corrupt bucket payload")

	// ErrInvalidRange is returned when a report range ends before it starts.
	ErrInvalidRange = errors.New("invalid range: end before start")
)

// CorruptBucketError carries the bucket key that failed to decode.
type CorruptBucketError struct {
	Key string
	Err error
}

func (e *CorruptBucketError) Error() string {
	return fmt.Sprintf("corrupt bucket %s: %v", e.Key, e.Err)
}

func (e *CorruptBucketError) Unwrap() error { return ErrCorruptBucket }

// RangeError carries the offending report range bounds.
type RangeError struct {
	From string
	To   string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range start %s is after end %s", e.From, e.To)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }
