// Package memory provides an in-memory BucketStore for tests and dev.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/alexvasa10/Mensualwork/payroll"
	"github.com/alexvasa10/Mensualwork/timesheet"
)

// Store keeps buckets in a map. Reads hand out copies so callers can
// mutate the result without racing the store.
type Store struct {
	mu      sync.RWMutex
	buckets map[string]payroll.MonthBucket
}

func New() *Store {
	return &Store{buckets: make(map[string]payroll.MonthBucket)}
}

func (s *Store) GetBucket(_ context.Context, monthKey string) (payroll.MonthBucket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(payroll.MonthBucket, len(s.buckets[monthKey]))
	for d, rec := range s.buckets[monthKey] {
		out[d] = rec
	}
	return out, nil
}

func (s *Store) MergeBucket(_ context.Context, monthKey string, partial payroll.MonthBucket) error {
	if len(partial) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bucket := s.buckets[monthKey]
	if bucket == nil {
		bucket = make(payroll.MonthBucket, len(partial))
		s.buckets[monthKey] = bucket
	}
	for d, rec := range partial {
		bucket[d] = rec
	}
	return nil
}

func (s *Store) AllRecords(_ context.Context) (map[string]payroll.DayRecord, []timesheet.Conflict, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.buckets))
	for k := range s.buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	all := make(map[string]payroll.DayRecord)
	seen := make(map[string]string) // date -> month key that wrote it
	var conflicts []timesheet.Conflict
	for _, k := range keys {
		for d, rec := range s.buckets[k] {
			if prev, dup := seen[d]; dup {
				conflicts = append(conflicts, timesheet.Conflict{Date: d, Kept: k, Dropped: prev})
			}
			all[d] = rec
			seen[d] = k
		}
	}
	return all, conflicts, nil
}
