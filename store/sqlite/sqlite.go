/*
Package sqlite provides the SQLite-backed BucketStore.

PURPOSE:
  Persists month buckets as JSON payloads in a single key-value table. The
  key format on disk is "timesheet-YYYY-MM"; the prefix is owned here so the
  aggregation layer only ever sees plain month keys.

SCHEMA:
  buckets(key TEXT PRIMARY KEY, payload TEXT NOT NULL, updated_at TEXT)

MERGE SEMANTICS:
  MergeBucket is read-merge-write under a mutex, so concurrent writers in
  one process cannot interleave and lose entries. A corrupt existing payload
  is logged, treated as empty, and repaired by the write.

WAL MODE:
  The database is opened with WAL for better read concurrency and crash
  recovery. Use ":memory:" for an in-memory database in tests.

SEE ALSO:
  - timesheet/store.go: Interface and error contract
  - store/memory: In-memory implementation
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/alexvasa10/Mensualwork/payroll"
	"github.com/alexvasa10/Mensualwork/timesheet"
)

const keyPrefix = "timesheet-"

// Store implements timesheet.BucketStore on SQLite.
type Store struct {
	db  *sql.DB
	mu  sync.Mutex
	log *logrus.Logger
}

// New opens (or creates) the database at dbPath and migrates the schema.
// A nil logger falls back to the logrus standard logger.
func New(dbPath string, log *logrus.Logger) (*Store, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db, log: log}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS buckets (
		key TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// BUCKET STORE IMPLEMENTATION
// =============================================================================

func (s *Store) GetBucket(ctx context.Context, monthKey string) (payroll.MonthBucket, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM buckets WHERE key = ?`, keyPrefix+monthKey,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return payroll.MonthBucket{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read bucket %s: %w", monthKey, err)
	}

	var bucket payroll.MonthBucket
	if err := json.Unmarshal([]byte(payload), &bucket); err != nil {
		return nil, &timesheet.CorruptBucketError{Key: monthKey, Err: err}
	}
	if bucket == nil {
		bucket = payroll.MonthBucket{}
	}
	return bucket, nil
}

func (s *Store) MergeBucket(ctx context.Context, monthKey string, partial payroll.MonthBucket) error {
	if len(partial) == 0 {
		return nil
	}

	// Read-merge-write must not interleave with another merge.
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.GetBucket(ctx, monthKey)
	if err != nil {
		if !errors.Is(err, timesheet.ErrCorruptBucket) {
			return err
		}
		// Repair on write: the unreadable payload is replaced below.
		s.log.WithField("bucket", monthKey).WithError(err).
			Warn("overwriting corrupt bucket payload")
		existing = payroll.MonthBucket{}
	}

	for d, rec := range partial {
		existing[d] = rec
	}

	payload, err := json.Marshal(existing)
	if err != nil {
		return fmt.Errorf("failed to encode bucket %s: %w", monthKey, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO buckets (key, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		keyPrefix+monthKey, string(payload), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to write bucket %s: %w", monthKey, err)
	}
	return nil
}

func (s *Store) AllRecords(ctx context.Context) (map[string]payroll.DayRecord, []timesheet.Conflict, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, payload FROM buckets`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan buckets: %w", err)
	}
	defer rows.Close()

	type rawBucket struct {
		key     string
		payload string
	}
	var raw []rawBucket
	for rows.Next() {
		var b rawBucket
		if err := rows.Scan(&b.key, &b.payload); err != nil {
			return nil, nil, err
		}
		raw = append(raw, b)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	// Ascending key order makes "later bucket wins" deterministic.
	sort.Slice(raw, func(i, j int) bool { return raw[i].key < raw[j].key })

	all := make(map[string]payroll.DayRecord)
	seen := make(map[string]string)
	var conflicts []timesheet.Conflict
	for _, b := range raw {
		monthKey := strings.TrimPrefix(b.key, keyPrefix)
		var bucket payroll.MonthBucket
		if err := json.Unmarshal([]byte(b.payload), &bucket); err != nil {
			s.log.WithField("bucket", monthKey).WithError(err).
				Warn("skipping corrupt bucket payload")
			continue
		}
		for d, rec := range bucket {
			if prev, dup := seen[d]; dup {
				conflicts = append(conflicts, timesheet.Conflict{Date: d, Kept: monthKey, Dropped: prev})
			}
			all[d] = rec
			seen[d] = monthKey
		}
	}
	return all, conflicts, nil
}
