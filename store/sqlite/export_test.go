package sqlite

import "testing"

// InjectPayload writes a raw payload under a month key, bypassing encoding.
// Used to simulate corrupted state.
func (s *Store) InjectPayload(t testing.TB, monthKey, payload string) {
	t.Helper()
	_, err := s.db.Exec(`
		INSERT INTO buckets (key, payload, updated_at) VALUES (?, ?, '')
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload`,
		keyPrefix+monthKey, payload)
	if err != nil {
		t.Fatalf("Failed to inject payload: %v", err)
	}
}
