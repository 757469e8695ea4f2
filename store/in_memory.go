package store

import (
	"context"
	"sync"

	"github.com/roundtable-ai/roundtable/core"
	"github.com/roundtable-ai/roundtable/usage"
)

// InMemoryStore is a volatile Store implementation keeping records in a
// process local map keyed by run id. It is safe for concurrent access and
// best suited for tests or ephemeral demos. Each returned record is a copy to
// prevent external mutation of stored state.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]*RunRecord
}

// NewInMemoryStore constructs an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]*RunRecord)}
}

// Save implements Store.
func (s *InMemoryStore) Save(_ context.Context, rec *RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.RunID] = cloneRecord(rec)
	return nil
}

// Get returns a copy of the record for a run id, if present.
func (s *InMemoryStore) Get(runID string) (*RunRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[runID]
	if !ok {
		return nil, false
	}
	return cloneRecord(rec), true
}

// Len returns the number of stored records.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func cloneRecord(rec *RunRecord) *RunRecord {
	clone := *rec
	clone.Participants = append([]ParticipantRecord(nil), rec.Participants...)
	clone.Entries = append([]core.Entry(nil), rec.Entries...)
	if rec.Usage != nil {
		u := *rec.Usage
		u.PerModel = append([]usage.ModelUsage(nil), rec.Usage.PerModel...)
		clone.Usage = &u
	}
	return &clone
}
