// Package store persists finished (or partially finished) conversation runs
// and reports summary statistics. The persisted JSON shape is consumed by
// downstream analysis tooling, so field names and ordering are kept stable.
//
// Add additional backends (object storage, databases) in sub-packages without
// changing calling code; only the wiring layer decides which implementation
// to instantiate.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/roundtable-ai/roundtable/core"
	"github.com/roundtable-ai/roundtable/runner"
	"github.com/roundtable-ai/roundtable/usage"
)

// ParticipantRecord identifies one roster member in the persisted metadata.
type ParticipantRecord struct {
	Name  string `json:"name"`
	Model string `json:"model"`
}

// RunRecord is the durable structured record of one conversation run: every
// transcript entry in order plus run-level metadata.
type RunRecord struct {
	RunID          string              `json:"run_id"`
	Topic          string              `json:"topic"`
	Status         string              `json:"status"`
	StartedAt      time.Time           `json:"started_at"`
	CompletedAt    time.Time           `json:"completed_at"`
	Participants   []ParticipantRecord `json:"participants"`
	TotalExchanges int                 `json:"total_exchanges"`
	Entries        []core.Entry        `json:"entries"`
	Usage          *usage.Summary      `json:"usage,omitempty"`
	Error          string              `json:"error,omitempty"`
}

// NewRecord assembles the persistable record for a finished run. runErr, when
// non-nil, marks the record as incomplete and captures the failure reason.
func NewRecord(result *runner.Result, roster *core.Roster, topic string, runErr error) *RunRecord {
	participants := make([]ParticipantRecord, 0, roster.Len())
	for _, p := range roster.Participants() {
		participants = append(participants, ParticipantRecord{Name: p.Name, Model: p.Model})
	}

	rec := &RunRecord{
		RunID:          result.RunID,
		Topic:          topic,
		Status:         string(result.Status),
		StartedAt:      result.StartedAt,
		CompletedAt:    result.CompletedAt,
		Participants:   participants,
		TotalExchanges: result.Transcript.Len(),
		Entries:        result.Transcript.Entries(),
		Usage:          &result.Usage,
	}
	if runErr != nil {
		rec.Error = runErr.Error()
	}
	return rec
}

// Summary renders a short human-readable report of a record: entry count,
// completion status and, when tracked, estimated spend.
func Summary(rec *RunRecord) string {
	s := fmt.Sprintf("%d exchanges, status %s", rec.TotalExchanges, rec.Status)
	if rec.Usage != nil && rec.Usage.TotalTokens > 0 {
		s += fmt.Sprintf(", %d tokens ($%.6f)", rec.Usage.TotalTokens, rec.Usage.TotalCostUSD)
	}
	return s
}

// Store saves run records to durable storage. Implementations must report
// write failures rather than swallow them; a failed save never invalidates
// the in-memory transcript.
type Store interface {
	Save(ctx context.Context, rec *RunRecord) error
}
