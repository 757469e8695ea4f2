package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-ai/roundtable/core"
	"github.com/roundtable-ai/roundtable/internal/testutil"
	"github.com/roundtable-ai/roundtable/runner"
	"github.com/roundtable-ai/roundtable/usage"
)

func completedResult(t *testing.T) (*runner.Result, *core.Roster) {
	t.Helper()
	roster := testutil.Roster(t, 2)
	transcript := testutil.Transcript(t,
		"agent0", "opening statement",
		"agent1", "a reply",
		"agent0", "a follow-up",
		"agent1", "closing words",
	)
	return &runner.Result{
		RunID:       core.NewID(),
		Status:      runner.StatusCompleted,
		Transcript:  transcript,
		Turns:       4,
		StartedAt:   time.Now().UTC().Add(-time.Minute),
		CompletedAt: time.Now().UTC(),
		Usage:       usage.Summary{TotalTokens: 60},
	}, roster
}

func TestNewRecord_CompleteRun(t *testing.T) {
	result, roster := completedResult(t)

	rec := NewRecord(result, roster, "loops", nil)

	assert.Equal(t, result.RunID, rec.RunID)
	assert.Equal(t, "completed", rec.Status)
	assert.Equal(t, "loops", rec.Topic)
	assert.Equal(t, 4, rec.TotalExchanges)
	assert.Empty(t, rec.Error)

	require.Len(t, rec.Participants, 2)
	assert.Equal(t, ParticipantRecord{Name: "agent0", Model: "model0"}, rec.Participants[0])

	require.Len(t, rec.Entries, 4)
	assert.Equal(t, "agent0", rec.Entries[0].Speaker)
	assert.Equal(t, "closing words", rec.Entries[3].Message)
}

func TestNewRecord_FailedRunKeepsPartialTranscript(t *testing.T) {
	result, roster := completedResult(t)
	result.Status = runner.StatusFailed
	runErr := &core.ProviderError{Model: "model0", Turn: 4, Err: errors.New("timeout")}

	rec := NewRecord(result, roster, "loops", runErr)

	assert.Equal(t, "failed", rec.Status)
	assert.Equal(t, 4, rec.TotalExchanges, "accumulated turns survive the failure")
	assert.Contains(t, rec.Error, "turn 4")
}

func TestFileStore_SaveAndReload(t *testing.T) {
	result, roster := completedResult(t)
	rec := NewRecord(result, roster, "loops", nil)

	path := filepath.Join(t.TempDir(), "logs", "run.json")
	fs := NewFileStore(path)
	require.NoError(t, fs.Save(context.Background(), rec))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var reloaded RunRecord
	require.NoError(t, json.Unmarshal(data, &reloaded))
	assert.Equal(t, rec.RunID, reloaded.RunID)
	assert.Equal(t, rec.TotalExchanges, reloaded.TotalExchanges)
	assert.Equal(t, rec.Entries, reloaded.Entries)

	// Stable wire field names: downstream tooling depends on them.
	raw := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"run_id", "topic", "status", "participants", "total_exchanges", "entries"} {
		assert.Contains(t, raw, key)
	}
}

func TestFileStore_WriteFailureIsPersistenceError(t *testing.T) {
	result, roster := completedResult(t)
	rec := NewRecord(result, roster, "loops", nil)

	// Destination parent is a file, so MkdirAll must fail.
	base := t.TempDir()
	blocker := filepath.Join(base, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	fs := NewFileStore(filepath.Join(blocker, "run.json"))
	err := fs.Save(context.Background(), rec)
	require.Error(t, err)

	var perr *core.PersistenceError
	assert.True(t, errors.As(err, &perr), "expected PersistenceError, got %T", err)
}

func TestInMemoryStore_SaveIsolation(t *testing.T) {
	result, roster := completedResult(t)
	rec := NewRecord(result, roster, "loops", nil)

	s := NewInMemoryStore()
	require.NoError(t, s.Save(context.Background(), rec))
	require.Equal(t, 1, s.Len())

	got, ok := s.Get(rec.RunID)
	require.True(t, ok)
	assert.Equal(t, rec.TotalExchanges, got.TotalExchanges)

	got.Entries[0].Message = "tampered"
	again, _ := s.Get(rec.RunID)
	assert.Equal(t, "opening statement", again.Entries[0].Message, "stored record must be isolated from callers")
}

func TestSummary(t *testing.T) {
	result, roster := completedResult(t)
	result.Usage = usage.Summary{TotalTokens: 5100, TotalCostUSD: 0.012345}
	rec := NewRecord(result, roster, "loops", nil)

	s := Summary(rec)
	assert.Contains(t, s, "4 exchanges")
	assert.Contains(t, s, "completed")
	assert.Contains(t, s, "5100 tokens")
}
