package core

import (
	"strings"
	"sync"
)

// EmptyTranscript is rendered by Format when no turn has completed yet. The
// rendered history is interpolated directly into prompts, so the empty case
// must still read as a grammatically valid sentence.
const EmptyTranscript = "No conversation yet."

// Entry is one spoken turn: who said it and what was said. Immutable once
// appended.
type Entry struct {
	Speaker string `json:"speaker"`
	Message string `json:"message"`
}

// Transcript is the append-only chronological record of a conversation. It is
// the single piece of shared mutable state in a run: the orchestrator appends
// one entry per successful turn and the prompt builder reads the full history
// back on every subsequent turn.
//
// Contract:
//   - Append is the only mutator; entries are never edited, reordered or removed
//   - Reads (Format, Len, Entries) are side-effect free
//   - Entries returns a defensive copy to avoid external mutation
//
// The orchestration loop is strictly sequential, but the transcript guards
// itself anyway so progress listeners on other goroutines can read safely.
type Transcript struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{entries: []Entry{}}
}

// Append records one spoken turn at the end of the history. Content is not
// inspected: empty or pathological text is accepted as-is, content quality is
// the provider's responsibility.
func (t *Transcript) Append(speaker, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, Entry{Speaker: speaker, Message: message})
}

// Len returns the number of completed turns recorded so far.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Entries returns a copy of the full history in insertion order.
func (t *Transcript) Entries() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Format renders the history as "<speaker>: <message>" lines joined by blank
// lines, in insertion order. An empty transcript renders the EmptyTranscript
// sentinel rather than an empty string.
func (t *Transcript) Format() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.entries) == 0 {
		return EmptyTranscript
	}
	lines := make([]string, len(t.entries))
	for i, e := range t.entries {
		lines[i] = e.Speaker + ": " + e.Message
	}
	return strings.Join(lines, "\n\n")
}

// Clone returns an independent copy of the transcript safe for divergent use.
func (t *Transcript) Clone() *Transcript {
	t.mu.RLock()
	defer t.mu.RUnlock()
	entries := make([]Entry, len(t.entries))
	copy(entries, t.entries)
	return &Transcript{entries: entries}
}
