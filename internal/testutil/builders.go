// Package testutil contains helper builders used across tests to reduce
// boilerplate when constructing core model objects (rosters, transcripts).
// These helpers are intentionally minimal and not intended for production
// usage.
package testutil

import (
	"fmt"
	"testing"

	"github.com/roundtable-ai/roundtable/core"
)

// Roster builds a valid roster of n participants named agent0..agentN-1 with
// model ids model0..modelN-1 and sane sampling defaults. Fails the test on
// construction errors.
func Roster(t *testing.T, n int) *core.Roster {
	t.Helper()
	participants := make([]core.Participant, n)
	for i := range participants {
		participants[i] = core.Participant{
			Name:     fmt.Sprintf("agent%d", i),
			Model:    fmt.Sprintf("model%d", i),
			Persona:  fmt.Sprintf("You are agent%d.", i),
			Sampling: core.SamplingConfig{Temperature: 0.7, TopP: 0.9, MaxTokens: 100},
		}
	}
	roster, err := core.NewRoster(participants...)
	if err != nil {
		t.Fatalf("building roster: %v", err)
	}
	return roster
}

// Transcript builds a transcript from alternating speaker/message pairs.
// Example: Transcript(t, "A", "hello", "B", "hi").
func Transcript(t *testing.T, pairs ...string) *core.Transcript {
	t.Helper()
	if len(pairs)%2 != 0 {
		t.Fatal("Transcript requires speaker/message pairs")
	}
	tr := core.NewTranscript()
	for i := 0; i < len(pairs); i += 2 {
		tr.Append(pairs[i], pairs[i+1])
	}
	return tr
}
