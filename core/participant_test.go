package core

import (
	"errors"
	"testing"
)

func validParticipant(name, model string) Participant {
	return Participant{
		Name:     name,
		Model:    model,
		Persona:  "You are " + name + ".",
		Sampling: SamplingConfig{Temperature: 0.7, TopP: 0.9, MaxTokens: 150},
	}
}

func TestNewRoster_RejectsEmptyLineup(t *testing.T) {
	_, err := NewRoster()
	if err == nil {
		t.Fatal("empty roster should be rejected")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected ConfigError, got %T", err)
	}
}

func TestNewRoster_RejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name string
		p    Participant
	}{
		{"empty name", validParticipant("", "m1")},
		{"missing model", validParticipant("Alice", "")},
		{"temperature too high", Participant{Name: "Alice", Model: "m1", Sampling: SamplingConfig{Temperature: 2.5, TopP: 0.9, MaxTokens: 100}}},
		{"topP zero", Participant{Name: "Alice", Model: "m1", Sampling: SamplingConfig{Temperature: 0.7, TopP: 0, MaxTokens: 100}}},
		{"maxTokens zero", Participant{Name: "Alice", Model: "m1", Sampling: SamplingConfig{Temperature: 0.7, TopP: 0.9, MaxTokens: 0}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewRoster(tc.p); err == nil {
				t.Errorf("expected validation failure for %s", tc.name)
			}
		})
	}
}

func TestRoster_AtIsRoundRobin(t *testing.T) {
	roster, err := NewRoster(
		validParticipant("A", "m1"),
		validParticipant("B", "m2"),
		validParticipant("C", "m3"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for turn := 0; turn < 30; turn++ {
		want := roster.Get(turn % roster.Len()).Name
		if got := roster.At(turn).Name; got != want {
			t.Fatalf("turn %d: got %s, want %s", turn, got, want)
		}
	}

	// Turns 0, 3, 6, ... always select the same speaker.
	first := roster.At(0).Name
	for turn := 0; turn < 30; turn += 3 {
		if roster.At(turn).Name != first {
			t.Errorf("turn %d should select %s", turn, first)
		}
	}
}

func TestRoster_ParticipantsAreCopied(t *testing.T) {
	roster, err := NewRoster(validParticipant("A", "m1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ps := roster.Participants()
	ps[0].Name = "tampered"
	if roster.Get(0).Name != "A" {
		t.Error("roster should not expose its internal slice")
	}
}
