package core

import "fmt"

// SamplingConfig bounds the generation parameters passed to the model backend
// on every turn a participant speaks.
//
// Valid ranges:
//   - Temperature in [0, 2]
//   - TopP in (0, 1]
//   - MaxTokens > 0
type SamplingConfig struct {
	Temperature float64 `json:"temperature" yaml:"temperature"`
	TopP        float64 `json:"top_p" yaml:"topP"`
	MaxTokens   int64   `json:"max_tokens" yaml:"maxTokens"`
}

// Validate checks the sampling parameters against their documented bounds.
func (c SamplingConfig) Validate() error {
	if c.Temperature < 0 || c.Temperature > 2 {
		return &ConfigError{Field: "temperature", Reason: fmt.Sprintf("must be in [0, 2], got %v", c.Temperature)}
	}
	if c.TopP <= 0 || c.TopP > 1 {
		return &ConfigError{Field: "topP", Reason: fmt.Sprintf("must be in (0, 1], got %v", c.TopP)}
	}
	if c.MaxTokens <= 0 {
		return &ConfigError{Field: "maxTokens", Reason: fmt.Sprintf("must be positive, got %d", c.MaxTokens)}
	}
	return nil
}

// Participant describes one conversational agent: a display name, the backend
// model it speaks through, the persona instruction sent as the system prompt
// on each of its turns, and the sampling parameters for its generations.
//
// Participants are created once at startup and shared read-only afterwards.
type Participant struct {
	Name     string         `json:"name"`
	Model    string         `json:"model"`
	Persona  string         `json:"persona"`
	Sampling SamplingConfig `json:"sampling"`
}

// Validate ensures the participant can actually take a turn.
func (p Participant) Validate() error {
	if p.Name == "" {
		return &ConfigError{Field: "name", Reason: "participant name must not be empty"}
	}
	if p.Model == "" {
		return &ConfigError{Field: "model", Reason: fmt.Sprintf("participant %q has no model id", p.Name)}
	}
	return p.Sampling.Validate()
}

// Roster is the ordered, fixed lineup of participants for one conversation.
// Order is significant: the speaker for turn n is the participant at index
// n mod Len(). A Roster is immutable after construction.
type Roster struct {
	participants []Participant
}

// NewRoster validates every entry and returns the assembled lineup. An empty
// lineup or any invalid entry is a configuration error: the conversation can
// never start without a valid roster, and turn selection by modulo is
// undefined for size zero.
func NewRoster(participants ...Participant) (*Roster, error) {
	if len(participants) == 0 {
		return nil, &ConfigError{Field: "participants", Reason: "roster must contain at least one participant"}
	}
	for i, p := range participants {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("participant %d: %w", i, err)
		}
	}
	copied := make([]Participant, len(participants))
	copy(copied, participants)
	return &Roster{participants: copied}, nil
}

// Len returns the number of participants.
func (r *Roster) Len() int { return len(r.participants) }

// Get returns the participant at position i.
func (r *Roster) Get(i int) Participant { return r.participants[i] }

// At returns the speaker for the given turn using round-robin selection.
// Selection depends only on the turn index and roster size, which is what
// guarantees near-equal speaking frequency regardless of response content.
func (r *Roster) At(turn int) Participant {
	return r.participants[turn%len(r.participants)]
}

// Participants returns a defensive copy of the lineup in speaking order.
func (r *Roster) Participants() []Participant {
	out := make([]Participant, len(r.participants))
	copy(out, r.participants)
	return out
}
