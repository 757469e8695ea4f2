// Package usage accumulates token consumption and estimated spend across a
// conversation run. Hosted APIs bill per token, and a design that resends the
// full transcript every turn makes that spend grow quadratically, so the
// tracker exists to make the cost visible rather than to limit it.
package usage

import (
	"sync"

	"github.com/roundtable-ai/roundtable/model"
)

// Pricing is the USD cost per one million tokens for a model.
type Pricing struct {
	InputPerMillion  float64 `json:"input_per_million"`
	OutputPerMillion float64 `json:"output_per_million"`
}

// DefaultPricing covers the hosted models the default configuration speaks
// through. Models not listed are tracked at zero cost.
func DefaultPricing() map[string]Pricing {
	return map[string]Pricing{
		"gpt-4o":      {InputPerMillion: 2.50, OutputPerMillion: 10.00},
		"o1-mini":     {InputPerMillion: 3.00, OutputPerMillion: 12.00},
		"gpt-4o-mini": {InputPerMillion: 0.15, OutputPerMillion: 0.60},
	}
}

// ModelUsage aggregates consumption for a single model.
type ModelUsage struct {
	Model            string  `json:"model"`
	Calls            int     `json:"calls"`
	PromptTokens     int     `json:"prompt_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
	CostUSD          float64 `json:"cost_usd"`
}

// Summary is a point-in-time snapshot of tracked consumption, suitable for
// reporting and persistence alongside the transcript.
type Summary struct {
	TotalPromptTokens     int          `json:"total_prompt_tokens"`
	TotalCompletionTokens int          `json:"total_completion_tokens"`
	TotalTokens           int          `json:"total_tokens"`
	TotalCostUSD          float64      `json:"total_cost_usd"`
	PerModel              []ModelUsage `json:"per_model,omitempty"`
}

// Tracker records token usage per model and computes estimated cost from a
// pricing table. Safe for concurrent use.
type Tracker struct {
	mu      sync.Mutex
	pricing map[string]Pricing
	byModel map[string]*ModelUsage
	order   []string
}

// NewTracker constructs a Tracker with the default pricing table.
func NewTracker() *Tracker {
	return NewTrackerWithPricing(DefaultPricing())
}

// NewTrackerWithPricing constructs a Tracker with a custom pricing table.
func NewTrackerWithPricing(pricing map[string]Pricing) *Tracker {
	if pricing == nil {
		pricing = map[string]Pricing{}
	}
	return &Tracker{pricing: pricing, byModel: map[string]*ModelUsage{}}
}

// Record accumulates one completion's token usage for the given model. Nil
// usage (providers that do not report it) is ignored.
func (t *Tracker) Record(modelID string, u *model.TokenUsage) {
	if u == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	mu, ok := t.byModel[modelID]
	if !ok {
		mu = &ModelUsage{Model: modelID}
		t.byModel[modelID] = mu
		t.order = append(t.order, modelID)
	}
	mu.Calls++
	mu.PromptTokens += u.PromptTokens
	mu.CompletionTokens += u.CompletionTokens

	price := t.pricing[modelID]
	mu.CostUSD += float64(u.PromptTokens)/1_000_000*price.InputPerMillion +
		float64(u.CompletionTokens)/1_000_000*price.OutputPerMillion
}

// Summary returns a snapshot of everything recorded so far, per model in
// first-seen order plus run-wide totals.
func (t *Tracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	var s Summary
	for _, id := range t.order {
		mu := t.byModel[id]
		s.PerModel = append(s.PerModel, *mu)
		s.TotalPromptTokens += mu.PromptTokens
		s.TotalCompletionTokens += mu.CompletionTokens
		s.TotalCostUSD += mu.CostUSD
	}
	s.TotalTokens = s.TotalPromptTokens + s.TotalCompletionTokens
	return s
}
