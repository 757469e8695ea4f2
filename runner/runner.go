package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/roundtable-ai/roundtable/core"
	"github.com/roundtable-ai/roundtable/logging"
	"github.com/roundtable-ai/roundtable/model"
	"github.com/roundtable-ai/roundtable/prompt"
	"github.com/roundtable-ai/roundtable/usage"
)

// Status is the lifecycle state of a conversation run.
type Status string

const (
	// StatusNotStarted means Run has not been called yet.
	StatusNotStarted Status = "not_started"
	// StatusRunning means the turn loop is executing.
	StatusRunning Status = "running"
	// StatusCompleted means every turn up to the configured limit finished.
	StatusCompleted Status = "completed"
	// StatusFailed means a provider failure aborted the run mid-conversation.
	StatusFailed Status = "failed"
	// StatusInterrupted means the caller's context was cancelled mid-run.
	StatusInterrupted Status = "interrupted"
)

// TurnEvent is the progress notification emitted synchronously after each
// successful turn, exactly once per turn and never for failed turns.
type TurnEvent struct {
	Turn      int               `json:"turn"`
	Speaker   string            `json:"speaker"`
	Model     string            `json:"model"`
	Message   string            `json:"message"`
	Usage     *model.TokenUsage `json:"usage,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Result describes a finished run. Transcript is always present, partial when
// the run did not complete.
type Result struct {
	RunID       string
	Status      Status
	Transcript  *core.Transcript
	Turns       int
	StartedAt   time.Time
	CompletedAt time.Time
	Usage       usage.Summary
}

// Options hold optional collaborators passed to New.
type Options struct {
	// PromptBuilder constructs the per-turn message pair. Defaults to the
	// standard builder with full-history rendering.
	PromptBuilder *prompt.Builder
	// OnTurn receives a synchronous notification after every successful turn.
	OnTurn func(TurnEvent)
	// Tracker accumulates token usage across the run. Defaults to a fresh
	// tracker with the standard pricing table.
	Tracker *usage.Tracker
	// Logger receives structured progress logs. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Runner drives one conversation to completion. A Runner instance executes a
// single run; construct a new one per conversation.
type Runner struct {
	roster   *core.Roster
	provider model.Provider
	maxTurns int
	topic    string

	builder *prompt.Builder
	onTurn  func(TurnEvent)
	tracker *usage.Tracker
	logger  logging.Logger

	mu     sync.Mutex
	status Status
}

// New validates the configuration and constructs a Runner. Invalid rosters,
// a nil provider or a non-positive turn limit are configuration errors: the
// run never starts.
func New(roster *core.Roster, provider model.Provider, maxTurns int, topic string, optFns ...func(o *Options)) (*Runner, error) {
	if roster == nil || roster.Len() == 0 {
		return nil, &core.ConfigError{Field: "roster", Reason: "a non-empty roster is required"}
	}
	if provider == nil {
		return nil, &core.ConfigError{Field: "provider", Reason: "a completion provider is required"}
	}
	if maxTurns <= 0 {
		return nil, &core.ConfigError{Field: "maxTurns", Reason: fmt.Sprintf("must be positive, got %d", maxTurns)}
	}

	opts := Options{
		PromptBuilder: prompt.NewBuilder(),
		Tracker:       usage.NewTracker(),
		Logger:        logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Runner{
		roster:   roster,
		provider: provider,
		maxTurns: maxTurns,
		topic:    topic,
		builder:  opts.PromptBuilder,
		onTurn:   opts.OnTurn,
		tracker:  opts.Tracker,
		logger:   opts.Logger,
		status:   StatusNotStarted,
	}, nil
}

// Status returns the current lifecycle state.
func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

func (r *Runner) setStatus(s Status) {
	r.mu.Lock()
	r.status = s
	r.mu.Unlock()
}

// Run executes the turn loop until the turn limit is reached, the provider
// fails, or the context is cancelled. The returned Result carries whatever
// transcript accumulated, including on failure: a partial transcript is still
// worth persisting. The error, when non-nil, wraps the provider failure as a
// core.ProviderError (or the context error on cancellation).
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	r.mu.Lock()
	if r.status != StatusNotStarted {
		r.mu.Unlock()
		return nil, &core.ConfigError{Field: "runner", Reason: "a runner executes a single run; construct a new one"}
	}
	r.status = StatusRunning
	r.mu.Unlock()

	result := &Result{
		RunID:      core.NewID(),
		Transcript: core.NewTranscript(),
		StartedAt:  time.Now().UTC(),
	}
	log := r.logger

	log.Info("conversation started",
		"run_id", result.RunID,
		"participants", r.roster.Len(),
		"max_turns", r.maxTurns,
		"provider", r.provider.Info().Provider,
	)

	for turn := 0; turn < r.maxTurns; turn++ {
		speaker := r.roster.At(turn)
		messages := r.builder.Build(speaker, result.Transcript, r.topic)

		log.Debug("requesting completion", "run_id", result.RunID, "turn", turn, "speaker", speaker.Name, "model", speaker.Model)

		resp, err := r.provider.Complete(ctx, model.Request{
			Model:    speaker.Model,
			Messages: messages,
			Sampling: speaker.Sampling,
		})
		if err != nil {
			result.CompletedAt = time.Now().UTC()
			result.Usage = r.tracker.Summary()
			if ctx.Err() != nil {
				r.setStatus(StatusInterrupted)
				result.Status = StatusInterrupted
				log.Warn("conversation interrupted", "run_id", result.RunID, "turn", turn, "completed_turns", result.Turns)
				return result, fmt.Errorf("run interrupted on turn %d: %w", turn, ctx.Err())
			}
			r.setStatus(StatusFailed)
			result.Status = StatusFailed
			provErr := &core.ProviderError{Model: speaker.Model, Turn: turn, Err: err}
			log.Error("conversation failed", "run_id", result.RunID, "turn", turn, "speaker", speaker.Name, "error", err)
			return result, provErr
		}

		// Commit before notifying so listeners observe a transcript that
		// already contains the turn they are being told about.
		result.Transcript.Append(speaker.Name, resp.Text)
		result.Turns++
		r.tracker.Record(speaker.Model, resp.Usage)

		if r.onTurn != nil {
			r.onTurn(TurnEvent{
				Turn:      turn,
				Speaker:   speaker.Name,
				Model:     speaker.Model,
				Message:   resp.Text,
				Usage:     resp.Usage,
				Timestamp: time.Now().UTC(),
			})
		}

		log.Debug("turn committed", "run_id", result.RunID, "turn", turn, "speaker", speaker.Name, "transcript_len", result.Transcript.Len())
	}

	r.setStatus(StatusCompleted)
	result.Status = StatusCompleted
	result.CompletedAt = time.Now().UTC()
	result.Usage = r.tracker.Summary()

	log.Info("conversation completed", "run_id", result.RunID, "turns", result.Turns, "total_tokens", result.Usage.TotalTokens)
	return result, nil
}
