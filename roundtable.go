// Package roundtable provides a high-level façade over the conversation
// engine: a fixed roster of model-backed participants speaking in round-robin
// order about a shared topic, with the growing transcript re-fed into every
// prompt. Most applications interact with this package by:
//  1. Building a core.Roster and a model.Provider (openai, anthropic, or a
//     local OpenAI-compatible server)
//  2. Creating a Conversation via New() (optionally overriding the prompt
//     builder, usage tracker, store and logger)
//  3. Calling Run, or RunAndSave to also persist the transcript
//
// The façade delegates orchestration to runner.Runner while keeping setup
// ergonomics concise. All defaults are safe for local development; production
// deployments typically supply a durable store and a structured logger.
package roundtable

import (
	"context"
	"errors"

	"github.com/roundtable-ai/roundtable/core"
	"github.com/roundtable-ai/roundtable/logging"
	"github.com/roundtable-ai/roundtable/model"
	"github.com/roundtable-ai/roundtable/prompt"
	"github.com/roundtable-ai/roundtable/runner"
	"github.com/roundtable-ai/roundtable/store"
	"github.com/roundtable-ai/roundtable/usage"
)

// Options configures a Conversation.
type Options struct {
	// PromptBuilder constructs per-turn message pairs (defaults to the
	// standard full-history builder).
	PromptBuilder *prompt.Builder
	// Tracker accumulates token usage (defaults to the standard pricing table).
	Tracker *usage.Tracker
	// Store persists the finished transcript in RunAndSave (defaults to an
	// in-memory store).
	Store store.Store
	// Logger receives structured progress logs (defaults to NoOpLogger).
	Logger logging.Logger
	// OnTurn receives a synchronous progress notification per successful turn.
	OnTurn func(runner.TurnEvent)
}

// Conversation aggregates the roster, provider and collaborators for one or
// more runs of the same lineup. Each Run spins up a fresh runner and a fresh
// transcript.
type Conversation struct {
	roster   *core.Roster
	provider model.Provider
	maxTurns int
	topic    string
	opts     Options
}

// New validates the setup and creates a Conversation. Any unset collaborator
// is defaulted to an in-memory / no-op implementation.
func New(roster *core.Roster, provider model.Provider, maxTurns int, topic string, optFns ...func(o *Options)) (*Conversation, error) {
	opts := Options{
		PromptBuilder: prompt.NewBuilder(),
		Store:         store.NewInMemoryStore(),
		Logger:        logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	// Construct a throwaway runner purely to fail fast on configuration
	// errors before the caller gets a Conversation back.
	if _, err := runner.New(roster, provider, maxTurns, topic); err != nil {
		return nil, err
	}

	return &Conversation{
		roster:   roster,
		provider: provider,
		maxTurns: maxTurns,
		topic:    topic,
		opts:     opts,
	}, nil
}

// Run executes one full conversation. The returned Result always carries the
// transcript accumulated so far, even when err is non-nil (provider failure
// or cancellation).
func (c *Conversation) Run(ctx context.Context) (*runner.Result, error) {
	tracker := c.opts.Tracker
	if tracker == nil {
		tracker = usage.NewTracker()
	}
	r, err := runner.New(c.roster, c.provider, c.maxTurns, c.topic, func(o *runner.Options) {
		o.PromptBuilder = c.opts.PromptBuilder
		o.Tracker = tracker
		o.Logger = c.opts.Logger
		o.OnTurn = c.opts.OnTurn
	})
	if err != nil {
		return nil, err
	}
	return r.Run(ctx)
}

// RunAndSave executes one full conversation and persists the outcome,
// including partial transcripts from failed or interrupted runs (explicitly
// marked as such in the record). A persistence failure never discards the
// run: the record is returned alongside the joined error so the caller can
// retry an alternate save path.
func (c *Conversation) RunAndSave(ctx context.Context) (*store.RunRecord, *runner.Result, error) {
	result, runErr := c.Run(ctx)
	if result == nil {
		return nil, nil, runErr
	}

	rec := store.NewRecord(result, c.roster, c.topic, runErr)

	// Persist with a background context: a cancelled run should still get
	// its partial transcript written out.
	if saveErr := c.opts.Store.Save(context.WithoutCancel(ctx), rec); saveErr != nil {
		return rec, result, errors.Join(runErr, saveErr)
	}
	return rec, result, runErr
}
