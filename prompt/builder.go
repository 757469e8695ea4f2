// Package prompt constructs the per-turn message pair sent to the completion
// provider: the speaking participant's persona as the system message and a
// user message that either opens the conversation on the configured topic or
// continues it from the shared transcript.
package prompt

import (
	"fmt"

	"github.com/roundtable-ai/roundtable/core"
	"github.com/roundtable-ai/roundtable/model"
)

const (
	openingTemplate = `You are %s.
The topic to discuss is: %s

Start the conversation by introducing the topic and asking an opening question.`

	continuationTemplate = `You are %s.

The conversation so far is:
%s

Now respond with what you would like to say next, as %s. Be natural and conversational.`
)

// HistoryRenderer turns the transcript into the history text embedded in
// continuation prompts. The default renders the full transcript verbatim;
// deployments that outgrow their context window can plug in truncation or
// summarization here without touching the turn loop.
type HistoryRenderer func(t *core.Transcript) string

// Options configure a Builder.
type Options struct {
	HistoryRenderer HistoryRenderer
}

// Builder produces the system/user message pair for a turn.
type Builder struct {
	renderHistory HistoryRenderer
}

// NewBuilder constructs a Builder with optional overrides.
func NewBuilder(optFns ...func(o *Options)) *Builder {
	opts := Options{
		HistoryRenderer: func(t *core.Transcript) string { return t.Format() },
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Builder{renderHistory: opts.HistoryRenderer}
}

// Build returns the message pair for the participant's turn. The persona
// instruction is passed through verbatim as the system message. The user
// message opens on the topic when no turn has completed yet, and otherwise
// embeds the rendered history of all committed turns. The speaker's own
// about-to-be-generated message is never part of its own input.
func (b *Builder) Build(p core.Participant, transcript *core.Transcript, topic string) []model.Message {
	var user string
	if transcript.Len() == 0 {
		user = fmt.Sprintf(openingTemplate, p.Name, topic)
	} else {
		user = fmt.Sprintf(continuationTemplate, p.Name, b.renderHistory(transcript), p.Name)
	}
	return []model.Message{
		{Role: model.RoleSystem, Content: p.Persona},
		{Role: model.RoleUser, Content: user},
	}
}
