// Package core provides the foundational domain types used by Roundtable. It
// defines the core abstractions for:
//
//   - Participants (conversational agents with a fixed persona and backend model)
//   - Rosters (the ordered, immutable speaking lineup of a conversation)
//   - Transcripts (append-only chronological records of spoken turns)
//   - The shared error taxonomy (configuration, provider, persistence)
//
// The package intentionally keeps implementation concerns (model providers,
// prompt construction, orchestration, persistence) out of scope so higher
// layers can depend on small stable contracts.
package core
