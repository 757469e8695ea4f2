// Package runner implements the conversation orchestration loop.
//
// The Runner owns one conversation run from start to finish: it selects the
// next speaker by strict round-robin rotation, builds the prompt from the
// shared transcript, invokes the completion provider, commits the response,
// and notifies progress listeners. Turns are strictly sequential because each
// speaker conditions its response on the full transcript including the
// immediately preceding turn; the provider call is the sole suspension point
// of a turn.
//
// Failure policy is abort-the-run: a provider failure ends the run without
// retrying or skipping, because a missing turn would skew the round-robin
// rotation for every subsequent speaker. The transcript accumulated up to the
// failure survives and remains eligible for persistence.
package runner
