// Package model defines the provider-agnostic abstraction Roundtable uses to
// talk to text-generation backends.
//
// Core goals:
//   - Keep request/response shapes minimal and transport independent
//   - Carry per-participant sampling parameters on every request
//   - Facilitate lightweight mocking for tests (MockProvider)
//
// Providers (e.g. OpenAI, Anthropic) implement the Provider interface from
// this package so the orchestration layer remains decoupled from vendor SDKs.
// Which concrete provider serves a run is decided once at startup, never
// inside the turn loop.
package model
