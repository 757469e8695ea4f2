// Package logging provides a tiny abstraction over slog so downstream code
// can depend on a minimal interface (Logger) while allowing users to plug any
// structured logger. The built-in constructor produces JSON or text slog
// handlers; NoOpLogger discards everything and is the default for library
// consumers that do not care about logs.
package logging
