package core

import "fmt"

// ConfigError reports an invalid or incomplete configuration (roster entries,
// turn limits, missing credentials). It is fatal before the run starts: the
// conversation never begins with a broken setup.
type ConfigError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config error: %s", e.Reason)
	}
	return fmt.Sprintf("config error: %s: %s", e.Field, e.Reason)
}

// ProviderError reports a failed completion call. It aborts the current run
// (no retry, no skipped turn: a missing turn would break round-robin fairness
// for every subsequent speaker) but leaves the accumulated transcript intact.
type ProviderError struct {
	Model string
	Turn  int
	Err   error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error on turn %d (model %s): %v", e.Turn, e.Model, e.Err)
}

// Unwrap exposes the underlying provider failure for errors.Is/As.
func (e *ProviderError) Unwrap() error { return e.Err }

// PersistenceError reports a failed transcript save. It is fatal to the save
// step only; the in-memory transcript remains available for a retry or an
// alternate save path.
type PersistenceError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("persistence error: %v", e.Err)
	}
	return fmt.Sprintf("persistence error writing %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying write failure for errors.Is/As.
func (e *PersistenceError) Unwrap() error { return e.Err }
