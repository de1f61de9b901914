// Package exitcode defines exit codes for the CLI.
package exitcode

// Distinct codes per failure class so shell callers can react, in
// particular to tell "queued for retry" apart from "rejected".
const (
	// Success indicates the task was submitted (or there was nothing to do).
	Success = 0

	// UserError indicates invalid input (e.g. multiple list markers).
	UserError = 1

	// AuthError indicates a missing credential or fatal startup condition.
	AuthError = 2

	// BackendError indicates submission failed; the input was queued for retry.
	BackendError = 3
)
