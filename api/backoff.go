// Package api
// Author: momentics@gmail.com
//
// Contention backoff policy for CAS retry loops.

package api

// BackoffPolicy paces retries of a contended atomic operation.
type BackoffPolicy interface {
	// Wait pauses the caller according to the current budget and grows
	// the budget for the next failure. Never called before a first attempt.
	Wait()
	// Reset restores the initial budget for a new logical operation.
	Reset()
}
