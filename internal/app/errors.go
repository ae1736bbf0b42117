package app

import "errors"

// Application errors.
var (
	// ErrQuit signals a user-requested exit. Callers treat it as a clean
	// shutdown, not a failure.
	ErrQuit = errors.New("quit requested")

	// ErrNoBackend is returned when Run is called before SetBackend.
	ErrNoBackend = errors.New("no backend set")
)
