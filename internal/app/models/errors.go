package models

import "errors"

// Domain specific errors. Messages on the exported sentinels are the
// exact strings surfaced to API clients; upstream causes are logged
// server-side and never leak into response bodies.
var (
	ErrValidation       = errors.New("validation failed")
	ErrCountryMissing   = errors.New("Destination is required")
	ErrQueryMissing     = errors.New("Missing query 'q' in body")
	ErrLLMKeyMissing    = errors.New("GROQ API key not configured")
	ErrSearchKeyMissing = errors.New("SERP API key not configured")
	ErrSearchFailed     = errors.New("Failed to get search results")
	ErrPlanFailed       = errors.New("Failed to generate travel plan")
)

// StatusError pairs an error with the HTTP status it should surface as.
// The central error-handling middleware unwraps it; anything that is
// not a StatusError defaults to 500.
type StatusError struct {
	Status int
	Err    error
}

func (e *StatusError) Error() string { return e.Err.Error() }

func (e *StatusError) Unwrap() error { return e.Err }

// WithStatus wraps err with an explicit HTTP status.
func WithStatus(status int, err error) *StatusError {
	return &StatusError{Status: status, Err: err}
}

// HTTPStatus returns the status carried by err, or fallback when err
// carries none.
func HTTPStatus(err error, fallback int) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return fallback
}
