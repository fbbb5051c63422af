package payments

import "errors"

var (
	// ErrNotFound indicates no subscription matches.
	ErrNotFound = errors.New("subscription not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict indicates the subscription is not in a state that
	// allows the requested transition.
	ErrConflict = errors.New("subscription state conflict")
)
