package resumes

import "errors"

var (
	// ErrNotFound indicates the resume does not exist.
	ErrNotFound = errors.New("resume not found")

	// ErrUserNotFound indicates the owning user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
