package exports

import "errors"

var (
	// ErrNotFound indicates the export record does not exist.
	ErrNotFound = errors.New("export not found")

	// ErrIncompleteResume indicates the resume lacks the minimum data
	// for a rendered document.
	ErrIncompleteResume = errors.New("resume is missing a full name")
)
