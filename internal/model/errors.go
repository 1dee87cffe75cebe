package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Ingestion errors
	ErrFutureResult    = errors.New("result puzzle number is in the future")
	ErrDuplicateResult = errors.New("result already recorded for this puzzle number")
	ErrInvalidScore    = errors.New("invalid score")

	// Handle resolution errors
	ErrUnknownHandle   = errors.New("handle does not match any member")
	ErrAmbiguousHandle = errors.New("handle prefix matches more than one member")

	// Directory errors
	ErrDirectoryUnavailable = errors.New("member directory unavailable")
)
