package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotLoaded indicates the dataset has not been loaded yet.
	ErrNotLoaded = errors.New("dataset not loaded")

	// Load Errors.

	// ErrTransport indicates the dataset could not be fetched.
	// Covers network failures and non-success HTTP responses.
	ErrTransport = errors.New("transport failure")

	// ErrParse indicates the fetched content is not valid CSV.
	ErrParse = errors.New("parse failure")

	// ErrTerminal indicates the view is in its terminal error state.
	// No further aggregation is performed after a failed load.
	ErrTerminal = errors.New("view is in terminal error state")
)

// IsLoadError reports whether err is a transport or parse failure.
func IsLoadError(err error) bool {
	return errors.Is(err, ErrTransport) || errors.Is(err, ErrParse)
}
