package models

import "errors"

// Failure taxonomy shared across the pipeline and the serving layer. All
// wrapping errors stay errors.Is-compatible with these sentinels.
var (
	// ErrSourceUnavailable: an upstream fetch failed after exhausting
	// retries. Fatal to the run; previously persisted tables are untouched.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrNoData: the upstream answered but has nothing for the symbol or
	// query. Not retryable.
	ErrNoData = errors.New("no data from source")

	// ErrInsufficientHistory: fewer rows than one window length. Fatal to
	// the stage that needs them.
	ErrInsufficientHistory = errors.New("insufficient history")

	// ErrStorageUnavailable: a persisted table is missing or corrupt at
	// serving time. Surfaced as a server error, never as an empty success.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
