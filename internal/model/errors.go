package model

import "errors"

// Failure kinds surfaced by the engine. Every failure is either a
// caller input error or a precondition failure; retrying without
// changing the input cannot resolve any of them, so nothing in the
// engine retries internally.
var (
	// ErrInvalidWindow means a requested aggregation span exceeds the
	// granularity's maximum. Surfaced verbatim, never silently truncated.
	ErrInvalidWindow = errors.New("invalid aggregation window")

	// ErrInsufficientData means the load curve is too short or sparse to
	// compute the requested quantity. Classification fails rather than
	// guessing a label.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrUnknownCustomer means the identifier was not found in the load
	// curve store or customer directory.
	ErrUnknownCustomer = errors.New("unknown customer")

	// ErrCatalogUnavailable means the static offer/challenge catalog
	// failed to load. Fatal to the invoking call.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
