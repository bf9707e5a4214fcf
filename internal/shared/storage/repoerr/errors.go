// Package repoerr defines the closed error vocabulary of the repository tier.
// Adapters map every storage failure onto one of these three values; the
// service tier translates them into its own vocabulary and never sees the
// underlying driver error.
package repoerr

import "errors"

var (
	// ErrNotFound indicates a query returned zero rows where one was expected.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidID indicates the supplied id is not a well-formed identifier.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrUnknown covers any other storage failure.
	ErrUnknown = errors.New("storage failure")
)
