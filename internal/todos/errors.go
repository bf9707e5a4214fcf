package todos

import (
	"errors"

	"todo-backend/internal/shared/storage/repoerr"
)

var (
	// ErrNotFound indicates the todo does not exist.
	ErrNotFound = errors.New("todo not found")

	// ErrBadInput indicates validation failed or the identifier is malformed.
	ErrBadInput = errors.New("bad input")

	// ErrUnknown indicates a storage-layer failure.
	ErrUnknown = errors.New("unknown failure")
)

// fromRepository translates repository-tier errors into the service
// vocabulary. Every error crossing the boundary is reinterpreted; none
// pass through unchanged.
func fromRepository(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repoerr.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repoerr.ErrInvalidID):
		return ErrBadInput
	default:
		return ErrUnknown
	}
}
