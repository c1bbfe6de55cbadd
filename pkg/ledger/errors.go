package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned for an empty name or an absent or
	// non-positive amount. The ledger is never mutated in that case.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEntryNotFound is returned when removing from a name that is not in
	// the ledger.
	ErrEntryNotFound = errors.New("entry not found")
)

// NotFoundError names the entry a remove could not find.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Gene %q does not exist.", e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrEntryNotFound
}
