package services

import "errors"

// ValidationError reports a rejected payload. The store is never
// touched when one is returned.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

// NotFoundError reports an id that resolves to no row.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

var (
	// ErrNoFieldsToUpdate is returned when an update carries no
	// recognized fields.
	ErrNoFieldsToUpdate = errors.New("no valid data to update")

	// ErrBrandInUse rejects deleting a brand that still owns
	// products or magazines.
	ErrBrandInUse = errors.New("brand still has products or magazines")
)
