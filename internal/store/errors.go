package store

import (
	"errors"
	"fmt"
)

// DuplicateIDError reports an insert whose ID is already present.
// Recoverable: the insert has no side effects.
type DuplicateIDError struct {
	ID int32
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("record with ID=%d already exists", e.ID)
}

// NotFoundError reports an update, delete or query on a missing ID.
type NotFoundError struct {
	ID int32
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("record with ID=%d does not exist", e.ID)
}

// IsDuplicateID returns true if the error is a duplicate-ID failure.
// Uses errors.As to handle wrapped errors.
func IsDuplicateID(err error) bool {
	var de *DuplicateIDError
	return errors.As(err, &de)
}

// IsNotFound returns true if the error is a missing-ID failure.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}
