package connection

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedCursor is wrapped into every decode failure that is not a
	// type mismatch: bad base64, wrong prefix, wrong field count, bad index.
	ErrMalformedCursor = errors.New("malformed cursor")

	// ErrInvalidPageSize is returned when FindOptions.First is zero or negative.
	ErrInvalidPageSize = errors.New("page size must be greater than zero")

	// ErrMissingQuerySource is returned when Paginate is called without a source.
	ErrMissingQuerySource = errors.New("no query source supplied")
)

// TypeMismatchError is returned when a cursor minted for one entity type is
// used to paginate another.
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cursor type mismatch: expected %q, got %q", e.Expected, e.Actual)
}

// StaleCursorError is returned when cursor validation is enabled and the row
// at the cursor's recorded offset no longer carries the cursor's id.
type StaleCursorError struct {
	ID    string
	Index int
}

func (e *StaleCursorError) Error() string {
	return fmt.Sprintf("stale cursor: entity %q no longer occupies offset %d", e.ID, e.Index)
}

// UnsupportedOrderFieldError is returned when the caller's field mapping
// rejects the requested logical order field.
type UnsupportedOrderFieldError struct {
	Field string
}

func (e *UnsupportedOrderFieldError) Error() string {
	return fmt.Sprintf("unsupported order field %q", e.Field)
}
