package session

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingURL is returned when a persisted entry has no usable url field.
	ErrMissingURL = errors.New("missing url")
	// ErrUnrecognizedShape is returned when persisted data matches no known session shape.
	ErrUnrecognizedShape = errors.New("unrecognized session shape")
)

// DecodeError reports malformed persisted session data.
// Entry is the position of the offending entry, or -1 when the problem is not
// tied to a single entry.
type DecodeError struct {
	Entry int
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Entry < 0 {
		return fmt.Sprintf("decode session: %v", e.Err)
	}
	return fmt.Sprintf("decode session: entry %d: %v", e.Entry, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// RestoreError reports that a tab's snapshot could not be applied to its surface.
// The surface is left untouched by the failed attempt.
type RestoreError struct {
	Tab int
	Err error
}

func (e *RestoreError) Error() string {
	return fmt.Sprintf("restore tab %d: %v", e.Tab, e.Err)
}

func (e *RestoreError) Unwrap() error {
	return e.Err
}
