package download

import (
	"errors"
	"fmt"
)

// ErrTerminal is returned when an operation needs a transfer that is still running.
var ErrTerminal = errors.New("download already terminated")

// TransferError is a failure reported by the transfer engine. It is always
// terminal and never retried.
type TransferError struct {
	Code int
	Err  error
}

func (e *TransferError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("transfer failed (code %d)", e.Code)
	}
	return fmt.Sprintf("transfer failed (code %d): %v", e.Code, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// StorageWriteError is a failed write to the persistent record. The download
// state is not rolled back when one occurs.
type StorageWriteError struct {
	ObjectID string
	Op       string
	Err      error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("journal %s %s: %v", e.Op, e.ObjectID, e.Err)
}

func (e *StorageWriteError) Unwrap() error {
	return e.Err
}
