package domain

import "errors"

// Sentinel errors shared by services and handlers.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// StorageError is the single error shape the storage layer escalates.
// IsConnectionError tells callers whether the failure was a transient
// infrastructure problem (worth a "try again") or a hard failure.
type StorageError struct {
	Op                string
	Message           string
	Err               error
	IsConnectionError bool
}

// NewStorageError returns a StorageError for op wrapping err.
func NewStorageError(op, message string, err error, isConnection bool) *StorageError {
	return &StorageError{
		Op:                op,
		Message:           message,
		Err:               err,
		IsConnectionError: isConnection,
	}
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

// Retryable reports whether a client may sensibly retry the request.
func (e *StorageError) Retryable() bool { return e.IsConnectionError }

// IsConnectionError reports whether err carries a connection-class StorageError.
func IsConnectionError(err error) bool {
	var se *StorageError
	return errors.As(err, &se) && se.IsConnectionError
}
