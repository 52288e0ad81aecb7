package errorvalues

import "errors"

var (
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	ErrInvalidGoal        = errors.New("daily goal must be greater than zero")
	ErrEmptyHistory       = errors.New("no intake history")
	ErrStorage            = errors.New("storage error")
	ErrInvalidRequest     = errors.New("invalid request")
)

// StorageError is an opaque failure of the event store. It is handed to the caller as is.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + " error: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
