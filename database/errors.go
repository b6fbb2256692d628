package database

import "fmt"

// InitError is returned when the store cannot be opened or its schema cannot be
// ensured. The process must not start after one.
type InitError struct {
	Op  string
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// StorageError is returned when a single statement against an open store fails.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
