package library

import "errors"

var (
	// ErrShapeNotFound is returned when loading a shape that is not in the library.
	ErrShapeNotFound = errors.New("shape not found in library")
	// ErrDatabaseClosed is returned when requiring a record from a closed library.
	ErrDatabaseClosed = errors.New("underlying database is closed")
	// ErrReadOnly is returned when modifying a read only record.
	ErrReadOnly = errors.New("shape record is read only")
	// ErrRevisionOutOfRange is returned when jumping to a revision that is not exist.
	ErrRevisionOutOfRange = errors.New("revision out of range")
)
