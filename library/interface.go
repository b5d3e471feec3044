package library

import (
	"github.com/TriM-Organization/bedrock-shape/define"
	"go.etcd.io/bbolt"
)

// DatabaseOperation represents some basic
// operation that a database should be implement.
type DatabaseOperation interface {
	Delete(key []byte) error
	Get(key []byte) (value []byte)
	Has(key []byte) (has bool)
	Put(key []byte, value []byte) error
}

// Transaction represents a transaction of database.
type Transaction interface {
	DatabaseOperation
	Commit() error
	Discard() error
}

// DB represent to a database that implements some basic funtions.
type DB interface {
	DatabaseOperation
	OpenTransaction() (Transaction, error)
	Close() error
}

// LibraryDatabase is a database that holds named
// shapes and the revision history of them.
type LibraryDatabase interface {
	DB

	// UnderlyingDatabase returns the underlying database that this library used.
	UnderlyingDatabase() *bbolt.DB

	// NewShapeRecord gets the record of the shape whose name is name.
	// See (*LibraryDB).NewShapeRecord for more information.
	NewShapeRecord(name string, readOnly bool) (result *ShapeRecord, err error)

	// DeleteShape delete the record of the shape whose name is name.
	DeleteShape(name string) error

	// ListShapes returns the names of all shapes in this library.
	ListShapes() (names []string, err error)

	// ShapeCount returns the count of shapes in this library.
	ShapeCount() (count int, err error)

	// Store appends s as the latest revision of the shape whose name is name.
	Store(name string, s *define.Shape, unixTime int64) error

	// Load returns the latest revision of the shape whose name is name.
	Load(name string) (result *define.Shape, err error)

	// CloseLibraryDB closed the library database.
	// It will wait until all the records in use are
	// released before closing the database.
	CloseLibraryDB() error
}
