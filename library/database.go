package library

import (
	"bytes"

	"go.etcd.io/bbolt"
)

// database wrapper a bbolt database,
// and expose some useful functions.
type database struct {
	bdb *bbolt.DB
}

// Has returns true if the DB does contains the given key.
func (db *database) Has(key []byte) (has bool) {
	_ = db.bdb.View(func(tx *bbolt.Tx) error {
		has = tx.Bucket(DatabaseRootKey).Get(key) != nil
		return nil
	})
	return
}

// Get gets the value for the given key.
// The returned slice is its own copy, it is safe to modify the contents
// of the returned slice.
//
// Note that if the key is not exist, then return nil value.
func (db *database) Get(key []byte) (value []byte) {
	_ = db.bdb.View(func(tx *bbolt.Tx) error {
		value = bytes.Clone(tx.Bucket(DatabaseRootKey).Get(key))
		return nil
	})
	return
}

// Put sets the value for the given key. It overwrites any previous value
// for that key; a DB is not a multi-map.
func (db *database) Put(key []byte, value []byte) error {
	return db.bdb.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(DatabaseRootKey).Put(key, value)
	})
}

// Delete deletes the value for the given key.
// Delete will not returns error if key doesn't exist.
func (db *database) Delete(key []byte) error {
	return db.bdb.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(DatabaseRootKey).Delete(key)
	})
}

// Close closes the DB.
func (db *database) Close() error {
	return db.bdb.Close()
}

// OpenTransaction opens a read-write transaction.
// Only one transaction can be opened at a time. Subsequent call to
// Put, Delete and OpenTransaction will be blocked until in-flight
// transaction is committed or discarded.
//
// The transaction must be closed once done, either by committing or discarding
// the transaction.
func (db *database) OpenTransaction() (Transaction, error) {
	tx, err := db.bdb.Begin(true)
	if err != nil {
		return nil, err
	}
	return &transaction{tx: tx}, nil
}

// transaction wrapper a bbolt transaction,
// and expose some useful functions.
type transaction struct {
	tx *bbolt.Tx
}

// Has returns true if the DB does contains the given key.
func (t *transaction) Has(key []byte) (has bool) {
	return t.tx.Bucket(DatabaseRootKey).Get(key) != nil
}

// Get gets the value for the given key.
// The returned slice is its own copy, it is safe to modify the contents
// of the returned slice.
//
// Note that if the key is not exist, then return nil value.
func (t *transaction) Get(key []byte) (value []byte) {
	return bytes.Clone(t.tx.Bucket(DatabaseRootKey).Get(key))
}

// Put sets the value for the given key.
// It overwrites any previous value for that key.
func (t *transaction) Put(key []byte, value []byte) error {
	return t.tx.Bucket(DatabaseRootKey).Put(key, value)
}

// Delete deletes the value for the given key.
// Delete will not returns error if key doesn't exist.
func (t *transaction) Delete(key []byte) error {
	return t.tx.Bucket(DatabaseRootKey).Delete(key)
}

// Commit commits the transaction.
// Other methods should not be called after transaction has been committed.
func (t *transaction) Commit() error {
	return t.tx.Commit()
}

// Discard discards the transaction.
// Other methods should not be called after transaction has been discarded.
func (t *transaction) Discard() error {
	return t.tx.Rollback()
}
