package library

import (
	"bytes"
	"fmt"

	"github.com/TriM-Organization/bedrock-shape/define"
	"github.com/TriM-Organization/bedrock-shape/utils"
	"go.etcd.io/bbolt"
)

// Options is the settings of the underlying database.
type Options struct {
	// When NoGrowSync is true, skips the truncate call when growing the database.
	// Setting this to true is only safe on non-ext3/ext4 systems.
	// Skipping truncation avoids preallocation of hard drive space and
	// bypasses a truncate() and fsync() syscall on remapping.
	//   - See also: https://github.com/boltdb/bolt/issues/284
	NoGrowSync bool
	// Setting the NoSync flag will cause the database to skip fsync()
	// calls after each commit. This can be useful when bulk loading data
	// into a database and you can restart the bulk load in the event of
	// a system failure or database corruption. Do not set this flag for
	// normal use.
	//
	// THIS IS UNSAFE. PLEASE USE WITH CAUTION.
	NoSync bool
	// MaxLimit is the count of revisions that a new shape record could hold.
	// If it is 0, then DefaultMaxLimit is used.
	MaxLimit uint
}

// LibraryDB implements a shape library and
// revision history provider based on bbolt.
type LibraryDB struct {
	DB
	bdb      *bbolt.DB
	sessions *InProgressSession[string]
	maxLimit uint
}

// Open open a bbolt database that used for
// the shape library whose at path.
// If not exist, then create a new database.
func Open(path string, opts Options) (result *LibraryDB, err error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{
		FreelistType: bbolt.FreelistMapType,
		NoGrowSync:   opts.NoGrowSync,
		NoSync:       opts.NoSync,
	})
	if err != nil {
		return nil, fmt.Errorf("Open: %v", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(DatabaseRootKey); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(DatabaseKeyShapeIndex)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("Open: %v", err)
	}

	maxLimit := opts.MaxLimit
	if maxLimit == 0 {
		maxLimit = DefaultMaxLimit
	}

	return &LibraryDB{
		DB:       &database{bdb: db},
		bdb:      db,
		sessions: NewInProgressSession[string](),
		maxLimit: maxLimit,
	}, nil
}

// UnderlyingDatabase returns the underlying database that this library used.
func (l *LibraryDB) UnderlyingDatabase() *bbolt.DB {
	return l.bdb
}

// ListShapes returns the names of all shapes in this library,
// in the byte order of their names.
func (l *LibraryDB) ListShapes() (names []string, err error) {
	err = l.bdb.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(DatabaseKeyShapeIndex).ForEach(func(k, _ []byte) error {
			names = append(names, string(bytes.Clone(k)))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("ListShapes: %v", err)
	}
	return
}

// ShapeCount returns the count of shapes in this library.
func (l *LibraryDB) ShapeCount() (count int, err error) {
	return int(utils.BytesUint32(l.Get(DatabaseKeyShapeCount))), nil
}

// Store appends s as the latest revision of the shape whose name is name,
// and the record of this shape is saved at once.
func (l *LibraryDB) Store(name string, s *define.Shape, unixTime int64) error {
	record, err := l.NewShapeRecord(name, false)
	if err != nil {
		return fmt.Errorf("Store: %v", err)
	}

	if err = record.Append(s, unixTime); err != nil {
		record.SaveNOP()
		return fmt.Errorf("Store: %v", err)
	}
	if err = record.Save(); err != nil {
		record.SaveNOP()
		return fmt.Errorf("Store: %v", err)
	}

	return nil
}

// Load returns the latest revision of the shape whose name is name.
func (l *LibraryDB) Load(name string) (result *define.Shape, err error) {
	record, err := l.NewShapeRecord(name, true)
	if err != nil {
		return nil, fmt.Errorf("Load: %v", err)
	}
	defer record.SaveNOP()

	if record.Empty() {
		return nil, fmt.Errorf("Load: %w (%s)", ErrShapeNotFound, name)
	}

	result, _, err = record.Last()
	if err != nil {
		return nil, fmt.Errorf("Load: %v", err)
	}
	return result, nil
}

// CloseLibraryDB closed the library database.
// It will wait until all the records in use
// are released before closing the database.
func (l *LibraryDB) CloseLibraryDB() error {
	for _, value := range l.sessions.Close() {
		<-value.Done()
	}

	err := l.Close()
	if err != nil {
		return fmt.Errorf("CloseLibraryDB: %v", err)
	}
	return nil
}
