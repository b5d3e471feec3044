package library

import (
	"fmt"

	"github.com/TriM-Organization/bedrock-shape/utils"
)

// SaveNOP releases current record, and don't do
// more things (will not change ths database).
func (s *ShapeRecord) SaveNOP() {
	s.releaseFunc()
}

// Save saves current record into the underlying database,
// and also release current record.
//
// That means, if you calling Save and get a nil error,
// then this record is released and can't be used again.
//
// But, if Save returned non-nil error, then this object
// will not released.
//
// Additionally, if current record is marked as empty or
// read only, then calling Save will only release this
// object and don't do further operation.
//
// Save must calling at the last modification of the record;
// otherwise, the record will not be able to maintain data consistency.
func (s *ShapeRecord) Save() (err error) {
	var success bool

	if s.isEmpty || s.isReadOnly {
		s.releaseFunc()
		return nil
	}

	tran, err := s.db.OpenTransaction()
	if err != nil {
		return fmt.Errorf("(s *ShapeRecord) Save: %v", err)
	}
	defer func() {
		if !success {
			_ = tran.Discard()
			return
		}
		if err = tran.Commit(); err != nil {
			err = fmt.Errorf("(s *ShapeRecord) Save: %v", err)
			return
		}
		s.isNew = false
		s.releaseFunc()
	}()

	// Global data
	{
		gzipBytes, err := utils.Gzip(s.encodeGlobalData())
		if err != nil {
			return fmt.Errorf("(s *ShapeRecord) Save: %v", err)
		}
		err = tran.Put(Sum(s.name, KeyGlobalData), gzipBytes)
		if err != nil {
			return fmt.Errorf("(s *ShapeRecord) Save: %v", err)
		}
	}

	// Shape Index
	if s.isNew {
		bucket := tran.(*transaction).tx.Bucket(DatabaseKeyShapeIndex)
		if bucket.Get([]byte(s.name)) == nil {
			err = bucket.Put([]byte(s.name), []byte{1})
			if err != nil {
				return fmt.Errorf("(s *ShapeRecord) Save: %v", err)
			}
			err = tran.Put(
				DatabaseKeyShapeCount,
				utils.Uint32BinaryAdd(tran.Get(DatabaseKeyShapeCount), []byte{0, 0, 0, 0}, 1),
			)
			if err != nil {
				return fmt.Errorf("(s *ShapeRecord) Save: %v", err)
			}
		}
	}

	success = true
	return nil
}
