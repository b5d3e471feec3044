package library

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Name returns the name of the shape that this record holds.
func (s *ShapeRecord) Name() string {
	return s.name
}

// UUID returns the unique ID of this record. It is assigned when
// the record is created, and is kept across all revisions.
func (s *ShapeRecord) UUID() uuid.UUID {
	return s.id
}

// Empty returns whether this record is empty or not.
// If is empty, then calling Save will result in no operation.
func (s *ShapeRecord) Empty() bool {
	return s.isEmpty
}

// ReadOnly reports whether this record is read only.
func (s *ShapeRecord) ReadOnly() bool {
	return s.isReadOnly
}

// Len returns the count of revisions in this record.
func (s *ShapeRecord) Len() int {
	if s.isEmpty {
		return 0
	}
	return int(s.barrierRight-s.barrierLeft) + 1
}

// MaxLimit returns the count of revisions that this record could hold.
func (s *ShapeRecord) MaxLimit() uint {
	return s.maxLimit
}

// AllRevisionTime returns the unix time of all revisions in this record,
// from the earliest one to the latest one.
func (s *ShapeRecord) AllRevisionTime() []int64 {
	return slices.Clone(s.revisionUnixTime)
}

// SetMaxLimit sets the record could hold how many revisions.
// maxLimit must bigger than 0. If less, then set the limit to 1.
//
// After calling SetMaxLimit if overflow immediately, then we will
// pop some revisions from the underlying record.
// Poped revisions must be the most earliest one.
//
// Note that calling SetMaxLimit will not change the empty states
// of this record.
func (s *ShapeRecord) SetMaxLimit(maxLimit uint) (err error) {
	var success bool

	if s.isReadOnly {
		return fmt.Errorf("(s *ShapeRecord) SetMaxLimit: %w", ErrReadOnly)
	}

	backup := *s
	s.maxLimit = max(maxLimit, 1)
	if s.Len() <= int(s.maxLimit) {
		return nil
	}

	tran, err := s.db.OpenTransaction()
	if err != nil {
		*s = backup
		return fmt.Errorf("(s *ShapeRecord) SetMaxLimit: %v", err)
	}
	defer func() {
		if !success {
			_ = tran.Discard()
			*s = backup
			return
		}
		if err = tran.Commit(); err != nil {
			err = fmt.Errorf("(s *ShapeRecord) SetMaxLimit: %v", err)
			*s = backup
		}
	}()

	for s.Len() > int(s.maxLimit) {
		if err = s.pop(tran); err != nil {
			return fmt.Errorf("(s *ShapeRecord) SetMaxLimit: %v", err)
		}
	}

	success = true
	return nil
}
