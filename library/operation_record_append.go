package library

import (
	"bytes"
	"fmt"

	"github.com/TriM-Organization/bedrock-shape/define"
	"github.com/TriM-Organization/bedrock-shape/marshal"
	"github.com/TriM-Organization/bedrock-shape/utils"
)

// "appendPayload" is an internal implement detail.
func (s *ShapeRecord) appendPayload(payload []byte, unixTime int64, tran Transaction) error {
	if !s.isEmpty {
		patch, err := NewPatch(payload, s.latestPayload)
		if err != nil {
			return fmt.Errorf("appendPayload: %v", err)
		}
		err = tran.Put(IndexPatch(s.name, s.barrierRight), patch)
		if err != nil {
			return fmt.Errorf("appendPayload: %v", err)
		}
		s.barrierRight++
	} else {
		s.barrierLeft, s.barrierRight = 0, 0
		s.isEmpty = false
	}

	gzipBytes, err := utils.Gzip(payload)
	if err != nil {
		return fmt.Errorf("appendPayload: %v", err)
	}
	err = tran.Put(Sum(s.name, KeyLatestShape), gzipBytes)
	if err != nil {
		return fmt.Errorf("appendPayload: %v", err)
	}

	s.latestPayload = payload
	s.revisionUnixTime = append(s.revisionUnixTime, unixTime)
	return nil
}

// Append tries append a new revision of the shape to this record.
// unixTime is the time of this revision, and it can't be earlier
// than the latest revision.
//
// If the size of record will overflow max limit, then we will pop
// some revisions from the underlying record. Note the poped revisions
// must be the most earliest one.
func (s *ShapeRecord) Append(shape *define.Shape, unixTime int64) (err error) {
	var success bool

	if s.isReadOnly {
		return fmt.Errorf("(s *ShapeRecord) Append: %w", ErrReadOnly)
	}
	if n := len(s.revisionUnixTime); n > 0 && unixTime < s.revisionUnixTime[n-1] {
		return fmt.Errorf(
			"(s *ShapeRecord) Append: Revision time %d is earlier than the latest one %d",
			unixTime, s.revisionUnixTime[n-1],
		)
	}

	buf := bytes.NewBuffer(nil)
	marshal.ShapePayload(buf, shape)

	backup := *s
	tran, err := s.db.OpenTransaction()
	if err != nil {
		return fmt.Errorf("(s *ShapeRecord) Append: %v", err)
	}
	defer func() {
		if !success {
			_ = tran.Discard()
			*s = backup
			return
		}
		if err = tran.Commit(); err != nil {
			err = fmt.Errorf("(s *ShapeRecord) Append: %v", err)
			*s = backup
		}
	}()

	if err = s.appendPayload(buf.Bytes(), unixTime, tran); err != nil {
		return fmt.Errorf("(s *ShapeRecord) Append: %v", err)
	}
	for s.Len() > int(s.maxLimit) {
		if err = s.pop(tran); err != nil {
			return fmt.Errorf("(s *ShapeRecord) Append: %v", err)
		}
	}

	success = true
	return nil
}
