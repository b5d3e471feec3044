package library

import (
	"fmt"
	"slices"

	"github.com/TriM-Organization/bedrock-shape/define"
	"github.com/TriM-Organization/bedrock-shape/marshal"
)

// Last gets the latest revision of the shape and its unix time.
// If current record is empty, then returned an error.
func (s *ShapeRecord) Last() (result *define.Shape, updateUnixTime int64, err error) {
	if s.isEmpty {
		return nil, 0, fmt.Errorf("(s *ShapeRecord) Last: %w (%s)", ErrShapeNotFound, s.name)
	}

	result, err = marshal.PayloadToShape(s.latestPayload)
	if err != nil {
		return nil, 0, fmt.Errorf("(s *ShapeRecord) Last: %v", err)
	}
	return result, s.revisionUnixTime[len(s.revisionUnixTime)-1], nil
}

// JumpTo gets the revision whose index is index, and 0 is the earliest one.
//
// Time complexity: O(C×(n-index)), n=s.Len().
// Note that C is not very small and is little big due to we use bsdiff
// to do restore and use xxhash to ensure the data we get is correct.
func (s *ShapeRecord) JumpTo(index uint) (result *define.Shape, updateUnixTime int64, err error) {
	if int(index) >= s.Len() {
		return nil, 0, fmt.Errorf("(s *ShapeRecord) JumpTo: %w (index %d, length %d)", ErrRevisionOutOfRange, index, s.Len())
	}

	payload := s.latestPayload
	for i := s.barrierRight; i > s.barrierLeft+index; i-- {
		patch := s.db.Get(IndexPatch(s.name, i-1))
		if len(patch) == 0 {
			return nil, 0, fmt.Errorf("(s *ShapeRecord) JumpTo: Patch of revision %d is missing", i-1)
		}
		payload, err = ApplyPatch(payload, patch)
		if err != nil {
			return nil, 0, fmt.Errorf("(s *ShapeRecord) JumpTo: %v", err)
		}
	}

	result, err = marshal.PayloadToShape(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("(s *ShapeRecord) JumpTo: %v", err)
	}
	return result, s.revisionUnixTime[index], nil
}

// JumpToTime gets the latest revision whose unix time is not later than unixTime.
// If all revisions are later than unixTime, then returned an error.
func (s *ShapeRecord) JumpToTime(unixTime int64) (result *define.Shape, updateUnixTime int64, err error) {
	index, hit := slices.BinarySearch(s.revisionUnixTime, unixTime)
	if hit {
		for index+1 < len(s.revisionUnixTime) && s.revisionUnixTime[index+1] == unixTime {
			index++
		}
	} else {
		index--
	}

	if index < 0 {
		return nil, 0, fmt.Errorf("(s *ShapeRecord) JumpToTime: %w (no revision before %d)", ErrRevisionOutOfRange, unixTime)
	}

	result, updateUnixTime, err = s.JumpTo(uint(index))
	if err != nil {
		return nil, 0, fmt.Errorf("(s *ShapeRecord) JumpToTime: %v", err)
	}
	return
}
