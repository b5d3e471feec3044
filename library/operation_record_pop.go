package library

import "fmt"

// "pop" is an internal implement detail.
func (s *ShapeRecord) pop(tran Transaction) error {
	if s.isEmpty || s.barrierLeft == s.barrierRight {
		return nil
	}

	err := tran.Delete(IndexPatch(s.name, s.barrierLeft))
	if err != nil {
		return fmt.Errorf("pop: %v", err)
	}

	s.barrierLeft++
	s.revisionUnixTime = s.revisionUnixTime[1:]
	return nil
}

// Pop tries to delete the earliest revision from this record.
// If current record is empty of there is only one revision,
// then we will do no operation.
func (s *ShapeRecord) Pop() (err error) {
	var success bool

	if s.isReadOnly {
		return fmt.Errorf("(s *ShapeRecord) Pop: %w", ErrReadOnly)
	}
	if s.isEmpty || s.barrierLeft == s.barrierRight {
		return nil
	}

	backup := *s
	tran, err := s.db.OpenTransaction()
	if err != nil {
		return fmt.Errorf("(s *ShapeRecord) Pop: %v", err)
	}
	defer func() {
		if !success {
			_ = tran.Discard()
			*s = backup
			return
		}
		if err = tran.Commit(); err != nil {
			err = fmt.Errorf("(s *ShapeRecord) Pop: %v", err)
			*s = backup
		}
	}()

	if err = s.pop(tran); err != nil {
		return fmt.Errorf("(s *ShapeRecord) Pop: %v", err)
	}

	success = true
	return nil
}
