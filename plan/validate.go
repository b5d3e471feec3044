package plan

import (
	"errors"
	"fmt"
)

// Op names that an operation could use.
const (
	OpFill    = "fill"
	OpSphere  = "sphere"
	OpPut     = "put"
	OpReplace = "replace"
	OpRemove  = "remove"
)

// ErrInvalidPlan is returned when a plan fails validation.
var ErrInvalidPlan = errors.New("invalid plan")

// Validate checks p and all shapes in it.
func (p *Plan) Validate() error {
	if p.Dimension < 0 || p.Dimension > 2 {
		return fmt.Errorf("%w: unknown dimension %d", ErrInvalidPlan, p.Dimension)
	}
	if len(p.Shapes) == 0 {
		return fmt.Errorf("%w: no shapes", ErrInvalidPlan)
	}

	names := make(map[string]bool)
	for i := range p.Shapes {
		s := &p.Shapes[i]
		if err := s.Validate(); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
		if names[s.Name] {
			return fmt.Errorf("%w: duplicate shape name %q", ErrInvalidPlan, s.Name)
		}
		names[s.Name] = true
	}

	return nil
}

// Validate checks s and all operations in it.
func (s *ShapePlan) Validate() error {
	if len(s.Name) == 0 {
		return fmt.Errorf("%w: shape name is empty", ErrInvalidPlan)
	}
	if err := checkPos("size", s.Size); err != nil {
		return err
	}
	for axis, value := range s.Size {
		if value <= 0 {
			return fmt.Errorf("%w: size of %q must be positive on axis %d (got %d)", ErrInvalidPlan, s.Name, axis, value)
		}
	}
	if s.Origin != nil {
		if err := checkPos("origin", s.Origin); err != nil {
			return err
		}
	}

	for i, op := range s.Operations {
		if err := op.Validate(); err != nil {
			return fmt.Errorf("operation %d of %q: %w", i, s.Name, err)
		}
	}

	if s.Transform != nil && s.Transform.Flip != nil && len(s.Transform.Flip) != 3 {
		return fmt.Errorf("%w: flip of %q needs 3 values (got %d)", ErrInvalidPlan, s.Name, len(s.Transform.Flip))
	}

	return nil
}

// Validate checks the fields that op needs.
func (o *Operation) Validate() error {
	if o.Block == nil || len(o.Block.Name) == 0 {
		return fmt.Errorf("%w: %s needs a block", ErrInvalidPlan, o.Op)
	}

	switch o.Op {
	case OpFill:
		if err := checkPos("from", o.From); err != nil {
			return err
		}
		return checkPos("to", o.To)
	case OpSphere:
		if o.Radius < 0 {
			return fmt.Errorf("%w: radius must not be negative (got %v)", ErrInvalidPlan, o.Radius)
		}
		return checkPos("center", o.Center)
	case OpPut:
		return checkPos("at", o.At)
	case OpReplace:
		if o.With == nil {
			return fmt.Errorf("%w: replace needs a replacement block", ErrInvalidPlan)
		}
		return nil
	case OpRemove:
		return nil
	default:
		return fmt.Errorf("%w: unknown operation %q", ErrInvalidPlan, o.Op)
	}
}

func checkPos(field string, value []int) error {
	if len(value) != 3 {
		return fmt.Errorf("%w: %s needs 3 values (got %d)", ErrInvalidPlan, field, len(value))
	}
	return nil
}
