package plan

import (
	"fmt"

	"github.com/TriM-Organization/bedrock-shape/define"
)

// Build builds the shape that s describes.
// Operations are applied in order, and then the transform.
func (s *ShapePlan) Build() (result *define.Shape, err error) {
	var opts []define.PaletteOption
	if s.KeepOrder {
		opts = append(opts, define.KeepOrder())
	}
	if s.KeepSmall {
		opts = append(opts, define.KeepSmall())
	}

	result, err = define.NewShape(toPos(s.Size), define.NewPalette(opts...))
	if err != nil {
		return nil, fmt.Errorf("(s *ShapePlan) Build: %v", err)
	}

	for i, op := range s.Operations {
		if err = op.apply(result); err != nil {
			return nil, fmt.Errorf("(s *ShapePlan) Build: operation %d of %q: %w", i, s.Name, err)
		}
	}

	if s.Transform != nil {
		var flip define.Flip
		copy(flip[:], s.Transform.Flip)
		result.Transform(flip, s.Transform.Rotation)
	}

	return result, nil
}

// "apply" is an internal implement detail.
func (o *Operation) apply(s *define.Shape) error {
	switch o.Op {
	case OpFill:
		return s.Fill(toPos(o.From), toPos(o.To), o.Block.Block())
	case OpSphere:
		_, err := s.FillSphere(toPos(o.Center), o.Radius, o.Block.Block())
		return err
	case OpPut:
		return s.PutBlock(o.Block.Block(), toPos(o.At))
	case OpReplace:
		s.ReplaceBlock(o.Block.Block(), o.With.Block())
		return nil
	case OpRemove:
		s.RemoveBlock(o.Block.Block())
		return nil
	default:
		return fmt.Errorf("%w: unknown operation %q", ErrInvalidPlan, o.Op)
	}
}

func toPos(value []int) (result define.Pos) {
	copy(result[:], value)
	return
}
