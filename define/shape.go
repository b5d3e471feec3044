package define

import (
	"fmt"
	"iter"
	"slices"
)

// Shape represents a collection of spacial points assigned a block.
//
// The shape holds a 3-D matrix of palette indexes, and a palette that
// translates a stored index to the block occupying that cell.
// Every stored index is always a valid index of the palette, as long as
// the palette is only mutated through the shape.
//
// Note that it's unsafe for multiple thread to mutate a shape.
type Shape struct {
	size    Pos
	matrix  []int32
	palette *Palette
}

// MaxVolume is the largest count of cells that a shape could hold.
const MaxVolume = 1 << 28

// CheckSize returns the count of cells of a shape whose size is size.
// It fails with ErrInvalidSize when a component is not positive,
// or when the count is bigger than MaxVolume.
func CheckSize(size Pos) (volume int, err error) {
	volume = 1
	for axis, value := range size {
		if value <= 0 {
			return 0, fmt.Errorf("CheckSize: %w (got %v, axis %d is not positive)", ErrInvalidSize, size, axis)
		}
		if volume > MaxVolume/value {
			return 0, fmt.Errorf("CheckSize: %w (%v holds more than %d cells)", ErrInvalidSize, size, MaxVolume)
		}
		volume *= value
	}
	return volume, nil
}

// NewShape instantiates an empty shape whose size is size.
// All cells start as EmptyBlock.
//
// If palette is nil, a new default palette is created for this
// shape. Otherwise palette is used as it is, and EmptyBlock is
// added to it if absent.
func NewShape(size Pos, palette *Palette) (result *Shape, err error) {
	volume, err := CheckSize(size)
	if err != nil {
		return nil, fmt.Errorf("NewShape: %w", err)
	}
	if palette == nil {
		palette = NewPalette()
	}

	result = &Shape{
		size:    size,
		matrix:  make([]int32, volume),
		palette: palette,
	}

	if empty := int32(palette.AddBlock(EmptyBlock)); empty != 0 {
		for i := range result.matrix {
			result.matrix[i] = empty
		}
	}

	return result, nil
}

// RestoreShape creates a shape from its raw matrix, which is in the
// order of Shape.Indexes. Every element of matrix must be a valid
// index of palette. It is used to decode a shape.
func RestoreShape(size Pos, matrix []int32, palette *Palette) (result *Shape, err error) {
	volume, err := CheckSize(size)
	if err != nil {
		return nil, fmt.Errorf("RestoreShape: %w", err)
	}
	if len(matrix) != volume {
		return nil, fmt.Errorf("RestoreShape: matrix holds %d cells but size %v needs %d", len(matrix), size, volume)
	}
	if palette == nil {
		return nil, fmt.Errorf("RestoreShape: palette is nil")
	}

	for i, value := range matrix {
		if _, ok := palette.Get(int(value)); !ok {
			return nil, fmt.Errorf("RestoreShape: %w (cell %d points to %d)", ErrDanglingIndex, i, value)
		}
	}

	return &Shape{
		size:    size,
		matrix:  slices.Clone(matrix),
		palette: palette,
	}, nil
}

// index returns the offset of pos in the underlying matrix.
// The matrix is x-major, the same as the block matrix of a sub chunk.
func (s *Shape) index(pos Pos) int {
	return (pos[0]*s.size[1]+pos[1])*s.size[2] + pos[2]
}

// position is the inverse of index.
func (s *Shape) position(index int) Pos {
	z := index % s.size[2]
	index /= s.size[2]
	return Pos{index / s.size[1], index % s.size[1], z}
}

// Size returns the size of s.
func (s *Shape) Size() Pos {
	return s.size
}

// Volume returns the count of cells in s.
func (s *Shape) Volume() int {
	return len(s.matrix)
}

// Palette returns the palette that s is using.
// Mutating the returned palette directly may break s,
// use the methods of s instead.
func (s *Shape) Palette() *Palette {
	return s.palette
}

// Contains reports whether pos is inside s.
func (s *Shape) Contains(pos Pos) bool {
	return pos[0] >= 0 && pos[0] < s.size[0] &&
		pos[1] >= 0 && pos[1] < s.size[1] &&
		pos[2] >= 0 && pos[2] < s.size[2]
}

// Indexes returns a copy of the underlying matrix in x-major order.
func (s *Shape) Indexes() []int32 {
	return slices.Clone(s.matrix)
}

// Cells iterates every cell of s with the palette index stored in it.
func (s *Shape) Cells() iter.Seq2[Pos, int32] {
	return func(yield func(Pos, int32) bool) {
		for i, value := range s.matrix {
			if !yield(s.position(i), value) {
				return
			}
		}
	}
}

// GetBlock queries the block at the relative position pos in s.
func (s *Shape) GetBlock(pos Pos) (result Block, err error) {
	if !s.Contains(pos) {
		return EmptyBlock, fmt.Errorf("GetBlock: %w (%v not in size %v)", ErrOutOfBounds, pos, s.size)
	}

	index := s.matrix[s.index(pos)]
	result, ok := s.palette.Get(int(index))
	if !ok {
		return EmptyBlock, fmt.Errorf("GetBlock: %w (%v points to %d)", ErrDanglingIndex, pos, index)
	}

	return result, nil
}

// PutBlock places b into s at pos, and updates the palette if necessary.
func (s *Shape) PutBlock(b Block, pos Pos) error {
	if !s.Contains(pos) {
		return fmt.Errorf("PutBlock: %w (%v not in size %v)", ErrOutOfBounds, pos, s.size)
	}
	s.matrix[s.index(pos)] = int32(s.palette.AddBlock(b))
	return nil
}

// Count counts the cells that hold b.
func (s *Shape) Count(b Block) int {
	index, found := s.palette.Index(b)
	if !found {
		return 0
	}

	count := 0
	for _, value := range s.matrix {
		if value == int32(index) {
			count++
		}
	}
	return count
}

// ApplyRemap updates every cell of s by remap.
// Cells whose index was removed become EmptyBlock.
func (s *Shape) ApplyRemap(remap Remap) {
	if len(remap) == 0 {
		return
	}

	fallback := int32(NoIndex)
	for i, value := range s.matrix {
		newIndex, exist := remap.Apply(int(value))
		if !exist {
			if fallback == NoIndex {
				fallback = int32(s.palette.AddBlock(EmptyBlock))
			}
			s.matrix[i] = fallback
			continue
		}
		s.matrix[i] = int32(newIndex)
	}
}

// ReplaceBlock replaces current with replacement in every cell of s.
// See Palette.ReplaceBlock for more information.
func (s *Shape) ReplaceBlock(current Block, replacement Block) {
	_, remap := s.palette.ReplaceBlock(current, replacement)
	s.ApplyRemap(remap)
}

// RemoveBlock removes b from s.
// All cells that held b become EmptyBlock.
func (s *Shape) RemoveBlock(b Block) {
	_, remap := s.palette.RemoveBlock(b)
	s.ApplyRemap(remap)
}

// Clone returns a deep copy of s, with a copy of its palette.
func (s *Shape) Clone() *Shape {
	return &Shape{
		size:    s.size,
		matrix:  slices.Clone(s.matrix),
		palette: s.palette.Copy(),
	}
}
