package define

import (
	"fmt"

	operator_define "github.com/TriM-Organization/bedrock-world-operator/define"
	"github.com/go-gl/mathgl/mgl64"
)

// Fill puts b into every cell of the box from start to end (both inclusive).
// start and end could be in any order, but both of them must be inside s.
func (s *Shape) Fill(start Pos, end Pos, b Block) error {
	if !s.Contains(start) || !s.Contains(end) {
		return fmt.Errorf("Fill: %w (box %v to %v, size %v)", ErrOutOfBounds, start, end, s.size)
	}

	index := int32(s.palette.AddBlock(b))
	for x := min(start[0], end[0]); x <= max(start[0], end[0]); x++ {
		for y := min(start[1], end[1]); y <= max(start[1], end[1]); y++ {
			for z := min(start[2], end[2]); z <= max(start[2], end[2]); z++ {
				s.matrix[s.index(Pos{x, y, z})] = index
			}
		}
	}

	return nil
}

// FillSphere puts b into every cell that is
// not farther than radius from center.
// Cells of the sphere that are outside s are ignored.
// Returned int is the count of cells that were filled.
func (s *Shape) FillSphere(center Pos, radius float64, b Block) (filled int, err error) {
	if radius < 0 {
		return 0, fmt.Errorf("FillSphere: radius must not be negative (got %v)", radius)
	}

	origin := mgl64.Vec3{float64(center[0]), float64(center[1]), float64(center[2])}
	index := int32(s.palette.AddBlock(b))

	for i := range s.matrix {
		pos := s.position(i)
		point := mgl64.Vec3{float64(pos[0]), float64(pos[1]), float64(pos[2])}
		if point.Sub(origin).Len() > radius {
			continue
		}
		s.matrix[i] = index
		filled++
	}

	return filled, nil
}

// Transform flips s on the axes of flip first, and then rotates s
// clockwise around the Y axis. rotation is counted in sixteenths
// of a full turn (see FullRotation).
//
// The grid only rotates by whole quarter turns (and the size of X and Z
// swap on odd quarter turns), but every block in the palette receives the
// full rotation, so ground signs could face any of the 16 directions.
func (s *Shape) Transform(flip Flip, rotation int) {
	_, quarters := Rotation(rotation)

	// Flip
	if flip[0] || flip[1] || flip[2] {
		flipped := make([]int32, len(s.matrix))
		for i, value := range s.matrix {
			pos := s.position(i)
			for axis, enabled := range flip {
				if enabled {
					pos[axis] = s.size[axis] - 1 - pos[axis]
				}
			}
			flipped[s.index(pos)] = value
		}
		s.matrix = flipped
	}

	// Rotate
	for range quarters {
		rotated := &Shape{size: Pos{s.size[2], s.size[1], s.size[0]}}
		rotated.matrix = make([]int32, len(s.matrix))
		for i, value := range s.matrix {
			pos := s.position(i)
			rotated.matrix[rotated.index(Pos{s.size[2] - 1 - pos[2], pos[1], pos[0]})] = value
		}
		s.size, s.matrix = rotated.size, rotated.matrix
	}

	s.palette.Transform(flip, rotation)
}

// ToModel places s at origin (the world position of the cell 0,0,0)
// of dimension dm, and returns the result model.
func (s *Shape) ToModel(origin Pos, dm operator_define.Dimension) (result *Model, err error) {
	result = NewModel(dm)
	if err = result.Place(s, origin); err != nil {
		return nil, fmt.Errorf("ToModel: %w", err)
	}
	return result, nil
}
