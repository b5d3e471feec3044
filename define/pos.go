package define

import (
	operator_define "github.com/TriM-Organization/bedrock-world-operator/define"
)

// Pos is a block position, or the size of a shape.
// It holds the X, Y and Z components in order.
type Pos [3]int

// X returns the X component of p.
func (p Pos) X() int {
	return p[0]
}

// Y returns the Y component of p.
func (p Pos) Y() int {
	return p[1]
}

// Z returns the Z component of p.
func (p Pos) Z() int {
	return p[2]
}

// Add returns the sum of p and other.
func (p Pos) Add(other Pos) Pos {
	return Pos{p[0] + other[0], p[1] + other[1], p[2] + other[2]}
}

// ChunkPos returns the position of the chunk
// that the block at p is in.
func (p Pos) ChunkPos() operator_define.ChunkPos {
	return operator_define.ChunkPos{int32(p.X() >> 4), int32(p.Z() >> 4)}
}

// SubChunkIndex returns the index of the sub chunk that the block at p
// is in, where r is the range of the dimension.
//
// For example, if a block is at (x,23,z) and is in Overworld, then it is in
// a sub chunk whose Y position is 23>>4 = 1. However, this is not the index
// of this sub chunk, we need use (23-r[0])>>4 to get the index, which is 5.
func (p Pos) SubChunkIndex(r operator_define.Range) int {
	return (p.Y() - r[0]) >> 4
}

// InRange reports whether the Y component of p is in r.
func (p Pos) InRange(r operator_define.Range) bool {
	return p.Y() >= r[0] && p.Y() <= r[1]
}
