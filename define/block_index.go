package define

// SubChunkBlockIndex is an integer that range from 0 to 4095,
// and could be decode and represents as a block relative
// position to the sub chunk.
type SubChunkBlockIndex uint16

// NewSubChunkBlockIndex returns the index of the block at the
// world position pos in the sub chunk that holds it.
func NewSubChunkBlockIndex(pos Pos) (s SubChunkBlockIndex) {
	s.UpdateIndex(uint8(pos[0]&15), uint8(pos[1]&15), uint8(pos[2]&15))
	return
}

// X returns the X-axis relative coordinates of this block with respect to the sub chunk.
func (s SubChunkBlockIndex) X() uint8 {
	return uint8(s >> 8)
}

// Y returns the Y-axis relative coordinates of this block with respect to the sub chunk.
func (s SubChunkBlockIndex) Y() uint8 {
	return uint8((s >> 4) & 15)
}

// Z returns the Z-axis relative coordinates of this block with respect to the sub chunk.
func (s SubChunkBlockIndex) Z() uint8 {
	return uint8(s & 15)
}

// UpdateIndex computes the index of the block in the sub chunk
// based on the given relative coordinates of x, y, and z.
// Then, updates the index of this block.
func (s *SubChunkBlockIndex) UpdateIndex(x uint8, y uint8, z uint8) {
	*s = SubChunkBlockIndex(uint16(x)*256 + uint16(y)*16 + uint16(z))
}
