package define

import (
	"fmt"
	"slices"

	"github.com/TriM-Organization/bedrock-world-operator/chunk"
	"github.com/TriM-Organization/bedrock-world-operator/define"
)

// Model is one or more shapes placed in a dimension of a world.
//
// A model holds a chunk matrix for each chunk it touches, and all of
// them share the same block palette. A model only records the blocks
// that shapes put, and the cells of a shape that hold EmptyBlock are
// never written.
//
// Note that it's unsafe for multiple thread to mutate a model.
type Model struct {
	dimension    define.Dimension
	blockPalette *BlockPalette
	chunks       map[define.ChunkPos]ChunkMatrix
	count        int
}

// NewModel creates a new empty model for dimension dm.
func NewModel(dm define.Dimension) *Model {
	return &Model{
		dimension:    dm,
		blockPalette: NewBlockPalette(),
		chunks:       make(map[define.ChunkPos]ChunkMatrix),
	}
}

// Dimension returns the dimension of m.
func (m *Model) Dimension() define.Dimension {
	return m.dimension
}

// BlockPalette returns the block palette that all chunk matrix of m used.
func (m *Model) BlockPalette() *BlockPalette {
	return m.blockPalette
}

// BlockCount returns the count of blocks that m will write.
func (m *Model) BlockCount() int {
	return m.count
}

// Place puts s into m, and origin is the world position of the cell (0,0,0) of s.
// Shapes that are placed later overwrite the blocks of the earlier ones,
// except the cells that hold EmptyBlock.
//
// The whole shape must be inside the height range of the dimension.
// Blocks that have no runtime ID are written as UnknownBlockName.
func (m *Model) Place(s *Shape, origin Pos) error {
	r := m.dimension.Range()
	top := origin.Add(Pos{0, s.size[1] - 1, 0})
	if !origin.InRange(r) || !top.InRange(r) {
		return fmt.Errorf(
			"(m *Model) Place: %w (shape covers Y %d to %d, but dimension %d ranges %d to %d)",
			ErrOutOfBounds, origin[1], top[1], m.dimension, r[0], r[1],
		)
	}

	// Resolve palette
	indexes := make([]uint16, s.palette.Size())
	for index, value := range s.palette.All() {
		idx, found := m.blockPalette.BlockPaletteIndexOf(value)
		if !found {
			logger.Warn(
				"Block has no runtime ID, it was written as unknown block",
				logger.Args("block", value.String(), "unknown", UnknownBlockName),
			)
		}
		indexes[index] = idx
	}

	// Put blocks
	for pos, value := range s.Cells() {
		idx := indexes[value]
		if idx == 0 {
			continue
		}

		worldPos := origin.Add(pos)
		chunkPos := worldPos.ChunkPos()

		chunkMatrix, ok := m.chunks[chunkPos]
		if !ok {
			chunkMatrix = NewChunkMatrix(r)
			m.chunks[chunkPos] = chunkMatrix
		}

		blockMatrix := chunkMatrix[worldPos.SubChunkIndex(r)].Touch(0)
		blockIndex := NewSubChunkBlockIndex(worldPos)

		if blockMatrix[blockIndex] == 0 {
			m.count++
		}
		blockMatrix[blockIndex] = idx
	}

	return nil
}

// Chunks returns the positions of all chunks that m touches.
// They are sorted by X and then Z.
func (m *Model) Chunks() []define.ChunkPos {
	result := make([]define.ChunkPos, 0, len(m.chunks))
	for pos := range m.chunks {
		result = append(result, pos)
	}
	slices.SortFunc(result, func(a define.ChunkPos, b define.ChunkPos) int {
		if a[0] != b[0] {
			return int(a[0]) - int(b[0])
		}
		return int(a[1]) - int(b[1])
	})
	return result
}

// ChunkMatrix returns the chunk matrix of the chunk at pos.
// ok is false if m does not touch this chunk.
func (m *Model) ChunkMatrix(pos define.ChunkPos) (result ChunkMatrix, ok bool) {
	result, ok = m.chunks[pos]
	return
}

// Chunk returns a new chunk that holds the blocks which m
// put into the chunk at pos, and all other blocks are air.
// ok is false if m does not touch this chunk.
func (m *Model) Chunk(pos define.ChunkPos) (c *chunk.Chunk, ok bool) {
	chunkMatrix, ok := m.chunks[pos]
	if !ok {
		return nil, false
	}
	return MatrixToChunk(chunkMatrix, m.dimension.Range(), m.blockPalette), true
}

// Overlay writes the blocks which m put into the chunk at pos into c.
// c must be a chunk of the same dimension with m.
// Returned int is the count of blocks that were written.
func (m *Model) Overlay(pos define.ChunkPos, c *chunk.Chunk) int {
	chunkMatrix, ok := m.chunks[pos]
	if !ok {
		return 0
	}
	return OverlayChunk(c, chunkMatrix, m.blockPalette)
}
