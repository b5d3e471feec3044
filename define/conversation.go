package define

import (
	"github.com/TriM-Organization/bedrock-world-operator/block"
	"github.com/TriM-Organization/bedrock-world-operator/chunk"
	"github.com/TriM-Organization/bedrock-world-operator/define"
)

// MatrixToChunk converts the chunk matrix to its chunk represents.
// r is the range of this chunk, and blockPalette is this chunk matrix used.
// Untouched blocks become air.
func MatrixToChunk(matrix ChunkMatrix, r define.Range, blockPalette *BlockPalette) (c *chunk.Chunk) {
	c = chunk.NewChunk(block.AirRuntimeID, r)
	OverlayChunk(c, matrix, blockPalette)
	return
}

// OverlayChunk writes all touched blocks of matrix into c,
// and the other blocks of c are kept.
// Returned int is the count of blocks that were written.
func OverlayChunk(c *chunk.Chunk, matrix ChunkMatrix, blockPalette *BlockPalette) (written int) {
	sub := c.Sub()

	for subChunkIndex, subChunkLayers := range matrix {
		if subChunkIndex >= len(sub) {
			break
		}
		subChunk := sub[subChunkIndex]

		for layerIndex, blockMatrix := range subChunkLayers {
			if BlockMatrixIsEmpty(blockMatrix) {
				continue
			}
			subChunkLayer := subChunk.Layer(uint8(layerIndex))

			for index, value := range blockMatrix {
				blockRuntimeID, touched := blockPalette.BlockRuntimeID(value)
				if !touched {
					continue
				}
				blockIndex := SubChunkBlockIndex(index)
				subChunkLayer.Set(blockIndex.X(), blockIndex.Y(), blockIndex.Z(), blockRuntimeID)
				written++
			}
		}
	}

	return
}
