package define

import "github.com/TriM-Organization/bedrock-world-operator/define"

// ChunkMatrix represents the chunk matrix that holds all
// block of this chunk. A chunk can have multiple sub chunks,
// and each sub chunks can have multiple layers.
// A single layer in one sub chunk only have 4096 blocks.
type ChunkMatrix []Layers

// NewChunkMatrix creates a new chunk matrix whose
// sub chunk count matches r, and all of them are empty.
func NewChunkMatrix(r define.Range) ChunkMatrix {
	return make(ChunkMatrix, (r.Height()>>4)+1)
}

// ChunkMatrixCount returns the count of touched blocks in matrix.
func ChunkMatrixCount(matrix ChunkMatrix) (result int) {
	for _, layers := range matrix {
		for _, value := range layers {
			result += BlockMatrixCount(value)
		}
	}
	return
}
