package define

// MatrixSize is the size of block matrix.
// A single sub chunk only holds 4096 blocks,
// so we here use 4096 as the size.
const MatrixSize = 4096

// BlockMatrix represents the blocks of a single layer in a sub chunk.
// Each element is an index of the block palette of a model, and 0
// means the block is not touched.
type BlockMatrix *[MatrixSize]uint16

// NewBlockMatrix creates a new BlockMatrix that full of untouched blocks and is not nil.
func NewBlockMatrix() BlockMatrix {
	return &[MatrixSize]uint16{}
}

// BlockMatrixIsEmpty checks the given block martix is empty or not.
func BlockMatrixIsEmpty(matrix BlockMatrix) bool {
	return (matrix == nil)
}

// BlockMatrixCount returns the count of touched blocks in matrix.
// Time complexity: O(4096).
func BlockMatrixCount(matrix BlockMatrix) (result int) {
	if BlockMatrixIsEmpty(matrix) {
		return 0
	}
	for _, value := range matrix {
		if value != 0 {
			result++
		}
	}
	return
}
