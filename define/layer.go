package define

// Layers represents the block matrix of a sub chunk.
// A single sub chunk could have multiple layers,
// and each layer holds 4096 blocks.
type Layers []BlockMatrix

// Layer get the the block matrix which in layer.
// If not exist, then create empty layer, as well as
// all layers between the current highest layer
// and the new highest layer.
func (l *Layers) Layer(layer int) BlockMatrix {
	for layer >= len(*l) {
		*l = append(*l, nil)
	}
	return (*l)[layer]
}

// Touch is like Layer, but the returned block matrix is never empty.
func (l *Layers) Touch(layer int) BlockMatrix {
	if matrix := l.Layer(layer); !BlockMatrixIsEmpty(matrix) {
		return matrix
	}
	(*l)[layer] = NewBlockMatrix()
	return (*l)[layer]
}
