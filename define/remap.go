package define

// NoIndex marks an index that is not exist anymore.
const NoIndex = -1

// Remap shows how palette indexes changed after a mutating operation,
// e.g. {5: 3, 9: 4} means the block at index 5 is now at index 3 and
// the block at index 9 is now at index 4.
//
// An index that is not in the map is unchanged, and an index that maps
// to NoIndex is removed from the palette.
type Remap map[int]int

// Apply returns the new index of index.
// If the index is removed, then return NoIndex and false.
func (r Remap) Apply(index int) (newIndex int, exist bool) {
	newIndex, ok := r[index]
	if !ok {
		return index, true
	}
	return newIndex, newIndex != NoIndex
}

// Then composes r with next, where next is a remap that
// happened after r. The returned remap maps the indexes
// before r to the indexes after next.
func (r Remap) Then(next Remap) Remap {
	result := make(Remap, len(r)+len(next))

	for oldIndex, middle := range r {
		if middle == NoIndex {
			result[oldIndex] = NoIndex
			continue
		}
		if newIndex, ok := next[middle]; ok {
			result[oldIndex] = newIndex
			continue
		}
		result[oldIndex] = middle
	}

	for middle, newIndex := range next {
		if _, ok := r[middle]; ok {
			continue
		}
		result[middle] = newIndex
	}

	for oldIndex, newIndex := range result {
		if oldIndex == newIndex {
			delete(result, oldIndex)
		}
	}

	return result
}

// mapLeftShift returns the remap of a left shift which move all the
// entries whose index is in [from, to] one position to the left.
// Returned remap is empty when from > to.
func mapLeftShift(from int, to int) Remap {
	result := make(Remap)
	for i := max(from, 1); i <= to; i++ {
		result[i] = i - 1
	}
	return result
}

// mapRightShift returns the remap of a right shift which move all the
// entries whose index is in [from, to] one position to the right.
// Returned remap is empty when from > to.
func mapRightShift(from int, to int) Remap {
	result := make(Remap)
	for i := max(from, 0); i <= to; i++ {
		result[i] = i + 1
	}
	return result
}
