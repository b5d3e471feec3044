package define

import (
	"fmt"
	"slices"
)

// Append appends b to the end of p if it does not exist,
// and returns the index of b.
//
// Use force to ensure b is appended. In this case, the existing
// entry of b is deleted first.
func (p *Palette) Append(b Block, force bool) (index int, remap Remap) {
	remap = make(Remap)

	existing, found := p.lookup(b)
	if found {
		if !force {
			return existing, remap
		}
		remap = p.deleteAt(existing)
	}

	p.blut = append(p.blut, nil)
	index = len(p.blut) - 1
	p.put(index, b)

	if found && existing != index {
		remap[existing] = index
	}
	return index, remap
}

// Clear irreversibly clears p, including the EmptyBlock at index 0.
func (p *Palette) Clear() {
	p.blut = nil
	p.mapping = make(map[uint64]int)
}

// Copy returns a deep copy of p, including its settings.
func (p *Palette) Copy() *Palette {
	result := &Palette{
		blut:      make([]*Block, len(p.blut)),
		keepOrder: p.keepOrder,
		keepSmall: p.keepSmall,
	}
	for index, value := range p.blut {
		if value == nil {
			continue
		}
		b := value.Clone()
		result.blut[index] = &b
	}
	result.rebuild()
	return result
}

// Count counts the number of occurrences of b in p.
// Since blocks in a palette are unique, the result is 0 or 1.
func (p *Palette) Count(b Block) int {
	if p.Contains(b) {
		return 1
	}
	return 0
}

// CountGaps returns the number of gaps in p.
func (p *Palette) CountGaps() int {
	return len(p.blut) - p.Len()
}

// Extend extends p with blocks, see Append for more information.
// The returned remap is the composition of every single append.
func (p *Palette) Extend(blocks []Block, force bool) Remap {
	remap := make(Remap)
	for _, value := range blocks {
		_, r := p.Append(value, force)
		remap = remap.Then(r)
	}
	return remap
}

// Index gets the look-up index of b.
func (p *Palette) Index(b Block) (index int, found bool) {
	return p.lookup(b)
}

// Insert inserts b at index, causing a right shift.
//
// Unless p keeps small, the shift only runs up to the first gap at or
// after index and that gap is consumed, so the entries after the gap
// keep their indexes. If b already exists, its old entry is deleted first.
// index could be Size(), which appends b.
func (p *Palette) Insert(index int, b Block) (remap Remap, err error) {
	if index < 0 || index > len(p.blut) {
		return nil, fmt.Errorf("Insert: %w (index %d, size %d)", ErrIndexOutOfRange, index, len(p.blut))
	}

	remap = make(Remap)
	existing, found := p.lookup(b)
	if found {
		remap = p.deleteAt(existing)
		if p.keepSmall && existing < index {
			index--
		}
	}

	var shift Remap
	gap := NoIndex
	if !p.keepSmall {
		gap = p.firstGap(index)
	}

	if gap != NoIndex {
		copy(p.blut[index+1:gap+1], p.blut[index:gap])
		shift = mapRightShift(index, gap-1)
	} else {
		oldLen := len(p.blut)
		p.blut = slices.Insert(p.blut, index, nil)
		shift = mapRightShift(index, oldLen-1)
	}

	p.blut[index] = nil
	p.rebuild()
	p.put(index, b)

	remap = remap.Then(shift)
	if found {
		if existing == index {
			delete(remap, existing)
		} else {
			remap[existing] = index
		}
	}
	return remap, nil
}

// Pop returns and deletes the block at index.
func (p *Palette) Pop(index int) (result Block, remap Remap, err error) {
	if index < 0 || index >= len(p.blut) {
		return EmptyBlock, nil, fmt.Errorf("Pop: %w (index %d, size %d)", ErrIndexOutOfRange, index, len(p.blut))
	}
	if p.blut[index] == nil {
		return EmptyBlock, nil, fmt.Errorf("Pop: %w (index %d)", ErrEmptySlot, index)
	}

	result = p.blut[index].Clone()
	return result, p.deleteAt(index), nil
}

// Remove deletes b from p.
// Different from RemoveBlock, it fails if b is not in p.
func (p *Palette) Remove(b Block) (remap Remap, err error) {
	index, found := p.lookup(b)
	if !found {
		return nil, fmt.Errorf("Remove: %w (%s)", ErrBlockNotFound, b)
	}
	return p.deleteAt(index), nil
}

// Reverse reverses the order of p, gaps included.
func (p *Palette) Reverse() Remap {
	remap := make(Remap)
	n := len(p.blut)
	for index, value := range p.blut {
		if value != nil && index != n-1-index {
			remap[index] = n - 1 - index
		}
	}
	slices.Reverse(p.blut)
	p.rebuild()
	return remap
}

// Sort sorts p by cmp (CompareBlocks if cmp is nil).
// Sorting is stable, and all gaps are dropped.
func (p *Palette) Sort(cmp func(a Block, b Block) int, reverse bool) Remap {
	type entry struct {
		index int
		block *Block
	}

	if cmp == nil {
		cmp = CompareBlocks
	}

	entries := make([]entry, 0, len(p.blut))
	for index, value := range p.blut {
		if value != nil {
			entries = append(entries, entry{index: index, block: value})
		}
	}

	slices.SortStableFunc(entries, func(a entry, b entry) int {
		if reverse {
			return cmp(*b.block, *a.block)
		}
		return cmp(*a.block, *b.block)
	})

	remap := make(Remap)
	p.blut = make([]*Block, len(entries))
	for newIndex, value := range entries {
		p.blut[newIndex] = value.block
		if value.index != newIndex {
			remap[value.index] = newIndex
		}
	}
	p.rebuild()

	return remap
}

// Strip removes all gaps in p.
func (p *Palette) Strip() Remap {
	remap := p.strip()
	p.rebuild()
	return remap
}
