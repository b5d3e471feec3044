package define

import (
	"fmt"
	"iter"
	"slices"
)

// Palette is a block look-up table which aims to minimise the number
// of times a block changes its index. To achieve this:
//
//  1. There may be no duplicate blocks.
//  2. Gaps (nil slots) are created where blocks are removed.
//  3. Every mutating operation returns a minimal Remap, e.g. {5: 3, 9: 4}.
//  4. The palette is unordered unless KeepOrder is used, and gaps are
//     reused when adding blocks.
//  5. The palette contains gaps unless KeepSmall is used, and in that
//     case removing a block shifts all the successive entries left.
//
// The default settings optimise for computational efficiency, and should
// only be adjusted if you are sure this is what you want.
//
// Note that it's unsafe for multiple thread to mutate a palette.
type Palette struct {
	blut    []*Block
	mapping map[uint64]int

	keepOrder bool
	keepSmall bool
}

// PaletteOption configures a new palette.
type PaletteOption func(p *Palette)

// WithBlocks replaces the default content of a new palette with blocks.
// Duplicate blocks are dropped, and only the first one is kept.
func WithBlocks(blocks ...Block) PaletteOption {
	return func(p *Palette) {
		p.blut = make([]*Block, 0, len(blocks))
		for _, value := range blocks {
			exist := false
			for _, b := range p.blut {
				if b.Equal(value) {
					exist = true
					break
				}
			}
			if !exist {
				b := value.Clone()
				p.blut = append(p.blut, &b)
			}
		}
	}
}

// KeepOrder makes the palette never reuse gaps when adding blocks,
// so index order is always the insertion order.
func KeepOrder() PaletteOption {
	return func(p *Palette) {
		p.keepOrder = true
	}
}

// KeepSmall makes the palette never hold gaps.
// Removing a block causes all successive entries to shift left.
func KeepSmall() PaletteOption {
	return func(p *Palette) {
		p.keepSmall = true
	}
}

// NewPalette creates a new palette, by default with EmptyBlock at index 0.
func NewPalette(opts ...PaletteOption) *Palette {
	empty := EmptyBlock
	p := &Palette{blut: []*Block{&empty}}
	for _, opt := range opts {
		opt(p)
	}
	if p.keepSmall {
		p.strip()
	}
	p.rebuild()
	return p
}

// RestorePalette creates a palette whose slots are exactly slots,
// where a nil element is a gap. It is used to decode a palette.
// A palette that keeps small could not hold any gap.
func RestorePalette(slots []*Block, keepOrder bool, keepSmall bool) (result *Palette, err error) {
	result = &Palette{
		blut:      make([]*Block, len(slots)),
		keepOrder: keepOrder,
		keepSmall: keepSmall,
	}

	for index, value := range slots {
		if value == nil {
			continue
		}
		b := value.Clone()
		result.blut[index] = &b
	}
	result.rebuild()

	for index, value := range result.blut {
		if value == nil {
			continue
		}
		if i, _ := result.lookup(*value); i != index {
			return nil, fmt.Errorf("RestorePalette: %w (%s at %d and %d)", ErrDuplicateBlock, value, i, index)
		}
	}
	if gaps := result.CountGaps(); keepSmall && gaps > 0 {
		return nil, fmt.Errorf("RestorePalette: %w (%d gaps)", ErrGapInSmallPalette, gaps)
	}

	return result, nil
}

// KeepOrder reports whether p never reuses gaps.
func (p *Palette) KeepOrder() bool {
	return p.keepOrder
}

// KeepSmall reports whether p never holds gaps.
func (p *Palette) KeepSmall() bool {
	return p.keepSmall
}

// rebuild computes the hash mapping from the
// underlying block look-up table again.
func (p *Palette) rebuild() {
	p.mapping = make(map[uint64]int, len(p.blut))
	for index, value := range p.blut {
		if value == nil {
			continue
		}
		hash := value.Hash()
		if _, ok := p.mapping[hash]; !ok {
			p.mapping[hash] = index
		}
	}
}

// lookup finds the index of b.
func (p *Palette) lookup(b Block) (index int, found bool) {
	index, ok := p.mapping[b.Hash()]
	if ok && index < len(p.blut) && p.blut[index] != nil && p.blut[index].Equal(b) {
		return index, true
	}
	// Hash collision or stale mapping.
	for index, value := range p.blut {
		if value != nil && value.Equal(b) {
			return index, true
		}
	}
	return NoIndex, false
}

// put sets the slot at index to a copy of b and updates the mapping.
// The slot must be in range.
func (p *Palette) put(index int, b Block) {
	if old := p.blut[index]; old != nil {
		if i, ok := p.mapping[old.Hash()]; ok && i == index {
			delete(p.mapping, old.Hash())
		}
	}
	clone := b.Clone()
	p.blut[index] = &clone
	p.mapping[clone.Hash()] = index
}

// firstGap returns the index of the first gap at or after from.
func (p *Palette) firstGap(from int) int {
	for i := max(from, 0); i < len(p.blut); i++ {
		if p.blut[i] == nil {
			return i
		}
	}
	return NoIndex
}

// deleteAt inserts a gap at index, or deletes the slot if p keeps small.
func (p *Palette) deleteAt(index int) Remap {
	if !p.keepSmall {
		if old := p.blut[index]; old != nil {
			if i, ok := p.mapping[old.Hash()]; ok && i == index {
				delete(p.mapping, old.Hash())
			}
		}
		p.blut[index] = nil
		return Remap{index: NoIndex}
	}

	oldLen := len(p.blut)
	p.blut = slices.Delete(p.blut, index, index+1)
	p.rebuild()

	result := mapLeftShift(index+1, oldLen-1)
	result[index] = NoIndex
	return result
}

// strip removes all gaps and returns the remap.
func (p *Palette) strip() Remap {
	result := make(Remap)
	ptr := 0
	for index, value := range p.blut {
		if value == nil {
			continue
		}
		if ptr != index {
			result[index] = ptr
		}
		p.blut[ptr] = value
		ptr++
	}
	clear(p.blut[ptr:])
	p.blut = p.blut[:ptr]
	return result
}

// NotEmpty reports whether p contains at least one
// block and that block is not EmptyBlock.
func (p *Palette) NotEmpty() bool {
	if len(p.blut) < 1 {
		return false
	}
	if len(p.blut) == 1 && p.blut[0] != nil && p.blut[0].IsEmpty() {
		return false
	}
	return true
}

// Len returns the number of unique blocks in p (excludes gaps).
func (p *Palette) Len() int {
	count := 0
	for _, value := range p.blut {
		if value != nil {
			count++
		}
	}
	return count
}

// Size returns the length of the underlying
// block look-up table (includes gaps).
func (p *Palette) Size() int {
	return len(p.blut)
}

// Get returns the block at index.
// If index is out of range or is a gap, then return false.
func (p *Palette) Get(index int) (result Block, ok bool) {
	if index < 0 || index >= len(p.blut) || p.blut[index] == nil {
		return EmptyBlock, false
	}
	return p.blut[index].Clone(), true
}

// Set overwrites the block at index (NOT RECOMMENDED).
//
// If b already exists at another index, that entry is deleted first,
// and this may cause other indexes to shift when p keeps small.
// The block that was at index (if any) is reported as removed.
// Use ReplaceBlock for a less radical alternative.
func (p *Palette) Set(index int, b Block) (remap Remap, err error) {
	if index < 0 || index >= len(p.blut) {
		return nil, fmt.Errorf("Set: %w (index %d, size %d)", ErrIndexOutOfRange, index, len(p.blut))
	}

	remap = make(Remap)
	origin := index
	existing, found := p.lookup(b)
	if found {
		if existing == index {
			return remap, nil
		}
		remap = p.deleteAt(existing)
		if p.keepSmall && existing < index {
			index--
		}
	}

	if p.blut[index] != nil {
		remap[origin] = NoIndex
	}
	p.put(index, b)
	if found {
		remap[existing] = index
	}

	return remap, nil
}

// Delete inserts a gap at index, or deletes the slot
// at index when p keeps small (NOT RECOMMENDED).
func (p *Palette) Delete(index int) (remap Remap, err error) {
	if index < 0 || index >= len(p.blut) {
		return nil, fmt.Errorf("Delete: %w (index %d, size %d)", ErrIndexOutOfRange, index, len(p.blut))
	}
	if p.blut[index] == nil && !p.keepSmall {
		return make(Remap), nil
	}
	return p.deleteAt(index), nil
}

// All iterates the blocks in p with their index, and gaps are skipped.
func (p *Palette) All() iter.Seq2[int, Block] {
	return func(yield func(int, Block) bool) {
		for index, value := range p.blut {
			if value == nil {
				continue
			}
			if !yield(index, value.Clone()) {
				return
			}
		}
	}
}

// Slots iterates the whole underlying block look-up
// table, and a gap is represented as nil.
func (p *Palette) Slots() iter.Seq2[int, *Block] {
	return func(yield func(int, *Block) bool) {
		for index, value := range p.blut {
			var b *Block
			if value != nil {
				clone := value.Clone()
				b = &clone
			}
			if !yield(index, b) {
				return
			}
		}
	}
}

// Contains reports whether b is in p.
func (p *Palette) Contains(b Block) bool {
	_, found := p.lookup(b)
	return found
}

// Merge appends all blocks of other that p does not have yet,
// preferring the indexes already in p.
//
// The returned remap translates the indexes of other to the
// indexes of p. Indexes that are the same are not listed.
func (p *Palette) Merge(other *Palette) Remap {
	result := make(Remap)
	for index, value := range other.All() {
		newIndex, _ := p.Append(value, false)
		if newIndex != index {
			result[index] = newIndex
		}
	}
	return result
}

// Concat returns a new palette that holds p and then other.
// See Merge for the returned remap.
func (p *Palette) Concat(other *Palette) (result *Palette, remap Remap) {
	result = p.Copy()
	return result, result.Merge(other)
}

// Indexes returns the block look-up table as a map.
// Gaps are ignored unless showGaps is true, and then they are nil.
func (p *Palette) Indexes(showGaps bool) map[int]*Block {
	result := make(map[int]*Block)
	for index, value := range p.Slots() {
		if value == nil && !showGaps {
			continue
		}
		result[index] = value
	}
	return result
}

// addBlock is an internal implement detail.
func (p *Palette) addBlock(b *Block) int {
	if b == nil {
		return NoIndex
	}

	if index, found := p.lookup(*b); found {
		return index
	}

	if !p.keepOrder {
		if gap := p.firstGap(0); gap != NoIndex {
			p.put(gap, *b)
			return gap
		}
	}

	p.blut = append(p.blut, nil)
	p.put(len(p.blut)-1, *b)
	return len(p.blut) - 1
}

// AddBlock takes a block to be added to the palette and returns its index.
//
// If b is already in p, then return the existing index. Otherwise, the
// first gap is filled (unless p keeps order) or b is appended to the end.
func (p *Palette) AddBlock(b Block) int {
	return p.addBlock(&b)
}

// replaceBlock is an internal implement detail.
// A nil replacement means removing current.
func (p *Palette) replaceBlock(current Block, replacement *Block) (index int, remap Remap) {
	oldIndex, found := p.lookup(current)
	if !found {
		logger.Error(
			"Current block does not exist in palette, the replacement block was added instead",
			logger.Args("current", current.String(), "replacement", describe(replacement)),
		)
		return p.addBlock(replacement), make(Remap)
	}

	if replacement == nil {
		return NoIndex, p.deleteAt(oldIndex)
	}

	newIndex, found := p.lookup(*replacement)
	if !found {
		p.put(oldIndex, *replacement)
		return oldIndex, make(Remap)
	}
	if newIndex == oldIndex {
		return oldIndex, make(Remap)
	}

	// Replacement block already existed in palette
	remap = p.deleteAt(oldIndex)
	if p.keepSmall && newIndex > oldIndex {
		newIndex--
	}
	remap[oldIndex] = newIndex
	return newIndex, remap
}

// ReplaceBlock replaces current with replacement, and returns the index
// where replacement is now.
//
//   - If replacement is already in p, the slot of current is cleared and
//     the cells that used current should now use the existing index, which
//     is reported by the returned remap.
//   - Otherwise, the slot of current is overwritten in place.
//   - If current is not in p, then an error is logged and replacement is
//     added instead. This is never treated as a failure.
func (p *Palette) ReplaceBlock(current Block, replacement Block) (index int, remap Remap) {
	return p.replaceBlock(current, &replacement)
}

// RemoveBlock removes b from p, leaving a gap (or shifting the successive
// entries when p keeps small). Returned index is always NoIndex.
func (p *Palette) RemoveBlock(b Block) (index int, remap Remap) {
	return p.replaceBlock(b, nil)
}

// Transform transforms every block in p.
// Flips first, rotates second (16 is a full clockwise rotation).
func (p *Palette) Transform(flip Flip, rotation int) {
	for index, value := range p.blut {
		if value == nil {
			continue
		}
		transformed := value.Transform(flip, rotation)
		p.blut[index] = &transformed
	}
	p.rebuild()
}

func describe(b *Block) string {
	if b == nil {
		return "<gap>"
	}
	return b.String()
}
