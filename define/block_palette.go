package define

import (
	"github.com/TriM-Organization/bedrock-world-operator/block"
)

// UnknownBlockName is the name of the block that is used
// when a block of a shape has no block runtime ID.
const UnknownBlockName = "minecraft:unknown"

// BlockPalette is the block palette for a model.
// All chunks of the model will share the same palette.
//
// Different from Palette, BlockPalette holds block runtime IDs,
// and index 0 is reserved for the cells that are not touched.
type BlockPalette struct {
	bp      []uint32
	mapping map[uint32]uint16
}

// NewBlockPalette creates a new block palette that only have the untouched block.
// Technically speaking, untouched block does not actually exist, but it can be found by agreement.
func NewBlockPalette() *BlockPalette {
	return &BlockPalette{
		mapping: make(map[uint32]uint16),
	}
}

// AddBlock adds the block whose block runtime id is blockRuntimeID
// to the underlying block palette.
// If is exist, then do no operation.
func (b *BlockPalette) AddBlock(blockRuntimeID uint32) {
	if _, ok := b.mapping[blockRuntimeID]; ok {
		return
	}
	b.bp = append(b.bp, blockRuntimeID)
	b.mapping[blockRuntimeID] = uint16(len(b.bp))
}

// BlockPaletteIndex finds the index of blockRuntimeID in block palette.
// If not exist, then added it the underlying block palette.
//
// Returned index is the real index plus 1, and 0 is never returned.
func (b *BlockPalette) BlockPaletteIndex(blockRuntimeID uint32) uint16 {
	idx, ok := b.mapping[blockRuntimeID]
	if ok {
		return idx
	}
	b.AddBlock(blockRuntimeID)
	return b.mapping[blockRuntimeID]
}

// BlockPaletteIndexOf is like BlockPaletteIndex, but for a block of a shape.
// EmptyBlock is always 0, and a block without runtime ID is saved as
// UnknownBlockName, and in this case, found is false.
func (b *BlockPalette) BlockPaletteIndexOf(blk Block) (index uint16, found bool) {
	if blk.IsEmpty() {
		return 0, true
	}

	blockRuntimeID, found := blk.RuntimeID()
	if !found {
		blockRuntimeID, _ = block.StateToRuntimeID(UnknownBlockName, map[string]any{})
	}

	return b.BlockPaletteIndex(blockRuntimeID), found
}

// BlockRuntimeID return the block runtime ID that crresponding to blockPaletteIndex.
// touched is false if blockPaletteIndex is 0.
// Will not check if blockPaletteIndex is out of index (if out of index, then runtime panic).
func (b *BlockPalette) BlockRuntimeID(blockPaletteIndex uint16) (blockRuntimeID uint32, touched bool) {
	if blockPaletteIndex == 0 {
		return block.AirRuntimeID, false
	}
	return b.bp[blockPaletteIndex-1], true
}

// BlockPaletteLen returns the length of underlying block palette.
func (b *BlockPalette) BlockPaletteLen() int {
	return len(b.bp)
}

// BlockPalette gets the deep copy of underlying block palette.
func (b *BlockPalette) BlockPalette() []uint32 {
	newOne := make([]uint32, len(b.bp))
	copy(newOne, b.bp)
	return newOne
}
