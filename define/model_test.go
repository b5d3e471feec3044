package define

import (
	"errors"
	"testing"

	"github.com/TriM-Organization/bedrock-world-operator/block"
	"github.com/TriM-Organization/bedrock-world-operator/chunk"
	operator_define "github.com/TriM-Organization/bedrock-world-operator/define"
	"github.com/google/go-cmp/cmp"
)

// overworld is the dimension ID of Overworld.
const overworld = operator_define.Dimension(0)

func glassRuntimeID(t *testing.T) uint32 {
	t.Helper()
	blockRuntimeID, found := NewBlock("minecraft:glass", nil).RuntimeID()
	if !found {
		t.Skip("minecraft:glass is not known by the block registry")
	}
	return blockRuntimeID
}

func TestModel_PlaceAcrossChunks(t *testing.T) {
	glassID := glassRuntimeID(t)
	glass := NewBlock("minecraft:glass", nil)

	s := mustShape(t, Pos{2, 2, 2}, nil)
	if err := s.Fill(Pos{0, 0, 0}, Pos{1, 1, 1}, glass); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	m, err := s.ToModel(Pos{15, 0, 15}, overworld)
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.BlockCount() != 8 {
		t.Fatalf("BlockCount() = %d, want 8", m.BlockCount())
	}

	want := []operator_define.ChunkPos{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	if diff := cmp.Diff(want, m.Chunks()); diff != "" {
		t.Fatalf("Chunks mismatch (-want +got):\n%s", diff)
	}

	r := overworld.Range()
	c, ok := m.Chunk(operator_define.ChunkPos{0, 0})
	if !ok {
		t.Fatalf("model must touch chunk (0,0)")
	}
	layer := c.Sub()[Pos{15, 0, 15}.SubChunkIndex(r)].Layer(0)
	if got := layer.At(15, 0, 15); got != glassID {
		t.Fatalf("block at (15,0,15) = %d, want %d", got, glassID)
	}
	if got := layer.At(14, 0, 15); got != block.AirRuntimeID {
		t.Fatalf("untouched block at (14,0,15) = %d, want air", got)
	}
	if got := layer.At(15, 2, 15); got != block.AirRuntimeID {
		t.Fatalf("untouched block at (15,2,15) = %d, want air", got)
	}
}

func TestModel_PlaceOutOfRange(t *testing.T) {
	s := mustShape(t, Pos{1, 4, 1}, nil)
	_ = s.Fill(Pos{0, 0, 0}, Pos{0, 3, 0}, stone)

	r := overworld.Range()
	if _, err := s.ToModel(Pos{0, r[1] - 2, 0}, overworld); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("ToModel above the dimension: got %v", err)
	}
	if _, err := s.ToModel(Pos{0, r[0] - 1, 0}, overworld); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("ToModel below the dimension: got %v", err)
	}
	if _, err := s.ToModel(Pos{0, r[1] - 3, 0}, overworld); err != nil {
		t.Fatalf("ToModel at the top of the dimension: %v", err)
	}
}

func TestModel_EmptyBlockKeepsEarlierShapes(t *testing.T) {
	glassID := glassRuntimeID(t)

	first := mustShape(t, Pos{2, 1, 1}, nil)
	_ = first.Fill(Pos{0, 0, 0}, Pos{1, 0, 0}, NewBlock("minecraft:glass", nil))

	second := mustShape(t, Pos{2, 1, 1}, nil)
	_ = second.PutBlock(NewBlock("minecraft:air", nil), Pos{1, 0, 0})

	m := NewModel(overworld)
	if err := m.Place(first, Pos{0, 64, 0}); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if err := m.Place(second, Pos{0, 64, 0}); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if m.BlockCount() != 2 {
		t.Fatalf("BlockCount() = %d, want 2", m.BlockCount())
	}

	r := overworld.Range()
	c := chunk.NewChunk(block.AirRuntimeID, r)
	if written := m.Overlay(operator_define.ChunkPos{0, 0}, c); written != 2 {
		t.Fatalf("Overlay wrote %d blocks, want 2", written)
	}

	layer := c.Sub()[Pos{0, 64, 0}.SubChunkIndex(r)].Layer(0)
	if got := layer.At(0, 0, 0); got != glassID {
		t.Fatalf("EmptyBlock erased the earlier shape, got %d", got)
	}
	if got := layer.At(1, 0, 0); got != block.AirRuntimeID {
		t.Fatalf("air must overwrite the earlier shape, got %d", got)
	}

	if m.Overlay(operator_define.ChunkPos{5, 5}, c) != 0 {
		t.Fatalf("Overlay on an untouched chunk must write nothing")
	}
}

func TestBlockPalette_UntouchedIsZero(t *testing.T) {
	bp := NewBlockPalette()

	if idx, found := bp.BlockPaletteIndexOf(EmptyBlock); idx != 0 || !found {
		t.Fatalf("BlockPaletteIndexOf(EmptyBlock) = %d, %v", idx, found)
	}
	if _, touched := bp.BlockRuntimeID(0); touched {
		t.Fatalf("index 0 must be untouched")
	}

	first := bp.BlockPaletteIndex(7)
	if first == 0 || bp.BlockPaletteIndex(7) != first {
		t.Fatalf("BlockPaletteIndex must be stable and never 0, got %d", first)
	}
	if blockRuntimeID, touched := bp.BlockRuntimeID(first); !touched || blockRuntimeID != 7 {
		t.Fatalf("BlockRuntimeID(%d) = %d, %v", first, blockRuntimeID, touched)
	}

	if _, found := bp.BlockPaletteIndexOf(NewBlock("minecraft:no_such_block", nil)); found {
		t.Fatalf("a block without runtime ID must not be found")
	}
}

func TestModel_ChunkMatricesAndPalette(t *testing.T) {
	glassID := glassRuntimeID(t)
	glass := NewBlock("minecraft:glass", nil)

	s := mustShape(t, Pos{3, 2, 3}, nil)
	if err := s.Fill(Pos{0, 0, 0}, Pos{2, 1, 2}, glass); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	origin := Pos{14, 70, -2}
	m, err := s.ToModel(origin, overworld)
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}

	total := 0
	for _, pos := range m.Chunks() {
		matrix, ok := m.ChunkMatrix(pos)
		if !ok {
			t.Fatalf("ChunkMatrix(%v) is missing", pos)
		}
		total += ChunkMatrixCount(matrix)
	}
	if total != m.BlockCount() || total != 18 {
		t.Fatalf("chunk matrices hold %d blocks, BlockCount() = %d, want 18", total, m.BlockCount())
	}

	bp := m.BlockPalette()
	if bp.BlockPaletteLen() != 1 {
		t.Fatalf("BlockPaletteLen() = %d, want 1", bp.BlockPaletteLen())
	}
	if diff := cmp.Diff([]uint32{glassID}, bp.BlockPalette()); diff != "" {
		t.Fatalf("BlockPalette mismatch (-want +got):\n%s", diff)
	}

	// Read the corner cell back from the chunk that holds it.
	corner := origin.Add(Pos{2, 1, 2})
	matrix, _ := m.ChunkMatrix(corner.ChunkPos())
	layers := matrix[corner.SubChunkIndex(overworld.Range())]
	if len(layers) == 0 {
		t.Fatalf("sub chunk of %v holds no layer", corner)
	}
	blockIndex := NewSubChunkBlockIndex(corner)
	if int(blockIndex.X()) != corner.X()&15 || int(blockIndex.Y()) != corner.Y()&15 || int(blockIndex.Z()) != corner.Z()&15 {
		t.Fatalf("block index %d decodes to (%d,%d,%d), want %v", blockIndex, blockIndex.X(), blockIndex.Y(), blockIndex.Z(), corner)
	}

	blockRuntimeID, touched := bp.BlockRuntimeID(layers[0][blockIndex])
	if !touched {
		t.Fatalf("cell %v is untouched", corner)
	}
	b, found := BlockFromRuntimeID(blockRuntimeID)
	if !found || !b.Equal(glass) {
		t.Fatalf("cell %v holds %s, want %s", corner, b, glass)
	}
}
