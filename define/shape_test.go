package define

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustShape(t *testing.T, size Pos, palette *Palette) *Shape {
	t.Helper()
	s, err := NewShape(size, palette)
	if err != nil {
		t.Fatalf("NewShape: %v", err)
	}
	return s
}

func mustGet(t *testing.T, s *Shape, pos Pos) Block {
	t.Helper()
	b, err := s.GetBlock(pos)
	if err != nil {
		t.Fatalf("GetBlock(%v): %v", pos, err)
	}
	return b
}

func TestNewShape_InvalidSize(t *testing.T) {
	for _, size := range []Pos{{0, 1, 1}, {1, -1, 1}, {1, 1, 0}} {
		if _, err := NewShape(size, nil); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("NewShape(%v): got %v", size, err)
		}
	}
}

func TestShape_IndexOrder(t *testing.T) {
	s := mustShape(t, Pos{2, 3, 4}, nil)
	if s.Volume() != 24 {
		t.Fatalf("Volume() = %d, want 24", s.Volume())
	}
	for i := range s.Volume() {
		if got := s.index(s.position(i)); got != i {
			t.Fatalf("index(position(%d)) = %d", i, got)
		}
	}
	if got := s.index(Pos{1, 0, 0}); got != 12 {
		t.Fatalf("index of (1,0,0) = %d, want 12", got)
	}
}

func TestShape_PutAndGet(t *testing.T) {
	s := mustShape(t, Pos{3, 3, 3}, nil)

	if b := mustGet(t, s, Pos{1, 1, 1}); !b.IsEmpty() {
		t.Fatalf("a new shape must be empty, got %s", b)
	}
	if err := s.PutBlock(stone, Pos{1, 2, 0}); err != nil {
		t.Fatalf("PutBlock: %v", err)
	}
	if b := mustGet(t, s, Pos{1, 2, 0}); !b.Equal(stone) {
		t.Fatalf("GetBlock = %s, want %s", b, stone)
	}

	if err := s.PutBlock(stone, Pos{3, 0, 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("PutBlock out of bounds: got %v", err)
	}
	if _, err := s.GetBlock(Pos{0, -1, 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("GetBlock out of bounds: got %v", err)
	}
}

func TestShape_Fill(t *testing.T) {
	s := mustShape(t, Pos{4, 4, 4}, nil)

	if err := s.Fill(Pos{3, 1, 2}, Pos{1, 0, 0}, stone); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if got := s.Count(stone); got != 3*2*3 {
		t.Fatalf("Count(stone) = %d, want 18", got)
	}
	if got := s.Count(EmptyBlock); got != 64-18 {
		t.Fatalf("Count(EmptyBlock) = %d, want 46", got)
	}
	if got := s.Count(dirt); got != 0 {
		t.Fatalf("Count(dirt) = %d, want 0", got)
	}

	if err := s.Fill(Pos{0, 0, 0}, Pos{4, 0, 0}, dirt); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Fill out of bounds: got %v", err)
	}
}

func TestShape_FillSphere(t *testing.T) {
	s := mustShape(t, Pos{5, 5, 5}, nil)

	filled, err := s.FillSphere(Pos{2, 2, 2}, 1, stone)
	if err != nil {
		t.Fatalf("FillSphere: %v", err)
	}
	if filled != 7 || s.Count(stone) != 7 {
		t.Fatalf("FillSphere filled %d cells (counted %d), want 7", filled, s.Count(stone))
	}

	// Only the corner octant is inside the shape.
	filled, err = s.FillSphere(Pos{0, 0, 0}, 1, dirt)
	if err != nil {
		t.Fatalf("FillSphere: %v", err)
	}
	if filled != 4 {
		t.Fatalf("FillSphere at the corner filled %d cells, want 4", filled)
	}

	if _, err = s.FillSphere(Pos{0, 0, 0}, -1, dirt); err == nil {
		t.Fatalf("FillSphere with a negative radius must fail")
	}
}

func TestShape_RemoveAndReplace(t *testing.T) {
	s := mustShape(t, Pos{2, 1, 1}, nil)
	_ = s.PutBlock(stone, Pos{0, 0, 0})
	_ = s.PutBlock(dirt, Pos{1, 0, 0})

	s.ReplaceBlock(stone, dirt)
	if got := s.Count(dirt); got != 2 {
		t.Fatalf("Count(dirt) after ReplaceBlock = %d, want 2", got)
	}
	if s.Palette().Contains(stone) {
		t.Fatalf("stone must be gone from the palette")
	}

	s.RemoveBlock(dirt)
	if got := s.Count(EmptyBlock); got != 2 {
		t.Fatalf("Count(EmptyBlock) after RemoveBlock = %d, want 2", got)
	}
}

func TestShape_RemoveKeepSmall(t *testing.T) {
	s := mustShape(t, Pos{3, 1, 1}, NewPalette(KeepSmall()))
	_ = s.PutBlock(stone, Pos{0, 0, 0})
	_ = s.PutBlock(dirt, Pos{1, 0, 0})
	_ = s.PutBlock(grass, Pos{2, 0, 0})

	s.RemoveBlock(stone)

	if got := mustGet(t, s, Pos{0, 0, 0}); !got.IsEmpty() {
		t.Fatalf("removed cell = %s, want EmptyBlock", got)
	}
	if got := mustGet(t, s, Pos{1, 0, 0}); !got.Equal(dirt) {
		t.Fatalf("shifted cell = %s, want %s", got, dirt)
	}
	if got := mustGet(t, s, Pos{2, 0, 0}); !got.Equal(grass) {
		t.Fatalf("shifted cell = %s, want %s", got, grass)
	}
	if diff := cmp.Diff([]int32{0, 1, 2}, s.Indexes()); diff != "" {
		t.Fatalf("Indexes mismatch (-want +got):\n%s", diff)
	}
}

func TestShape_Rotate(t *testing.T) {
	s := mustShape(t, Pos{2, 1, 3}, nil)
	_ = s.PutBlock(stone, Pos{0, 0, 0})
	_ = s.PutBlock(dirt, Pos{1, 0, 2})

	s.Transform(Flip{}, FullRotation/4)

	if s.Size() != (Pos{3, 1, 2}) {
		t.Fatalf("Size() after a quarter turn = %v, want [3 1 2]", s.Size())
	}
	if got := mustGet(t, s, Pos{2, 0, 0}); !got.Equal(stone) {
		t.Fatalf("(2,0,0) = %s, want %s", got, stone)
	}
	if got := mustGet(t, s, Pos{0, 0, 1}); !got.Equal(dirt) {
		t.Fatalf("(0,0,1) = %s, want %s", got, dirt)
	}

	s.Transform(Flip{}, -FullRotation/4)
	if s.Size() != (Pos{2, 1, 3}) {
		t.Fatalf("Size() after turning back = %v, want [2 1 3]", s.Size())
	}
	if got := mustGet(t, s, Pos{0, 0, 0}); !got.Equal(stone) {
		t.Fatalf("(0,0,0) = %s, want %s", got, stone)
	}
}

func TestShape_FlipRotatesBlocks(t *testing.T) {
	furnace := NewBlock("minecraft:furnace", map[string]any{"minecraft:cardinal_direction": "east"})

	s := mustShape(t, Pos{3, 1, 1}, nil)
	_ = s.PutBlock(furnace, Pos{0, 0, 0})

	s.Transform(Flip{true, false, false}, 0)

	got := mustGet(t, s, Pos{2, 0, 0})
	if got.States["minecraft:cardinal_direction"] != "west" {
		t.Fatalf("(2,0,0) = %s, want a furnace facing west", got)
	}
	if b := mustGet(t, s, Pos{0, 0, 0}); !b.IsEmpty() {
		t.Fatalf("(0,0,0) = %s, want EmptyBlock", b)
	}
}

func TestShape_Clone(t *testing.T) {
	s := mustShape(t, Pos{1, 1, 2}, nil)
	_ = s.PutBlock(stone, Pos{0, 0, 0})

	c := s.Clone()
	_ = c.PutBlock(dirt, Pos{0, 0, 1})

	if s.Palette().Contains(dirt) || s.Count(dirt) != 0 {
		t.Fatalf("mutating a clone changed the origin")
	}
	if c.Count(stone) != 1 {
		t.Fatalf("clone lost its blocks")
	}
}

func TestRestoreShape(t *testing.T) {
	p := NewPalette()
	p.AddBlock(stone)

	s, err := RestoreShape(Pos{1, 1, 2}, []int32{0, 1}, p)
	if err != nil {
		t.Fatalf("RestoreShape: %v", err)
	}
	if got := mustGet(t, s, Pos{0, 0, 1}); !got.Equal(stone) {
		t.Fatalf("(0,0,1) = %s, want %s", got, stone)
	}

	if _, err = RestoreShape(Pos{1, 1, 2}, []int32{0, 2}, p); !errors.Is(err, ErrDanglingIndex) {
		t.Fatalf("RestoreShape with a dangling index: got %v", err)
	}
	if _, err = RestoreShape(Pos{1, 1, 3}, []int32{0, 1}, p); err == nil {
		t.Fatalf("RestoreShape with a short matrix must fail")
	}
}

func TestCheckSize(t *testing.T) {
	if volume, err := CheckSize(Pos{2, 3, 4}); err != nil || volume != 24 {
		t.Fatalf("CheckSize = %d, %v", volume, err)
	}
	if volume, err := CheckSize(Pos{1 << 10, 1 << 10, 1 << 8}); err != nil || volume != MaxVolume {
		t.Fatalf("CheckSize at the limit = %d, %v", volume, err)
	}

	for _, size := range []Pos{
		{1 << 22, 1 << 21, 1 << 21},
		{1 << 10, 1 << 10, 1<<8 + 1},
		{1 << 62, 4, 1},
	} {
		if _, err := CheckSize(size); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("CheckSize(%v): got %v", size, err)
		}
	}
}

func TestNewShape_VolumeOverflow(t *testing.T) {
	if _, err := NewShape(Pos{1 << 22, 1 << 21, 1 << 21}, nil); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("NewShape with an overflowing volume: got %v", err)
	}
	if _, err := RestoreShape(Pos{1 << 22, 1 << 21, 1 << 21}, nil, NewPalette()); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("RestoreShape with an overflowing volume: got %v", err)
	}
}
