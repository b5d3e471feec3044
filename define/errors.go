package define

import "errors"

var (
	// ErrIndexOutOfRange is returned when a palette index is out of range.
	ErrIndexOutOfRange = errors.New("palette index out of range")
	// ErrEmptySlot is returned when a palette index points to a gap.
	ErrEmptySlot = errors.New("palette slot is a gap")
	// ErrBlockNotFound is returned when a block is not in the palette.
	ErrBlockNotFound = errors.New("block not found in palette")
	// ErrDuplicateBlock is returned when restoring a palette that holds the same block twice.
	ErrDuplicateBlock = errors.New("duplicate block in palette")
	// ErrGapInSmallPalette is returned when restoring a palette that keeps small but holds gaps.
	ErrGapInSmallPalette = errors.New("palette that keeps small holds gaps")
	// ErrInvalidSize is returned when the size of a shape is not positive or is too big.
	ErrInvalidSize = errors.New("invalid shape size")
	// ErrOutOfBounds is returned when a position is outside of the shape or the dimension.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrDanglingIndex is returned when a cell of a shape points to an index
	// that does not hold a block.
	ErrDanglingIndex = errors.New("shape cell points to a missing palette entry")
)
