package marshal

// ShapeFormatVersion is the version of the
// binary format that ShapeToBytes writes.
const ShapeFormatVersion uint8 = 1

const (
	SlotStateGap uint8 = iota
	SlotStateBlock
)

// Flags of a palette.
const (
	PaletteFlagKeepOrder uint8 = 1 << iota
	PaletteFlagKeepSmall
)
