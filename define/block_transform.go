package define

import "slices"

// FullRotation is the rotation value that represents a full clockwise turn.
// A quarter turn is FullRotation/4.
const FullRotation = 16

// Flip describes mirroring on the X, Y and Z axis.
type Flip [3]bool

// compass directions, in clockwise order when looking down from +Y.
const (
	compassNorth = iota
	compassEast
	compassSouth
	compassWest
)

// compassState is a block state whose value points to one of
// the four horizontal directions.
// values is indexed by compass direction, and vertical (if any)
// holds the down and up values of the same state.
type compassState struct {
	key      string
	values   [4]any
	vertical []any
}

var compassStates = []compassState{
	{
		key:    "minecraft:cardinal_direction",
		values: [4]any{"north", "east", "south", "west"},
	},
	{
		key:    "direction",
		values: [4]any{int32(2), int32(3), int32(0), int32(1)},
	},
	{
		key:    "weirdo_direction",
		values: [4]any{int32(3), int32(0), int32(2), int32(1)},
	},
	{
		key:      "facing_direction",
		values:   [4]any{int32(2), int32(5), int32(3), int32(4)},
		vertical: []any{int32(0), int32(1)},
	},
	{
		key:      "minecraft:facing_direction",
		values:   [4]any{"north", "east", "south", "west"},
		vertical: []any{"down", "up"},
	},
	{
		key:      "minecraft:block_face",
		values:   [4]any{"north", "east", "south", "west"},
		vertical: []any{"down", "up"},
	},
}

// Bit states that are toggled when flipping on the Y axis.
var verticalBits = []string{"upside_down_bit", "top_slot_bit"}

// Rotation returns the number of clockwise sixteenths in rotation,
// and the number of whole quarter turns in it.
func Rotation(rotation int) (sixteenths int, quarters int) {
	sixteenths = ((rotation % FullRotation) + FullRotation) % FullRotation
	return sixteenths, sixteenths / 4
}

// transformCompass flips and then rotates the compass direction c.
func transformCompass(c int, flip Flip, quarters int) int {
	if flip[0] && (c == compassEast || c == compassWest) {
		c = (c + 2) % 4
	}
	if flip[2] && (c == compassNorth || c == compassSouth) {
		c = (c + 2) % 4
	}
	return (c + quarters) % 4
}

// Transform returns a copy of b that is flipped first and then rotated
// around the Y axis.
//
// rotation is counted in sixteenths of a clockwise turn, so 16 is a full
// turn. Most block states could only follow whole quarter turns, and the
// remainder is only used by ground_sign_direction.
func (b Block) Transform(flip Flip, rotation int) Block {
	result := b.Clone()
	if b.IsEmpty() || len(b.States) == 0 {
		return result
	}
	sixteenths, quarters := Rotation(rotation)

	for _, state := range compassStates {
		value, ok := result.States[state.key]
		if !ok {
			continue
		}
		value = normalizeState(state.key, value)

		if c := slices.Index(state.values[:], value); c >= 0 {
			result.States[state.key] = state.values[transformCompass(c, flip, quarters)]
			continue
		}
		if flip[1] {
			if v := slices.Index(state.vertical, value); v >= 0 {
				result.States[state.key] = state.vertical[1-v]
			}
		}
	}

	if value, ok := result.States["pillar_axis"].(string); ok && quarters%2 == 1 {
		switch value {
		case "x":
			result.States["pillar_axis"] = "z"
		case "z":
			result.States["pillar_axis"] = "x"
		}
	}

	if value, ok := normalizeState("ground_sign_direction", result.States["ground_sign_direction"]).(int32); ok {
		v := int(value)
		if flip[0] {
			v = (FullRotation - v) % FullRotation
		}
		if flip[2] {
			v = (FullRotation/2 - v + FullRotation) % FullRotation
		}
		result.States["ground_sign_direction"] = int32((v + sixteenths) % FullRotation)
	}

	if flip[1] {
		for _, key := range verticalBits {
			if value, ok := normalizeState(key, result.States[key]).(uint8); ok {
				result.States[key] = 1 - min(value, 1)
			}
		}
		if value, ok := result.States["minecraft:vertical_half"].(string); ok {
			switch value {
			case "top":
				result.States["minecraft:vertical_half"] = "bottom"
			case "bottom":
				result.States["minecraft:vertical_half"] = "top"
			}
		}
	}

	return result
}
