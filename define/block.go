package define

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/TriM-Organization/bedrock-world-operator/block"
	"github.com/cespare/xxhash/v2"
)

// Block is a block state that could be referenced by a palette.
//
// The zero value is EmptyBlock, which means "nothing". A cell that
// holds EmptyBlock will not touch the world when the shape is placed,
// and this is different from an air block.
type Block struct {
	Name   string
	States map[string]any
}

// EmptyBlock is the "nothing" block.
// By default, it is placed at index 0 of a new palette.
var EmptyBlock = Block{}

// NewBlock creates a new block whose name is name and block states is states.
// The given states is copied, and its values are normalized to the types used
// by Bedrock block states (int32, string and uint8).
func NewBlock(name string, states map[string]any) Block {
	b := Block{Name: name}
	if len(states) > 0 {
		b.States = make(map[string]any, len(states))
		for key, value := range states {
			b.States[key] = normalizeState(key, value)
		}
	}
	return b
}

// BlockFromRuntimeID returns the block whose block runtime ID is blockRuntimeID.
// found is false if the runtime ID is not known by the block registry.
func BlockFromRuntimeID(blockRuntimeID uint32) (result Block, found bool) {
	name, states, found := block.RuntimeIDToState(blockRuntimeID)
	if !found {
		return EmptyBlock, false
	}
	return NewBlock(name, states), true
}

// IsEmpty reports whether b is EmptyBlock.
func (b Block) IsEmpty() bool {
	return len(b.Name) == 0
}

// RuntimeID returns the block runtime ID of b.
// EmptyBlock has no runtime ID.
func (b Block) RuntimeID() (blockRuntimeID uint32, found bool) {
	if b.IsEmpty() {
		return 0, false
	}
	states := b.States
	if states == nil {
		states = make(map[string]any)
	}
	return block.StateToRuntimeID(b.Name, states)
}

// Clone returns a deep copy of b.
func (b Block) Clone() Block {
	return Block{Name: b.Name, States: maps.Clone(b.States)}
}

// Equal reports whether b and other are the same block state.
// Block states are compared after normalization, so int and int32
// values of the same number are equal.
func (b Block) Equal(other Block) bool {
	if b.Name != other.Name || len(b.States) != len(other.States) {
		return false
	}
	for key, value := range b.States {
		otherValue, ok := other.States[key]
		if !ok || stateString(key, value) != stateString(key, otherValue) {
			return false
		}
	}
	return true
}

// Hash returns the xxhash of the canonical form of b.
// Equal blocks always have the same hash.
func (b Block) Hash() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(b.Name)
	for _, key := range slices.Sorted(maps.Keys(b.States)) {
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(key)
		_, _ = d.WriteString("=")
		_, _ = d.WriteString(stateString(key, b.States[key]))
	}
	return d.Sum64()
}

// String returns the string represents of b, e.g.
// minecraft:stone_stairs[upside_down_bit=0,weirdo_direction=2].
func (b Block) String() string {
	if b.IsEmpty() {
		return "<nothing>"
	}
	if len(b.States) == 0 {
		return b.Name
	}

	var buf strings.Builder
	buf.WriteString(b.Name)
	buf.WriteByte('[')
	for i, key := range slices.Sorted(maps.Keys(b.States)) {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(key)
		buf.WriteByte('=')
		fmt.Fprint(&buf, normalizeState(key, b.States[key]))
	}
	buf.WriteByte(']')
	return buf.String()
}

// CompareBlocks is the default ordering used by Palette.Sort.
// EmptyBlock is always the smallest one, and others are ordered
// by their name and then by their string represents.
func CompareBlocks(a Block, b Block) int {
	switch {
	case a.IsEmpty() && b.IsEmpty():
		return 0
	case a.IsEmpty():
		return -1
	case b.IsEmpty():
		return 1
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return strings.Compare(a.String(), b.String())
}

// normalizeState converts value to the type that Bedrock block
// states use for the same data. key is the name of the state.
//
// Every state whose name ends with "_bit" is a byte of 0 or 1, so
// integers and booleans given to it are stored as uint8. Other integers
// are stored as int32, and a value out of the int32 range is clamped
// with a warning.
func normalizeState(key string, value any) any {
	var number int64

	switch v := value.(type) {
	case bool:
		if v {
			return uint8(1)
		}
		return uint8(0)
	case int:
		number = int64(v)
	case int8:
		number = int64(v)
	case int16:
		number = int64(v)
	case int32:
		number = int64(v)
	case int64:
		number = v
	case uint8:
		number = int64(v)
	case uint16:
		number = int64(v)
	case uint32:
		number = int64(v)
	default:
		return value
	}

	if strings.HasSuffix(key, "_bit") {
		if number != 0 {
			return uint8(1)
		}
		return uint8(0)
	}
	if _, isByte := value.(uint8); isByte {
		return value
	}

	if number < math.MinInt32 || number > math.MaxInt32 {
		clamped := int32(max(min(number, math.MaxInt32), math.MinInt32))
		logger.Warn(
			"Block state is out of the int32 range and was clamped",
			logger.Args("state", key, "value", number, "clamped", clamped),
		)
		return clamped
	}
	return int32(number)
}

func stateString(key string, value any) string {
	value = normalizeState(key, value)
	return fmt.Sprintf("%T:%v", value, value)
}
