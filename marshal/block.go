package marshal

import (
	"bytes"
	"fmt"

	"github.com/TriM-Organization/bedrock-shape/define"
	"github.com/TriM-Organization/bedrock-world-operator/chunk"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

// BlockToNBT returns the NBT represents of b, which is
// the same as the block states in a Bedrock world.
func BlockToNBT(b define.Block) map[string]any {
	states := b.States
	if states == nil {
		states = make(map[string]any)
	}
	return map[string]any{
		"name":    b.Name,
		"states":  states,
		"version": chunk.CurrentBlockVersion,
	}
}

// NBTToBlock decodes a block from its NBT represents.
// The version field is ignored.
func NBTToBlock(m map[string]any) (result define.Block, err error) {
	name, ok := m["name"].(string)
	if !ok {
		return define.EmptyBlock, fmt.Errorf("NBTToBlock: Block name is missing or not a string (got %#v)", m["name"])
	}

	states, ok := m["states"].(map[string]any)
	if m["states"] != nil && !ok {
		return define.EmptyBlock, fmt.Errorf("NBTToBlock: Block states of %s is not a compound (got %T)", name, m["states"])
	}

	return define.NewBlock(name, states), nil
}

// BlockToBytes writes the little endian NBT represents of b into buf.
func BlockToBytes(buf *bytes.Buffer, b define.Block) {
	m := BlockToNBT(b)
	protocol.NewWriter(buf, 0).NBT(&m, nbt.LittleEndian)
}

// BytesToBlock decodes a block from buf.
// Note that it panics if buf holds a broken NBT.
func BytesToBlock(buf *bytes.Buffer) (result define.Block, err error) {
	var m map[string]any
	protocol.NewReader(buf, 0, false).NBT(&m, nbt.LittleEndian)
	return NBTToBlock(m)
}
