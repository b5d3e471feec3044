package marshal

import (
	"bytes"
	"fmt"

	"github.com/TriM-Organization/bedrock-shape/define"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

// PaletteToBytes writes the bytes represents of p into buf,
// gaps included, so the indexes of p are kept.
func PaletteToBytes(buf *bytes.Buffer, p *define.Palette) {
	var flags uint8
	if p.KeepOrder() {
		flags |= PaletteFlagKeepOrder
	}
	if p.KeepSmall() {
		flags |= PaletteFlagKeepSmall
	}
	buf.WriteByte(flags)

	w := protocol.NewWriter(buf, 0)
	size := uint32(p.Size())
	w.Varuint32(&size)

	for _, value := range p.Slots() {
		if value == nil {
			buf.WriteByte(SlotStateGap)
			continue
		}
		buf.WriteByte(SlotStateBlock)
		BlockToBytes(buf, *value)
	}
}

// BytesToPalette decodes a palette from buf.
func BytesToPalette(buf *bytes.Buffer) (result *define.Palette, err error) {
	var size uint32

	defer func() {
		if info := recover(); info != nil {
			result, err = nil, fmt.Errorf("BytesToPalette: Broken palette (%v)", info)
		}
	}()

	r := protocol.NewReader(buf, 0, false)

	flags, err := buf.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("BytesToPalette: %v", err)
	}
	r.Varuint32(&size)
	if int(size) > buf.Len() {
		return nil, fmt.Errorf("BytesToPalette: Palette claims %d slots but only %d bytes left", size, buf.Len())
	}

	slots := make([]*define.Block, size)
	for i := range slots {
		state, err := buf.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("BytesToPalette: %v", err)
		}

		switch state {
		case SlotStateGap:
		case SlotStateBlock:
			b, err := BytesToBlock(buf)
			if err != nil {
				return nil, fmt.Errorf("BytesToPalette: %v", err)
			}
			slots[i] = &b
		default:
			return nil, fmt.Errorf("BytesToPalette: Unknown slot state %d at index %d", state, i)
		}
	}

	result, err = define.RestorePalette(slots, flags&PaletteFlagKeepOrder != 0, flags&PaletteFlagKeepSmall != 0)
	if err != nil {
		return nil, fmt.Errorf("BytesToPalette: %w", err)
	}
	return result, nil
}
