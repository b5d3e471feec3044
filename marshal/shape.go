package marshal

import (
	"bytes"
	"fmt"
	"math"

	"github.com/TriM-Organization/bedrock-shape/define"
	"github.com/TriM-Organization/bedrock-shape/utils"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

// ShapePayload writes the uncompressed bytes represents of s into buf.
//
// The matrix of s is written as runs of the same palette index,
// and each run is a pair of varuint32 (index, length).
func ShapePayload(buf *bytes.Buffer, s *define.Shape) {
	w := protocol.NewWriter(buf, 0)

	buf.WriteByte(ShapeFormatVersion)
	for _, value := range s.Size() {
		length := int32(value)
		w.Varint32(&length)
	}

	PaletteToBytes(buf, s.Palette())

	matrix := s.Indexes()
	for i := 0; i < len(matrix); {
		index, run := uint32(matrix[i]), uint32(1)
		for i+int(run) < len(matrix) && matrix[i+int(run)] == matrix[i] {
			run++
		}
		w.Varuint32(&index)
		w.Varuint32(&run)
		i += int(run)
	}
}

// PayloadToShape decodes a shape from the bytes that ShapePayload wrote.
func PayloadToShape(in []byte) (result *define.Shape, err error) {
	var size define.Pos

	defer func() {
		if info := recover(); info != nil {
			result, err = nil, fmt.Errorf("PayloadToShape: Broken shape payload (%v)", info)
		}
	}()

	buf := bytes.NewBuffer(in)
	r := protocol.NewReader(buf, 0, false)

	version, err := buf.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("PayloadToShape: %v", err)
	}
	if version != ShapeFormatVersion {
		return nil, fmt.Errorf("PayloadToShape: Unsupported shape format version %d", version)
	}

	for i := range size {
		var length int32
		r.Varint32(&length)
		if length <= 0 {
			return nil, fmt.Errorf("PayloadToShape: %w (got %d on axis %d)", define.ErrInvalidSize, length, i)
		}
		size[i] = int(length)
	}

	volume, err := define.CheckSize(size)
	if err != nil {
		return nil, fmt.Errorf("PayloadToShape: %w", err)
	}

	palette, err := BytesToPalette(buf)
	if err != nil {
		return nil, fmt.Errorf("PayloadToShape: %w", err)
	}

	// Each run takes two bytes at least.
	if maxRuns := buf.Len() / 2; maxRuns == 0 || uint64(volume) > uint64(maxRuns)*math.MaxUint32 {
		return nil, fmt.Errorf("PayloadToShape: %d cells could not fit in the %d bytes left", volume, buf.Len())
	}

	matrix := make([]int32, 0, min(volume, buf.Len()*16))
	for len(matrix) < volume {
		var index, run uint32
		r.Varuint32(&index)
		r.Varuint32(&run)
		if run == 0 || len(matrix)+int(run) > volume {
			return nil, fmt.Errorf("PayloadToShape: Broken run of index %d (length %d)", index, run)
		}
		for range run {
			matrix = append(matrix, int32(index))
		}
	}

	result, err = define.RestoreShape(size, matrix, palette)
	if err != nil {
		return nil, fmt.Errorf("PayloadToShape: %w", err)
	}
	return result, nil
}

// ShapeToBytes return the gzip compressed bytes represents of s.
func ShapeToBytes(s *define.Shape) (result []byte, err error) {
	buf := bytes.NewBuffer(nil)
	ShapePayload(buf, s)

	result, err = utils.Gzip(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("ShapeToBytes: %v", err)
	}
	return
}

// BytesToShape decode Shape from bytes.
// Every cell of the result is checked that it points to a block.
func BytesToShape(in []byte) (result *define.Shape, err error) {
	originBytes, err := utils.Ungzip(in)
	if err != nil {
		return nil, fmt.Errorf("BytesToShape: %v", err)
	}

	result, err = PayloadToShape(originBytes)
	if err != nil {
		return nil, fmt.Errorf("BytesToShape: %w", err)
	}
	return
}
