package utils

import "encoding/binary"

// Uint32BinaryAdd decode a little endian uint32Bytes as uint32,
// and computes the result of uint32+delta, and then return its
// little endian bytes result. If len(uint32Bytes) < 4, then use
// defaultIfNotExist instead.
func Uint32BinaryAdd(uint32Bytes []byte, defaultIfNotExist []byte, delta int32) []byte {
	if len(uint32Bytes) < 4 {
		uint32Bytes = defaultIfNotExist
	}

	originCount := binary.LittleEndian.Uint32(uint32Bytes)
	originCount = uint32(int32(originCount) + delta)

	newer := make([]byte, 4)
	binary.LittleEndian.PutUint32(newer, originCount)

	return newer
}

// Uint32Bytes returns the little endian bytes of value.
func Uint32Bytes(value uint32) []byte {
	result := make([]byte, 4)
	binary.LittleEndian.PutUint32(result, value)
	return result
}

// BytesUint32 decodes a little endian uint32 from in.
// If len(in) < 4, then return 0.
func BytesUint32(in []byte) uint32 {
	if len(in) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(in)
}
