package library

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/kr/binarydist"
)

// NewPatch returns the patch that converts older to newer.
// Note that older and newer must be two revisions of the same shape.
//
// The patch holds the xxhash of older and newer, and then the bsdiff
// between them, so when user do restore operation, they can verify
// the data they get is correct.
func NewPatch(older []byte, newer []byte) (result []byte, err error) {
	olderHashBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(olderHashBytes, xxhash.Sum64(older))

	newerHashBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(newerHashBytes, xxhash.Sum64(newer))

	buf := bytes.NewBuffer(nil)
	err = binarydist.Diff(bytes.NewBuffer(older), bytes.NewBuffer(newer), buf)
	if err != nil {
		return nil, fmt.Errorf("NewPatch: %v", err)
	}

	result = append(olderHashBytes, newerHashBytes...)
	result = append(result, buf.Bytes()...)
	return result, nil
}

// ApplyPatch use older and patch to compute the newer one.
// older must be the one that patch was made from.
func ApplyPatch(older []byte, patch []byte) (newer []byte, err error) {
	if len(patch) < 16 {
		return nil, fmt.Errorf("ApplyPatch: Broken patch")
	}

	if xxhash.Sum64(older) != binary.LittleEndian.Uint64(patch) {
		return nil, fmt.Errorf("ApplyPatch: Given older bytes is not the correct one (hash mismatch)")
	}

	buf := bytes.NewBuffer(nil)
	err = binarydist.Patch(bytes.NewBuffer(older), buf, bytes.NewBuffer(patch[16:]))
	if err != nil {
		return nil, fmt.Errorf("ApplyPatch: %v", err)
	}
	newer = buf.Bytes()

	if xxhash.Sum64(newer) != binary.LittleEndian.Uint64(patch[8:]) {
		return nil, fmt.Errorf("ApplyPatch: Data changed")
	}

	return newer, nil
}
