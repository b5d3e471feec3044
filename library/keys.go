package library

import "encoding/binary"

// Index returns a bytes holding the written index of the shape whose name is name.
//
// We write the length of name first (use four bytes), and then is the name itself.
// Therefore, no index is the prefix of another one.
func Index(name string) []byte {
	b := make([]byte, 4, 4+len(name))
	binary.LittleEndian.PutUint32(b, uint32(len(name)))
	return append(b, name...)
}

// IndexPatch returns a bytes holding the written index of the shape whose name is name,
// but specially for the revision patch used key to index.
func IndexPatch(name string, revisionID uint) []byte {
	revisionIDBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(revisionIDBytes, uint32(revisionID))
	return append(
		Sum(name, []byte(KeyPatch)...),
		revisionIDBytes...,
	)
}

// Sum converts Index(name) to its []byte representation and appends p.
// Note that Sum is very necessary because all Sum do is preventing users from believing that
// "append" can create new slices (however, it not).
func Sum(name string, p ...byte) []byte {
	return append(
		Index(name),
		p...,
	)
}
