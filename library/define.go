package library

// DefaultMaxLimit is the count of revisions
// that a new shape record could hold.
const DefaultMaxLimit = 7

var (
	DatabaseRootKey       = []byte("root")
	DatabaseKeyShapeIndex = []byte("shape_index")
	DatabaseKeyShapeCount = []byte("shape_count")
)

// Keys on a per-shape basis.
// These are prefixed by the index of the shape name.
const (
	KeyGlobalData  = 'g'
	KeyLatestShape = 'm'
	KeyPatch       = "du"
)
