package utils

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"
)

// gzipWriters reuses the compressors of Gzip,
// since each of them allocates large tables.
var gzipWriters = sync.Pool{
	New: func() any {
		w, _ := gzip.NewWriterLevel(nil, gzip.BestCompression)
		return w
	},
}

// Gzip compresses in with the best compression level.
func Gzip(in []byte) (result []byte, err error) {
	buf := bytes.NewBuffer(make([]byte, 0, len(in)/2+64))

	w := gzipWriters.Get().(*gzip.Writer)
	defer gzipWriters.Put(w)
	w.Reset(buf)

	if _, err = w.Write(in); err != nil {
		return nil, fmt.Errorf("Gzip: %v", err)
	}
	if err = w.Close(); err != nil {
		return nil, fmt.Errorf("Gzip: %v", err)
	}
	return buf.Bytes(), nil
}

// Ungzip reverses Gzip.
func Ungzip(in []byte) (result []byte, err error) {
	r, err := gzip.NewReader(bytes.NewReader(in))
	if err != nil {
		return nil, fmt.Errorf("Ungzip: %v", err)
	}
	defer r.Close()

	if result, err = io.ReadAll(r); err != nil {
		return nil, fmt.Errorf("Ungzip: %v", err)
	}
	return result, nil
}
