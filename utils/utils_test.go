package utils

import (
	"bytes"
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestGzip(t *testing.T) {
	in := bytes.Repeat([]byte("minecraft:stone"), 64)

	compressed, err := Gzip(in)
	if err != nil {
		t.Fatalf("Gzip: %v", err)
	}
	if len(compressed) >= len(in) {
		t.Fatalf("Gzip did not compress repeated data (%d >= %d)", len(compressed), len(in))
	}

	out, err := Ungzip(compressed)
	if err != nil {
		t.Fatalf("Ungzip: %v", err)
	}
	if !bytes.Equal(in, out) {
		t.Fatalf("Ungzip did not restore the input")
	}

	if _, err = Ungzip(in); err == nil {
		t.Fatalf("Ungzip on plain bytes must fail")
	}
}

func TestUint32BinaryAdd(t *testing.T) {
	got := Uint32BinaryAdd(nil, []byte{0, 0, 0, 0}, 1)
	if BytesUint32(got) != 1 {
		t.Fatalf("Uint32BinaryAdd on a missing value = %d, want 1", BytesUint32(got))
	}
	got = Uint32BinaryAdd(Uint32Bytes(5), nil, -2)
	if BytesUint32(got) != 3 {
		t.Fatalf("Uint32BinaryAdd(5, -2) = %d, want 3", BytesUint32(got))
	}
	if BytesUint32([]byte{1}) != 0 {
		t.Fatalf("BytesUint32 on short input must be 0")
	}
}

func TestGzip_Concurrent(t *testing.T) {
	group := new(errgroup.Group)
	for i := range 16 {
		group.Go(func() error {
			in := bytes.Repeat([]byte{byte(i)}, 1024+i)
			compressed, err := Gzip(in)
			if err != nil {
				return err
			}
			out, err := Ungzip(compressed)
			if err != nil {
				return err
			}
			if !bytes.Equal(in, out) {
				return fmt.Errorf("payload %d changed after Ungzip", i)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		t.Fatalf("%v", err)
	}
}
