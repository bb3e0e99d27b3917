package same

import (
	"encoding/binary"
	"hash/maphash"
	"io"
	"reflect"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// Hash feeds the identity of p into w: the address, not the pointed-to value.
// References that are the same feed identical bytes. The accumulator is any
// io.Writer; every hasher in the ecosystem is one. Write errors are ignored,
// hash accumulators do not fail.
func Hash[T any](w io.Writer, p *T) {
	writeUintptr(w, uintptr(unsafe.Pointer(p)))
}

// HashObject feeds the identity of v into w, dispatching on reference shape
// the way Objects does. Slices feed address and length, the whole view, which
// keeps HashObject consistent with Slices. Non-reference values and nil
// interfaces feed nothing.
func HashObject(w io.Writer, v any) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		writeUintptr(w, rv.Pointer())
	case reflect.Slice:
		writeUintptr(w, rv.Pointer())
		writeUintptr(w, uintptr(rv.Len()))
	}
}

// Sum64 returns a one-shot hash of the identity of p.
func Sum64[T any](p *T) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(uintptr(unsafe.Pointer(p))))
	return xxhash.Sum64(buf[:])
}

// NewHasher creates a Hasher with a fresh random seed.
func NewHasher[T any]() Hasher[T] {
	return Hasher[T]{seed: maphash.MakeSeed()}
}

// Hasher hashes references by identity under a fixed seed: values are stable
// within one Hasher and unpredictable across seeds, the same guarantee the
// runtime gives map keys.
type Hasher[T any] struct {
	seed maphash.Seed
}

// Hash returns the seeded hash of the identity of p.
func (h Hasher[T]) Hash(p *T) uint64 {
	return maphash.Comparable(h.seed, p)
}

func writeUintptr(w io.Writer, p uintptr) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(p))
	_, _ = w.Write(buf[:])
}
