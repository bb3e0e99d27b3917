package same

import (
	"fmt"
	"io"
)

// KeyOf wraps p for use as an identity-keyed map key.
func KeyOf[T any](p *T) Key[T] {
	return Key[T]{p: p}
}

// Key adapts a reference so hash-based containers key it by identity rather
// than by the pointed-to value. Key is comparable: == between Keys is identity
// of the wrapped references, and the runtime hashes a Key by the address it
// holds. map[Key[T]]V, set maps, maphash.Comparable, and any generic container
// with a comparable constraint work out of the box.
//
// The wrapped reference is fixed at construction; the zero Key wraps nil.
type Key[T any] struct {
	p *T
}

// Deref returns the wrapped reference.
func (k Key[T]) Deref() *T {
	return k.p
}

// Same reports whether other wraps the same object.
func (k Key[T]) Same(other Key[T]) bool {
	return k.p == other.p
}

// RefHash writes the identity of the wrapped reference into w.
func (k Key[T]) RefHash(w io.Writer) {
	Hash(w, k.p)
}

// String implements fmt.Stringer.
func (k Key[T]) String() string {
	return fmt.Sprintf("Key(%p)", k.p)
}
