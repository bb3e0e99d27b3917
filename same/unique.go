package same

import "io"

// NewUnique wraps v with a fresh identity.
func NewUnique[V any](v V) Unique[V] {
	// The token is one byte, not struct{}: zero-size allocations may share
	// an address.
	return Unique[V]{v: v, id: new(byte)}
}

// Unique pairs a value with its own allocation, giving identity to values
// that are not references. Copies of a Unique are the same; two NewUnique
// calls never are, even over equal values. The zero Unique holds the zero
// value and no identity.
type Unique[V any] struct {
	v  V
	id *byte
}

// Value returns the wrapped value.
func (u Unique[V]) Value() V {
	return u.v
}

// Same reports whether other descends from the same NewUnique call.
func (u Unique[V]) Same(other Unique[V]) bool {
	return u.id == other.id
}

// RefHash writes the identity of u into w.
func (u Unique[V]) RefHash(w io.Writer) {
	Hash(w, u.id)
}
