package same

import "io"

// Samer is implemented by types that define reference identity for themselves.
// Same must be reflexive, symmetric, and stable while both operands are alive.
type Samer[T any] interface {
	// Same reports whether other refers to the same object as the receiver.
	Same(other T) bool
}

// RefHasher is implemented by types that can feed their identity into a hash
// accumulator. Two values that are Same must feed identical bytes.
type RefHasher interface {
	// RefHash writes the identity of the receiver into w.
	RefHash(w io.Writer)
}
