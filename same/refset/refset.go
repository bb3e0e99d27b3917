package refset

// New builds a Set of the given references.
func New[T any](items ...*T) Set[T] {
	s := make(Set[T], len(items))
	for _, p := range items {
		s.Add(p)
	}
	return s
}

// Set is a set of references keyed by identity: two pointers occupy one slot
// only when they point at the same object, never because their contents are
// equal.
type Set[T any] map[*T]struct{}

// Add puts p into the set. It reports whether p was newly added, false when a
// handle to the same object was already present.
func (s Set[T]) Add(p *T) bool {
	if _, ok := s[p]; ok {
		return false
	}
	s[p] = struct{}{}
	return true
}

// Has reports whether a handle to the same object as p is in the set.
func (s Set[T]) Has(p *T) bool {
	_, ok := s[p]
	return ok
}

// Remove deletes p from the set.
func (s Set[T]) Remove(p *T) {
	delete(s, p)
}

// Len returns the number of distinct objects in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// Clear removes all references.
func (s Set[T]) Clear() {
	clear(s)
}

// Values returns the references in unspecified order.
func (s Set[T]) Values() []*T {
	values := make([]*T, 0, len(s))
	for p := range s {
		values = append(values, p)
	}
	return values
}

// Each calls fn for every reference until fn returns false.
func (s Set[T]) Each(fn func(*T) bool) {
	for p := range s {
		if !fn(p) {
			return
		}
	}
}
