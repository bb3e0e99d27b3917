// Package same tests identity of objects: whether two references point at the
// same underlying storage, regardless of whether their contents are equal.
// It is the counterpart of value equality, the way == on contents or
// reflect.DeepEqual see the world.
//
// Identity is defined per reference shape. Pointers and channels compare by
// address, slices by backing array and length, maps and funcs by their runtime
// headers. Key adapts a reference for use as an identity-keyed map key, and
// Unique gives identity to values that are not references.
//
// Two typed nil references are the same: they hold equal addresses. An untyped
// nil interface refers to no object and is never the same as anything.
//
// One caveat applies throughout: the Go runtime may place all zero-size
// allocations at one address, so identity of zero-size objects (new(struct{}),
// empty slice literals) is not meaningful.
package same

import (
	"reflect"
	"unsafe"
)

// Pointers reports whether a and b point at the same object. Equal contents
// in distinct allocations are not the same object.
func Pointers[T any](a, b *T) bool {
	return a == b
}

// Slices reports whether a and b are the same view of the same backing array.
// Identity covers the data pointer and the length, so a subslice is not the
// same as the slice it was cut from.
func Slices[E any](a, b []E) bool {
	return len(a) == len(b) && unsafe.SliceData(a) == unsafe.SliceData(b)
}

// Maps reports whether a and b share the same underlying map.
func Maps[K comparable, V any](a, b map[K]V) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// Chans reports whether a and b are the same channel. Go's == on channels is
// already identity; Chans completes the vocabulary.
func Chans[T any](a, b chan T) bool {
	return a == b
}

// Funcs reports whether a and b are the same function. Identity of a func
// value is its code pointer, which cannot tell closures created from one
// literal apart: whether they compare as same depends on how the compiler
// materialized them. The linker may also merge identical function bodies into
// one pointer. Arguments that are not functions are never the same.
func Funcs(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != reflect.Func || vb.Kind() != reflect.Func {
		return false
	}
	return va.Pointer() == vb.Pointer()
}

// Objects reports whether a and b refer to the same object, whatever their
// reference shape: pointer, map, channel, func, slice, or unsafe pointer.
// Values of other kinds and nil interfaces are never the same as anything.
//
// Objects compares storage locations, not types: a struct and its first field
// live at one address and count as the same object.
func Objects(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != vb.Kind() {
		return false
	}
	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	}
	return false
}
