package same

import (
	"bytes"
	"hash/maphash"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_SetMembership(t *testing.T) {
	a := 42
	b := 42

	set := map[Key[int]]struct{}{}
	set[KeyOf(&a)] = struct{}{}
	set[KeyOf(&b)] = struct{}{}

	// Equal contents, distinct allocations: two entries.
	assert.Len(t, set, 2)

	// A second handle to an existing allocation is identity-equal: a no-op.
	q := &a
	set[KeyOf(q)] = struct{}{}
	assert.Len(t, set, 2)
}

func TestKey_MapValuesByIdentity(t *testing.T) {
	a := 42
	b := 42

	labels := map[Key[int]]string{}
	labels[KeyOf(&a)] = "first"
	labels[KeyOf(&b)] = "second"
	labels[KeyOf(&a)] = "first again" // overwrites, same identity

	assert.Len(t, labels, 2)
	assert.Equal(t, "first again", labels[KeyOf(&a)])
	assert.Equal(t, "second", labels[KeyOf(&b)])
}

func TestKey_Same(t *testing.T) {
	// Verify Key implements both capability interfaces
	var _ Samer[Key[int]] = Key[int]{}
	var _ RefHasher = Key[int]{}

	a := 42
	b := 42

	assert.True(t, KeyOf(&a).Same(KeyOf(&a)))
	assert.False(t, KeyOf(&a).Same(KeyOf(&b)))

	// == between Keys is the same relation.
	assert.True(t, KeyOf(&a) == KeyOf(&a))
	assert.False(t, KeyOf(&a) == KeyOf(&b))
}

func TestKey_Deref(t *testing.T) {
	a := 42
	assert.Same(t, &a, KeyOf(&a).Deref())
}

func TestKey_RefHash(t *testing.T) {
	a := 42
	key := KeyOf(&a)

	var direct, viaKey bytes.Buffer
	Hash(&direct, &a)
	key.RefHash(&viaKey)
	assert.Equal(t, direct.Bytes(), viaKey.Bytes())
}

func TestKey_SeededHashing(t *testing.T) {
	a := 42
	seed := maphash.MakeSeed()

	// Key is comparable, so it composes with maphash like any map key.
	assert.Equal(t,
		maphash.Comparable(seed, KeyOf(&a)),
		maphash.Comparable(seed, KeyOf(&a)))
}

func TestKey_ZeroWrapsNil(t *testing.T) {
	var k Key[int]
	assert.Nil(t, k.Deref())
	assert.True(t, k.Same(KeyOf[int](nil)))
}

func TestKey_String(t *testing.T) {
	a := 42
	assert.Contains(t, KeyOf(&a).String(), "Key(0x")
}
