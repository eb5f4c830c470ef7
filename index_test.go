// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRangeIndex(t *testing.T) {
	ix := NewRangeIndex(5)
	assert.Equal(t, 5, ix.Length())

	off, ok := ix.Get(Int(3))
	assert.True(t, ok)
	assert.Equal(t, uint32(3), off)

	_, ok = ix.Get(Int(9))
	assert.False(t, ok)
}

func TestNewIndexLabels(t *testing.T) {
	ix := NewIndex([]Label{String("a"), String("b"), String("c")})
	assert.Equal(t, 3, ix.Length())

	off, ok := ix.Get(String("b"))
	assert.True(t, ok)
	assert.Equal(t, uint32(1), off)
}

func TestNewIndexDuplicateLabels(t *testing.T) {
	ix := NewIndex([]Label{String("a"), String("b"), String("a")})
	assert.Equal(t, 2, ix.Length())

	off, ok := ix.Get(String("a"))
	assert.True(t, ok)
	assert.Equal(t, uint32(0), off)
}

func TestSameIdentity(t *testing.T) {
	a := NewRangeIndex(3)
	b := NewRangeIndex(3)
	assert.True(t, SameIdentity(a, a))
	assert.False(t, SameIdentity(a, b))
}

func TestUnion(t *testing.T) {
	a := NewIndex([]Label{String("x"), String("y")})
	b := NewIndex([]Label{String("y"), String("z")})

	u := Union(a, b)
	assert.Equal(t, 3, u.Length())

	for i, want := range []string{"x", "y", "z"} {
		off, ok := u.Get(String(want))
		assert.True(t, ok)
		assert.Equal(t, uint32(i), off)
	}
}

func TestUnionSameIdentityShortCircuits(t *testing.T) {
	a := NewRangeIndex(4)
	u := Union(a, a)
	assert.True(t, SameIdentity(a, u))
}

func TestIndexInsert(t *testing.T) {
	ix := NewIndex([]Label{String("a")})

	same, off := ix.Insert(String("a"))
	assert.True(t, SameIdentity(ix, same))
	assert.Equal(t, uint32(0), off)

	grown, off := ix.Insert(String("b"))
	assert.False(t, SameIdentity(ix, grown))
	assert.Equal(t, uint32(1), off)
	assert.Equal(t, 1, ix.Length())
	assert.Equal(t, 2, grown.Length())
}

func TestLocRange(t *testing.T) {
	ix := NewRangeIndex(10)
	ranged := ix.LocRange(3, 6)

	for i := 0; i < 10; i++ {
		want := i >= 3 && i < 6
		assert.Equal(t, want, ranged.Exists().Get(uint32(i)), "offset %d", i)
	}
}

func TestIndexFilter(t *testing.T) {
	ix := NewRangeIndex(4)
	cond := NewBoolColumn([]bool{true, false, true, false}, nil)

	filtered := ix.Filter(cond)
	assert.True(t, filtered.Exists().Get(0))
	assert.False(t, filtered.Exists().Get(1))
	assert.True(t, filtered.Exists().Get(2))
	assert.False(t, filtered.Exists().Get(3))
}
