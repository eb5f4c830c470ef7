// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericArithmetic(t *testing.T) {
	a := NewNumericColumn([]int64{1, 2, 3}, nil)
	b := NewNumericColumn([]int64{10, 20, 30}, nil)

	sum := Add(a, b)
	for i := uint32(0); i < 3; i++ {
		v, ok := sum.Get(i)
		assert.True(t, ok)
		assert.Equal(t, a.storage.(*numericStorage[int64]).data[i]+b.storage.(*numericStorage[int64]).data[i], v)
	}

	diff := Sub(b, a)
	v, ok := diff.Get(1)
	assert.True(t, ok)
	assert.Equal(t, int64(18), v)
}

func TestNumericScalar(t *testing.T) {
	a := NewNumericColumn([]int64{1, 2, 3}, nil)
	out := AddScalar(a, 5)

	v, ok := out.Get(0)
	assert.True(t, ok)
	assert.Equal(t, int64(6), v)
}

func TestNumericDivisionByZero(t *testing.T) {
	a := NewNumericColumn([]int64{10, 20}, nil)
	zero := NewNumericColumn([]int64{0, 4}, nil)

	out := Div(a, zero)
	v, ok := out.Get(0)
	assert.True(t, ok)
	assert.Equal(t, int64(0), v)

	v, ok = out.Get(1)
	assert.True(t, ok)
	assert.Equal(t, int64(5), v)
}

func TestNumericNullPropagation(t *testing.T) {
	a := NewNumericColumn([]int64{1, 2, 3}, []bool{true, false, true})
	b := NewNumericColumn([]int64{10, 20, 30}, nil)

	sum := Add(a, b)
	_, ok := sum.Get(1)
	assert.False(t, ok)

	v, ok := sum.Get(0)
	assert.True(t, ok)
	assert.Equal(t, int64(11), v)
}

func TestComparisons(t *testing.T) {
	a := NewNumericColumn([]int64{1, 5, 3}, nil)
	b := NewNumericColumn([]int64{2, 5, 1}, nil)

	lt := Lt(a, b)
	v, _ := lt.Get(0)
	assert.True(t, v)

	eq := Eq(a, b)
	v, _ = eq.Get(1)
	assert.True(t, v)

	gt := Gt(a, b)
	v, _ = gt.Get(2)
	assert.True(t, v)
}

func TestUnaryOps(t *testing.T) {
	a := NewNumericColumn([]float64{-1, 4, -9}, nil)

	abs := Abs(a)
	v, _ := abs.Get(0)
	assert.Equal(t, 1.0, v)

	sq := Sqrt(NewNumericColumn([]float64{4, 9}, nil))
	v, _ = sq.Get(0)
	assert.Equal(t, 2.0, v)
	v, _ = sq.Get(1)
	assert.Equal(t, 3.0, v)
}

func TestSumMinMax(t *testing.T) {
	a := NewNumericColumn([]int64{5, -2, 8, 1}, []bool{true, true, false, true})

	assert.Equal(t, int64(4), Sum(a))

	min, ok := Min(a)
	assert.True(t, ok)
	assert.Equal(t, int64(-2), min)

	max, ok := Max(a)
	assert.True(t, ok)
	assert.Equal(t, int64(5), max)
}

func TestWhereNumeric(t *testing.T) {
	a := NewNumericColumn([]int64{1, 2, 3}, nil)
	cond := NewBoolColumn([]bool{true, false, true}, nil)

	out := WhereNumeric(a, cond)
	v, ok := out.Get(0)
	assert.True(t, ok)
	assert.Equal(t, int64(1), v)

	_, ok = out.Get(1)
	assert.False(t, ok)
}

func TestWhereOrNumeric(t *testing.T) {
	a := NewNumericColumn([]int64{1, 2, 3}, nil)
	other := NewNumericColumn([]int64{100, 200, 300}, nil)
	cond := NewBoolColumn([]bool{true, false, true}, nil)

	out := WhereOrNumeric(a, cond, other)
	v, ok := out.Get(1)
	assert.True(t, ok)
	assert.Equal(t, int64(200), v)
}

func TestMaskOrNumericDuality(t *testing.T) {
	a := NewNumericColumn([]int64{1, 2, 3}, nil)
	other := NewNumericColumn([]int64{100, 200, 300}, nil)
	cond := NewBoolColumn([]bool{true, false, true}, nil)

	left := MaskOrNumeric(a, cond, other)
	right := WhereOrNumeric(other, cond, a)

	for i := uint32(0); i < 3; i++ {
		lv, lok := left.Get(i)
		rv, rok := right.Get(i)
		assert.Equal(t, lok, rok)
		assert.Equal(t, lv, rv)
	}
}

func TestIntegralOps(t *testing.T) {
	a := NewNumericColumn([]int64{6, 12, 9}, nil)
	b := NewNumericColumn([]int64{3, 8, 0}, nil)

	mod := Mod(a, b)
	v, _ := mod.Get(0)
	assert.Equal(t, int64(0), v)
	v, ok := mod.Get(2)
	assert.True(t, ok)
	assert.Equal(t, int64(0), v) // divisor-zero policy matches Div

	and := And(a, b)
	v, _ = and.Get(1)
	assert.Equal(t, int64(12&8), v)

	or := Or(a, b)
	v, _ = or.Get(1)
	assert.Equal(t, int64(12|8), v)

	xor := Xor(a, b)
	v, _ = xor.Get(1)
	assert.Equal(t, int64(12^8), v)

	shl := Shl(NewNumericColumn([]int64{1, 2}, nil), NewNumericColumn([]int64{2, 3}, nil))
	v, _ = shl.Get(0)
	assert.Equal(t, int64(4), v)

	shr := Shr(NewNumericColumn([]int64{8, 16}, nil), NewNumericColumn([]int64{1, 2}, nil))
	v, _ = shr.Get(1)
	assert.Equal(t, int64(4), v)
}

func TestIntegralScalarOps(t *testing.T) {
	a := NewNumericColumn([]int64{6, 12, 9}, nil)

	mod := ModScalar(a, 4)
	v, _ := mod.Get(0)
	assert.Equal(t, int64(2), v)

	and := AndScalar(a, 5)
	v, _ = and.Get(1)
	assert.Equal(t, int64(12&5), v)

	or := OrScalar(a, 5)
	v, _ = or.Get(1)
	assert.Equal(t, int64(12|5), v)

	xor := XorScalar(a, 5)
	v, _ = xor.Get(1)
	assert.Equal(t, int64(12^5), v)

	shl := ShlScalar(NewNumericColumn([]int64{1, 2}, nil), 2)
	v, _ = shl.Get(0)
	assert.Equal(t, int64(4), v)

	shr := ShrScalar(NewNumericColumn([]int64{8, 16}, nil), 2)
	v, _ = shr.Get(1)
	assert.Equal(t, int64(4), v)
}

func TestComparisonScalarOps(t *testing.T) {
	a := NewNumericColumn([]int64{1, 5, 3}, nil)

	ne := NeScalar(a, 5)
	v, _ := ne.Get(0)
	assert.True(t, v)
	v, _ = ne.Get(1)
	assert.False(t, v)

	le := LeScalar(a, 3)
	v, _ = le.Get(0)
	assert.True(t, v)
	v, _ = le.Get(1)
	assert.False(t, v)

	ge := GeScalar(a, 3)
	v, _ = ge.Get(1)
	assert.True(t, v)
	v, _ = ge.Get(0)
	assert.False(t, v)
}

func TestMissingConditionTakesElseBranch(t *testing.T) {
	a := NewNumericColumn([]int64{1, 2}, nil)
	other := NewNumericColumn([]int64{9, 9}, nil)
	cond := NewBoolColumn([]bool{true}, nil) // shorter: row 1's condition is missing

	out := WhereOrNumeric(a, cond, other)
	v, ok := out.Get(1)
	assert.True(t, ok)
	assert.Equal(t, int64(9), v)
}
