// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package frame

import "math"

// NewNumericColumn builds a column over a packed numeric buffer, with an
// optional validity slice (nil means every value is present), the core
// entry point of spec §6's series_from_values for numeric element types.
func NewNumericColumn[T Numeric](vals []T, validity []bool) *Column[T] {
	return newColumn(NewRangeIndex(len(vals)), newNumericStorage(vals, validity))
}

// binaryNumeric implements spec §4.5's numeric fast path: align the two
// operands, derive the combined validity mask, run the kernel over every
// lane, and blend invalid slots to the element type's default.
func binaryNumeric[T Numeric](a, b *Column[T], fn func(x, y T) T) *Column[T] {
	index, ls, rs := align(a, b)
	left, right := ls.(*numericStorage[T]), rs.(*numericStorage[T])
	mask := combinedMask(index, left.validity(), right.validity())

	out := make([]T, index.Length())
	numericKernel[T]{}.scalarLoop(out, left.data, right.data, fn)
	var zero T
	for i := range out {
		if !mask.Get(uint32(i)) {
			out[i] = zero
		}
	}

	return newColumn(index, &numericStorage[T]{data: out, valid: mask})
}

// broadcast lifts a bare scalar into a column sharing c's index, used by the
// (Column, scalar) operator forms of spec §6 ("broadcast the scalar into
// each lane").
func broadcast[T Numeric](c *Column[T], v T) *Column[T] {
	data := make([]T, c.Len())
	for i := range data {
		data[i] = v
	}
	return newColumn(c.index, &numericStorage[T]{data: data, valid: NewValidity(uint32(c.Len()), true)})
}

// Add, Sub, Mul, Div implement the arithmetic surface of spec §6
// ("+ - * / over (Column, Column) and (Column, scalar)"). The (Column,
// Column) forms run a per-element scalar loop (numericKernel.scalarLoop);
// they do not call the kelindar/simd kernels that numericKernel.add/sub/mul
// wrap. Div (like Mod) returns the zero value at a zero divisor and leaves
// that slot valid (SPEC_FULL.md §9).
func Add[T Numeric](a, b *Column[T]) *Column[T] {
	return binaryNumeric(a, b, func(x, y T) T { return x + y })
}
func Sub[T Numeric](a, b *Column[T]) *Column[T] {
	return binaryNumeric(a, b, func(x, y T) T { return x - y })
}
func Mul[T Numeric](a, b *Column[T]) *Column[T] {
	return binaryNumeric(a, b, func(x, y T) T { return x * y })
}
func Div[T Numeric](a, b *Column[T]) *Column[T] {
	return binaryNumeric(a, b, func(x, y T) T {
		if y == 0 {
			return 0
		}
		return x / y
	})
}

func AddScalar[T Numeric](a *Column[T], v T) *Column[T] { return Add(a, broadcast(a, v)) }
func SubScalar[T Numeric](a *Column[T], v T) *Column[T] { return Sub(a, broadcast(a, v)) }
func MulScalar[T Numeric](a *Column[T], v T) *Column[T] { return Mul(a, broadcast(a, v)) }
func DivScalar[T Numeric](a *Column[T], v T) *Column[T] { return Div(a, broadcast(a, v)) }

// Mod, And, Or, Shl, Shr are the integer-only bitwise/modulo operators of
// spec §6, restricted to Integral element types.
func Mod[T Integral](a, b *Column[T]) *Column[T] { return binaryNumeric(a, b, modulo[T]) }
func And[T Integral](a, b *Column[T]) *Column[T] { return binaryNumeric(a, b, bitAnd[T]) }
func Or[T Integral](a, b *Column[T]) *Column[T]  { return binaryNumeric(a, b, bitOr[T]) }
func Shl[T Integral](a, b *Column[T]) *Column[T] { return binaryNumeric(a, b, shiftL[T]) }
func Shr[T Integral](a, b *Column[T]) *Column[T] { return binaryNumeric(a, b, shiftR[T]) }
func Xor[T Integral](a, b *Column[T]) *Column[T] { return binaryNumeric(a, b, bitXor[T]) }

// ModScalar, AndScalar, OrScalar, XorScalar, ShlScalar, ShrScalar are the
// (Column, scalar) forms of the bitwise/modulo family above, completing
// spec §6's "+ - * / % & | << >> ... over (Column, Column) and (Column,
// scalar)" for the Integral operators.
func ModScalar[T Integral](a *Column[T], v T) *Column[T] { return Mod(a, broadcast(a, v)) }
func AndScalar[T Integral](a *Column[T], v T) *Column[T] { return And(a, broadcast(a, v)) }
func OrScalar[T Integral](a *Column[T], v T) *Column[T]  { return Or(a, broadcast(a, v)) }
func ShlScalar[T Integral](a *Column[T], v T) *Column[T] { return Shl(a, broadcast(a, v)) }
func ShrScalar[T Integral](a *Column[T], v T) *Column[T] { return Shr(a, broadcast(a, v)) }
func XorScalar[T Integral](a *Column[T], v T) *Column[T] { return Xor(a, broadcast(a, v)) }

// --------------------------- comparisons (spec §4.6) ----------------------------

// compareNumeric implements spec §4.6: same dispatch as binaryNumeric, but
// materializes straight into a boolean column's bitmap rather than going
// through a scalar intermediate ("Lane-wise comparisons materialize into
// bitmap words directly without a scalar fallback").
func compareNumeric[T Numeric](a, b *Column[T], fn func(x, y T) bool) *Column[bool] {
	index, ls, rs := align(a, b)
	left, right := ls.(*numericStorage[T]), rs.(*numericStorage[T])
	mask := combinedMask(index, left.validity(), right.validity())

	data := NewValidity(uint32(index.Length()), false)
	for i := uint32(0); i < uint32(index.Length()); i++ {
		if mask.Get(i) && fn(left.data[i], right.data[i]) {
			data.Set(i)
		}
	}

	return newColumn(index, &boolStorage{data: data, valid: mask})
}

func Eq[T Numeric](a, b *Column[T]) *Column[bool] {
	return compareNumeric(a, b, func(x, y T) bool { return x == y })
}
func Ne[T Numeric](a, b *Column[T]) *Column[bool] {
	return compareNumeric(a, b, func(x, y T) bool { return x != y })
}
func Lt[T Numeric](a, b *Column[T]) *Column[bool] {
	return compareNumeric(a, b, func(x, y T) bool { return x < y })
}
func Le[T Numeric](a, b *Column[T]) *Column[bool] {
	return compareNumeric(a, b, func(x, y T) bool { return x <= y })
}
func Gt[T Numeric](a, b *Column[T]) *Column[bool] {
	return compareNumeric(a, b, func(x, y T) bool { return x > y })
}
func Ge[T Numeric](a, b *Column[T]) *Column[bool] {
	return compareNumeric(a, b, func(x, y T) bool { return x >= y })
}

func GtScalar[T Numeric](a *Column[T], v T) *Column[bool] { return Gt(a, broadcast(a, v)) }
func LtScalar[T Numeric](a *Column[T], v T) *Column[bool] { return Lt(a, broadcast(a, v)) }
func EqScalar[T Numeric](a *Column[T], v T) *Column[bool] { return Eq(a, broadcast(a, v)) }
func NeScalar[T Numeric](a *Column[T], v T) *Column[bool] { return Ne(a, broadcast(a, v)) }
func LeScalar[T Numeric](a *Column[T], v T) *Column[bool] { return Le(a, broadcast(a, v)) }
func GeScalar[T Numeric](a *Column[T], v T) *Column[bool] { return Ge(a, broadcast(a, v)) }

// --------------------------- unary ops (spec §4.7) ----------------------------

// unaryNumeric maps fn pointwise, preserving validity unchanged.
func unaryNumeric[T Numeric](c *Column[T], fn func(T) T) *Column[T] {
	ns := c.storage.(*numericStorage[T])
	out := make([]T, ns.Len())
	for i, v := range ns.data {
		out[i] = fn(v)
	}
	return newColumn(c.index, &numericStorage[T]{data: out, valid: ns.valid.Clone()})
}

func Neg[T Numeric](c *Column[T]) *Column[T] { return unaryNumeric(c, func(v T) T { return -v }) }

// Abs, Sqrt and the rest of the floating-point transcendental family operate
// on float64 columns; integer callers convert first, matching spec §4.7's
// "numeric pointwise functions (abs, signum, trigonometric, logarithmic,
// rounding, predicate tests)".
func Abs(c *Column[float64]) *Column[float64]   { return unaryNumeric(c, math.Abs) }
func Sqrt(c *Column[float64]) *Column[float64]  { return unaryNumeric(c, math.Sqrt) }
func Sin(c *Column[float64]) *Column[float64]   { return unaryNumeric(c, math.Sin) }
func Cos(c *Column[float64]) *Column[float64]   { return unaryNumeric(c, math.Cos) }
func Log(c *Column[float64]) *Column[float64]   { return unaryNumeric(c, math.Log) }
func Floor(c *Column[float64]) *Column[float64] { return unaryNumeric(c, math.Floor) }
func Ceil(c *Column[float64]) *Column[float64]  { return unaryNumeric(c, math.Ceil) }
func Round(c *Column[float64]) *Column[float64] { return unaryNumeric(c, math.Round) }

func Signum(c *Column[float64]) *Column[float64] {
	return unaryNumeric(c, func(v float64) float64 {
		switch {
		case v > 0:
			return 1
		case v < 0:
			return -1
		default:
			return 0
		}
	})
}

// IsNaN is the predicate-test family's representative member: pointwise,
// but the result is boolean rather than float64.
func IsNaN(c *Column[float64]) *Column[bool] {
	ns := c.storage.(*numericStorage[float64])
	data := NewValidity(ns.Len(), false)
	for i, v := range ns.data {
		if math.IsNaN(v) {
			data.Set(uint32(i))
		}
	}
	return newColumn(c.index, &boolStorage{data: data, valid: ns.valid.Clone()})
}

// --------------------------- reductions (spec §4.8) ----------------------------

// Sum folds over packed lanes with a per-lane validity mask, delegating to
// kelindar/bitmap's masked Sum kernel (spec §4.8 "sum").
func Sum[T Numeric](c *Column[T]) T {
	ns := c.storage.(*numericStorage[T])
	mask := combinedMask(c.index, ns.validity(), ns.validity())
	return ns.sum(mask)
}

// Min/Max expose the same masked-reduction shape as Sum.
func Min[T Numeric](c *Column[T]) (T, bool) {
	ns := c.storage.(*numericStorage[T])
	mask := combinedMask(c.index, ns.validity(), ns.validity())
	return ns.min(mask)
}

func Max[T Numeric](c *Column[T]) (T, bool) {
	ns := c.storage.(*numericStorage[T])
	mask := combinedMask(c.index, ns.validity(), ns.validity())
	return ns.max(mask)
}

// --------------------------- where/mask (spec §4.9) ----------------------------

// WhereNumeric keeps self where cond is true, elsewhere marks invalid.
func WhereNumeric[T Numeric](c *Column[T], cond *Column[bool]) *Column[T] {
	return whereOrNumeric(c, cond, nil)
}

// MaskNumeric keeps self where cond is false, elsewhere marks invalid.
func MaskNumeric[T Numeric](c *Column[T], cond *Column[bool]) *Column[T] {
	return maskOrNumeric(c, cond, nil)
}

// WhereOrNumeric keeps self where cond is true, takes other elsewhere.
func WhereOrNumeric[T Numeric](c *Column[T], cond *Column[bool], other *Column[T]) *Column[T] {
	return whereOrNumeric(c, cond, other)
}

// MaskOrNumeric is exactly where_or(other, cond, self), per spec §4.9's
// duality and spec §8's testable property ("mask_or(s, c, o) ≡
// where_or(o, c, s)").
func MaskOrNumeric[T Numeric](c *Column[T], cond *Column[bool], other *Column[T]) *Column[T] {
	return WhereOrNumeric(other, cond, c)
}

func maskOrNumeric[T Numeric](c *Column[T], cond *Column[bool], other *Column[T]) *Column[T] {
	negated := unaryBoolColumn(cond, func(v bool) bool { return !v })
	return whereOrNumeric(c, negated, other)
}

// whereOrNumeric is the shared engine behind where_/where_or/mask/mask_or: a
// missing condition is treated as "not true" (spec §4.9), so it always takes
// the "else" branch (other, or invalid when other is nil).
func whereOrNumeric[T Numeric](c *Column[T], cond *Column[bool], other *Column[T]) *Column[T] {
	index := Union(c.index, cond.index)
	if other != nil {
		index = Union(index, other.index)
	}

	self := c.Reindex(index).storage.(*numericStorage[T])
	condBits := cond.Reindex(index).storage.(*boolStorage)

	var otherVals *numericStorage[T]
	if other != nil {
		otherVals = other.Reindex(index).storage.(*numericStorage[T])
	}

	n := uint32(index.Length())
	out := make([]T, n)
	valid := NewValidity(n, false)

	for i := uint32(0); i < n; i++ {
		condTrue, _ := condBits.get(i) // missing condition => false => else branch
		if condTrue {
			if v, ok := self.get(i); ok {
				out[i] = v
				valid.Set(i)
			}
			continue
		}
		if otherVals != nil {
			if v, ok := otherVals.get(i); ok {
				out[i] = v
				valid.Set(i)
			}
		}
	}

	return newColumn(index, &numericStorage[T]{data: out, valid: valid})
}
