// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package frame

// NewBoolColumn builds a column over a bitmap-backed boolean buffer, with an
// optional validity slice (nil means every value is present), the boolean
// specialization of spec §6's series_from_values.
func NewBoolColumn(vals []bool, validity []bool) *Column[bool] {
	return newColumn(NewRangeIndex(len(vals)), newBoolStorage(vals, validity))
}

// unaryBoolColumn maps fn pointwise over a boolean column, preserving
// validity unchanged. Used directly by Not, and by maskOrNumeric/MaskBool to
// express mask in terms of where over a negated condition.
func unaryBoolColumn(c *Column[bool], fn func(bool) bool) *Column[bool] {
	bs := c.storage.(*boolStorage)
	data := NewValidity(bs.Len(), false)
	for i := uint32(0); i < bs.Len(); i++ {
		if v, ok := bs.get(i); ok && fn(v) {
			data.Set(i)
		}
	}
	return newColumn(c.index, &boolStorage{data: data, valid: bs.valid.Clone()})
}

// Not negates every valid slot, leaving invalid slots invalid.
func Not(c *Column[bool]) *Column[bool] {
	return unaryBoolColumn(c, func(v bool) bool { return !v })
}

// binaryBool implements spec §4.5's logical operators directly against the
// two bitmaps rather than looping scalar-wise: align the operands, derive
// the combined validity mask, then combine the data bitmaps with op and mask
// off the invalid lanes in one pass.
func binaryBool(a, b *Column[bool], op func(x, y *Validity) *Validity) *Column[bool] {
	index, ls, rs := align(a, b)
	left, right := ls.(*boolStorage), rs.(*boolStorage)
	mask := combinedMask(index, left.validity(), right.validity())

	data := op(left.data.Clone(), right.data)
	data.And(mask)

	return newColumn(index, &boolStorage{data: data, valid: mask})
}

// AndCol, OrCol, XorCol are the (Column, Column) boolean logical operators of
// spec §6, implemented as bitmap-native AND/OR/XOR rather than the generic
// scalarLoop path numeric columns use.
func AndCol(a, b *Column[bool]) *Column[bool] {
	return binaryBool(a, b, func(x, y *Validity) *Validity { x.And(y); return x })
}

func OrCol(a, b *Column[bool]) *Column[bool] {
	return binaryBool(a, b, func(x, y *Validity) *Validity { x.Or(y); return x })
}

func XorCol(a, b *Column[bool]) *Column[bool] {
	return binaryBool(a, b, func(x, y *Validity) *Validity { x.Xor(y); return x })
}

// --------------------------- reductions (spec §4.8) ----------------------------

// Any reports whether any live, valid slot holds true: derive the combined
// mask (data ∧ exists ∧ index.exists) and short-circuit on the first
// nonzero block (spec §4.8 "any").
func Any(c *Column[bool]) bool {
	bs := c.storage.(*boolStorage)
	mask := bs.combinedMask(c.index.Exists())
	return mask.Any()
}

// All reports whether every live row holds true: a row with no opinion
// (masked out by index/validity) cannot fail the check, so the per-block
// test is (data ∨ ¬(exists ∧ index.exists)) == all-ones (spec §4.8 "all").
func All(c *Column[bool]) bool {
	bs := c.storage.(*boolStorage)
	live := bs.valid.Clone()
	live.And(c.index.Exists())

	notLive := live.Clone()
	notLive.Not()

	ones := bs.data.Clone()
	ones.Or(notLive)
	return ones.All()
}

// None is the complement of Any, per spec §4.8's "none" reduction.
func None(c *Column[bool]) bool {
	return !Any(c)
}

// --------------------------- where/mask (spec §4.9) ----------------------------

// WhereBool, MaskBool, WhereOrBool, MaskOrBool mirror the numeric where/mask
// family (spec §4.9) for boolean-valued columns, sharing the same
// missing-condition-is-false convention.
func WhereBool(c *Column[bool], cond *Column[bool]) *Column[bool] {
	return whereOrBool(c, cond, nil)
}

func MaskBool(c *Column[bool], cond *Column[bool]) *Column[bool] {
	return whereOrBool(c, unaryBoolColumn(cond, func(v bool) bool { return !v }), nil)
}

func WhereOrBool(c *Column[bool], cond *Column[bool], other *Column[bool]) *Column[bool] {
	return whereOrBool(c, cond, other)
}

func MaskOrBool(c *Column[bool], cond *Column[bool], other *Column[bool]) *Column[bool] {
	return whereOrBool(other, cond, c)
}

// whereOrBool is the shared engine behind where_/where_or/mask/mask_or for
// boolean-valued columns: a missing condition is treated as "not true"
// (spec §4.9), so it always takes the else branch (other, or invalid when
// other is nil). self may also be nil, in which case every slot whose
// condition holds is invalid.
func whereOrBool(self *Column[bool], cond *Column[bool], other *Column[bool]) *Column[bool] {
	index := cond.index
	if self != nil {
		index = Union(index, self.index)
	}
	if other != nil {
		index = Union(index, other.index)
	}

	condBits := cond.Reindex(index).storage.(*boolStorage)

	var selfVals *boolStorage
	if self != nil {
		selfVals = self.Reindex(index).storage.(*boolStorage)
	}

	var otherVals *boolStorage
	if other != nil {
		otherVals = other.Reindex(index).storage.(*boolStorage)
	}

	n := uint32(index.Length())
	data := NewValidity(n, false)
	valid := NewValidity(n, false)

	for i := uint32(0); i < n; i++ {
		condTrue, _ := condBits.get(i)
		if condTrue {
			if selfVals != nil {
				if v, ok := selfVals.get(i); ok {
					if v {
						data.Set(i)
					}
					valid.Set(i)
				}
			}
			continue
		}
		if otherVals != nil {
			if v, ok := otherVals.get(i); ok {
				if v {
					data.Set(i)
				}
				valid.Set(i)
			}
		}
	}

	return newColumn(index, &boolStorage{data: data, valid: valid})
}
