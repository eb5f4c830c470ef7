// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package frame

// NewStringColumn builds a column over an offsets+bytes string buffer, with
// an optional validity slice (nil means every value is present), the string
// specialization of spec §6's series_from_values.
func NewStringColumn(vals []string, validity []bool) *Column[string] {
	return newColumn(NewRangeIndex(len(vals)), newStringStorage(vals, validity))
}

// Concat implements spec §4.5's string fast path: align the two operands,
// derive the combined validity mask, then splice each valid slot's
// concatenation into one new byte buffer in a single pass.
func Concat(a, b *Column[string]) *Column[string] {
	index, ls, rs := align(a, b)
	left, right := ls.(*stringStorage), rs.(*stringStorage)
	mask := combinedMask(index, left.validity(), right.validity())

	out := concatStrings(left, right, mask, func(l, r string) string { return l + r })
	return newColumn(index, out)
}

// binaryStringCompare runs fn over every lane valid in both operands,
// materializing straight into a boolean column (spec §4.6's comparison
// family extended to strings).
func binaryStringCompare(a, b *Column[string], fn func(x, y string) bool) *Column[bool] {
	index, ls, rs := align(a, b)
	left, right := ls.(*stringStorage), rs.(*stringStorage)
	mask := combinedMask(index, left.validity(), right.validity())

	data := NewValidity(uint32(index.Length()), false)
	for i := uint32(0); i < uint32(index.Length()); i++ {
		if !mask.Get(i) {
			continue
		}
		lv, _ := left.get(i)
		rv, _ := right.get(i)
		if fn(lv, rv) {
			data.Set(i)
		}
	}

	return newColumn(index, &boolStorage{data: data, valid: mask})
}

func EqString(a, b *Column[string]) *Column[bool] {
	return binaryStringCompare(a, b, func(x, y string) bool { return x == y })
}

func NeString(a, b *Column[string]) *Column[bool] {
	return binaryStringCompare(a, b, func(x, y string) bool { return x != y })
}

func LtString(a, b *Column[string]) *Column[bool] {
	return binaryStringCompare(a, b, func(x, y string) bool { return x < y })
}

func GtString(a, b *Column[string]) *Column[bool] {
	return binaryStringCompare(a, b, func(x, y string) bool { return x > y })
}

// MapInPlace rewrites every valid string slot through fn, rebuilding offsets
// as it goes (spec §9 boundary test: "string ops with length-increasing and
// length-decreasing functions"). The resulting column shares the source's
// index and carries a copy of its validity bitmap; the byte buffer and
// offsets are rebuilt.
func MapInPlace(c *Column[string], fn func(string) string) *Column[string] {
	ss := c.storage.(*stringStorage)
	return newColumn(c.index, ss.mapInPlace(fn))
}

// WhereString, MaskString, WhereOrString, MaskOrString mirror the numeric
// where/mask family (spec §4.9) for string-valued columns.
func WhereString(c *Column[string], cond *Column[bool]) *Column[string] {
	return whereOrString(c, cond, nil)
}

func MaskString(c *Column[string], cond *Column[bool]) *Column[string] {
	return whereOrString(c, unaryBoolColumn(cond, func(v bool) bool { return !v }), nil)
}

func WhereOrString(c *Column[string], cond *Column[bool], other *Column[string]) *Column[string] {
	return whereOrString(c, cond, other)
}

func MaskOrString(c *Column[string], cond *Column[bool], other *Column[string]) *Column[string] {
	return whereOrString(other, cond, c)
}

func whereOrString(c *Column[string], cond *Column[bool], other *Column[string]) *Column[string] {
	index := Union(c.index, cond.index)
	if other != nil {
		index = Union(index, other.index)
	}

	self := c.Reindex(index).storage.(*stringStorage)
	condBits := cond.Reindex(index).storage.(*boolStorage)

	var otherVals *stringStorage
	if other != nil {
		otherVals = other.Reindex(index).storage.(*stringStorage)
	}

	n := uint32(index.Length())
	out := &stringStorage{ends: make([]uint32, n), bytes: make([]byte, 0, len(self.bytes)), valid: NewValidity(n, false)}

	for i := uint32(0); i < n; i++ {
		condTrue, _ := condBits.get(i)
		switch {
		case condTrue:
			if v, ok := self.get(i); ok {
				out.bytes = append(out.bytes, v...)
				out.valid.Set(i)
			}
		case otherVals != nil:
			if v, ok := otherVals.get(i); ok {
				out.bytes = append(out.bytes, v...)
				out.valid.Set(i)
			}
		}
		out.ends[i] = uint32(len(out.bytes))
	}

	return newColumn(index, out)
}
