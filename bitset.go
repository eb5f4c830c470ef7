// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package frame

import (
	"github.com/kelindar/bitmap"
)

// Validity is a packed bit array tracking, for each row offset, whether a
// value is present. It is the shared building block behind both an Index's
// "exists" bitmap and a Storage's validity bitmap (spec §4.1).
//
// Validity wraps kelindar/bitmap.Bitmap, which already gives us block-word
// (uint64) access and Range/And/AndNot/Or/Xor.
type Validity struct {
	bits bitmap.Bitmap
	n    uint32
}

// NewValidity creates a validity bitmap of length n, with every bit set to
// the given default.
func NewValidity(n uint32, allTrue bool) *Validity {
	v := &Validity{bits: make(bitmap.Bitmap, 0, (n>>6)+1), n: n}
	if n > 0 {
		v.bits.Grow(n - 1)
	}
	if allTrue {
		for i := range v.bits {
			v.bits[i] = ^uint64(0)
		}
		v.trimTail()
	}
	return v
}

// trimTail clears any spuriously-set bits beyond n in the final block so that
// Count/Range/All never observe phantom rows (spec §3: "trailing lanes ...
// are undefined but masked").
func (v *Validity) trimTail() {
	for i := v.n; i < uint32(len(v.bits))<<6; i++ {
		v.bits.Remove(i)
	}
}

// Len reports the logical length of the bitmap.
func (v *Validity) Len() uint32 { return v.n }

// Get reports whether bit i is set.
func (v *Validity) Get(i uint32) bool {
	return i < v.n && v.bits.Contains(i)
}

// Set marks bit i as present, growing the bitmap if necessary.
func (v *Validity) Set(i uint32) {
	v.growTo(i)
	v.bits.Set(i)
}

// Clear marks bit i as absent.
func (v *Validity) Clear(i uint32) {
	if i < v.n {
		v.bits.Remove(i)
	}
}

// growTo grows the backing bitmap so index i is addressable.
func (v *Validity) growTo(i uint32) {
	if i < v.n {
		return
	}
	v.bits.Grow(i)
	v.n = i + 1
}

// Clone returns an independent copy of the bitmap (copy-on-write support).
func (v *Validity) Clone() *Validity {
	var dst bitmap.Bitmap
	v.bits.Clone(&dst)
	return &Validity{bits: dst, n: v.n}
}

// Count returns the number of set bits.
func (v *Validity) Count() int {
	return v.bits.Count()
}

// Any reports whether any bit is set, stopping at the first nonzero block.
func (v *Validity) Any() bool {
	for _, w := range v.bits {
		if w != 0 {
			return true
		}
	}
	return false
}

// All reports whether every one of the n logical bits is set, stopping at
// the first block that has a logical bit clear.
func (v *Validity) All() bool {
	for i := uint32(0); i < v.n; i += 64 {
		want := ^uint64(0)
		if v.n-i < 64 {
			want = uint64(1)<<(v.n-i) - 1
		}
		blk := int(i >> 6)
		if blk >= len(v.bits) || v.bits[blk]&want != want {
			return false
		}
	}
	return true
}

// Range calls fn for every set bit, in ascending order.
func (v *Validity) Range(fn func(i uint32)) {
	v.bits.Range(fn)
}

// And intersects this bitmap in place with other (spec §4.1: "and").
func (v *Validity) And(other *Validity) {
	v.bits.And(other.bits)
}

// AndNot computes this bitmap minus other, in place (spec §4.1: "difference").
func (v *Validity) AndNot(other *Validity) {
	v.bits.AndNot(other.bits)
}

// Or unions this bitmap in place with other (spec §4.1: "or"/"union").
func (v *Validity) Or(other *Validity) {
	v.bits.Or(other.bits)
	if other.n > v.n {
		v.n = other.n
	}
}

// Xor computes the symmetric difference in place (spec §4.1: "xor").
func (v *Validity) Xor(other *Validity) {
	v.bits.Xor(other.bits)
}

// Not flips every one of the n logical bits in place (spec §4.1: "not").
func (v *Validity) Not() {
	for i := range v.bits {
		v.bits[i] = ^v.bits[i]
	}
	v.trimTail()
}

// Raw exposes the underlying block words, for kernels (such as bitmap.Sum)
// that operate directly on a bitmap.Bitmap mask.
func (v *Validity) Raw() bitmap.Bitmap {
	return v.bits
}

// --------------------------- lane mask derivation (spec §4.1) ----------------------------

// laneTables holds, for a given lane width K, a precomputed lookup table
// mapping the low K bits of a block to a [K]bool lane mask. This is a direct
// generalization of original_source/df/src/simd.rs's BITS_TO_M64X4 table,
// built once at startup instead of being hand-written per width.
var laneTables = map[int][][8]bool{
	4: buildLaneTable(4),
	8: buildLaneTable(8),
}

// buildLaneTable precomputes, for every value of the low k bits of a block
// (0..2^k), the expanded boolean lane it represents.
func buildLaneTable(k int) [][8]bool {
	table := make([][8]bool, 1<<uint(k))
	for bits := range table {
		var lane [8]bool
		for slot := 0; slot < k; slot++ {
			lane[slot] = (bits>>uint(slot))&1 == 1
		}
		table[bits] = lane
	}
	return table
}

// LaneMasks returns a block-iterator that yields consecutive K-slot windows
// of the bitmap as boolean lane masks, one K-bit slice at a time, honoring
// spec §4.1's invariant that consecutive lane masks correspond 1:1 with
// consecutive K-slot windows of the underlying bitmap. K must divide 64.
func (v *Validity) LaneMasks(k int) func() (lane [8]bool, width int, ok bool) {
	table, known := laneTables[k]
	if !known {
		table = buildLaneTable(k)
	}

	blockIdx := 0
	block := uint64(0)
	bitsLeft := 0
	remaining := int(v.n)

	return func() (lane [8]bool, width int, ok bool) {
		if remaining <= 0 {
			return lane, 0, false
		}
		if bitsLeft == 0 {
			if blockIdx < len(v.bits) {
				block = v.bits[blockIdx]
			} else {
				block = 0
			}
			blockIdx++
			bitsLeft = 64
		}

		width = k
		if remaining < k {
			width = remaining
		}
		lane = table[block&((1<<uint(k))-1)]
		block >>= uint(k)
		bitsLeft -= k
		remaining -= width
		return lane, width, true
	}
}
