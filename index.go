// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package frame

import (
	"fmt"

	"github.com/kelindar/intmap"
)

// Index is an immutable, shareable ordered sequence of row labels together
// with a label->offset map and a per-offset "live" bit (spec §3/§4.2).
// Structural sharing is observable by identity: two columns that reference
// the same *Index are considered already aligned and skip realignment.
type Index struct {
	data   []Label
	intMap *intmap.Map // fast path: populated only when every label seen so far is an integer
	genMap map[Label]uint32
	exists *Validity
}

// NewRangeIndex builds the default dense positional index 0..n-1, the shape
// produced by series_from_values when no explicit labels are supplied.
func NewRangeIndex(n int) *Index {
	idx := &Index{
		data:   make([]Label, n),
		intMap: intmap.New(n),
		exists: NewValidity(uint32(n), true),
	}
	for i := 0; i < n; i++ {
		idx.data[i] = Int(int64(i))
		idx.intMap.Store(uint32(i), uint32(i))
	}
	return idx
}

// NewIndex builds an index over an explicit, ordered label sequence. Duplicate
// labels resolve to the offset of their first occurrence, matching spec §4.2.
func NewIndex(labels []Label) *Index {
	idx := &Index{
		data:   make([]Label, 0, len(labels)),
		genMap: make(map[Label]uint32, len(labels)),
		exists: NewValidity(0, false),
	}
	for _, l := range labels {
		idx.insertLabel(l)
	}
	return idx
}

// insertLabel appends label if unseen and returns its offset; used only while
// building a fresh, uniquely-owned Index (construction time, never shared).
func (ix *Index) insertLabel(l Label) uint32 {
	if off, ok := ix.lookupMapIgnoringExists(l); ok {
		return off
	}
	off := uint32(len(ix.data))
	ix.data = append(ix.data, l)
	ix.exists.Set(off)
	ix.storeMap(l, off)
	return off
}

func (ix *Index) storeMap(l Label, off uint32) {
	switch {
	case ix.intMap != nil && l.IsInt():
		ix.intMap.Store(uint32(l.Int64()), off)
	case ix.intMap != nil:
		// First non-integer label: materialize the general map from the
		// int fast path and stop relying on intMap going forward.
		ix.genMap = make(map[Label]uint32, len(ix.data))
		for i, d := range ix.data {
			ix.genMap[d] = uint32(i)
		}
		ix.intMap = nil
		ix.genMap[l] = off
	default:
		if ix.genMap == nil {
			ix.genMap = make(map[Label]uint32, 8)
		}
		ix.genMap[l] = off
	}
}

// lookupMapIgnoringExists looks the label up in the offset map without
// consulting the "exists" bitmap.
func (ix *Index) lookupMapIgnoringExists(l Label) (uint32, bool) {
	if ix.intMap != nil && l.IsInt() {
		return ix.intMap.Load(uint32(l.Int64()))
	}
	if ix.genMap != nil {
		off, ok := ix.genMap[l]
		return off, ok
	}
	// Mixed case: intMap holds the int-only prefix, genMap was not yet
	// materialized, and l is itself not an int. Rare; fall back to a scan.
	for i, d := range ix.data {
		if d == l {
			return uint32(i), true
		}
	}
	return 0, false
}

// Length reports the number of label slots (including rows marked not-live).
func (ix *Index) Length() int { return len(ix.data) }

// Data returns the ordered label sequence. The caller must not mutate it.
func (ix *Index) Data() []Label { return ix.data }

// Get returns the offset of label iff it is mapped and currently live
// (spec §4.2 "get").
func (ix *Index) Get(l Label) (uint32, bool) {
	off, ok := ix.lookupMapIgnoringExists(l)
	if !ok || !ix.exists.Get(off) {
		return 0, false
	}
	return off, true
}

// Exists exposes the live-row validity bitmap.
func (ix *Index) Exists() *Validity { return ix.exists }

// SameIdentity reports whether two Index values are the exact same shared
// object, the fast path that lets align/reindex skip work (spec §4.2/§4.4).
func SameIdentity(a, b *Index) bool { return a == b }

// Union returns an index whose data is a.data followed by the labels of
// b.data not already present in a, preserving first-occurrence order, with a
// fresh all-true "exists" bitmap over the new length (spec §4.2 "union").
func Union(a, b *Index) *Index {
	if SameIdentity(a, b) {
		return a
	}

	out := &Index{
		data: make([]Label, len(a.data), len(a.data)+len(b.data)),
	}
	copy(out.data, a.data)

	if a.intMap != nil {
		out.intMap = intmap.New(len(a.data) + len(b.data))
		for i, l := range a.data {
			out.intMap.Store(uint32(l.Int64()), uint32(i))
		}
	} else {
		out.genMap = make(map[Label]uint32, len(a.data)+len(b.data))
		for i, l := range a.data {
			out.genMap[l] = uint32(i)
		}
	}

	for _, l := range b.data {
		if _, ok := out.lookupMapIgnoringExists(l); ok {
			continue
		}
		off := uint32(len(out.data))
		out.data = append(out.data, l)
		out.storeMap(l, off)
	}

	out.exists = NewValidity(uint32(len(out.data)), true)
	return out
}

// Insert returns (self, offset) if label is already mapped, or a new Index
// with label appended and (self', N) otherwise (spec §4.2 "insert"). Because
// Index is conceptually copy-on-write and this package never mutates a
// shared Index in place, Insert always returns a fresh object when growing.
func (ix *Index) Insert(l Label) (*Index, uint32) {
	if off, ok := ix.lookupMapIgnoringExists(l); ok {
		return ix, off
	}

	clone := ix.clone()
	off := clone.insertLabel(l)
	return clone, off
}

// clone deep-copies the index structure (used by the rare mutating paths:
// Insert-growth, which must not disturb a shared Index).
func (ix *Index) clone() *Index {
	out := &Index{
		data:   append([]Label(nil), ix.data...),
		exists: ix.exists.Clone(),
	}
	if ix.intMap != nil {
		out.intMap = intmap.New(len(ix.data))
		for i, l := range ix.data {
			out.intMap.Store(uint32(l.Int64()), uint32(i))
		}
	} else {
		out.genMap = make(map[Label]uint32, len(ix.genMap))
		for k, v := range ix.genMap {
			out.genMap[k] = v
		}
	}
	return out
}

// LocRange returns an index sharing data/map with ix, but with a fresh
// "exists" bitmap set only where the integer label falls within [lo, hi)
// (spec §4.2 "loc_range"). No data is reallocated.
func (ix *Index) LocRange(lo, hi int64) *Index {
	exists := NewValidity(uint32(len(ix.data)), false)
	for i, l := range ix.data {
		if l.IsInt() && l.Int64() >= lo && l.Int64() < hi {
			exists.Set(uint32(i))
		}
	}
	return &Index{data: ix.data, intMap: ix.intMap, genMap: ix.genMap, exists: exists}
}

// Filter reindexes boolCol to ix and sets "exists" to boolCol.data AND
// boolCol.valid (spec §4.2 "filter": false where the boolean was missing or
// false).
func (ix *Index) Filter(boolCol *Column[bool]) *Index {
	aligned := boolCol.Reindex(ix)
	exists := NewValidity(uint32(len(ix.data)), false)
	for i := 0; i < len(ix.data); i++ {
		if v, ok := aligned.storage.get(uint32(i)); ok && v {
			exists.Set(uint32(i))
		}
	}
	return &Index{data: ix.data, intMap: ix.intMap, genMap: ix.genMap, exists: exists}
}

// String renders a short debug preview of the index.
func (ix *Index) String() string {
	const preview = 5
	n := len(ix.data)
	if n <= preview*2 {
		return fmt.Sprintf("Index(n=%d, %v)", n, ix.data)
	}
	return fmt.Sprintf("Index(n=%d, [%v ... %v])", n, ix.data[:preview], ix.data[n-preview:])
}
