// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package frame

// Column (Series) pairs a row Index with a Storage of the same length
// (spec §3 "Column (Series)"). The effective value sequence is the set of
// offsets where both index.exists and storage.valid hold.
type Column[T any] struct {
	index   *Index
	storage storage[T]
}

// newColumn wraps an index/storage pair, checking the length invariant of
// spec §3: "S.len() == I.length()".
func newColumn[T any](index *Index, s storage[T]) *Column[T] {
	if s.Len() != uint32(index.Length()) {
		panic(errInvariant("column: storage length does not match index length"))
	}
	return &Column[T]{index: index, storage: s}
}

// Len reports the number of row slots (live and not-live) in the column.
func (c *Column[T]) Len() int { return c.index.Length() }

// Index exposes the column's row index.
func (c *Column[T]) Index() *Index { return c.index }

// Get returns the value at offset i, and whether it is present there. A
// value is present iff index.exists[i] AND storage.valid[i] (spec §8,
// first invariant).
func (c *Column[T]) Get(i uint32) (T, bool) {
	if !c.index.Exists().Get(i) {
		var zero T
		return zero, false
	}
	return c.storage.get(i)
}

// At looks a value up by row label rather than raw offset.
func (c *Column[T]) At(label Label) (T, bool) {
	off, ok := c.index.Get(label)
	if !ok {
		var zero T
		return zero, false
	}
	return c.storage.get(off)
}

// Iter calls fn for every row, in index order, passing the row label and an
// (value, present) pair exactly as spec §6's series_iter describes.
func (c *Column[T]) Iter(fn func(label Label, value T, ok bool)) {
	for i, label := range c.index.Data() {
		off := uint32(i)
		present := c.index.Exists().Get(off)
		var v T
		if present {
			v, present = c.storage.get(off)
		}
		fn(label, v, present)
	}
}

// Reindex lays the column out over a new index (spec §4.3/§6 "reindex").
// Reindexing a column to its own index is a no-op by identity (spec §8
// "Reindex idempotence").
func (c *Column[T]) Reindex(newIndex *Index) *Column[T] {
	if SameIdentity(c.index, newIndex) {
		return c
	}
	return newColumn(newIndex, c.storage.reindex(c.index, newIndex))
}

// Filter narrows the column to the rows where cond holds (spec §4.10
// analog for a single Series: "filter(c, boolColumn)").
func (c *Column[T]) Filter(cond *Column[bool]) *Column[T] {
	return newColumn(c.index.Filter(cond), c.storage)
}

// withIndex re-wraps the column over newIndex while keeping the same
// storage object (no data copy). Unlike Reindex, it does not consult index
// identity or realign values across a label set change: the caller (e.g.
// DataFrame.Filter) must guarantee newIndex only narrows/widens "exists"
// over the same underlying data/map as c.index (spec §4.10 "sharing all
// storages ... no data is copied").
func (c *Column[T]) withIndex(newIndex *Index) *Column[T] {
	return newColumn(newIndex, c.storage)
}

// LocRange keeps only rows whose integer label falls in [lo, hi)
// (spec §4.2/§6 "loc_range").
func (c *Column[T]) LocRange(lo, hi int64) *Column[T] {
	return newColumn(c.index.LocRange(lo, hi), c.storage)
}

// align reconciles two columns to a common row index, the union of their
// indexes unless they already share identity (spec §4.4). It returns the
// shared index and each column's storage reindexed onto it.
func align[T any](a, b *Column[T]) (*Index, storage[T], storage[T]) {
	if SameIdentity(a.index, b.index) {
		return a.index, a.storage, b.storage
	}

	u := Union(a.index, b.index)
	return u, a.storage.reindex(a.index, u), b.storage.reindex(b.index, u)
}

// combinedMask computes left.valid ∧ right.valid ∧ index.exists, the
// validity propagation rule shared by every binary operator (spec §4.5
// "Null propagation").
func combinedMask(index *Index, left, right *Validity) *Validity {
	m := left.Clone()
	m.And(right)
	m.And(index.Exists())
	return m
}

// LaneMasks exposes spec §4.1's block iterator ("a block iterator that
// produces SIMD lane masks") at the column level, honoring the engine-wide
// lane width carried by o (SPEC_FULL.md §1's Options knob) rather than a
// hardcoded width, for callers that want to drive their own packed loop over
// the column's combined validity instead of using Add/Sub/Eq/... directly. A
// non-positive o.LaneWidth falls back to the element type's own SIMD lane
// count (spec §9 "chosen per element type").
func (c *Column[T]) LaneMasks(o Options) func() (lane [8]bool, width int, ok bool) {
	k := o.LaneWidth
	if k <= 0 {
		k = typeLaneWidth[T]()
	}
	return combinedMask(c.index, c.storage.validity(), c.storage.validity()).LaneMasks(k)
}
