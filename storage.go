// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package frame

// storage is the common contract every typed backing buffer satisfies: a
// packed value buffer (however it is laid out) plus a validity bitmap
// (spec §3 "Storage"). Column[T] holds one of these behind an interface so
// that align/reindex/where/mask can be written once, generically, while the
// concrete numeric/bool/string families keep their own packed layouts.
type storage[T any] interface {
	// Len reports the number of row slots backing this storage.
	Len() uint32

	// get returns the value at offset i and whether it is valid there.
	get(i uint32) (T, bool)

	// zero is the element type's default/zero value, emitted for invalid
	// slots (spec §4.3 "emit the element type's default").
	zero() T

	// clone returns an independent, deep copy (copy-on-write support).
	clone() storage[T]

	// reindex lays the storage out over newIndex, copying values across from
	// prevIndex by label and marking anything absent as invalid
	// (spec §4.3 "reindex").
	reindex(prevIndex, newIndex *Index) storage[T]

	// validity exposes the per-slot validity bitmap directly, used by the
	// SIMD fast paths in column.go to build the combined mask without
	// going through get() one slot at a time.
	validity() *Validity
}

// reindexGeneric implements the storage-agnostic half of spec §4.3's reindex
// algorithm: "for each label L in new_index.data: if prev_index.get(L)
// yields offset p and prev.valid[p], copy prev[p] and mark valid; otherwise
// emit the element type's default and mark invalid." Concrete storages call
// this helper and only supply how to read/write a single slot.
func reindexGeneric[T any](
	prevIndex, newIndex *Index,
	prevLen uint32,
	get func(offset uint32) (T, bool),
	makeOut func(n uint32) (setValid func(i uint32, v T), finish func() storage[T]),
) storage[T] {
	n := uint32(newIndex.Length())
	setValid, finish := makeOut(n)

	for i, label := range newIndex.Data() {
		if p, ok := prevIndex.Get(label); ok && p < prevLen {
			if v, valid := get(p); valid {
				setValid(uint32(i), v)
				continue
			}
		}
	}
	return finish()
}
