// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package frame

import "github.com/kelindar/bitmap"

// numericStorage is the packed-lane backing buffer for numeric columns:
// a tightly packed []T plus a validity bitmap (spec §4.3 "Storage (numeric
// T)"). Its length always equals the owning Index's length.
type numericStorage[T Numeric] struct {
	data  []T
	valid *Validity
}

// newNumericStorage builds a numeric storage from host-provided values and
// an optional validity slice (nil means "all valid"), used by
// NewNumericColumn, the series_from_values entry point (spec §6).
func newNumericStorage[T Numeric](vals []T, validity []bool) *numericStorage[T] {
	data := append([]T(nil), vals...)
	valid := NewValidity(uint32(len(data)), validity == nil)
	if validity != nil {
		for i, ok := range validity {
			if ok {
				valid.Set(uint32(i))
			}
		}
	}
	return &numericStorage[T]{data: data, valid: valid}
}

func (s *numericStorage[T]) Len() uint32 { return uint32(len(s.data)) }

func (s *numericStorage[T]) get(i uint32) (T, bool) {
	if i >= uint32(len(s.data)) || !s.valid.Get(i) {
		var zero T
		return zero, false
	}
	return s.data[i], true
}

func (s *numericStorage[T]) zero() T { var z T; return z }

func (s *numericStorage[T]) validity() *Validity { return s.valid }

func (s *numericStorage[T]) clone() storage[T] {
	return &numericStorage[T]{
		data:  append([]T(nil), s.data...),
		valid: s.valid.Clone(),
	}
}

func (s *numericStorage[T]) reindex(prevIndex, newIndex *Index) storage[T] {
	if SameIdentity(prevIndex, newIndex) {
		return s
	}

	n := uint32(newIndex.Length())
	out := &numericStorage[T]{data: make([]T, n), valid: NewValidity(n, false)}
	return reindexGeneric[T](prevIndex, newIndex, s.Len(), s.get,
		func(uint32) (func(uint32, T), func() storage[T]) {
			return func(i uint32, v T) {
					out.data[i] = v
					out.valid.Set(i)
				}, func() storage[T] {
					return out
				}
		})
}

// sum folds over the packed lanes with a per-lane validity mask, using
// kelindar/bitmap's masked reduction kernel directly against the raw data
// slice (spec §4.8 "sum").
func (s *numericStorage[T]) sum(mask *Validity) T {
	return bitmap.Sum(s.data, mask.Raw())
}

// min/max expose the same masked-reduction shape as sum, also delegated to
// kelindar/bitmap, which already implements a masked fold with an "any
// valid" flag.
func (s *numericStorage[T]) min(mask *Validity) (T, bool) {
	return bitmap.Min(s.data, mask.Raw())
}

func (s *numericStorage[T]) max(mask *Validity) (T, bool) {
	return bitmap.Max(s.data, mask.Raw())
}
