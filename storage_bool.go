// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package frame

// boolStorage is the bitmap-backed specialization of spec §3 "Storage
// (bool)": two same-length bitmaps, data and exists, rather than a packed
// []bool slice.
type boolStorage struct {
	data  *Validity
	valid *Validity
}

func newBoolStorage(vals []bool, validity []bool) *boolStorage {
	data := NewValidity(uint32(len(vals)), false)
	valid := NewValidity(uint32(len(vals)), validity == nil)
	for i, v := range vals {
		if v {
			data.Set(uint32(i))
		}
	}
	if validity != nil {
		for i, ok := range validity {
			if ok {
				valid.Set(uint32(i))
			}
		}
	}
	return &boolStorage{data: data, valid: valid}
}

func (s *boolStorage) Len() uint32 { return s.valid.Len() }

func (s *boolStorage) get(i uint32) (bool, bool) {
	if i >= s.Len() || !s.valid.Get(i) {
		return false, false
	}
	return s.data.Get(i), true
}

func (s *boolStorage) zero() bool { return false }

func (s *boolStorage) validity() *Validity { return s.valid }

func (s *boolStorage) clone() storage[bool] {
	return &boolStorage{data: s.data.Clone(), valid: s.valid.Clone()}
}

func (s *boolStorage) reindex(prevIndex, newIndex *Index) storage[bool] {
	if SameIdentity(prevIndex, newIndex) {
		return s
	}

	n := uint32(newIndex.Length())
	out := &boolStorage{data: NewValidity(n, false), valid: NewValidity(n, false)}
	return reindexGeneric[bool](prevIndex, newIndex, s.Len(), s.get,
		func(uint32) (func(uint32, bool), func() storage[bool]) {
			return func(i uint32, v bool) {
					if v {
						out.data.Set(i)
					}
					out.valid.Set(i)
				}, func() storage[bool] {
					return out
				}
		})
}

// combinedMask returns data AND exists AND the index's live-row bitmap,
// the mask used throughout §4.8's any/all reductions.
func (s *boolStorage) combinedMask(indexExists *Validity) *Validity {
	m := s.data.Clone()
	m.And(s.valid)
	m.And(indexExists)
	return m
}
