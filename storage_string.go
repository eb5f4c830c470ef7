// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package frame

// stringStorage is the offsets+bytes specialization of spec §3 "Storage
// (string)": row i occupies bytes [ends[i-1], ends[i]) of a single shared
// byte buffer, with ends[-1] defined as 0.
type stringStorage struct {
	ends  []uint32 // length N; ends[i] is the exclusive end offset of row i
	bytes []byte
	valid *Validity
}

func newStringStorage(vals []string, validity []bool) *stringStorage {
	s := &stringStorage{
		ends:  make([]uint32, len(vals)),
		bytes: make([]byte, 0, 16*len(vals)),
		valid: NewValidity(uint32(len(vals)), validity == nil),
	}
	for i, v := range vals {
		s.bytes = append(s.bytes, v...)
		s.ends[i] = uint32(len(s.bytes))
	}
	if validity != nil {
		for i, ok := range validity {
			if ok {
				s.valid.Set(uint32(i))
			}
		}
	}
	return s
}

func (s *stringStorage) Len() uint32 { return uint32(len(s.ends)) }

func (s *stringStorage) start(i uint32) uint32 {
	if i == 0 {
		return 0
	}
	return s.ends[i-1]
}

func (s *stringStorage) get(i uint32) (string, bool) {
	if i >= s.Len() || !s.valid.Get(i) {
		return "", false
	}
	return string(s.bytes[s.start(i):s.ends[i]]), true
}

func (s *stringStorage) zero() string { return "" }

func (s *stringStorage) validity() *Validity { return s.valid }

func (s *stringStorage) clone() storage[string] {
	return &stringStorage{
		ends:  append([]uint32(nil), s.ends...),
		bytes: append([]byte(nil), s.bytes...),
		valid: s.valid.Clone(),
	}
}

func (s *stringStorage) reindex(prevIndex, newIndex *Index) storage[string] {
	if SameIdentity(prevIndex, newIndex) {
		return s
	}

	n := uint32(newIndex.Length())
	out := &stringStorage{ends: make([]uint32, n), bytes: make([]byte, 0, n*8), valid: NewValidity(n, false)}
	for i, label := range newIndex.Data() {
		if p, ok := prevIndex.Get(label); ok && p < s.Len() {
			if v, valid := s.get(p); valid {
				out.bytes = append(out.bytes, v...)
				out.ends[i] = uint32(len(out.bytes))
				out.valid.Set(uint32(i))
				continue
			}
		}
		out.ends[i] = uint32(len(out.bytes))
	}
	return out
}

// mapInPlace rewrites every valid string slot through fn in a single pass,
// rebuilding offsets as it goes so that a length-changing fn never indexes
// into stale offsets (spec §9 "String ops with length-changing functions").
func (s *stringStorage) mapInPlace(fn func(string) string) *stringStorage {
	out := &stringStorage{ends: make([]uint32, s.Len()), bytes: make([]byte, 0, len(s.bytes)), valid: s.valid.Clone()}
	for i := uint32(0); i < s.Len(); i++ {
		if v, ok := s.get(i); ok {
			out.bytes = append(out.bytes, fn(v)...)
		}
		out.ends[i] = uint32(len(out.bytes))
	}
	return out
}

// concatStrings implements the "string fast path" of spec §4.5: for each
// slot valid in both operands, compute op(left, right) into a scratch
// buffer, then splice it into the byte buffer and adjust offsets in one
// pass.
func concatStrings(left, right *stringStorage, mask *Validity, op func(l, r string) string) *stringStorage {
	n := mask.Len()
	out := &stringStorage{ends: make([]uint32, n), bytes: make([]byte, 0, len(left.bytes)+len(right.bytes)), valid: NewValidity(n, false)}
	for i := uint32(0); i < n; i++ {
		if mask.Get(i) {
			l, _ := left.get(i)
			r, _ := right.get(i)
			out.bytes = append(out.bytes, op(l, r)...)
			out.valid.Set(i)
		}
		out.ends[i] = uint32(len(out.bytes))
	}
	return out
}
