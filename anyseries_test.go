// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnySeriesFullNumericSurface(t *testing.T) {
	cases := []struct {
		name string
		kind Kind
		wrap func() AnySeries
	}{
		{"int8", KindInt8, func() AnySeries { return FromInt8(NewNumericColumn([]int8{1, 2}, nil)) }},
		{"int16", KindInt16, func() AnySeries { return FromInt16(NewNumericColumn([]int16{1, 2}, nil)) }},
		{"int32", KindInt32, func() AnySeries { return FromInt32(NewNumericColumn([]int32{1, 2}, nil)) }},
		{"int64", KindInt64, func() AnySeries { return FromInt64(NewNumericColumn([]int64{1, 2}, nil)) }},
		{"int", KindInt, func() AnySeries { return FromInt(NewNumericColumn([]int{1, 2}, nil)) }},
		{"uint8", KindUint8, func() AnySeries { return FromUint8(NewNumericColumn([]uint8{1, 2}, nil)) }},
		{"uint16", KindUint16, func() AnySeries { return FromUint16(NewNumericColumn([]uint16{1, 2}, nil)) }},
		{"uint32", KindUint32, func() AnySeries { return FromUint32(NewNumericColumn([]uint32{1, 2}, nil)) }},
		{"uint64", KindUint64, func() AnySeries { return FromUint64(NewNumericColumn([]uint64{1, 2}, nil)) }},
		{"uint", KindUint, func() AnySeries { return FromUint(NewNumericColumn([]uint{1, 2}, nil)) }},
		{"float32", KindFloat32, func() AnySeries { return FromFloat32(NewNumericColumn([]float32{1, 2}, nil)) }},
		{"float64", KindFloat64, func() AnySeries { return FromFloat64(NewNumericColumn([]float64{1, 2}, nil)) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.wrap()
			assert.Equal(t, tc.kind, s.Kind())
			assert.Equal(t, 2, s.Len())
			assert.NotNil(t, s.Index())
		})
	}
}

func TestAnySeriesTypeMismatchAcrossNumericKinds(t *testing.T) {
	s := FromInt32(NewNumericColumn([]int32{1, 2, 3}, nil))

	_, err := s.AsInt64()
	assert.Error(t, err)

	v, err := s.AsInt32()
	assert.NoError(t, err)
	assert.Equal(t, 3, v.Len())
}

func TestAnySeriesReindexFilterWithIndexPreserveKind(t *testing.T) {
	c := NewNumericColumn([]uint16{10, 20, 30}, nil)
	s := FromUint16(c)

	reindexed := s.Reindex(NewRangeIndex(4))
	assert.Equal(t, KindUint16, reindexed.Kind())
	assert.Equal(t, 4, reindexed.Len())

	wrapped := s.withIndex(c.Index().LocRange(0, 2))
	assert.Equal(t, KindUint16, wrapped.Kind())

	cond := NewBoolColumn([]bool{true, false, true}, nil)
	filtered := s.Filter(cond)
	assert.Equal(t, KindUint16, filtered.Kind())

	out, err := filtered.AsUint16()
	assert.NoError(t, err)
	v, ok := out.Get(0)
	assert.True(t, ok)
	assert.Equal(t, uint16(10), v)
}
