// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestFrame() (*DataFrame, *Column[int64], *Column[bool]) {
	age := NewNumericColumn([]int64{34, 21, 45, 19}, nil)
	active := NewBoolColumn([]bool{true, false, true, true}, nil)
	name := NewStringColumn([]string{"amy", "bo", "cid", "dex"}, nil)

	df := NewDataFrame(age.Index())
	df.Insert("age", FromInt64(age))
	df.Insert("active", FromBool(active))
	df.Insert("name", FromString(name))
	return df, age, active
}

func TestDataFrameInsertAndGet(t *testing.T) {
	df, _, _ := newTestFrame()

	assert.Equal(t, 4, df.Len())
	assert.Equal(t, []string{"age", "active", "name"}, df.Columns())

	col, err := df.Int64("age")
	assert.NoError(t, err)
	v, ok := col.Get(0)
	assert.True(t, ok)
	assert.Equal(t, int64(34), v)
}

func TestDataFrameTypeMismatch(t *testing.T) {
	df, _, _ := newTestFrame()

	_, err := df.Bool("age")
	assert.Error(t, err)

	_, err = df.Int64("missing")
	assert.Error(t, err)
}

func TestDataFrameInsertReplacesInPlace(t *testing.T) {
	df, _, _ := newTestFrame()

	replacement := NewNumericColumn([]int64{1, 2, 3, 4}, nil)
	df.Insert("age", FromInt64(replacement))

	assert.Equal(t, []string{"age", "active", "name"}, df.Columns())

	col, err := df.Int64("age")
	assert.NoError(t, err)
	v, _ := col.Get(0)
	assert.Equal(t, int64(1), v)
}

func TestDataFrameFilter(t *testing.T) {
	df, age, active := newTestFrame()

	adult := GtScalar(age, 21)
	filtered := df.Filter(AndCol(adult, active))

	assert.Equal(t, 2, filtered.Len())            // two live rows remain
	assert.Equal(t, 4, filtered.Index().Length()) // index length unchanged, only exists narrows

	col, err := filtered.Int64("age")
	assert.NoError(t, err)

	var kept []int64
	col.Iter(func(_ Label, v int64, ok bool) {
		if ok {
			kept = append(kept, v)
		}
	})
	assert.Equal(t, []int64{34, 45}, kept)
}

func TestDataFrameFilterSharesStorage(t *testing.T) {
	df, _, _ := newTestFrame()
	before, err := df.Int64("age")
	assert.NoError(t, err)

	cond := NewBoolColumn([]bool{true, true, true, true}, nil)
	filtered := df.Filter(cond)

	after, err := filtered.Int64("age")
	assert.NoError(t, err)
	assert.True(t, before.storage == after.storage, "filter must reuse the same storage object, not copy it")
	assert.False(t, SameIdentity(before.index, after.index), "filter must produce a narrowed index distinct from the original")
}

func TestDataFrameAssignAndColByTag(t *testing.T) {
	df, _, _ := newTestFrame()

	score := NewNumericColumn([]float64{9.5, 8.1, 7.7, 6.6}, nil)
	Assign(df, TagOf[float64](), score)

	got, err := Col[float64](df)
	assert.NoError(t, err)
	v, ok := got.Get(0)
	assert.True(t, ok)
	assert.Equal(t, 9.5, v)

	// Tagged insert appends alongside the named columns.
	assert.Contains(t, df.Columns(), "age")
	assert.Equal(t, 4, df.Len())
}

func TestDataFrameAssignReplacesInPlace(t *testing.T) {
	df, _, _ := newTestFrame()

	tag := TagOf[float64]()
	Assign(df, tag, NewNumericColumn([]float64{1, 2, 3, 4}, nil))
	Assign(df, tag, NewNumericColumn([]float64{10, 20, 30, 40}, nil))

	got, err := Col[float64](df)
	assert.NoError(t, err)
	v, _ := got.Get(0)
	assert.Equal(t, 10.0, v)
}

func TestDataFrameColByTagMissing(t *testing.T) {
	df, _, _ := newTestFrame()

	_, err := Col[float64](df)
	assert.Error(t, err)
}

func TestDataFrameString(t *testing.T) {
	df, _, _ := newTestFrame()
	s := df.String()
	assert.Contains(t, s, "age:int64")
	assert.Contains(t, s, "active:bool")
	assert.Contains(t, s, "name:string")
}
