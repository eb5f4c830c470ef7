// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOptionsDefaults(t *testing.T) {
	o := NewOptions()
	assert.Equal(t, 8, o.LaneWidth)
	assert.Equal(t, 0, o.InitialCapacity)

	o = NewOptions(WithCapacity(32), WithLaneWidth(4))
	assert.Equal(t, 32, o.InitialCapacity)
	assert.Equal(t, 4, o.LaneWidth)
}

func TestDataFrameNewWithCapacity(t *testing.T) {
	df := NewDataFrame(NewRangeIndex(3), WithCapacity(4))
	age := NewNumericColumn([]int64{1, 2, 3}, nil)
	df.Insert("age", FromInt64(age))
	assert.Equal(t, []string{"age"}, df.Columns())
}

func TestColumnLaneMasksHonorsOptions(t *testing.T) {
	c := NewNumericColumn([]int64{1, 2, 3, 4, 5}, nil)
	next := c.LaneMasks(NewOptions(WithLaneWidth(4)))

	_, width, ok := next()
	assert.True(t, ok)
	assert.Equal(t, 4, width)

	_, width, ok = next()
	assert.True(t, ok)
	assert.Equal(t, 1, width)

	_, _, ok = next()
	assert.False(t, ok)
}
