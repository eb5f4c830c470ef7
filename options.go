// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package frame

// Options carries engine-wide knobs, mirroring collection.go's functional
// Options pattern (NewCollection(opts ...Option)) rather than a bare struct
// literal.
type Options struct {
	// InitialCapacity hints how many columns NewDataFrame should preallocate
	// its column-name and lookup slots for, avoiding repeated growth during
	// bulk ingestion.
	InitialCapacity int

	// LaneWidth sets the lane width Column.LaneMasks uses; a non-positive
	// value makes it fall back to the element type's own lane count
	// (spec §9's "lane count chosen per element type").
	LaneWidth int
}

// Option configures an Options value.
type Option func(*Options)

// WithCapacity sets the column-slot preallocation hint used by NewDataFrame.
func WithCapacity(n int) Option {
	return func(o *Options) { o.InitialCapacity = n }
}

// WithLaneWidth sets the default SIMD lane width, one of 4 or 8.
func WithLaneWidth(k int) Option {
	return func(o *Options) { o.LaneWidth = k }
}

// NewOptions builds an Options value from the given functional options,
// defaulting to an 8-lane width and no capacity hint.
func NewOptions(opts ...Option) Options {
	o := Options{LaneWidth: 8}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
