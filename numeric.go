// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package frame

import (
	"github.com/kelindar/simd"
)

// Numeric constrains the element types a numericStorage can hold: every
// type kelindar/simd knows how to run a packed kernel over (spec §4.3
// "Storage (numeric T)"), which in turn covers the full signed/unsigned
// integer and floating-point surface constraints.Integer|constraints.Float
// names.
type Numeric interface {
	simd.Number
}

// typeLaneWidth returns the SIMD lane count K used for validity-mask
// derivation for a given element type, matching spec §9's "chosen per
// element type (typically 4 or 8)". Used by Column[T].LaneMasks, where T
// ranges over bool/string columns too (neither of which carries a
// packed-lane SIMD kernel, so they fall back to the wider 8-bit default).
func typeLaneWidth[T any]() int {
	var zero T
	switch any(zero).(type) {
	case int8, uint8, bool:
		return 8
	case int, int16, int32, int64, uint, uint16, uint32, uint64, float32, float64:
		return 4
	default:
		return 8
	}
}

// numericKernel adapts the small set of elementwise operators frame needs to
// kelindar/simd's packed arithmetic where it offers a kernel for the
// operator/type combination, and otherwise falls back to a plain scalar loop
// (spec §4.5 "Generic fast path").
type numericKernel[T Numeric] struct{}

func (numericKernel[T]) add(dst, a, b []T) { simd.Add(dst, a, b) }
func (numericKernel[T]) sub(dst, a, b []T) { simd.Sub(dst, a, b) }
func (numericKernel[T]) mul(dst, a, b []T) { simd.Mul(dst, a, b) }

func (numericKernel[T]) div(dst, a, b []T) {
	for i := range dst {
		if b[i] == 0 {
			dst[i] = 0 // divisor-zero policy, see SPEC_FULL.md §9
			continue
		}
		dst[i] = a[i] / b[i]
	}
}

func (numericKernel[T]) scalarLoop(dst, a, b []T, fn func(x, y T) T) {
	for i := range dst {
		dst[i] = fn(a[i], b[i])
	}
}

// numCast converts between any two Numeric types. Nothing in the package
// calls it; broadcast takes a scalar of the column's own element type.
func numCast[From, To Numeric](v From) To { return To(v) }
