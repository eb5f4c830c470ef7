// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package frame

import (
	"golang.org/x/exp/constraints"
)

// Integral restricts the bitwise family of operators (&, |, <<, >>, %) to the
// subset of Numeric element types that are actually integers, following the
// same constraints.Integer building block SnellerInc-sneller's ints package
// uses for its bit-twiddling helpers. Embedding both Numeric and
// constraints.Integer intersects the two type sets, so an Integral type
// parameter already satisfies Numeric and can be passed straight into the
// numeric kernels (binaryNumeric, numericKernel) without a second constraint.
type Integral interface {
	Numeric
	constraints.Integer
}

func bitAnd[T Integral](a, b T) T  { return a & b }
func bitOr[T Integral](a, b T) T   { return a | b }
func bitXor[T Integral](a, b T) T  { return a ^ b }
func shiftL[T Integral](a, b T) T  { return a << uint64(b) }
func shiftR[T Integral](a, b T) T  { return a >> uint64(b) }
func modulo[T Integral](a, b T) T {
	if b == 0 {
		return 0 // divisor-zero policy mirrors division, see SPEC_FULL.md §9
	}
	return a % b
}
