// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package frame

import (
	"fmt"
	"reflect"

	"github.com/zeebo/xxh3"
)

// labelKind discriminates the three possible row-label shapes.
type labelKind uint8

const (
	labelInt labelKind = iota
	labelString
	labelTag
)

// Label is a discriminated row identifier: an integer position, an interned
// string, or an opaque type tag used by a DataFrame to identify typed columns.
// Labels are totally ordered and hashable so they can serve as map keys.
type Label struct {
	kind labelKind
	ival int64
	sval string
	tval reflect.Type
}

// Int creates an integer row label.
func Int(v int64) Label {
	return Label{kind: labelInt, ival: v}
}

// String creates a string row label.
func String(v string) Label {
	return Label{kind: labelString, sval: v}
}

// Tag creates an opaque type-tag label. The package-level Assign and Col
// functions in dataframe.go use a Label built this way (typically via
// TagOf) to store and retrieve a DataFrame column slot by element type
// rather than by string name (spec §4.10/§6 "col<TypeTag>()").
func Tag(t reflect.Type) Label {
	return Label{kind: labelTag, tval: t}
}

// TagOf is a convenience wrapper around Tag for a generic type parameter,
// the tag Assign/Col(df) default to when addressing a column by its Go
// element type alone.
func TagOf[T any]() Label {
	var zero T
	return Tag(reflect.TypeOf(&zero).Elem())
}

// IsInt reports whether the label is an integer position.
func (l Label) IsInt() bool { return l.kind == labelInt }

// Int64 returns the integer value of the label, valid only when IsInt().
func (l Label) Int64() int64 { return l.ival }

// Less establishes the total order over labels: kind first, then value.
func (l Label) Less(o Label) bool {
	if l.kind != o.kind {
		return l.kind < o.kind
	}
	switch l.kind {
	case labelInt:
		return l.ival < o.ival
	case labelString:
		return l.sval < o.sval
	default:
		return fmt.Sprintf("%v", l.tval) < fmt.Sprintf("%v", o.tval)
	}
}

// hash64 computes a stable hash of the label. Index's offset maps do not
// call it: they key intmap by the integer value and a Go map by Label.
func (l Label) hash64() uint64 {
	switch l.kind {
	case labelInt:
		v := uint64(l.ival)
		v ^= v >> 33
		v *= 0xff51afd7ed558ccd
		v ^= v >> 33
		return v
	case labelString:
		return xxh3.HashString(l.sval)
	default:
		return xxh3.HashString(fmt.Sprintf("tag:%v", l.tval))
	}
}

// String renders the label for debugging/printing.
func (l Label) String() string {
	switch l.kind {
	case labelInt:
		return fmt.Sprintf("%d", l.ival)
	case labelString:
		return l.sval
	default:
		return fmt.Sprintf("<%v>", l.tval)
	}
}
