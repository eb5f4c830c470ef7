// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package frame

// Kind tags the element type erased behind an AnySeries, mirroring
// original_source/df/src/storage/mod.rs's AnyStorage enum discriminant. It
// covers the full numeric surface that file's storage! macro invocation
// enumerates (int8/16/32/64, uint/8/16/32/64, float32/64), plus bool and
// string, per SPEC_FULL.md §6.
type Kind int

const (
	KindInt8 Kind = iota
	KindInt16
	KindInt32
	KindInt64
	KindInt
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUint
	KindFloat32
	KindFloat64
	KindBool
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindInt:
		return "int"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindUint:
		return "uint"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// kindOf derives the Kind tag for T from a compile-time type switch over its
// zero value. Every element type this package's storage understands
// resolves to a Kind; anything else means the caller instantiated From/As
// with a type frame never stores, which is a programming error.
func kindOf[T any]() Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case int:
		return KindInt
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case uint:
		return KindUint
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case bool:
		return KindBool
	case string:
		return KindString
	default:
		panic(errUnsupportedFormat("AnySeries: unsupported element type %T", zero))
	}
}

// anySeriesBox is the per-element-type box behind an AnySeries, implemented
// generically once (typedBox[T]) instead of the one-struct-field-per-kind
// shape a hardcoded union would need across fourteen element types.
type anySeriesBox interface {
	len() int
	index() *Index
	reindex(newIndex *Index) anySeriesBox
	filter(cond *Column[bool]) anySeriesBox
	withIndex(newIndex *Index) anySeriesBox
}

type typedBox[T any] struct{ col *Column[T] }

func (b typedBox[T]) len() int           { return b.col.Len() }
func (b typedBox[T]) index() *Index      { return b.col.Index() }
func (b typedBox[T]) reindex(ix *Index) anySeriesBox  { return typedBox[T]{b.col.Reindex(ix)} }
func (b typedBox[T]) filter(c *Column[bool]) anySeriesBox { return typedBox[T]{b.col.Filter(c)} }
func (b typedBox[T]) withIndex(ix *Index) anySeriesBox { return typedBox[T]{b.col.withIndex(ix)} }

// AnySeries is spec §3's "Dynamic column (AnySeries)": a Column[T] with its
// element type erased behind a Kind tag, so a DataFrame can hold columns of
// differing element type in one ordered collection. Go has no sum type, so
// AnySeries holds its one concrete *Column[T] behind a small generic box
// selected by kind, the same shape as the Rust source's
// Element::into_any/from_any pair, generalized across kindOf's full
// element-type surface rather than one struct field per type.
type AnySeries struct {
	kind Kind
	box  anySeriesBox
}

// From wraps a typed column into its erased form (the "into_any" direction).
func From[T any](c *Column[T]) AnySeries {
	return AnySeries{kind: kindOf[T](), box: typedBox[T]{c}}
}

// As downcasts an erased column back to its concrete element type T,
// returning ErrTypeMismatch (spec §7) when the erased kind does not match T
// (the "from_any" direction).
func As[T any](a AnySeries) (*Column[T], error) {
	b, ok := a.box.(typedBox[T])
	if !ok {
		return nil, errTypeMismatch("AnySeries holds %s, not %s", a.kind, kindOf[T]())
	}
	return b.col, nil
}

// FromInt8 .. FromString and AsInt8 .. AsString are thin, explicitly-typed
// wrappers over From/As, for callers (e.g. DataFrame's by-name accessors)
// that prefer to name the element type at the call site.
func FromInt8(c *Column[int8]) AnySeries       { return From(c) }
func FromInt16(c *Column[int16]) AnySeries     { return From(c) }
func FromInt32(c *Column[int32]) AnySeries     { return From(c) }
func FromInt64(c *Column[int64]) AnySeries     { return From(c) }
func FromInt(c *Column[int]) AnySeries         { return From(c) }
func FromUint8(c *Column[uint8]) AnySeries     { return From(c) }
func FromUint16(c *Column[uint16]) AnySeries   { return From(c) }
func FromUint32(c *Column[uint32]) AnySeries   { return From(c) }
func FromUint64(c *Column[uint64]) AnySeries   { return From(c) }
func FromUint(c *Column[uint]) AnySeries       { return From(c) }
func FromFloat32(c *Column[float32]) AnySeries { return From(c) }
func FromFloat64(c *Column[float64]) AnySeries { return From(c) }
func FromBool(c *Column[bool]) AnySeries       { return From(c) }
func FromString(c *Column[string]) AnySeries   { return From(c) }

func (a AnySeries) AsInt8() (*Column[int8], error)       { return As[int8](a) }
func (a AnySeries) AsInt16() (*Column[int16], error)     { return As[int16](a) }
func (a AnySeries) AsInt32() (*Column[int32], error)     { return As[int32](a) }
func (a AnySeries) AsInt64() (*Column[int64], error)     { return As[int64](a) }
func (a AnySeries) AsInt() (*Column[int], error)         { return As[int](a) }
func (a AnySeries) AsUint8() (*Column[uint8], error)     { return As[uint8](a) }
func (a AnySeries) AsUint16() (*Column[uint16], error)   { return As[uint16](a) }
func (a AnySeries) AsUint32() (*Column[uint32], error)   { return As[uint32](a) }
func (a AnySeries) AsUint64() (*Column[uint64], error)   { return As[uint64](a) }
func (a AnySeries) AsUint() (*Column[uint], error)       { return As[uint](a) }
func (a AnySeries) AsFloat32() (*Column[float32], error) { return As[float32](a) }
func (a AnySeries) AsFloat64() (*Column[float64], error) { return As[float64](a) }
func (a AnySeries) AsBool() (*Column[bool], error)       { return As[bool](a) }
func (a AnySeries) AsString() (*Column[string], error)   { return As[string](a) }

// Kind reports the erased element type.
func (a AnySeries) Kind() Kind { return a.kind }

// Len reports the row-slot count, valid regardless of the erased type.
func (a AnySeries) Len() int {
	if a.box == nil {
		return 0
	}
	return a.box.len()
}

// Index returns the erased column's row index without requiring a downcast.
func (a AnySeries) Index() *Index {
	if a.box == nil {
		return nil
	}
	return a.box.index()
}

// Reindex dispatches to the erased column's own Reindex, re-wrapping the
// result at the same kind (spec §4.3, lifted to the dynamic-column level).
func (a AnySeries) Reindex(newIndex *Index) AnySeries {
	return AnySeries{kind: a.kind, box: a.box.reindex(newIndex)}
}

// Filter dispatches to the erased column's own Filter, re-wrapping the
// result at the same kind (spec §4.10, lifted to the dynamic-column level).
func (a AnySeries) Filter(cond *Column[bool]) AnySeries {
	return AnySeries{kind: a.kind, box: a.box.filter(cond)}
}

// withIndex re-wraps the erased column over newIndex while keeping its
// underlying storage object (no data copy), the dynamic-column lift of
// Column.withIndex used by DataFrame.Filter.
func (a AnySeries) withIndex(newIndex *Index) AnySeries {
	return AnySeries{kind: a.kind, box: a.box.withIndex(newIndex)}
}
