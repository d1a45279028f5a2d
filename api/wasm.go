// Package api includes the value-level vocabulary shared by the host and
// the Wasm guest across the call boundary: value types, the scalar codec,
// trap classification, and function signatures.
//
// Memory, table, and global management are owned by the engine and are not
// part of this package; see the module-level documentation for the full
// list of collaborators this bridge does not implement.
package api

import (
	"fmt"
	"math"
)

// ValueType describes a numeric type used at the host/guest boundary. Function
// parameters and results are only definable as a value type.
//
// The following describes how to convert between Wasm and Go types:
//
//   - ValueTypeI32 - uint64(uint32,int32)
//   - ValueTypeI64 - uint64(int64)
//   - ValueTypeF32 - EncodeF32 / DecodeF32 from float32
//   - ValueTypeF64 - EncodeF64 / DecodeF64 from float64
//
// Note: This is a type alias as it is easier to encode and decode in the
// binary format, and it matches the tag values used by the Wasm binary format
// itself (https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#binary-valtype).
type ValueType = byte

const (
	// ValueTypeI32 is a 32-bit integer.
	ValueTypeI32 ValueType = 0x7f
	// ValueTypeI64 is a 64-bit integer.
	ValueTypeI64 ValueType = 0x7e
	// ValueTypeF32 is a 32-bit floating point number.
	ValueTypeF32 ValueType = 0x7d
	// ValueTypeF64 is a 64-bit floating point number.
	ValueTypeF64 ValueType = 0x7c
)

// ValueTypeName returns the type name of the given ValueType as a string.
// These type names match the names used in the WebAssembly text format.
//
// Note: This returns "unknown" if an undefined ValueType value is passed.
func ValueTypeName(t ValueType) string {
	switch t {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	}
	return "unknown"
}

// Slot is the opaque 64-bit carrier that every argument and result flows as
// across the call boundary. Encoding is type-directed: smaller types are
// zero/bit-extended and floats are bit-cast, never numerically converted.
type Slot = uint64

// Number is the set of host scalar types the Value Codec accepts. This is a
// closed set by design: the codec refuses anything not in {i32, i64, f32,
// f64} at the visible boundary, matching spec §4.1. Both signed and unsigned
// 32/64-bit integers share ValueTypeI32 / ValueTypeI64, mirroring how the
// Wasm binary format itself makes no distinction between signed and
// unsigned integers.
type Number interface {
	~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// ValueTypeOf is the constant function value_type_of<T>() of spec §4.1: it
// maps each supported host type to exactly one ValueType tag.
func ValueTypeOf[T Number]() ValueType {
	var zero T
	switch any(zero).(type) {
	case int32, uint32:
		return ValueTypeI32
	case int64, uint64:
		return ValueTypeI64
	case float32:
		return ValueTypeF32
	case float64:
		return ValueTypeF64
	default:
		panic(fmt.Sprintf("api.Number escape hatch: unsupported type %T", zero))
	}
}

// Encode widens or bit-casts v into its Slot representation. 32-bit integers
// are zero-extended and 64-bit integers keep their bit pattern; floats are bit-cast using their raw IEEE-754
// representation, so NaN payloads (including signaling NaNs) survive
// unmodified.
func Encode[T Number](v T) Slot {
	switch x := any(v).(type) {
	case int32:
		return uint64(uint32(x))
	case uint32:
		return uint64(x)
	case int64:
		return uint64(x)
	case uint64:
		return x
	case float32:
		return uint64(math.Float32bits(x))
	case float64:
		return math.Float64bits(x)
	default:
		panic(fmt.Sprintf("api.Number escape hatch: unsupported type %T", v))
	}
}

// Decode is the inverse of Encode.
func Decode[T Number](s Slot) T {
	var zero T
	switch any(zero).(type) {
	case int32:
		return any(int32(uint32(s))).(T)
	case uint32:
		return any(uint32(s)).(T)
	case int64:
		return any(int64(s)).(T)
	case uint64:
		return any(s).(T)
	case float32:
		return any(math.Float32frombits(uint32(s))).(T)
	case float64:
		return any(math.Float64frombits(s)).(T)
	default:
		panic(fmt.Sprintf("api.Number escape hatch: unsupported type %T", zero))
	}
}

// EncodeI32 encodes the input as a ValueTypeI32. Kept alongside the generic
// Encode for call sites that can't spell a type parameter conveniently, the
// same way wazero's public API offers both forms.
func EncodeI32(input int32) Slot { return Encode(input) }

// EncodeI64 encodes the input as a ValueTypeI64.
func EncodeI64(input int64) Slot { return Encode(input) }

// EncodeF32 encodes the input as a ValueTypeF32.
//
// See DecodeF32.
func EncodeF32(input float32) Slot { return Encode(input) }

// DecodeF32 decodes the input as a ValueTypeF32.
//
// See EncodeF32.
func DecodeF32(input Slot) float32 { return Decode[float32](input) }

// EncodeF64 encodes the input as a ValueTypeF64.
//
// See DecodeF64.
func EncodeF64(input float64) Slot { return Encode(input) }

// DecodeF64 decodes the input as a ValueTypeF64.
//
// See EncodeF64.
func DecodeF64(input Slot) float64 { return Decode[float64](input) }

// Signature is a pair of parameter and result value types, fixed at compile
// time for a given Function Handle.
type Signature struct {
	Params  []ValueType
	Results []ValueType
}

// String renders the signature in a Wasm-text-like shorthand, e.g.
// "(i32, i64) -> (i32)". Used in diagnostics.
func (s Signature) String() string {
	return fmt.Sprintf("(%s) -> (%s)", joinValueTypes(s.Params), joinValueTypes(s.Results))
}

func joinValueTypes(types []ValueType) string {
	buf := make([]byte, 0, len(types)*4)
	for i, t := range types {
		if i > 0 {
			buf = append(buf, ',', ' ')
		}
		buf = append(buf, ValueTypeName(t)...)
	}
	return string(buf)
}
