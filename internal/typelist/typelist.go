// Package typelist reifies a heterogeneous tuple of host scalar types (a
// Type-List, spec §4.2) as one opaque composite carrying its complete
// calling-convention metadata: arity, the positional ValueType tags, the
// packed argument layout, and the ABI-compatible aggregate ("C-struct")
// layout used for native return values.
//
// Go has no variadic generics, so unlike the Rust source this is distilled
// from (which instantiates one trait per arity via a macro, see spec §9),
// this package instantiates one pair of concrete generic types — ParamsN and
// ResultsN — per arity from 0 to 12. ParamsN and ResultsN for N>=2 live in
// typelist_gen.go, written in the repetitive style of generated code; this
// file holds the shared contract plus the N=0 and N=1 instantiations in
// full, to document the pattern the rest follow.
package typelist

import "github.com/mwatts/wazerobridge/api"

// ParamList is the public contract every ParamsN implements: the fixed
// slice of value-type tags (arity is len(Types())), and the operation that
// encodes the tuple into a contiguous Slot buffer for the Call Engine.
type ParamList interface {
	// Types is the positionally-matching value-type tags, TYPES in spec §4.2.
	Types() []api.ValueType
	// Pack encodes each value by position into a contiguous Slot buffer,
	// pack_arguments in spec §4.2.
	Pack() []api.Slot
}

// ResultList is the public contract every ResultsN implements. It is
// F-bounded (ResultList[R] is only satisfied by a type R implementing
// ResultList[R]) so FromBuffer can return the concrete tuple type instead of
// a type-erased interface — this is what lets funchandle.Call be written
// once, generically, for every arity instead of once per arity.
type ResultList[R any] interface {
	// Types is the positionally-matching value-type tags.
	Types() []api.ValueType
	// FromBuffer decodes each slot by position, from_return_buffer in spec
	// §4.2. The buffer must have at least len(Types()) slots.
	FromBuffer(buf []api.Slot) R
}

// Params0 is the empty parameter tuple. All its operations are well-defined
// no-ops, per spec §4.2's invariant for the empty tuple.
type Params0 struct{}

func (Params0) Types() []api.ValueType { return nil }
func (Params0) Pack() []api.Slot       { return nil }

// Results0 is the empty result tuple.
type Results0 struct{}

func (Results0) Types() []api.ValueType          { return nil }
func (Results0) FromBuffer([]api.Slot) Results0  { return Results0{} }
func (Results0) PackCStruct() CStruct0           { return CStruct0{} }
func UnpackCStruct0(CStruct0) Results0           { return Results0{} }

// CStruct0 is the ABI-compatible aggregate for a nullary return: an empty
// struct, matching how a void-returning C function carries no return value
// at all.
type CStruct0 = struct{}

// Params1 is a parameter tuple of arity 1.
type Params1[T0 api.Number] struct {
	P0 T0
}

func (p Params1[T0]) Types() []api.ValueType { return []api.ValueType{api.ValueTypeOf[T0]()} }
func (p Params1[T0]) Pack() []api.Slot       { return []api.Slot{api.Encode(p.P0)} }

// Results1 is a result tuple of arity 1.
type Results1[R0 api.Number] struct {
	R0 R0
}

func (r Results1[R0]) Types() []api.ValueType { return []api.ValueType{api.ValueTypeOf[R0]()} }

func (Results1[R0]) FromBuffer(buf []api.Slot) Results1[R0] {
	return Results1[R0]{R0: api.Decode[R0](buf[0])}
}

// CStruct1 is the ABI-compatible aggregate for a unary return. Per spec
// §4.2, "for arity 1 this is transparent (single field, no wrapper
// overhead)": CStruct1 is a plain Slot, not a one-field struct.
type CStruct1 = api.Slot

// PackCStruct packs the tuple into its transparent aggregate form.
func (r Results1[R0]) PackCStruct() CStruct1 { return api.Encode(r.R0) }

// UnpackCStruct1 is the inverse of Results1.PackCStruct.
func UnpackCStruct1[R0 api.Number](c CStruct1) Results1[R0] {
	return Results1[R0]{R0: api.Decode[R0](c)}
}
