// Package hostfunc implements the Host-to-Raw Adapter of spec §4.4: it takes
// a stateless host callable and produces an entry point matching the
// engine's indirect-call ABI for the callable's signature, with panic
// interception and error classification installed around every invocation.
//
// wazero's real host-function machinery (internal/wasm/gofunc_test.go,
// internal/wasm/host_test.go) is reflect-based for the same reason this
// package is: Go has no zero-cost way to turn an arbitrary closure into a
// bare machine-code entry point the way the Rust source's
// Func<Args, Rets, Kind>::to_raw does with a zero-sized-type trick (spec §9's
// design note). The registration-table alternative spec §9 sanctions for
// such languages is what this package implements: a callable is inspected
// and stored once at New, and the call path that follows is a reflect.Value
// invocation guarded by a single recover. Each call allocates its decoded
// argument slice and its encoded result slice on the heap.
package hostfunc

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/mwatts/wazerobridge/api"
	"github.com/mwatts/wazerobridge/internal/callengine"
)

// Kind distinguishes the two host callable shapes spec §4.4 names.
type Kind int

const (
	// KindImplicitContext callables do not take a VmContext as their first
	// parameter.
	KindImplicitContext Kind = iota
	// KindExplicitContext callables take *callengine.VmContext as their
	// first parameter.
	KindExplicitContext
)

func (k Kind) String() string {
	if k == KindExplicitContext {
		return "ExplicitContext"
	}
	return "ImplicitContext"
}

var (
	vmCtxType  = reflect.TypeOf((*callengine.VmContext)(nil))
	errType    = reflect.TypeOf((*error)(nil)).Elem()
	contextTyp = reflect.TypeOf((*context.Context)(nil)).Elem()
)

// errStateCapturing is the fixed diagnostic spec §4.4 requires: "a
// state-capturing callable cannot be used as a Wasm-visible function."
var errStateCapturing = fmt.Errorf("a state-capturing callable cannot be used as a Wasm-visible function")

// Adapter wraps a stateless host callable with the metadata and dispatch
// logic needed to expose it at the host/guest boundary.
type Adapter struct {
	kind           Kind
	value          reflect.Value
	paramTypes     []api.ValueType
	resultTypes    []api.ValueType
	hasErrorResult bool
	fastPath       bool
}

// New performs the Zero-size proof of spec §4.4 and synthesizes an Adapter
// for fn.
//
// Go's reflect package cannot measure a closure's captured-variable size the
// way Rust's mem::size_of::<F>() does, so this is necessarily an
// approximation: New accepts a plain named, package-level function (the
// "fast path for named functions" spec §4.4 calls out — runtime.FuncForPC
// reports these without a ".funcN" suffix, which is how Go itself
// distinguishes a top-level function from a closure literal in stack
// traces), and rejects every closure literal, since there is no portable way
// to tell a non-capturing closure apart from a capturing one once it has
// been converted to an interface{}. This is conservative: a small number of
// legitimately non-capturing closure literals are rejected alongside
// state-capturing ones, but no state-capturing callable is ever accepted.
// See DESIGN.md for why this, and not a weaker check, was chosen.
func New(fn interface{}) (*Adapter, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return nil, fmt.Errorf("not a function: %s", v.Kind())
	}
	if !isNamedFunction(v) {
		return nil, errStateCapturing
	}

	t := v.Type()
	kind := KindImplicitContext
	start := 0
	if t.NumIn() > 0 && t.In(0) == vmCtxType {
		kind = KindExplicitContext
		start = 1
	}

	params := make([]api.ValueType, 0, t.NumIn()-start)
	for i := start; i < t.NumIn(); i++ {
		pt := t.In(i)
		if pt == contextTyp {
			return nil, fmt.Errorf("param[%d] is a context.Context, which is not a supported Wasm-visible parameter", i)
		}
		vt, err := valueTypeForKind(pt)
		if err != nil {
			return nil, fmt.Errorf("param[%d] is unsupported: %s", i, pt)
		}
		params = append(params, vt)
	}

	numOut := t.NumOut()
	hasErrorResult := numOut > 0 && t.Out(numOut-1) == errType
	resultCount := numOut
	if hasErrorResult {
		resultCount--
	}
	results := make([]api.ValueType, 0, resultCount)
	for i := 0; i < resultCount; i++ {
		vt, err := valueTypeForKind(t.Out(i))
		if err != nil {
			return nil, fmt.Errorf("result[%d] is unsupported: %s", i, t.Out(i))
		}
		results = append(results, vt)
	}

	return &Adapter{
		kind:           kind,
		value:          v,
		paramTypes:     params,
		resultTypes:    results,
		hasErrorResult: hasErrorResult,
		fastPath:       true,
	}, nil
}

// isNamedFunction reports whether v is a top-level named function rather
// than a closure literal, using the same "does the runtime name carry a
// .funcN suffix" signal Go's own runtime uses to label closures in stack
// traces and profiles. Bound method values (runtime name ending in "-fm")
// carry their receiver and are rejected as well.
func isNamedFunction(v reflect.Value) bool {
	fn := runtime.FuncForPC(v.Pointer())
	if fn == nil {
		return false
	}
	name := fn.Name()
	if strings.HasSuffix(name, "-fm") {
		return false
	}
	last := name
	if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
		last = name[idx+1:]
	}
	return !strings.HasPrefix(last, "func")
}

func valueTypeForKind(t reflect.Type) (api.ValueType, error) {
	switch t.Kind() {
	case reflect.Int32, reflect.Uint32:
		return api.ValueTypeI32, nil
	case reflect.Int64, reflect.Uint64:
		return api.ValueTypeI64, nil
	case reflect.Float32:
		return api.ValueTypeF32, nil
	case reflect.Float64:
		return api.ValueTypeF64, nil
	default:
		return 0, fmt.Errorf("unsupported kind %s", t.Kind())
	}
}

// Kind reports whether fn was registered as ExplicitContext or
// ImplicitContext.
func (a *Adapter) Kind() Kind { return a.kind }

// Signature returns the calling convention this adapter was synthesized
// for.
func (a *Adapter) Signature() api.Signature {
	return api.Signature{Params: a.paramTypes, Results: a.resultTypes}
}

// Call is the generated entry point body of spec §4.4 step 2: it recovers
// the callable (already held by value, no placeholder reinterpretation is
// needed in Go), decodes each raw argument via the Value Codec, invokes the
// callable guarded by a panic catch, and classifies the outcome.
//
// A normal return packs into rets and yields a nil error. A returned error
// (when the callable's last result is error-shaped) or a caught panic both
// become *api.HostError — the Go equivalent of handing a type-erased payload
// to the engine's early_trap hook and longjmping back to the Call Engine
// boundary, since in Go, "control never returns to the entry point after
// calling it" is exactly what panic unwinding + a boundary recover already
// gives us for free.
func (a *Adapter) Call(vmCtx *callengine.VmContext, args []api.Slot) (rets []api.Slot, err error) {
	defer func() {
		if r := recover(); r != nil {
			rets = nil
			err = &api.HostError{Payload: r}
		}
	}()

	in := a.decodeArgs(vmCtx, args)
	out := a.value.Call(in)

	if a.hasErrorResult {
		errVal := out[len(out)-1].Interface()
		out = out[:len(out)-1]
		if errVal != nil {
			return nil, &api.HostError{Payload: errVal}
		}
	}
	return a.encodeResults(out), nil
}

func (a *Adapter) decodeArgs(vmCtx *callengine.VmContext, args []api.Slot) []reflect.Value {
	t := a.value.Type()
	in := make([]reflect.Value, t.NumIn())
	start := 0
	if a.kind == KindExplicitContext {
		in[0] = reflect.ValueOf(vmCtx)
		start = 1
	}
	for i, slot := range args {
		paramIdx := i + start
		pt := t.In(paramIdx)
		in[paramIdx] = reflect.ValueOf(decodeSlot(pt, slot))
	}
	return in
}

func decodeSlot(t reflect.Type, slot api.Slot) interface{} {
	switch t.Kind() {
	case reflect.Int32:
		return api.Decode[int32](slot)
	case reflect.Uint32:
		return api.Decode[uint32](slot)
	case reflect.Int64:
		return api.Decode[int64](slot)
	case reflect.Uint64:
		return api.Decode[uint64](slot)
	case reflect.Float32:
		return api.Decode[float32](slot)
	case reflect.Float64:
		return api.Decode[float64](slot)
	default:
		panic(fmt.Sprintf("hostfunc: BUG: unsupported param kind %s reached decodeSlot", t.Kind()))
	}
}

func (a *Adapter) encodeResults(out []reflect.Value) []api.Slot {
	rets := make([]api.Slot, len(out))
	for i, v := range out {
		rets[i] = encodeValue(v)
	}
	return rets
}

func encodeValue(v reflect.Value) api.Slot {
	switch v.Kind() {
	case reflect.Int32:
		return api.Encode(int32(v.Int()))
	case reflect.Uint32:
		return api.Encode(uint32(v.Uint()))
	case reflect.Int64:
		return api.Encode(v.Int())
	case reflect.Uint64:
		return api.Encode(v.Uint())
	case reflect.Float32:
		return api.Encode(float32(v.Float()))
	case reflect.Float64:
		return api.Encode(v.Float())
	default:
		panic(fmt.Sprintf("hostfunc: BUG: unsupported result kind %s reached encodeValue", v.Kind()))
	}
}
