// Package funchandle implements the Function Handle of spec §4.5: a single
// type that represents either a Wasm-defined function (an engine-owned
// code pointer plus the VmContext it must be invoked with) or a host
// function (a hostfunc.Adapter), behind one calling convention.
//
// wazero keeps the analogous distinction in internal/wasm as a FunctionKind
// on each FunctionInstance (FunctionKindWasm vs FunctionKindGoContextless /
// FunctionKindGoModuleContextless), dispatched by the engine's callEngine at
// call time rather than by two separate handle types; Handle follows the
// same shape, collapsing the call surface behind Handle.Call so that code
// consuming a Handle never needs to ask which kind it got before calling it.
package funchandle

import (
	"fmt"

	"github.com/mwatts/wazerobridge/api"
	"github.com/mwatts/wazerobridge/hostfunc"
	"github.com/mwatts/wazerobridge/internal/callengine"
	"github.com/mwatts/wazerobridge/internal/typelist"
)

// Kind distinguishes a Wasm-defined function from a host-defined one.
type Kind int

const (
	KindWasm Kind = iota
	KindHost
)

func (k Kind) String() string {
	if k == KindHost {
		return "Host"
	}
	return "Wasm"
}

// Handle is the Function Handle of spec §4.5: a type-erased, callable
// reference to either side of the host/guest boundary.
type Handle struct {
	kind      Kind
	signature api.Signature

	// Wasm kind.
	triple callengine.Triple
	vmCtx  *callengine.VmContext
	fn     callengine.WasmFunctionPointer

	// Host kind.
	adapter *hostfunc.Adapter
}

// NewWasm constructs a Handle over a Wasm-defined function: fn is the raw
// code pointer the engine compiled, vmCtx is the VmContext that must
// accompany every call into it, and triple supplies the trampoline/invoke
// pair used to perform the call. vmCtx must wrap a non-null pointer, per
// spec §3's invariant that a Wasm-kind handle's VmContext is never null.
func NewWasm(sig api.Signature, triple callengine.Triple, vmCtx *callengine.VmContext, fn callengine.WasmFunctionPointer) (*Handle, error) {
	if vmCtx.Ptr() == nil {
		return nil, fmt.Errorf("funchandle: NewWasm requires a non-null VmContext")
	}
	return &Handle{
		kind:      KindWasm,
		signature: sig,
		triple:    triple,
		vmCtx:     vmCtx,
		fn:        fn,
	}, nil
}

// NewHost constructs a Handle over a stateless host callable, adapting it
// through hostfunc.New first.
func NewHost(fn interface{}) (*Handle, error) {
	a, err := hostfunc.New(fn)
	if err != nil {
		return nil, err
	}
	return &Handle{
		kind:      KindHost,
		signature: a.Signature(),
		adapter:   a,
	}, nil
}

// Kind reports which side of the boundary h was constructed from.
func (h *Handle) Kind() Kind { return h.kind }

// Signature returns h's Wasm calling convention.
func (h *Handle) Signature() api.Signature { return h.signature }

// Call invokes h with already-packed argument slots and returns the raw
// result slots, sized to h.Signature's result arity. This is the untyped call surface; Call[P, R] below is the
// generic, Type-List-checked wrapper most callers should use instead.
func (h *Handle) Call(args []api.Slot) ([]api.Slot, error) {
	numResults := len(h.signature.Results)
	switch h.kind {
	case KindWasm:
		return callengine.Call(h.triple, h.vmCtx, h.fn, args, numResults)
	case KindHost:
		return h.adapter.Call(h.vmCtx, args)
	default:
		panic(fmt.Sprintf("funchandle: BUG: unknown kind %d", h.kind))
	}
}

// Export is the static view of a Handle an engine needs to install it as a
// callable table/entry point: its code address, the VmContext it must carry,
// and its signature. For a Host-kind handle both CodePtr and Context are
// nil: the adapter is reached only through Handle.Call and has no raw code
// address of its own.
type Export struct {
	CodePtr   callengine.WasmFunctionPointer
	Context   *callengine.VmContext
	Signature api.Signature
}

// AsExport returns the static view of h described above.
func (h *Handle) AsExport() Export {
	return Export{
		CodePtr:   h.fn,
		Context:   h.vmCtx,
		Signature: h.signature,
	}
}

// Call performs a statically typed call through h: params is packed via
// typelist.ParamList, the raw result buffer is decoded back into R via
// typelist.ResultList, and any failure is returned as *api.TrapError or
// *api.HostError. This is the Go rendering of spec §4.5's typed call
// entry point, parameterized the same way internal/typelist instantiates
// one concrete pair of types per call-site arity.
func Call[P typelist.ParamList, R typelist.ResultList[R]](h *Handle, params P) (R, error) {
	var zero R
	raw, err := h.Call(params.Pack())
	if err != nil {
		return zero, err
	}
	return zero.FromBuffer(raw), nil
}
