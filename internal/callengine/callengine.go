package callengine

import (
	"unsafe"

	"github.com/mwatts/wazerobridge/api"
)

// TrampolineFunc switches stacks and sets up the Wasm frame for a specific
// signature shape. It is supplied by the engine, one per call-site shape, the
// same way internal/engine/cranelift/entrypoints.go selects an entryPointFn
// by wasm.FunctionType via getEntryPoint.
type TrampolineFunc func(vmCtx *VmContext, fn WasmFunctionPointer, args, rets []api.Slot)

// InvokeFunc is the engine-supplied generic adaptor around a trampoline: it
// calls the trampoline and catches engine-level traps, reporting the outcome
// via the boolean return and the two out-parameters. This is the Go
// analogue of wazero's nativecall/entrypoint dispatch loop
// (internal/engine/wazevo/call_engine.go's callWithStack), which itself
// funnels every failure mode through a single classification switch before
// returning to the caller.
type InvokeFunc func(
	trampoline TrampolineFunc,
	vmCtx *VmContext,
	fn WasmFunctionPointer,
	args, rets []api.Slot,
	trapOut *api.TrapReason,
	hostErrOut *any,
	env unsafe.Pointer,
) (ok bool)

// Triple is the Trampoline Triple of spec §3: the three-tuple the engine
// supplies for every Wasm function. Env is forwarded to Invoke unchanged and
// is never dereferenced by this package.
type Triple struct {
	Trampoline TrampolineFunc
	Invoke     InvokeFunc
	Env        unsafe.Pointer
}

// Call executes a host→Wasm invocation: the Call Engine algorithm of spec
// §4.3. args must already be packed (ParamList.Pack); numResults is the
// arity of the callee's result Type-List, used to size the return buffer
// before Invoke is called.
//
// On success the returned slice has exactly numResults elements, ready to be
// decoded via a ResultList.FromBuffer. On failure the error is either
// *api.HostError or *api.TrapError; per spec §4.3's tie-break, if both a host
// error and a trap were reported, the host error wins, because it was raised
// intentionally by the host callable the Wasm call eventually reached.
func Call(triple Triple, vmCtx *VmContext, fn WasmFunctionPointer, args []api.Slot, numResults int) ([]api.Slot, error) {
	rets := make([]api.Slot, numResults)
	trapOut := api.TrapReasonUnknown
	var hostErrOut any

	ok := triple.Invoke(triple.Trampoline, vmCtx, fn, args, rets, &trapOut, &hostErrOut, triple.Env)
	if ok {
		return rets, nil
	}
	if hostErrOut != nil {
		return nil, &api.HostError{Payload: hostErrOut}
	}
	return nil, &api.TrapError{Reason: trapOut}
}
