// Package callengine implements the Call Engine of spec §4.3: given a
// Trampoline Triple, a target and an already-packed Slot argument buffer, it
// allocates the return buffer, invokes the engine-supplied trampoline, and
// returns the raw result slots or classifies the failure. Packing arguments
// and decoding results is done by the caller through internal/typelist.
//
// The vmContext/Triple split here mirrors wazero's own
// internal/engine/cranelift package, which is the closest thing in the
// teacher repo to this spec's engine contract: a vmContext struct carrying
// an opaque pointer forwarded to machine code unmodified, paired with a
// small set of entry-point functions selected by call shape
// (internal/engine/cranelift/entrypoints.go's getEntryPoint).
package callengine

import "unsafe"

// VmContext is the opaque pointer the engine requires as the first argument
// of every call, per spec §3. Its dereferenceable layout is owned by the
// engine, not this package: callengine only forwards it.
//
// This is deliberately a struct wrapping unsafe.Pointer, not a bare
// unsafe.Pointer alias, so a nil VmContext (used by Host-kind handles, see
// funchandle.Handle) is distinguishable from a VmContext wrapping a nil
// pointer value, and so callers outside this module cannot construct one
// from an arbitrary pointer without going through NewVmContext.
type VmContext struct {
	opaque unsafe.Pointer
}

// NewVmContext wraps an engine-owned pointer. Ptr must be non-null for any
// VmContext that will back a Wasm-kind Function Handle; see spec §3's
// invariant.
func NewVmContext(ptr unsafe.Pointer) *VmContext {
	return &VmContext{opaque: ptr}
}

// Ptr returns the wrapped pointer, forwarded to the engine verbatim.
func (v *VmContext) Ptr() unsafe.Pointer {
	if v == nil {
		return nil
	}
	return v.opaque
}

// WasmFunctionPointer is a raw code pointer into JIT-compiled Wasm. Host-kind
// handles carry none (nil). Modeled as *byte, the same representation
// cranelift.compiledModule.executable uses for machine code addresses.
type WasmFunctionPointer = *byte
