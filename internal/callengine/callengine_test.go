package callengine

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/mwatts/wazerobridge/api"
)

// fakeEngine is a minimal stand-in for the real engine contract consumed by
// this package (spec §6): it plays the role of trampoline+invoke for unit
// tests, the same way internal/engine/cranelift/engine_test.go and
// internal/engine/wazevo/call_engine_test.go drive callEngine.Call against
// hand-built fixtures rather than a full compiled Wasm module.
type fakeEngine struct {
	trampolineCalled bool
	trap             *api.TrapReason
	hostErr          any
	resultValues     []api.Slot
}

func (f *fakeEngine) trampoline(_ *VmContext, _ WasmFunctionPointer, args, rets []api.Slot) {
	f.trampolineCalled = true
	copy(rets, f.resultValues)
}

func (f *fakeEngine) invoke(trampoline TrampolineFunc, vmCtx *VmContext, fn WasmFunctionPointer, args, rets []api.Slot, trapOut *api.TrapReason, hostErrOut *any, env unsafe.Pointer) bool {
	if f.trap != nil {
		*trapOut = *f.trap
	}
	if f.hostErr != nil {
		*hostErrOut = f.hostErr
	}
	if f.trap == nil && f.hostErr == nil {
		trampoline(vmCtx, fn, args, rets)
		return true
	}
	return false
}

func (f *fakeEngine) triple() Triple {
	return Triple{Trampoline: f.trampoline, Invoke: f.invoke}
}

func TestCall_Success(t *testing.T) {
	f := &fakeEngine{resultValues: []api.Slot{api.Encode(int32(42))}}
	results, err := Call(f.triple(), nil, nil, nil, 1)
	require.NoError(t, err)
	require.True(t, f.trampolineCalled)
	require.Equal(t, []api.Slot{api.Encode(int32(42))}, results)
}

func TestCall_Trap(t *testing.T) {
	reason := api.TrapReasonUnreachable
	f := &fakeEngine{trap: &reason}
	results, err := Call(f.triple(), nil, nil, nil, 0)
	require.Nil(t, results)
	require.False(t, f.trampolineCalled)

	var trapErr *api.TrapError
	require.ErrorAs(t, err, &trapErr)
	require.Equal(t, api.TrapReasonUnreachable, trapErr.Reason)
	require.Equal(t, "unreachable", err.Error())
}

func TestCall_HostError(t *testing.T) {
	f := &fakeEngine{hostErr: "boom"}
	results, err := Call(f.triple(), nil, nil, nil, 0)
	require.Nil(t, results)

	var hostErr *api.HostError
	require.ErrorAs(t, err, &hostErr)
	require.Equal(t, "boom", hostErr.Payload)
}

// TestCall_TieBreak_HostErrorWins verifies spec §4.3's rule: when both a
// trap and a host error are reported, the host error is what the caller
// sees, because the host callable raised something intentional.
func TestCall_TieBreak_HostErrorWins(t *testing.T) {
	reason := api.TrapReasonMemoryOutOfBounds
	f := &fakeEngine{trap: &reason, hostErr: "deliberate"}
	_, err := Call(f.triple(), nil, nil, nil, 0)

	var hostErr *api.HostError
	require.ErrorAs(t, err, &hostErr)
	require.Equal(t, "deliberate", hostErr.Payload)
}

func TestCall_EmptyResultArity(t *testing.T) {
	f := &fakeEngine{}
	results, err := Call(f.triple(), nil, nil, nil, 0)
	require.NoError(t, err)
	require.Empty(t, results)
}
