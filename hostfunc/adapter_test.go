package hostfunc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mwatts/wazerobridge/api"
	"github.com/mwatts/wazerobridge/internal/callengine"
)

func addI32(a, b int32) int32 { return a + b }

func pairI32(a, b int32) (int32, int32) { return a, b }

func explicitCtxFn(vmCtx *callengine.VmContext, a int32) int32 {
	if vmCtx == nil {
		return -1
	}
	return a
}

func fallibleFn(a int32) (int32, error) {
	if a < 0 {
		return 0, errors.New("negative input")
	}
	return a * 2, nil
}

func panickyFn(int32) int32 {
	panic("kaboom")
}

func TestNew_RejectsClosure(t *testing.T) {
	captured := int32(7)
	closure := func(a int32) int32 { return a + captured }

	_, err := New(closure)
	require.ErrorIs(t, err, errStateCapturing)
}

func TestNew_AcceptsNamedFunction(t *testing.T) {
	a, err := New(addI32)
	require.NoError(t, err)
	require.Equal(t, KindImplicitContext, a.Kind())
	require.Equal(t, []api.ValueType{api.ValueTypeI32, api.ValueTypeI32}, a.Signature().Params)
	require.Equal(t, []api.ValueType{api.ValueTypeI32}, a.Signature().Results)
}

func TestNew_DetectsExplicitContext(t *testing.T) {
	a, err := New(explicitCtxFn)
	require.NoError(t, err)
	require.Equal(t, KindExplicitContext, a.Kind())
	require.Equal(t, []api.ValueType{api.ValueTypeI32}, a.Signature().Params)
}

func TestCall_SingleResult(t *testing.T) {
	a, err := New(addI32)
	require.NoError(t, err)

	rets, err := a.Call(nil, []api.Slot{api.Encode(int32(2)), api.Encode(int32(3))})
	require.NoError(t, err)
	require.Equal(t, []api.Slot{api.Encode(int32(5))}, rets)
}

func TestCall_MultiResult(t *testing.T) {
	a, err := New(pairI32)
	require.NoError(t, err)

	rets, err := a.Call(nil, []api.Slot{api.Encode(int32(11)), api.Encode(int32(22))})
	require.NoError(t, err)
	require.Equal(t, []api.Slot{api.Encode(int32(11)), api.Encode(int32(22))}, rets)
}

func TestCall_ExplicitContextForwarded(t *testing.T) {
	a, err := New(explicitCtxFn)
	require.NoError(t, err)

	vmCtx := callengine.NewVmContext(nil)
	rets, err := a.Call(vmCtx, []api.Slot{api.Encode(int32(9))})
	require.NoError(t, err)
	require.Equal(t, []api.Slot{api.Encode(int32(9))}, rets)
}

func TestCall_ReturnedErrorBecomesHostError(t *testing.T) {
	a, err := New(fallibleFn)
	require.NoError(t, err)

	_, callErr := a.Call(nil, []api.Slot{api.Encode(int32(-1))})
	var hostErr *api.HostError
	require.ErrorAs(t, callErr, &hostErr)
}

func TestCall_SuccessfulErrorResultIsDropped(t *testing.T) {
	a, err := New(fallibleFn)
	require.NoError(t, err)

	rets, callErr := a.Call(nil, []api.Slot{api.Encode(int32(21))})
	require.NoError(t, callErr)
	require.Equal(t, []api.Slot{api.Encode(int32(42))}, rets)
}

func TestCall_PanicBecomesHostError(t *testing.T) {
	a, err := New(panickyFn)
	require.NoError(t, err)

	rets, callErr := a.Call(nil, []api.Slot{api.Encode(int32(1))})
	require.Nil(t, rets)
	var hostErr *api.HostError
	require.ErrorAs(t, callErr, &hostErr)
	require.Equal(t, "kaboom", hostErr.Payload)
}
