package typelist

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mwatts/wazerobridge/api"
)

func TestArity0(t *testing.T) {
	require.Empty(t, Params0{}.Types())
	require.Empty(t, Params0{}.Pack())
	require.Empty(t, Results0{}.Types())
	require.Equal(t, Results0{}, Results0{}.FromBuffer(nil))
	require.Equal(t, Results0{}, UnpackCStruct0(Results0{}.PackCStruct()))
}

func TestArity1RoundTrip(t *testing.T) {
	p := Params1[int32]{P0: 42}
	require.Equal(t, []api.ValueType{api.ValueTypeI32}, p.Types())
	require.Equal(t, []api.Slot{api.Encode(int32(42))}, p.Pack())

	r := Results1[float64]{R0: 3.5}
	require.Equal(t, []api.ValueType{api.ValueTypeF64}, r.Types())

	buf := []api.Slot{api.Encode(3.5)}
	require.Equal(t, r, Results1[float64]{}.FromBuffer(buf))

	cstruct := r.PackCStruct()
	require.Equal(t, r, UnpackCStruct1[float64](cstruct))
}

func TestArity2PairReturn(t *testing.T) {
	r := Results2[int32, int32]{R0: 7, R1: 9}
	require.Equal(t, []api.ValueType{api.ValueTypeI32, api.ValueTypeI32}, r.Types())

	c := r.PackCStruct()
	require.Equal(t, r, UnpackCStruct2[int32, int32](c))

	buf := []api.Slot{api.Encode(int32(7)), api.Encode(int32(9))}
	require.Equal(t, r, Results2[int32, int32]{}.FromBuffer(buf))
}

func TestArity12Params(t *testing.T) {
	p := Params12[int32, int32, int32, int32, int32, int32, int32, int32, int32, int32, int32, int32]{
		P0: 0, P1: 1, P2: 2, P3: 3, P4: 4, P5: 5, P6: 6, P7: 7, P8: 8, P9: 9, P10: 10, P11: 11,
	}
	require.Len(t, p.Types(), 12)
	packed := p.Pack()
	require.Len(t, packed, 12)
	for i, s := range packed {
		require.Equal(t, uint64(i), s)
	}
	for _, vt := range p.Types() {
		require.Equal(t, api.ValueTypeI32, vt)
	}
}

func TestArity12ResultsRoundTrip(t *testing.T) {
	r := Results12[float64, float32, int64, int32, float64, float32, int64, int32, float64, float32, int64, int32]{
		R0: 1.1, R1: 2.2, R2: 3, R3: 4, R4: 5.5, R5: 6.6, R6: 7, R7: 8,
		R8: 9.9, R9: 10.1, R10: 11, R11: 12,
	}
	c := r.PackCStruct()
	got := UnpackCStruct12[float64, float32, int64, int32, float64, float32, int64, int32, float64, float32, int64, int32](c)
	require.Equal(t, r, got)
}
