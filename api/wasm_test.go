package api

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueTypeName(t *testing.T) {
	tests := []struct {
		name     string
		input    ValueType
		expected string
	}{
		{"i32", ValueTypeI32, "i32"},
		{"i64", ValueTypeI64, "i64"},
		{"f32", ValueTypeF32, "f32"},
		{"f64", ValueTypeF64, "f64"},
		{"unknown", 0x01, "unknown"},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, ValueTypeName(tc.input))
		})
	}
}

func TestValueTypeOf(t *testing.T) {
	require.Equal(t, ValueTypeI32, ValueTypeOf[int32]())
	require.Equal(t, ValueTypeI32, ValueTypeOf[uint32]())
	require.Equal(t, ValueTypeI64, ValueTypeOf[int64]())
	require.Equal(t, ValueTypeI64, ValueTypeOf[uint64]())
	require.Equal(t, ValueTypeF32, ValueTypeOf[float32]())
	require.Equal(t, ValueTypeF64, ValueTypeOf[float64]())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	require.Equal(t, int32(-1), Decode[int32](Encode(int32(-1))))
	require.Equal(t, uint32(42), Decode[uint32](Encode(uint32(42))))
	require.Equal(t, int64(-123456789), Decode[int64](Encode(int64(-123456789))))
	require.Equal(t, uint64(math.MaxUint64), Decode[uint64](Encode(uint64(math.MaxUint64))))
}

func TestEncodeDecodeFloat32BitExact(t *testing.T) {
	nanWithPayload := math.Float32frombits(0x7fc00001)
	for _, f := range []float32{0, -0, 1.5, -1.5, float32(math.Inf(1)), float32(math.Inf(-1)), nanWithPayload} {
		got := DecodeF32(EncodeF32(f))
		require.Equal(t, math.Float32bits(f), math.Float32bits(got))
	}
}

func TestEncodeDecodeFloat64BitExact(t *testing.T) {
	nanWithPayload := math.Float64frombits(0x7ff8000000000001)
	for _, f := range []float64{0, -0, 1.5, -1.5, math.Inf(1), math.Inf(-1), nanWithPayload} {
		got := DecodeF64(EncodeF64(f))
		require.Equal(t, math.Float64bits(f), math.Float64bits(got))
	}
}

func TestSignatureString(t *testing.T) {
	sig := Signature{Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeF64}}
	require.Equal(t, "(i32, i64) -> (f64)", sig.String())

	empty := Signature{}
	require.Equal(t, "() -> ()", empty.String())
}
