package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrapReasonString(t *testing.T) {
	tests := []struct {
		reason   TrapReason
		expected string
	}{
		{TrapReasonUnreachable, "unreachable"},
		{TrapReasonIndirectCallSignatureMismatch, "indirect call type mismatch"},
		{TrapReasonMemoryOutOfBounds, "out of bounds memory access"},
		{TrapReasonIndirectCallOutOfBounds, "invalid table access"},
		{TrapReasonIllegalArithmetic, "illegal arithmetic"},
		{TrapReasonMisalignedAtomicAccess, "misaligned atomic access"},
		{TrapReasonUnknown, "unknown trap"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, tt.reason.String())
	}
}

func TestTrapReasonFromRaw(t *testing.T) {
	require.Equal(t, TrapReasonUnreachable, TrapReasonFromRaw(0))
	require.Equal(t, TrapReasonMisalignedAtomicAccess, TrapReasonFromRaw(uint32(TrapReasonMisalignedAtomicAccess)))
	require.Equal(t, TrapReasonUnknown, TrapReasonFromRaw(999))
}

func TestTrapErrorError(t *testing.T) {
	err := &TrapError{Reason: TrapReasonUnreachable}
	require.EqualError(t, err, "unreachable")
}

func TestHostErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &HostError{Payload: cause}
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "boom")

	panicPayload := &HostError{Payload: "raw panic value"}
	require.Nil(t, panicPayload.Unwrap())
	require.Contains(t, panicPayload.Error(), "raw panic value")
}
