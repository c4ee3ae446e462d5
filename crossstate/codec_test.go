package crossstate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marchatpg/marchatpg/crossstate"
)

// TestEncodeDecodeRoundTrip verifies decode(encode(s)) reproduces the six
// key fields exactly, with every other cell forced to X.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	cs := crossstate.AllX()
	cs.Cells[crossstate.A1].D = crossstate.Zero
	cs.Cells[crossstate.A2Cas].D = crossstate.One
	cs.Cells[crossstate.A3].D = crossstate.X
	cs.Cells[crossstate.A0].C = crossstate.One
	cs.Cells[crossstate.A2Cas].C = crossstate.X
	cs.Cells[crossstate.A4].C = crossstate.Zero

	key := crossstate.Encode(cs)
	got, err := crossstate.Decode(key)
	require.NoError(t, err)

	require.Equal(t, cs.Cells[crossstate.A1].D, got.Cells[crossstate.A1].D)
	require.Equal(t, cs.Cells[crossstate.A2Cas].D, got.Cells[crossstate.A2Cas].D)
	require.Equal(t, cs.Cells[crossstate.A3].D, got.Cells[crossstate.A3].D)
	require.Equal(t, cs.Cells[crossstate.A0].C, got.Cells[crossstate.A0].C)
	require.Equal(t, cs.Cells[crossstate.A2Cas].C, got.Cells[crossstate.A2Cas].C)
	require.Equal(t, cs.Cells[crossstate.A4].C, got.Cells[crossstate.A4].C)

	// Cells outside the key are unknowable from the key alone.
	require.Equal(t, crossstate.X, got.Cells[crossstate.A3].C)
}

// TestKeyEquality pins down the literal key-equality scenario: D[A1]=0,
// D[A2Cas]=1, D[A3]=X, C[A0]=1, C[A2Cas]=X, C[A4]=0 encodes to 150.
func TestKeyEquality(t *testing.T) {
	cs := crossstate.AllX()
	cs.Cells[crossstate.A1].D = crossstate.Zero
	cs.Cells[crossstate.A2Cas].D = crossstate.One
	cs.Cells[crossstate.A3].D = crossstate.X
	cs.Cells[crossstate.A0].C = crossstate.One
	cs.Cells[crossstate.A2Cas].C = crossstate.X
	cs.Cells[crossstate.A4].C = crossstate.Zero

	require.Equal(t, 150, crossstate.Encode(cs))
}

// TestDecodeOutOfRange verifies Decode rejects keys outside [0, KeySpace).
func TestDecodeOutOfRange(t *testing.T) {
	_, err := crossstate.Decode(-1)
	require.ErrorIs(t, err, crossstate.ErrKeyOutOfRange)

	_, err = crossstate.Decode(crossstate.KeySpace)
	require.ErrorIs(t, err, crossstate.ErrKeyOutOfRange)
}

// TestApplyInvariants checks that a concrete value on one side of a pair
// propagates to its partner, and that the row-C rule over A1/A2Cas/A3
// picks the first concrete value encountered.
func TestApplyInvariants(t *testing.T) {
	cs := crossstate.AllX()
	cs.Cells[crossstate.A1].D = crossstate.One
	cs.Cells[crossstate.A4].D = crossstate.Zero
	cs.Cells[crossstate.A2Cas].C = crossstate.One

	out := crossstate.ApplyInvariants(cs)

	require.Equal(t, crossstate.One, out.Cells[crossstate.A0].D)
	require.Equal(t, crossstate.One, out.Cells[crossstate.A1].D)
	require.Equal(t, crossstate.Zero, out.Cells[crossstate.A3].D)
	require.Equal(t, crossstate.Zero, out.Cells[crossstate.A4].D)
	require.Equal(t, crossstate.One, out.Cells[crossstate.A1].C)
	require.Equal(t, crossstate.One, out.Cells[crossstate.A2Cas].C)
	require.Equal(t, crossstate.One, out.Cells[crossstate.A3].C)
}

// TestWithDataWithCompute checks the mutation helpers re-impose invariants.
func TestWithDataWithCompute(t *testing.T) {
	cs := crossstate.AllX()
	cs = crossstate.WithData(cs, crossstate.A2Cas, crossstate.One)
	require.Equal(t, crossstate.X, cs.Cells[crossstate.A1].D) // no partner value yet

	cs = crossstate.WithCompute(cs, crossstate.Zero, crossstate.One, crossstate.One)
	require.Equal(t, crossstate.Zero, cs.Cells[crossstate.A0].C)
	require.Equal(t, crossstate.One, cs.Cells[crossstate.A2Cas].C)
	require.Equal(t, crossstate.One, cs.Cells[crossstate.A4].C)
	// Row-C invariant pulls A1/A3 to the first concrete (A2Cas's One).
	require.Equal(t, crossstate.One, cs.Cells[crossstate.A1].C)
	require.Equal(t, crossstate.One, cs.Cells[crossstate.A3].C)
}
