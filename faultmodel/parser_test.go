package faultmodel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marchatpg/marchatpg/crossstate"
	"github.com/marchatpg/marchatpg/faultmodel"
)

func TestParsePrimitiveScenario1(t *testing.T) {
	fp, err := faultmodel.ParsePrimitive("<0;-/1/->")
	require.NoError(t, err)
	require.Equal(t, crossstate.Zero, fp.Aggressor.Init)
	require.False(t, fp.Aggressor.HasOps())
	require.Equal(t, crossstate.X, fp.Victim.Init)
	require.Equal(t, crossstate.One, fp.FD)
	require.Equal(t, crossstate.X, fp.RD)
}

func TestParsePrimitiveWithOps(t *testing.T) {
	fp, err := faultmodel.ParsePrimitive("<0,W1,R0;1/-/1>")
	require.NoError(t, err)
	require.Equal(t, crossstate.Zero, fp.Aggressor.Init)
	require.True(t, fp.Aggressor.HasOps())
	require.Len(t, fp.Aggressor.Ops, 2)
	require.Equal(t, crossstate.One, fp.Victim.Init)
}

func TestParseFaultRejectsBadCategory(t *testing.T) {
	_, err := faultmodel.ParseFault(faultmodel.RawFault{
		FaultID:         "X",
		Category:        "bogus",
		CellScope:       "single cell",
		FaultPrimitives: []string{"<0;-/1/->"},
	})
	require.ErrorIs(t, err, faultmodel.ErrBadCategory)
}

func TestParseFaultRejectsBadCellScope(t *testing.T) {
	_, err := faultmodel.ParseFault(faultmodel.RawFault{
		FaultID:         "X",
		Category:        "either_read_or_compute",
		CellScope:       "bogus",
		FaultPrimitives: []string{"<0;-/1/->"},
	})
	require.ErrorIs(t, err, faultmodel.ErrBadCellScope)
}

func TestParsePrimitiveRejectsMissingBrackets(t *testing.T) {
	_, err := faultmodel.ParsePrimitive("0;-/1/-")
	require.ErrorIs(t, err, faultmodel.ErrBadPrimitive)
}
