package optable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marchatpg/marchatpg/crossstate"
	"github.com/marchatpg/marchatpg/marchtest"
	"github.com/marchatpg/marchatpg/optable"
)

func TestBuildFlattensAndOrdersOps(t *testing.T) {
	mt, err := marchtest.Parse("t", "a(W0,R0);d(C(1)(1)(1),R1)")
	require.NoError(t, err)

	table := optable.Build(mt)
	require.Len(t, table, 4)
	require.Equal(t, 0, table[0].ElemIndex)
	require.Equal(t, 1, table[3].ElemIndex)
}

func TestBuildFirstOpPreStateAllUnknown(t *testing.T) {
	mt, err := marchtest.Parse("t", "a(W0,R0)")
	require.NoError(t, err)

	table := optable.Build(mt)
	require.Equal(t, crossstate.X, table[0].PreState.Cells[crossstate.A2Cas].D)
}

func TestBuildWritePropagatesToNextOp(t *testing.T) {
	mt, err := marchtest.Parse("t", "a(W0,R0)")
	require.NoError(t, err)

	table := optable.Build(mt)
	require.Equal(t, crossstate.Zero, table[1].PreState.Cells[crossstate.A2Cas].D, "R0's pre-state sees the W0 just committed")
}

func TestBuildComputeUpdatesCTriple(t *testing.T) {
	mt, err := marchtest.Parse("t", "a(C(1)(0)(1),R0)")
	require.NoError(t, err)

	table := optable.Build(mt)
	require.Equal(t, crossstate.One, table[1].PreState.Cells[crossstate.A0].C)
	require.Equal(t, crossstate.Zero, table[1].PreState.Cells[crossstate.A2Cas].C)
	require.Equal(t, crossstate.One, table[1].PreState.Cells[crossstate.A4].C)
}

func TestElementAnchors(t *testing.T) {
	mt, err := marchtest.Parse("t", "a(W0,R0);d(C(1)(1)(1),R1)")
	require.NoError(t, err)

	table := optable.Build(mt)
	require.Equal(t, 0, optable.ElementStart(table, 1))
	require.Equal(t, 2, optable.NextElementStart(table, 1))
	require.Equal(t, -1, optable.NextElementStart(table, 3))
}

func TestEmptyElementPropagatesSentinelUnchanged(t *testing.T) {
	mt := marchtest.MarchTest{
		Name: "t",
		Elements: []marchtest.MarchElement{
			{Order: marchtest.Up, Ops: []marchtest.Op{marchtest.WriteOp(crossstate.One)}},
			{Order: marchtest.Down}, // empty
			{Order: marchtest.Up, Ops: []marchtest.Op{marchtest.ReadOp(crossstate.One)}},
		},
	}

	table := optable.Build(mt)
	require.Len(t, table, 2)
	require.Equal(t, crossstate.One, table[1].PreState.Cells[crossstate.A2Cas].D)
	require.Equal(t, 2, table[1].ElemIndex)
}
