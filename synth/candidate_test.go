package synth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marchatpg/marchatpg/crossstate"
	"github.com/marchatpg/marchatpg/marchtest"
)

func TestCandidatesHasTwelveOpsInFixedOrder(t *testing.T) {
	c := Candidates()
	require.Len(t, c, 12)
	require.Equal(t, marchtest.WriteOp(crossstate.Zero), c[0])
	require.Equal(t, marchtest.WriteOp(crossstate.One), c[1])
	require.Equal(t, marchtest.ReadOp(crossstate.Zero), c[2])
	require.Equal(t, marchtest.ReadOp(crossstate.One), c[3])
}

func TestViolatesRWValueRuleForbidsOppositeRead(t *testing.T) {
	mt := marchtest.MarchTest{Elements: []marchtest.MarchElement{{Ops: []marchtest.Op{marchtest.WriteOp(crossstate.Zero)}}}}
	require.True(t, violatesRWValueRule(mt, marchtest.ReadOp(crossstate.One)))
	require.False(t, violatesRWValueRule(mt, marchtest.ReadOp(crossstate.Zero)))
	require.False(t, violatesRWValueRule(mt, marchtest.WriteOp(crossstate.One)))
}

func TestViolatesRWValueRuleHasNoRestrictionWithNoPriorOp(t *testing.T) {
	require.False(t, violatesRWValueRule(marchtest.MarchTest{}, marchtest.ReadOp(crossstate.Zero)))
}

func TestViolatesRWValueRuleIgnoresComputeAsLastOp(t *testing.T) {
	mt := marchtest.MarchTest{Elements: []marchtest.MarchElement{{Ops: []marchtest.Op{marchtest.ComputeAndOp(crossstate.Zero, crossstate.One, crossstate.Zero)}}}}
	require.False(t, violatesRWValueRule(mt, marchtest.ReadOp(crossstate.One)))
}

func TestAppendOpOpensFirstElementWhenEmpty(t *testing.T) {
	out := appendOp(marchtest.MarchTest{}, marchtest.Up, marchtest.WriteOp(crossstate.Zero))
	require.Len(t, out.Elements, 1)
	require.Equal(t, marchtest.Up, out.Elements[0].Order)
	require.Equal(t, []marchtest.Op{marchtest.WriteOp(crossstate.Zero)}, out.Elements[0].Ops)
}

func TestAppendOpDoesNotMutateInput(t *testing.T) {
	base := marchtest.MarchTest{Elements: []marchtest.MarchElement{{Order: marchtest.Up, Ops: []marchtest.Op{marchtest.WriteOp(crossstate.Zero)}}}}
	_ = appendOp(base, marchtest.Up, marchtest.ReadOp(crossstate.Zero))
	require.Len(t, base.Elements[0].Ops, 1, "appendOp must not mutate its input")
}

func TestCloseElementAppendsEmptyElement(t *testing.T) {
	base := marchtest.MarchTest{Elements: []marchtest.MarchElement{{Order: marchtest.Up}}}
	out := closeElement(base, marchtest.Down)
	require.Len(t, out.Elements, 2)
	require.Empty(t, out.Elements[1].Ops)
	require.Equal(t, marchtest.Down, out.Elements[1].Order)
}
