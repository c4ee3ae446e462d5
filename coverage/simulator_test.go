package coverage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marchatpg/marchatpg/coverage"
	"github.com/marchatpg/marchatpg/coverlut"
	"github.com/marchatpg/marchatpg/crossstate"
	"github.com/marchatpg/marchatpg/faultmodel"
	"github.com/marchatpg/marchatpg/marchtest"
	"github.com/marchatpg/marchatpg/tpgen"
)

func TestSimulateIdentityScenario(t *testing.T) {
	fp, err := faultmodel.ParsePrimitive("<0;-/1/->")
	require.NoError(t, err)
	fault := faultmodel.Fault{
		ID:         "SA0",
		Category:   faultmodel.EitherReadOrCompute,
		CellScope:  faultmodel.SingleCell,
		Primitives: []faultmodel.FPExpr{fp},
	}
	tps := tpgen.Generate(fault)
	require.Len(t, tps, 1)

	lut := coverlut.Build()
	sim := coverage.NewFaultSimulator(lut, []faultmodel.Fault{fault}, tps)

	mt, err := marchtest.Parse("t", "a(W0,R0)")
	require.NoError(t, err)

	result := sim.Simulate(mt)
	require.Len(t, result.OpTable, 2)
	require.Contains(t, result.CoverLists[0].StateCover, 0)
	require.Contains(t, result.CoverLists[1].SensCover, 0)
	require.Len(t, result.CoverLists[1].DetCover, 1)
	require.Equal(t, 0, result.CoverLists[1].DetCover[0].TPGid)
	require.InDelta(t, 1.0, result.FaultDetailMap["SA0"].DetectCoverage, 1e-9)
	require.InDelta(t, 1.0, result.TotalCoverage, 1e-9)
}

func TestSimulateDetectorAnchoringScenario(t *testing.T) {
	mt, err := marchtest.Parse("t", "a(W0,R0);d(C(1)(1)(1),R1)")
	require.NoError(t, err)

	tp := tpgen.TP{
		ParentFaultID:    "F",
		OrientationGroup: tpgen.Single,
		State:            crossstate.AllX(),
		OpsBeforeDetect:  []marchtest.Op{marchtest.WriteOp(crossstate.Zero), marchtest.ReadOp(crossstate.Zero)},
		Detector: tpgen.Detector{
			Op:        marchtest.ComputeAndOp(crossstate.X, crossstate.One, crossstate.X),
			Pos:       tpgen.NextElementHead,
			RHasValue: true,
		},
	}
	fault := faultmodel.Fault{ID: "F", Category: faultmodel.MustCompute, CellScope: faultmodel.SingleCell}

	lut := coverlut.Build()
	sim := coverage.NewFaultSimulator(lut, []faultmodel.Fault{fault}, []tpgen.TP{tp})

	result := sim.Simulate(mt)
	require.Len(t, result.OpTable, 4)
	require.Contains(t, result.CoverLists[1].SensCover, 0)
	require.Len(t, result.CoverLists[2].DetCover, 1)
	require.Equal(t, 2, result.CoverLists[2].DetCover[0].DetID)
	require.Equal(t, 1, result.CoverLists[2].DetCover[0].SensID)
}

func TestSimulateEmptyOpsBeforeDetectResolvesAtMatchedOp(t *testing.T) {
	mt, err := marchtest.Parse("t", "a(W1)")
	require.NoError(t, err)

	tp := tpgen.TP{
		ParentFaultID: "F",
		State:         crossstate.AllX(),
		Detector:      tpgen.Detector{RHasValue: false},
	}
	fault := faultmodel.Fault{ID: "F", Category: faultmodel.EitherReadOrCompute, CellScope: faultmodel.SingleCell}

	lut := coverlut.Build()
	sim := coverage.NewFaultSimulator(lut, []faultmodel.Fault{fault}, []tpgen.TP{tp})

	result := sim.Simulate(mt)
	require.Contains(t, result.CoverLists[0].SensCover, 0, "empty ops_before_detect resolves immediately at the matched op")
}

func TestSimulateConcretePreconditionNeverMatchesUnknownOrConflictingState(t *testing.T) {
	mt, err := marchtest.Parse("t", "a(W1,R0)")
	require.NoError(t, err)

	tp := tpgen.TP{
		ParentFaultID: "F",
		State:         crossstate.CrossState{Cells: [5]crossstate.Cell{{D: crossstate.X, C: crossstate.X}, {D: crossstate.X, C: crossstate.X}, {D: crossstate.Zero, C: crossstate.X}, {D: crossstate.X, C: crossstate.X}, {D: crossstate.X, C: crossstate.X}}},
		Detector:      tpgen.Detector{RHasValue: false},
	}
	fault := faultmodel.Fault{ID: "F", Category: faultmodel.EitherReadOrCompute, CellScope: faultmodel.SingleCell}

	lut := coverlut.Build()
	sim := coverage.NewFaultSimulator(lut, []faultmodel.Fault{fault}, []tpgen.TP{tp})

	result := sim.Simulate(mt)
	require.NotContains(t, result.CoverLists[0].StateCover, 0, "pre-state at op 0 is still all-X, which a concrete TP digit never matches")
	require.NotContains(t, result.CoverLists[1].StateCover, 0, "W1 left D[A2Cas]=1, conflicting with the TP's required 0")
}

func TestSimulateTwoCellFaultNeedsBothOrientationsForFullCoverage(t *testing.T) {
	fault := faultmodel.Fault{ID: "CF", CellScope: faultmodel.TwoCellSameRow}

	detectedEverywhere := tpgen.TP{
		ParentFaultID:    "CF",
		OrientationGroup: tpgen.AggressorBeforeVictim,
		State:            crossstate.AllX(),
		Detector:         tpgen.Detector{RHasValue: false},
	}
	neverMatchesAnyRealOp := tpgen.TP{
		ParentFaultID:    "CF",
		OrientationGroup: tpgen.AggressorAfterVictim,
		State:            crossstate.CrossState{Cells: [5]crossstate.Cell{{D: crossstate.X, C: crossstate.One}, {D: crossstate.X, C: crossstate.X}, {D: crossstate.X, C: crossstate.X}, {D: crossstate.X, C: crossstate.X}, {D: crossstate.X, C: crossstate.X}}},
		Detector:         tpgen.Detector{RHasValue: false},
	}

	lut := coverlut.Build()
	sim := coverage.NewFaultSimulator(lut, []faultmodel.Fault{fault}, []tpgen.TP{detectedEverywhere, neverMatchesAnyRealOp})

	mt, err := marchtest.Parse("t", "a(W0,R0)")
	require.NoError(t, err)

	result := sim.Simulate(mt)
	require.InDelta(t, 0.5, result.FaultDetailMap["CF"].DetectCoverage, 1e-9,
		"only the AggressorBeforeVictim orientation was detected, so a two-cell fault scores 0.5")
}

func TestDistinctGidFractionIsBoundedByTotalTPs(t *testing.T) {
	fp, err := faultmodel.ParsePrimitive("<0;-/1/->")
	require.NoError(t, err)
	fault := faultmodel.Fault{ID: "SA0", Category: faultmodel.EitherReadOrCompute, CellScope: faultmodel.SingleCell, Primitives: []faultmodel.FPExpr{fp}}
	tps := tpgen.Generate(fault)

	lut := coverlut.Build()
	sim := coverage.NewFaultSimulator(lut, []faultmodel.Fault{fault}, tps)

	mt, err := marchtest.Parse("t", "a(W0,R0)")
	require.NoError(t, err)

	result := sim.Simulate(mt)
	require.GreaterOrEqual(t, result.StateCoverage, 0.0)
	require.LessOrEqual(t, result.StateCoverage, 1.0)
	require.GreaterOrEqual(t, result.DetectCoverage, 0.0)
	require.LessOrEqual(t, result.DetectCoverage, 1.0)
}
