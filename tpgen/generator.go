package tpgen

import (
	"github.com/marchatpg/marchatpg/crossstate"
	"github.com/marchatpg/marchatpg/faultmodel"
	"github.com/marchatpg/marchatpg/marchtest"
)

// orientationPlan names a pivot selection and the lattice slot the
// non-pivot side's init is written into.
type orientationPlan struct {
	group        OrientationGroup
	nonPivotSlot crossstate.Position
	hasNonPivot  bool
	detectorPos  DetectorPos
}

// Generate expands fault into its Test Primitives, one per
// (fault primitive × orientation plan × detector plan).
//
// Complexity: O(len(fault.Primitives)), constant work per primitive.
func Generate(fault faultmodel.Fault) []TP {
	var tps []TP
	for fpIdx, fp := range fault.Primitives {
		tps = append(tps, generateForPrimitive(fault, fpIdx, fp)...)
	}
	return tps
}

func generateForPrimitive(fault faultmodel.Fault, fpIdx int, fp faultmodel.FPExpr) []TP {
	plans := orientationPlansFor(fault.CellScope)
	pivotIsAggressor := selectPivot(fault.CellScope, fp)

	var pivot, nonPivot faultmodel.SideSpec
	if pivotIsAggressor {
		pivot, nonPivot = fp.Aggressor, fp.Victim
	} else {
		pivot, nonPivot = fp.Victim, fp.Aggressor
	}

	opsBeforeDetect := opsBeforeDetectFor(fault.Category, pivot.Ops)

	var out []TP
	for _, plan := range plans {
		state := assembleState(pivot, nonPivot, plan)
		for _, det := range buildDetectors(fault.Category, plan, pivot, nonPivot, fp.RD) {
			out = append(out, TP{
				ParentFaultID:    fault.ID,
				ParentFPIndex:    fpIdx,
				OrientationGroup: plan.group,
				State:            state,
				OpsBeforeDetect:  opsBeforeDetect,
				Detector:         det,
			})
		}
	}
	return out
}

// selectPivot chooses which side of fp is the pivot (the cell whose init
// is written to A2Cas). For two-cell scopes this follows the ground-truth
// rule: the aggressor is pivot iff it carries any ops, else the victim is.
// Single-cell faults have no real aggressor; by documented convention the
// Sa segment is read as the sole cell's spec whenever it carries any
// concrete information, falling back to Sv otherwise.
func selectPivot(scope faultmodel.CellScope, fp faultmodel.FPExpr) bool {
	if scope == faultmodel.SingleCell {
		return fp.Aggressor.Init != crossstate.X || fp.Aggressor.HasOps()
	}
	return fp.Aggressor.HasOps()
}

// orientationPlansFor returns the 1 or 2 orientation plans a cell scope
// expands into: one for SingleCell, two (the two cross-shape slots the
// non-pivot cell may occupy) for every two-cell scope.
func orientationPlansFor(scope faultmodel.CellScope) []orientationPlan {
	switch scope {
	case faultmodel.SingleCell:
		return []orientationPlan{{group: Single, hasNonPivot: false, detectorPos: Adjacent}}
	case faultmodel.TwoCellSameRow:
		return []orientationPlan{
			{group: AggressorBeforeVictim, nonPivotSlot: crossstate.A1, hasNonPivot: true, detectorPos: Adjacent},
			{group: AggressorAfterVictim, nonPivotSlot: crossstate.A3, hasNonPivot: true, detectorPos: NextElementHead},
		}
	case faultmodel.TwoCellRowAgnostic:
		return []orientationPlan{
			{group: AggressorBeforeVictim, nonPivotSlot: crossstate.A1, hasNonPivot: true, detectorPos: NextElementHead},
			{group: AggressorAfterVictim, nonPivotSlot: crossstate.A3, hasNonPivot: true, detectorPos: NextElementHead},
		}
	case faultmodel.TwoCellCrossRow:
		return []orientationPlan{
			{group: AggressorBeforeVictim, nonPivotSlot: crossstate.A0, hasNonPivot: true, detectorPos: NextElementHead},
			{group: AggressorAfterVictim, nonPivotSlot: crossstate.A4, hasNonPivot: true, detectorPos: NextElementHead},
		}
	default:
		return []orientationPlan{{group: Single, hasNonPivot: false, detectorPos: NextElementHead}}
	}
}

// assembleState writes the non-pivot's init into the plan's slot, when the
// plan carries one, then re-imposes cross invariants. The pivot's own init
// is a CrossState precondition only when ops follow it (those ops assume
// the cell already sits at that value); a bare pivot value with no
// trailing ops is established by the sensitising op sequence itself and
// left out of the precondition, so it does not wrongly constrain state_cover
// at the very first, still-all-X op of a test.
func assembleState(pivot, nonPivot faultmodel.SideSpec, plan orientationPlan) crossstate.CrossState {
	state := crossstate.AllX()
	if pivot.HasOps() {
		state.Cells[crossstate.A2Cas].D = pivot.Init
	}
	if plan.hasNonPivot {
		state.Cells[plan.nonPivotSlot].D = nonPivot.Init
	}
	return crossstate.ApplyInvariants(state)
}

// opsBeforeDetectFor copies the pivot's op sequence, dropping the trailing
// ComputeAnd when the fault is MustCompute (that op is promoted into the
// detector instead of being part of sensitisation).
func opsBeforeDetectFor(category faultmodel.Category, pivotOps []marchtest.Op) []marchtest.Op {
	if category != faultmodel.MustCompute || len(pivotOps) == 0 {
		return append([]marchtest.Op(nil), pivotOps...)
	}
	last := pivotOps[len(pivotOps)-1]
	if last.Kind != marchtest.ComputeAnd {
		return append([]marchtest.Op(nil), pivotOps...)
	}
	return append([]marchtest.Op(nil), pivotOps[:len(pivotOps)-1]...)
}

// buildDetectors emits the Read and/or ComputeAnd detector plans implied
// by category, in the fixed order (Read, then ComputeAnd) when both apply.
func buildDetectors(category faultmodel.Category, plan orientationPlan, pivot, nonPivot faultmodel.SideSpec, rd crossstate.Val) []Detector {
	var dets []Detector
	if category == faultmodel.MustRead || category == faultmodel.EitherReadOrCompute {
		if d, ok := readDetector(pivot, nonPivot, rd, plan); ok {
			dets = append(dets, d)
		}
	}
	if category == faultmodel.MustCompute || category == faultmodel.EitherReadOrCompute {
		if d, ok := computeDetector(pivot, plan); ok {
			dets = append(dets, d)
		}
	}
	return dets
}

// readDetector resolves the expected Read value through the fallback
// chain: the non-pivot side's last concrete Write, else an explicit RD, else
// the pivot side's own init bit (the default closing move for a
// stuck-at-style fault with no explicit read expectation). If none of
// those are concrete, detection is not required (RHasValue=false).
func readDetector(pivot, nonPivot faultmodel.SideSpec, rd crossstate.Val, plan orientationPlan) (Detector, bool) {
	expect := crossstate.X
	if v, ok := nonPivot.LastWriteValue(); ok {
		expect = v
	} else if rd != crossstate.X {
		expect = rd
	} else if pivot.Init != crossstate.X {
		expect = pivot.Init
	}

	if expect == crossstate.X {
		return Detector{RHasValue: false}, false
	}
	return Detector{
		Op:        marchtest.ReadOp(expect),
		Pos:       plan.detectorPos,
		RHasValue: true,
	}, true
}

// computeDetector builds a ComputeAnd detector whose middle operand
// equals the pivot's last ComputeAnd M value (the same trailing compute
// opsBeforeDetectFor strips from the sensitisation sequence); T and B are
// wildcards (X) since the contract only names the middle as significant.
func computeDetector(pivot faultmodel.SideSpec, plan orientationPlan) (Detector, bool) {
	for i := len(pivot.Ops) - 1; i >= 0; i-- {
		op := pivot.Ops[i]
		if op.Kind == marchtest.ComputeAnd {
			return Detector{
				Op:        marchtest.ComputeAndOp(crossstate.X, op.M, crossstate.X),
				Pos:       plan.detectorPos,
				RHasValue: true,
			}, true
		}
	}
	return Detector{RHasValue: false}, false
}
