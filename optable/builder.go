package optable

import (
	"github.com/marchatpg/marchatpg/crossstate"
	"github.com/marchatpg/marchatpg/marchtest"
)

// computeTriple holds the three operand polarities of the most recent
// ComputeAnd, indexed by lattice position (A0=top, A2Cas=middle, A4=bottom).
type computeTriple struct {
	t, m, b crossstate.Val
}

// Build flattens mt into a linear operation table, computing every op's
// pre-state by walking the D2/C-triple sentinel chain across elements.
//
// Stage 1: for each element, seed the running D2 from the previous
// element's committed value.
// Stage 2: for each op, assemble its pre-state from the running D2, the
// previous element's D2 (for the non-running side of the row), and the
// current compute triple, then re-impose cross invariants.
// Stage 3: advance the running D2 (on Write) or compute triple (on
// ComputeAnd) after recording the pre-state.
// Stage 4: commit the element's final running D2 as the new sentinel for
// the next element, even when the element was empty.
//
// Complexity: O(total ops across mt).
func Build(mt marchtest.MarchTest) []OpContext {
	var table []OpContext

	d2PrevElem := crossstate.X
	ct := computeTriple{t: crossstate.X, m: crossstate.X, b: crossstate.X}

	for elemIdx, elem := range mt.Elements {
		runningD2 := d2PrevElem

		for opIdx, op := range elem.Ops {
			pre := assemblePreState(elem.Order, runningD2, d2PrevElem, ct)
			table = append(table, OpContext{
				ElemIndex:       elemIdx,
				IndexWithinElem: opIdx,
				Order:           elem.Order,
				Op:              op,
				PreState:        pre,
			})

			switch op.Kind {
			case marchtest.Write:
				runningD2 = op.Val
			case marchtest.ComputeAnd:
				ct = computeTriple{t: op.T, m: op.M, b: op.B}
			}
		}

		d2PrevElem = runningD2
	}

	return table
}

// assemblePreState builds the pre-op CrossState for one op given the
// element's address order and the current sentinel values.
func assemblePreState(order marchtest.AddrOrder, runningD2, d2PrevElem crossstate.Val, ct computeTriple) crossstate.CrossState {
	var rowNearSide, rowFarSide crossstate.Val // A1, A3 sources respectively
	if order == marchtest.Down {
		rowNearSide, rowFarSide = d2PrevElem, runningD2
	} else { // Up or Any: Any is treated as Up for sentinel computation.
		rowNearSide, rowFarSide = runningD2, d2PrevElem
	}

	pre := crossstate.AllX()
	pre.Cells[crossstate.A2Cas].D = runningD2
	pre.Cells[crossstate.A1].D = rowNearSide
	pre.Cells[crossstate.A3].D = rowFarSide
	pre.Cells[crossstate.A0].D = rowNearSide // A0 mirrors its row neighbour A1.
	pre.Cells[crossstate.A4].D = rowFarSide  // A4 mirrors its row neighbour A3.

	pre.Cells[crossstate.A0].C = ct.t
	pre.Cells[crossstate.A2Cas].C = ct.m
	pre.Cells[crossstate.A4].C = ct.b

	return crossstate.ApplyInvariants(pre)
}
