package coverage

import (
	"github.com/marchatpg/marchatpg/coverlut"
	"github.com/marchatpg/marchatpg/crossstate"
	"github.com/marchatpg/marchatpg/marchtest"
	"github.com/marchatpg/marchatpg/optable"
	"github.com/marchatpg/marchatpg/tpgen"
)

// StateCoverEngine answers, for an observed operation's pre-state key,
// which TP global indices (gids) that state satisfies.
type StateCoverEngine struct {
	lut *coverlut.Table
	// byTPKey buckets TP gids by their state's encoded key, per the
	// coverlut contract: "tp_gid lists indexed by encode(tp.state)".
	byTPKey map[int][]int
}

// NewStateCoverEngine bucketises tps by their encoded state key.
func NewStateCoverEngine(lut *coverlut.Table, tps []tpgen.TP) *StateCoverEngine {
	e := &StateCoverEngine{lut: lut, byTPKey: make(map[int][]int)}
	for gid, tp := range tps {
		key := crossstate.Encode(tp.State)
		e.byTPKey[key] = append(e.byTPKey[key], gid)
	}
	return e
}

// Cover returns every TP gid whose state is compatible with opKey.
//
// Complexity: O(len(compatible TP keys) + total gids across their buckets).
func (e *StateCoverEngine) Cover(opKey int) []int {
	var out []int
	for _, tpKey := range e.lut.CompatibleTPKeys(opKey) {
		out = append(out, e.byTPKey[tpKey]...)
	}
	return out
}

// SensEngine consumes a TP's ops_before_detect starting at the very op
// whose pre-state satisfied the state precondition (that op is itself the
// first element of the sensitising sequence, not a separate step before
// it), requiring every subsequent op to lie in the same March element and
// match exactly (X on a ComputeAnd TP operand is a wildcard).
type SensEngine struct{}

// Advance returns the op-table index where tp's ops_before_detect sequence
// finishes matching, starting at startOp inclusive, or false if the
// sequence cannot be matched in full before the element ends. An empty
// sequence needs nothing to run and resolves immediately at startOp.
//
// Complexity: O(len(tp.OpsBeforeDetect)).
func (SensEngine) Advance(table []optable.OpContext, startOp int, tp tpgen.TP) (int, bool) {
	if len(tp.OpsBeforeDetect) == 0 {
		return startOp, true
	}

	elem := table[startOp].ElemIndex
	cursor := startOp - 1
	for _, want := range tp.OpsBeforeDetect {
		cursor++
		if cursor >= len(table) || table[cursor].ElemIndex != elem {
			return 0, false
		}
		if !opsMatch(want, table[cursor].Op) {
			return 0, false
		}
	}
	return cursor, true
}

// opsMatch reports whether a TP's required op (want, possibly carrying X
// ComputeAnd operands as don't-care) matches an observed, fully concrete op.
func opsMatch(want, got marchtest.Op) bool {
	if want.Kind != got.Kind {
		return false
	}
	switch want.Kind {
	case marchtest.Write, marchtest.Read:
		return want.Val != crossstate.X && want.Val == got.Val
	case marchtest.ComputeAnd:
		return valMatches(want.T, got.T) && valMatches(want.M, got.M) && valMatches(want.B, got.B)
	default:
		return false
	}
}

// valMatches reports whether an observed operand value satisfies a TP
// operand requirement, X on the TP side being a wildcard.
func valMatches(want, got crossstate.Val) bool {
	return want == crossstate.X || want == got
}

// DetectEngine resolves a TP's detector anchor relative to the end of
// sensitisation and checks whether the op found there matches.
type DetectEngine struct{}

// Detect returns the op-table index where tp's detector matched, or false
// if no detection occurred. When no detection is required
// (RHasValue=false) it returns sensEnd itself and true.
//
// Complexity: O(1) for Adjacent; O(element length) for SameElementHead and
// NextElementHead, whose anchors are found by walking the table.
func (DetectEngine) Detect(table []optable.OpContext, sensEnd int, tp tpgen.TP) (int, bool) {
	if !tp.Detector.RHasValue {
		return sensEnd, true
	}

	var detID int
	switch tp.Detector.Pos {
	case tpgen.Adjacent:
		detID = sensEnd + 1
		if detID >= len(table) {
			return 0, false
		}
	case tpgen.SameElementHead:
		detID = optable.ElementStart(table, sensEnd)
	case tpgen.NextElementHead:
		detID = optable.NextElementStart(table, sensEnd)
		if detID < 0 {
			return 0, false
		}
	default:
		return 0, false
	}

	if !detectorMatches(tp.Detector.Op, table[detID].Op) {
		return 0, false
	}
	return detID, true
}

// detectorMatches checks a candidate op against a detector's required op:
// a Read detector needs an equal-value Read; a ComputeAnd detector needs
// a ComputeAnd whose T/M/B each match, X on the detector side wildcarding.
func detectorMatches(want, got marchtest.Op) bool {
	if want.Kind != got.Kind {
		return false
	}
	switch want.Kind {
	case marchtest.Read:
		return want.Val == got.Val
	case marchtest.ComputeAnd:
		return valMatches(want.T, got.T) && valMatches(want.M, got.M) && valMatches(want.B, got.B)
	default:
		return false
	}
}
