package synth

import (
	"github.com/marchatpg/marchatpg/coverage"
	"github.com/marchatpg/marchatpg/marchtest"
	"github.com/marchatpg/marchatpg/tpgen"
)

// MaskedTP identifies a TP that entered state_cover at MatchOp but never
// reached detection.
type MaskedTP struct {
	TPIndex int
	MatchOp int
}

// Refiner repairs a synthesized March test's masked-but-undetected TPs by
// inserting each TP's own detector op directly after the TP's last
// state-matched op, i.e. immediately before the first op whose pre-state
// no longer satisfies the TP's cross-state requirement.
type Refiner struct {
	sim *coverage.FaultSimulator
	tps []tpgen.TP
}

// NewRefiner binds a Refiner to the simulator and TP universe a
// SimulationResult was produced against.
func NewRefiner(sim *coverage.FaultSimulator, tps []tpgen.TP) *Refiner {
	return &Refiner{sim: sim, tps: tps}
}

// FindMasked reports every TP that state-matched at some op but never
// appears in any det_cover bucket — it was reachable but never detected.
func (r *Refiner) FindMasked(result coverage.SimulationResult) []MaskedTP {
	detected := make(map[int]bool)
	for _, cl := range result.CoverLists {
		for _, hit := range cl.DetCover {
			detected[hit.TPGid] = true
		}
	}

	var out []MaskedTP
	seen := make(map[int]bool)
	for i, cl := range result.CoverLists {
		for _, gid := range cl.StateCover {
			if detected[gid] || seen[gid] {
				continue
			}
			seen[gid] = true
			out = append(out, MaskedTP{TPIndex: gid, MatchOp: i})
		}
	}
	return out
}

// Repair attempts, for each masked TP, to insert the TP's own detector op
// (Read or ComputeAnd) immediately before the first op whose pre-state no
// longer satisfies the required cross-state, accepting the insertion only if state coverage
// does not regress and the TP becomes detected. Returns the
// possibly-modified test and the number of repairs accepted.
func (r *Refiner) Repair(mt marchtest.MarchTest, masked []MaskedTP) (marchtest.MarchTest, int) {
	cur := mt
	curSim := r.sim.Simulate(cur)
	accepted := 0

	for _, m := range masked {
		tp := r.tps[m.TPIndex]
		if !tp.Detector.RHasValue {
			continue
		}

		// Re-locate the TP's match point in the current test: an earlier
		// accepted repair shifts op-table indices, so m.MatchOp (computed
		// against the original result) cannot be trusted directly. The
		// masking op is always the one immediately after the TP's last
		// state-matched position — by construction, that is the first
		// position where the TP's key is no longer compatible, since
		// otherwise the TP would itself have state-matched there too.
		matchOp, ok := findMatchOp(curSim, m.TPIndex)
		if !ok {
			continue
		}
		maskOp := matchOp + 1
		if maskOp >= len(curSim.OpTable) {
			continue
		}

		trial, ok := insertOpBefore(cur, curSim, maskOp, tp.Detector.Op)
		if !ok {
			continue
		}
		trialSim := r.sim.Simulate(trial)
		if trialSim.StateCoverage < curSim.StateCoverage {
			continue
		}
		if !tpDetected(trialSim, m.TPIndex) {
			continue
		}
		cur, curSim = trial, trialSim
		accepted++
	}

	return cur, accepted
}

func tpDetected(result coverage.SimulationResult, gid int) bool {
	for _, cl := range result.CoverLists {
		for _, hit := range cl.DetCover {
			if hit.TPGid == gid {
				return true
			}
		}
	}
	return false
}

// findMatchOp finds the last op-table position where gid appears in
// state_cover, in the given (already undetected) result.
func findMatchOp(result coverage.SimulationResult, gid int) (int, bool) {
	if tpDetected(result, gid) {
		return 0, false
	}
	last, found := 0, false
	for i, cl := range result.CoverLists {
		for _, g := range cl.StateCover {
			if g == gid {
				last, found = i, true
			}
		}
	}
	return last, found
}

// insertOpBefore splices op into mt immediately before the global op-table
// position opIdx, within the same element, preserving every other op's
// relative order.
func insertOpBefore(mt marchtest.MarchTest, result coverage.SimulationResult, opIdx int, op marchtest.Op) (marchtest.MarchTest, bool) {
	if opIdx < 0 || opIdx >= len(result.OpTable) {
		return marchtest.MarchTest{}, false
	}
	ctx := result.OpTable[opIdx]

	out := marchtest.MarchTest{Name: mt.Name, Elements: append([]marchtest.MarchElement(nil), mt.Elements...)}
	elem := out.Elements[ctx.ElemIndex]
	ops := make([]marchtest.Op, 0, len(elem.Ops)+1)
	ops = append(ops, elem.Ops[:ctx.IndexWithinElem]...)
	ops = append(ops, op)
	ops = append(ops, elem.Ops[ctx.IndexWithinElem:]...)
	elem.Ops = ops
	out.Elements[ctx.ElemIndex] = elem
	return out, true
}
