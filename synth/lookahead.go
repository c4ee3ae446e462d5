package synth

import (
	"github.com/marchatpg/marchatpg/coverage"
	"github.com/marchatpg/marchatpg/coverlut"
	"github.com/marchatpg/marchatpg/faultmodel"
	"github.com/marchatpg/marchatpg/marchtest"
	"github.com/marchatpg/marchatpg/policy"
	"github.com/marchatpg/marchatpg/scorer"
	"github.com/marchatpg/marchatpg/synthconfig"
	"github.com/marchatpg/marchatpg/tpgen"
)

// KLookaheadSynthDriver picks the first op of the depth-k path with the
// greatest cumulative DiffScorer gain, evaluated by repeated simulation.
// k=1 makes GreedySynthDriver's per-step choice whenever some candidate has
// non-negative gain; candidates with negative gain are pruned, so when all
// are negative the element is closed instead.
type KLookaheadSynthDriver struct {
	cfg     synthconfig.Config
	sim     *coverage.FaultSimulator
	diff    scorer.DiffScorer
	epolicy policy.ElementPolicy
	k       int
}

// NewKLookaheadSynthDriver binds a KLookaheadSynthDriver to one fixed
// fault/TP universe, configuration, and lookahead depth k (values < 1 are
// clamped to 1).
func NewKLookaheadSynthDriver(lut *coverlut.Table, cfg synthconfig.Config, faults []faultmodel.Fault, tps []tpgen.TP, k int) *KLookaheadSynthDriver {
	if k < 1 {
		k = 1
	}
	return &KLookaheadSynthDriver{
		cfg:     cfg,
		sim:     coverage.NewFaultSimulator(lut, faults, tps),
		epolicy: policy.New(policyConfigFrom(cfg)),
		k:       k,
	}
}

type evalResult struct {
	valid      bool
	totalGain  float64
	firstOp    marchtest.Op
	firstIdx   int
	firstGain  float64
	afterFirst coverage.SimulationResult
}

// Run synthesizes a March test the same way GreedySynthDriver does, except
// that an empty init is replaced by lookaheadSeed rather than a bare empty
// element, and each step's chosen op is the first move of the best depth-k
// path rather than the single best immediate move.
func (d *KLookaheadSynthDriver) Run(init marchtest.MarchTest) marchtest.MarchTest {
	order, err := d.cfg.Order()
	if err != nil {
		order = marchtest.Any
	}
	cur := init
	if len(cur.Elements) == 0 {
		cur = lookaheadSeed(order)
	}
	curSim := d.sim.Simulate(cur)
	forbidden := -1

	for step := 0; step < d.cfg.MaxOps; step++ {
		if curSim.TotalCoverage >= d.cfg.TargetCoverage {
			break
		}

		curOrder := cur.Elements[len(cur.Elements)-1].Order
		best := d.searchBest(cur, curSim, curOrder, d.k, forbidden)
		if !best.valid {
			cur = closeElement(cur, policy.NextOrder(cur.Elements, order))
			curSim = d.sim.Simulate(cur)
			forbidden = -1
			continue
		}

		deltas := policy.Deltas{
			State:  best.afterFirst.StateCoverage - curSim.StateCoverage,
			Sens:   best.afterFirst.SensCoverage - curSim.SensCoverage,
			Detect: best.afterFirst.DetectCoverage - curSim.DetectCoverage,
		}
		if best.firstGain <= 0 && d.k <= 1 && d.epolicy.ShouldClose(deltas, len(cur.Elements[len(cur.Elements)-1].Ops)) {
			cur = closeElement(cur, policy.NextOrder(cur.Elements, order))
			curSim = d.sim.Simulate(cur)
			forbidden = -1
			continue
		}

		cur = appendOp(cur, curOrder, best.firstOp)
		curSim = best.afterFirst
		if best.firstGain <= 0 {
			forbidden = best.firstIdx
		} else {
			forbidden = -1
		}
	}

	return cur
}

// searchBest recursively evaluates each eligible candidate depth steps
// deep and returns the best first move found. Candidates with a strictly
// negative first-step gain are pruned; a zero-gain choice forbids its own
// alphabet index one level deeper.
func (d *KLookaheadSynthDriver) searchBest(cur marchtest.MarchTest, curSim coverage.SimulationResult, ord marchtest.AddrOrder, depth, forbidden int) evalResult {
	if depth <= 0 {
		return evalResult{valid: false}
	}

	best := evalResult{valid: false, totalGain: negInf}
	for idx, op := range Candidates() {
		if idx == forbidden || violatesRWValueRule(cur, op) {
			continue
		}
		trial := appendOp(cur, ord, op)
		trialSim := d.sim.Simulate(trial)
		gain := d.diff.Score(curSim, trialSim, 1, weightsFrom(d.cfg)).Gain
		if gain < 0 {
			continue
		}

		future := 0.0
		if depth > 1 {
			childForbid := -1
			if gain <= 1e-12 {
				childForbid = idx
			}
			child := d.searchBest(trial, trialSim, ord, depth-1, childForbid)
			if child.valid {
				future = child.totalGain
			}
		}

		total := gain + future
		if total > best.totalGain {
			best = evalResult{
				valid:      true,
				totalGain:  total,
				firstOp:    op,
				firstIdx:   idx,
				firstGain:  gain,
				afterFirst: trialSim,
			}
		}
	}
	return best
}
