package synth

import (
	"github.com/marchatpg/marchatpg/coverage"
	"github.com/marchatpg/marchatpg/coverlut"
	"github.com/marchatpg/marchatpg/crossstate"
	"github.com/marchatpg/marchatpg/faultmodel"
	"github.com/marchatpg/marchatpg/marchtest"
	"github.com/marchatpg/marchatpg/policy"
	"github.com/marchatpg/marchatpg/scorer"
	"github.com/marchatpg/marchatpg/synthconfig"
	"github.com/marchatpg/marchatpg/tpgen"
)

func weightsFrom(cfg synthconfig.Config) scorer.Weights {
	return scorer.Weights{
		AlphaState:  cfg.AlphaState,
		BetaSens:    cfg.BetaSens,
		GammaDetect: cfg.GammaDetect,
		LambdaMask:  cfg.LambdaMask,
		MuCost:      cfg.MuCost,
	}
}

func policyConfigFrom(cfg synthconfig.Config) policy.Config {
	return policy.Config{MaxOpsPerElement: cfg.MaxOpsPerElement, DeferDetectOnly: cfg.DeferDetectOnly}
}

// lookaheadSeed returns the seeded two-element test ("W0" then
// "C(0)(1)(0)", each its own element) plus the trailing empty element that
// KLookaheadSynthDriver opens with when given an empty MarchTest.
// GreedySynthDriver does not use this seed — it opens with one bare empty
// element, matching how the driver is invoked against a freshly
// constructed MarchTest.
func lookaheadSeed(initial marchtest.AddrOrder) marchtest.MarchTest {
	return marchtest.MarchTest{Elements: []marchtest.MarchElement{
		{Order: initial, Ops: []marchtest.Op{marchtest.WriteOp(crossstate.Zero)}},
		{Order: initial, Ops: []marchtest.Op{marchtest.ComputeAndOp(crossstate.Zero, crossstate.One, crossstate.Zero)}},
		{Order: initial},
	}}
}

func emptySeed(initial marchtest.AddrOrder) marchtest.MarchTest {
	return marchtest.MarchTest{Elements: []marchtest.MarchElement{{Order: initial}}}
}

const negInf = -1e300

// GreedySynthDriver appends one candidate op at a time, always taking the
// single op with the greatest immediate DiffScorer gain.
type GreedySynthDriver struct {
	cfg     synthconfig.Config
	sim     *coverage.FaultSimulator
	diff    scorer.DiffScorer
	epolicy policy.ElementPolicy
}

// NewGreedySynthDriver binds a GreedySynthDriver to one fixed fault/TP
// universe and configuration.
func NewGreedySynthDriver(lut *coverlut.Table, cfg synthconfig.Config, faults []faultmodel.Fault, tps []tpgen.TP) *GreedySynthDriver {
	return &GreedySynthDriver{
		cfg:     cfg,
		sim:     coverage.NewFaultSimulator(lut, faults, tps),
		epolicy: policy.New(policyConfigFrom(cfg)),
	}
}

// Run synthesizes a March test, starting from seeded init (or a fresh seed
// if init has no elements), stopping when total coverage reaches
// cfg.TargetCoverage or after cfg.MaxOps steps. Each step appends at most
// one op (a step that closes an element appends none).
func (d *GreedySynthDriver) Run(init marchtest.MarchTest) marchtest.MarchTest {
	order, err := d.cfg.Order()
	if err != nil {
		order = marchtest.Any
	}
	cur := init
	if len(cur.Elements) == 0 {
		cur = emptySeed(order)
	}
	curSim := d.sim.Simulate(cur)
	forbidden := -1

	for step := 0; step < d.cfg.MaxOps; step++ {
		if curSim.TotalCoverage >= d.cfg.TargetCoverage {
			break
		}

		curOrder := cur.Elements[len(cur.Elements)-1].Order
		bestIdx, bestGain := -1, negInf
		var bestMT marchtest.MarchTest
		var bestSim coverage.SimulationResult

		for idx, op := range Candidates() {
			if idx == forbidden || violatesRWValueRule(cur, op) {
				continue
			}
			trial := appendOp(cur, curOrder, op)
			trialSim := d.sim.Simulate(trial)
			gain := d.diff.Score(curSim, trialSim, 1, weightsFrom(d.cfg)).Gain
			if gain > bestGain {
				bestGain, bestIdx, bestMT, bestSim = gain, idx, trial, trialSim
			}
		}

		if bestIdx < 0 {
			cur = closeElement(cur, policy.NextOrder(cur.Elements, order))
			curSim = d.sim.Simulate(cur)
			forbidden = -1
			continue
		}

		deltas := policy.Deltas{
			State:  bestSim.StateCoverage - curSim.StateCoverage,
			Sens:   bestSim.SensCoverage - curSim.SensCoverage,
			Detect: bestSim.DetectCoverage - curSim.DetectCoverage,
		}
		if bestGain <= 0 && d.epolicy.ShouldClose(deltas, len(cur.Elements[len(cur.Elements)-1].Ops)) {
			cur = closeElement(cur, policy.NextOrder(cur.Elements, order))
			curSim = d.sim.Simulate(cur)
			forbidden = -1
			continue
		}

		cur, curSim = bestMT, bestSim
		if bestGain <= 0 {
			forbidden = bestIdx
		} else {
			forbidden = -1
		}
	}

	return cur
}
