package scorer

import "github.com/marchatpg/marchatpg/coverage"

// DiffScorer compares two whole-run SimulationResults, scoring the
// incremental coverage gain of whatever produced "after" from "before"
// (typically appending one candidate op during synthesis).
type DiffScorer struct{}

// Score computes the per-stage deltas and the weighted gain, charging
// costPerOp against it.
//
// Complexity: O(1).
func (DiffScorer) Score(before, after coverage.SimulationResult, costPerOp float64, w Weights) DiffOutcome {
	d := DiffOutcome{
		DeltaState:  after.StateCoverage - before.StateCoverage,
		DeltaSens:   after.SensCoverage - before.SensCoverage,
		DeltaDetect: after.DetectCoverage - before.DetectCoverage,
	}
	d.Gain = w.AlphaState*d.DeltaState + w.BetaSens*d.DeltaSens + w.GammaDetect*d.DeltaDetect - w.MuCost*costPerOp
	return d
}
