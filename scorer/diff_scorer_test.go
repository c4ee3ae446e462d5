package scorer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marchatpg/marchatpg/coverage"
	"github.com/marchatpg/marchatpg/scorer"
)

func TestDiffScorerComputesWeightedGainMinusCost(t *testing.T) {
	before := coverage.SimulationResult{StateCoverage: 0.25, SensCoverage: 0.10, DetectCoverage: 0.05}
	after := coverage.SimulationResult{StateCoverage: 0.40, SensCoverage: 0.10, DetectCoverage: 0.20}

	w := scorer.Weights{AlphaState: 1.0, BetaSens: 2.0, GammaDetect: 0.5, LambdaMask: 1.0, MuCost: 0.05}
	out := scorer.DiffScorer{}.Score(before, after, 4, w)

	require.InDelta(t, 0.15, out.DeltaState, 1e-9)
	require.InDelta(t, 0.0, out.DeltaSens, 1e-9)
	require.InDelta(t, 0.15, out.DeltaDetect, 1e-9)

	want := w.AlphaState*0.15 + w.BetaSens*0.0 + w.GammaDetect*0.15 - w.MuCost*4
	require.InDelta(t, want, out.Gain, 1e-9)
}

func TestDiffScorerZeroDeltaWithNonZeroCostIsNegativeGain(t *testing.T) {
	same := coverage.SimulationResult{StateCoverage: 0.5, SensCoverage: 0.5, DetectCoverage: 0.5}
	w := scorer.DefaultWeights()

	out := scorer.DiffScorer{}.Score(same, same, 1, w)

	require.Zero(t, out.DeltaState)
	require.Zero(t, out.DeltaSens)
	require.Zero(t, out.DeltaDetect)
	require.InDelta(t, -w.MuCost, out.Gain, 1e-9)
}

func TestDiffScorerNegativeDeltaYieldsNegativeContribution(t *testing.T) {
	before := coverage.SimulationResult{StateCoverage: 0.6, SensCoverage: 0.3, DetectCoverage: 0.2}
	after := coverage.SimulationResult{StateCoverage: 0.6, SensCoverage: 0.1, DetectCoverage: 0.2}
	w := scorer.DefaultWeights()

	out := scorer.DiffScorer{}.Score(before, after, 0, w)

	require.InDelta(t, -0.2, out.DeltaSens, 1e-9)
	require.InDelta(t, w.BetaSens*-0.2, out.Gain, 1e-9)
}
