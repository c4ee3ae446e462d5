package scorer

import (
	"github.com/marchatpg/marchatpg/coverage"
	"github.com/marchatpg/marchatpg/coverlut"
	"github.com/marchatpg/marchatpg/crossstate"
	"github.com/marchatpg/marchatpg/tpgen"
)

// OpScorer scores one op-table position of a SimulationResult against a
// fixed TP universe.
type OpScorer struct {
	tps []tpgen.TP
}

// NewOpScorer binds an OpScorer to the TP universe a SimulationResult was
// produced against.
func NewOpScorer(tps []tpgen.TP) OpScorer { return OpScorer{tps: tps} }

// Score computes op i's outcome within result.
//
// Complexity: O(|state_cover[i]|).
func (s OpScorer) Score(result coverage.SimulationResult, i int, w Weights) OpOutcome {
	total := len(s.tps)
	if total == 0 {
		return OpOutcome{}
	}
	cl := result.CoverLists[i]
	partM, fullM := s.maskingAt(result, i)

	out := OpOutcome{
		StateCov: float64(len(cl.StateCover)) / float64(total),
		SensCov:  float64(len(cl.SensCover)) / float64(total),
		DCov:     len(cl.DetCover),
		PartMNum: partM,
		FullMNum: fullM,
	}
	out.TotalScore = w.AlphaState*out.StateCov +
		w.BetaSens*float64(out.DCov) +
		w.GammaDetect*float64(out.PartMNum) -
		w.LambdaMask*float64(out.FullMNum)
	return out
}

// maskingAt counts, among the TPs state-matched at op i, how many become
// incompatible at the very next op: fullM when every concrete field the
// TP required was overwritten, partM when only some were.
func (s OpScorer) maskingAt(result coverage.SimulationResult, i int) (partM, fullM int) {
	next := i + 1
	if next >= len(result.OpTable) {
		return 0, 0
	}
	nextDigits := coverlut.Digits(crossstate.Encode(result.OpTable[next].PreState))

	for _, gid := range result.CoverLists[i].StateCover {
		tpKey := crossstate.Encode(s.tps[gid].State)
		if coverlut.IsCompatible(tpKey, crossstate.Encode(result.OpTable[next].PreState)) {
			continue
		}
		tpDigits := coverlut.Digits(tpKey)
		concrete, destroyed := 0, 0
		for d := 0; d < 6; d++ {
			if tpDigits[d] == 2 {
				continue
			}
			concrete++
			if nextDigits[d] != tpDigits[d] {
				destroyed++
			}
		}
		switch {
		case concrete == 0:
			// all-X TP is always compatible; unreachable in this branch.
		case destroyed == concrete:
			fullM++
		case destroyed > 0:
			partM++
		}
	}
	return partM, fullM
}
