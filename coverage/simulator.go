package coverage

import (
	"github.com/marchatpg/marchatpg/coverlut"
	"github.com/marchatpg/marchatpg/crossstate"
	"github.com/marchatpg/marchatpg/faultmodel"
	"github.com/marchatpg/marchatpg/marchtest"
	"github.com/marchatpg/marchatpg/optable"
	"github.com/marchatpg/marchatpg/tpgen"
)

// FaultSimulator orchestrates the op-table builder and the three coverage
// engines against one fixed (faults, TPs, CoverLUT) universe. Build it
// once per catalogue and reuse it across many MarchTests — that is the
// whole point of precomputing the CoverLUT and TP buckets up front.
type FaultSimulator struct {
	faults []faultmodel.Fault
	tps    []tpgen.TP
	state  *StateCoverEngine
	sens   SensEngine
	detect DetectEngine
}

// NewFaultSimulator precomputes the state-cover buckets for tps against
// lut. faults supplies the scope/id metadata used to aggregate per-fault
// detection coverage.
func NewFaultSimulator(lut *coverlut.Table, faults []faultmodel.Fault, tps []tpgen.TP) *FaultSimulator {
	return &FaultSimulator{
		faults: faults,
		tps:    tps,
		state:  NewStateCoverEngine(lut, tps),
	}
}

// TPs returns the simulator's fixed TP universe.
func (fs *FaultSimulator) TPs() []tpgen.TP { return fs.tps }

// Simulate flattens mt and runs the three-stage coverage pass across it,
// producing a SimulationResult.
//
// Stage 1: build the op table.
// Stage 2: for every op, compute state_cover, and for every TP it covers,
// advance sensitisation and record the result against the op where
// sensitisation ends.
// Stage 3: for every op at which sensitisation ended, resolve detection
// and record the result against the op where the detector matched.
// Stage 4: roll per-op cover lists up into per-fault and scalar coverage.
//
// Complexity: O(ops × average state-cover bucket size).
func (fs *FaultSimulator) Simulate(mt marchtest.MarchTest) SimulationResult {
	table := optable.Build(mt)
	n := len(table)

	coverLists := make([]CoverList, n)

	for i := 0; i < n; i++ {
		opKey := crossstate.Encode(table[i].PreState)
		coverLists[i].StateCover = fs.state.Cover(opKey)

		for _, gid := range coverLists[i].StateCover {
			end, ok := fs.sens.Advance(table, i, fs.tps[gid])
			if !ok {
				continue
			}
			coverLists[end].SensCover = append(coverLists[end].SensCover, gid)
		}
	}

	for j := 0; j < n; j++ {
		for _, gid := range coverLists[j].SensCover {
			det, ok := fs.detect.Detect(table, j, fs.tps[gid])
			if !ok {
				continue
			}
			coverLists[det].DetCover = append(coverLists[det].DetCover, DetHit{TPGid: gid, SensID: j, DetID: det})
		}
	}

	result := SimulationResult{
		OpTable:        table,
		CoverLists:     coverLists,
		FaultDetailMap: fs.aggregateFaultDetail(coverLists),
	}
	result.StateCoverage = fs.distinctGidFraction(coverLists, func(cl CoverList) []int { return cl.StateCover })
	result.SensCoverage = fs.distinctGidFraction(coverLists, func(cl CoverList) []int { return cl.SensCover })
	result.DetectCoverage = fs.distinctGidFraction(coverLists, func(cl CoverList) []int {
		gids := make([]int, len(cl.DetCover))
		for i, hit := range cl.DetCover {
			gids[i] = hit.TPGid
		}
		return gids
	})
	result.TotalCoverage = fs.meanFaultDetectCoverage(result.FaultDetailMap)
	return result
}

// distinctGidFraction returns |union of pick(coverLists[*])| / total TPs.
func (fs *FaultSimulator) distinctGidFraction(coverLists []CoverList, pick func(CoverList) []int) float64 {
	if len(fs.tps) == 0 {
		return 0
	}
	seen := make(map[int]struct{})
	for _, cl := range coverLists {
		for _, gid := range pick(cl) {
			seen[gid] = struct{}{}
		}
	}
	return float64(len(seen)) / float64(len(fs.tps))
}

// aggregateFaultDetail groups detected gids by parent fault and
// orientation group, then applies the cell-scope-dependent coverage rule:
// single-cell faults score 1.0 on any detection; two-cell faults score
// 1.0 only when both orientation groups have a detected TP, 0.5 when
// exactly one does, 0.0 otherwise.
func (fs *FaultSimulator) aggregateFaultDetail(coverLists []CoverList) map[string]FaultCoverageDetail {
	detected := make(map[int]struct{})
	for _, cl := range coverLists {
		for _, hit := range cl.DetCover {
			detected[hit.TPGid] = struct{}{}
		}
	}

	type groupSet struct {
		before, after, single bool
	}
	byFault := make(map[string]*groupSet)

	for gid, tp := range fs.tps {
		if _, ok := detected[gid]; !ok {
			continue
		}
		gs, ok := byFault[tp.ParentFaultID]
		if !ok {
			gs = &groupSet{}
			byFault[tp.ParentFaultID] = gs
		}
		switch tp.OrientationGroup {
		case tpgen.AggressorBeforeVictim:
			gs.before = true
		case tpgen.AggressorAfterVictim:
			gs.after = true
		default:
			gs.single = true
		}
	}

	out := make(map[string]FaultCoverageDetail, len(fs.faults))
	for _, f := range fs.faults {
		gs, hasAny := byFault[f.ID]
		var cov float64
		switch {
		case !hasAny:
			cov = 0
		case f.CellScope == faultmodel.SingleCell:
			if gs.single {
				cov = 1.0
			}
		default:
			count := 0
			if gs.before {
				count++
			}
			if gs.after {
				count++
			}
			cov = float64(count) / 2.0
		}
		out[f.ID] = FaultCoverageDetail{DetectCoverage: cov}
	}
	return out
}

// meanFaultDetectCoverage is the arithmetic mean of every fault's
// DetectCoverage, the module's scalar total_coverage.
func (fs *FaultSimulator) meanFaultDetectCoverage(detail map[string]FaultCoverageDetail) float64 {
	if len(detail) == 0 {
		return 0
	}
	sum := 0.0
	for _, d := range detail {
		sum += d.DetectCoverage
	}
	return sum / float64(len(detail))
}
