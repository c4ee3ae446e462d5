package coverage

import (
	"github.com/marchatpg/marchatpg/optable"
)

// DetHit records one TP's detection: which TP, where sensitisation ended,
// and where the detector op occurred.
type DetHit struct {
	TPGid  int
	SensID int
	DetID  int
}

// CoverList is the per-op record of which TPs reached each stage at that
// op's position in the table.
type CoverList struct {
	StateCover []int
	SensCover  []int
	DetCover   []DetHit
}

// FaultCoverageDetail is the per-fault rollup of detection coverage.
type FaultCoverageDetail struct {
	DetectCoverage float64
}

// SimulationResult is the full output of one FaultSimulator.Simulate call.
type SimulationResult struct {
	OpTable        []optable.OpContext
	CoverLists     []CoverList
	FaultDetailMap map[string]FaultCoverageDetail
	StateCoverage  float64
	SensCoverage   float64
	DetectCoverage float64
	TotalCoverage  float64
}
