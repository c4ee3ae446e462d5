package reportio

import (
	"sort"

	"github.com/marchatpg/marchatpg/coverage"
	"github.com/marchatpg/marchatpg/crossstate"
	"github.com/marchatpg/marchatpg/faultmodel"
	"github.com/marchatpg/marchatpg/marchtest"
)

// opRow is one rendered op-table position.
type opRow struct {
	Index      int
	ElemIndex  int
	Order      string
	Op         string
	Key        int
	StateCover []int
	SensCover  []int
	DetCover   []int
}

// faultRow is one rendered fault's rolled-up coverage.
type faultRow struct {
	ID             string
	DetectCoverage float64
}

// buildRows flattens result into the row shapes both writers render. Fault
// rows are sorted by ID for deterministic output.
func buildRows(result coverage.SimulationResult, faults []faultmodel.Fault) ([]opRow, []faultRow) {
	rows := make([]opRow, len(result.OpTable))
	for i, ctx := range result.OpTable {
		cl := result.CoverLists[i]
		detGids := make([]int, len(cl.DetCover))
		for j, hit := range cl.DetCover {
			detGids[j] = hit.TPGid
		}
		rows[i] = opRow{
			Index:      i,
			ElemIndex:  ctx.ElemIndex,
			Order:      ctx.Order.String(),
			Op:         marchtest.OpToken(ctx.Op),
			Key:        crossstate.Encode(ctx.PreState),
			StateCover: cl.StateCover,
			SensCover:  cl.SensCover,
			DetCover:   detGids,
		}
	}

	frows := make([]faultRow, 0, len(faults))
	for _, f := range faults {
		detail := result.FaultDetailMap[f.ID]
		frows = append(frows, faultRow{ID: f.ID, DetectCoverage: detail.DetectCoverage})
	}
	sort.Slice(frows, func(i, j int) bool { return frows[i].ID < frows[j].ID })

	return rows, frows
}
