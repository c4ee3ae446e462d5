package faultmodel

import (
	"github.com/marchatpg/marchatpg/crossstate"
	"github.com/marchatpg/marchatpg/marchtest"
)

// Category names the detection requirement a fault's Test Primitives must
// satisfy.
type Category int

const (
	// EitherReadOrCompute accepts detection via a Read or a ComputeAnd.
	EitherReadOrCompute Category = iota
	// MustRead requires detection via a Read.
	MustRead
	// MustCompute requires detection via a ComputeAnd.
	MustCompute
)

// CellScope names how many cells participate in a fault and their spatial
// arrangement relative to each other.
type CellScope int

const (
	// SingleCell faults involve exactly one cell.
	SingleCell CellScope = iota
	// TwoCellRowAgnostic faults involve two cells in the same row, either side.
	TwoCellRowAgnostic
	// TwoCellSameRow faults involve two cells in the same row, aggressor first.
	TwoCellSameRow
	// TwoCellCrossRow faults involve two cells in different rows (top/bottom).
	TwoCellCrossRow
)

// SideSpec is one side (Sa or Sv) of a parsed FPExpr: an optional initial
// D value and an ordered op sequence. Init is X when the source left the
// bit unspecified ("-").
type SideSpec struct {
	Init crossstate.Val
	Ops  []marchtest.Op
}

// HasOps reports whether this side carries any operations — the signal
// the orientation selector (tpgen) uses to choose which side is the pivot.
func (s SideSpec) HasOps() bool { return len(s.Ops) > 0 }

// LastWriteValue returns the value of the last Write in s.Ops and true, or
// (X, false) if s.Ops ends in anything other than a concrete Write.
func (s SideSpec) LastWriteValue() (crossstate.Val, bool) {
	if len(s.Ops) == 0 {
		return crossstate.X, false
	}
	last := s.Ops[len(s.Ops)-1]
	if last.Kind != marchtest.Write {
		return crossstate.X, false
	}
	return last.Val, true
}

// FPExpr is a parsed `<Sa ; Sv / F / R>` fault primitive.
type FPExpr struct {
	// Raw preserves the original notation for diagnostics and reports.
	Raw string
	// Aggressor is the Sa segment.
	Aggressor SideSpec
	// Victim is the Sv segment.
	Victim SideSpec
	// FD is the fault-effect bit (F), X if unspecified.
	FD crossstate.Val
	// RD is the explicit read/compute expectation (R), X if unspecified.
	RD crossstate.Val
}

// Fault is a single catalogue entry: an identifier, detection category,
// cell scope, and its FPExpr primitives.
type Fault struct {
	ID         string
	Category   Category
	CellScope  CellScope
	Primitives []FPExpr
}

// RawFault is the catalogue wire shape, decoded directly from JSON before
// ParseFault normalises it.
type RawFault struct {
	FaultID          string   `json:"fault_id"`
	Category         string   `json:"category"`
	CellScope        string   `json:"cell_scope"`
	FaultPrimitives  []string `json:"fault_primitives"`
}
