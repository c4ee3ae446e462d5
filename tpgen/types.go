package tpgen

import (
	"github.com/marchatpg/marchatpg/crossstate"
	"github.com/marchatpg/marchatpg/marchtest"
)

// OrientationGroup names which of the two cells in a two-cell fault acts
// as aggressor relative to address order, or Single for one-cell faults.
type OrientationGroup int

const (
	// Single marks a one-cell fault's only orientation.
	Single OrientationGroup = iota
	// AggressorBeforeVictim marks the orientation where the aggressor is
	// visited before the victim in address order ("A<V").
	AggressorBeforeVictim
	// AggressorAfterVictim marks the orientation where the aggressor is
	// visited after the victim in address order ("A>V").
	AggressorAfterVictim
)

// DetectorPos names where, relative to the end of sensitisation, the
// detecting op must occur.
type DetectorPos int

const (
	// Adjacent requires the detector to be the very next op in the table.
	Adjacent DetectorPos = iota
	// SameElementHead requires the detector to be the first op of the
	// element containing the end of sensitisation.
	SameElementHead
	// NextElementHead requires the detector to be the first op of the
	// next non-empty element.
	NextElementHead
)

// Detector describes the op that must be observed to detect a TP, and
// where it must occur. If RHasValue is false no detection is required —
// state + sensitisation alone constitute coverage.
type Detector struct {
	Op        marchtest.Op
	Pos       DetectorPos
	RHasValue bool
}

// TP (Test Primitive) is the atomic detection goal tpgen produces from one
// (fault primitive, orientation plan, detector plan) triple.
type TP struct {
	ParentFaultID     string
	ParentFPIndex     int
	OrientationGroup  OrientationGroup
	State             crossstate.CrossState
	OpsBeforeDetect   []marchtest.Op
	Detector          Detector
}
