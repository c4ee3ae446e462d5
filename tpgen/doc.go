// Package tpgen expands a faultmodel.Fault into the Test Primitives (TPs)
// the coverage engines (see coverage) hunt for during simulation.
//
// # What & Why
//
// Each fault primitive describes an abstract sensitising condition; this
// package turns it into one or more concrete TPs, each carrying a required
// pre-state (crossstate.CrossState), the exact op sub-sequence that must
// follow, and a detector describing where and how the fault is observed.
//
// # Algorithms & Complexity
//
// Generate is O(primitives × orientationPlans × detectorPlans), each
// constant per primitive — a handful of cross-state field writes. For a
// catalogue of F faults averaging P primitives this is O(F·P).
//
// # Determinism & Stability
//
// Generate is a pure function of its Fault argument; TP order is stable
// (primitives in catalogue order, orientation plans in a fixed order,
// detector plans in a fixed order) so re-running on the same catalogue
// reproduces identical TP indices.
//
// # Design notes
//
// OrientationSelector's pivot rule is grounded on the ground-truth pivot
// logic for two-cell faults: pivot is the Aggressor side iff it carries
// any ops, otherwise the Victim side. Single-cell faults have no aggressor
// concept at all; by convention (documented in this module's design
// ledger) the Sa segment of a single-cell primitive is read as the sole
// cell's spec, and its detector anchors Adjacent (the very next op),
// matching the immediate write-then-read shape of a bare stuck-at
// primitive. A MustCompute detector's middle operand is read off the
// pivot's own trailing ComputeAnd (the same op opsBeforeDetectFor strips
// from the sensitisation sequence and promotes to the detector); a Read
// detector's expected value falls back through the non-pivot side's last
// write, an explicit R field, and finally the pivot side's own init bit
// when the primitive leaves R unspecified. The pivot's init bit becomes a
// CrossState precondition only when ops follow it; a bare pivot value is
// established by the sensitising sequence itself, not pre-required, so it
// never wrongly excludes a fresh, still-all-X op from state_cover.
package tpgen
