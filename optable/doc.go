// Package optable flattens a marchtest.MarchTest into a linear operation
// table, computing each op's pre-state by walking a small sentinel chain
// across element boundaries.
//
// # What & Why
//
// The coverage engines (see coverage) need, for every op in document
// order, the crossstate.CrossState that held immediately before that op
// ran. Rather than materialising a full memory array, this package tracks
// only the three sentinels the cross-shape lattice actually needs: the
// running D at the addressed cell within the current element, the previous
// element's D at the addressed cell, and the most recent ComputeAnd's
// (T, M, B) triple.
//
// # Algorithms & Complexity
//
// Build is a single O(total ops) pass: one sentinel update per op, one
// CrossState assembly per op.
//
// # Determinism & Stability
//
// Build is a pure function of its MarchTest argument. Empty elements
// contribute no rows but still carry sentinels forward unchanged, so two
// MarchTests differing only by interspersed empty elements produce op
// tables with identical ops and pre-states; only ElemIndex differs, since
// it counts the empty elements too.
package optable
