// Package coverage implements the three coverage engines and the
// FaultSimulator that composes them into a SimulationResult.
//
// # What & Why
//
// For a flattened operation table (see optable) and a fixed set of Test
// Primitives (see tpgen), this package answers, per op, three increasingly
// strict questions: does the op's pre-state match a TP's required state
// (StateCoverEngine), does the following same-element op sequence match
// the TP's ops-before-detect (SensEngine), and does a later op at the
// right position detect it (DetectEngine). FaultSimulator runs all three
// across the whole table and rolls the per-op cover lists up into
// per-fault and scalar coverage numbers.
//
// # Algorithms & Complexity
//
// StateCoverEngine.Cover is O(bucket size) per call via a precomputed
// coverlut.Table lookup. SensEngine.Advance is O(len(ops_before_detect))
// per call. DetectEngine.Detect is O(1) for an Adjacent anchor and
// O(element length) for an element-head anchor, plus a three-operand or
// single-value comparison. Simulate is O(ops × average bucket size),
// matching the compatibility-table cost model coverlut documents.
//
// # Determinism & Stability
//
// Simulate is a pure function of (op table, TPs, CoverLUT): identical
// inputs always produce a byte-identical SimulationResult, satisfying the
// module's "no hidden state" ordering guarantee.
//
// # Design notes
//
// SensEngine.Advance treats the op whose pre-state satisfied the state
// precondition as the first element of ops_before_detect itself, not a
// separate step before it — the precondition holds immediately before
// that op runs, and the op is the first action of the sensitising
// sequence. An empty ops_before_detect resolves immediately at that same
// op index with nothing further to run.
package coverage
