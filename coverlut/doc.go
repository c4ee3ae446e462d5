// Package coverlut precomputes the 729×729 state-compatibility table that
// the coverage engines (see coverage) use to answer "does this stored TP
// state accept this observed operation state" in O(1).
//
// # What & Why
//
// A TP's required pre-state and an op's actual pre-state are both
// crossstate.CrossState values, each reducible to a key in
// [0, crossstate.KeySpace). Compatibility is a simple digit-wise rule — X
// on the TP side is a wildcard, X never appears concrete on the op side —
// but it is checked once per (TP, op) pair per simulation step, so this
// package pays the O(729²) cost once at process start and serves O(1)
// bucket lookups afterward.
//
// # Algorithms & Complexity
//
// Build is O(KeySpace²) = O(531,441) digit comparisons, run once.
// Table.CompatibleTPKeys is O(1): a slice index returning the stored
// bucket without copying it. IsCompatible is O(1): six digit comparisons.
//
// # Determinism & Stability
//
// Build is a pure function of crossstate.KeySpace; the resulting table is
// read-only after construction and safe to share across goroutines.
package coverlut
