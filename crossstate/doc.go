// Package crossstate defines the five-cell D/C cross-shaped lattice that
// every other package in this module builds on.
//
// # What & Why
//
// A CrossState snapshots the data (D) and compute-accumulator (C) values of
// the five cells arranged around an addressed cell during March-test
// simulation: A0, A1, A2Cas (the cell under operation), A3, A4. Fault
// primitives are expanded against this lattice (see tpgen), and every
// operation in a flattened op table carries one as its pre-state (see
// optable).
//
// # Algorithms & Complexity
//
// Encode/Decode are O(1): six base-3 digits packed into an integer in
// [0, 729). ApplyInvariants is O(1): a handful of comparisons and
// conditional copies.
//
// # Determinism & Stability
//
// CrossState is a plain value type (no pointers, no shared storage); two
// states with equal fields are byte-identical and compare equal with ==.
// Encode is a pure function of its six named fields — cells outside the key
// (none, here; all five cells contribute through D/C pairs) never affect it.
//
// # Errors
//
//	ErrKeyOutOfRange - Decode was given a key outside [0, KeySpace).
package crossstate
