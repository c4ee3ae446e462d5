// Package policy decides when a synthesis driver should stop extending the
// current March element and start a new one, and which address order the
// new element takes.
//
// # What & Why
//
// Synthesis drivers (see synth) append one candidate op at a time. Left
// unchecked they would pack every op into a single element; ElementPolicy
// gives them a uniform stopping rule plus the address-order flip that keeps
// successive elements from degenerating into one unbroken sweep.
//
// # Algorithms & Complexity
//
// ShouldClose is O(1): three scalar comparisons against the last op's
// deltas plus one op-count check. NextOrder is O(1): it inspects only the
// last element of the test under construction.
//
// # Determinism & Stability
//
// Both methods are pure functions of their inputs; identical deltas, op
// counts and configuration always yield the identical decision.
//
// # Design notes
//
// The flip rule reads literally as "flip from the previous element's
// order, unless the two prior elements already share an order, in which
// case flip once": when the last two elements already alternate (Up, Down)
// the new element continues the alternation (flip from the most recent);
// when they coincide (Up, Up) the new element flips once away from that
// shared order rather than trying to alternate against a run that isn't
// alternating. Any is treated as Up for flip purposes (as optable treats
// it for sentinel computation), so flipping Any yields Down.
package policy
