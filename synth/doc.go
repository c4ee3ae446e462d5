// Package synth builds March tests op by op (or element skeleton by
// skeleton) against a fixed fault/TP universe, driven by scorer's
// incremental gain.
//
// # What & Why
//
// GreedySynthDriver and KLookaheadSynthDriver append one candidate op at a
// time, picking the op that maximises scorer.DiffScorer gain one or k
// steps ahead. GreedyTemplateSearcher and BeamTemplateSearcher instead
// search over whole-element skeletons. Refiner is a post-pass that repairs
// TPs which were state/sensitisation-matched but then masked before
// detection.
//
// # Algorithms & Complexity
//
// Candidate alphabet is the 12 ops {W0, W1, R0, R1, C(T,M,B) for all eight
// polarities}. Greedy synthesis is O(max_ops · |alphabet| · simulate-cost);
// k-lookahead multiplies the per-step factor by roughly |alphabet|^(k-1)
// since it explores a depth-k tree before committing to the first op.
// Template search is O(L · |library| · |value expansions| · simulate-cost)
// for the greedy variant, and additionally scales by beam_width for the
// beam variant.
//
// # Determinism & Stability
//
// All drivers are deterministic given identical inputs: candidates are
// always walked in the same fixed alphabet order and ties are broken by
// "first candidate seen wins" (strict greater-than comparisons), so two
// runs over the same faults/TPs/config produce byte-identical output
// March tests.
//
// # Design notes
//
// The RW-value constraint and zero-gain-forbid rule are evaluated purely
// from the MarchTest under construction (last op's kind/value, and the
// previous step's chosen alphabet index) — neither rule needs simulator
// state. The RW-value constraint is the free function violatesRWValueRule,
// shared by every driver; the zero-gain-forbid rule is a forbidden
// alphabet index that each driver's loop carries from step to step. KLookaheadSynthDriver's depth-limited search mirrors a simple
// recursive best-first tree walk: a candidate with a strictly negative
// first-step gain is pruned outright, and the zero-gain-forbid rule
// propagates one level into the recursion exactly as it does at the top
// level.
package synth
