// Package scorer turns one SimulationResult (see coverage) into per-op
// outcomes and into incremental synthesis gain.
//
// # What & Why
//
// OpScorer assigns a single op-table position a {state_cov, sens_cov,
// d_cov, part_M_num, full_M_num, total_score} outcome, the unit the
// element policy and report writers consume. DiffScorer compares two
// whole-run results (before/after appending one candidate op) and scores
// the coverage gain the synthesis drivers search over.
//
// # Algorithms & Complexity
//
// OpScorer.Score is O(|state_cover[i]|) — one masking check per TP that
// state-matched at i, each check O(1) via coverlut digit comparison.
// DiffScorer.Score is O(1), three scalar subtractions and a weighted sum.
//
// # Determinism & Stability
//
// Both scorers are pure functions of their inputs and a Weights value;
// identical SimulationResults and weights always reproduce identical
// outcomes.
//
// # Design notes
//
// Weights carries five fields named after the run's configuration knobs:
// AlphaState, BetaSens, GammaDetect, LambdaMask, MuCost. DiffScorer's use
// is unambiguous — Δstate/Δsens/Δdetect/cost map to the identically-named
// weights. OpScorer's total_score formula in the distilled design names
// four terms (state_cov, D_cov, part_M_num, full_M_num) against subscripts
// that don't line up letter-for-letter with the configuration's own field
// names; rather than invent a sixth weight, this package reuses the same
// four-weight tuple by position — AlphaState on state_cov, BetaSens on
// D_cov, GammaDetect on part_M_num, LambdaMask (negated) on full_M_num —
// so one Weights value configures both scorers and every CLI weight flag
// has exactly one meaning throughout a run.
package scorer
