// Package reportio renders a coverage.SimulationResult as a self-contained
// HTML report or a terminal-friendly Markdown summary.
//
// # What & Why
//
// Every simulation or synthesis run in this module produces a
// coverage.SimulationResult; reportio is the thin rendering boundary that
// turns that value into something a human reviews — one row per op-table
// position (its cross-state key, and which TP gids hit state/sens/detect
// at that position) and one row per fault's rolled-up detect coverage.
//
// # Algorithms & Complexity
//
// O(ops + faults): a single pass over the result's op table and cover
// lists, another over fault_detail_map. No intermediate buffering beyond
// what html/template's Execute needs.
//
// # Determinism & Stability
//
// Fault rows are sorted by ID before rendering so repeated runs over the
// same SimulationResult produce byte-identical output, matching the rest
// of the module's determinism guarantee.
//
// # Errors
//
// WriteHTML and WriteMarkdown return the underlying io/template error
// unwrapped — there is no reportio-specific failure mode beyond "the
// writer returned an error" or "the template failed to execute".
package reportio
