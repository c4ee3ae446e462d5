// Package synthconfig loads and defaults the score-weight configuration
// shared by the scorer, element policy, and synthesis drivers.
//
// # What & Why
//
// Every tunable knob named in the run configuration — the five score
// weights, the two synthesis budgets, the beam width, the initial address
// order, the coverage target and the defer-detect-only flag — lives on one
// Config struct so a single YAML document configures the whole synthesis
// pipeline.
//
// # Algorithms & Complexity
//
// Default is O(1). Load parses one small YAML document with
// gopkg.in/yaml.v3 and is O(n) in document size.
//
// # Determinism & Stability
//
// Load never mutates its input; Default always returns the same struct.
package synthconfig
