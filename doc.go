// Package marchatpg is an Automatic Test Pattern Generation and
// fault-coverage simulator for memory March tests.
//
//	Given a fault catalogue and a March test, marchatpg:
//
//	  • Parses faults and March tests from their JSON catalogue forms
//	  • Expands each fault primitive into Test Primitives
//	  • Flattens a March test into a linear op table, tracking the
//	    tri-valued CrossState at every op
//	  • Simulates state-cover, sensitization and detection coverage
//	  • Scores and synthesizes new March tests toward a target coverage
//	  • Reports per-fault and per-op coverage as HTML or Markdown
//
// The pipeline is organized into one package per concern:
// crossstate (C1), faultmodel (C2), marchtest (C3), optable (C4),
// coverage (C5/C6), scorer (C7), policy (C8) and synth (C9), with
// coverlut and tpgen as shared support packages, synthconfig for run
// configuration, reportio for output rendering, and cmd/marchatpg as
// the command-line entry point.
package marchatpg
