package policy

import "github.com/marchatpg/marchatpg/marchtest"

// Deltas is the per-candidate-op coverage movement a synthesis driver
// reports to ElementPolicy, as produced by scorer.DiffScorer.
type Deltas struct {
	State  float64
	Sens   float64
	Detect float64
}

// IsZero reports whether all three deltas are exactly zero.
func (d Deltas) IsZero() bool {
	return d.State == 0 && d.Sens == 0 && d.Detect == 0
}

// DetectOnly reports whether only Detect moved.
func (d Deltas) DetectOnly() bool {
	return d.Detect > 0 && d.State == 0 && d.Sens == 0
}

// Config carries the two element-policy knobs drawn from the run's score
// weight configuration.
type Config struct {
	MaxOpsPerElement int
	DeferDetectOnly  bool
}

// ElementPolicy decides when the element under synthesis should close.
type ElementPolicy struct {
	cfg Config
}

// New binds an ElementPolicy to cfg.
func New(cfg Config) ElementPolicy { return ElementPolicy{cfg: cfg} }

// ShouldClose reports whether the current element should close given the
// deltas of the last candidate op accepted into it and that element's op
// count so far (including that last op).
//
// Complexity: O(1).
func (p ElementPolicy) ShouldClose(last Deltas, opsInElement int) bool {
	if last.IsZero() {
		return true
	}
	if p.cfg.DeferDetectOnly && last.DetectOnly() {
		return true
	}
	if opsInElement > p.cfg.MaxOpsPerElement {
		return true
	}
	return false
}

// NextOrder returns the AddrOrder the new element should open with, given
// the test under construction so far.
//
// Complexity: O(1).
func NextOrder(elements []marchtest.MarchElement, initial marchtest.AddrOrder) marchtest.AddrOrder {
	if len(elements) == 0 {
		return initial
	}
	// Flipping the immediate previous element's order satisfies both the
	// general rule and the same-order exception: when the two prior
	// elements already alternate, this continues the alternation; when
	// they coincide, this is the single flip away from that run.
	return flip(elements[len(elements)-1].Order)
}

func flip(o marchtest.AddrOrder) marchtest.AddrOrder {
	if o == marchtest.Down {
		return marchtest.Up
	}
	return marchtest.Down
}
