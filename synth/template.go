package synth

import (
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/marchatpg/marchatpg/coverage"
	"github.com/marchatpg/marchatpg/coverlut"
	"github.com/marchatpg/marchatpg/crossstate"
	"github.com/marchatpg/marchatpg/faultmodel"
	"github.com/marchatpg/marchatpg/marchtest"
	"github.com/marchatpg/marchatpg/tpgen"
)

// SlotKind names what one template slot holds.
type SlotKind int

const (
	// NoneSlot is an empty slot.
	NoneSlot SlotKind = iota
	// ReadSlot is a Read of an as-yet-unbound value.
	ReadSlot
	// WriteSlot is a Write of an as-yet-unbound value.
	WriteSlot
	// ComputeSlot is a ComputeAnd of as-yet-unbound operand polarities.
	ComputeSlot
)

// ElementTemplate is an AddrOrder plus up to three op-kind slots, with no
// values bound yet.
type ElementTemplate struct {
	Order marchtest.AddrOrder
	Slots [3]SlotKind
}

// Valid reports whether t has no "hole" (a None slot between two non-None
// slots) and at most one slot of each concrete kind.
func (t ElementTemplate) Valid() bool {
	seenNone := false
	for _, s := range t.Slots {
		if s == NoneSlot {
			seenNone = true
			continue
		}
		if seenNone {
			return false
		}
	}
	var nr, nw, nc int
	for _, s := range t.Slots {
		switch s {
		case ReadSlot:
			nr++
		case WriteSlot:
			nw++
		case ComputeSlot:
			nc++
		}
	}
	return nr <= 1 && nw <= 1 && nc <= 1
}

// Library builds the library of every valid ElementTemplate over Up and
// Down address orders — the brute-force product of the four slot kinds
// across three slots, filtered by Valid.
func Library() []ElementTemplate {
	kinds := [4]SlotKind{NoneSlot, ReadSlot, WriteSlot, ComputeSlot}
	var lib []ElementTemplate
	for _, ord := range []marchtest.AddrOrder{marchtest.Up, marchtest.Down} {
		for _, a := range kinds {
			for _, b := range kinds {
				for _, c := range kinds {
					t := ElementTemplate{Order: ord, Slots: [3]SlotKind{a, b, c}}
					if t.Valid() {
						lib = append(lib, t)
					}
				}
			}
		}
	}
	return lib
}

// Expand binds {0,1} to every Read/Write slot and all eight (T,M,B)
// polarities to every Compute slot, producing every concrete MarchElement
// the template admits. A template with no non-None slots expands to one
// bare element carrying only its order.
func Expand(t ElementTemplate) []marchtest.MarchElement {
	type spec struct {
		kind SlotKind
		bits int
	}
	var specs [3]spec
	totalBits := 0
	for i, s := range t.Slots {
		switch s {
		case ReadSlot, WriteSlot:
			specs[i] = spec{s, 1}
			totalBits++
		case ComputeSlot:
			specs[i] = spec{s, 3}
			totalBits += 3
		default:
			specs[i] = spec{s, 0}
		}
	}
	if totalBits == 0 {
		return []marchtest.MarchElement{{Order: t.Order}}
	}

	out := make([]marchtest.MarchElement, 0, 1<<totalBits)
	for mask := 0; mask < 1<<totalBits; mask++ {
		elem := marchtest.MarchElement{Order: t.Order}
		base := 0
		for _, sp := range specs {
			switch sp.kind {
			case ReadSlot:
				elem.Ops = append(elem.Ops, marchtest.ReadOp(bitVal(mask, base)))
				base++
			case WriteSlot:
				elem.Ops = append(elem.Ops, marchtest.WriteOp(bitVal(mask, base)))
				base++
			case ComputeSlot:
				elem.Ops = append(elem.Ops, marchtest.ComputeAndOp(bitVal(mask, base), bitVal(mask, base+1), bitVal(mask, base+2)))
				base += 3
			}
		}
		out = append(out, elem)
	}
	return out
}

func bitVal(mask, bit int) crossstate.Val {
	if (mask>>bit)&1 == 1 {
		return crossstate.One
	}
	return crossstate.Zero
}

// GreedyTemplateSearcher picks the single best-scoring template expansion
// at each of L element positions, one position at a time.
type GreedyTemplateSearcher struct {
	sim *coverage.FaultSimulator
	lib []ElementTemplate
}

// NewGreedyTemplateSearcher binds a GreedyTemplateSearcher to one fixed
// fault/TP universe and template library.
func NewGreedyTemplateSearcher(lut *coverlut.Table, faults []faultmodel.Fault, tps []tpgen.TP, lib []ElementTemplate) *GreedyTemplateSearcher {
	return &GreedyTemplateSearcher{sim: coverage.NewFaultSimulator(lut, faults, tps), lib: lib}
}

// Run greedily builds an L-element test, returning the prefix and its
// final simulation. If no candidate improves total coverage at some
// position the search stops early and returns the shorter prefix built so
// far.
func (s *GreedyTemplateSearcher) Run(l int) (marchtest.MarchTest, coverage.SimulationResult) {
	prefix := marchtest.MarchTest{Name: "greedy_template"}
	best := coverage.SimulationResult{}

	for pos := 0; pos < l; pos++ {
		bestScore := best.TotalCoverage
		var bestElem marchtest.MarchElement
		var bestSim coverage.SimulationResult
		found := false
		var mu sync.Mutex

		eg := new(errgroup.Group)
		eg.SetLimit(runtime.GOMAXPROCS(0))
		for _, t := range s.lib {
			for _, elem := range Expand(t) {
				elem := elem
				eg.Go(func() error {
					trial := withElement(prefix, elem)
					trialSim := s.sim.Simulate(trial)

					mu.Lock()
					defer mu.Unlock()
					if trialSim.TotalCoverage > bestScore {
						bestScore, bestElem, bestSim, found = trialSim.TotalCoverage, elem, trialSim, true
					}
					return nil
				})
			}
		}
		_ = eg.Wait() // trial simulations never return an error

		if !found {
			break
		}
		prefix = withElement(prefix, bestElem)
		best = bestSim
	}

	return prefix, best
}

// BeamTemplateSearcher keeps the top beamWidth prefixes at every level
// instead of committing to one greedy choice, returning up to topK final
// candidates sorted by descending total coverage.
type BeamTemplateSearcher struct {
	sim       *coverage.FaultSimulator
	lib       []ElementTemplate
	beamWidth int
}

// NewBeamTemplateSearcher binds a BeamTemplateSearcher to one fixed
// fault/TP universe, template library, and beam width.
func NewBeamTemplateSearcher(lut *coverlut.Table, faults []faultmodel.Fault, tps []tpgen.TP, lib []ElementTemplate, beamWidth int) *BeamTemplateSearcher {
	if beamWidth < 1 {
		beamWidth = 1
	}
	return &BeamTemplateSearcher{sim: coverage.NewFaultSimulator(lut, faults, tps), lib: lib, beamWidth: beamWidth}
}

// BeamCandidate is one finished beam-search path.
type BeamCandidate struct {
	MarchTest marchtest.MarchTest
	Result    coverage.SimulationResult
	Score     float64
}

// Run beam-searches an L-element test and returns up to topK candidates,
// sorted by descending total coverage.
func (s *BeamTemplateSearcher) Run(l, topK int) []BeamCandidate {
	beam := []BeamCandidate{{MarchTest: marchtest.MarchTest{Name: "beam_root"}}}

	for pos := 0; pos < l; pos++ {
		var next []BeamCandidate
		var mu sync.Mutex

		eg := new(errgroup.Group)
		eg.SetLimit(runtime.GOMAXPROCS(0))
		for _, node := range beam {
			node := node
			for _, t := range s.lib {
				for _, elem := range Expand(t) {
					if len(elem.Ops) == 0 {
						continue
					}
					elem := elem
					eg.Go(func() error {
						trial := withElement(node.MarchTest, elem)
						trialSim := s.sim.Simulate(trial)

						mu.Lock()
						next = append(next, BeamCandidate{MarchTest: trial, Result: trialSim, Score: trialSim.TotalCoverage})
						mu.Unlock()
						return nil
					})
				}
			}
		}
		_ = eg.Wait() // trial simulations never return an error
		if len(next) == 0 {
			break
		}
		sort.Slice(next, func(i, j int) bool { return next[i].Score > next[j].Score })
		if len(next) > s.beamWidth {
			next = next[:s.beamWidth]
		}
		beam = next
	}

	sort.Slice(beam, func(i, j int) bool { return beam[i].Score > beam[j].Score })
	if topK > 0 && len(beam) > topK {
		beam = beam[:topK]
	}
	return beam
}

func withElement(mt marchtest.MarchTest, elem marchtest.MarchElement) marchtest.MarchTest {
	out := marchtest.MarchTest{Name: mt.Name, Elements: append([]marchtest.MarchElement(nil), mt.Elements...)}
	if len(elem.Ops) > 0 {
		out.Elements = append(out.Elements, elem)
	}
	return out
}
