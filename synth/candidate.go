package synth

import (
	"github.com/marchatpg/marchatpg/crossstate"
	"github.com/marchatpg/marchatpg/marchtest"
)

// Candidates is the fixed 12-op alphabet synthesis drivers search over:
// W0, W1, R0, R1, and C(T,M,B) for all eight operand polarities, always in
// this order.
func Candidates() []marchtest.Op {
	return []marchtest.Op{
		marchtest.WriteOp(crossstate.Zero),
		marchtest.WriteOp(crossstate.One),
		marchtest.ReadOp(crossstate.Zero),
		marchtest.ReadOp(crossstate.One),
		marchtest.ComputeAndOp(crossstate.Zero, crossstate.Zero, crossstate.Zero),
		marchtest.ComputeAndOp(crossstate.Zero, crossstate.Zero, crossstate.One),
		marchtest.ComputeAndOp(crossstate.Zero, crossstate.One, crossstate.Zero),
		marchtest.ComputeAndOp(crossstate.Zero, crossstate.One, crossstate.One),
		marchtest.ComputeAndOp(crossstate.One, crossstate.Zero, crossstate.Zero),
		marchtest.ComputeAndOp(crossstate.One, crossstate.Zero, crossstate.One),
		marchtest.ComputeAndOp(crossstate.One, crossstate.One, crossstate.Zero),
		marchtest.ComputeAndOp(crossstate.One, crossstate.One, crossstate.One),
	}
}

// violatesRWValueRule reports whether appending next after a MarchTest
// whose last op was a Read/Write of value v would be a trivially-failing
// Read of the opposite value: if the previous op left the cell at v, a
// Read expecting ¬v can never pass.
func violatesRWValueRule(mt marchtest.MarchTest, next marchtest.Op) bool {
	v, ok := lastRWValue(mt)
	if !ok || next.Kind != marchtest.Read {
		return false
	}
	return next.Val != v
}

func lastRWValue(mt marchtest.MarchTest) (crossstate.Val, bool) {
	if len(mt.Elements) == 0 {
		return crossstate.X, false
	}
	ops := mt.Elements[len(mt.Elements)-1].Ops
	if len(ops) == 0 {
		return crossstate.X, false
	}
	last := ops[len(ops)-1]
	if last.Kind != marchtest.Write && last.Kind != marchtest.Read {
		return crossstate.X, false
	}
	if last.Val != crossstate.Zero && last.Val != crossstate.One {
		return crossstate.X, false
	}
	return last.Val, true
}

// appendOp returns a copy of mt with next appended to its last element,
// opening a new element with order ord first if mt has none yet.
func appendOp(mt marchtest.MarchTest, ord marchtest.AddrOrder, next marchtest.Op) marchtest.MarchTest {
	out := marchtest.MarchTest{Name: mt.Name, Elements: append([]marchtest.MarchElement(nil), mt.Elements...)}
	if len(out.Elements) == 0 {
		out.Elements = append(out.Elements, marchtest.MarchElement{Order: ord})
	}
	last := len(out.Elements) - 1
	ops := append([]marchtest.Op(nil), out.Elements[last].Ops...)
	ops = append(ops, next)
	out.Elements[last].Ops = ops
	return out
}

// closeElement appends a new empty element with the given order.
func closeElement(mt marchtest.MarchTest, ord marchtest.AddrOrder) marchtest.MarchTest {
	out := marchtest.MarchTest{Name: mt.Name, Elements: append([]marchtest.MarchElement(nil), mt.Elements...)}
	out.Elements = append(out.Elements, marchtest.MarchElement{Order: ord})
	return out
}
