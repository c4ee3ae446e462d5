package crossstate

// Val is a tri-valued bit: Zero, One, or X (unconstrained / don't-care).
//
// On the TP (stored) side X means "matches anything". On the operation
// (observed) side X never occurs for a concrete, already-executed op —
// compute operands there are always Zero or One.
type Val int8

const (
	// Zero is the concrete bit 0.
	Zero Val = iota
	// One is the concrete bit 1.
	One
	// X is unconstrained / don't-care.
	X
)

// String renders a Val as "0", "1" or "X".
func (v Val) String() string {
	switch v {
	case Zero:
		return "0"
	case One:
		return "1"
	default:
		return "X"
	}
}

// digit3 maps a Val onto its base-3 digit per the key codec: 0→0, 1→1, X→2.
func (v Val) digit3() int {
	switch v {
	case Zero:
		return 0
	case One:
		return 1
	default:
		return 2
	}
}

// valFromDigit3 inverts digit3.
func valFromDigit3(d int) Val {
	switch d {
	case 0:
		return Zero
	case 1:
		return One
	default:
		return X
	}
}

// valFromBit converts a concrete 0/1 int into a Val.
func valFromBit(b int) Val {
	if b == 0 {
		return Zero
	}
	return One
}

// Position names one of the five cells arranged around the addressed cell.
type Position int

const (
	// A0 is the far edge cell on the A1 side of the row.
	A0 Position = iota
	// A1 is the near row neighbour on one side of the addressed cell.
	A1
	// A2Cas is the cell under operation ("middle").
	A2Cas
	// A3 is the near row neighbour on the other side of the addressed cell.
	A3
	// A4 is the far edge cell on the A3 side of the row.
	A4
)

// numPositions is the fixed cell count of the cross lattice.
const numPositions = 5

// Cell holds the data and compute-accumulator value of one lattice position.
type Cell struct {
	D Val
	C Val
}

// CrossState is the five-cell D/C snapshot around one addressed cell.
//
// It is a plain value type: copy it freely, compare it with ==, never mutate
// one in place — callers derive a new CrossState instead (see
// WithData/WithCompute) so cross-shape invariants stay provably re-imposed.
type CrossState struct {
	Cells [numPositions]Cell
}

// AllX returns a CrossState with every D and C field set to X.
func AllX() CrossState {
	var cs CrossState
	for i := range cs.Cells {
		cs.Cells[i] = Cell{D: X, C: X}
	}
	return cs
}

// KeySpace is the size of the key codec's range: 3^6.
const KeySpace = 729

// keyFields returns the six key fields in the fixed order the key codec packs, per spec:
// (D[A1], D[A2Cas], D[A3], C[A0], C[A2Cas], C[A4]).
func (cs CrossState) keyFields() [6]Val {
	return [6]Val{
		cs.Cells[A1].D,
		cs.Cells[A2Cas].D,
		cs.Cells[A3].D,
		cs.Cells[A0].C,
		cs.Cells[A2Cas].C,
		cs.Cells[A4].C,
	}
}
