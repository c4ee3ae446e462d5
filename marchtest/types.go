package marchtest

import "github.com/marchatpg/marchatpg/crossstate"

// AddrOrder is the address sweep direction of a March element.
type AddrOrder int

const (
	// Up sweeps addresses in ascending order.
	Up AddrOrder = iota
	// Down sweeps addresses in descending order.
	Down
	// Any permits either direction.
	Any
)

// String renders an AddrOrder as the lower-case grammar letter it parses from.
func (o AddrOrder) String() string {
	switch o {
	case Up:
		return "a"
	case Down:
		return "d"
	default:
		return "b"
	}
}

// OpKind distinguishes the three Op variants.
type OpKind int

const (
	// Write is a data write of a single bit.
	Write OpKind = iota
	// Read is a data read compared against an expected bit.
	Read
	// ComputeAnd is a three-input bit-serial AND over (T, M, B) operand polarities.
	ComputeAnd
)

// Op is a single March-element operation: a tagged variant over Write,
// Read, and ComputeAnd. Only the fields relevant to Kind are meaningful;
// Val is used by Write/Read, T/M/B by ComputeAnd.
type Op struct {
	Kind OpKind
	Val  crossstate.Val // Write/Read value
	T, M, B crossstate.Val // ComputeAnd operand polarities
}

// WriteOp constructs a Write op with concrete value v (Zero or One).
func WriteOp(v crossstate.Val) Op { return Op{Kind: Write, Val: v} }

// ReadOp constructs a Read op with expected value v (Zero or One).
func ReadOp(v crossstate.Val) Op { return Op{Kind: Read, Val: v} }

// ComputeAndOp constructs a ComputeAnd op with the given operand polarities.
func ComputeAndOp(t, m, b crossstate.Val) Op { return Op{Kind: ComputeAnd, T: t, M: m, B: b} }

// MarchElement is one address sweep: a declared order plus the ordered
// sequence of ops applied at each visited address.
type MarchElement struct {
	Order AddrOrder
	Ops   []Op
}

// MarchTest is a named, ordered sequence of MarchElements.
type MarchTest struct {
	Name     string
	Elements []MarchElement
}

// RawMarchTest is the catalogue wire shape: a name and an unparsed pattern
// string, as loaded from JSON before Parse turns it into a MarchTest.
type RawMarchTest struct {
	Name    string `json:"March_test"`
	Pattern string `json:"Pattern"`
}
