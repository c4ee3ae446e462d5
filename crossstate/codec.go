package crossstate

import "fmt"

// Encode packs the six key fields of cs into a base-3 integer in
// [0, KeySpace), digit value 0→0, 1→1, X→2, in the fixed field order
// (D[A1], D[A2Cas], D[A3], C[A0], C[A2Cas], C[A4]).
//
// Complexity: O(1).
func Encode(cs CrossState) int {
	fields := cs.keyFields()
	key := 0
	for _, f := range fields {
		key = key*3 + f.digit3()
	}
	return key
}

// Decode recovers a CrossState from a key produced by Encode. Cells and
// fields outside the six-field key are set to X, since the key alone cannot
// determine them.
//
// Complexity: O(1).
func Decode(key int) (CrossState, error) {
	if key < 0 || key >= KeySpace {
		return CrossState{}, fmt.Errorf("%w: %d", ErrKeyOutOfRange, key)
	}

	var digits [6]int
	for i := 5; i >= 0; i-- {
		digits[i] = key % 3
		key /= 3
	}

	cs := AllX()
	cs.Cells[A1].D = valFromDigit3(digits[0])
	cs.Cells[A2Cas].D = valFromDigit3(digits[1])
	cs.Cells[A3].D = valFromDigit3(digits[2])
	cs.Cells[A0].C = valFromDigit3(digits[3])
	cs.Cells[A2Cas].C = valFromDigit3(digits[4])
	cs.Cells[A4].C = valFromDigit3(digits[5])
	return cs, nil
}

// ApplyInvariants re-imposes the cross-shape invariants on cs and returns
// the result: the first concrete D found between A0/A1 propagates to both,
// the first concrete D found between A3/A4 propagates to both, and the
// first concrete C found among A1/A2Cas/A3 propagates to all three. Both
// the TP generator (tpgen) and the op-table builder (optable) call this
// after constructing or mutating a CrossState so stored/observed states are
// always expressed in canonical form.
//
// Complexity: O(1).
func ApplyInvariants(cs CrossState) CrossState {
	out := cs

	leftD := out.Cells[A0].D
	if leftD == X {
		leftD = out.Cells[A1].D
	}
	if leftD != X {
		out.Cells[A0].D = leftD
		out.Cells[A1].D = leftD
	}

	rightD := out.Cells[A3].D
	if rightD == X {
		rightD = out.Cells[A4].D
	}
	if rightD != X {
		out.Cells[A3].D = rightD
		out.Cells[A4].D = rightD
	}

	rowC := out.Cells[A1].C
	if rowC == X {
		rowC = out.Cells[A2Cas].C
	}
	if rowC == X {
		rowC = out.Cells[A3].C
	}
	if rowC != X {
		out.Cells[A1].C = rowC
		out.Cells[A2Cas].C = rowC
		out.Cells[A3].C = rowC
	}

	return out
}

// WithData returns a copy of cs with the D field at pos set to v, cross
// invariants re-applied.
func WithData(cs CrossState, pos Position, v Val) CrossState {
	out := cs
	out.Cells[pos].D = v
	return ApplyInvariants(out)
}

// WithCompute returns a copy of cs with C[A0], C[A2Cas], C[A4] set from a
// ComputeAnd's (T, M, B) operand polarities, cross invariants re-applied.
func WithCompute(cs CrossState, t, m, b Val) CrossState {
	out := cs
	out.Cells[A0].C = t
	out.Cells[A2Cas].C = m
	out.Cells[A4].C = b
	return ApplyInvariants(out)
}
