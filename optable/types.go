package optable

import (
	"github.com/marchatpg/marchatpg/crossstate"
	"github.com/marchatpg/marchatpg/marchtest"
)

// OpContext is one row of a flattened operation table: an op together
// with its position in the original MarchTest and the CrossState that
// held immediately before it ran.
type OpContext struct {
	ElemIndex        int
	IndexWithinElem  int
	Order            marchtest.AddrOrder
	Op               marchtest.Op
	PreState         crossstate.CrossState
}

// ElementStart returns the global op-table index of the first op in the
// element containing index i. Callers pass an already-built table.
func ElementStart(table []OpContext, i int) int {
	elem := table[i].ElemIndex
	start := i
	for start > 0 && table[start-1].ElemIndex == elem {
		start--
	}
	return start
}

// NextElementStart returns the global op-table index of the first op of
// the next non-empty element after the element containing index i, or -1
// if none exists.
func NextElementStart(table []OpContext, i int) int {
	elem := table[i].ElemIndex
	for j := i + 1; j < len(table); j++ {
		if table[j].ElemIndex != elem {
			return j
		}
	}
	return -1
}
