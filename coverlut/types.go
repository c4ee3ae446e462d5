package coverlut

import "github.com/marchatpg/marchatpg/crossstate"

// Table is the precomputed compatibility lookup: for every observed
// operation key, the sorted list of TP keys whose state that operation
// satisfies. Build it once per process; it never changes afterward.
type Table struct {
	// compatibleTPKeys[opKey] holds every tpKey such that IsCompatible(tpKey, opKey).
	compatibleTPKeys [crossstate.KeySpace][]int
}

// CompatibleTPKeys returns the TP keys compatible with opKey. The returned
// slice is owned by the Table and must not be mutated by the caller.
func (t *Table) CompatibleTPKeys(opKey int) []int {
	return t.compatibleTPKeys[opKey]
}
