package coverlut

import "github.com/marchatpg/marchatpg/crossstate"

// digitsOf decodes a key into its six base-3 digits, most-significant
// first, matching the field order crossstate.Encode packs them in.
func digitsOf(key int) [6]int {
	var digits [6]int
	for i := 5; i >= 0; i-- {
		digits[i] = key % 3
		key /= 3
	}
	return digits
}

// Digits exposes digitsOf to other packages that need to reason about a
// key's individual fields (e.g. the scorer's masking accounting), without
// re-deriving the base-3 decomposition themselves.
func Digits(key int) [6]int { return digitsOf(key) }

// IsCompatible reports whether the TP state encoded by tpKey accepts the
// observed operation state encoded by opKey: digit by digit,
// tpDigit == 2 (X) or tpDigit == opDigit. X is a wildcard only on the TP
// side; a concrete TP digit never matches an X op digit, since op states
// are built from already-executed operations and never carry X.
//
// Complexity: O(1) — six digit comparisons.
func IsCompatible(tpKey, opKey int) bool {
	tpDigits := digitsOf(tpKey)
	opDigits := digitsOf(opKey)
	for i := 0; i < 6; i++ {
		if tpDigits[i] == 2 {
			continue
		}
		if tpDigits[i] != opDigits[i] {
			return false
		}
	}
	return true
}

// Build constructs the full 729×729 compatibility table.
//
// Stage 1: for every observed op key, scan every candidate TP key.
// Stage 2: record the TP key in the op key's bucket when compatible.
//
// Complexity: O(KeySpace²) time, O(KeySpace²) worst-case space (every TP
// key compatible with every op key happens only for the all-X TP, so real
// buckets are far smaller in practice).
func Build() *Table {
	t := &Table{}
	for opKey := 0; opKey < crossstate.KeySpace; opKey++ {
		bucket := make([]int, 0, 64)
		for tpKey := 0; tpKey < crossstate.KeySpace; tpKey++ {
			if IsCompatible(tpKey, opKey) {
				bucket = append(bucket, tpKey)
			}
		}
		t.compatibleTPKeys[opKey] = bucket
	}
	return t
}
