// Package marchtest defines the March-test data model — AddrOrder, Op,
// MarchElement, MarchTest — and the pattern grammar parser that turns a
// catalogue string into a MarchTest.
//
// # What & Why
//
// A MarchTest is an ordered sequence of elements, each sweeping every
// memory address in a declared direction while applying a fixed op
// sequence per address. This package owns the textual pattern grammar
// (`addr(op,op,...);addr(op,...)`) so both the catalogue loader and the
// synthesis drivers (see synth) can render and re-parse a test.
//
// # Algorithms & Complexity
//
// Parse is a single left-to-right scan: O(n) in the length of the pattern
// string. String (the inverse) is O(total ops).
//
// # Determinism & Stability
//
// Parse(String(m)) reproduces m's elements exactly; String(Parse(s))
// reproduces s modulo whitespace and letter case (address letters render
// lower-case, op letters upper-case). An element written with `b`/`B`
// round-trips as `b`, never silently promoted to `a`.
//
// # Errors
//
//	ErrEmptyPattern    - pattern string has no elements.
//	ErrMissingAddrChar - an element has no leading address-order character.
//	ErrBadAddrChar     - the leading character is not a/A/d/D/b/B.
//	ErrBadOpToken      - an op token does not match R0/R1/W0/W1/C(x)(y)(z).
//	ErrUnbalancedParen - an element's op list is missing its closing paren.
package marchtest
