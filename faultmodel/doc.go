// Package faultmodel defines the Fault and FPExpr types and the catalogue
// loader that turns fault-catalogue JSON into normalised domain values.
//
// # What & Why
//
// A Fault names a category (detection requirement), a cell scope
// (how many cells participate and how they are arranged), and one or more
// FPExpr primitives in the stylised `<Sa ; Sv / F / R>` notation. This
// package only parses and validates; tpgen expands the result into
// Test Primitives.
//
// # Algorithms & Complexity
//
// LoadCatalogue and ParsePrimitive are single left-to-right scans per
// fault/primitive: O(n) in input length.
//
// # Determinism & Stability
//
// Parsing is side-effect free; two equal input strings always parse to
// equal FPExpr values.
//
// # Errors
//
//	ErrBadCategory    - category string is not one of the three recognised values.
//	ErrBadCellScope   - cell_scope string is not one of the four recognised values.
//	ErrBadPrimitive   - a fault_primitives entry does not match the <Sa;Sv/F/R> grammar.
//	ErrBadBit         - a bit token is not 0/1/-.
package faultmodel
