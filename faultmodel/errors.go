package faultmodel

import "errors"

// Sentinel errors for faultmodel catalogue parsing.
var (
	// ErrBadCategory indicates an unrecognised fault category string.
	ErrBadCategory = errors.New("faultmodel: unrecognised category")
	// ErrBadCellScope indicates an unrecognised cell_scope string.
	ErrBadCellScope = errors.New("faultmodel: unrecognised cell_scope")
	// ErrBadPrimitive indicates a fault_primitives entry did not match the <Sa;Sv/F/R> grammar.
	ErrBadPrimitive = errors.New("faultmodel: malformed fault primitive")
	// ErrBadBit indicates a bit token was not 0/1/-.
	ErrBadBit = errors.New("faultmodel: bit token must be 0/1/-")
)
