package marchtest

import "errors"

// Sentinel errors for marchtest pattern parsing.
var (
	// ErrEmptyPattern indicates a pattern string contained no elements.
	ErrEmptyPattern = errors.New("marchtest: pattern has no elements")
	// ErrMissingAddrChar indicates an element is missing its leading address-order character.
	ErrMissingAddrChar = errors.New("marchtest: element missing address-order character")
	// ErrBadAddrChar indicates the leading character is not one of a/A/d/D/b/B.
	ErrBadAddrChar = errors.New("marchtest: address-order character must be a/A/d/D/b/B")
	// ErrBadOpToken indicates an op token did not match R0/R1/W0/W1/C(x)(y)(z).
	ErrBadOpToken = errors.New("marchtest: malformed op token")
	// ErrUnbalancedParen indicates an element's op list is missing its closing parenthesis.
	ErrUnbalancedParen = errors.New("marchtest: unbalanced parenthesis in element")
)
