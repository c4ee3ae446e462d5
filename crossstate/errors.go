package crossstate

import "errors"

// Sentinel errors for crossstate operations.
var (
	// ErrKeyOutOfRange indicates a key passed to Decode falls outside [0, KeySpace).
	ErrKeyOutOfRange = errors.New("crossstate: key out of range")
)
