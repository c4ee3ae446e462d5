package synthconfig

import "errors"

// ErrInvalidOrder is returned when a Config's InitialOrder YAML field
// doesn't name one of "up", "down", "any".
var ErrInvalidOrder = errors.New("synthconfig: initial_order must be up, down, or any")
