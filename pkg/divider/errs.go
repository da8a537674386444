package divider

import "errors"

// ErrInvalidGoals indicates design goals that violate the band, voltage or
// converter constraints.
var ErrInvalidGoals = errors.New("divider: invalid design goals")
