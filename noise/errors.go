package noise

import "errors"

// ErrInvalidParameter reports a non-positive or non-finite synthesis
// parameter that would otherwise produce degenerate arrays.
var ErrInvalidParameter = errors.New("invalid synthesis parameter")
