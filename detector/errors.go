package detector

import "errors"

// ErrNoStrainData reports an operation that needs strain data before any has
// been synthesized or loaded.
var ErrNoStrainData = errors.New("no strain data set")
