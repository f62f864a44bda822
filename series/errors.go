package series

import "errors"

var (
	// ErrNonUniformSampling reports timestamps whose consecutive differences
	// spread beyond the accepted tolerance. Data in this state cannot feed
	// any FFT-based processing and the condition is not retryable.
	ErrNonUniformSampling = errors.New("time series is not evenly sampled")

	// ErrAxisMismatch reports two frequency series whose bin layouts differ.
	ErrAxisMismatch = errors.New("frequency axis mismatch")
)
