package series

import "fmt"

// samplingTolerance bounds the allowed spread (max - min) of consecutive
// timestamp differences before a series counts as non-uniform.
const samplingTolerance = 1e-10

// InferSamplingFrequency derives the sampling frequency from timestamps.
//
// The timestamps must be evenly spaced: if the range of consecutive
// differences exceeds the tolerance the series is structurally unusable and
// [ErrNonUniformSampling] is returned. A two-element series trivially passes,
// since a single difference has zero spread; minimum-length policy belongs to
// the caller.
func InferSamplingFrequency(times []float64) (float64, error) {
	if len(times) < 2 {
		return 0, fmt.Errorf("sampling inference requires at least 2 timestamps: %d", len(times))
	}

	minDiff := times[1] - times[0]
	maxDiff := minDiff
	for i := 2; i < len(times); i++ {
		d := times[i] - times[i-1]
		if d < minDiff {
			minDiff = d
		}
		if d > maxDiff {
			maxDiff = d
		}
	}

	if maxDiff-minDiff > samplingTolerance {
		return 0, fmt.Errorf("%w: difference spread %v exceeds %v",
			ErrNonUniformSampling, maxDiff-minDiff, samplingTolerance)
	}

	return 1 / (times[1] - times[0]), nil
}
