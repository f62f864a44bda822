package series

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ToFrequencyDomain converts real time-domain strain into its one-sided
// frequency-domain representation.
//
// The forward transform is scaled by 1/samplingFrequency so the output has
// strain-per-Hz units, matching the layout and scaling produced by the noise
// synthesizer: DC bin first, Nyquist bin last for even sample counts.
func ToFrequencyDomain(samples []float64, samplingFrequency float64) (*Frequency, error) {
	n := len(samples)
	if n == 0 {
		return nil, fmt.Errorf("transform input must not be empty")
	}
	if samplingFrequency <= 0 {
		return nil, fmt.Errorf("transform sampling frequency must be > 0: %v", samplingFrequency)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("series: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range samples {
		in[i] = complex(v, 0)
	}
	full := make([]complex128, n)
	if err := plan.Forward(full, in); err != nil {
		return nil, fmt.Errorf("series: forward FFT failed: %w", err)
	}

	bins := n/2 + 1
	if n%2 != 0 {
		bins = (n + 1) / 2
	}
	deltaF := samplingFrequency / float64(n)
	invFS := complex(1/samplingFrequency, 0)

	values := make([]complex128, bins)
	frequencies := make([]float64, bins)
	for k := range values {
		values[k] = full[k] * invFS
		frequencies[k] = deltaF * float64(k)
	}

	return NewFrequency(values, frequencies)
}

// ToTimeDomain converts a one-sided frequency series back into real
// time-domain strain, inverting the scaling applied by [ToFrequencyDomain].
//
// The presence of a Nyquist bin is detected from the last bin frequency, so
// both even- and odd-length source signals reconstruct correctly. Bins above
// DC are mirrored with conjugate symmetry before the inverse transform.
func ToTimeDomain(f *Frequency, samplingFrequency float64) ([]float64, error) {
	m := f.Len()
	if m < 2 {
		return nil, fmt.Errorf("transform requires at least 2 frequency bins: %d", m)
	}
	if samplingFrequency <= 0 {
		return nil, fmt.Errorf("transform sampling frequency must be > 0: %v", samplingFrequency)
	}

	deltaF := f.DeltaF()
	if deltaF <= 0 {
		return nil, fmt.Errorf("transform requires increasing frequency bins")
	}

	// A one-sided layout ending at the Nyquist frequency came from an even
	// sample count; an odd layout ends half a bin below it.
	n := 2*m - 1
	hasNyquist := math.Abs(f.Frequencies[m-1]-samplingFrequency/2) < deltaF/4
	if hasNyquist {
		n = 2 * (m - 1)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("series: failed to create FFT plan: %w", err)
	}

	full := make([]complex128, n)
	copy(full, f.Values)
	upper := m - 1
	if hasNyquist {
		upper = m - 2
	}
	for k := 1; k <= upper; k++ {
		full[n-k] = cmplx.Conj(f.Values[k])
	}

	out := make([]complex128, n)
	if err := plan.Inverse(out, full); err != nil {
		return nil, fmt.Errorf("series: inverse FFT failed: %w", err)
	}

	re := make([]float64, n)
	for i, v := range out {
		re[i] = real(v)
	}
	vecmath.ScaleBlock(re, re, samplingFrequency)
	return re, nil
}
