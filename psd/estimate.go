package psd

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-gw/series"
)

// EstimateSeries computes a one-sided Welch PSD from a time series.
func EstimateSeries(ts *series.Time, segmentLength int) (*Interpolated, error) {
	return Estimate(ts.Samples, ts.SampleRate(), segmentLength)
}

// Estimate computes a one-sided Welch PSD from uniformly sampled strain.
//
// The data is split into Hann-windowed segments of segmentLength samples with
// 50% overlap, each segment's periodogram is normalized to strain^2/Hz, and
// the periodograms are averaged per bin. The result is returned as an
// interpolated PSD defined on the segment frequency axis.
func Estimate(samples []float64, samplingFrequency float64, segmentLength int) (*Interpolated, error) {
	if samplingFrequency <= 0 {
		return nil, fmt.Errorf("psd estimate sampling frequency must be > 0: %v", samplingFrequency)
	}
	if segmentLength < 4 || segmentLength%2 != 0 {
		return nil, fmt.Errorf("psd estimate segment length must be even and >= 4: %d", segmentLength)
	}
	if len(samples) < segmentLength {
		return nil, fmt.Errorf("psd estimate requires at least one full segment: %d < %d",
			len(samples), segmentLength)
	}

	plan, err := algofft.NewPlan64(segmentLength)
	if err != nil {
		return nil, fmt.Errorf("psd: failed to create FFT plan: %w", err)
	}

	window := make([]float64, segmentLength)
	windowPower := 0.0
	for i := range window {
		window[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(segmentLength)))
		windowPower += window[i] * window[i]
	}

	bins := segmentLength/2 + 1
	hop := segmentLength / 2

	windowed := make([]float64, segmentLength)
	in := make([]complex128, segmentLength)
	out := make([]complex128, segmentLength)
	re := make([]float64, bins)
	im := make([]float64, bins)
	power := make([]float64, bins)

	var periodograms [][]float64
	for start := 0; start+segmentLength <= len(samples); start += hop {
		vecmath.MulBlock(windowed, samples[start:start+segmentLength], window)
		for i, v := range windowed {
			in[i] = complex(v, 0)
		}
		if err := plan.Forward(out, in); err != nil {
			return nil, fmt.Errorf("psd: segment FFT failed: %w", err)
		}

		for k := 0; k < bins; k++ {
			re[k] = real(out[k])
			im[k] = imag(out[k])
		}
		vecmath.Power(power, re, im)

		pg := make([]float64, bins)
		for k := range pg {
			// One-sided normalization: interior bins carry the power of
			// their negative-frequency mirrors, DC and Nyquist do not.
			factor := 2.0
			if k == 0 || k == bins-1 {
				factor = 1.0
			}
			pg[k] = factor * power[k] / (samplingFrequency * windowPower)
		}
		periodograms = append(periodograms, pg)
	}

	mean := make([]float64, bins)
	column := make([]float64, len(periodograms))
	for k := range mean {
		for s := range periodograms {
			column[s] = periodograms[s][k]
		}
		mean[k] = stat.Mean(column, nil)
	}

	freqHz := make([]float64, bins)
	deltaF := samplingFrequency / float64(segmentLength)
	for k := range freqHz {
		freqHz[k] = deltaF * float64(k)
	}

	return FromPoints(freqHz, mean)
}
