// Package psd models one-sided detector noise power spectral densities and
// estimates them from strain data.
package psd

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// Provider maps a frequency in Hz to one-sided noise power spectral density
// in strain^2/Hz. Implementations must be defined over the full frequency
// axis a caller colours noise on.
type Provider interface {
	Value(freqHz float64) float64
}

// Interpolated is a PSD tabulated at discrete frequencies and evaluated by
// piecewise-linear interpolation. Queries outside the tabulated range clamp
// to the nearest endpoint value.
type Interpolated struct {
	pl         interp.PiecewiseLinear
	minF, maxF float64
}

// FromPoints builds an interpolated PSD from tabulated frequencies and
// values. Frequencies must be strictly increasing; values must be
// non-negative.
func FromPoints(freqHz, values []float64) (*Interpolated, error) {
	if len(freqHz) < 2 {
		return nil, fmt.Errorf("psd table requires at least 2 points: %d", len(freqHz))
	}
	if len(freqHz) != len(values) {
		return nil, fmt.Errorf("psd table length mismatch: %d != %d", len(freqHz), len(values))
	}
	for i := range freqHz {
		if i > 0 && !(freqHz[i] > freqHz[i-1]) {
			return nil, fmt.Errorf("psd frequencies must be strictly increasing at index %d", i)
		}
		if values[i] < 0 || math.IsNaN(values[i]) {
			return nil, fmt.Errorf("psd values must be >= 0 at index %d: %v", i, values[i])
		}
	}

	p := &Interpolated{minF: freqHz[0], maxF: freqHz[len(freqHz)-1]}
	if err := p.pl.Fit(freqHz, values); err != nil {
		return nil, fmt.Errorf("psd: interpolation fit failed: %w", err)
	}
	return p, nil
}

// Value returns the interpolated PSD at the given frequency.
func (p *Interpolated) Value(freqHz float64) float64 {
	if freqHz < p.minF {
		freqHz = p.minF
	}
	if freqHz > p.maxF {
		freqHz = p.maxF
	}
	return p.pl.Predict(freqHz)
}

// analyticInitialLIGO is the standard analytic fit to the Initial LIGO
// design noise curve.
type analyticInitialLIGO struct{}

// AnalyticInitialLIGO returns the analytic Initial LIGO design PSD,
//
//	S(f) = 9e-46 [ (4.49 f/150)^-56 + 0.16 (f/150)^-4.52 + 0.52 + 0.32 (f/150)^2 ]
//
// in strain^2/Hz. Non-positive frequencies map to +Inf, as the detector has
// no sensitivity there.
func AnalyticInitialLIGO() Provider { return analyticInitialLIGO{} }

func (analyticInitialLIGO) Value(freqHz float64) float64 {
	if freqHz <= 0 {
		return math.Inf(1)
	}
	x := freqHz / 150.0
	return 9e-46 * (math.Pow(4.49*x, -56) +
		0.16*math.Pow(x, -4.52) +
		0.52 +
		0.32*x*x)
}

// AmplitudeSpectralDensity samples sqrt(PSD) from the provider on the given
// frequency axis.
func AmplitudeSpectralDensity(p Provider, freqHz []float64) []float64 {
	out := make([]float64, len(freqHz))
	for i, f := range freqHz {
		out[i] = math.Sqrt(p.Value(f))
	}
	return out
}
