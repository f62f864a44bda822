// Package series provides the time-domain and frequency-domain series value
// types shared across the library, sampling-rate inference, and conversion
// between the two domains with gravitational-wave strain scaling.
package series

import (
	"fmt"
)

// Time is a uniformly sampled real-valued series.
//
// The series starts at T0 seconds and advances by Dt seconds per sample.
type Time struct {
	Samples []float64
	T0      float64
	Dt      float64
}

// NewTime creates a uniformly sampled time series.
func NewTime(samples []float64, t0, dt float64) (*Time, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("time series must not be empty")
	}
	if dt <= 0 {
		return nil, fmt.Errorf("time series step must be > 0: %v", dt)
	}
	return &Time{Samples: samples, T0: t0, Dt: dt}, nil
}

// Len returns the sample count.
func (t *Time) Len() int { return len(t.Samples) }

// SampleRate returns the sampling frequency in Hz.
func (t *Time) SampleRate() float64 { return 1 / t.Dt }

// Duration returns the covered span in seconds.
func (t *Time) Duration() float64 { return float64(len(t.Samples)) * t.Dt }

// Times returns the timestamp of every sample.
func (t *Time) Times() []float64 {
	out := make([]float64, len(t.Samples))
	for i := range out {
		out[i] = t.T0 + float64(i)*t.Dt
	}
	return out
}

// Frequency is a one-sided complex frequency series.
//
// Frequencies holds the non-negative bin frequencies in Hz, DC first and, for
// even-length source signals, the Nyquist bin last. Values and Frequencies
// always have equal length.
type Frequency struct {
	Values      []complex128
	Frequencies []float64
}

// NewFrequency creates a frequency series, enforcing the one-to-one pairing
// between values and frequency bins.
func NewFrequency(values []complex128, frequencies []float64) (*Frequency, error) {
	if len(values) != len(frequencies) {
		return nil, fmt.Errorf("frequency series length mismatch: %d values, %d bins",
			len(values), len(frequencies))
	}
	return &Frequency{Values: values, Frequencies: frequencies}, nil
}

// Len returns the bin count.
func (f *Frequency) Len() int { return len(f.Values) }

// DeltaF returns the bin spacing in Hz, or 0 for series shorter than 2 bins.
func (f *Frequency) DeltaF() float64 {
	if len(f.Frequencies) < 2 {
		return 0
	}
	return f.Frequencies[1] - f.Frequencies[0]
}
