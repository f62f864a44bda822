// Package noise synthesizes frequency-domain realizations of zero-mean
// stationary Gaussian detector noise.
//
// A realization is "white" in the sense of carrying unit one-sided power
// spectral density per frequency bin; a detector's amplitude spectral density
// is multiplied on afterwards to colour it. The one-sided layout is DC bin
// first and, for even sample counts, Nyquist bin last, with both boundary
// bins zeroed as required for real-valued time-domain signals.
package noise

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-gw/series"
)

// TransferFunc maps a frequency in Hz to an instrument response factor
// applied to the raw Gaussian draw at that bin.
type TransferFunc func(freqHz float64) complex128

// Synthesizer draws frequency-domain noise realizations from its own seeded
// generator. Each synthesizer owns its generator, so reproducibility depends
// only on the seed and the sequence of Generate calls on this instance, not
// on process-wide randomness or the interleaving of other consumers.
type Synthesizer struct {
	seed     int64
	rng      *rand.Rand
	transfer TransferFunc
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithSeed sets the deterministic generator seed.
func WithSeed(seed int64) Option {
	return func(s *Synthesizer) {
		s.seed = seed
	}
}

// WithTransferFunction installs an instrument response applied per bin.
// The default is the identity response.
func WithTransferFunction(fn TransferFunc) Option {
	return func(s *Synthesizer) {
		if fn != nil {
			s.transfer = fn
		}
	}
}

// NewSynthesizer creates a configured noise synthesizer.
func NewSynthesizer(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		seed:     1,
		transfer: unitTransfer,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.rng = rand.New(rand.NewSource(s.seed))
	return s
}

// Seed returns the current seed.
func (s *Synthesizer) Seed() int64 { return s.seed }

// SetSeed reseeds the generator, restarting the realization sequence.
func (s *Synthesizer) SetSeed(seed int64) {
	s.seed = seed
	s.rng = rand.New(rand.NewSource(seed))
}

// Generate draws one noise realization for the given sampling frequency in
// Hz and duration in seconds.
//
// The sample count is round(duration * samplingFrequency); the product need
// not be integral. Each strictly-positive bin receives independent real and
// imaginary Gaussian draws with standard deviation 0.5*sqrt(duration), which
// yields unit one-sided PSD per bin. Whether a Nyquist bin exists depends on
// the parity of the sample count:
//
//   - even: a zero DC bin is prepended and a zero Nyquist bin appended, the
//     latter at samplingFrequency/2;
//   - odd: only the zero DC bin is prepended, since an odd-length real
//     signal has no Nyquist bin.
//
// Non-positive or non-finite inputs fail with [ErrInvalidParameter].
func (s *Synthesizer) Generate(samplingFrequency, duration float64) (*series.Frequency, error) {
	if !(samplingFrequency > 0) || math.IsInf(samplingFrequency, 0) {
		return nil, fmt.Errorf("%w: sampling frequency must be > 0: %v",
			ErrInvalidParameter, samplingFrequency)
	}
	if !(duration > 0) || math.IsInf(duration, 0) {
		return nil, fmt.Errorf("%w: duration must be > 0: %v", ErrInvalidParameter, duration)
	}

	n := int(math.Round(duration * samplingFrequency))
	if n < 1 {
		return nil, fmt.Errorf("%w: duration %v at %v Hz spans no samples",
			ErrInvalidParameter, duration, samplingFrequency)
	}

	positiveBins := (n - 1) / 2
	deltaF := 1 / duration
	sigma := 0.5 * math.Sqrt(1/deltaF)

	even := n%2 == 0
	bins := positiveBins + 1
	if even {
		bins = positiveBins + 2
	}

	values := make([]complex128, bins)
	frequencies := make([]float64, bins)
	for i := 1; i <= positiveBins; i++ {
		f := deltaF * float64(i)
		re := s.rng.NormFloat64() * sigma
		im := s.rng.NormFloat64() * sigma
		frequencies[i] = f
		values[i] = s.transfer(f) * complex(re, im)
	}
	if even {
		// DC stays zero from allocation; the Nyquist bin is zeroed too and
		// only its frequency is filled in.
		frequencies[bins-1] = samplingFrequency / 2
	}

	return series.NewFrequency(values, frequencies)
}

func unitTransfer(float64) complex128 { return 1 }
