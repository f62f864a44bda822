package detector

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-gw/gpstime"
	"github.com/cwbudde/algo-gw/noise"
	"github.com/cwbudde/algo-gw/psd"
	"github.com/cwbudde/algo-gw/series"
	"github.com/cwbudde/algo-gw/sky"
)

// axisTolerance bounds the allowed per-bin deviation between an injected
// signal's frequency axis and the detector's own.
const axisTolerance = 1e-10

// Interferometer holds one detector's simulated strain data.
type Interferometer struct {
	Name string

	// MinimumFrequency and MaximumFrequency bound the analysis band in Hz.
	MinimumFrequency float64
	MaximumFrequency float64

	// PSD supplies the detector's one-sided noise power spectral density.
	PSD psd.Provider

	// Strain is the observed frequency-domain strain, nil until
	// [Interferometer.SetStrainFromPSD] establishes it.
	Strain *series.Frequency

	synth *noise.Synthesizer
}

// Option configures an Interferometer.
type Option func(*Interferometer)

// WithBand sets the analysis frequency band in Hz.
func WithBand(minimumHz, maximumHz float64) Option {
	return func(ifo *Interferometer) {
		if minimumHz >= 0 && maximumHz > minimumHz {
			ifo.MinimumFrequency = minimumHz
			ifo.MaximumFrequency = maximumHz
		}
	}
}

// WithSeed sets the deterministic seed of the detector's noise generator.
func WithSeed(seed int64) Option {
	return func(ifo *Interferometer) {
		ifo.synth.SetSeed(seed)
	}
}

// WithTransferFunction installs an instrument response on the detector's
// noise generator.
func WithTransferFunction(fn noise.TransferFunc) Option {
	return func(ifo *Interferometer) {
		if fn != nil {
			ifo.synth = noise.NewSynthesizer(
				noise.WithSeed(ifo.synth.Seed()),
				noise.WithTransferFunction(fn),
			)
		}
	}
}

// New creates an interferometer with the given noise PSD. The default
// analysis band is 20 Hz to 2048 Hz.
func New(name string, p psd.Provider, opts ...Option) (*Interferometer, error) {
	if name == "" {
		return nil, fmt.Errorf("interferometer name must not be empty")
	}
	if p == nil {
		return nil, fmt.Errorf("interferometer %s requires a PSD provider", name)
	}
	ifo := &Interferometer{
		Name:             name,
		MinimumFrequency: 20,
		MaximumFrequency: 2048,
		PSD:              p,
		synth:            noise.NewSynthesizer(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(ifo)
		}
	}
	return ifo, nil
}

// SetSeed reseeds the detector's noise generator.
func (ifo *Interferometer) SetSeed(seed int64) { ifo.synth.SetSeed(seed) }

// SetStrainFromPSD synthesizes one noise realization for the given sampling
// frequency in Hz and duration in seconds, colours it by the detector's
// amplitude spectral density, and installs it as the observed strain. The
// realization's frequency axis becomes the detector's axis.
func (ifo *Interferometer) SetStrainFromPSD(samplingFrequency, duration float64) error {
	white, err := ifo.synth.Generate(samplingFrequency, duration)
	if err != nil {
		return fmt.Errorf("detector %s: noise synthesis failed: %w", ifo.Name, err)
	}

	asd := psd.AmplitudeSpectralDensity(ifo.PSD, white.Frequencies)
	// Bins where the PSD is undefined (DC on analytic curves) coincide with
	// the zeroed boundary bins; zero their gain rather than propagate NaN.
	for i, a := range asd {
		if math.IsInf(a, 0) || math.IsNaN(a) {
			asd[i] = 0
		}
	}

	re := make([]float64, white.Len())
	im := make([]float64, white.Len())
	for i, v := range white.Values {
		re[i] = real(v)
		im[i] = imag(v)
	}
	vecmath.MulBlockInPlace(re, asd)
	vecmath.MulBlockInPlace(im, asd)

	coloured := make([]complex128, white.Len())
	for i := range coloured {
		coloured[i] = complex(re[i], im[i])
	}

	strain, err := series.NewFrequency(coloured, white.Frequencies)
	if err != nil {
		return fmt.Errorf("detector %s: %w", ifo.Name, err)
	}
	ifo.Strain = strain
	return nil
}

// InjectSignal adds a frequency-domain signal into the observed strain.
// The signal must live on the detector's own frequency axis, bin for bin;
// any deviation fails with [series.ErrAxisMismatch].
func (ifo *Interferometer) InjectSignal(signal *series.Frequency) error {
	if ifo.Strain == nil {
		return fmt.Errorf("detector %s: %w", ifo.Name, ErrNoStrainData)
	}
	if signal.Len() != ifo.Strain.Len() {
		return fmt.Errorf("detector %s: %w: %d bins, detector has %d",
			ifo.Name, series.ErrAxisMismatch, signal.Len(), ifo.Strain.Len())
	}
	for i, f := range signal.Frequencies {
		if math.Abs(f-ifo.Strain.Frequencies[i]) > axisTolerance {
			return fmt.Errorf("detector %s: %w: bin %d at %v Hz, detector at %v Hz",
				ifo.Name, series.ErrAxisMismatch, i, f, ifo.Strain.Frequencies[i])
		}
	}

	for i, v := range signal.Values {
		ifo.Strain.Values[i] += v
	}
	return nil
}

// BandMask reports, per bin of the detector's axis, whether the bin lies
// inside the analysis band.
func (ifo *Interferometer) BandMask() ([]bool, error) {
	if ifo.Strain == nil {
		return nil, fmt.Errorf("detector %s: %w", ifo.Name, ErrNoStrainData)
	}
	mask := make([]bool, ifo.Strain.Len())
	for i, f := range ifo.Strain.Frequencies {
		mask[i] = f >= ifo.MinimumFrequency && f <= ifo.MaximumFrequency
	}
	return mask, nil
}

// BandStrain returns a copy of the observed strain restricted to the
// analysis band.
func (ifo *Interferometer) BandStrain() (*series.Frequency, error) {
	mask, err := ifo.BandMask()
	if err != nil {
		return nil, err
	}
	var values []complex128
	var frequencies []float64
	for i, in := range mask {
		if in {
			values = append(values, ifo.Strain.Values[i])
			frequencies = append(frequencies, ifo.Strain.Frequencies[i])
		}
	}
	return series.NewFrequency(values, frequencies)
}

// WhitenedStrain divides the observed strain by the detector's amplitude
// spectral density over the analysis band. Bins outside the band are zeroed.
func (ifo *Interferometer) WhitenedStrain() (*series.Frequency, error) {
	mask, err := ifo.BandMask()
	if err != nil {
		return nil, err
	}
	asd := psd.AmplitudeSpectralDensity(ifo.PSD, ifo.Strain.Frequencies)
	values := make([]complex128, ifo.Strain.Len())
	for i, in := range mask {
		if !in || asd[i] == 0 || math.IsInf(asd[i], 0) || math.IsNaN(asd[i]) {
			continue
		}
		values[i] = ifo.Strain.Values[i] / complex(asd[i], 0)
	}
	frequencies := make([]float64, ifo.Strain.Len())
	copy(frequencies, ifo.Strain.Frequencies)
	return series.NewFrequency(values, frequencies)
}

// DetectorFrameAngles converts a sky position and GPS arrival time into the
// zenith and azimuth angles feeding the detector's antenna pattern.
func (ifo *Interferometer) DetectorFrameAngles(pos sky.Position, gpsSeconds float64) (theta, phi float64, err error) {
	gmst, err := gpstime.GMSTFromGPS(gpsSeconds)
	if err != nil {
		return 0, 0, fmt.Errorf("detector %s: %w", ifo.Name, err)
	}
	theta, phi = pos.DetectorAngles(gmst)
	return theta, phi, nil
}
