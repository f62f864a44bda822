package detector

import "github.com/cwbudde/algo-gw/series"

// List is an ordered collection of interferometers. Order is part of the
// reproducibility contract: multi-detector operations iterate in slice
// order, and per-detector seeds are derived from the base seed by position.
type List []*Interferometer

// SetStrainFromPSDs synthesizes coloured strain for every detector in
// order. Each detector's generator is reseeded with baseSeed plus its
// position, so the realization of one detector never depends on how many
// draws another consumed.
func (l List) SetStrainFromPSDs(samplingFrequency, duration float64, baseSeed int64) error {
	for i, ifo := range l {
		ifo.SetSeed(baseSeed + int64(i))
		if err := ifo.SetStrainFromPSD(samplingFrequency, duration); err != nil {
			return err
		}
	}
	return nil
}

// InjectSignal adds the same frequency-domain signal into every detector's
// observed strain.
func (l List) InjectSignal(signal *series.Frequency) error {
	for _, ifo := range l {
		if err := ifo.InjectSignal(signal); err != nil {
			return err
		}
	}
	return nil
}
