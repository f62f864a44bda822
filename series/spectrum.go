package series

import "github.com/cwbudde/algo-vecmath"

// Magnitude returns |X[k]| for each bin.
func (f *Frequency) Magnitude() []float64 {
	re, im := f.parts()
	out := make([]float64, f.Len())
	vecmath.Magnitude(out, re, im)
	return out
}

// Power returns |X[k]|^2 for each bin.
func (f *Frequency) Power() []float64 {
	re, im := f.parts()
	out := make([]float64, f.Len())
	vecmath.Power(out, re, im)
	return out
}

func (f *Frequency) parts() (re, im []float64) {
	re = make([]float64, len(f.Values))
	im = make([]float64, len(f.Values))
	for i, v := range f.Values {
		re[i] = real(v)
		im[i] = imag(v)
	}
	return re, im
}
