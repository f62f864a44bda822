package noise

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestGenerateEvenSampleCount(t *testing.T) {
	// 256 Hz * 64 s = 16384 samples (even): DC and Nyquist bins are
	// prepended/appended, both zeroed.
	s := NewSynthesizer(WithSeed(150914))
	f, err := s.Generate(256, 64)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	wantBins := (16384-1)/2 + 2
	if f.Len() != wantBins {
		t.Fatalf("bins = %d, want %d", f.Len(), wantBins)
	}
	if f.Frequencies[0] != 0 {
		t.Fatalf("first bin = %v, want 0", f.Frequencies[0])
	}
	if f.Frequencies[f.Len()-1] != 128 {
		t.Fatalf("last bin = %v, want Nyquist 128", f.Frequencies[f.Len()-1])
	}
	if f.Values[0] != 0 {
		t.Fatalf("DC value = %v, want 0", f.Values[0])
	}
	if f.Values[f.Len()-1] != 0 {
		t.Fatalf("Nyquist value = %v, want 0", f.Values[f.Len()-1])
	}
	if math.Abs(f.DeltaF()-1.0/64) > 1e-15 {
		t.Fatalf("DeltaF = %v, want 1/64", f.DeltaF())
	}
}

func TestGenerateOddSampleCount(t *testing.T) {
	// 101 Hz * 1 s = 101 samples (odd): no Nyquist bin exists.
	s := NewSynthesizer(WithSeed(2))
	f, err := s.Generate(101, 1)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	wantBins := (101-1)/2 + 1
	if f.Len() != wantBins {
		t.Fatalf("bins = %d, want %d", f.Len(), wantBins)
	}
	if f.Frequencies[0] != 0 || f.Values[0] != 0 {
		t.Fatalf("DC bin = (%v, %v), want (0, 0)", f.Frequencies[0], f.Values[0])
	}
	last := f.Frequencies[f.Len()-1]
	if last != 50 {
		t.Fatalf("last bin = %v, want 50", last)
	}
	if last >= 101.0/2 {
		t.Fatalf("odd sample count must not carry a Nyquist bin, got %v", last)
	}
	if f.Values[f.Len()-1] == 0 {
		t.Fatal("last positive bin is zeroed, only DC should be")
	}
}

func TestGenerateNonIntegralProduct(t *testing.T) {
	// Rounding the sample count is the defined policy.
	s := NewSynthesizer()
	f, err := s.Generate(100.7, 1)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	// round(100.7) = 101 samples, odd layout.
	if f.Len() != 51 {
		t.Fatalf("bins = %d, want 51", f.Len())
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := NewSynthesizer(WithSeed(42)).Generate(128, 4)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	b, err := NewSynthesizer(WithSeed(42)).Generate(128, 4)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for i := range a.Values {
		if a.Values[i] != b.Values[i] {
			t.Fatalf("realization mismatch at bin %d: %v != %v", i, a.Values[i], b.Values[i])
		}
	}
}

func TestGenerateConsumesEntropy(t *testing.T) {
	s := NewSynthesizer(WithSeed(42))
	a, err := s.Generate(128, 4)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	b, err := s.Generate(128, 4)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	same := true
	for i := range a.Values {
		if a.Values[i] != b.Values[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("consecutive realizations are identical")
	}
}

func TestSetSeedRestartsSequence(t *testing.T) {
	s := NewSynthesizer(WithSeed(7))
	a, err := s.Generate(64, 2)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	s.SetSeed(7)
	b, err := s.Generate(64, 2)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for i := range a.Values {
		if a.Values[i] != b.Values[i] {
			t.Fatalf("reseeded realization differs at bin %d", i)
		}
	}
	if s.Seed() != 7 {
		t.Fatalf("Seed() = %d, want 7", s.Seed())
	}
}

func TestGenerateVariance(t *testing.T) {
	// Real and imaginary parts of interior bins carry variance 0.25/deltaF.
	const (
		fs       = 32.0
		duration = 4.0
		draws    = 5000
		bin      = 10
	)
	wantVar := 0.25 * duration // 0.25/deltaF

	s := NewSynthesizer(WithSeed(1234))
	re := make([]float64, draws)
	im := make([]float64, draws)
	for i := range re {
		f, err := s.Generate(fs, duration)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		re[i] = real(f.Values[bin])
		im[i] = imag(f.Values[bin])
	}

	if v := stat.Variance(re, nil); math.Abs(v-wantVar) > 0.15*wantVar {
		t.Fatalf("real-part variance = %v, want %v +- 15%%", v, wantVar)
	}
	if v := stat.Variance(im, nil); math.Abs(v-wantVar) > 0.15*wantVar {
		t.Fatalf("imag-part variance = %v, want %v +- 15%%", v, wantVar)
	}
	if m := stat.Mean(re, nil); math.Abs(m) > 0.1*math.Sqrt(wantVar) {
		t.Fatalf("real-part mean = %v, want 0", m)
	}
}

func TestGenerateTransferFunction(t *testing.T) {
	double := func(float64) complex128 { return 2 }

	a, err := NewSynthesizer(WithSeed(5)).Generate(64, 2)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	b, err := NewSynthesizer(WithSeed(5), WithTransferFunction(double)).Generate(64, 2)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for i := range a.Values {
		if b.Values[i] != 2*a.Values[i] {
			t.Fatalf("bin %d: transfer output %v, want %v", i, b.Values[i], 2*a.Values[i])
		}
	}
}

func TestGenerateInvalidParameters(t *testing.T) {
	s := NewSynthesizer()
	cases := []struct {
		name         string
		fs, duration float64
	}{
		{"zero rate", 0, 4},
		{"negative rate", -256, 4},
		{"zero duration", 256, 0},
		{"negative duration", 256, -4},
		{"nan rate", math.NaN(), 4},
		{"inf duration", 256, math.Inf(1)},
		{"vanishing product", 0.1, 0.1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.Generate(tc.fs, tc.duration); !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}
