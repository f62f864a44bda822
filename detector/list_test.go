package detector

import (
	"testing"

	"github.com/cwbudde/algo-gw/series"
)

func newTestList(t *testing.T) List {
	t.Helper()
	var l List
	for _, name := range []string{"H1", "L1", "V1"} {
		ifo, err := New(name, flatPSD(1), WithBand(10, 28))
		if err != nil {
			t.Fatalf("New(%s) error = %v", name, err)
		}
		l = append(l, ifo)
	}
	return l
}

func TestListSetStrainFromPSDsReproducible(t *testing.T) {
	a := newTestList(t)
	b := newTestList(t)

	if err := a.SetStrainFromPSDs(64, 4, 150914); err != nil {
		t.Fatalf("SetStrainFromPSDs() error = %v", err)
	}
	if err := b.SetStrainFromPSDs(64, 4, 150914); err != nil {
		t.Fatalf("SetStrainFromPSDs() error = %v", err)
	}

	for i := range a {
		for k := range a[i].Strain.Values {
			if a[i].Strain.Values[k] != b[i].Strain.Values[k] {
				t.Fatalf("%s bin %d differs between identical runs", a[i].Name, k)
			}
		}
	}
}

func TestListDetectorsDrawIndependently(t *testing.T) {
	l := newTestList(t)
	if err := l.SetStrainFromPSDs(64, 4, 1); err != nil {
		t.Fatalf("SetStrainFromPSDs() error = %v", err)
	}

	same := true
	for k := range l[0].Strain.Values {
		if l[0].Strain.Values[k] != l[1].Strain.Values[k] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("H1 and L1 drew identical realizations")
	}
}

func TestListInjectSignal(t *testing.T) {
	l := newTestList(t)
	if err := l.SetStrainFromPSDs(64, 4, 7); err != nil {
		t.Fatalf("SetStrainFromPSDs() error = %v", err)
	}

	before := make([][]complex128, len(l))
	for i := range l {
		before[i] = make([]complex128, l[i].Strain.Len())
		copy(before[i], l[i].Strain.Values)
	}

	values := make([]complex128, l[0].Strain.Len())
	values[40] = 1i
	frequencies := make([]float64, l[0].Strain.Len())
	copy(frequencies, l[0].Strain.Frequencies)
	signal, err := series.NewFrequency(values, frequencies)
	if err != nil {
		t.Fatalf("NewFrequency() error = %v", err)
	}

	if err := l.InjectSignal(signal); err != nil {
		t.Fatalf("InjectSignal() error = %v", err)
	}
	for i := range l {
		if l[i].Strain.Values[40] != before[i][40]+1i {
			t.Fatalf("%s: injection missing at bin 40", l[i].Name)
		}
	}
}
