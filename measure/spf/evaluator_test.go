package spf

import (
	"errors"
	"math"
	"testing"

	"github.com/santiagohigareda/photoprotection/internal/testutil"
	"github.com/santiagohigareda/photoprotection/spectral"
	"github.com/santiagohigareda/photoprotection/spectral/integrate"
)

func mustEvaluator(t *testing.T, band spectral.Band, m integrate.Method) *Evaluator {
	t.Helper()
	e, err := NewEvaluator(band, m)
	if err != nil {
		t.Fatalf("NewEvaluator: %v", err)
	}
	return e
}

func TestEvaluateZeroCoefficientIsOne(t *testing.T) {
	s := spectral.Spectrum(testutil.DeterministicAbsorbance(7, 2, 111))
	for _, m := range []integrate.Method{integrate.Trapezoid, integrate.Simpson} {
		e := mustEvaluator(t, spectral.BandSPF, m)
		got, err := e.Evaluate(s, 0)
		if err != nil {
			t.Fatal(err)
		}
		if got != 1 {
			t.Fatalf("%v: ratio at C=0 = %v, want exactly 1", m, got)
		}
	}
}

func TestEvaluateUniformSpectrum(t *testing.T) {
	// A flat absorbance A scales the denominator by 10^(-A·C).
	tests := []struct {
		band  spectral.Band
		abs   float64
		coeff float64
	}{
		{spectral.BandSPF, 0.5, 1},
		{spectral.BandSPF, 1.0, 1.3},
		{spectral.BandUVA, 0.3, 1},
		{spectral.BandUVA, 0.8, 0.25},
	}
	for _, m := range []integrate.Method{integrate.Trapezoid, integrate.Simpson} {
		for _, tc := range tests {
			e := mustEvaluator(t, tc.band, m)
			got, err := e.Evaluate(testutil.Uniform(tc.abs, tc.band.Len()), tc.coeff)
			if err != nil {
				t.Fatal(err)
			}
			want := math.Pow(10, tc.abs*tc.coeff)
			testutil.RequireNearlyEqual(t, m.String()+" "+tc.band.String(), got, want, 1e-9)
		}
	}
}

func TestEvaluateNonDecreasingInCoefficient(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		s := spectral.Spectrum(testutil.DeterministicAbsorbance(seed, 1.5, 111))
		for _, m := range []integrate.Method{integrate.Trapezoid, integrate.Simpson} {
			e := mustEvaluator(t, spectral.BandSPF, m)
			ratios := make([]float64, 0, 41)
			for i := 0; i <= 40; i++ {
				r, err := e.Evaluate(s, float64(i)*0.05)
				if err != nil {
					t.Fatal(err)
				}
				ratios = append(ratios, r)
			}
			testutil.RequireFinite(t, ratios)
			testutil.RequireNonDecreasing(t, ratios)
		}
	}
}

func TestEvaluateShapeError(t *testing.T) {
	e := mustEvaluator(t, spectral.BandSPF, integrate.Trapezoid)
	if _, err := e.Evaluate(make(spectral.Spectrum, 81), 1); !errors.Is(err, spectral.ErrShape) {
		t.Fatalf("err = %v, want ErrShape", err)
	}
}

func TestNewEvaluatorErrors(t *testing.T) {
	if _, err := NewEvaluator(spectral.BandSPF, integrate.Method(5)); !errors.Is(err, integrate.ErrMethod) {
		t.Fatalf("err = %v, want ErrMethod", err)
	}
	if _, err := NewEvaluator(spectral.Band{Start: 250, End: 400}, integrate.Trapezoid); !errors.Is(err, spectral.ErrShape) {
		t.Fatalf("err = %v, want ErrShape", err)
	}
}
