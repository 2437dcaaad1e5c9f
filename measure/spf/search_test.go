package spf

import (
	"errors"
	"math"
	"testing"

	"github.com/santiagohigareda/photoprotection/internal/testutil"
	"github.com/santiagohigareda/photoprotection/spectral"
	"github.com/santiagohigareda/photoprotection/spectral/integrate"
)

// shoulderSpectrum has a UVB peak on top of a 0.2 floor, so every target is
// reachable for a large enough coefficient.
func shoulderSpectrum() spectral.Spectrum {
	s := testutil.Gaussian(1.0, 20, 15, 111)
	for i := range s {
		s[i] += 0.2
	}
	return s
}

func TestSearchUniformCrossesOnGrid(t *testing.T) {
	e := mustEvaluator(t, spectral.BandSPF, integrate.Trapezoid)
	p := SearchParams{Step: 1e-3, MaxIterations: 10000}

	// 10^(0.5·C) reaches the target between grid points 1.234 and 1.235.
	target := math.Pow(10, 0.5*1.2345)
	r, err := e.SearchDetailed(testutil.Uniform(0.5, 111), target, p)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireNearlyEqual(t, "coefficient", r.Coefficient, 1.235, 1e-9)
	if r.Iterations != 1236 {
		t.Fatalf("iterations = %d, want 1236", r.Iterations)
	}
	if r.Saturated {
		t.Fatal("search must not saturate")
	}
}

func TestSearchFirstCrossing(t *testing.T) {
	s := shoulderSpectrum()
	for _, m := range []integrate.Method{integrate.Trapezoid, integrate.Simpson} {
		e := mustEvaluator(t, spectral.BandSPF, m)
		p := SearchParams{Step: 1e-3, MaxIterations: 10000}
		for _, target := range []float64{2, 15, 40} {
			c, err := e.Search(s, target, p)
			if err != nil {
				t.Fatal(err)
			}
			at, _ := e.Evaluate(s, c)
			before, _ := e.Evaluate(s, c-p.Step)
			if at < target {
				t.Fatalf("%v target %v: ratio(C=%v) = %v < target", m, target, c, at)
			}
			if before >= target {
				t.Fatalf("%v target %v: ratio(C-step) = %v already >= target", m, target, before)
			}
		}
	}
}

func TestSearchDegenerateTargetReturnsZero(t *testing.T) {
	e := mustEvaluator(t, spectral.BandSPF, integrate.Trapezoid)
	s := shoulderSpectrum()
	p := DefaultSearchParams()

	initial, err := e.Evaluate(s, 1)
	if err != nil {
		t.Fatal(err)
	}
	r, err := e.SearchDetailed(s, initial, p)
	if err != nil {
		t.Fatal(err)
	}
	if r.Coefficient != 0 || r.Iterations != 0 {
		t.Fatalf("got C=%v after %d iterations, want 0 and 0", r.Coefficient, r.Iterations)
	}

	unattenuated, err := e.Evaluate(s, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, target := range []float64{unattenuated, 0.5, -3} {
		r, err := e.SearchDetailed(s, target, p)
		if err != nil {
			t.Fatal(err)
		}
		if r.Coefficient != 0 || r.Iterations != 0 || r.Saturated {
			t.Fatalf("target %v: got %+v, want C=0 after 0 iterations", target, r)
		}
	}
}

func TestSearchZeroAbsorbance(t *testing.T) {
	e := mustEvaluator(t, spectral.BandSPF, integrate.Trapezoid)
	c, err := e.Search(testutil.Zeros(111), 1, DefaultSearchParams())
	if err != nil {
		t.Fatal(err)
	}
	if c != 0 {
		t.Fatalf("C = %v, want 0", c)
	}
}

func TestSearchSaturates(t *testing.T) {
	e := mustEvaluator(t, spectral.BandSPF, integrate.Trapezoid)
	p := SearchParams{Step: 1e-4, MaxIterations: 100}

	r, err := e.SearchDetailed(shoulderSpectrum(), 1e6, p)
	if err != nil {
		t.Fatalf("saturation must not be an error: %v", err)
	}
	if !r.Saturated {
		t.Fatal("expected saturation")
	}
	if r.Coefficient != float64(p.MaxIterations)*p.Step {
		t.Fatalf("C = %v, want %v", r.Coefficient, float64(p.MaxIterations)*p.Step)
	}
	if r.Iterations != p.MaxIterations {
		t.Fatalf("iterations = %d, want %d", r.Iterations, p.MaxIterations)
	}
}

func TestSearchUnreachableOnZeroAbsorbance(t *testing.T) {
	// Without absorbance the ratio stays at 1 for every C.
	e := mustEvaluator(t, spectral.BandSPF, integrate.Simpson)
	p := SearchParams{Step: 1e-2, MaxIterations: 50}
	c, err := e.Search(testutil.Zeros(111), 30, p)
	if err != nil {
		t.Fatal(err)
	}
	if c != p.Limit() {
		t.Fatalf("C = %v, want %v", c, p.Limit())
	}
}

func TestSearchConvergesAsStepShrinks(t *testing.T) {
	e := mustEvaluator(t, spectral.BandSPF, integrate.Trapezoid)
	s := shoulderSpectrum()
	const target = 15.0

	gap := func(step float64) float64 {
		c, err := e.Search(s, target, SearchParams{Step: step, MaxIterations: 100000})
		if err != nil {
			t.Fatal(err)
		}
		r, _ := e.Evaluate(s, c)
		return r - target
	}

	coarse, fine := gap(1e-2), gap(1e-4)
	if coarse < 0 || fine < 0 {
		t.Fatalf("ratios must not undershoot: coarse %v, fine %v", coarse, fine)
	}
	if fine > 0.01 {
		t.Fatalf("fine step gap = %v, want < 0.01", fine)
	}
	if coarse > 1 {
		t.Fatalf("coarse step gap = %v, want < 1", coarse)
	}
}

func TestSearchBatchMatchesIndependentSearches(t *testing.T) {
	e := mustEvaluator(t, spectral.BandSPF, integrate.Trapezoid)
	p := SearchParams{Step: 1e-3, MaxIterations: 10000}

	batch := spectral.Batch{
		shoulderSpectrum(),
		testutil.Uniform(0.7, 111),
		testutil.DeterministicAbsorbance(3, 1.2, 111),
	}
	targets := []float64{5, 10, 20}

	got, err := e.SearchBatch(batch, targets, p)
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range batch {
		want, err := e.Search(s, targets[i], p)
		if err != nil {
			t.Fatal(err)
		}
		if got[i] != want {
			t.Fatalf("sample %d: batch C=%v, single C=%v", i, got[i], want)
		}
	}
}

func TestSearchBatchBroadcastsSingleTarget(t *testing.T) {
	e := mustEvaluator(t, spectral.BandSPF, integrate.Trapezoid)
	p := SearchParams{Step: 1e-3, MaxIterations: 10000}
	batch := spectral.Batch{testutil.Uniform(1, 111), testutil.Uniform(1, 111)}

	got, err := e.SearchBatch(batch, []float64{12}, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != got[1] {
		t.Fatalf("got %v, want two equal coefficients", got)
	}
}

func TestSearchBatchDimensionMismatch(t *testing.T) {
	e := mustEvaluator(t, spectral.BandSPF, integrate.Trapezoid)
	batch := spectral.Batch{testutil.Zeros(111), testutil.Zeros(111), testutil.Zeros(111)}

	got, err := e.SearchBatch(batch, []float64{10, 20}, DefaultSearchParams())
	if !errors.Is(err, spectral.ErrDimensionMismatch) {
		t.Fatalf("err = %v, want ErrDimensionMismatch", err)
	}
	if got != nil {
		t.Fatalf("partial output %v returned with error", got)
	}
}

func TestSearchValidation(t *testing.T) {
	e := mustEvaluator(t, spectral.BandSPF, integrate.Trapezoid)
	s := testutil.Zeros(111)

	if _, err := e.Search(s, 10, SearchParams{Step: 0, MaxIterations: 10}); !errors.Is(err, ErrSearchParams) {
		t.Fatalf("err = %v, want ErrSearchParams", err)
	}
	if _, err := e.Search(s, math.NaN(), DefaultSearchParams()); !errors.Is(err, ErrTarget) {
		t.Fatalf("err = %v, want ErrTarget", err)
	}
	if _, err := e.Search(make(spectral.Spectrum, 80), 10, DefaultSearchParams()); !errors.Is(err, spectral.ErrShape) {
		t.Fatalf("err = %v, want ErrShape", err)
	}
}

func TestParseSearchParams(t *testing.T) {
	p, err := ParseSearchParams(nil)
	if err != nil || p != DefaultSearchParams() {
		t.Fatalf("defaults: %+v, %v", p, err)
	}

	p, err = ParseSearchParams([]float64{1e-4, 2000})
	if err != nil {
		t.Fatal(err)
	}
	if p.Step != 1e-4 || p.MaxIterations != 2000 {
		t.Fatalf("got %+v", p)
	}

	for _, bad := range [][]float64{{1e-4}, {1e-4, 10, 3}, {1e-4, 2.5}, {-1, 10}, {1e-4, 0}} {
		if _, err := ParseSearchParams(bad); !errors.Is(err, ErrSearchParams) {
			t.Fatalf("ParseSearchParams(%v): err = %v, want ErrSearchParams", bad, err)
		}
	}
}

func TestValidateCoefficients(t *testing.T) {
	if err := ValidateCoefficients([]float64{0, 1.5, 20}); err != nil {
		t.Fatalf("valid coefficients rejected: %v", err)
	}
	for _, c := range []float64{-1e-9, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if err := ValidateCoefficients([]float64{1, c}); !errors.Is(err, ErrCoefficient) {
			t.Fatalf("C=%v: err = %v, want ErrCoefficient", c, err)
		}
	}
}
