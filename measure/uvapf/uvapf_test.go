package uvapf

import (
	"errors"
	"math"
	"testing"

	"github.com/santiagohigareda/photoprotection/internal/testutil"
	"github.com/santiagohigareda/photoprotection/measure/spf"
	"github.com/santiagohigareda/photoprotection/spectral"
	"github.com/santiagohigareda/photoprotection/spectral/integrate"
)

func TestComputeUniform(t *testing.T) {
	got, err := Compute(spectral.Single(testutil.Uniform(0.3, 81)), []float64{1}, integrate.Trapezoid, spectral.BatchUnspecified)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d values, want 1", len(got))
	}
	testutil.RequireFinite(t, got)
	testutil.RequireNearlyEqual(t, "uvapf", got[0], math.Pow(10, 0.3), 1e-9)

	unadjusted, err := Compute(spectral.Single(testutil.Uniform(0.3, 81)), []float64{0}, integrate.Trapezoid, spectral.BatchUnspecified)
	if err != nil {
		t.Fatal(err)
	}
	if unadjusted[0] != 1 {
		t.Fatalf("C=0 UVA-PF = %v, want 1", unadjusted[0])
	}
	if got[0] <= unadjusted[0] {
		t.Fatalf("C=1 UVA-PF %v not above C=0 value %v", got[0], unadjusted[0])
	}
}

func TestComputeTrimsFullBand(t *testing.T) {
	c, err := New(integrate.Simpson)
	if err != nil {
		t.Fatal(err)
	}

	uva := testutil.DeterministicAbsorbance(4, 1, 81)
	full := append(testutil.Uniform(5, 30), uva...)

	fromFull, err := c.Compute(spectral.Single(full), []float64{0.9}, spectral.BatchUnspecified)
	if err != nil {
		t.Fatal(err)
	}
	fromUVA, err := c.Compute(spectral.Single(uva), []float64{0.9}, spectral.BatchUnspecified)
	if err != nil {
		t.Fatal(err)
	}
	if fromFull[0] != fromUVA[0] {
		t.Fatalf("full band %v != UVA band %v", fromFull[0], fromUVA[0])
	}
}

func TestComputeBatchBroadcast(t *testing.T) {
	batch := spectral.Batch{testutil.Uniform(0.2, 81), testutil.Uniform(0.4, 111)}
	got, err := Compute(batch, []float64{1.5}, integrate.Trapezoid, spectral.BatchOn)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{math.Pow(10, 0.3), math.Pow(10, 0.6)}, 1e-9)
}

func TestComputeErrors(t *testing.T) {
	three := spectral.Batch{testutil.Zeros(81), testutil.Zeros(81), testutil.Zeros(81)}

	if _, err := Compute(three, []float64{1, 1}, integrate.Trapezoid, spectral.BatchUnspecified); !errors.Is(err, spectral.ErrDimensionMismatch) {
		t.Fatalf("err = %v, want ErrDimensionMismatch", err)
	}
	if _, err := Compute(spectral.Single(testutil.Zeros(90)), []float64{1}, integrate.Trapezoid, spectral.BatchUnspecified); !errors.Is(err, spectral.ErrShape) {
		t.Fatalf("err = %v, want ErrShape", err)
	}
	if _, err := Compute(spectral.Single(testutil.Zeros(81)), []float64{1}, integrate.Trapezoid, spectral.BatchOff); !errors.Is(err, spectral.ErrInsufficientValues) {
		t.Fatalf("err = %v, want ErrInsufficientValues", err)
	}
	if _, err := Compute(three, []float64{1}, integrate.Method(8), spectral.BatchOn); !errors.Is(err, integrate.ErrMethod) {
		t.Fatalf("err = %v, want ErrMethod", err)
	}
	if _, err := Compute(nil, []float64{1}, integrate.Trapezoid, spectral.BatchUnspecified); !errors.Is(err, spectral.ErrInsufficientValues) {
		t.Fatalf("err = %v, want ErrInsufficientValues", err)
	}
}

func TestComputeRejectsInvalidCoefficients(t *testing.T) {
	pair := spectral.Batch{testutil.Uniform(0.3, 81), testutil.Uniform(0.3, 81)}
	for _, coeffs := range [][]float64{{1, -1}, {math.NaN(), 1}, {math.Inf(1), 1}} {
		got, err := Compute(pair, coeffs, integrate.Trapezoid, spectral.BatchUnspecified)
		if !errors.Is(err, spf.ErrCoefficient) {
			t.Fatalf("coefficients %v: err = %v, want ErrCoefficient", coeffs, err)
		}
		if got != nil {
			t.Fatalf("coefficients %v: partial output %v", coeffs, got)
		}
	}
}

func TestDose(t *testing.T) {
	got := Dose([]float64{10, 2.5, 0})
	testutil.RequireSliceNearlyEqual(t, got, []float64{12, 3, 0}, 1e-12)
	if len(Dose(nil)) != 0 {
		t.Fatal("Dose(nil) must be empty")
	}
}
