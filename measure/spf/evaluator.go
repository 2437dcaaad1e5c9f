package spf

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/santiagohigareda/photoprotection/spectral"
	"github.com/santiagohigareda/photoprotection/spectral/integrate"
	"github.com/santiagohigareda/photoprotection/spectral/reference"
)

// Evaluator computes protection ratios for spectra of one band. It holds
// only read-only state and is safe for concurrent use.
type Evaluator struct {
	band         spectral.Band
	method       integrate.Method
	weighted     []float64
	abscissas    []float64 // nil for the unit-spaced trapezoid rule
	unattenuated float64
}

// NewEvaluator returns an evaluator for band using the given integration
// rule. The band selects the reference pair: erythema and sun spectrum for
// 290-400 nm, PPD and UVA source for 320-400 nm.
func NewEvaluator(band spectral.Band, method integrate.Method) (*Evaluator, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("%w: %v", integrate.ErrMethod, method)
	}
	action, err := reference.ForBand(band)
	if err != nil {
		return nil, err
	}

	e := &Evaluator{
		band:     band,
		method:   method,
		weighted: action.Weighted(),
	}
	if method == integrate.Simpson {
		e.abscissas = action.Wavelengths()
	}
	e.unattenuated = method.Evaluate(e.weighted, e.abscissas)
	return e, nil
}

// Band returns the band the evaluator accepts.
func (e *Evaluator) Band() spectral.Band { return e.band }

// Method returns the integration rule in use.
func (e *Evaluator) Method() integrate.Method { return e.method }

// Evaluate returns the protection ratio of s attenuated with coefficient.
func (e *Evaluator) Evaluate(s spectral.Spectrum, coefficient float64) (float64, error) {
	if err := e.check(s); err != nil {
		return 0, err
	}
	return e.ratio(s, coefficient, make([]float64, len(s))), nil
}

func (e *Evaluator) check(s spectral.Spectrum) error {
	if len(s) != e.band.Len() {
		return fmt.Errorf("%w: got %d rows, want %d (%s)", spectral.ErrShape, len(s), e.band.Len(), e.band)
	}
	return nil
}

// ratio evaluates the protection ratio using buf as scratch space.
// len(buf) must equal len(s).
func (e *Evaluator) ratio(s spectral.Spectrum, coefficient float64, buf []float64) float64 {
	for i, a := range s {
		buf[i] = math.Pow(10, -a*coefficient)
	}
	vecmath.MulBlockInPlace(buf, e.weighted)
	return e.unattenuated / e.method.Evaluate(buf, e.abscissas)
}
