package spf

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultStep is the coefficient increment of the search.
	DefaultStep = 1e-5
	// DefaultMaxIterations bounds the number of search evaluations.
	DefaultMaxIterations = 150000
)

var (
	// ErrSearchParams reports invalid or incomplete search parameters.
	ErrSearchParams = errors.New("spf: invalid search parameters")
	// ErrTarget reports a target SPF that is not a finite number.
	ErrTarget = errors.New("spf: target must be finite")
	// ErrCoefficient reports a coefficient that is negative or not finite.
	ErrCoefficient = errors.New("spf: coefficient must be finite and >= 0")
)

// SearchParams controls the coefficient search. Step and MaxIterations are
// always set together.
type SearchParams struct {
	Step          float64
	MaxIterations int
}

// DefaultSearchParams returns a step of 1e-5 and 150000 iterations.
func DefaultSearchParams() SearchParams {
	return SearchParams{Step: DefaultStep, MaxIterations: DefaultMaxIterations}
}

// NewSearchParams validates and returns a parameter pair.
func NewSearchParams(step float64, maxIterations int) (SearchParams, error) {
	p := SearchParams{Step: step, MaxIterations: maxIterations}
	if err := p.Validate(); err != nil {
		return SearchParams{}, err
	}
	return p, nil
}

// ParseSearchParams reads a [step, iterations] pair. An empty slice selects
// the defaults; any other count is rejected.
func ParseSearchParams(values []float64) (SearchParams, error) {
	switch len(values) {
	case 0:
		return DefaultSearchParams(), nil
	case 2:
		iters := values[1]
		if iters != math.Trunc(iters) || iters > math.MaxInt32 {
			return SearchParams{}, fmt.Errorf("%w: iterations must be a whole number: %v", ErrSearchParams, iters)
		}
		return NewSearchParams(values[0], int(iters))
	default:
		return SearchParams{}, fmt.Errorf("%w: want step and iterations together, got %d values", ErrSearchParams, len(values))
	}
}

// Validate checks that the step is positive and finite and the iteration
// budget is positive.
func (p SearchParams) Validate() error {
	if p.Step <= 0 || math.IsNaN(p.Step) || math.IsInf(p.Step, 0) {
		return fmt.Errorf("%w: step must be > 0: %v", ErrSearchParams, p.Step)
	}
	if p.MaxIterations <= 0 {
		return fmt.Errorf("%w: iterations must be > 0: %d", ErrSearchParams, p.MaxIterations)
	}
	return nil
}

// ValidateCoefficients checks that every coefficient is finite and
// non-negative.
func ValidateCoefficients(coefficients []float64) error {
	for i, c := range coefficients {
		if c < 0 || math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: value %d is %v", ErrCoefficient, i, c)
		}
	}
	return nil
}

// Limit returns the coefficient reached when the search saturates.
func (p SearchParams) Limit() float64 {
	return float64(p.MaxIterations) * p.Step
}
