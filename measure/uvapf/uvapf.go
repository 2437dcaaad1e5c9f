// Package uvapf computes the UVA protection factor and the UV exposure dose
// derived from it.
//
// UVA-PF uses the persistent pigment darkening action spectrum and the UVA
// source irradiance over 320-400 nm. Spectra measured over 290-400 nm are
// accepted and trimmed to the UVA band. The coefficient C is the one
// determined for SPF adjustment on the same sample.
package uvapf

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/santiagohigareda/photoprotection/measure/spf"
	"github.com/santiagohigareda/photoprotection/spectral"
	"github.com/santiagohigareda/photoprotection/spectral/integrate"
)

// DoseFactor converts an initial UVA-PF into an exposure dose in J/cm².
const DoseFactor = 1.2

// Calculator evaluates UVA-PF for batches of spectra.
type Calculator struct {
	eval   *spf.Evaluator
	logger zerolog.Logger
}

// New returns a UVA-PF calculator using the given integration rule.
func New(method integrate.Method) (*Calculator, error) {
	eval, err := spf.NewEvaluator(spectral.BandUVA, method)
	if err != nil {
		return nil, err
	}
	return &Calculator{eval: eval, logger: zerolog.Nop()}, nil
}

// WithLogger returns a copy of c that logs to logger.
func (c *Calculator) WithLogger(logger zerolog.Logger) *Calculator {
	cp := *c
	cp.logger = logger
	return &cp
}

// Compute returns the UVA-PF of each spectrum attenuated with its
// coefficient. Coefficients are matched to the batch with
// [spectral.Broadcast]. Use absorbance before UV exposure for UVA-PF0 and
// absorbance after exposure for the final UVA-PF.
func (c *Calculator) Compute(batch spectral.Batch, coefficients []float64, flag spectral.BatchFlag) ([]float64, error) {
	if len(batch) == 0 {
		return nil, fmt.Errorf("%w: no samples", spectral.ErrInsufficientValues)
	}
	batch, err := batch.Realign(spectral.BandUVA)
	if err != nil {
		return nil, err
	}
	resolved, err := spectral.Broadcast(coefficients, len(batch), flag)
	if err != nil {
		return nil, err
	}
	if err := spf.ValidateCoefficients(resolved); err != nil {
		return nil, err
	}

	out := make([]float64, len(batch))
	for i, s := range batch {
		v, err := c.eval.Evaluate(s, resolved[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	c.logger.Debug().
		Stringer("method", c.eval.Method()).
		Int("samples", len(batch)).
		Msg("uva-pf computed")
	return out, nil
}

// Compute is a one-shot helper for [Calculator.Compute].
func Compute(batch spectral.Batch, coefficients []float64, method integrate.Method, flag spectral.BatchFlag) ([]float64, error) {
	c, err := New(method)
	if err != nil {
		return nil, err
	}
	return c.Compute(batch, coefficients, flag)
}

// Dose returns the UV exposure dose for each initial UVA-PF, in J/cm².
func Dose(uvapf0 []float64) []float64 {
	out := make([]float64, len(uvapf0))
	for i, v := range uvapf0 {
		out[i] = v * DoseFactor
	}
	return out
}
