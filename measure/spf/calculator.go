package spf

import (
	"fmt"

	"github.com/santiagohigareda/photoprotection/spectral"
	"github.com/santiagohigareda/photoprotection/spectral/integrate"
)

// Adjusted holds the output of [Calculator.Adjust]. Slices not produced by
// the requested mode are nil.
type Adjusted struct {
	Coefficients []float64
	SPF          []float64
}

// Calculator computes initial and adjusted SPF for batches of 290-400 nm
// spectra.
type Calculator struct {
	cfg  Config
	eval *Evaluator
}

// New returns a calculator configured with opts applied to [DefaultConfig].
func New(opts ...Option) (*Calculator, error) {
	return NewCalculator(ApplyOptions(opts...))
}

// NewCalculator returns a calculator for cfg.
func NewCalculator(cfg Config) (*Calculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	eval, err := NewEvaluator(spectral.BandSPF, cfg.Method)
	if err != nil {
		return nil, err
	}
	return &Calculator{cfg: cfg, eval: eval}, nil
}

// Config returns the calculator configuration.
func (c *Calculator) Config() Config { return c.cfg }

// Evaluator returns the underlying SPF evaluator.
func (c *Calculator) Evaluator() *Evaluator { return c.eval }

// Initial returns the unadjusted in-vitro SPF of each spectrum.
func (c *Calculator) Initial(batch spectral.Batch) ([]float64, error) {
	return c.Apply(batch, ones(len(batch)), spectral.BatchUnspecified)
}

// Coefficients determines C for each spectrum against its target SPF.
func (c *Calculator) Coefficients(batch spectral.Batch, targets []float64, flag spectral.BatchFlag) ([]float64, error) {
	adj, err := c.Adjust(batch, ModeDetermine, targets, flag)
	if err != nil {
		return nil, err
	}
	return adj.Coefficients, nil
}

// Apply returns the adjusted SPF of each spectrum for the given coefficients.
func (c *Calculator) Apply(batch spectral.Batch, coefficients []float64, flag spectral.BatchFlag) ([]float64, error) {
	adj, err := c.Adjust(batch, ModeApply, coefficients, flag)
	if err != nil {
		return nil, err
	}
	return adj.SPF, nil
}

// Adjust runs mode over batch. values are target SPFs for [ModeDetermine]
// and [ModeBoth], and coefficients for [ModeApply]; they are matched to the
// batch with [spectral.Broadcast]. All inputs are validated before any
// computation starts and no partial result is returned on error.
func (c *Calculator) Adjust(batch spectral.Batch, mode Mode, values []float64, flag spectral.BatchFlag) (Adjusted, error) {
	switch mode {
	case ModeDetermine, ModeApply, ModeBoth:
	default:
		return Adjusted{}, fmt.Errorf("%w: %v", ErrMode, mode)
	}
	if len(batch) == 0 {
		return Adjusted{}, fmt.Errorf("%w: no samples", spectral.ErrInsufficientValues)
	}
	batch, err := batch.Realign(spectral.BandSPF)
	if err != nil {
		return Adjusted{}, err
	}
	resolved, err := spectral.Broadcast(values, len(batch), flag)
	if err != nil {
		return Adjusted{}, err
	}

	if mode == ModeApply {
		if err := ValidateCoefficients(resolved); err != nil {
			return Adjusted{}, err
		}
	}

	var out Adjusted
	coefficients := resolved
	if mode != ModeApply {
		results, err := c.eval.searchBatch(batch, resolved, c.cfg.Search, c.cfg.Workers)
		if err != nil {
			return Adjusted{}, err
		}
		coefficients = make([]float64, len(results))
		for i, r := range results {
			coefficients[i] = r.Coefficient
			if r.Saturated {
				c.cfg.Logger.Debug().
					Int("sample", i).
					Float64("target", resolved[i]).
					Float64("coefficient", r.Coefficient).
					Float64("ratio", r.Ratio).
					Int("iterations", r.Iterations).
					Msg("coefficient search saturated")
			}
		}
		out.Coefficients = coefficients
	}

	if mode != ModeDetermine {
		out.SPF = c.apply(batch, coefficients)
	}

	c.cfg.Logger.Debug().
		Stringer("mode", mode).
		Stringer("method", c.cfg.Method).
		Int("samples", len(batch)).
		Msg("adjusted spf computed")
	return out, nil
}

func (c *Calculator) apply(batch spectral.Batch, coefficients []float64) []float64 {
	out := make([]float64, len(batch))
	buf := make([]float64, spectral.BandSPF.Len())
	for i, s := range batch {
		out[i] = c.eval.ratio(s, coefficients[i], buf)
	}
	return out
}

// InitialSPF is a one-shot helper returning the unadjusted SPF of each
// spectrum.
func InitialSPF(batch spectral.Batch, method integrate.Method) ([]float64, error) {
	c, err := New(WithMethod(method))
	if err != nil {
		return nil, err
	}
	return c.Initial(batch)
}

// Adjust is a one-shot helper for [Calculator.Adjust].
func Adjust(batch spectral.Batch, mode Mode, values []float64, flag spectral.BatchFlag, opts ...Option) (Adjusted, error) {
	c, err := New(opts...)
	if err != nil {
		return Adjusted{}, err
	}
	return c.Adjust(batch, mode, values, flag)
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
