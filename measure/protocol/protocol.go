// Package protocol runs the in-vitro UVA protection measurement end to end.
//
// From absorbance measured before UV exposure and the labelled (in-vivo)
// SPF, the adjustment coefficient C is determined and used to compute the
// adjusted SPF, the initial UVA-PF and the exposure dose. When absorbance
// measured after exposure is supplied, the final UVA-PF is computed from it
// with the same C. The critical wavelength comes from the post-exposure
// spectra when present and from the pre-exposure spectra otherwise.
package protocol

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/santiagohigareda/photoprotection/measure/cw"
	"github.com/santiagohigareda/photoprotection/measure/spf"
	"github.com/santiagohigareda/photoprotection/measure/uvapf"
	"github.com/santiagohigareda/photoprotection/spectral"
)

// Input holds the plates of one product.
type Input struct {
	Pre     spectral.Batch
	Post    spectral.Batch
	Targets []float64
	Batch   spectral.BatchFlag
}

// Sample holds the metrics of one plate.
type Sample struct {
	Index              int
	Coefficient        float64
	InitialSPF         float64
	AdjustedSPF        float64
	UVAPF0             float64
	Dose               float64
	UVAPF              float64
	CriticalWavelength int
}

// Stats summarizes one metric across plates.
type Stats struct {
	Mean   float64
	StdDev float64
	CV     float64
}

// Summary holds per-metric statistics.
type Summary struct {
	Coefficient        Stats
	InitialSPF         Stats
	AdjustedSPF        Stats
	UVAPF0             Stats
	Dose               Stats
	UVAPF              Stats
	CriticalWavelength Stats
}

// Report is the result of [Run].
type Report struct {
	Samples []Sample
	Summary Summary
	// Exposed is set when post-exposure spectra were supplied and
	// UVAPF holds the final UVA-PF.
	Exposed bool
}

// Run computes every metric for in. opts configure the SPF calculator; the
// UVA-PF calculation uses the same integration rule and logger.
func Run(in Input, opts ...spf.Option) (Report, error) {
	calc, err := spf.New(opts...)
	if err != nil {
		return Report{}, err
	}
	cfg := calc.Config()

	uva, err := uvapf.New(cfg.Method)
	if err != nil {
		return Report{}, err
	}
	uva = uva.WithLogger(cfg.Logger)

	exposed := len(in.Post) > 0
	if exposed && len(in.Post) != len(in.Pre) {
		return Report{}, fmt.Errorf("%w: %d pre-exposure and %d post-exposure samples",
			spectral.ErrDimensionMismatch, len(in.Pre), len(in.Post))
	}

	initial, err := calc.Initial(in.Pre)
	if err != nil {
		return Report{}, fmt.Errorf("initial spf: %w", err)
	}
	adj, err := calc.Adjust(in.Pre, spf.ModeBoth, in.Targets, in.Batch)
	if err != nil {
		return Report{}, fmt.Errorf("adjusted spf: %w", err)
	}
	pf0, err := uva.Compute(in.Pre, adj.Coefficients, spectral.BatchUnspecified)
	if err != nil {
		return Report{}, fmt.Errorf("uva-pf0: %w", err)
	}

	var pf []float64
	cwSource := in.Pre
	if exposed {
		pf, err = uva.Compute(in.Post, adj.Coefficients, spectral.BatchUnspecified)
		if err != nil {
			return Report{}, fmt.Errorf("uva-pf: %w", err)
		}
		cwSource = in.Post
	}
	wavelengths, err := cw.Compute(cwSource, cfg.Method)
	if err != nil {
		return Report{}, fmt.Errorf("critical wavelength: %w", err)
	}

	dose := uvapf.Dose(pf0)
	rep := Report{Samples: make([]Sample, len(in.Pre)), Exposed: exposed}
	for i := range rep.Samples {
		s := Sample{
			Index:              i,
			Coefficient:        adj.Coefficients[i],
			InitialSPF:         initial[i],
			AdjustedSPF:        adj.SPF[i],
			UVAPF0:             pf0[i],
			Dose:               dose[i],
			CriticalWavelength: wavelengths[i],
		}
		if exposed {
			s.UVAPF = pf[i]
		}
		rep.Samples[i] = s
	}
	rep.Summary = summarize(rep.Samples, exposed)

	cfg.Logger.Info().
		Int("samples", len(rep.Samples)).
		Bool("exposed", exposed).
		Float64("mean_adjusted_spf", rep.Summary.AdjustedSPF.Mean).
		Float64("mean_uvapf0", rep.Summary.UVAPF0.Mean).
		Msg("protocol completed")
	return rep, nil
}

func summarize(samples []Sample, exposed bool) Summary {
	column := func(get func(Sample) float64) Stats {
		x := make([]float64, len(samples))
		for i, s := range samples {
			x[i] = get(s)
		}
		return describe(x)
	}

	sum := Summary{
		Coefficient: column(func(s Sample) float64 { return s.Coefficient }),
		InitialSPF:  column(func(s Sample) float64 { return s.InitialSPF }),
		AdjustedSPF: column(func(s Sample) float64 { return s.AdjustedSPF }),
		UVAPF0:      column(func(s Sample) float64 { return s.UVAPF0 }),
		Dose:        column(func(s Sample) float64 { return s.Dose }),
		CriticalWavelength: column(func(s Sample) float64 {
			return float64(s.CriticalWavelength)
		}),
	}
	if exposed {
		sum.UVAPF = column(func(s Sample) float64 { return s.UVAPF })
	}
	return sum
}

// describe returns the mean, sample standard deviation and coefficient of
// variation of x. The spread of fewer than two values is 0.
func describe(x []float64) Stats {
	if len(x) == 0 {
		return Stats{}
	}
	if len(x) == 1 {
		return Stats{Mean: x[0]}
	}
	mean, sd := stat.MeanStdDev(x, nil)
	st := Stats{Mean: mean, StdDev: sd}
	if mean != 0 {
		st.CV = sd / mean
	}
	return st
}
