package spf

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/santiagohigareda/photoprotection/spectral"
)

// SearchResult describes one coefficient search.
type SearchResult struct {
	// Coefficient is the first C on the step grid whose ratio reached the
	// target, or MaxIterations·Step when the search saturated.
	Coefficient float64
	// Iterations is the number of ratio evaluations inside the sweep.
	Iterations int
	// Ratio is the last ratio evaluated.
	Ratio float64
	// Saturated is set when the budget ran out before the target was reached.
	Saturated bool
}

// Search returns the adjustment coefficient C for which the ratio of s
// first reaches target. See [Evaluator.SearchDetailed].
func (e *Evaluator) Search(s spectral.Spectrum, target float64, p SearchParams) (float64, error) {
	r, err := e.SearchDetailed(s, target, p)
	if err != nil {
		return 0, err
	}
	return r.Coefficient, nil
}

// SearchDetailed sweeps C = 0, Step, 2·Step, ... and stops at the first C
// whose ratio is >= target. If the unadjusted ratio (C = 1) already equals
// target, or target does not exceed the unattenuated ratio of 1 (C = 0),
// C = 0 is returned without sweeping. If MaxIterations evaluations
// pass without reaching target, the result saturates at MaxIterations·Step
// and no error is returned.
//
// The sweep always moves forward from 0, whichever side of the target the
// unadjusted ratio lies on.
func (e *Evaluator) SearchDetailed(s spectral.Spectrum, target float64, p SearchParams) (SearchResult, error) {
	if err := e.check(s); err != nil {
		return SearchResult{}, err
	}
	if err := p.Validate(); err != nil {
		return SearchResult{}, err
	}
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return SearchResult{}, fmt.Errorf("%w: %v", ErrTarget, target)
	}

	return e.search(s, target, p, make([]float64, len(s))), nil
}

func (e *Evaluator) search(s spectral.Spectrum, target float64, p SearchParams, buf []float64) SearchResult {
	initial := e.ratio(s, 1, buf)
	if initial == target {
		return SearchResult{Ratio: initial}
	}
	if target <= 1 {
		return SearchResult{Ratio: e.ratio(s, 0, buf)}
	}

	var ratio float64
	for n := 0; n < p.MaxIterations; n++ {
		c := float64(n) * p.Step
		ratio = e.ratio(s, c, buf)
		if ratio >= target {
			return SearchResult{Coefficient: c, Iterations: n + 1, Ratio: ratio}
		}
	}

	return SearchResult{
		Coefficient: p.Limit(),
		Iterations:  p.MaxIterations,
		Ratio:       ratio,
		Saturated:   true,
	}
}

// SearchBatch searches every spectrum of batch independently. A single
// target is applied to all spectra; otherwise there must be one target per
// spectrum. Searches run concurrently on up to runtime.NumCPU() workers and
// the result is index-aligned with batch.
func (e *Evaluator) SearchBatch(batch spectral.Batch, targets []float64, p SearchParams) ([]float64, error) {
	flag := spectral.BatchUnspecified
	if len(targets) == 1 && len(batch) > 1 {
		flag = spectral.BatchOn
	}
	resolved, err := spectral.Broadcast(targets, len(batch), flag)
	if err != nil {
		return nil, err
	}

	results, err := e.searchBatch(batch, resolved, p, 0)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(results))
	for i, r := range results {
		out[i] = r.Coefficient
	}
	return out, nil
}

// searchBatch expects len(targets) == len(batch). workers <= 0 selects
// runtime.NumCPU().
func (e *Evaluator) searchBatch(batch spectral.Batch, targets []float64, p SearchParams, workers int) ([]SearchResult, error) {
	if len(targets) != len(batch) {
		return nil, fmt.Errorf("%w: %d samples, %d targets", spectral.ErrDimensionMismatch, len(batch), len(targets))
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	for i, s := range batch {
		if err := e.check(s); err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		if math.IsNaN(targets[i]) || math.IsInf(targets[i], 0) {
			return nil, fmt.Errorf("sample %d: %w: %v", i, ErrTarget, targets[i])
		}
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	out := make([]SearchResult, len(batch))
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range batch {
		g.Go(func() error {
			out[i] = e.search(batch[i], targets[i], p, make([]float64, len(batch[i])))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
