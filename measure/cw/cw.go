// Package cw computes the critical wavelength of an absorbance spectrum.
//
// The critical wavelength is the wavelength below which 90% of the area
// under the 290-400 nm absorbance curve lies. It is found by a downward
// scan: starting at 400 nm, the area from the candidate wavelength up to
// 400 nm is integrated, and the first candidate whose area reaches one
// tenth of the total is returned.
package cw

import (
	"errors"
	"fmt"

	"github.com/santiagohigareda/photoprotection/spectral"
	"github.com/santiagohigareda/photoprotection/spectral/integrate"
)

// ErrNoCrossing reports a spectrum whose tail area never reaches the
// threshold, which only happens when the spectrum holds NaN readings.
var ErrNoCrossing = errors.New("cw: no wavelength reaches the area threshold")

// thresholdDivisor sets the share of the total area (one tenth) that must lie
// above the critical wavelength.
const thresholdDivisor = 10

// Compute returns the critical wavelength (nm) of every 290-400 nm spectrum
// in batch.
func Compute(batch spectral.Batch, method integrate.Method) ([]int, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("%w: %v", integrate.ErrMethod, method)
	}
	if len(batch) == 0 {
		return nil, fmt.Errorf("%w: no samples", spectral.ErrInsufficientValues)
	}
	batch, err := batch.Realign(spectral.BandSPF)
	if err != nil {
		return nil, err
	}

	var wavelengths []float64
	if method == integrate.Simpson {
		wavelengths = spectral.BandSPF.Wavelengths()
	}

	out := make([]int, len(batch))
	for i, s := range batch {
		wl, err := scan(s, wavelengths, method)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		out[i] = wl
	}
	return out, nil
}

// scan walks down from the top of the band. wavelengths is nil for the
// unit-spaced trapezoid rule.
func scan(s spectral.Spectrum, wavelengths []float64, method integrate.Method) (int, error) {
	band := spectral.BandSPF
	threshold := area(s, wavelengths, method) / thresholdDivisor

	for wl := band.End; wl >= band.Start; wl-- {
		i, _ := band.Index(wl)
		var x []float64
		if wavelengths != nil {
			x = wavelengths[i:]
		}
		if area(s[i:], x, method) >= threshold {
			return wl, nil
		}
	}
	return 0, ErrNoCrossing
}

// area integrates a tail of the spectrum. A single sample has no area.
func area(values, wavelengths []float64, method integrate.Method) float64 {
	if len(values) < 2 {
		return 0
	}
	return method.Evaluate(values, wavelengths)
}
