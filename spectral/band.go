package spectral

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Band is an inclusive wavelength range in nanometers, sampled every 1 nm.
type Band struct {
	Start int
	End   int
}

var (
	// BandSPF covers UVB and UVA, 290-400 nm.
	BandSPF = Band{Start: 290, End: 400}
	// BandUVA covers UVA only, 320-400 nm.
	BandUVA = Band{Start: 320, End: 400}
)

// Len returns the number of 1 nm samples in the band.
func (b Band) Len() int {
	if b.End < b.Start {
		return 0
	}
	return b.End - b.Start + 1
}

// Contains reports whether wavelength lies inside the band.
func (b Band) Contains(wavelength int) bool {
	return wavelength >= b.Start && wavelength <= b.End
}

// Index returns the sample index of wavelength within the band.
func (b Band) Index(wavelength int) (int, bool) {
	if !b.Contains(wavelength) {
		return 0, false
	}
	return wavelength - b.Start, true
}

// Wavelengths returns the band abscissas in nm, one per sample.
func (b Band) Wavelengths() []float64 {
	n := b.Len()
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []float64{float64(b.Start)}
	}
	return floats.Span(make([]float64, n), float64(b.Start), float64(b.End))
}

// Sub returns the part of b starting at wavelength start.
func (b Band) Sub(start int) Band {
	return Band{Start: start, End: b.End}
}

func (b Band) String() string {
	return fmt.Sprintf("%d-%d nm", b.Start, b.End)
}
