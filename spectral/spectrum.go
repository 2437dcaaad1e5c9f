package spectral

import "fmt"

// Spectrum is a sequence of absorbance readings at 1 nm spacing.
type Spectrum []float64

// Realign returns s restricted to band.
//
// A spectrum whose length already equals the band length is returned as is.
// A spectrum covering a wider band that ends at the same wavelength (for
// example a 290-400 nm reading used for the 320-400 nm UVA band) loses its
// leading samples. Any other length fails with [ErrShape].
func (s Spectrum) Realign(band Band) (Spectrum, error) {
	n := band.Len()
	switch {
	case len(s) == n:
		return s, nil
	case band.End == BandSPF.End && band.Start > BandSPF.Start && len(s) == BandSPF.Len():
		return s[band.Start-BandSPF.Start:], nil
	default:
		return nil, fmt.Errorf("%w: got %d rows, want %d (%s)", ErrShape, len(s), n, band)
	}
}

// Batch is an ordered group of independent spectra.
type Batch []Spectrum

// Single wraps one spectrum as a batch of one.
func Single(s Spectrum) Batch {
	return Batch{s}
}

// Realign applies [Spectrum.Realign] to every spectrum. The returned batch
// shares sample storage with b.
func (b Batch) Realign(band Band) (Batch, error) {
	out := make(Batch, len(b))
	for i, s := range b {
		r, err := s.Realign(band)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}

// Columns converts a row-major table into a batch, one spectrum per column.
// Rows are wavelengths and columns are treatments, the layout instruments
// export. Ragged tables fail with [ErrShape].
func Columns(rows [][]float64) (Batch, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrShape)
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, fmt.Errorf("%w: table has no columns", ErrShape)
	}

	out := make(Batch, cols)
	for c := range out {
		out[c] = make(Spectrum, len(rows))
	}
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShape, r, len(row), cols)
		}
		for c, v := range row {
			out[c][r] = v
		}
	}
	return out, nil
}
