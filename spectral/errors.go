package spectral

import "errors"

var (
	// ErrShape reports a spectrum whose length matches no expected band.
	ErrShape = errors.New("spectral: invalid spectrum length")
	// ErrDimensionMismatch reports a value count incompatible with the batch.
	ErrDimensionMismatch = errors.New("spectral: dimensions of data and values do not match")
	// ErrBatchFlag reports a batch flag outside {true, false, unset}.
	ErrBatchFlag = errors.New("spectral: invalid batch flag")
	// ErrInsufficientValues reports too few spectra or values for the requested batch mode.
	ErrInsufficientValues = errors.New("spectral: insufficient values")
)
