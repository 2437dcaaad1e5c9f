// Package spectral defines the sampled absorbance data every photoprotection
// metric operates on.
//
// A [Spectrum] holds one absorbance reading per integer nanometer over a
// [Band]. Two bands are in use:
//
//   - [BandSPF]: 290-400 nm, 111 samples (SPF and critical wavelength)
//   - [BandUVA]: 320-400 nm, 81 samples (UVA protection factor)
//
// A [Batch] groups independent spectra, one per treatment or plate. A single
// spectrum is simply a batch of one. Per-spectrum parameters (target SPFs or
// adjustment coefficients) are resolved against a batch with [Broadcast].
package spectral
