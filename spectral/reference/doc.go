// Package reference holds the fixed action spectra and source irradiances
// that weight absorbance data.
//
// SPF weighting uses the erythema action spectrum and the standard sun
// spectrum over 290-400 nm. UVA-PF weighting uses the persistent pigment
// darkening (PPD) action spectrum and the UVA source irradiance over
// 320-400 nm.
//
// All tables are built once at package initialization and never change.
// Accessors hand out copies, so callers can not alter shared state.
package reference
