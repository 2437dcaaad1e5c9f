// Package integrate evaluates definite integrals of sampled curves over
// wavelength.
//
// Two composite rules are available, selected with [Method]:
//
//   - [Trapezoid]: composite trapezoidal rule (default)
//   - [Simpson]:   composite Simpson 1/3 rule with an end-interval
//     correction for an even sample count
//
// The package is a thin contract over gonum's integrate package; it adds
// method selection, unit-spacing shortcuts and error returns in place of
// panics.
package integrate
