// Package spf computes in-vitro sun protection factors from absorbance
// spectra.
//
// The [Evaluator] turns one spectrum into an SPF-like ratio: the weighted
// source irradiance divided by the same irradiance attenuated by the sample,
//
//	ratio = ∫ W(λ)·S(λ) dλ / ∫ W(λ)·S(λ)·10^(−C·A(λ)) dλ
//
// where A is the absorbance, W the action spectrum, S the source irradiance
// and C the adjustment coefficient. C = 0 yields exactly 1, C = 1 yields the
// unadjusted SPF. For non-negative absorbance the ratio never decreases as C
// grows.
//
// The adjustment coefficient is found with [Evaluator.Search], a bounded
// linear sweep: C starts at 0 and advances by a fixed step until the ratio
// reaches the target or the iteration budget runs out. Running out of budget
// is not an error; the search saturates and returns MaxIterations·Step.
//
// [Calculator] wraps the evaluator with batch handling for the three
// operating modes of adjusted SPF ([ModeDetermine], [ModeApply], [ModeBoth])
// and for the initial SPF.
package spf
