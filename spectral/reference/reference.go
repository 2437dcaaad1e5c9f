package reference

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cwbudde/algo-vecmath"

	"github.com/santiagohigareda/photoprotection/spectral"
)

// Table maps each wavelength of a band to a weighting or irradiance value.
type Table struct {
	name   string
	band   spectral.Band
	values []float64
}

var (
	erythema  = Table{name: "erythema", band: spectral.BandSPF, values: erythemaValues[:]}
	solarUV   = Table{name: "ssr", band: spectral.BandSPF, values: solarUVValues[:]}
	ppd       = Table{name: "ppd", band: spectral.BandUVA, values: ppdValues[:]}
	uvaSource = Table{name: "uva", band: spectral.BandUVA, values: uvaSourceValues[:]}
)

// Erythema returns the erythema action spectrum.
func Erythema() Table { return erythema }

// SolarUV returns the standard sun spectrum irradiance.
func SolarUV() Table { return solarUV }

// PPD returns the persistent pigment darkening action spectrum.
func PPD() Table { return ppd }

// UVASource returns the UVA source irradiance.
func UVASource() Table { return uvaSource }

// Tables returns every reference table, sorted by name.
func Tables() []Table {
	all := []Table{erythema, solarUV, ppd, uvaSource}
	sort.Slice(all, func(i, j int) bool { return all[i].name < all[j].name })
	return all
}

// Lookup returns the table registered under name.
func Lookup(name string) (Table, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range Tables() {
		if t.name == name {
			return t, nil
		}
	}
	return Table{}, fmt.Errorf("reference: unknown table %q", name)
}

// Name returns the short table name.
func (t Table) Name() string { return t.name }

// Band returns the wavelength band the table covers.
func (t Table) Band() spectral.Band { return t.band }

// Len returns the number of samples.
func (t Table) Len() int { return len(t.values) }

// At returns the value at wavelength (nm).
func (t Table) At(wavelength int) (float64, bool) {
	i, ok := t.band.Index(wavelength)
	if !ok {
		return 0, false
	}
	return t.values[i], true
}

// Values returns a copy of the table values.
func (t Table) Values() []float64 {
	return append([]float64(nil), t.values...)
}

// Action is a weighting spectrum paired with the source it weights. The
// product of both is computed once and shared read-only.
type Action struct {
	weighting   Table
	source      Table
	weighted    []float64
	wavelengths []float64
}

var (
	spfAction = newAction(erythema, solarUV)
	uvaAction = newAction(ppd, uvaSource)
)

func newAction(weighting, source Table) *Action {
	if weighting.band != source.band || len(weighting.values) != len(source.values) {
		panic(fmt.Sprintf("reference: %s and %s cover different bands", weighting.name, source.name))
	}
	weighted := make([]float64, len(weighting.values))
	vecmath.MulBlock(weighted, weighting.values, source.values)
	return &Action{
		weighting:   weighting,
		source:      source,
		weighted:    weighted,
		wavelengths: weighting.band.Wavelengths(),
	}
}

// ForBand returns the action spectrum pair for band: erythema x sun spectrum
// for 290-400 nm, PPD x UVA source for 320-400 nm.
func ForBand(band spectral.Band) (*Action, error) {
	switch band {
	case spectral.BandSPF:
		return spfAction, nil
	case spectral.BandUVA:
		return uvaAction, nil
	default:
		return nil, fmt.Errorf("%w: no reference spectra for %s", spectral.ErrShape, band)
	}
}

// Band returns the band shared by the weighting and source tables.
func (a *Action) Band() spectral.Band { return a.weighting.band }

// Weighting returns the weighting table.
func (a *Action) Weighting() Table { return a.weighting }

// Source returns the source irradiance table.
func (a *Action) Source() Table { return a.source }

// Weighted returns a copy of weighting x source, one value per wavelength.
func (a *Action) Weighted() []float64 {
	return append([]float64(nil), a.weighted...)
}

// Wavelengths returns a copy of the band abscissas.
func (a *Action) Wavelengths() []float64 {
	return append([]float64(nil), a.wavelengths...)
}
