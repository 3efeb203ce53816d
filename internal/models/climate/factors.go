package climate

import (
	"fmt"
	"sort"

	phxerrors "github.com/stwalsh4118/phx/internal/errors"
)

// ConversionFactor converts site energy of one fuel to source energy or CO2e.
type ConversionFactor struct {
	FuelName string
	Value    float64
	Unit     string
}

var phppFuels = []string{
	"OIL", "GAS", "LPG", "HARD_COAL", "WOOD",
	"ELECTRICITY_MIX", "ELECTRICITY_PV", "ELECTRICITY_HYDRO",
	"ELECTRICITY_RENEWABLE",
	"DISTRICT_HEAT_CHP_FOSSIL", "DISTRICT_HEAT_CHP_RENEWABLE", "DISTRICT_HEAT_OIL_GAS",
	"DISTRICT_HEAT_COAL", "DISTRICT_HEAT_WOOD",
}

var phiusFuels = []string{
	"NATURAL_GAS", "PROPANE", "FUEL_OIL", "COAL", "WOOD",
	"ELECTRICITY", "ELECTRICITY_PV",
	"DISTRICT_HEAT",
}

// allowedFuels is the union of both standards' fuel keys.
var allowedFuels = func() map[string]struct{} {
	out := make(map[string]struct{}, len(phppFuels)+len(phiusFuels))
	for _, f := range phppFuels {
		out[f] = struct{}{}
	}
	for _, f := range phiusFuels {
		out[f] = struct{}{}
	}
	return out
}()

// AllowedFuels returns the accepted fuel names, sorted.
func AllowedFuels() []string {
	out := make([]string, 0, len(allowedFuels))
	for f := range allowedFuels {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Validate checks the fuel name against the allowed set.
func (f ConversionFactor) Validate() error {
	if _, ok := allowedFuels[f.FuelName]; !ok {
		return fmt.Errorf("%w: %q", phxerrors.ErrFuelNotAllowed, f.FuelName)
	}
	return nil
}

// ValidateFactors checks both factor tables of the location.
func (l *Location) ValidateFactors() error {
	for _, set := range [][]ConversionFactor{l.SiteToSourceFactors, l.SiteToCO2eFactors} {
		for _, f := range set {
			if err := f.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// FactorsFromMap converts a fuel-name keyed table into factors sorted by
// fuel name.
func FactorsFromMap(values map[string]float64, unit string) []ConversionFactor {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]ConversionFactor, 0, len(names))
	for _, name := range names {
		out = append(out, ConversionFactor{FuelName: name, Value: values[name], Unit: unit})
	}
	return out
}
