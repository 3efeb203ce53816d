// Package climate holds a variant's location: site, ground, monthly climate
// data, peak loads and fuel conversion factors.
package climate

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	phxerrors "github.com/stwalsh4118/phx/internal/errors"
)

// Months is the length of every monthly collection.
const Months = 12

// Monthly is a value per calendar month, January first.
type Monthly [Months]float64

// NewMonthly builds a Monthly from exactly twelve values.
func NewMonthly(values []float64) (Monthly, error) {
	var m Monthly
	if len(values) != Months {
		return m, fmt.Errorf("%w: expected %d values, got %d", phxerrors.ErrInvalidMonthlyData, Months, len(values))
	}
	copy(m[:], values)
	return m, nil
}

// Average is the mean over the twelve months.
func (m Monthly) Average() float64 {
	return floats.Sum(m[:]) / Months
}

// Site is the geographic location.
type Site struct {
	DisplayName  string
	Latitude     float64
	Longitude    float64
	Elevation    float64 // m
	HoursFromUTC int
	ClimateZone  int
}

// Ground holds the soil properties.
type Ground struct {
	GroundThermalConductivity float64 // W/mK
	GroundHeatCapacity        float64 // J/kgK
	GroundDensity             float64 // kg/m3
	DepthGroundwater          float64 // m
	FlowRateGroundwater       float64 // m/d
}

// DefaultGround returns the default clay/silt ground.
func DefaultGround() Ground {
	return Ground{
		GroundThermalConductivity: 2,
		GroundHeatCapacity:        1000,
		GroundDensity:             2000,
		DepthGroundwater:          3,
		FlowRateGroundwater:       0.05,
	}
}

// MonthlyTemps are the monthly air, dewpoint, sky and ground temperatures.
type MonthlyTemps struct {
	AirTemps      Monthly
	DewpointTemps Monthly
	SkyTemps      Monthly
	GroundTemps   Monthly
}

// MonthlyRadiation is the monthly incident radiation per orientation, in
// kWh/m2.
type MonthlyRadiation struct {
	North  Monthly
	East   Monthly
	South  Monthly
	West   Monthly
	Global Monthly
}

// PeakLoad is one design-day climate record.
type PeakLoad struct {
	Temperature float64
	RadNorth    float64
	RadEast     float64
	RadSouth    float64
	RadWest     float64
	RadGlobal   float64
	Dewpoint    *float64
	GroundTemp  *float64
	SkyTemp     *float64
}

// PeakLoads holds the four design-day records.
type PeakLoads struct {
	Heat1 PeakLoad
	Heat2 PeakLoad
	Cool1 PeakLoad
	Cool2 PeakLoad
}

// Climate is the full climate data set.
type Climate struct {
	DisplayName      string
	StationElevation float64 // m
	DailyTempSwing   float64 // K
	AverageWindSpeed float64 // m/s
	Monthly          MonthlyTemps
	Radiation        MonthlyRadiation
	PeakLoads        PeakLoads
}

// Location is everything a variant needs about where it is built.
type Location struct {
	Site                Site
	Ground              Ground
	Climate             Climate
	SiteToSourceFactors []ConversionFactor
	SiteToCO2eFactors   []ConversionFactor
}

// NewLocation creates a location with default ground properties.
func NewLocation() *Location {
	return &Location{Ground: DefaultGround()}
}
