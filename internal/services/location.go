package services

import (
	"fmt"

	"github.com/stwalsh4118/phx/internal/models/climate"
	"github.com/stwalsh4118/phx/internal/models/loads"
	"github.com/stwalsh4118/phx/internal/models/project"
	"github.com/stwalsh4118/phx/internal/source"
)

// setCertification copies the segment's certification classification and
// PH building data onto the variant.
func setCertification(variant *project.Variant, segment *source.BldgSegment, merged *source.Room) error {
	cert := variant.PhCertification

	if src := segment.Certification; src != nil {
		settings := []struct {
			value string
			set   func(string) error
		}{
			{src.BuildingCategory, cert.Settings.BuildingCategory.Set},
			{src.BuildingUseType, cert.Settings.BuildingUseType.Set},
			{src.BuildingStatus, cert.Settings.BuildingStatus.Set},
			{src.BuildingType, cert.Settings.BuildingType.Set},
			{src.Standard, cert.Settings.Standard.Set},
		}
		for _, s := range settings {
			if s.value == "" {
				continue
			}
			if err := s.set(s.value); err != nil {
				return err
			}
		}

		if src.AnnualHeatingDemand > 0 {
			cert.Criteria.AnnualHeatingDemand = src.AnnualHeatingDemand
		}
		if src.AnnualCoolingDemand > 0 {
			cert.Criteria.AnnualCoolingDemand = src.AnnualCoolingDemand
		}
		if src.PeakHeatingLoad > 0 {
			cert.Criteria.PeakHeatingLoad = src.PeakHeatingLoad
		}
		if src.PeakCoolingLoad > 0 {
			cert.Criteria.PeakCoolingLoad = src.PeakCoolingLoad
		}
	}

	b := &cert.Building
	if segment.NumDwellingUnits > 0 {
		b.NumOfUnits = segment.NumDwellingUnits
	}
	if segment.NumFloorLevels > 0 {
		b.NumOfFloors = segment.NumFloorLevels
	}
	if segment.SetPoints.Winter != 0 || segment.SetPoints.Summer != 0 {
		b.SetPoints = project.SetPoints{Winter: segment.SetPoints.Winter, Summer: segment.SetPoints.Summer}
	}
	if segment.MechRoomTemp != 0 {
		b.MechRoomTemp = segment.MechRoomTemp
	}

	if e := merged.Properties.Energy; e != nil && e.Infiltration != nil {
		inf := loads.Infiltration{FlowPerExteriorArea: e.Infiltration.FlowPerExteriorArea}
		b.AirtightnessQ50 = inf.AirtightnessQ50()
		if merged.Volume > 0 {
			b.AirtightnessN50 = b.AirtightnessQ50 * merged.ExposedArea(segment.Phius()) / merged.Volume
		}
	}

	for _, f := range segment.Foundations {
		foundation, err := project.NewFoundation(f.DisplayName, f.FoundationType)
		if err != nil {
			return err
		}
		foundation.FloorSlabArea = f.FloorSlabArea
		foundation.FloorSlabUValue = f.FloorSlabUValue
		foundation.FloorSlabExposed = f.FloorSlabExposed
		b.Foundations = append(b.Foundations, foundation)
	}
	return nil
}

type monthlyField struct {
	name   string
	values []float64
	dst    *climate.Monthly
}

// setLocation copies site, ground, climate and conversion factors.
func setLocation(variant *project.Variant, segment *source.BldgSegment) error {
	loc := variant.Location
	loc.SiteToSourceFactors = factorsOf(segment.SourceFactors)
	loc.SiteToCO2eFactors = factorsOf(segment.CO2eFactors)

	site := segment.Site
	if site == nil {
		return nil
	}

	loc.Site = climate.Site{
		DisplayName:  site.Location.DisplayName,
		Latitude:     site.Location.Latitude,
		Longitude:    site.Location.Longitude,
		Elevation:    site.Location.SiteElevation,
		HoursFromUTC: site.Location.HoursFromUTC,
		ClimateZone:  site.Location.ClimateZone,
	}

	src := site.Climate
	if src.Ground != nil {
		loc.Ground = climate.Ground{
			GroundThermalConductivity: src.Ground.GroundThermalConductivity,
			GroundHeatCapacity:        src.Ground.GroundHeatCapacity,
			GroundDensity:             src.Ground.GroundDensity,
			DepthGroundwater:          src.Ground.DepthGroundwater,
			FlowRateGroundwater:       src.Ground.FlowRateGroundwater,
		}
	}

	c := &loc.Climate
	c.DisplayName = src.DisplayName
	c.StationElevation = src.StationElevation
	c.DailyTempSwing = src.DailyTempSwing
	c.AverageWindSpeed = src.AverageWindSpeed

	monthly := []monthlyField{
		{"air_temps", src.MonthlyTemps.AirTemps, &c.Monthly.AirTemps},
		{"dewpoints", src.MonthlyTemps.DewpointTemps, &c.Monthly.DewpointTemps},
		{"sky_temps", src.MonthlyTemps.SkyTemps, &c.Monthly.SkyTemps},
		{"north", src.MonthlyRadiation.North, &c.Radiation.North},
		{"east", src.MonthlyRadiation.East, &c.Radiation.East},
		{"south", src.MonthlyRadiation.South, &c.Radiation.South},
		{"west", src.MonthlyRadiation.West, &c.Radiation.West},
		{"glob", src.MonthlyRadiation.Glob, &c.Radiation.Global},
	}
	if len(src.MonthlyTemps.GroundTemps) > 0 {
		monthly = append(monthly, monthlyField{"ground_temps", src.MonthlyTemps.GroundTemps, &c.Monthly.GroundTemps})
	}
	for _, m := range monthly {
		values, err := climate.NewMonthly(m.values)
		if err != nil {
			return fmt.Errorf("%s: %w", m.name, err)
		}
		*m.dst = values
	}

	c.PeakLoads = climate.PeakLoads{
		Heat1: peakLoad(src.PeakLoads.Heat1),
		Heat2: peakLoad(src.PeakLoads.Heat2),
		Cool1: peakLoad(src.PeakLoads.Cool1),
		Cool2: peakLoad(src.PeakLoads.Cool2),
	}
	return nil
}

func peakLoad(p source.PeakLoad) climate.PeakLoad {
	return climate.PeakLoad{
		Temperature: p.Temp,
		RadNorth:    p.RadNorth,
		RadEast:     p.RadEast,
		RadSouth:    p.RadSouth,
		RadWest:     p.RadWest,
		RadGlobal:   p.RadGlobal,
		Dewpoint:    p.Dewpoint,
		GroundTemp:  p.GroundTemp,
		SkyTemp:     p.SkyTemp,
	}
}

// factorsOf keys the factors by fuel name; a repeated fuel keeps its last
// value. The unit of the first factor applies to all.
func factorsOf(src []source.Factor) []climate.ConversionFactor {
	if len(src) == 0 {
		return nil
	}
	values := make(map[string]float64, len(src))
	for _, f := range src {
		values[f.FuelName] = f.Value
	}
	return climate.FactorsFromMap(values, src[0].Unit)
}
