package wufi

import (
	"github.com/stwalsh4118/phx/internal/models/building"
	"github.com/stwalsh4118/phx/internal/models/climate"
	"github.com/stwalsh4118/phx/internal/models/constructions"
	"github.com/stwalsh4118/phx/internal/models/elec"
	"github.com/stwalsh4118/phx/internal/models/enums"
	"github.com/stwalsh4118/phx/internal/models/geometry"
	"github.com/stwalsh4118/phx/internal/models/mech"
	"github.com/stwalsh4118/phx/internal/models/project"
	"github.com/stwalsh4118/phx/internal/models/schedules"
)

const dateFormat = "2006-01-02"

// NewDocument maps a project onto the XML element tree.
func NewDocument(p *project.Project) Document {
	return Document{
		DataVersion:                    p.DataVersion,
		UnitSystem:                     p.UnitSystem,
		ProgramName:                    p.ProgramName,
		ProgramVersion:                 p.ProgramVersion,
		Scope:                          3,
		DimensionsVisualizedGeometry:   2,
		ProjectData:                    newProjectData(p.ProjectData),
		UtilisationPatternsVentilation: newList(mapIndexed(p.VentPatterns.Patterns(), newVentPattern)),
		Variants:                       newList(mapIndexed(p.Variants, newVariant)),
		Assemblies:                     newList(mapIndexed(p.AssemblyTypes(), newAssembly)),
		WindowTypes:                    newList(mapIndexed(p.WindowTypes(), newWindowType)),
	}
}

// mapIndexed applies fn to every item with its zero-based index.
func mapIndexed[S, T any](items []S, fn func(int, S) T) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		out = append(out, fn(i, item))
	}
	return out
}

func newProjectData(d project.ProjectData) ProjectData {
	out := ProjectData{
		CustomerName:        d.Customer.Name,
		CustomerStreet:      d.Customer.Street,
		CustomerLocality:    d.Customer.City,
		CustomerPostalCode:  d.Customer.PostCode,
		CustomerEmail:       d.Customer.Email,
		CustomerTel:         d.Customer.Telephone,
		BuildingName:        d.Building.Name,
		BuildingStreet:      d.Building.Street,
		BuildingLocality:    d.Building.City,
		BuildingPostalCode:  d.Building.PostCode,
		OwnerName:           d.BuildingOwner.Name,
		OwnerStreet:         d.BuildingOwner.Street,
		OwnerLocality:       d.BuildingOwner.City,
		OwnerPostalCode:     d.BuildingOwner.PostCode,
		OwnerIsClient:       d.OwnerIsClient,
		ResponsibleName:     d.Designer.Name,
		ResponsibleStreet:   d.Designer.Street,
		ResponsibleLocality: d.Designer.City,
		ResponsibleEmail:    d.Designer.Email,
		ResponsibleLicense:  d.Designer.License,
		YearConstruction:    d.YearConstruction,
		WhiteBackground:     true,
	}
	if !d.ProjectDate.IsZero() {
		out.DateProject = d.ProjectDate.Format(dateFormat)
	}
	return out
}

func newVentPattern(i int, p *schedules.UtilizationPatternVent) VentPattern {
	return VentPattern{
		Index:                        i,
		Name:                         p.DisplayName,
		IdentNr:                      p.ID,
		OperatingDays:                p.OperatingDays,
		OperatingWeeks:               p.OperatingWeeks,
		MaximumDOS:                   p.High.Hours,
		MaximumPDF:                   p.High.SpeedFraction,
		StandardDOS:                  p.Standard.Hours,
		StandardPDF:                  p.Standard.SpeedFraction,
		BasicDOS:                     p.Basic.Hours,
		BasicPDF:                     p.Basic.SpeedFraction,
		MinimumDOS:                   p.Minimum.Hours,
		MinimumPDF:                   p.Minimum.SpeedFraction,
		AverageOperatingFractionUser: p.AverageOperatingFraction(),
	}
}

func newAssembly(i int, c *constructions.OpaqueConstruction) Assembly {
	layers := make([]Layer, 0, len(c.Layers))
	for j, l := range c.Layers {
		layers = append(layers, Layer{
			Index:     j,
			Thickness: l.Thickness,
			Material: Material{
				Name:                l.Material.DisplayName,
				ThermalConductivity: l.Material.Conductivity,
				BulkDensity:         l.Material.Density,
				HeatCapacity:        l.Material.HeatCapacity,
				Emissivity:          l.Material.Emissivity,
			},
		})
	}
	return Assembly{
		Index:   i,
		IdentNr: c.ID,
		Name:    c.DisplayName,
		Order:   2,
		Layers:  newList(layers),
	}
}

func newWindowType(i int, w *constructions.WindowType) WindowType {
	return WindowType{
		Index:                i,
		IdentNr:              w.ID,
		Name:                 w.DisplayName,
		UValueTotal:          w.UValueWindow,
		UValueGlazing:        w.GlazingUValue,
		GValue:               w.GlazingGValue,
		FrameWidthLeft:       w.FrameLeft.Width,
		FramePsiGlazingLeft:  w.FrameLeft.PsiGlazing,
		FramePsiInstallLeft:  w.FrameLeft.PsiInstall,
		FrameUValueLeft:      w.FrameLeft.UValue,
		FrameWidthRight:      w.FrameRight.Width,
		FramePsiGlazingRight: w.FrameRight.PsiGlazing,
		FramePsiInstallRight: w.FrameRight.PsiInstall,
		FrameUValueRight:     w.FrameRight.UValue,
		FrameWidthTop:        w.FrameTop.Width,
		FramePsiGlazingTop:   w.FrameTop.PsiGlazing,
		FramePsiInstallTop:   w.FrameTop.PsiInstall,
		FrameUValueTop:       w.FrameTop.UValue,
		FrameWidthBottom:     w.FrameBottom.Width,
		FramePsiGlazingBot:   w.FrameBottom.PsiGlazing,
		FramePsiInstallBot:   w.FrameBottom.PsiInstall,
		FrameUValueBottom:    w.FrameBottom.UValue,
	}
}

func newVariant(i int, v *project.Variant) Variant {
	return Variant{
		Index:           i,
		IdentNr:         v.ID,
		Name:            v.Name,
		Remarks:         v.Remarks,
		Graphics3D:      newGraphics3D(v.AllPolygons()),
		Building:        newBuilding(v.Building),
		ClimateLocation: newClimateLocation(v.Location),
		PassiveHouse:    newPassivehouseData(v.PhCertification),
		HVAC:            newHVAC(v.Mech, v.ZoneIDs()),
	}
}

// newGraphics3D lists each distinct vertex once, in first-use order, so
// welded vertices shared by several polygons are written a single time.
func newGraphics3D(polys []*geometry.Polygon) Graphics3D {
	var vertices []Vertex
	seen := make(map[*geometry.Vertex]bool)
	polygons := make([]Polygon, 0, len(polys))

	for i, p := range polys {
		points := make([]int, 0, len(p.Vertices))
		for _, v := range p.Vertices {
			points = append(points, v.ID)
			if seen[v] {
				continue
			}
			seen[v] = true
			vertices = append(vertices, Vertex{Index: len(vertices), IdentNr: v.ID, X: v.X, Y: v.Y, Z: v.Z})
		}
		polygons = append(polygons, Polygon{
			Index:                 i,
			IdentNr:               p.ID,
			NormalVector:          Vector{X: p.Normal.X, Y: p.Normal.Y, Z: p.Normal.Z},
			IdentNrPoints:         newIntList(points),
			IdentNrPolygonsInside: newIntList(p.ChildPolygonIDs),
		})
	}
	return Graphics3D{Vertices: newList(vertices), Polygons: newList(polygons)}
}

func polygonIDs(polys []*geometry.Polygon) []int {
	out := make([]int, 0, len(polys))
	for _, p := range polys {
		out = append(out, p.ID)
	}
	return out
}

// newBuilding writes the envelope, then its apertures, then the shades.
func newBuilding(b *building.Building) Building {
	var components []Component
	for _, c := range b.OpaqueComponents() {
		components = append(components, opaqueComponent(len(components), c))
	}
	for _, a := range b.ApertureComponents() {
		components = append(components, Component{
			Index:                        len(components),
			IdentNr:                      a.ID,
			Name:                         a.DisplayName,
			Visual:                       true,
			Type:                         int(a.Opacity),
			IdentNrColorI:                int(a.ColorInterior),
			IdentNrColorE:                int(a.ColorExterior),
			InnerAttachment:              a.ExposureInterior,
			OuterAttachment:              int(a.ExposureExterior),
			IdentNrComponentInnerSurface: -1,
			IdentNrAssembly:              -1,
			IdentNrWindowType:            a.WindowTypeID(),
			DepthWindowReveal:            a.InstallDepth,
			IdentNrPolygons:              newIntList(polygonIDs(a.Polygons)),
		})
	}
	for _, s := range b.ShadingComponents() {
		components = append(components, opaqueComponent(len(components), s))
	}

	return Building{
		Components: newList(components),
		Zones:      newList(mapIndexed(b.Zones, newZone)),
	}
}

func opaqueComponent(i int, c *building.ComponentOpaque) Component {
	return Component{
		Index:                        i,
		IdentNr:                      c.ID,
		Name:                         c.DisplayName,
		Visual:                       true,
		Type:                         int(c.Opacity),
		IdentNrColorI:                int(c.ColorInterior),
		IdentNrColorE:                int(c.ColorExterior),
		InnerAttachment:              c.ExposureInterior,
		OuterAttachment:              int(c.ExposureExterior),
		IdentNrComponentInnerSurface: c.InteriorAttachmentID,
		IdentNrAssembly:              c.AssemblyID(),
		IdentNrWindowType:            -1,
		IdentNrPolygons:              newIntList(polygonIDs(c.Polygons)),
	}
}

func newZone(i int, z *building.Zone) Zone {
	rooms := make([]RoomVentilation, 0, len(z.WufiRooms))
	for j, r := range z.WufiRooms {
		patternID := -1
		if r.VentPattern != nil {
			patternID = r.VentPattern.ID
		}
		height := z.ClearanceHeight
		if r.WeightedFloorArea > 0 {
			height = r.NetVolume / r.WeightedFloorArea
		}
		rooms = append(rooms, RoomVentilation{
			Index:                         j,
			Name:                          r.FullName,
			Type:                          99,
			IdentNrUtilizationPatternVent: patternID,
			IdentNrVentilationUnit:        r.VentilationUnitID,
			Quantity:                      r.Quantity,
			AreaRoom:                      r.WeightedFloorArea,
			ClearRoomHeight:               height,
			DesignVolumeFlowRateSupply:    r.Load.FlowSupply,
			DesignVolumeFlowRateExhaust:   r.Load.FlowExtract,
			DesignFlowInterzonalUserDef:   r.Load.FlowTransfer,
		})
	}

	return Zone{
		Index:                      i,
		IdentNr:                    z.ID,
		Name:                       z.DisplayName,
		KindZone:                   1,
		KindAttachedZone:           0,
		GrossVolumeSelection:       6,
		GrossVolume:                z.VolumeGross,
		NetVolumeSelection:         6,
		NetVolume:                  z.VolumeNet,
		FloorAreaSelection:         6,
		FloorArea:                  z.WeightedNetFloorArea,
		ClearanceHeightSelection:   6,
		ClearanceHeight:            z.ClearanceHeight,
		SpecificHeatCapacitySelect: 6,
		SpecificHeatCapacity:       z.SpecificHeatCapacity,
		OccupantQuantityUser:       z.ResOccupantQuantity,
		NumberBedrooms:             z.ResNumberBedrooms,
		RoomsVentilation:           newList(rooms),
		HomeDevice:                 newList(mapIndexed(appliances(z), newHomeDevice)),
		ThermalBridges:             newList(mapIndexed(z.ThermalBridges, newThermalBridge)),
	}
}

func newHomeDevice(i int, a *elec.Appliance) HomeDevice {
	return HomeDevice{
		Index:                     i,
		Comment:                   a.Comment,
		ReferenceQuantity:         a.ReferenceQuantity,
		Quantity:                  a.Quantity,
		InConditionedSpace:        a.InConditionedSpace,
		ReferenceEnergyDemandNorm: a.ReferenceEnergyNorm,
		EnergyDemandNorm:          a.EnergyDemand,
		EnergyDemandNormUse:       a.EnergyDemandPerUse,
		CEFCombinedEnergyFactor:   a.CombinedEnergyFactor,
		Type:                      int(a.Type),
		DishwasherCapacityType:    a.CapacityType,
		DishwasherCapacity:        a.Capacity,
		WaterConnection:           a.WaterConnection,
		DryerChoice:               a.DryerType,
		GasConsumption:            a.GasConsumption,
		FieldUtilizationFactor:    a.FieldUtilization,
		CookingWith:               a.CooktopType,
		FractionHighEfficiency:    a.FractionHighEfficiency,
	}
}

func newThermalBridge(i int, tb *constructions.ThermalBridge) ThermalBridge {
	return ThermalBridge{
		Index:    i,
		Name:     tb.DisplayName,
		Type:     int(tb.GroupType),
		Length:   tb.Length * tb.Quantity,
		PsiValue: tb.PsiValue,
		IdentNr:  tb.ID,
	}
}

func newClimateLocation(loc *climate.Location) ClimateLocation {
	c := loc.Climate
	return ClimateLocation{
		Selection:        6,
		Latitude:         loc.Site.Latitude,
		Longitude:        loc.Site.Longitude,
		HeightNNWeather:  c.StationElevation,
		HeightNNBuild:    loc.Site.Elevation,
		DUTC:             loc.Site.HoursFromUTC,
		ClimateZone:      loc.Site.ClimateZone,
		GroundThermal:    loc.Ground.GroundThermalConductivity,
		GroundCapacity:   loc.Ground.GroundHeatCapacity,
		GroundDensity:    loc.Ground.GroundDensity,
		DepthGroundwater: loc.Ground.DepthGroundwater,
		FlowGroundwater:  loc.Ground.FlowRateGroundwater,
		PHClimate: PHClimate{
			Name:                  c.DisplayName,
			DailyTemperatureSwing: c.DailyTempSwing,
			AverageWindSpeed:      c.AverageWindSpeed,
			TemperatureMonthly:    newFloatList(c.Monthly.AirTemps[:]),
			DewPointTemperature:   newFloatList(c.Monthly.DewpointTemps[:]),
			SkyTemperature:        newFloatList(c.Monthly.SkyTemps[:]),
			GroundTemperature:     newFloatList(c.Monthly.GroundTemps[:]),
			NorthSolarRadiation:   newFloatList(c.Radiation.North[:]),
			EastSolarRadiation:    newFloatList(c.Radiation.East[:]),
			SouthSolarRadiation:   newFloatList(c.Radiation.South[:]),
			WestSolarRadiation:    newFloatList(c.Radiation.West[:]),
			GlobalSolarRadiation:  newFloatList(c.Radiation.Global[:]),
			Heat1:                 newPeakLoad(c.PeakLoads.Heat1),
			Heat2:                 newPeakLoad(c.PeakLoads.Heat2),
			Cool1:                 newPeakLoad(c.PeakLoads.Cool1),
			Cool2:                 newPeakLoad(c.PeakLoads.Cool2),
		},
		SourceFactors: newList(mapIndexed(loc.SiteToSourceFactors, newFactor)),
		CO2Factors:    newList(mapIndexed(loc.SiteToCO2eFactors, newFactor)),
	}
}

func newPeakLoad(p climate.PeakLoad) PeakLoad {
	return PeakLoad{
		Temperature: p.Temperature,
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

func newFactor(i int, f climate.ConversionFactor) Factor {
	return Factor{Index: i, FuelName: f.FuelName, Value: f.Value, Unit: f.Unit}
}

func newPassivehouseData(c *project.Certification) PassivehouseData {
	b := c.Building
	foundations := make([]Foundation, 0, len(b.Foundations))
	for i, f := range b.Foundations {
		foundations = append(foundations, Foundation{
			Index:              i,
			Name:               f.DisplayName,
			SettingFloorSlab:   number(f.FoundationType),
			FloorSlabArea:      f.FloorSlabArea,
			UValueFloorSlab:    f.FloorSlabUValue,
			FloorSlabPerimeter: f.FloorSlabExposed,
		})
	}

	ph := PHBuilding{
		BuildingCategory:          number(c.Settings.BuildingCategory),
		OccupancyTypeResidential:  number(c.Settings.BuildingUseType),
		BuildingStatus:            number(c.Settings.BuildingStatus),
		BuildingType:              number(c.Settings.BuildingType),
		OccupancySettingMethod:    number(b.OccupancySettingMethod),
		NumberUnits:               b.NumOfUnits,
		CountStories:              b.NumOfFloors,
		EnvelopeAirtightnessN50:   b.AirtightnessN50,
		AirtightnessQ50:           b.AirtightnessQ50,
		SummerHRVHumidityRecovery: 4,
		IndoorTemperature:         b.SetPoints.Winter,
		OverheatingTemperature:    b.SetPoints.Summer,
		MechanicalRoomTemperature: b.MechRoomTemp,
		Foundations:               newList(foundations),
	}

	return PassivehouseData{
		PHCertificateCriteria: number(c.Settings.Standard),
		PHSelectionTargetData: 2,
		AnnualHeatingDemand:   c.Criteria.AnnualHeatingDemand,
		AnnualCoolingDemand:   c.Criteria.AnnualCoolingDemand,
		PeakHeatingLoad:       c.Criteria.PeakHeatingLoad,
		PeakCoolingLoad:       c.Criteria.PeakCoolingLoad,
		PrimaryEnergy:         c.Criteria.PrimaryEnergy,
		PHBuildings:           newList([]PHBuilding{ph}),
	}
}

// newHVAC writes all sub-systems as the devices of one system covering
// every zone. Ducts and pipes are collected from the sub-systems that carry
// them.
func newHVAC(mc *mech.Collection, zoneIDs []int) HVAC {
	subsystems := mc.Subsystems()
	devices := make([]Device, 0, len(subsystems))
	var dist Distribution
	var ducts []Duct
	var branch, recirc []Pipe

	for i, ss := range subsystems {
		devices = append(devices, newDevice(i, ss))
		if ss.Distribution == nil {
			continue
		}
		for _, d := range ss.Distribution.Ducts() {
			ducts = append(ducts, Duct{
				Index:             len(ducts),
				Name:              d.DisplayName,
				IdentNr:           d.ID,
				DuctDiameter:      d.DiameterMM(),
				DuctLength:        d.Length(),
				DuctType:          int(d.DuctType),
				AssignedVentUnits: newIntList(d.AssignedVentUnitIDs),
			})
		}
	}
	for _, ss := range mc.DHWTankSubsystems() {
		if ss.Distribution == nil {
			continue
		}
		for _, p := range ss.Distribution.BranchPiping {
			branch = append(branch, newPipe(len(branch), p))
		}
		for _, p := range ss.Distribution.RecircPiping {
			recirc = append(recirc, newPipe(len(recirc), p))
		}
	}
	dist.Ducts = newList(ducts)
	dist.BranchPiping = newList(branch)
	dist.RecircPiping = newList(recirc)

	coverage := make([]ZoneCoverage, 0, len(zoneIDs))
	for i, id := range zoneIDs {
		coverage = append(coverage, ZoneCoverage{
			Index:                    i,
			IdentNrZone:              id,
			CoverageHeating:          1,
			CoverageCooling:          1,
			CoverageVentilation:      1,
			CoverageHumidification:   1,
			CoverageDehumidification: 1,
		})
	}

	system := System{
		Name:          "Ideal Air System",
		Type:          1,
		IdentNr:       1,
		ZonesCoverage: newList(coverage),
		Devices:       newList(devices),
		Distribution:  dist,
	}
	return HVAC{Systems: newList([]System{system})}
}

func newPipe(i int, p *mech.PipeElement) Pipe {
	return Pipe{
		Index:        i,
		Name:         p.DisplayName,
		IdentNr:      p.ID,
		PipeDiameter: p.DiameterMM(),
		Length:       p.Length(),
	}
}

func newDevice(i int, ss *mech.SubSystem) Device {
	if ss.Device == nil {
		return Device{Index: i, Name: ss.DisplayName, IdentNr: ss.ID}
	}
	base := ss.Device.Base()
	usage := ss.UsageProfile()
	d := Device{
		Index:                   i,
		Name:                    ss.DisplayName,
		IdentNr:                 ss.ID,
		SystemType:              int(base.DeviceType),
		TypeDevice:              int(base.DeviceType),
		UsedForHeating:          usage.SpaceHeating,
		UsedForDHW:              usage.DHWHeating,
		UsedForCooling:          usage.Cooling,
		UsedForVentilation:      usage.Ventilation,
		UsedForHumidification:   usage.Humidification,
		UsedForDehumidification: usage.Dehumidification,
		Quantity:                base.Quantity,
		PercentCoverage:         base.PercentCoverage,
	}

	switch dev := ss.Device.(type) {
	case *mech.Ventilator:
		p := dev.Params
		d.Ventilation = &VentilationParams{
			HumidityRecoveryEfficiency: p.LatentHeatRecovery,
			ElectricEfficiency:         p.ElectricEfficiency,
			FrostProtection:            p.FrostProtectionReqd,
			Quantity:                   p.QuantityVentilators,
			HeatRecoveryEfficiency:     p.SensibleHeatRecovery,
			InConditionedSpace:         p.InConditionedSpace,
			DefrostRequired:            p.TemperatureBelowDefrostUsed,
		}
	case *mech.HeatPumpAnnual:
		d.HeatPump = &HeatPumpParams{
			HPType:          int(dev.HeatPumpType()),
			AnnualCOP:       ptr(dev.Params.AnnualCOP),
			TotalSystemPerf: dev.Params.TotalSystemPerfRatio,
		}
	case *mech.HeatPumpMonthly:
		d.HeatPump = &HeatPumpParams{
			HPType:       int(dev.HeatPumpType()),
			RatedCOP1:    ptr(dev.Params.COP1),
			AmbientTemp1: ptr(dev.Params.AmbientTemp1),
			RatedCOP2:    ptr(dev.Params.COP2),
			AmbientTemp2: ptr(dev.Params.AmbientTemp2),
		}
	case *mech.HeatPumpHotWater:
		d.HeatPump = &HeatPumpParams{
			HPType:             int(dev.HeatPumpType()),
			AnnualCOP:          dev.Params.AnnualCOP,
			TotalSystemPerf:    dev.Params.TotalSystemPerfRatio,
			InConditionedSpace: dev.Params.InConditionedSpace,
		}
	case *mech.HeatPumpCombined:
		d.HeatPump = &HeatPumpParams{
			HPType:       int(dev.HeatPumpType()),
			AnnualCOP:    ptr(dev.Params.AnnualCOP),
			AnnualCOPDHW: ptr(dev.Params.AnnualCOPDHW),
		}
	case *mech.ElectricHeater:
		d.Boiler = &BoilerParams{}
	case *mech.FossilBoiler:
		p := dev.Params
		d.Boiler = &BoilerParams{
			EnergySourceBoilerType:  int(p.Fuel),
			CondensingBoiler:        p.Condensing,
			InConditionedSpace:      p.InConditionedSpace,
			BoilerEfficiency30:      p.EffiPL30,
			BoilerEfficiencyNominal: p.EffiPL100,
			MaximalBoilerPower:      p.RatedCapacity,
			AuxiliaryEnergy:         p.AuxEnergy,
			AuxiliaryEnergyDHW:      p.AuxEnergyDHW,
		}
	case *mech.WoodBoiler:
		p := dev.Params
		d.Boiler = &BoilerParams{
			EnergySourceBoilerType:  int(p.Fuel),
			InConditionedSpace:      p.InConditionedSpace,
			BoilerEfficiency30:      p.EffiPL30,
			BoilerEfficiencyNominal: p.EffiRatedHeatOutput,
			MaximalBoilerPower:      p.RatedCapacity,
		}
	case *mech.DistrictHeater:
		p := dev.Params
		d.Boiler = &BoilerParams{
			EnergyCarrier:          p.EnergyCarrier,
			SolarFractionHeating:   p.SolarFractionSpaceHeating,
			SolarFractionDHW:       p.SolarFractionDHW,
			UtilFactorHeatTransfer: p.UtilFactHeatTransfer,
		}
	case mech.Cooler:
		d.Cooling = newCoolingParams(dev)
	case *mech.HotWaterTank:
		p := dev.Params
		d.Tank = &TankParams{
			SolarThermalStorageCapacity: p.StorageCapacity,
			StorageLossesStandby:        p.StandbyLosses,
			TankType:                    p.TankType,
			InConditionedSpace:          p.InConditionedSpace,
			StandbyFraction:             p.StandbyFraction,
			StorageLossRate:             p.StorageLossRate,
			TankRoomTemp:                p.RoomTemp,
			TankWaterTemp:               p.WaterTemp,
			Quantity:                    p.Quantity,
		}
	}
	return d
}

func newCoolingParams(c mech.Cooler) *CoolingParams {
	out := &CoolingParams{CoolingType: int(c.CoolingType())}
	switch dev := c.(type) {
	case *mech.CoolerVentilation:
		out.SingleSpeed = dev.Params.SingleSpeed
		out.MinCoilTemp = dev.Params.MinCoilTemp
		out.Capacity = dev.Params.Capacity
		out.AnnualCOP = dev.Params.AnnualCOP
	case *mech.CoolerRecirculation:
		out.SingleSpeed = dev.Params.SingleSpeed
		out.FlowRateVariable = dev.Params.FlowRateVariable
		out.MinCoilTemp = dev.Params.MinCoilTemp
		out.Capacity = dev.Params.Capacity
		out.FlowRate = dev.Params.FlowRateM3h
		out.AnnualCOP = dev.Params.AnnualCOP
	case *mech.CoolerDehumidification:
		out.UsefulHeatLoss = dev.Params.UsefulHeatLoss
		out.AnnualCOP = dev.Params.AnnualCOP
	case *mech.CoolerPanel:
		out.AnnualCOP = dev.Params.AnnualCOP
	}
	return out
}

func ptr(v float64) *float64 {
	return &v
}

// number is the 1-based enum position, or 0 when unset.
func number(e *enums.Enumerable) int {
	if e == nil {
		return 0
	}
	return e.Number()
}

func appliances(z *building.Zone) []*elec.Appliance {
	if z.Appliances == nil {
		return nil
	}
	return z.Appliances.Appliances()
}
