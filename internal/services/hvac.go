package services

import (
	phxerrors "github.com/stwalsh4118/phx/internal/errors"
	"github.com/stwalsh4118/phx/internal/logger"
	"github.com/stwalsh4118/phx/internal/models/enums"
	"github.com/stwalsh4118/phx/internal/models/mech"
	"github.com/stwalsh4118/phx/internal/models/project"
	"github.com/stwalsh4118/phx/internal/source"
)

type heatingBuilder func(h *source.HeatingSystem) (mech.Device, error)

type coolingBuilder func(c *source.CoolingSystem) mech.Device

// heatingDevices maps source heating-system type tags to device builders.
var heatingDevices = map[string]heatingBuilder{
	"PhHeaterElectric": func(h *source.HeatingSystem) (mech.Device, error) {
		return mech.NewElectricHeater(h.DisplayName), nil
	},
	"PhHeaterBoilerFossil": func(h *source.HeatingSystem) (mech.Device, error) {
		d := mech.NewFossilBoiler(h.DisplayName)
		if h.Fuel != "" {
			fuel, err := enums.ParseFuelType(h.Fuel)
			if err != nil {
				return nil, err
			}
			d.Params.Fuel = fuel
		}
		d.Params.Condensing = h.Condensing
		d.Params.InConditionedSpace = h.InConditionedSpace
		d.Params.EffiPL30 = h.EffiPL30
		d.Params.EffiPL100 = h.EffiPL100
		d.Params.RatedCapacity = h.RatedCapacity
		d.Params.AuxEnergy = h.AuxEnergy
		d.Params.AuxEnergyDHW = h.AuxEnergyDHW
		return d, nil
	},
	"PhHeaterBoilerWood": func(h *source.HeatingSystem) (mech.Device, error) {
		d := mech.NewWoodBoiler(h.DisplayName)
		if h.Fuel != "" {
			fuel, err := enums.ParseFuelType(h.Fuel)
			if err != nil {
				return nil, err
			}
			d.Params.Fuel = fuel
		}
		d.Params.InConditionedSpace = h.InConditionedSpace
		d.Params.EffiRatedHeatOutput = h.EffiRatedHeatOutput
		d.Params.EffiPL30 = h.EffiPL30
		d.Params.RatedCapacity = h.RatedCapacity
		if h.DemandBasicOperation != nil {
			d.Params.DemandBasicOperation = *h.DemandBasicOperation
		}
		d.Params.OccupantArea = h.OccupantArea
		return d, nil
	},
	"PhHeaterDistrict": func(h *source.HeatingSystem) (mech.Device, error) {
		d := mech.NewDistrictHeater(h.DisplayName)
		if h.EnergyCarrier != "" {
			d.Params.EnergyCarrier = h.EnergyCarrier
		}
		d.Params.SolarFractionSpaceHeating = h.SolarFractionSpaceHeating
		d.Params.SolarFractionDHW = h.SolarFractionDHW
		if h.UtilFactHeatTransfer > 0 {
			d.Params.UtilFactHeatTransfer = h.UtilFactHeatTransfer
		}
		return d, nil
	},
	"PhHeatPumpAnnual": func(h *source.HeatingSystem) (mech.Device, error) {
		d := mech.NewHeatPumpAnnual(h.DisplayName)
		d.Params.AnnualCOP = h.AnnualCOP
		d.Params.TotalSystemPerfRatio = h.TotalSystemPerfRatio
		return d, nil
	},
	"PhHeatPumpRatedMonthly": func(h *source.HeatingSystem) (mech.Device, error) {
		d := mech.NewHeatPumpMonthly(h.DisplayName)
		d.Params = mech.HeatPumpMonthlyParams{
			COP1:         h.COP1,
			AmbientTemp1: h.AmbientTemp1,
			COP2:         h.COP2,
			AmbientTemp2: h.AmbientTemp2,
		}
		return d, nil
	},
	"PhHeatPumpCombined": func(h *source.HeatingSystem) (mech.Device, error) {
		d := mech.NewHeatPumpCombined(h.DisplayName)
		d.Params.AnnualCOP = h.AnnualCOP
		d.Params.AnnualCOPDHW = h.AnnualCOPDHW
		return d, nil
	},
}

// hotWaterDevices maps source DHW heater type tags to device builders. Every
// DHW heater serves hot water only.
var hotWaterDevices = map[string]heatingBuilder{
	"PhHeaterElectric":     dhwOnly(heatingDevices["PhHeaterElectric"]),
	"PhHeaterBoilerFossil": dhwOnly(heatingDevices["PhHeaterBoilerFossil"]),
	"PhHeaterBoilerWood":   dhwOnly(heatingDevices["PhHeaterBoilerWood"]),
	"PhHeaterDistrict":     dhwOnly(heatingDevices["PhHeaterDistrict"]),
	"PhHeatPumpHotWater": func(h *source.HeatingSystem) (mech.Device, error) {
		d := mech.NewHeatPumpHotWater(h.DisplayName)
		if h.AnnualCOP > 0 {
			d.Params.AnnualCOP = mech.Float(h.AnnualCOP)
		}
		d.Params.TotalSystemPerfRatio = h.TotalSystemPerfRatio
		d.Params.InConditionedSpace = h.InConditionedSpace
		return d, nil
	},
}

func dhwOnly(build heatingBuilder) heatingBuilder {
	return func(h *source.HeatingSystem) (mech.Device, error) {
		d, err := build(h)
		if err != nil {
			return nil, err
		}
		d.Base().Usage = mech.UsageProfile{DHWHeating: true}
		return d, nil
	}
}

// coolingDevices maps source cooling-system type tags to device builders.
var coolingDevices = map[string]coolingBuilder{
	"PhCoolingVentilation": func(c *source.CoolingSystem) mech.Device {
		d := mech.NewCoolerVentilation(c.DisplayName)
		d.Params = mech.CoolerVentilationParams{
			SingleSpeed: c.SingleSpeed,
			MinCoilTemp: c.MinCoilTemp,
			Capacity:    c.Capacity,
			AnnualCOP:   c.AnnualCOP,
		}
		return d
	},
	"PhCoolingRecirculation": func(c *source.CoolingSystem) mech.Device {
		d := mech.NewCoolerRecirculation(c.DisplayName)
		d.Params = mech.CoolerRecirculationParams{
			SingleSpeed:      c.SingleSpeed,
			FlowRateVariable: c.FlowRateVariable,
			MinCoilTemp:      c.MinCoilTemp,
			Capacity:         c.Capacity,
			AnnualCOP:        c.AnnualCOP,
			FlowRateM3h:      c.FlowRateM3h,
		}
		return d
	},
	"PhCoolingDehumidification": func(c *source.CoolingSystem) mech.Device {
		d := mech.NewCoolerDehumidification(c.DisplayName)
		d.Params = mech.CoolerDehumidificationParams{
			UsefulHeatLoss: c.UsefulHeatLoss,
			AnnualCOP:      c.AnnualCOP,
		}
		return d
	},
	"PhCoolingPanel": func(c *source.CoolingSystem) mech.Device {
		d := mech.NewCoolerPanel(c.DisplayName)
		d.Params.AnnualCOP = c.AnnualCOP
		return d
	},
}

// applyUnit copies the unit's sizing onto the device envelope.
func applyUnit(d mech.Device, u *source.Unit) {
	base := d.Base()
	if u.DisplayName != "" {
		base.DisplayName = u.DisplayName
	}
	if u.Quantity > 0 {
		base.Quantity = u.Quantity
	}
	if u.PercentCoverage > 0 {
		base.PercentCoverage = u.PercentCoverage
	}
}

// hostsOf returns the distinct rooms hosting the merged room's spaces, in
// space order. Spaces without a host fall back to the merged room.
func hostsOf(merged *source.Room) []*source.Room {
	var hosts []*source.Room
	seen := make(map[*source.Room]bool)
	for _, sp := range merged.Properties.Ph.Spaces {
		host := sp.Host
		if host == nil {
			host = merged
		}
		if seen[host] {
			continue
		}
		seen[host] = true
		hosts = append(hosts, host)
	}
	if len(hosts) == 0 {
		hosts = append(hosts, merged)
	}
	return hosts
}

// mechInstaller adds sub-systems to one variant's collection.
type mechInstaller struct {
	variant *project.Variant
	log     *logger.Logger
}

// install returns the sub-system stored under key, building and inserting
// it first when the key is new. The sub-system id is written back onto the
// source unit either way.
func (m *mechInstaller) install(unit *source.Unit, build func() (mech.Device, *mech.Distribution, error)) (*mech.SubSystem, error) {
	key := unit.Key()
	if existing := m.variant.Mech.GetMechSubsystemByKey(key); existing != nil {
		unit.IDNum = existing.ID
		return existing, nil
	}

	device, dist, err := build()
	if err != nil {
		return nil, err
	}
	applyUnit(device, unit)

	ss := mech.NewSubSystem(displayName(unit.DisplayName, unit.Identifier), device)
	ss.Distribution = dist
	m.variant.Mech.AddNewMechSubsystem(key, ss)
	unit.IDNum = ss.ID

	m.log.Debug("Installed mechanical subsystem", map[string]interface{}{
		"key":         key,
		"id":          ss.ID,
		"device_type": device.Base().DeviceType.String(),
	})
	return ss, nil
}

// addMechSubsystems installs, in order, ventilation, heating, cooling, DHW
// heaters and DHW storage for every room hosting a space of merged.
func addMechSubsystems(variant *project.Variant, merged *source.Room, log *logger.Logger) error {
	m := &mechInstaller{variant: variant, log: log}
	hosts := hostsOf(merged)

	steps := []func(*source.RoomPhHvacProperties) error{
		m.addVentilation,
		m.addHeating,
		m.addCooling,
		m.addHotWaterHeaters,
		m.addHotWaterTanks,
	}
	for _, step := range steps {
		for _, host := range hosts {
			hvac := host.Properties.PhHvac
			if hvac == nil {
				continue
			}
			if err := step(hvac); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *mechInstaller) addVentilation(hvac *source.RoomPhHvacProperties) error {
	sys := hvac.VentilationSystem
	if sys == nil || sys.VentilationUnit == nil {
		return nil
	}
	unit := sys.VentilationUnit

	ss, err := m.install(&unit.Unit, func() (mech.Device, *mech.Distribution, error) {
		d := mech.NewVentilator(unit.DisplayName)
		d.Params.SensibleHeatRecovery = unit.SensibleHeatRecovery
		d.Params.LatentHeatRecovery = unit.LatentHeatRecovery
		d.Params.ElectricEfficiency = unit.ElectricEfficiency
		d.Params.FrostProtectionReqd = unit.FrostProtectionReqd
		d.Params.TemperatureBelowDefrostUsed = unit.TemperatureBelowDefrostUsed
		d.Params.InConditionedSpace = unit.InConditionedSpace
		if unit.Quantity > 0 {
			d.Params.QuantityVentilators = unit.Quantity
		}

		dist := &mech.Distribution{}
		for _, src := range sys.SupplyDucting {
			dist.SupplyDucts = append(dist.SupplyDucts, buildDuct(src, mech.DuctTypeSupply))
		}
		for _, src := range sys.ExhaustDucting {
			dist.ExhaustDucts = append(dist.ExhaustDucts, buildDuct(src, mech.DuctTypeExhaust))
		}
		return d, dist, nil
	})
	if err != nil {
		return err
	}

	if ss.Distribution != nil {
		for _, duct := range ss.Distribution.Ducts() {
			if len(duct.AssignedVentUnitIDs) == 0 {
				duct.AssignedVentUnitIDs = []int{ss.ID}
			}
		}
	}
	return nil
}

func buildDuct(src *source.Duct, dt mech.DuctType) *mech.Duct {
	d := mech.NewDuct(displayName(src.DisplayName, src.Identifier), dt)
	for _, s := range src.Segments {
		d.AddSegment(&mech.DuctSegment{
			Identifier:             s.Identifier,
			DisplayName:            s.DisplayName,
			Length:                 s.Length,
			Diameter:               s.Diameter,
			Height:                 s.Height,
			Width:                  s.Width,
			InsulationThickness:    s.InsulationThickness,
			InsulationConductivity: s.InsulationConductivity,
			InsulationReflective:   s.InsulationReflective,
		})
	}
	return d
}

func (m *mechInstaller) addHeating(hvac *source.RoomPhHvacProperties) error {
	for _, h := range hvac.HeatingSystems {
		_, err := m.install(&h.Unit, func() (mech.Device, *mech.Distribution, error) {
			build, ok := heatingDevices[h.Type]
			if !ok {
				return nil, nil, phxerrors.UnknownEquipmentType(h.Type, sortedKeys(heatingDevices))
			}
			d, err := build(h)
			return d, nil, err
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *mechInstaller) addCooling(hvac *source.RoomPhHvacProperties) error {
	for _, c := range hvac.CoolingSystems {
		_, err := m.install(&c.Unit, func() (mech.Device, *mech.Distribution, error) {
			build, ok := coolingDevices[c.Type]
			if !ok {
				return nil, nil, phxerrors.UnknownEquipmentType(c.Type, sortedKeys(coolingDevices))
			}
			return build(c), nil, nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *mechInstaller) addHotWaterHeaters(hvac *source.RoomPhHvacProperties) error {
	if hvac.HotWaterSystem == nil {
		return nil
	}
	for _, h := range hvac.HotWaterSystem.Heaters {
		_, err := m.install(&h.Unit, func() (mech.Device, *mech.Distribution, error) {
			build, ok := hotWaterDevices[h.Type]
			if !ok {
				return nil, nil, phxerrors.UnknownEquipmentType(h.Type, sortedKeys(hotWaterDevices))
			}
			d, err := build(&h.HeatingSystem)
			return d, nil, err
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// addHotWaterTanks installs each tank. The system's branch and recirculation
// piping is attached to the first tank.
func (m *mechInstaller) addHotWaterTanks(hvac *source.RoomPhHvacProperties) error {
	sys := hvac.HotWaterSystem
	if sys == nil {
		return nil
	}
	for i, t := range sys.Tanks() {
		withPiping := i == 0
		_, err := m.install(&t.Unit, func() (mech.Device, *mech.Distribution, error) {
			d := mech.NewHotWaterTank(t.DisplayName)
			d.Params = mech.HotWaterTankParams{
				TankType:           t.TankType,
				Quantity:           d.Params.Quantity,
				InConditionedSpace: t.InConditionedSpace,
				StorageLossRate:    t.StorageLossRate,
				StorageCapacity:    t.StorageCapacity,
				StandbyLosses:      t.StandbyLosses,
				StandbyFraction:    t.StandbyFraction,
				RoomTemp:           t.RoomTemp,
				WaterTemp:          t.WaterTemp,
			}
			if t.Quantity > 0 {
				d.Params.Quantity = t.Quantity
			}
			if !withPiping {
				return d, nil, nil
			}
			return d, buildPiping(sys), nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func buildPiping(sys *source.HotWaterSystem) *mech.Distribution {
	dist := &mech.Distribution{}
	for _, p := range sys.BranchPiping {
		dist.BranchPiping = append(dist.BranchPiping, buildPipe(p))
	}
	for _, p := range sys.RecircPiping {
		dist.RecircPiping = append(dist.RecircPiping, buildPipe(p))
	}
	if dist.IsEmpty() {
		return nil
	}
	return dist
}

func buildPipe(src *source.Pipe) *mech.PipeElement {
	p := mech.NewPipeElement(displayName(src.DisplayName, src.Identifier))
	for _, s := range src.Segments {
		p.AddSegment(&mech.PipeSegment{
			Identifier:             s.Identifier,
			DisplayName:            s.DisplayName,
			Material:               s.Material,
			Length:                 s.Length,
			DiameterMM:             s.DiameterMM,
			InsulationThickness:    s.InsulationThickness,
			InsulationConductivity: s.InsulationConductivity,
			InsulationReflective:   s.InsulationReflective,
			WaterTemp:              s.WaterTemp,
			DailyPeriod:            s.DailyPeriod,
		})
	}
	return p
}
