package mech

import "github.com/stwalsh4118/phx/internal/models/enums"

var spaceHeating = UsageProfile{SpaceHeating: true}

// ElectricHeaterParams is empty: direct electric heat has no parameters
// beyond the device envelope.
type ElectricHeaterParams struct{}

// Add returns the empty record.
func (p ElectricHeaterParams) Add(ElectricHeaterParams) ElectricHeaterParams {
	return ElectricHeaterParams{}
}

// ElectricHeater is a direct-electric resistance heater.
type ElectricHeater struct {
	DeviceBase
	Params ElectricHeaterParams
}

// NewElectricHeater creates an electric heater serving space heating.
func NewElectricHeater(displayName string) *ElectricHeater {
	return &ElectricHeater{
		DeviceBase: newDeviceBase(enums.DeviceTypeElectric, displayName, spaceHeating),
	}
}

// Add sums two electric heaters.
func (h *ElectricHeater) Add(o *ElectricHeater) *ElectricHeater {
	return &ElectricHeater{
		DeviceBase: h.DeviceBase.add(&o.DeviceBase),
		Params:     h.Params.Add(o.Params),
	}
}

// FossilBoilerParams describes a gas or oil boiler.
type FossilBoilerParams struct {
	Fuel               enums.FuelType
	Condensing         bool
	InConditionedSpace bool
	EffiPL30           float64
	EffiPL100          float64
	RatedCapacity      float64  // kW
	AuxEnergy          *float64 // kWh/a
	AuxEnergyDHW       *float64 // kWh/a
}

// Add averages capacity and efficiencies, ORs the flags and sums the optional
// auxiliary energies. The fuel comes from the left operand.
func (p FossilBoilerParams) Add(o FossilBoilerParams) FossilBoilerParams {
	return FossilBoilerParams{
		Fuel:               p.Fuel,
		Condensing:         p.Condensing || o.Condensing,
		InConditionedSpace: p.InConditionedSpace || o.InConditionedSpace,
		EffiPL30:           mean(p.EffiPL30, o.EffiPL30),
		EffiPL100:          mean(p.EffiPL100, o.EffiPL100),
		RatedCapacity:      mean(p.RatedCapacity, o.RatedCapacity),
		AuxEnergy:          safeAdd(p.AuxEnergy, o.AuxEnergy),
		AuxEnergyDHW:       safeAdd(p.AuxEnergyDHW, o.AuxEnergyDHW),
	}
}

// FossilBoiler is a gas or oil boiler.
type FossilBoiler struct {
	DeviceBase
	Params FossilBoilerParams
}

// NewFossilBoiler creates a gas boiler serving space heating.
func NewFossilBoiler(displayName string) *FossilBoiler {
	return &FossilBoiler{
		DeviceBase: newDeviceBase(enums.DeviceTypeBoiler, displayName, spaceHeating),
		Params: FossilBoilerParams{
			Fuel:               enums.FuelTypeGas,
			Condensing:         true,
			InConditionedSpace: true,
			EffiPL30:           0.98,
			EffiPL100:          0.94,
			RatedCapacity:      10,
		},
	}
}

// Add sums two fossil boilers.
func (b *FossilBoiler) Add(o *FossilBoiler) *FossilBoiler {
	return &FossilBoiler{
		DeviceBase: b.DeviceBase.add(&o.DeviceBase),
		Params:     b.Params.Add(o.Params),
	}
}

// WoodBoilerParams describes a log or pellet boiler.
type WoodBoilerParams struct {
	Fuel                 enums.FuelType
	InConditionedSpace   bool
	EffiRatedHeatOutput  float64
	EffiPL30             float64
	RatedCapacity        float64 // kW
	DemandBasicOperation float64 // W
	OccupantArea         *float64
}

// Add averages every numeric field and ORs the placement flag.
func (p WoodBoilerParams) Add(o WoodBoilerParams) WoodBoilerParams {
	return WoodBoilerParams{
		Fuel:                 p.Fuel,
		InConditionedSpace:   p.InConditionedSpace || o.InConditionedSpace,
		EffiRatedHeatOutput:  mean(p.EffiRatedHeatOutput, o.EffiRatedHeatOutput),
		EffiPL30:             mean(p.EffiPL30, o.EffiPL30),
		RatedCapacity:        mean(p.RatedCapacity, o.RatedCapacity),
		DemandBasicOperation: mean(p.DemandBasicOperation, o.DemandBasicOperation),
		OccupantArea:         safeAdd(p.OccupantArea, o.OccupantArea),
	}
}

// WoodBoiler is a log or pellet boiler.
type WoodBoiler struct {
	DeviceBase
	Params WoodBoilerParams
}

// NewWoodBoiler creates a log boiler serving space heating.
func NewWoodBoiler(displayName string) *WoodBoiler {
	return &WoodBoiler{
		DeviceBase: newDeviceBase(enums.DeviceTypeBoiler, displayName, spaceHeating),
		Params: WoodBoilerParams{
			Fuel:                enums.FuelTypeWoodLog,
			InConditionedSpace:  true,
			EffiRatedHeatOutput: 0.6,
			EffiPL30:            0.7,
			RatedCapacity:       15,
		},
	}
}

// Add sums two wood boilers.
func (b *WoodBoiler) Add(o *WoodBoiler) *WoodBoiler {
	return &WoodBoiler{
		DeviceBase: b.DeviceBase.add(&o.DeviceBase),
		Params:     b.Params.Add(o.Params),
	}
}

// DistrictHeaterParams describes a district heating connection.
type DistrictHeaterParams struct {
	EnergyCarrier             string
	SolarFractionSpaceHeating float64
	SolarFractionDHW          float64
	UtilFactHeatTransfer      float64
}

// Add averages the fractions. The energy carrier comes from the left operand.
func (p DistrictHeaterParams) Add(o DistrictHeaterParams) DistrictHeaterParams {
	return DistrictHeaterParams{
		EnergyCarrier:             p.EnergyCarrier,
		SolarFractionSpaceHeating: mean(p.SolarFractionSpaceHeating, o.SolarFractionSpaceHeating),
		SolarFractionDHW:          mean(p.SolarFractionDHW, o.SolarFractionDHW),
		UtilFactHeatTransfer:      mean(p.UtilFactHeatTransfer, o.UtilFactHeatTransfer),
	}
}

// DistrictHeater is a district heat connection.
type DistrictHeater struct {
	DeviceBase
	Params DistrictHeaterParams
}

// NewDistrictHeater creates a district heat connection serving space heating.
func NewDistrictHeater(displayName string) *DistrictHeater {
	return &DistrictHeater{
		DeviceBase: newDeviceBase(enums.DeviceTypeDistrictHeat, displayName, spaceHeating),
		Params: DistrictHeaterParams{
			EnergyCarrier:        "GAS",
			UtilFactHeatTransfer: 1.0,
		},
	}
}

// Add sums two district heaters.
func (h *DistrictHeater) Add(o *DistrictHeater) *DistrictHeater {
	return &DistrictHeater{
		DeviceBase: h.DeviceBase.add(&o.DeviceBase),
		Params:     h.Params.Add(o.Params),
	}
}
