package mech

import "github.com/stwalsh4118/phx/internal/models/enums"

// VentilatorParams are the heat-recovery ventilator parameters.
type VentilatorParams struct {
	SensibleHeatRecovery        float64
	LatentHeatRecovery          float64
	ElectricEfficiency          float64 // Wh/m3
	TemperatureBelowDefrostUsed float64 // °C
	QuantityVentilators         int
	FrostProtectionReqd         bool
	InConditionedSpace          bool
}

// Add averages efficiencies and temperatures, sums the unit count and ORs
// the flags.
func (p VentilatorParams) Add(o VentilatorParams) VentilatorParams {
	return VentilatorParams{
		SensibleHeatRecovery:        mean(p.SensibleHeatRecovery, o.SensibleHeatRecovery),
		LatentHeatRecovery:          mean(p.LatentHeatRecovery, o.LatentHeatRecovery),
		ElectricEfficiency:          mean(p.ElectricEfficiency, o.ElectricEfficiency),
		TemperatureBelowDefrostUsed: mean(p.TemperatureBelowDefrostUsed, o.TemperatureBelowDefrostUsed),
		QuantityVentilators:         p.QuantityVentilators + o.QuantityVentilators,
		FrostProtectionReqd:         p.FrostProtectionReqd || o.FrostProtectionReqd,
		InConditionedSpace:          p.InConditionedSpace || o.InConditionedSpace,
	}
}

// Ventilator is a mechanical ventilation unit.
type Ventilator struct {
	DeviceBase
	Params VentilatorParams
}

// NewVentilator creates a ventilator serving ventilation.
func NewVentilator(displayName string) *Ventilator {
	return &Ventilator{
		DeviceBase: newDeviceBase(enums.DeviceTypeVentilation, displayName, UsageProfile{Ventilation: true}),
		Params: VentilatorParams{
			SensibleHeatRecovery:        0.0,
			ElectricEfficiency:          0.45,
			TemperatureBelowDefrostUsed: -5,
			QuantityVentilators:         1,
			FrostProtectionReqd:         true,
			InConditionedSpace:          true,
		},
	}
}

// Add sums two ventilators into a new device.
func (v *Ventilator) Add(o *Ventilator) *Ventilator {
	return &Ventilator{
		DeviceBase: v.DeviceBase.add(&o.DeviceBase),
		Params:     v.Params.Add(o.Params),
	}
}
