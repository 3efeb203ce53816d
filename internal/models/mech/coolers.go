package mech

import "github.com/stwalsh4118/phx/internal/models/enums"

// Cooler is implemented by every cooling device variant.
type Cooler interface {
	Device
	CoolingType() enums.CoolingType
}

var cooling = UsageProfile{Cooling: true}

// CoolerVentilationParams describes cooling through the supply air.
type CoolerVentilationParams struct {
	SingleSpeed bool
	MinCoilTemp float64 // °C
	Capacity    float64 // kW
	AnnualCOP   float64
}

// Add averages the numeric fields and ORs SingleSpeed.
func (p CoolerVentilationParams) Add(o CoolerVentilationParams) CoolerVentilationParams {
	return CoolerVentilationParams{
		SingleSpeed: p.SingleSpeed || o.SingleSpeed,
		MinCoilTemp: mean(p.MinCoilTemp, o.MinCoilTemp),
		Capacity:    mean(p.Capacity, o.Capacity),
		AnnualCOP:   mean(p.AnnualCOP, o.AnnualCOP),
	}
}

// CoolerVentilation cools through the ventilation supply air.
type CoolerVentilation struct {
	DeviceBase
	Params CoolerVentilationParams
}

// NewCoolerVentilation creates a supply-air cooler.
func NewCoolerVentilation(displayName string) *CoolerVentilation {
	return &CoolerVentilation{
		DeviceBase: newDeviceBase(enums.DeviceTypeHeatPump, displayName, cooling),
		Params:     CoolerVentilationParams{MinCoilTemp: 12, Capacity: 10, AnnualCOP: 4},
	}
}

// CoolingType returns VENTILATION.
func (c *CoolerVentilation) CoolingType() enums.CoolingType { return enums.CoolingTypeVentilation }

// Add sums two supply-air coolers.
func (c *CoolerVentilation) Add(o *CoolerVentilation) *CoolerVentilation {
	return &CoolerVentilation{
		DeviceBase: c.DeviceBase.add(&o.DeviceBase),
		Params:     c.Params.Add(o.Params),
	}
}

// CoolerRecirculationParams describes a recirculating air cooler.
type CoolerRecirculationParams struct {
	SingleSpeed      bool
	FlowRateVariable bool
	MinCoilTemp      float64 // °C
	Capacity         float64 // kW
	AnnualCOP        float64
	FlowRateM3h      float64
}

// Add averages the numeric fields and ORs the flags.
func (p CoolerRecirculationParams) Add(o CoolerRecirculationParams) CoolerRecirculationParams {
	return CoolerRecirculationParams{
		SingleSpeed:      p.SingleSpeed || o.SingleSpeed,
		FlowRateVariable: p.FlowRateVariable || o.FlowRateVariable,
		MinCoilTemp:      mean(p.MinCoilTemp, o.MinCoilTemp),
		Capacity:         mean(p.Capacity, o.Capacity),
		AnnualCOP:        mean(p.AnnualCOP, o.AnnualCOP),
		FlowRateM3h:      mean(p.FlowRateM3h, o.FlowRateM3h),
	}
}

// CoolerRecirculation is a recirculating (split/mini-split) cooler.
type CoolerRecirculation struct {
	DeviceBase
	Params CoolerRecirculationParams
}

// NewCoolerRecirculation creates a recirculation cooler.
func NewCoolerRecirculation(displayName string) *CoolerRecirculation {
	return &CoolerRecirculation{
		DeviceBase: newDeviceBase(enums.DeviceTypeHeatPump, displayName, cooling),
		Params: CoolerRecirculationParams{
			FlowRateVariable: true,
			MinCoilTemp:      12,
			Capacity:         10,
			AnnualCOP:        4,
			FlowRateM3h:      100,
		},
	}
}

// CoolingType returns RECIRCULATION.
func (c *CoolerRecirculation) CoolingType() enums.CoolingType { return enums.CoolingTypeRecirculation }

// Add sums two recirculation coolers.
func (c *CoolerRecirculation) Add(o *CoolerRecirculation) *CoolerRecirculation {
	return &CoolerRecirculation{
		DeviceBase: c.DeviceBase.add(&o.DeviceBase),
		Params:     c.Params.Add(o.Params),
	}
}

// CoolerDehumidificationParams describes a dehumidifier.
type CoolerDehumidificationParams struct {
	UsefulHeatLoss bool
	AnnualCOP      float64
}

// Add averages the COP and ORs UsefulHeatLoss.
func (p CoolerDehumidificationParams) Add(o CoolerDehumidificationParams) CoolerDehumidificationParams {
	return CoolerDehumidificationParams{
		UsefulHeatLoss: p.UsefulHeatLoss || o.UsefulHeatLoss,
		AnnualCOP:      mean(p.AnnualCOP, o.AnnualCOP),
	}
}

// CoolerDehumidification is a dedicated dehumidifier.
type CoolerDehumidification struct {
	DeviceBase
	Params CoolerDehumidificationParams
}

// NewCoolerDehumidification creates a dehumidifier serving cooling and
// dehumidification.
func NewCoolerDehumidification(displayName string) *CoolerDehumidification {
	return &CoolerDehumidification{
		DeviceBase: newDeviceBase(enums.DeviceTypeHeatPump, displayName, UsageProfile{Cooling: true, Dehumidification: true}),
		Params:     CoolerDehumidificationParams{AnnualCOP: 4},
	}
}

// CoolingType returns DEHUMIDIFICATION.
func (c *CoolerDehumidification) CoolingType() enums.CoolingType {
	return enums.CoolingTypeDehumidification
}

// Add sums two dehumidifiers.
func (c *CoolerDehumidification) Add(o *CoolerDehumidification) *CoolerDehumidification {
	return &CoolerDehumidification{
		DeviceBase: c.DeviceBase.add(&o.DeviceBase),
		Params:     c.Params.Add(o.Params),
	}
}

// CoolerPanelParams describes radiant panel cooling.
type CoolerPanelParams struct {
	AnnualCOP float64
}

// Add averages the COP.
func (p CoolerPanelParams) Add(o CoolerPanelParams) CoolerPanelParams {
	return CoolerPanelParams{AnnualCOP: mean(p.AnnualCOP, o.AnnualCOP)}
}

// CoolerPanel is radiant panel cooling.
type CoolerPanel struct {
	DeviceBase
	Params CoolerPanelParams
}

// NewCoolerPanel creates a panel cooler.
func NewCoolerPanel(displayName string) *CoolerPanel {
	return &CoolerPanel{
		DeviceBase: newDeviceBase(enums.DeviceTypeHeatPump, displayName, cooling),
		Params:     CoolerPanelParams{AnnualCOP: 4},
	}
}

// CoolingType returns PANEL.
func (c *CoolerPanel) CoolingType() enums.CoolingType { return enums.CoolingTypePanel }

// Add sums two panel coolers.
func (c *CoolerPanel) Add(o *CoolerPanel) *CoolerPanel {
	return &CoolerPanel{
		DeviceBase: c.DeviceBase.add(&o.DeviceBase),
		Params:     c.Params.Add(o.Params),
	}
}
