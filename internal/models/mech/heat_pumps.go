package mech

import "github.com/stwalsh4118/phx/internal/models/enums"

// HeatPump is implemented by every heat pump variant.
type HeatPump interface {
	Device
	HeatPumpType() enums.HeatPumpType
}

// HeatPumpAnnualParams rates a heat pump by a single annual COP.
type HeatPumpAnnualParams struct {
	AnnualCOP            float64
	TotalSystemPerfRatio *float64
}

// Add averages both ratios.
func (p HeatPumpAnnualParams) Add(o HeatPumpAnnualParams) HeatPumpAnnualParams {
	return HeatPumpAnnualParams{
		AnnualCOP:            mean(p.AnnualCOP, o.AnnualCOP),
		TotalSystemPerfRatio: safeMean(p.TotalSystemPerfRatio, o.TotalSystemPerfRatio),
	}
}

// HeatPumpAnnual is a heat pump rated by annual COP.
type HeatPumpAnnual struct {
	DeviceBase
	Params HeatPumpAnnualParams
}

// NewHeatPumpAnnual creates an annual-COP heat pump serving space heating.
func NewHeatPumpAnnual(displayName string) *HeatPumpAnnual {
	return &HeatPumpAnnual{
		DeviceBase: newDeviceBase(enums.DeviceTypeHeatPump, displayName, spaceHeating),
		Params:     HeatPumpAnnualParams{AnnualCOP: 2.5},
	}
}

// HeatPumpType returns ANNUAL.
func (h *HeatPumpAnnual) HeatPumpType() enums.HeatPumpType { return enums.HeatPumpTypeAnnual }

// Add sums two annual heat pumps.
func (h *HeatPumpAnnual) Add(o *HeatPumpAnnual) *HeatPumpAnnual {
	return &HeatPumpAnnual{
		DeviceBase: h.DeviceBase.add(&o.DeviceBase),
		Params:     h.Params.Add(o.Params),
	}
}

// HeatPumpMonthlyParams rates a heat pump at two ambient temperatures.
type HeatPumpMonthlyParams struct {
	COP1         float64
	AmbientTemp1 float64
	COP2         float64
	AmbientTemp2 float64
}

// Add averages every rating point.
func (p HeatPumpMonthlyParams) Add(o HeatPumpMonthlyParams) HeatPumpMonthlyParams {
	return HeatPumpMonthlyParams{
		COP1:         mean(p.COP1, o.COP1),
		AmbientTemp1: mean(p.AmbientTemp1, o.AmbientTemp1),
		COP2:         mean(p.COP2, o.COP2),
		AmbientTemp2: mean(p.AmbientTemp2, o.AmbientTemp2),
	}
}

// HeatPumpMonthly is a heat pump with a two-point rating.
type HeatPumpMonthly struct {
	DeviceBase
	Params HeatPumpMonthlyParams
}

// NewHeatPumpMonthly creates a rated-monthly heat pump serving space heating.
func NewHeatPumpMonthly(displayName string) *HeatPumpMonthly {
	return &HeatPumpMonthly{
		DeviceBase: newDeviceBase(enums.DeviceTypeHeatPump, displayName, spaceHeating),
		Params:     HeatPumpMonthlyParams{COP1: 2.5, AmbientTemp1: -8.333, COP2: 3.5, AmbientTemp2: 8.333},
	}
}

// HeatPumpType returns RATED_MONTHLY.
func (h *HeatPumpMonthly) HeatPumpType() enums.HeatPumpType { return enums.HeatPumpTypeRatedMonthly }

// Add sums two rated-monthly heat pumps.
func (h *HeatPumpMonthly) Add(o *HeatPumpMonthly) *HeatPumpMonthly {
	return &HeatPumpMonthly{
		DeviceBase: h.DeviceBase.add(&o.DeviceBase),
		Params:     h.Params.Add(o.Params),
	}
}

// HeatPumpHotWaterParams describes a heat pump water heater. Every rating is
// optional in the source data.
type HeatPumpHotWaterParams struct {
	AnnualCOP            *float64
	TotalSystemPerfRatio *float64
	AnnualEnergyFactor   *float64
	InConditionedSpace   bool
}

// Add averages the present ratings and ORs the placement flag.
func (p HeatPumpHotWaterParams) Add(o HeatPumpHotWaterParams) HeatPumpHotWaterParams {
	return HeatPumpHotWaterParams{
		AnnualCOP:            safeMean(p.AnnualCOP, o.AnnualCOP),
		TotalSystemPerfRatio: safeMean(p.TotalSystemPerfRatio, o.TotalSystemPerfRatio),
		AnnualEnergyFactor:   safeMean(p.AnnualEnergyFactor, o.AnnualEnergyFactor),
		InConditionedSpace:   p.InConditionedSpace || o.InConditionedSpace,
	}
}

// HeatPumpHotWater is a heat pump water heater.
type HeatPumpHotWater struct {
	DeviceBase
	Params HeatPumpHotWaterParams
}

// NewHeatPumpHotWater creates a heat pump water heater serving DHW only.
func NewHeatPumpHotWater(displayName string) *HeatPumpHotWater {
	return &HeatPumpHotWater{
		DeviceBase: newDeviceBase(enums.DeviceTypeHeatPump, displayName, UsageProfile{DHWHeating: true}),
		Params:     HeatPumpHotWaterParams{InConditionedSpace: true},
	}
}

// HeatPumpType returns HOT_WATER.
func (h *HeatPumpHotWater) HeatPumpType() enums.HeatPumpType { return enums.HeatPumpTypeHotWater }

// Add sums two heat pump water heaters.
func (h *HeatPumpHotWater) Add(o *HeatPumpHotWater) *HeatPumpHotWater {
	return &HeatPumpHotWater{
		DeviceBase: h.DeviceBase.add(&o.DeviceBase),
		Params:     h.Params.Add(o.Params),
	}
}

// HeatPumpCombinedParams describes a heat pump serving both space heat and DHW.
type HeatPumpCombinedParams struct {
	AnnualCOP    float64
	AnnualCOPDHW float64
}

// Add averages both COPs.
func (p HeatPumpCombinedParams) Add(o HeatPumpCombinedParams) HeatPumpCombinedParams {
	return HeatPumpCombinedParams{
		AnnualCOP:    mean(p.AnnualCOP, o.AnnualCOP),
		AnnualCOPDHW: mean(p.AnnualCOPDHW, o.AnnualCOPDHW),
	}
}

// HeatPumpCombined is a heat pump serving space heating and DHW.
type HeatPumpCombined struct {
	DeviceBase
	Params HeatPumpCombinedParams
}

// NewHeatPumpCombined creates a combined heat pump.
func NewHeatPumpCombined(displayName string) *HeatPumpCombined {
	return &HeatPumpCombined{
		DeviceBase: newDeviceBase(enums.DeviceTypeHeatPump, displayName, UsageProfile{SpaceHeating: true, DHWHeating: true}),
		Params:     HeatPumpCombinedParams{AnnualCOP: 2.5, AnnualCOPDHW: 2.0},
	}
}

// HeatPumpType returns COMBINED.
func (h *HeatPumpCombined) HeatPumpType() enums.HeatPumpType { return enums.HeatPumpTypeCombined }

// Add sums two combined heat pumps.
func (h *HeatPumpCombined) Add(o *HeatPumpCombined) *HeatPumpCombined {
	return &HeatPumpCombined{
		DeviceBase: h.DeviceBase.add(&o.DeviceBase),
		Params:     h.Params.Add(o.Params),
	}
}
