package source

// RoomPhHvacProperties holds the mechanical equipment serving a room.
type RoomPhHvacProperties struct {
	VentilationSystem *VentilationSystem `json:"ventilation_system"`
	HeatingSystems    []*HeatingSystem   `json:"heating_systems" validate:"dive,required"`
	CoolingSystems    []*CoolingSystem   `json:"cooling_systems" validate:"dive,required"`
	HotWaterSystem    *HotWaterSystem    `json:"hot_water_system"`
}

// Unit is the identity shared by every HVAC unit. IDNum is written back by
// the converter once a sub-system has been built for the unit.
type Unit struct {
	Identifier      string  `json:"identifier" validate:"required"`
	DisplayName     string  `json:"display_name"`
	IDNum           int     `json:"id_num"`
	Quantity        int     `json:"quantity"`
	PercentCoverage float64 `json:"percent_coverage"`
}

// Key is the collection key of the unit.
func (u *Unit) Key() string {
	return u.Identifier
}

// VentilationSystem is a ventilation unit with its ducting.
type VentilationSystem struct {
	Identifier      string           `json:"identifier" validate:"required"`
	DisplayName     string           `json:"display_name"`
	SysType         int              `json:"sys_type"`
	VentilationUnit *VentilationUnit `json:"ventilation_unit"`
	SupplyDucting   []*Duct          `json:"supply_ducting" validate:"dive,required"`
	ExhaustDucting  []*Duct          `json:"exhaust_ducting" validate:"dive,required"`
}

// VentilationUnit is a heat-recovery ventilator.
type VentilationUnit struct {
	Unit
	SensibleHeatRecovery        float64 `json:"sensible_heat_recovery" validate:"gte=0,lte=1"`
	LatentHeatRecovery          float64 `json:"latent_heat_recovery" validate:"gte=0,lte=1"`
	ElectricEfficiency          float64 `json:"electric_efficiency" validate:"gte=0"`
	FrostProtectionReqd         bool    `json:"frost_protection_reqd"`
	TemperatureBelowDefrostUsed float64 `json:"temperature_below_defrost_used"`
	InConditionedSpace          bool    `json:"in_conditioned_space"`
}

// Duct is a run of duct segments.
type Duct struct {
	Identifier  string         `json:"identifier"`
	DisplayName string         `json:"display_name"`
	Segments    []*DuctSegment `json:"segments" validate:"dive,required"`
}

// DuctSegment is one straight duct run.
type DuctSegment struct {
	Identifier             string  `json:"identifier"`
	DisplayName            string  `json:"display_name"`
	Length                 float64 `json:"length" validate:"gte=0"`
	Diameter               float64 `json:"diameter_mm"`
	Height                 float64 `json:"height_mm"`
	Width                  float64 `json:"width_mm"`
	InsulationThickness    float64 `json:"insulation_thickness_mm"`
	InsulationConductivity float64 `json:"insulation_conductivity"`
	InsulationReflective   bool    `json:"insulation_reflective"`
}

// HeatingSystem is any space-heating device. Type selects the device
// variant; only the fields that variant reads are used.
type HeatingSystem struct {
	Unit
	Type                      string   `json:"type" validate:"required"`
	Fuel                      string   `json:"fuel"`
	Condensing                bool     `json:"condensing"`
	InConditionedSpace        bool     `json:"in_conditioned_space"`
	EffiPL30                  float64  `json:"effi_at_30_perc_load"`
	EffiPL100                 float64  `json:"effi_at_nominal_power"`
	RatedCapacity             float64  `json:"rated_capacity"`
	AuxEnergy                 *float64 `json:"aux_energy"`
	AuxEnergyDHW              *float64 `json:"aux_energy_dhw"`
	EffiRatedHeatOutput       float64  `json:"effi_at_rated_heat_output"`
	DemandBasicOperation      *float64 `json:"demand_basic_operation"`
	OccupantArea              *float64 `json:"occupant_area"`
	EnergyCarrier             string   `json:"energy_carrier"`
	SolarFractionSpaceHeating float64  `json:"solar_fraction_space_heating"`
	SolarFractionDHW          float64  `json:"solar_fraction_dhw"`
	UtilFactHeatTransfer      float64  `json:"util_fact_heat_transfer"`
	AnnualCOP                 float64  `json:"annual_COP"`
	AnnualCOPDHW              float64  `json:"annual_COP_dhw"`
	TotalSystemPerfRatio      *float64 `json:"total_system_perf_ratio"`
	COP1                      float64  `json:"COP_1"`
	AmbientTemp1              float64  `json:"ambient_temp_1"`
	COP2                      float64  `json:"COP_2"`
	AmbientTemp2              float64  `json:"ambient_temp_2"`
}

// CoolingSystem is any cooling device.
type CoolingSystem struct {
	Unit
	Type             string  `json:"type" validate:"required"`
	SingleSpeed      bool    `json:"single_speed"`
	MinCoilTemp      float64 `json:"min_coil_temp"`
	Capacity         float64 `json:"capacity"`
	AnnualCOP        float64 `json:"annual_COP"`
	FlowRateVariable bool    `json:"flow_rate_variable"`
	FlowRateM3h      float64 `json:"flow_rate_m3_hr"`
	UsefulHeatLoss   bool    `json:"useful_heat_loss"`
}

// HotWaterSystem bundles DHW heaters, tanks and piping.
type HotWaterSystem struct {
	Identifier   string            `json:"identifier"`
	DisplayName  string            `json:"display_name"`
	Heaters      []*HotWaterHeater `json:"heaters" validate:"dive,required"`
	Tank1        *HotWaterTank     `json:"tank_1"`
	Tank2        *HotWaterTank     `json:"tank_2"`
	TankBuffer   *HotWaterTank     `json:"tank_buffer"`
	TankSolar    *HotWaterTank     `json:"tank_solar"`
	BranchPiping []*Pipe           `json:"distribution_piping" validate:"dive,required"`
	RecircPiping []*Pipe           `json:"recirc_piping" validate:"dive,required"`
}

// Tanks returns the tanks that are present, in slot order.
func (h *HotWaterSystem) Tanks() []*HotWaterTank {
	var out []*HotWaterTank
	for _, t := range []*HotWaterTank{h.Tank1, h.Tank2, h.TankBuffer, h.TankSolar} {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

// HotWaterHeater is any DHW heating device. It reuses the heating-system
// fields.
type HotWaterHeater struct {
	HeatingSystem
}

// HotWaterTank is a DHW storage tank.
type HotWaterTank struct {
	Unit
	TankType           int     `json:"tank_type"`
	InConditionedSpace bool    `json:"in_conditioned_space"`
	StorageLossRate    float64 `json:"storage_loss_rate"`
	StorageCapacity    float64 `json:"storage_capacity" validate:"gte=0"`
	StandbyLosses      float64 `json:"standby_losses"`
	StandbyFraction    float64 `json:"standby_fraction" validate:"gte=0,lte=1"`
	RoomTemp           float64 `json:"room_temp"`
	WaterTemp          float64 `json:"water_temp"`
}

// Pipe is a DHW pipe element.
type Pipe struct {
	Identifier  string         `json:"identifier"`
	DisplayName string         `json:"display_name"`
	Segments    []*PipeSegment `json:"segments" validate:"dive,required"`
}

// PipeSegment is one straight pipe run.
type PipeSegment struct {
	Identifier             string  `json:"identifier"`
	DisplayName            string  `json:"display_name"`
	Material               string  `json:"material"`
	Length                 float64 `json:"length" validate:"gte=0"`
	DiameterMM             float64 `json:"diameter_mm"`
	InsulationThickness    float64 `json:"insulation_thickness_mm"`
	InsulationConductivity float64 `json:"insulation_conductivity"`
	InsulationReflective   bool    `json:"insulation_reflective"`
	WaterTemp              float64 `json:"water_temp_c"`
	DailyPeriod            float64 `json:"daily_period"`
}
