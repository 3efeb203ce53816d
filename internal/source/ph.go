package source

import "fmt"

// Space is one PH space (a "room" in WUFI terms) inside a source room.
type Space struct {
	Identifier     string         `json:"identifier" validate:"required"`
	DisplayName    string         `json:"display_name"`
	Name           string         `json:"name"`
	Number         string         `json:"number"`
	Quantity       int            `json:"quantity"`
	FloorSegments  []FloorSegment `json:"floor_segments" validate:"dive"`
	AvgClearHeight float64        `json:"avg_clear_height" validate:"gte=0"`
	Ventilation    SpaceVentLoad  `json:"ventilation"`
	VentScheduleID string         `json:"vent_schedule"`

	// Host is the room the space came from. It is set while decoding and
	// survives room merging, so HVAC lookups reach the original room.
	Host *Room `json:"-" validate:"-"`
}

// FloorSegment is a floor area with its PH weighting factor.
type FloorSegment struct {
	Area            float64 `json:"area" validate:"gte=0"`
	WeightingFactor float64 `json:"weighting_factor" validate:"gte=0,lte=1"`
}

// SpaceVentLoad is the design airflow of a space in m3/h.
type SpaceVentLoad struct {
	Supply   float64 `json:"flow_supply" validate:"gte=0"`
	Extract  float64 `json:"flow_extract" validate:"gte=0"`
	Transfer float64 `json:"flow_transfer" validate:"gte=0"`
}

// FullName is the number and name of the space, used for sorting.
func (s *Space) FullName() string {
	name := s.Name
	if name == "" {
		name = s.DisplayName
	}
	if s.Number == "" {
		return name
	}
	return fmt.Sprintf("%s-%s", s.Number, name)
}

// FloorArea is the unweighted floor area.
func (s *Space) FloorArea() float64 {
	total := 0.0
	for _, f := range s.FloorSegments {
		total += f.Area
	}
	return total
}

// WeightedFloorArea is the floor area multiplied by each segment's weighting
// factor.
func (s *Space) WeightedFloorArea() float64 {
	total := 0.0
	for _, f := range s.FloorSegments {
		total += f.Area * f.WeightingFactor
	}
	return total
}

// NetVolume is the floor area times the average clear height.
func (s *Space) NetVolume() float64 {
	return s.FloorArea() * s.AvgClearHeight
}

// BldgSegment groups rooms that become one zone and carries the
// segment-wide PH data.
type BldgSegment struct {
	Identifier       string                    `json:"identifier" validate:"required"`
	DisplayName      string                    `json:"display_name"`
	NumFloorLevels   int                       `json:"num_floor_levels" validate:"gte=0"`
	NumDwellingUnits int                       `json:"num_dwelling_units" validate:"gte=0"`
	Site             *Site                     `json:"site"`
	SourceFactors    []Factor                  `json:"source_energy_factors" validate:"dive"`
	CO2eFactors      []Factor                  `json:"co2e_factors" validate:"dive"`
	Certification    *Certification            `json:"ph_certification"`
	SetPoints        SetPoints                 `json:"set_points"`
	MechRoomTemp     float64                   `json:"mech_room_temp"`
	ThermalBridges   map[string]*ThermalBridge `json:"thermal_bridges" validate:"dive,required"`
	Foundations      []*Foundation             `json:"foundations" validate:"dive,required"`
}

// Name returns the display name, or the identifier when unnamed.
func (b *BldgSegment) Name() string {
	if b.DisplayName != "" {
		return b.DisplayName
	}
	return b.Identifier
}

// Phius reports whether the segment is certified under Phius, where ground
// contact faces count as exposed.
func (b *BldgSegment) Phius() bool {
	return b != nil && b.Certification != nil && b.Certification.Standard == PhiusStandard
}

// Factor is a fuel conversion factor.
type Factor struct {
	FuelName string  `json:"fuel_name" validate:"required"`
	Value    float64 `json:"value"`
	Unit     string  `json:"unit"`
}

// SetPoints are the design indoor temperatures.
type SetPoints struct {
	Winter float64 `json:"winter"`
	Summer float64 `json:"summer"`
}

// PhiusStandard is the certification standard of Phius projects.
const PhiusStandard = "PHIUS"

// Certification is the segment's certification classification.
type Certification struct {
	BuildingCategory    string  `json:"building_category"`
	BuildingUseType     string  `json:"building_use_type"`
	BuildingStatus      string  `json:"building_status"`
	BuildingType        string  `json:"building_type"`
	Standard            string  `json:"certification_standard"`
	AnnualHeatingDemand float64 `json:"annual_heating_demand"`
	AnnualCoolingDemand float64 `json:"annual_cooling_demand"`
	PeakHeatingLoad     float64 `json:"peak_heating_load"`
	PeakCoolingLoad     float64 `json:"peak_cooling_load"`
}

// ThermalBridge is a linear thermal bridge.
type ThermalBridge struct {
	Identifier  string  `json:"identifier"`
	DisplayName string  `json:"display_name"`
	Quantity    float64 `json:"quantity"`
	Length      float64 `json:"length" validate:"gte=0"`
	PsiValue    float64 `json:"psi_value"`
	FRsi        float64 `json:"fRsi_value"`
	GroupType   int     `json:"group_type" validate:"omitempty,oneof=15 16 17"`
}

// Foundation is a below-grade floor.
type Foundation struct {
	DisplayName      string  `json:"display_name"`
	FoundationType   string  `json:"foundation_type" validate:"required"`
	FloorSlabArea    float64 `json:"floor_slab_area"`
	FloorSlabUValue  float64 `json:"floor_slab_u_value"`
	FloorSlabExposed float64 `json:"floor_slab_exposed_perimeter"`
}

// Site is the location and climate of a segment.
type Site struct {
	Location struct {
		DisplayName   string  `json:"display_name"`
		Latitude      float64 `json:"latitude" validate:"gte=-90,lte=90"`
		Longitude     float64 `json:"longitude" validate:"gte=-180,lte=180"`
		SiteElevation float64 `json:"site_elevation"`
		HoursFromUTC  int     `json:"hours_from_UTC"`
		ClimateZone   int     `json:"climate_zone"`
	} `json:"location"`
	Climate SiteClimate `json:"climate"`
}

// SiteClimate is the climate data set of a site.
type SiteClimate struct {
	DisplayName      string  `json:"display_name"`
	StationElevation float64 `json:"station_elevation"`
	DailyTempSwing   float64 `json:"daily_temp_swing"`
	AverageWindSpeed float64 `json:"avg_wind_speed"`
	Ground           *Ground `json:"ground"`
	MonthlyTemps     struct {
		AirTemps      []float64 `json:"air_temps" validate:"months"`
		DewpointTemps []float64 `json:"dewpoints" validate:"months"`
		SkyTemps      []float64 `json:"sky_temps" validate:"months"`
		GroundTemps   []float64 `json:"ground_temps" validate:"omitempty,months"`
	} `json:"monthly_temps"`
	MonthlyRadiation struct {
		North []float64 `json:"north" validate:"months"`
		East  []float64 `json:"east" validate:"months"`
		South []float64 `json:"south" validate:"months"`
		West  []float64 `json:"west" validate:"months"`
		Glob  []float64 `json:"glob" validate:"months"`
	} `json:"monthly_radiation"`
	PeakLoads struct {
		Heat1 PeakLoad `json:"heat_load_1"`
		Heat2 PeakLoad `json:"heat_load_2"`
		Cool1 PeakLoad `json:"cooling_load_1"`
		Cool2 PeakLoad `json:"cooling_load_2"`
	} `json:"peak_loads"`
}

// Ground holds soil properties.
type Ground struct {
	GroundThermalConductivity float64 `json:"ground_thermal_conductivity"`
	GroundHeatCapacity        float64 `json:"ground_heat_capacity"`
	GroundDensity             float64 `json:"ground_density"`
	DepthGroundwater          float64 `json:"depth_groundwater"`
	FlowRateGroundwater       float64 `json:"flow_rate_groundwater"`
}

// PeakLoad is one design-day record.
type PeakLoad struct {
	Temp       float64  `json:"temp"`
	RadNorth   float64  `json:"rad_north"`
	RadEast    float64  `json:"rad_east"`
	RadSouth   float64  `json:"rad_south"`
	RadWest    float64  `json:"rad_west"`
	RadGlobal  float64  `json:"rad_global"`
	Dewpoint   *float64 `json:"dewpoint"`
	GroundTemp *float64 `json:"ground_temp"`
	SkyTemp    *float64 `json:"sky_temp"`
}

// ProjectTeam lists the people attached to the project.
type ProjectTeam struct {
	Customer         Contact `json:"customer"`
	BuildingOwner    Contact `json:"owner"`
	Designer         Contact `json:"designer"`
	Building         Contact `json:"building"`
	ProjectDate      string  `json:"project_date"`
	YearConstruction int     `json:"year_constructed"`
}

// Contact is one team member.
type Contact struct {
	Name      string `json:"name"`
	Street    string `json:"street"`
	PostCode  string `json:"post_code"`
	City      string `json:"city"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	License   string `json:"license_number"`
}
