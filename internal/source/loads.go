package source

// People is the occupancy load.
type People struct {
	Identifier    string    `json:"identifier"`
	DisplayName   string    `json:"display_name"`
	PeoplePerArea float64   `json:"people_per_area" validate:"gte=0"`
	Properties    PeopleExt `json:"properties"`
}

// PeopleExt carries the PH occupancy fields.
type PeopleExt struct {
	Ph *PeoplePh `json:"ph"`
}

// PeoplePh is the residential occupancy of a room.
type PeoplePh struct {
	NumberBedrooms int `json:"number_bedrooms" validate:"gte=0"`
	NumberPeople   int `json:"number_people" validate:"gte=0"`
	NumDwellings   int `json:"num_dwellings" validate:"gte=0"`
}

// Infiltration is the envelope leakage per exposed area.
type Infiltration struct {
	Identifier          string  `json:"identifier"`
	DisplayName         string  `json:"display_name"`
	FlowPerExteriorArea float64 `json:"flow_per_exterior_area" validate:"gte=0"`
}

// ElectricEquipment is the plug load with its PH appliance list.
type ElectricEquipment struct {
	Identifier   string       `json:"identifier"`
	DisplayName  string       `json:"display_name"`
	WattsPerArea float64      `json:"watts_per_area" validate:"gte=0"`
	Properties   EquipmentExt `json:"properties"`
}

// EquipmentExt carries the PH equipment collection.
type EquipmentExt struct {
	Ph *EquipmentPh `json:"ph"`
}

// EquipmentPh is the PH appliance list keyed by identifier.
type EquipmentPh struct {
	EquipmentCollection map[string]*Equipment `json:"equipment_collection" validate:"dive,required"`
}

// Equipment returns the PH equipment keyed by identifier, or nil.
func (e *ElectricEquipment) Equipment() map[string]*Equipment {
	if e == nil || e.Properties.Ph == nil {
		return nil
	}
	return e.Properties.Ph.EquipmentCollection
}

// Equipment is one PH appliance record.
type Equipment struct {
	Type                 string  `json:"type" validate:"required"`
	Identifier           string  `json:"identifier"`
	DisplayName          string  `json:"display_name"`
	Comment              string  `json:"comment"`
	Quantity             int     `json:"quantity" validate:"gte=0"`
	ReferenceQuantity    int     `json:"reference_quantity"`
	InConditionedSpace   bool    `json:"in_conditioned_space"`
	ReferenceEnergyNorm  int     `json:"reference_energy_norm"`
	EnergyDemand         float64 `json:"energy_demand"`
	EnergyDemandPerUse   float64 `json:"energy_demand_per_use"`
	CombinedEnergyFactor float64 `json:"combined_energy_factor"`
	WaterConnection      int     `json:"water_connection"`
	CapacityType         int     `json:"capacity_type"`
	Capacity             float64 `json:"capacity"`
	ModifiedEnergy       float64 `json:"modified_energy_factor"`
	DryerType            int     `json:"dryer_type"`
	GasConsumption       float64 `json:"gas_consumption"`
	FieldUtilization     float64 `json:"field_utilization_factor"`
	CooktopType          int     `json:"cooktop_type"`
	FractionHighEff      float64 `json:"frac_high_efficiency"`
}

// Lighting is the lighting load.
type Lighting struct {
	Identifier   string  `json:"identifier"`
	DisplayName  string  `json:"display_name"`
	WattsPerArea float64 `json:"watts_per_area" validate:"gte=0"`
}
