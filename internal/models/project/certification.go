package project

import "github.com/stwalsh4118/phx/internal/models/enums"

// Allowed values of the certification enumerations. Empty strings are
// numbered slots with no meaning in the downstream tool.
var (
	BuildingCategories = []string{"RESIDENTIAL_BUILDING", "NON_RESIDENTIAL_BUILDING"}
	BuildingStatuses   = []string{"IN_PLANNING", "UNDER_CONSTRUCTION", "COMPLETE"}
	BuildingTypes      = []string{"NEW_CONSTRUCTION", "RETROFIT", "MIXED"}
	CertificationStds  = []string{"PASSIVE_HOUSE", "ENERPHIT", "PHI_LOW_ENERGY", "OTHER", "PHIUS"}
	OccupancyMethods   = []string{"STANDARD", "USER_DETERMINED"}
)

// BuildingUseTypes reserves slots 2 through 10 for non-residential uses the
// downstream tool no longer offers.
var BuildingUseTypes = []string{
	"RESIDENTIAL", "", "", "", "", "", "", "", "", "",
	"OFFICE_ADMINISTRATIVE", "SCHOOL", "OTHER",
}

// FoundationTypes are the below-grade floor kinds.
var FoundationTypes = []string{
	"HEATED_BASEMENT", "UNHEATED_BASEMENT", "SLAB_ON_GRADE", "VENTED_CRAWLSPACE", "NONE",
}

// CertificationSettings classifies the building for certification.
type CertificationSettings struct {
	BuildingCategory *enums.Enumerable
	BuildingUseType  *enums.Enumerable
	BuildingStatus   *enums.Enumerable
	BuildingType     *enums.Enumerable
	Standard         *enums.Enumerable
}

// NewCertificationSettings returns the residential, in-planning, new
// construction defaults.
func NewCertificationSettings() CertificationSettings {
	return CertificationSettings{
		BuildingCategory: enums.MustEnumerable("building_category", BuildingCategories, "RESIDENTIAL_BUILDING"),
		BuildingUseType:  enums.MustEnumerable("building_use_type", BuildingUseTypes, "RESIDENTIAL"),
		BuildingStatus:   enums.MustEnumerable("building_status", BuildingStatuses, "IN_PLANNING"),
		BuildingType:     enums.MustEnumerable("building_type", BuildingTypes, "NEW_CONSTRUCTION"),
		Standard:         enums.MustEnumerable("certification_standard", CertificationStds, "PASSIVE_HOUSE"),
	}
}

// CertificationCriteria are the target values.
type CertificationCriteria struct {
	AnnualHeatingDemand float64 // kWh/m2a
	AnnualCoolingDemand float64 // kWh/m2a
	PeakHeatingLoad     float64 // W/m2
	PeakCoolingLoad     float64 // W/m2
	PrimaryEnergy       float64 // kWh/m2a
}

// DefaultCertificationCriteria are the Passive House Classic limits.
func DefaultCertificationCriteria() CertificationCriteria {
	return CertificationCriteria{
		AnnualHeatingDemand: 15,
		AnnualCoolingDemand: 15,
		PeakHeatingLoad:     10,
		PeakCoolingLoad:     10,
		PrimaryEnergy:       120,
	}
}

// SetPoints are the indoor design temperatures in °C.
type SetPoints struct {
	Winter float64
	Summer float64
}

// Foundation is one below-grade floor assembly.
type Foundation struct {
	DisplayName      string
	FoundationType   *enums.Enumerable
	FloorSlabArea    float64 // m2
	FloorSlabUValue  float64 // W/m2K
	FloorSlabExposed float64 // m
}

// NewFoundation creates a foundation of the given type.
func NewFoundation(displayName, foundationType string) (*Foundation, error) {
	ft, err := enums.NewEnumerable("foundation_type", FoundationTypes, foundationType)
	if err != nil {
		return nil, err
	}
	return &Foundation{DisplayName: displayName, FoundationType: ft}, nil
}

// PhBuildingData is the PH building record of a variant.
type PhBuildingData struct {
	NumOfUnits             int
	NumOfFloors            int
	OccupancySettingMethod *enums.Enumerable
	AirtightnessQ50        float64 // m3/hr-m2
	AirtightnessN50        float64 // ACH
	SetPoints              SetPoints
	MechRoomTemp           float64 // °C
	Foundations            []*Foundation
}

// NewPhBuildingData returns one unit on one floor at 20/25 °C set points.
func NewPhBuildingData() PhBuildingData {
	return PhBuildingData{
		NumOfUnits:             1,
		NumOfFloors:            1,
		OccupancySettingMethod: enums.MustEnumerable("occupancy_setting_method", OccupancyMethods, "STANDARD"),
		SetPoints:              SetPoints{Winter: 20, Summer: 25},
		MechRoomTemp:           20,
	}
}

// Certification bundles the certification settings, targets and building data.
type Certification struct {
	Settings CertificationSettings
	Criteria CertificationCriteria
	Building PhBuildingData
}

// NewCertification returns the default certification record.
func NewCertification() *Certification {
	return &Certification{
		Settings: NewCertificationSettings(),
		Criteria: DefaultCertificationCriteria(),
		Building: NewPhBuildingData(),
	}
}
