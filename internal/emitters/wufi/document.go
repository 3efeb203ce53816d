// Package wufi writes a project as a WUFI-Passive XML document. The element
// tree is declared as structs and filled by a single walk over the project.
package wufi

import "encoding/xml"

// list is a counted container. Item element names come from each item
// type's XMLName.
type list[T any] struct {
	Count int `xml:"count,attr"`
	Items []T
}

func newList[T any](items []T) list[T] {
	return list[T]{Count: len(items), Items: items}
}

// floatList is a counted list of plain numbers, as used for monthly data.
type floatList struct {
	Count int       `xml:"count,attr"`
	Items []float64 `xml:"Item"`
}

func newFloatList(values []float64) floatList {
	return floatList{Count: len(values), Items: values}
}

type intList struct {
	Count int   `xml:"count,attr"`
	Items []int `xml:"IdentNr"`
}

func newIntList(values []int) intList {
	return intList{Count: len(values), Items: values}
}

// Document is the root element.
type Document struct {
	XMLName                        xml.Name          `xml:"WUFIplusProject"`
	DataVersion                    int               `xml:"DataVersion"`
	UnitSystem                     int               `xml:"UnitSystem"`
	ProgramName                    string            `xml:"ProgramName"`
	ProgramVersion                 string            `xml:"ProgramVersion"`
	Scope                          int               `xml:"Scope"`
	DimensionsVisualizedGeometry   int               `xml:"DimensionsVisualizedGeometry"`
	ProjectData                    ProjectData       `xml:"ProjectData"`
	UtilisationPatternsVentilation list[VentPattern] `xml:"UtilisationPatternsVentilation"`
	Variants                       list[Variant]     `xml:"Variants"`
	Assemblies                     list[Assembly]    `xml:"Assemblies"`
	WindowTypes                    list[WindowType]  `xml:"WindowTypes"`
}

// ProjectData carries the project's agents and dates.
type ProjectData struct {
	CustomerName        string `xml:"Customer_Name"`
	CustomerStreet      string `xml:"Customer_Street"`
	CustomerLocality    string `xml:"Customer_Locality"`
	CustomerPostalCode  string `xml:"Customer_PostalCode"`
	CustomerEmail       string `xml:"Customer_Email"`
	CustomerTel         string `xml:"Customer_Tel"`
	BuildingName        string `xml:"Building_Name"`
	BuildingStreet      string `xml:"Building_Street"`
	BuildingLocality    string `xml:"Building_Locality"`
	BuildingPostalCode  string `xml:"Building_PostalCode"`
	OwnerName           string `xml:"Owner_Name"`
	OwnerStreet         string `xml:"Owner_Street"`
	OwnerLocality       string `xml:"Owner_Locality"`
	OwnerPostalCode     string `xml:"Owner_PostalCode"`
	OwnerIsClient       bool   `xml:"OwnerIsClient"`
	ResponsibleName     string `xml:"Responsible_Name"`
	ResponsibleStreet   string `xml:"Responsible_Street"`
	ResponsibleLocality string `xml:"Responsible_Locality"`
	ResponsibleEmail    string `xml:"Responsible_Email"`
	ResponsibleLicense  string `xml:"Responsible_LicenseNr"`
	DateProject         string `xml:"Date_Project,omitempty"`
	YearConstruction    int    `xml:"Year_Construction"`
	WhiteBackground     bool   `xml:"WhiteBackgroundPictureBuilding"`
}

// VentPattern is one ventilation utilization pattern.
type VentPattern struct {
	XMLName                      xml.Name `xml:"UtilizationPatternVent"`
	Index                        int      `xml:"index,attr"`
	Name                         string   `xml:"Name"`
	IdentNr                      int      `xml:"IdentNr"`
	OperatingDays                float64  `xml:"OperatingDays"`
	OperatingWeeks               float64  `xml:"OperatingWeeks"`
	MaximumDOS                   float64  `xml:"Maximum_DOS"`
	MaximumPDF                   float64  `xml:"Maximum_PDF"`
	StandardDOS                  float64  `xml:"Standard_DOS"`
	StandardPDF                  float64  `xml:"Standard_PDF"`
	BasicDOS                     float64  `xml:"Basic_DOS"`
	BasicPDF                     float64  `xml:"Basic_PDF"`
	MinimumDOS                   float64  `xml:"Minimum_DOS"`
	MinimumPDF                   float64  `xml:"Minimum_PDF"`
	AverageOperatingFractionUser float64  `xml:"AverageOperatingFraction"`
}

// Assembly is one layered opaque construction.
type Assembly struct {
	XMLName xml.Name    `xml:"Assembly"`
	Index   int         `xml:"index,attr"`
	IdentNr int         `xml:"IdentNr"`
	Name    string      `xml:"Name"`
	Order   int         `xml:"Order_Layers"`
	Layers  list[Layer] `xml:"Layers"`
}

// Layer is one material layer of an assembly.
type Layer struct {
	XMLName   xml.Name `xml:"Layer"`
	Index     int      `xml:"index,attr"`
	Thickness float64  `xml:"Thickness"`
	Material  Material `xml:"Material"`
}

// Material is a layer material.
type Material struct {
	Name                string  `xml:"Name"`
	ThermalConductivity float64 `xml:"ThermalConductivity"`
	BulkDensity         float64 `xml:"BulkDensity"`
	HeatCapacity        float64 `xml:"HeatCapacity"`
	Emissivity          float64 `xml:"Emissivity,omitempty"`
}

// WindowType is a glazing and frame assembly.
type WindowType struct {
	XMLName              xml.Name `xml:"WindowType"`
	Index                int      `xml:"index,attr"`
	IdentNr              int      `xml:"IdentNr"`
	Name                 string   `xml:"Name"`
	UValueTotal          float64  `xml:"U_Value"`
	UValueGlazing        float64  `xml:"U_Value_Glazing"`
	GValue               float64  `xml:"SolarTransmittanceCoefficient"`
	FrameWidthLeft       float64  `xml:"Frame_Width_Left"`
	FramePsiGlazingLeft  float64  `xml:"Frame_Psi_Left"`
	FramePsiInstallLeft  float64  `xml:"Frame_Psi_Installation_Left"`
	FrameUValueLeft      float64  `xml:"Frame_U_Left"`
	FrameWidthRight      float64  `xml:"Frame_Width_Right"`
	FramePsiGlazingRight float64  `xml:"Frame_Psi_Right"`
	FramePsiInstallRight float64  `xml:"Frame_Psi_Installation_Right"`
	FrameUValueRight     float64  `xml:"Frame_U_Right"`
	FrameWidthTop        float64  `xml:"Frame_Width_Top"`
	FramePsiGlazingTop   float64  `xml:"Frame_Psi_Top"`
	FramePsiInstallTop   float64  `xml:"Frame_Psi_Installation_Top"`
	FrameUValueTop       float64  `xml:"Frame_U_Top"`
	FrameWidthBottom     float64  `xml:"Frame_Width_Bottom"`
	FramePsiGlazingBot   float64  `xml:"Frame_Psi_Bottom"`
	FramePsiInstallBot   float64  `xml:"Frame_Psi_Installation_Bottom"`
	FrameUValueBottom    float64  `xml:"Frame_U_Bottom"`
}

// Variant is one buildable case.
type Variant struct {
	XMLName         xml.Name         `xml:"Variant"`
	Index           int              `xml:"index,attr"`
	IdentNr         int              `xml:"IdentNr"`
	Name            string           `xml:"Name"`
	Remarks         string           `xml:"Remarks,omitempty"`
	Graphics3D      Graphics3D       `xml:"Graphics_3D"`
	Building        Building         `xml:"Building"`
	ClimateLocation ClimateLocation  `xml:"ClimateLocation"`
	PassiveHouse    PassivehouseData `xml:"PassivehouseData"`
	HVAC            HVAC             `xml:"HVAC"`
}

// Graphics3D holds every vertex and polygon of a variant.
type Graphics3D struct {
	Vertices list[Vertex]  `xml:"Vertices"`
	Polygons list[Polygon] `xml:"Polygons"`
}

// Vertex is one numbered point. Welded vertices appear once.
type Vertex struct {
	XMLName xml.Name `xml:"Vertix"`
	Index   int      `xml:"index,attr"`
	IdentNr int      `xml:"IdentNr"`
	X       float64  `xml:"X"`
	Y       float64  `xml:"Y"`
	Z       float64  `xml:"Z"`
}

// Polygon references its vertices and inset polygons by id.
type Polygon struct {
	XMLName               xml.Name `xml:"Polygon"`
	Index                 int      `xml:"index,attr"`
	IdentNr               int      `xml:"IdentNr"`
	NormalVector          Vector   `xml:"NormalVector"`
	IdentNrPoints         intList  `xml:"IdentNrPoints"`
	IdentNrPolygonsInside intList  `xml:"IdentNrPolygonsInside"`
}

// Vector is a direction.
type Vector struct {
	X float64 `xml:"X"`
	Y float64 `xml:"Y"`
	Z float64 `xml:"Z"`
}

// Building holds the components and zones of a variant.
type Building struct {
	Components list[Component] `xml:"Components"`
	Zones      list[Zone]      `xml:"Zones"`
}

// Component is an opaque, transparent or shading surface group.
type Component struct {
	XMLName                      xml.Name `xml:"Component"`
	Index                        int      `xml:"index,attr"`
	IdentNr                      int      `xml:"IdentNr"`
	Name                         string   `xml:"Name"`
	Visual                       bool     `xml:"Visual"`
	Type                         int      `xml:"Type"`
	IdentNrColorI                int      `xml:"IdentNrColorI"`
	IdentNrColorE                int      `xml:"IdentNrColorE"`
	InnerAttachment              int      `xml:"InnerAttachment"`
	OuterAttachment              int      `xml:"OuterAttachment"`
	IdentNrComponentInnerSurface int      `xml:"IdentNr_ComponentInnerSurface"`
	IdentNrAssembly              int      `xml:"IdentNrAssembly"`
	IdentNrWindowType            int      `xml:"IdentNrWindowType"`
	DepthWindowReveal            float64  `xml:"DepthWindowReveal,omitempty"`
	IdentNrPolygons              intList  `xml:"IdentNrPolygons"`
}

// Zone is one thermal zone.
type Zone struct {
	XMLName                    xml.Name              `xml:"Zone"`
	Index                      int                   `xml:"index,attr"`
	IdentNr                    int                   `xml:"IdentNr"`
	Name                       string                `xml:"Name"`
	KindZone                   int                   `xml:"KindZone"`
	KindAttachedZone           int                   `xml:"KindAttachedZone"`
	GrossVolumeSelection       int                   `xml:"GrossVolume_Selection"`
	GrossVolume                float64               `xml:"GrossVolume"`
	NetVolumeSelection         int                   `xml:"NetVolume_Selection"`
	NetVolume                  float64               `xml:"NetVolume"`
	FloorAreaSelection         int                   `xml:"FloorArea_Selection"`
	FloorArea                  float64               `xml:"FloorArea"`
	ClearanceHeightSelection   int                   `xml:"ClearanceHeight_Selection"`
	ClearanceHeight            float64               `xml:"ClearanceHeight"`
	SpecificHeatCapacitySelect int                   `xml:"SpecificHeatCapacity_Selection"`
	SpecificHeatCapacity       float64               `xml:"SpecificHeatCapacity"`
	OccupantQuantityUser       int                   `xml:"OccupantQuantityUser"`
	NumberBedrooms             int                   `xml:"NumberBedrooms"`
	RoomsVentilation           list[RoomVentilation] `xml:"RoomsVentilation"`
	HomeDevice                 list[HomeDevice]      `xml:"HomeDevice"`
	ThermalBridges             list[ThermalBridge]   `xml:"ThermalBridges"`
}

// RoomVentilation is the ventilation record of one space.
type RoomVentilation struct {
	XMLName                       xml.Name `xml:"Room"`
	Index                         int      `xml:"index,attr"`
	Name                          string   `xml:"Name"`
	Type                          int      `xml:"Type"`
	IdentNrUtilizationPatternVent int      `xml:"IdentNrUtilizationPatternVent"`
	IdentNrVentilationUnit        int      `xml:"IdentNrVentilationUnit"`
	Quantity                      int      `xml:"Quantity"`
	AreaRoom                      float64  `xml:"AreaRoom"`
	ClearRoomHeight               float64  `xml:"ClearRoomHeight"`
	DesignVolumeFlowRateSupply    float64  `xml:"DesignVolumeFlowRateSupply"`
	DesignVolumeFlowRateExhaust   float64  `xml:"DesignVolumeFlowRateExhaust"`
	DesignFlowInterzonalUserDef   float64  `xml:"DesignFlowInterzonalUserDef"`
}

// HomeDevice is one appliance.
type HomeDevice struct {
	XMLName                   xml.Name `xml:"Device"`
	Index                     int      `xml:"index,attr"`
	Comment                   string   `xml:"Comment,omitempty"`
	ReferenceQuantity         int      `xml:"ReferenceQuantity"`
	Quantity                  int      `xml:"Quantity"`
	InConditionedSpace        bool     `xml:"InConditionedSpace"`
	ReferenceEnergyDemandNorm int      `xml:"ReferenceEnergyDemandNorm"`
	EnergyDemandNorm          float64  `xml:"EnergyDemandNorm"`
	EnergyDemandNormUse       float64  `xml:"EnergyDemandNormUse"`
	CEFCombinedEnergyFactor   float64  `xml:"CEF_CombinedEnergyFactor"`
	Type                      int      `xml:"Type"`
	DishwasherCapacityType    int      `xml:"Dishwasher_CapacityPreselection,omitempty"`
	DishwasherCapacity        float64  `xml:"Dishwasher_Capacity,omitempty"`
	WaterConnection           int      `xml:"Connection,omitempty"`
	DryerChoice               int      `xml:"Dryer_Choice,omitempty"`
	GasConsumption            float64  `xml:"GasConsumption,omitempty"`
	FieldUtilizationFactor    float64  `xml:"FieldUtilizationFactor,omitempty"`
	CookingWith               int      `xml:"CookingWith,omitempty"`
	FractionHighEfficiency    float64  `xml:"FractionHightEfficiency,omitempty"`
}

// ThermalBridge is a linear thermal bridge.
type ThermalBridge struct {
	XMLName  xml.Name `xml:"ThermalBridge"`
	Index    int      `xml:"index,attr"`
	Name     string   `xml:"Name"`
	Type     int      `xml:"Type"`
	Length   float64  `xml:"Length"`
	PsiValue float64  `xml:"PsiValue"`
	IdentNr  int      `xml:"IdentNr"`
}

// ClimateLocation is the site and climate of a variant.
type ClimateLocation struct {
	Selection        int          `xml:"Selection"`
	Latitude         float64      `xml:"Latitude"`
	Longitude        float64      `xml:"Longitude"`
	HeightNNWeather  float64      `xml:"HeightNNWeatherStation"`
	HeightNNBuild    float64      `xml:"HeightNNBuilding"`
	DUTC             int          `xml:"dUTC"`
	ClimateZone      int          `xml:"ClimateZone"`
	GroundThermal    float64      `xml:"GroundThermalConductivity"`
	GroundCapacity   float64      `xml:"GroundHeatCapacitiy"`
	GroundDensity    float64      `xml:"GroundDensity"`
	DepthGroundwater float64      `xml:"DepthGroundwater"`
	FlowGroundwater  float64      `xml:"FlowRateGroundwater"`
	PHClimate        PHClimate    `xml:"PH_ClimateLocation"`
	SourceFactors    list[Factor] `xml:"PH_ConversionFactors_PrimaryEnergy"`
	CO2Factors       list[Factor] `xml:"PH_ConversionFactors_CO2"`
}

// PHClimate is the monthly climate data set.
type PHClimate struct {
	Name                  string    `xml:"Name"`
	DailyTemperatureSwing float64   `xml:"DailyTemperatureSwingSummer"`
	AverageWindSpeed      float64   `xml:"AverageWindSpeed"`
	TemperatureMonthly    floatList `xml:"TemperatureMonthly"`
	DewPointTemperature   floatList `xml:"DewPointTemperatureMonthly"`
	SkyTemperature        floatList `xml:"SkyTemperatureMonthly"`
	GroundTemperature     floatList `xml:"GroundTemperatureMonthly"`
	NorthSolarRadiation   floatList `xml:"NorthSolarRadiationMonthly"`
	EastSolarRadiation    floatList `xml:"EastSolarRadiationMonthly"`
	SouthSolarRadiation   floatList `xml:"SouthSolarRadiationMonthly"`
	WestSolarRadiation    floatList `xml:"WestSolarRadiationMonthly"`
	GlobalSolarRadiation  floatList `xml:"GlobalSolarRadiationMonthly"`
	Heat1                 PeakLoad  `xml:"PeakHeatLoad1"`
	Heat2                 PeakLoad  `xml:"PeakHeatLoad2"`
	Cool1                 PeakLoad  `xml:"PeakCoolLoad1"`
	Cool2                 PeakLoad  `xml:"PeakCoolLoad2"`
}

// PeakLoad is one design-day record.
type PeakLoad struct {
	Temperature float64  `xml:"Temperature"`
	RadNorth    float64  `xml:"RadiationNorth"`
	RadEast     float64  `xml:"RadiationEast"`
	RadSouth    float64  `xml:"RadiationSouth"`
	RadWest     float64  `xml:"RadiationWest"`
	RadGlobal   float64  `xml:"RadiationGlobal"`
	Dewpoint    *float64 `xml:"Dewpoint,omitempty"`
	GroundTemp  *float64 `xml:"GroundTemperature,omitempty"`
	SkyTemp     *float64 `xml:"SkyTemperature,omitempty"`
}

// Factor is one fuel conversion factor.
type Factor struct {
	XMLName  xml.Name `xml:"PH_ConversionFactor"`
	Index    int      `xml:"index,attr"`
	FuelName string   `xml:"FuelName"`
	Value    float64  `xml:"Value"`
	Unit     string   `xml:"Unit,omitempty"`
}

// PassivehouseData is the certification record of a variant.
type PassivehouseData struct {
	PHCertificateCriteria int              `xml:"PH_CertificateCriteria"`
	PHSelectionTargetData int              `xml:"PH_SelectionTargetData"`
	AnnualHeatingDemand   float64          `xml:"AnnualHeatingDemand"`
	AnnualCoolingDemand   float64          `xml:"AnnualCoolingDemand"`
	PeakHeatingLoad       float64          `xml:"PeakHeatingLoad"`
	PeakCoolingLoad       float64          `xml:"PeakCoolingLoad"`
	PrimaryEnergy         float64          `xml:"PrimaryEnergy"`
	PHBuildings           list[PHBuilding] `xml:"PH_Buildings"`
}

// PHBuilding is the PH building record.
type PHBuilding struct {
	XMLName                   xml.Name         `xml:"PH_Building"`
	Index                     int              `xml:"index,attr"`
	BuildingCategory          int              `xml:"BuildingCategory"`
	OccupancyTypeResidential  int              `xml:"OccupancyTypeResidential"`
	BuildingStatus            int              `xml:"BuildingStatus"`
	BuildingType              int              `xml:"BuildingType"`
	OccupancySettingMethod    int              `xml:"OccupancySettingMethod"`
	NumberUnits               int              `xml:"NumberUnits"`
	CountStories              int              `xml:"CountStories"`
	EnvelopeAirtightnessN50   float64          `xml:"EnvelopeAirtightnessCoefficient"`
	AirtightnessQ50           float64          `xml:"Airtightness_Q50"`
	SummerHRVHumidityRecovery int              `xml:"SummerHRVHumidityRecovery"`
	IndoorTemperature         float64          `xml:"IndoorTemperature"`
	OverheatingTemperature    float64          `xml:"OverheatingTemperatureThreshold"`
	MechanicalRoomTemperature float64          `xml:"MechanicalRoomTemperature"`
	Foundations               list[Foundation] `xml:"FoundationInterfaces"`
}

// Foundation is one below-grade floor assembly.
type Foundation struct {
	XMLName            xml.Name `xml:"FoundationInterface"`
	Index              int      `xml:"index,attr"`
	Name               string   `xml:"Name"`
	SettingFloorSlab   int      `xml:"SettingFloorSlab"`
	FloorSlabArea      float64  `xml:"FloorSlabArea"`
	UValueFloorSlab    float64  `xml:"U_ValueBasementSlab"`
	FloorSlabPerimeter float64  `xml:"FloorSlabPerimeter"`
}

// HVAC holds the mechanical systems of a variant.
type HVAC struct {
	Systems list[System] `xml:"Systems"`
}

// System is one mechanical system with its devices and distribution.
type System struct {
	XMLName       xml.Name           `xml:"System"`
	Index         int                `xml:"index,attr"`
	Name          string             `xml:"Name"`
	Type          int                `xml:"Type"`
	IdentNr       int                `xml:"IdentNr"`
	ZonesCoverage list[ZoneCoverage] `xml:"ZonesCoverage"`
	Devices       list[Device]       `xml:"Devices"`
	Distribution  Distribution       `xml:"PHDistribution"`
}

// ZoneCoverage says which zone a system serves.
type ZoneCoverage struct {
	XMLName                  xml.Name `xml:"ZoneCoverage"`
	Index                    int      `xml:"index,attr"`
	IdentNrZone              int      `xml:"IdentNrZone"`
	CoverageHeating          float64  `xml:"CoverageHeating"`
	CoverageCooling          float64  `xml:"CoverageCooling"`
	CoverageVentilation      float64  `xml:"CoverageVentilation"`
	CoverageHumidification   float64  `xml:"CoverageHumidification"`
	CoverageDehumidification float64  `xml:"CoverageDehumidification"`
}

// Device is one mechanical device.
type Device struct {
	XMLName                 xml.Name           `xml:"Device"`
	Index                   int                `xml:"index,attr"`
	Name                    string             `xml:"Name"`
	IdentNr                 int                `xml:"IdentNr"`
	SystemType              int                `xml:"SystemType"`
	TypeDevice              int                `xml:"TypeDevice"`
	UsedForHeating          bool               `xml:"UsedFor_Heating"`
	UsedForDHW              bool               `xml:"UsedFor_DHW"`
	UsedForCooling          bool               `xml:"UsedFor_Cooling"`
	UsedForVentilation      bool               `xml:"UsedFor_Ventilation"`
	UsedForHumidification   bool               `xml:"UsedFor_Humidification"`
	UsedForDehumidification bool               `xml:"UsedFor_Dehumidification"`
	UseOptionalClimate      bool               `xml:"UseOptionalClimate"`
	Quantity                int                `xml:"Quantity"`
	PercentCoverage         float64            `xml:"PercentCoverage"`
	Ventilation             *VentilationParams `xml:"PH_Parameters,omitempty"`
	HeatPump                *HeatPumpParams    `xml:"HeatPump_Parameters,omitempty"`
	Boiler                  *BoilerParams      `xml:"Boiler_Parameters,omitempty"`
	Cooling                 *CoolingParams     `xml:"Cooling_Parameters,omitempty"`
	Tank                    *TankParams        `xml:"DHW_Parameters,omitempty"`
}

// VentilationParams are the heat-recovery ventilator parameters.
type VentilationParams struct {
	HumidityRecoveryEfficiency float64 `xml:"HumidityRecoveryEfficiency"`
	ElectricEfficiency         float64 `xml:"ElectricEfficiency"`
	FrostProtection            bool    `xml:"FrostProtection"`
	Quantity                   int     `xml:"Quantity"`
	SubsoilHeatExchangeEff     float64 `xml:"SubsoilHeatExchangeEfficiency"`
	HeatRecoveryEfficiency     float64 `xml:"HeatRecoveryEfficiency"`
	InConditionedSpace         bool    `xml:"InConditionedSpace"`
	DefrostRequired            float64 `xml:"TemperatureBelowDefrostUsed"`
}

// HeatPumpParams covers every heat pump variant; unused ratings are omitted.
type HeatPumpParams struct {
	HPType             int      `xml:"HPType"`
	AnnualCOP          *float64 `xml:"AnnualCOP,omitempty"`
	AnnualCOPDHW       *float64 `xml:"AnnualCOP_DHW,omitempty"`
	TotalSystemPerf    *float64 `xml:"TotalSystemPerformanceRatioHeatGenerator,omitempty"`
	RatedCOP1          *float64 `xml:"RatedCOP1,omitempty"`
	AmbientTemp1       *float64 `xml:"AmbientTemperature1,omitempty"`
	RatedCOP2          *float64 `xml:"RatedCOP2,omitempty"`
	AmbientTemp2       *float64 `xml:"AmbientTemperature2,omitempty"`
	InConditionedSpace bool     `xml:"InConditionedSpace"`
}

// BoilerParams covers fossil, wood, electric and district heaters.
type BoilerParams struct {
	EnergySourceBoilerType  int      `xml:"EnergySourceBoilerType,omitempty"`
	CondensingBoiler        bool     `xml:"CondensingBoiler"`
	InConditionedSpace      bool     `xml:"InConditionedSpace"`
	BoilerEfficiency30      float64  `xml:"BoilerEfficiency30,omitempty"`
	BoilerEfficiencyNominal float64  `xml:"BoilerEfficiencyNominalOutput,omitempty"`
	MaximalBoilerPower      float64  `xml:"MaximalBoilerPower,omitempty"`
	AuxiliaryEnergy         *float64 `xml:"AuxiliaryEnergy,omitempty"`
	AuxiliaryEnergyDHW      *float64 `xml:"AuxiliaryEnergyDHW,omitempty"`
	EnergyCarrier           string   `xml:"EnergyCarrier,omitempty"`
	SolarFractionHeating    float64  `xml:"SolarFractionHeating,omitempty"`
	SolarFractionDHW        float64  `xml:"SolarFractionDHW,omitempty"`
	UtilFactorHeatTransfer  float64  `xml:"UtilFactorHeatTransfer,omitempty"`
}

// CoolingParams covers every cooling variant.
type CoolingParams struct {
	CoolingType      int     `xml:"CoolingType"`
	SingleSpeed      bool    `xml:"SingleSpeed"`
	FlowRateVariable bool    `xml:"FlowRateVariable"`
	UsefulHeatLoss   bool    `xml:"UsefulHeatLoss"`
	MinCoilTemp      float64 `xml:"TemperatureCoilMin,omitempty"`
	Capacity         float64 `xml:"CoolingCapacity,omitempty"`
	FlowRate         float64 `xml:"FlowRate,omitempty"`
	AnnualCOP        float64 `xml:"AnnualCOP"`
}

// TankParams describes a DHW storage tank.
type TankParams struct {
	SolarThermalStorageCapacity float64 `xml:"SolarThermalStorageCapacity"`
	StorageLossesStandby        float64 `xml:"StorageLossesStandby"`
	TotalSystemPerfRatio        float64 `xml:"TotalSystemPerformanceRatioHeatGenerator,omitempty"`
	TankType                    int     `xml:"TankType"`
	InConditionedSpace          bool    `xml:"InConditionedSpace"`
	StandbyFraction             float64 `xml:"StandbyFraction"`
	StorageLossRate             float64 `xml:"StorageLossRate"`
	TankRoomTemp                float64 `xml:"TankRoomTemp"`
	TankWaterTemp               float64 `xml:"TankWaterTemp"`
	Quantity                    int     `xml:"QauntityWS"`
}

// Distribution is the ducting and piping of a system.
type Distribution struct {
	Ducts        list[Duct] `xml:"DistributionVentilation>Ducts"`
	BranchPiping list[Pipe] `xml:"DistributionDHW>Branch_Pipes"`
	RecircPiping list[Pipe] `xml:"DistributionDHW>Recirculation_Pipes"`
}

// Duct is one ventilation duct.
type Duct struct {
	XMLName           xml.Name `xml:"Duct"`
	Index             int      `xml:"index,attr"`
	Name              string   `xml:"Name"`
	IdentNr           int      `xml:"IdentNr"`
	DuctDiameter      float64  `xml:"DuctDiameter"`
	DuctLength        float64  `xml:"DuctLength"`
	DuctType          int      `xml:"DuctType"`
	AssignedVentUnits intList  `xml:"AssignedVentUnits"`
}

// Pipe is one DHW pipe element.
type Pipe struct {
	XMLName      xml.Name `xml:"Pipe"`
	Index        int      `xml:"index,attr"`
	Name         string   `xml:"Name"`
	IdentNr      int      `xml:"IdentNr"`
	PipeDiameter float64  `xml:"PipeDiameter"`
	Length       float64  `xml:"Length"`
}
