// Package enums holds the closed enumerations of the intermediate model.
package enums

import "fmt"

// FaceType classifies a component's surface. ROOF_CEILING and AIR_BOUNDARY
// share a number; components tell them apart by opacity.
type FaceType int

const (
	FaceTypeWall        FaceType = 1
	FaceTypeFloor       FaceType = 2
	FaceTypeRoofCeiling FaceType = 3
	FaceTypeAirBoundary FaceType = 3
	FaceTypeWindow      FaceType = 4
)

func (f FaceType) String() string {
	switch f {
	case FaceTypeWall:
		return "WALL"
	case FaceTypeFloor:
		return "FLOOR"
	case FaceTypeRoofCeiling:
		return "ROOF_CEILING"
	case FaceTypeWindow:
		return "WINDOW"
	default:
		return fmt.Sprintf("FaceType(%d)", int(f))
	}
}

// Opacity of a component.
type Opacity int

const (
	OpacityOpaque      Opacity = 1
	OpacityTransparent Opacity = 2
	OpacityAirBoundary Opacity = 3
)

func (o Opacity) String() string {
	switch o {
	case OpacityOpaque:
		return "OPAQUE"
	case OpacityTransparent:
		return "TRANSPARENT"
	case OpacityAirBoundary:
		return "AIRBOUNDARY"
	default:
		return fmt.Sprintf("Opacity(%d)", int(o))
	}
}

// ExposureExterior is the outside boundary of a component. Interior exposure
// is a zone id (or -1 for shades) and is a plain int.
type ExposureExterior int

const (
	ExposureExteriorExterior ExposureExterior = -1
	ExposureExteriorGround   ExposureExterior = -2
	ExposureExteriorSurface  ExposureExterior = -3
)

func (e ExposureExterior) String() string {
	switch e {
	case ExposureExteriorExterior:
		return "EXTERIOR"
	case ExposureExteriorGround:
		return "GROUND"
	case ExposureExteriorSurface:
		return "SURFACE"
	default:
		return fmt.Sprintf("ExposureExterior(%d)", int(e))
	}
}

// ExposureInteriorShade marks a shade-only component.
const ExposureInteriorShade = -1

// Color is the display color of a component face.
type Color int

const (
	ColorExtWallInner         Color = 1
	ColorExtWallOuter         Color = 2
	ColorInnerWall            Color = 3
	ColorWindow               Color = 4
	ColorFloor                Color = 5
	ColorCeiling              Color = 6
	ColorSlopedRoofInner      Color = 7
	ColorSlopedRoofOuter      Color = 8
	ColorSlopedRoofThatch     Color = 9
	ColorFlatRoofInner        Color = 10
	ColorFlatRoofOuter        Color = 11
	ColorSurfaceGroundContact Color = 12
	ColorGroundAbove          Color = 13
	ColorGroundBeneath        Color = 14
)

// DeviceType is the mechanical device family.
type DeviceType int

const (
	DeviceTypeVentilation  DeviceType = 1
	DeviceTypeElectric     DeviceType = 2
	DeviceTypeBoiler       DeviceType = 3
	DeviceTypeDistrictHeat DeviceType = 4
	DeviceTypeHeatPump     DeviceType = 5
	DeviceTypeWaterStorage DeviceType = 8
)

func (d DeviceType) String() string {
	switch d {
	case DeviceTypeVentilation:
		return "VENTILATION"
	case DeviceTypeElectric:
		return "ELECTRIC"
	case DeviceTypeBoiler:
		return "BOILER"
	case DeviceTypeDistrictHeat:
		return "DISTRICT_HEAT"
	case DeviceTypeHeatPump:
		return "HEAT_PUMP"
	case DeviceTypeWaterStorage:
		return "WATER_STORAGE"
	default:
		return fmt.Sprintf("DeviceType(%d)", int(d))
	}
}

// HeatPumpType distinguishes heat pump variants.
type HeatPumpType int

const (
	HeatPumpTypeCombined     HeatPumpType = 2
	HeatPumpTypeAnnual       HeatPumpType = 3
	HeatPumpTypeRatedMonthly HeatPumpType = 4
	HeatPumpTypeHotWater     HeatPumpType = 5
)

// CoolingType distinguishes cooling device variants.
type CoolingType int

const (
	CoolingTypeVentilation      CoolingType = 1
	CoolingTypeRecirculation    CoolingType = 2
	CoolingTypeDehumidification CoolingType = 3
	CoolingTypePanel            CoolingType = 4
)

// FuelType of a fossil or wood boiler.
type FuelType int

const (
	FuelTypeGas        FuelType = 1
	FuelTypeOil        FuelType = 2
	FuelTypeWoodLog    FuelType = 3
	FuelTypeWoodPellet FuelType = 4
)

// ParseFuelType maps a source fuel name to a FuelType.
func ParseFuelType(name string) (FuelType, error) {
	switch name {
	case "GAS", "NATURAL_GAS":
		return FuelTypeGas, nil
	case "OIL":
		return FuelTypeOil, nil
	case "WOOD_LOG":
		return FuelTypeWoodLog, nil
	case "WOOD_PELLET":
		return FuelTypeWoodPellet, nil
	default:
		return 0, notAllowed("FuelType", name)
	}
}
