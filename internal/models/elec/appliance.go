// Package elec holds household appliances and the per-zone appliance
// collection.
package elec

import (
	"fmt"

	"github.com/stwalsh4118/phx/internal/models/ids"
)

var applianceIDs = ids.NewCounter("appliance")

// ApplianceType identifies an appliance kind.
type ApplianceType int

const (
	ApplianceDishwasher ApplianceType = iota + 1
	ApplianceClothesWasher
	ApplianceClothesDryer
	ApplianceRefrigerator
	ApplianceFreezer
	ApplianceFridgeFreezer
	ApplianceCooktop
	ApplianceMEL
	ApplianceLightingInterior
	ApplianceLightingExterior
	ApplianceLightingGarage
	ApplianceCustomElectric
	ApplianceCustomLighting
	ApplianceCustomMEL
)

var applianceTypeNames = map[ApplianceType]string{
	ApplianceDishwasher:       "Dishwasher",
	ApplianceClothesWasher:    "ClothesWasher",
	ApplianceClothesDryer:     "ClothesDryer",
	ApplianceRefrigerator:     "Refrigerator",
	ApplianceFreezer:          "Freezer",
	ApplianceFridgeFreezer:    "FridgeFreezer",
	ApplianceCooktop:          "Cooktop",
	ApplianceMEL:              "MEL",
	ApplianceLightingInterior: "LightingInterior",
	ApplianceLightingExterior: "LightingExterior",
	ApplianceLightingGarage:   "LightingGarage",
	ApplianceCustomElectric:   "CustomElectric",
	ApplianceCustomLighting:   "CustomLighting",
	ApplianceCustomMEL:        "CustomMEL",
}

func (t ApplianceType) String() string {
	if name, ok := applianceTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ApplianceType(%d)", t)
}

// Appliance is one electrical appliance in a zone.
type Appliance struct {
	ID                   int
	Identifier           string
	DisplayName          string
	Comment              string
	Type                 ApplianceType
	Quantity             int
	ReferenceQuantity    int
	InConditionedSpace   bool
	ReferenceEnergyNorm  int
	EnergyDemand         float64 // kWh/use or kWh/year depending on the norm
	EnergyDemandPerUse   float64
	CombinedEnergyFactor float64

	// Dishwasher and laundry
	WaterConnection  int
	CapacityType     int
	Capacity         float64
	ModifiedEnergy   float64
	DryerType        int
	GasConsumption   float64
	FieldUtilization float64

	// Cooking
	CooktopType int

	// Lighting and MEL
	FractionHighEfficiency float64
}

// NewAppliance creates an appliance of the given type with a quantity of one.
func NewAppliance(t ApplianceType, displayName string) *Appliance {
	return &Appliance{
		ID:                  applianceIDs.Next(),
		DisplayName:         displayName,
		Type:                t,
		Quantity:            1,
		ReferenceQuantity:   1,
		InConditionedSpace:  true,
		ReferenceEnergyNorm: 2,
	}
}

// Key identifies appliances that describe the same product.
func (a *Appliance) Key() string {
	return fmt.Sprintf("%s_%s_%.4f_%.4f", a.Type, a.DisplayName, a.EnergyDemand, a.EnergyDemandPerUse)
}

// Add combines two appliances of the same type. Quantities are summed and
// demands averaged.
func (a *Appliance) Add(o *Appliance) (*Appliance, error) {
	if a.Type != o.Type {
		return nil, fmt.Errorf("cannot add %s to %s", o.Type, a.Type)
	}
	out := *a
	out.ID = applianceIDs.Next()
	out.Quantity = a.Quantity + o.Quantity
	out.InConditionedSpace = a.InConditionedSpace || o.InConditionedSpace
	out.EnergyDemand = (a.EnergyDemand + o.EnergyDemand) / 2
	out.EnergyDemandPerUse = (a.EnergyDemandPerUse + o.EnergyDemandPerUse) / 2
	out.CombinedEnergyFactor = (a.CombinedEnergyFactor + o.CombinedEnergyFactor) / 2
	return &out, nil
}
