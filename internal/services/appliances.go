package services

import (
	phxerrors "github.com/stwalsh4118/phx/internal/errors"
	"github.com/stwalsh4118/phx/internal/models/elec"
	"github.com/stwalsh4118/phx/internal/source"
)

// applianceTypes maps source equipment type tags to appliance types.
var applianceTypes = map[string]elec.ApplianceType{
	"PhDishwasher":            elec.ApplianceDishwasher,
	"PhClothesWasher":         elec.ApplianceClothesWasher,
	"PhClothesDryer":          elec.ApplianceClothesDryer,
	"PhFridge":                elec.ApplianceRefrigerator,
	"PhFreezer":               elec.ApplianceFreezer,
	"PhFridgeFreezer":         elec.ApplianceFridgeFreezer,
	"PhCooktop":               elec.ApplianceCooktop,
	"PhPhiusMEL":              elec.ApplianceMEL,
	"PhPhiusLightingInterior": elec.ApplianceLightingInterior,
	"PhPhiusLightingExterior": elec.ApplianceLightingExterior,
	"PhPhiusLightingGarage":   elec.ApplianceLightingGarage,
	"PhCustomAnnualElectric":  elec.ApplianceCustomElectric,
	"PhCustomAnnualLighting":  elec.ApplianceCustomLighting,
	"PhCustomAnnualMEL":       elec.ApplianceCustomMEL,
}

// buildAppliances converts the merged room's PH equipment, sorted by
// identifier.
func buildAppliances(merged *source.Room) ([]*elec.Appliance, error) {
	if merged.Properties.Energy == nil {
		return nil, nil
	}
	equipment := merged.Properties.Energy.ElectricEquipment.Equipment()

	out := make([]*elec.Appliance, 0, len(equipment))
	for _, key := range sortedKeys(equipment) {
		src := equipment[key]
		t, ok := applianceTypes[src.Type]
		if !ok {
			return nil, phxerrors.UnknownEquipmentType(src.Type, sortedKeys(applianceTypes))
		}

		a := elec.NewAppliance(t, displayName(src.DisplayName, key))
		a.Identifier = displayName(src.Identifier, key)
		a.Comment = src.Comment
		if src.Quantity > 0 {
			a.Quantity = src.Quantity
		}
		if src.ReferenceQuantity > 0 {
			a.ReferenceQuantity = src.ReferenceQuantity
		}
		a.InConditionedSpace = src.InConditionedSpace
		if src.ReferenceEnergyNorm > 0 {
			a.ReferenceEnergyNorm = src.ReferenceEnergyNorm
		}
		a.EnergyDemand = src.EnergyDemand
		a.EnergyDemandPerUse = src.EnergyDemandPerUse
		a.CombinedEnergyFactor = src.CombinedEnergyFactor
		a.WaterConnection = src.WaterConnection
		a.CapacityType = src.CapacityType
		a.Capacity = src.Capacity
		a.ModifiedEnergy = src.ModifiedEnergy
		a.DryerType = src.DryerType
		a.GasConsumption = src.GasConsumption
		a.FieldUtilization = src.FieldUtilization
		a.CooktopType = src.CooktopType
		a.FractionHighEfficiency = src.FractionHighEff
		out = append(out, a)
	}
	return out, nil
}
