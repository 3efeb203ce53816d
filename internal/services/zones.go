package services

import (
	"github.com/stwalsh4118/phx/internal/models/building"
	"github.com/stwalsh4118/phx/internal/models/constructions"
	"github.com/stwalsh4118/phx/internal/models/loads"
	"github.com/stwalsh4118/phx/internal/models/mech"
	"github.com/stwalsh4118/phx/internal/models/project"
	"github.com/stwalsh4118/phx/internal/source"
)

// buildZone creates the variant's zone from the merged room: one room
// record per space, occupancy from the merged people load and the
// segment's thermal bridges. Mechanical sub-systems must already be
// installed so that ventilation units resolve.
func buildZone(proj *project.Project, variant *project.Variant, merged *source.Room, segment *source.BldgSegment) *building.Zone {
	name := merged.Name()
	if segment != nil {
		name = segment.Name()
	}
	z := building.NewZone(name)
	z.VolumeGross = merged.Volume

	ph := merged.Properties.Ph
	if ph.SpecificHeatCapacity > 0 {
		z.SpecificHeatCapacity = ph.SpecificHeatCapacity
	}
	if e := merged.Properties.Energy; e != nil && e.People != nil && e.People.Properties.Ph != nil {
		z.ResOccupantQuantity = e.People.Properties.Ph.NumberPeople
		z.ResNumberBedrooms = e.People.Properties.Ph.NumberBedrooms
	}

	rooms := make([]*building.PhxRoomVentilation, 0, len(ph.Spaces))
	for _, sp := range ph.Spaces {
		rooms = append(rooms, buildRoomVentilation(proj, variant, sp))
	}
	z.AddRooms(rooms...)

	if segment != nil {
		z.AddThermalBridges(buildThermalBridges(segment)...)
	}
	return z
}

func buildRoomVentilation(proj *project.Project, variant *project.Variant, sp *source.Space) *building.PhxRoomVentilation {
	r := building.NewPhxRoomVentilation(displayName(sp.Name, sp.DisplayName))
	r.FullName = sp.FullName()
	if sp.Quantity > 0 {
		r.Quantity = sp.Quantity
	}
	r.WeightedFloorArea = sp.WeightedFloorArea()
	r.NetVolume = sp.NetVolume()
	r.Load = loads.Ventilation{
		FlowSupply:   sp.Ventilation.Supply,
		FlowExtract:  sp.Ventilation.Extract,
		FlowTransfer: sp.Ventilation.Transfer,
	}
	if sp.VentScheduleID != "" {
		r.VentPattern = proj.VentPatterns.Get(sp.VentScheduleID)
	}
	if ss := ventilationSubsystemFor(variant, sp); ss != nil {
		r.VentilationUnitID = ss.ID
	}
	return r
}

// ventilationSubsystemFor resolves the sub-system of the ventilation unit on
// the space's host room, by unit key.
func ventilationSubsystemFor(variant *project.Variant, sp *source.Space) *mech.SubSystem {
	if sp.Host == nil || sp.Host.Properties.PhHvac == nil {
		return nil
	}
	sys := sp.Host.Properties.PhHvac.VentilationSystem
	if sys == nil || sys.VentilationUnit == nil {
		return nil
	}
	return variant.Mech.GetMechSubsystemByKey(sys.VentilationUnit.Key())
}

func buildThermalBridges(segment *source.BldgSegment) []*constructions.ThermalBridge {
	out := make([]*constructions.ThermalBridge, 0, len(segment.ThermalBridges))
	for _, key := range sortedKeys(segment.ThermalBridges) {
		src := segment.ThermalBridges[key]
		tb := constructions.NewThermalBridge(displayName(src.Identifier, key), displayName(src.DisplayName, key))
		if src.Quantity > 0 {
			tb.Quantity = src.Quantity
		}
		tb.Length = src.Length
		tb.PsiValue = src.PsiValue
		tb.FRsi = src.FRsi
		if src.GroupType != 0 {
			tb.GroupType = constructions.ThermalBridgeType(src.GroupType)
		}
		out = append(out, tb)
	}
	return out
}
