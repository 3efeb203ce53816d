package services

import (
	"errors"

	"github.com/stwalsh4118/phx/internal/models/loads"
	"github.com/stwalsh4118/phx/internal/source"
)

// ErrNoRooms is returned when a building segment has no rooms to merge.
var ErrNoRooms = errors.New("no rooms to merge")

// GroupRoomsBySegment partitions rooms by building-segment identifier. Both
// the segments and the rooms inside each keep their source order.
func GroupRoomsBySegment(rooms []*source.Room) ([]string, map[string][]*source.Room) {
	groups := make(map[string][]*source.Room)
	var order []string
	for _, r := range rooms {
		id := r.SegmentID()
		if _, ok := groups[id]; !ok {
			order = append(order, id)
		}
		groups[id] = append(groups[id], r)
	}
	return order, groups
}

// MergeRooms combines the rooms of one building segment into a single room.
// Faces and spaces are concatenated; loads are averaged weighted by floor
// area (infiltration by exposed area, which counts ground faces only when
// groundExposed is set); everything else comes from the first room. The
// inputs are not modified.
func MergeRooms(rooms []*source.Room, groundExposed bool) (*source.Room, error) {
	if len(rooms) == 0 {
		return nil, ErrNoRooms
	}

	first := rooms[0]
	merged := &source.Room{
		Identifier:  first.Identifier,
		DisplayName: first.DisplayName,
		Multiplier:  first.Multiplier,
		Properties:  source.RoomProperties{PhHvac: first.Properties.PhHvac},
	}

	floorAreas := make([]float64, len(rooms))
	exposedAreas := make([]float64, len(rooms))
	for i, r := range rooms {
		merged.Faces = append(merged.Faces, r.Faces...)
		merged.FloorArea += r.FloorArea
		merged.Volume += r.Volume
		floorAreas[i] = r.FloorArea
		exposedAreas[i] = r.ExposedArea(groundExposed)
	}

	merged.Properties.Ph = mergePhProperties(rooms)
	merged.Properties.Energy = &source.RoomEnergyProperties{
		People:            mergePeople(rooms, floorAreas),
		Infiltration:      mergeInfiltration(rooms, exposedAreas),
		ElectricEquipment: mergeElectricEquipment(rooms, floorAreas),
		Lighting:          mergeLighting(rooms, floorAreas),
	}
	return merged, nil
}

func energyOf(r *source.Room) *source.RoomEnergyProperties {
	if r.Properties.Energy == nil {
		return &source.RoomEnergyProperties{}
	}
	return r.Properties.Energy
}

func mergePhProperties(rooms []*source.Room) *source.RoomPhProperties {
	var out *source.RoomPhProperties
	for _, r := range rooms {
		ph := r.Properties.Ph
		if ph == nil {
			continue
		}
		if out == nil {
			cp := *ph
			cp.Spaces = nil
			out = &cp
		}
		out.Spaces = append(out.Spaces, ph.Spaces...)
	}
	return out
}

func mergePeople(rooms []*source.Room, floorAreas []float64) *source.People {
	var base *source.People
	values := make([]float64, len(rooms))
	ph := &source.PeoplePh{}
	anyPh := false
	for i, r := range rooms {
		p := energyOf(r).People
		if p == nil {
			continue
		}
		if base == nil {
			base = p
		}
		values[i] = p.PeoplePerArea
		if p.Properties.Ph != nil {
			anyPh = true
			ph.NumberBedrooms += p.Properties.Ph.NumberBedrooms
			ph.NumberPeople += p.Properties.Ph.NumberPeople
			ph.NumDwellings += p.Properties.Ph.NumDwellings
		}
	}
	if base == nil {
		return nil
	}

	out := *base
	out.PeoplePerArea = loads.WeightedAverage(values, floorAreas)
	out.Properties.Ph = nil
	if anyPh {
		out.Properties.Ph = ph
	}
	return &out
}

func mergeInfiltration(rooms []*source.Room, exposedAreas []float64) *source.Infiltration {
	var base *source.Infiltration
	values := make([]float64, len(rooms))
	for i, r := range rooms {
		inf := energyOf(r).Infiltration
		if inf == nil {
			continue
		}
		if base == nil {
			base = inf
		}
		values[i] = inf.FlowPerExteriorArea
	}
	if base == nil {
		return nil
	}
	out := *base
	out.FlowPerExteriorArea = loads.WeightedAverage(values, exposedAreas)
	return &out
}

func mergeElectricEquipment(rooms []*source.Room, floorAreas []float64) *source.ElectricEquipment {
	var base *source.ElectricEquipment
	values := make([]float64, len(rooms))
	collection := make(map[string]*source.Equipment)
	for i, r := range rooms {
		ee := energyOf(r).ElectricEquipment
		if ee == nil {
			continue
		}
		if base == nil {
			base = ee
		}
		values[i] = ee.WattsPerArea

		equipment := ee.Equipment()
		for _, k := range sortedKeys(equipment) {
			if existing, ok := collection[k]; ok {
				existing.Quantity++
				continue
			}
			cp := *equipment[k]
			collection[k] = &cp
		}
	}
	if base == nil {
		return nil
	}

	out := *base
	out.WattsPerArea = loads.WeightedAverage(values, floorAreas)
	out.Properties = source.EquipmentExt{}
	if len(collection) > 0 {
		out.Properties.Ph = &source.EquipmentPh{EquipmentCollection: collection}
	}
	return &out
}

func mergeLighting(rooms []*source.Room, floorAreas []float64) *source.Lighting {
	var base *source.Lighting
	values := make([]float64, len(rooms))
	for i, r := range rooms {
		l := energyOf(r).Lighting
		if l == nil {
			continue
		}
		if base == nil {
			base = l
		}
		values[i] = l.WattsPerArea
	}
	if base == nil {
		return nil
	}
	out := *base
	out.WattsPerArea = loads.WeightedAverage(values, floorAreas)
	return &out
}
