package services

import (
	"github.com/stwalsh4118/phx/internal/source"
)

const (
	testSegment   = "seg-1"
	testWallType  = "Ext Wall"
	testVentSched = "vent-sched"
)

// wallFace is a 10 m x 3 m outdoor wall facing south, starting at x0.
func wallFace(id string, x0 float64) *source.Face {
	return &source.Face{
		Identifier: id,
		FaceType:   source.FaceTypeWall,
		Geometry: source.Face3D{
			Boundary: []source.Point3D{{x0, 0, 0}, {x0 + 10, 0, 0}, {x0 + 10, 0, 3}, {x0, 0, 3}},
			Plane:    source.Plane{N: source.Point3D{0, -1, 0}, O: source.Point3D{x0, 0, 0}, X: source.Point3D{1, 0, 0}},
			Area:     30,
			Center:   source.Point3D{x0 + 5, 0, 1.5},
		},
		BoundaryCondition: source.BoundaryCondition{Type: source.BoundaryOutdoors},
		Properties:        source.FaceProperties{Energy: source.EnergyRef{Construction: testWallType}},
	}
}

func testSpace(id, number, name string, area float64) *source.Space {
	return &source.Space{
		Identifier:     id,
		Name:           name,
		Number:         number,
		Quantity:       1,
		FloorSegments:  []source.FloorSegment{{Area: area, WeightingFactor: 1}},
		AvgClearHeight: 2.5,
		Ventilation:    source.SpaceVentLoad{Supply: 30, Extract: 30},
		VentScheduleID: testVentSched,
	}
}

// testRoom is a 10 m x 10 m room with one outdoor wall and one space.
func testRoom(id, segment string, peoplePerArea float64, x0 float64) *source.Room {
	return &source.Room{
		Identifier: id,
		FloorArea:  100,
		Volume:     300,
		Faces:      []*source.Face{wallFace(id+"-wall", x0)},
		Properties: source.RoomProperties{
			Energy: &source.RoomEnergyProperties{
				People: &source.People{
					Identifier:    id + "-people",
					PeoplePerArea: peoplePerArea,
					Properties: source.PeopleExt{Ph: &source.PeoplePh{
						NumberBedrooms: 1,
						NumberPeople:   2,
						NumDwellings:   1,
					}},
				},
				Infiltration: &source.Infiltration{FlowPerExteriorArea: 0},
			},
			Ph: &source.RoomPhProperties{
				PhBldgSegmentID: segment,
				Spaces:          []*source.Space{testSpace(id+"-space", "1"+id, "Living", 100)},
			},
		},
	}
}

func testSchedule(high, standard float64) *source.VentSchedule {
	s := &source.VentSchedule{Identifier: testVentSched, DisplayName: "Residential"}
	ph := &source.VentSchedulePh{OperatingDaysWk: 7, OperatingWeeksYear: 52}
	ph.OperatingPeriods.High = source.VentPeriod{OperatingHours: high, OperationSpeed: 1}
	ph.OperatingPeriods.Standard = source.VentPeriod{OperatingHours: standard, OperationSpeed: 0.77}
	s.Properties.Ph = ph
	return s
}

func testSegmentDef(id, name string) *source.BldgSegment {
	return &source.BldgSegment{
		Identifier:       id,
		DisplayName:      name,
		NumFloorLevels:   2,
		NumDwellingUnits: 1,
		SourceFactors:    []source.Factor{{FuelName: "ELECTRICITY", Value: 1.8, Unit: "kWh/kWh"}},
		CO2eFactors:      []source.Factor{{FuelName: "ELECTRICITY", Value: 0.5, Unit: "g/kWh"}},
		Certification: &source.Certification{
			BuildingCategory: "RESIDENTIAL_BUILDING",
			BuildingStatus:   "2",
		},
		ThermalBridges: map[string]*source.ThermalBridge{
			"tb-1": {Identifier: "tb-1", DisplayName: "Balcony", Quantity: 2, Length: 5, PsiValue: 0.1},
		},
	}
}

// testModel builds a linked model from rooms, with one wall construction,
// one ventilation schedule and one building segment per distinct segment id.
func testModel(rooms ...*source.Room) *source.Model {
	m := &source.Model{
		Identifier:  "model-1",
		DisplayName: "Test House",
		Rooms:       rooms,
	}
	m.Properties.Energy = source.ModelEnergyProperties{
		Materials: map[string]*source.Material{},
		OpaqueConstructions: map[string]*source.OpaqueConstruction{
			testWallType: {
				Identifier: testWallType,
				Layers:     []*source.Material{{Identifier: "Brick", Thickness: 0.2, Conductivity: 0.8}},
			},
		},
		WindowConstructions: map[string]*source.WindowConstruction{},
		Schedules:           []*source.VentSchedule{testSchedule(24, 0)},
	}

	ph := &source.ModelPhProperties{}
	seen := map[string]bool{}
	for _, r := range rooms {
		if r.Properties.Ph == nil {
			continue
		}
		id := r.Properties.Ph.PhBldgSegmentID
		if !seen[id] {
			seen[id] = true
			ph.BldgSegments = append(ph.BldgSegments, testSegmentDef(id, "Segment "+id))
		}
	}
	m.Properties.Ph = ph
	m.Link()
	return m
}

func monthly(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
