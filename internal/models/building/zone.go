package building

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/stwalsh4118/phx/internal/models/constructions"
	"github.com/stwalsh4118/phx/internal/models/elec"
	"github.com/stwalsh4118/phx/internal/models/ids"
	"github.com/stwalsh4118/phx/internal/models/loads"
	"github.com/stwalsh4118/phx/internal/models/schedules"
)

var (
	zoneIDs = ids.NewCounter("zone")
	roomIDs = ids.NewCounter("ph_room")
)

// PhxRoomVentilation is the ventilation record of one space.
type PhxRoomVentilation struct {
	ID                int
	DisplayName       string
	FullName          string
	Quantity          int
	WeightedFloorArea float64 // m2
	NetVolume         float64 // m3
	Load              loads.Ventilation
	VentilationUnitID int
	VentPattern       *schedules.UtilizationPatternVent
}

// NewPhxRoomVentilation creates a room record with the next room id.
func NewPhxRoomVentilation(displayName string) *PhxRoomVentilation {
	return &PhxRoomVentilation{
		ID:                roomIDs.Next(),
		DisplayName:       displayName,
		FullName:          displayName,
		Quantity:          1,
		VentilationUnitID: -1,
	}
}

// Zone is one thermal zone built from a merged building segment.
type Zone struct {
	ID                   int
	DisplayName          string
	VolumeGross          float64 // m3
	VolumeNet            float64 // m3
	WeightedNetFloorArea float64 // m2
	SpecificHeatCapacity float64 // Wh/m2K
	ClearanceHeight      float64 // m
	ResOccupantQuantity  int
	ResNumberBedrooms    int
	WufiRooms            []*PhxRoomVentilation
	Appliances           *elec.Collection
	ThermalBridges       []*constructions.ThermalBridge
}

// NewZone creates an empty zone with the next zone id.
func NewZone(displayName string) *Zone {
	return &Zone{
		ID:                   zoneIDs.Next(),
		DisplayName:          displayName,
		SpecificHeatCapacity: 60,
		ClearanceHeight:      2.5,
		Appliances:           elec.NewCollection(),
	}
}

// AddRooms appends room records, keeps them sorted by full name and
// recomputes the net totals.
func (z *Zone) AddRooms(rooms ...*PhxRoomVentilation) {
	z.WufiRooms = append(z.WufiRooms, rooms...)
	sort.SliceStable(z.WufiRooms, func(i, j int) bool {
		return z.WufiRooms[i].FullName < z.WufiRooms[j].FullName
	})
	z.recomputeTotals()
}

func (z *Zone) recomputeTotals() {
	volumes := make([]float64, len(z.WufiRooms))
	areas := make([]float64, len(z.WufiRooms))
	for i, r := range z.WufiRooms {
		volumes[i] = r.NetVolume
		areas[i] = r.WeightedFloorArea
	}
	z.VolumeNet = floats.Sum(volumes)
	z.WeightedNetFloorArea = floats.Sum(areas)
}

// AddThermalBridges appends thermal bridges.
func (z *Zone) AddThermalBridges(tbs ...*constructions.ThermalBridge) {
	z.ThermalBridges = append(z.ThermalBridges, tbs...)
}

// TotalVentilation sums the room ventilation loads.
func (z *Zone) TotalVentilation() loads.Ventilation {
	var total loads.Ventilation
	for _, r := range z.WufiRooms {
		total = total.Add(r.Load)
	}
	return total
}
