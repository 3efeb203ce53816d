package wufi

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stwalsh4118/phx/internal/models/building"
	"github.com/stwalsh4118/phx/internal/models/constructions"
	"github.com/stwalsh4118/phx/internal/models/elec"
	"github.com/stwalsh4118/phx/internal/models/enums"
	"github.com/stwalsh4118/phx/internal/models/geometry"
	"github.com/stwalsh4118/phx/internal/models/ids"
	"github.com/stwalsh4118/phx/internal/models/mech"
	"github.com/stwalsh4118/phx/internal/models/project"
	"github.com/stwalsh4118/phx/internal/models/schedules"
)

func square(name string, corners ...*geometry.Vertex) *geometry.Polygon {
	p := geometry.NewPolygon(name, 1, corners[0], geometry.Vector{Y: -1}, geometry.Plane{})
	for _, v := range corners {
		p.AddVertex(v)
	}
	return p
}

// testProject builds one variant with two walls sharing an edge, a window in
// the first wall, a shade, one zone and a ventilator plus a tank.
func testProject(t *testing.T) *project.Project {
	t.Helper()
	ids.ResetAll()

	p := project.New("Test House")
	p.ProjectData.Customer.Name = "Jane Client"
	p.ProjectData.ProjectDate = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	pattern := schedules.NewUtilizationPatternVent("Residential")
	p.VentPatterns.Add(pattern)

	wallType := constructions.NewOpaqueConstruction("wall-1", "Exterior Wall")
	wallType.AddLayer(constructions.Layer{
		Thickness: 0.2,
		Material:  constructions.Material{DisplayName: "Mineral Wool", Conductivity: 0.035, Density: 30, HeatCapacity: 840},
	})
	p.AddAssemblyType(wallType.Identifier, wallType)

	windowType := constructions.NewWindowType("win-1", "Triple Pane")
	p.AddWindowType(windowType.Identifier, windowType)

	v := project.NewVariant("Segment A")
	p.AddVariant(v)

	a := geometry.NewVertex(0, 0, 0)
	b := geometry.NewVertex(1, 0, 0)
	c := geometry.NewVertex(1, 0, 1)
	d := geometry.NewVertex(0, 0, 1)
	e := geometry.NewVertex(2, 0, 0)
	f := geometry.NewVertex(2, 0, 1)

	wall1 := building.NewComponentOpaque("Wall 1")
	wall1.Assembly = wallType
	wall1.AddPolygons(square("w1", a, b, c, d))

	wall2 := building.NewComponentOpaque("Wall 2")
	wall2.Assembly = wallType
	wall2.AddPolygons(square("w2", b, e, f, c))

	window := building.NewComponentAperture("Window", wall1)
	window.WindowType = windowType
	window.InstallDepth = 0.12
	window.AddPolygons(square("win",
		geometry.NewVertex(0.25, 0, 0.25), geometry.NewVertex(0.75, 0, 0.25),
		geometry.NewVertex(0.75, 0, 0.75), geometry.NewVertex(0.25, 0, 0.75)))
	wall1.AddAperture(window)

	shade := building.NewComponentOpaque("Overhang")
	shade.ExposureInterior = enums.ExposureInteriorShade
	shade.AddPolygons(square("s", geometry.NewVertex(0, -1, 1), geometry.NewVertex(1, -1, 1), c, d))

	v.Building.AddComponents(wall1, shade, wall2)

	zone := building.NewZone("Zone 1")
	room := building.NewPhxRoomVentilation("Living")
	room.WeightedFloorArea = 20
	room.NetVolume = 50
	room.VentPattern = pattern
	zone.AddRooms(room)
	zone.Appliances.AddAppliance(elec.NewAppliance(elec.ApplianceDishwasher, "Dishwasher"))
	v.Building.AddZones(zone)

	erv := mech.NewVentilator("ERV")
	erv.Params.SensibleHeatRecovery = 0.84
	ventSystem := mech.NewSubSystem("ERV", erv)
	duct := mech.NewDuct("Supply", mech.DuctTypeSupply)
	duct.AddSegment(&mech.DuctSegment{Length: 4, Diameter: 160})
	ventSystem.Distribution = &mech.Distribution{SupplyDucts: []*mech.Duct{duct}}
	v.Mech.AddNewMechSubsystem("erv", ventSystem)

	tankSystem := mech.NewSubSystem("Tank", mech.NewHotWaterTank("Tank"))
	pipe := mech.NewPipeElement("Kitchen branch")
	pipe.AddSegment(&mech.PipeSegment{Length: 3, DiameterMM: 12.7})
	tankSystem.Distribution = &mech.Distribution{BranchPiping: []*mech.PipeElement{pipe}}
	v.Mech.AddNewMechSubsystem("tank", tankSystem)

	return p
}

func TestNewDocument_SharedVerticesAppearOnce(t *testing.T) {
	// Arrange
	p := testProject(t)

	// Act
	doc := NewDocument(p)

	// Assert
	require.Equal(t, 1, doc.Variants.Count)
	g := doc.Variants.Items[0].Graphics3D
	// 6 wall corners + 4 window corners + 2 shade-only corners
	assert.Equal(t, 12, g.Vertices.Count)
	assert.Equal(t, 4, g.Polygons.Count)

	seen := make(map[int]bool)
	for _, vx := range g.Vertices.Items {
		assert.False(t, seen[vx.IdentNr], "vertex %d written twice", vx.IdentNr)
		seen[vx.IdentNr] = true
	}
}

func TestNewDocument_ComponentOrder(t *testing.T) {
	p := testProject(t)

	doc := NewDocument(p)

	comps := doc.Variants.Items[0].Building.Components
	require.Equal(t, 4, comps.Count)
	names := make([]string, 0, comps.Count)
	for _, c := range comps.Items {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Wall 1", "Wall 2", "Window", "Overhang"}, names)

	wall := comps.Items[0]
	assert.Equal(t, p.AssemblyTypes()[0].ID, wall.IdentNrAssembly)
	assert.Equal(t, -1, wall.IdentNrWindowType)
	assert.Equal(t, []int{window(t, p).Polygons[0].ID}, doc.Variants.Items[0].Graphics3D.Polygons.Items[0].IdentNrPolygonsInside.Items)

	win := comps.Items[2]
	assert.Equal(t, -1, win.IdentNrAssembly)
	assert.Equal(t, p.WindowTypes()[0].ID, win.IdentNrWindowType)
	assert.InDelta(t, 0.12, win.DepthWindowReveal, 1e-9)
	assert.Equal(t, int(enums.OpacityTransparent), win.Type)

	assert.Equal(t, enums.ExposureInteriorShade, comps.Items[3].InnerAttachment)
}

func window(t *testing.T, p *project.Project) *building.ComponentAperture {
	t.Helper()
	apertures := p.Variants[0].Building.ApertureComponents()
	require.Len(t, apertures, 1)
	return apertures[0]
}

func TestNewDocument_ZoneRoomsAndDevices(t *testing.T) {
	p := testProject(t)

	doc := NewDocument(p)

	zones := doc.Variants.Items[0].Building.Zones
	require.Equal(t, 1, zones.Count)
	z := zones.Items[0]
	require.Equal(t, 1, z.RoomsVentilation.Count)
	room := z.RoomsVentilation.Items[0]
	assert.Equal(t, p.VentPatterns.Patterns()[0].ID, room.IdentNrUtilizationPatternVent)
	assert.Equal(t, -1, room.IdentNrVentilationUnit)
	assert.InDelta(t, 2.5, room.ClearRoomHeight, 1e-9)
	assert.Equal(t, 1, z.HomeDevice.Count)
	assert.Equal(t, int(elec.ApplianceDishwasher), z.HomeDevice.Items[0].Type)
}

func TestNewDocument_HVAC(t *testing.T) {
	p := testProject(t)

	doc := NewDocument(p)

	systems := doc.Variants.Items[0].HVAC.Systems
	require.Equal(t, 1, systems.Count)
	sys := systems.Items[0]
	assert.Equal(t, 1, sys.ZonesCoverage.Count)
	require.Equal(t, 2, sys.Devices.Count)

	erv := sys.Devices.Items[0]
	require.NotNil(t, erv.Ventilation)
	assert.Nil(t, erv.HeatPump)
	assert.True(t, erv.UsedForVentilation)
	assert.InDelta(t, 0.84, erv.Ventilation.HeatRecoveryEfficiency, 1e-9)

	tank := sys.Devices.Items[1]
	require.NotNil(t, tank.Tank)
	assert.True(t, tank.UsedForDHW)

	require.Equal(t, 1, sys.Distribution.Ducts.Count)
	assert.InDelta(t, 160, sys.Distribution.Ducts.Items[0].DuctDiameter, 1e-9)
	assert.InDelta(t, 4, sys.Distribution.Ducts.Items[0].DuctLength, 1e-9)
	require.Equal(t, 1, sys.Distribution.BranchPiping.Count)
	assert.Equal(t, 0, sys.Distribution.RecircPiping.Count)
}

func TestNewDocument_HeatPumpRatings(t *testing.T) {
	ids.ResetAll()
	p := project.New("HP")
	v := project.NewVariant("A")
	p.AddVariant(v)
	hp := mech.NewHeatPumpMonthly("HP")
	hp.Params.COP1 = 2.5
	hp.Params.AmbientTemp1 = -8.3
	v.Mech.AddNewMechSubsystem("hp", mech.NewSubSystem("HP", hp))

	doc := NewDocument(p)

	dev := doc.Variants.Items[0].HVAC.Systems.Items[0].Devices.Items[0]
	require.NotNil(t, dev.HeatPump)
	assert.Equal(t, int(enums.HeatPumpTypeRatedMonthly), dev.HeatPump.HPType)
	require.NotNil(t, dev.HeatPump.RatedCOP1)
	assert.InDelta(t, 2.5, *dev.HeatPump.RatedCOP1, 1e-9)
	assert.Nil(t, dev.HeatPump.AnnualCOP)
}

func TestWrite(t *testing.T) {
	// Arrange
	p := testProject(t)
	var buf bytes.Buffer

	// Act
	err := Write(&buf, p)

	// Assert
	require.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, xml.Header))
	assert.Contains(t, out, "<WUFIplusProject>")
	assert.Contains(t, out, `<Vertices count="12">`)
	assert.Equal(t, 12, strings.Count(out, "<Vertix "))
	assert.Contains(t, out, "<Customer_Name>Jane Client</Customer_Name>")
	assert.Contains(t, out, "<Date_Project>2026-03-01</Date_Project>")
	assert.Contains(t, out, "<DistributionVentilation>")
	assert.Contains(t, out, `<Branch_Pipes count="1">`)
	assert.NotContains(t, out, "<HeatPump_Parameters>")
}

func TestWrite_OmitsZeroDate(t *testing.T) {
	ids.ResetAll()
	p := project.New("Empty")
	var buf bytes.Buffer

	require.NoError(t, Write(&buf, p))

	assert.NotContains(t, buf.String(), "Date_Project")
	assert.Contains(t, buf.String(), `<Variants count="0">`)
}
