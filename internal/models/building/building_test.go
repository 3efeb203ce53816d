package building

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stwalsh4118/phx/internal/models/constructions"
	"github.com/stwalsh4118/phx/internal/models/enums"
	"github.com/stwalsh4118/phx/internal/models/geometry"
	"github.com/stwalsh4118/phx/internal/models/ids"
)

func square(name string) *geometry.Polygon {
	center := geometry.NewVertex(0.5, 0.5, 0)
	normal := geometry.Vector{Z: 1}
	p := geometry.NewPolygon(name, 1, center, normal, geometry.NewPlane(center, normal, geometry.Vector{X: 1}))
	p.AddVertex(geometry.NewVertex(0, 0, 0))
	p.AddVertex(geometry.NewVertex(1, 0, 0))
	p.AddVertex(geometry.NewVertex(1, 1, 0))
	p.AddVertex(geometry.NewVertex(0, 1, 0))
	return p
}

func wall(name string, assembly *constructions.OpaqueConstruction) *ComponentOpaque {
	c := NewComponentOpaque(name)
	c.Assembly = assembly
	c.AddPolygons(square(name))
	return c
}

func TestMergeOpaqueComponentsByAssembly_CoincidentFaces(t *testing.T) {
	ids.ResetAll()
	assembly := constructions.NewOpaqueConstruction("wall-1", "Wall 1")
	a := wall("A", assembly)
	b := wall("B", assembly)
	key := a.UniqueKey()
	require.Equal(t, key, b.UniqueKey())

	bldg := New()
	bldg.AddComponents(a, b)
	bldg.MergeOpaqueComponentsByAssembly()

	comps := bldg.OpaqueComponents()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0].Polygons, 2)
	assert.Equal(t, key, comps[0].UniqueKey())
	assert.Equal(t, MergedComponentName, comps[0].DisplayName)
}

func TestMergeOpaqueComponentsByAssembly_PreservesPolygonsAndOrder(t *testing.T) {
	wallAsm := constructions.NewOpaqueConstruction("wall", "Wall")
	roofAsm := constructions.NewOpaqueConstruction("roof", "Roof")

	w1 := wall("W1", wallAsm)
	r1 := wall("R1", roofAsm)
	r1.FaceType = enums.FaceTypeRoofCeiling
	w2 := wall("W2", wallAsm)
	floor := wall("F1", wallAsm)
	floor.FaceType = enums.FaceTypeFloor
	floor.ExposureExterior = enums.ExposureExteriorGround

	bldg := New()
	bldg.AddComponents(w1, r1, w2, floor)
	before := len(bldg.Polygons())
	bldg.MergeOpaqueComponentsByAssembly()

	comps := bldg.OpaqueComponents()
	require.Len(t, comps, 3)
	assert.Equal(t, before, len(bldg.Polygons()))

	seen := map[OpaqueKey]bool{}
	for _, c := range comps {
		assert.False(t, seen[c.UniqueKey()], "duplicate key after merge")
		seen[c.UniqueKey()] = true
	}
	assert.Same(t, r1, comps[1], "single-member group is kept as is")
	assert.Same(t, floor, comps[2])
}

func TestComponentOpaque_Add_ReparentsApertures(t *testing.T) {
	asm := constructions.NewOpaqueConstruction("wall", "Wall")
	a := wall("A", asm)
	b := wall("B", asm)
	winA := NewComponentAperture("winA", a)
	winA.AddPolygons(square("winA"))
	a.AddAperture(winA)
	winB := NewComponentAperture("winB", b)
	winB.AddPolygons(square("winB"))
	b.AddAperture(winB)

	sum := a.Add(b)

	require.Len(t, sum.Apertures, 2)
	for _, ap := range sum.Apertures {
		assert.Same(t, sum, ap.Host)
	}
	assert.Contains(t, a.Polygons[0].ChildPolygonIDs, winA.Polygons[0].ID)
}

func TestMergeApertureComponentsByAssembly(t *testing.T) {
	asm := constructions.NewOpaqueConstruction("wall", "Wall")
	wt := constructions.NewWindowType("win", "Window")
	host := wall("Host", asm)
	for _, name := range []string{"w1", "w2"} {
		ap := NewComponentAperture(name, host)
		ap.WindowType = wt
		ap.AddPolygons(square(name))
		host.AddAperture(ap)
	}

	bldg := New()
	bldg.AddComponents(host)
	bldg.MergeApertureComponentsByAssembly()

	aps := bldg.ApertureComponents()
	require.Len(t, aps, 1)
	assert.Len(t, aps[0].Polygons, 2)
	assert.Same(t, host, aps[0].Host)
}

func TestWeldVertices_SharesVertexObjects(t *testing.T) {
	p1 := square("p1")
	p2 := square("p2")

	WeldVertices([]*geometry.Polygon{p1, p2})

	require.Len(t, p2.Vertices, 4)
	for i := range p1.Vertices {
		assert.Same(t, p1.Vertices[i], p2.Vertices[i])
	}
}

func TestWeldVertices_Idempotent(t *testing.T) {
	asm := constructions.NewOpaqueConstruction("wall", "Wall")
	bldg := New()
	bldg.AddComponents(wall("A", asm), wall("B", asm))

	bldg.WeldVertices()
	first := vertexIDs(bldg)
	bldg.WeldVertices()

	assert.Equal(t, first, vertexIDs(bldg))
	polys := bldg.Polygons()
	assert.Equal(t, polys[0].Vertices[2].ID, polys[1].Vertices[2].ID)
}

func TestWeldVertices_SharedInputIsNoop(t *testing.T) {
	p1 := square("p1")
	p2 := square("p2")
	copy(p2.Vertices, p1.Vertices)
	before := append([]*geometry.Vertex(nil), p2.Vertices...)

	WeldVertices([]*geometry.Polygon{p1, p2})

	for i := range before {
		assert.Same(t, before[i], p2.Vertices[i])
	}
}

func vertexIDs(b *Building) [][]int {
	var out [][]int
	for _, p := range b.Polygons() {
		row := make([]int, len(p.Vertices))
		for i, v := range p.Vertices {
			row[i] = v.ID
		}
		out = append(out, row)
	}
	return out
}

func TestBuilding_ShadesKeptApart(t *testing.T) {
	shade := NewComponentOpaque("Tree")
	shade.ExposureInterior = enums.ExposureInteriorShade
	shade.AddPolygons(square("tree"))

	bldg := New()
	bldg.AddComponents(wall("A", nil), shade)

	assert.Len(t, bldg.OpaqueComponents(), 1)
	assert.Len(t, bldg.ShadingComponents(), 1)
	assert.Len(t, bldg.Polygons(), 2)
	assert.Equal(t, -1, bldg.OpaqueComponents()[0].AssemblyID())
}

func TestZone_AddRooms(t *testing.T) {
	z := NewZone("Zone")
	kitchen := NewPhxRoomVentilation("Kitchen")
	kitchen.WeightedFloorArea = 12
	kitchen.NetVolume = 30
	kitchen.Load.FlowExtract = 60
	bath := NewPhxRoomVentilation("Bath")
	bath.WeightedFloorArea = 5.5
	bath.NetVolume = 13.75
	bath.Load.FlowExtract = 40

	z.AddRooms(kitchen, bath)

	require.Len(t, z.WufiRooms, 2)
	assert.Equal(t, "Bath", z.WufiRooms[0].DisplayName)
	assert.InDelta(t, 17.5, z.WeightedNetFloorArea, 1e-9)
	assert.InDelta(t, 43.75, z.VolumeNet, 1e-9)
	assert.InDelta(t, 100.0, z.TotalVentilation().FlowExtract, 1e-9)

	bldg := New()
	bldg.AddZones(z)
	assert.InDelta(t, 17.5, bldg.TotalWeightedNetFloorArea(), 1e-9)
	assert.InDelta(t, 43.75, bldg.TotalNetVolume(), 1e-9)
}
