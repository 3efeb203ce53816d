package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	phxerrors "github.com/stwalsh4118/phx/internal/errors"
	"github.com/stwalsh4118/phx/internal/models/building"
	"github.com/stwalsh4118/phx/internal/models/climate"
	"github.com/stwalsh4118/phx/internal/models/constructions"
	"github.com/stwalsh4118/phx/internal/models/geometry"
	"github.com/stwalsh4118/phx/internal/models/ids"
)

func TestNewVariant_Defaults(t *testing.T) {
	ids.ResetAll()
	v1 := NewVariant("Segment A")
	v2 := NewVariant("Segment B")

	assert.Equal(t, 1, v1.ID)
	assert.Equal(t, 2, v2.ID)
	assert.Equal(t, 0, v1.Mech.Len())
	assert.Equal(t, "1-RESIDENTIAL_BUILDING", v1.PhCertification.Settings.BuildingCategory.String())
	assert.Equal(t, 20.0, v1.PhCertification.Building.SetPoints.Winter)
}

func TestCertification_UseTypeHoles(t *testing.T) {
	c := NewCertification()

	err := c.Settings.BuildingUseType.Set("3")
	assert.ErrorIs(t, err, phxerrors.ErrEnumValueNotAllowed)
	assert.Equal(t, "RESIDENTIAL", c.Settings.BuildingUseType.Value(), "rejected value keeps the old one")

	require.NoError(t, c.Settings.BuildingUseType.Set("11"))
	assert.Equal(t, "OFFICE_ADMINISTRATIVE", c.Settings.BuildingUseType.Value())
}

func TestNewFoundation(t *testing.T) {
	f, err := NewFoundation("Slab", "SLAB_ON_GRADE")
	require.NoError(t, err)
	assert.Equal(t, 3, f.FoundationType.Number())

	_, err = NewFoundation("Cave", "CAVE")
	assert.ErrorIs(t, err, phxerrors.ErrEnumValueNotAllowed)
}

func TestProject_Catalogs(t *testing.T) {
	p := New("Test")
	wall := constructions.NewOpaqueConstruction("wall", "Wall")
	roof := constructions.NewOpaqueConstruction("roof", "Roof")
	p.AddAssemblyType("wall", wall)
	p.AddAssemblyType("roof", roof)
	p.AddAssemblyType("wall", wall)

	got, ok := p.AssemblyType("roof")
	require.True(t, ok)
	assert.Same(t, roof, got)
	assert.Equal(t, []*constructions.OpaqueConstruction{wall, roof}, p.AssemblyTypes())

	_, ok = p.WindowType("missing")
	assert.False(t, ok)
	assert.Equal(t, ProgramName, p.ProgramName)
}

func TestProject_Validate(t *testing.T) {
	p := New("Test")
	v := NewVariant("A")
	v.Location.SiteToSourceFactors = []climate.ConversionFactor{{FuelName: "NATURAL_GAS", Value: 1.1}}
	p.AddVariant(v)
	require.NoError(t, p.Validate())

	bad := NewVariant("B")
	bad.Location.SiteToCO2eFactors = []climate.ConversionFactor{{FuelName: "WHALE_OIL", Value: 9}}
	p.AddVariant(bad)
	err := p.Validate()
	assert.ErrorIs(t, err, phxerrors.ErrFuelNotAllowed)
	assert.Contains(t, err.Error(), `"B"`)
}

func TestVariant_WeldVertices(t *testing.T) {
	v := NewVariant("A")
	mk := func() *building.ComponentOpaque {
		c := building.NewComponentOpaque("wall")
		center := geometry.NewVertex(0, 0, 0)
		p := geometry.NewPolygon("p", 1, center, geometry.Vector{Y: 1}, geometry.NewPlane(center, geometry.Vector{Y: 1}, geometry.Vector{X: 1}))
		p.AddVertex(geometry.NewVertex(0, 0, 0))
		p.AddVertex(geometry.NewVertex(1, 0, 0))
		p.AddVertex(geometry.NewVertex(1, 0, 1))
		c.AddPolygons(p)
		return c
	}
	v.Building.AddComponents(mk(), mk())

	v.WeldVertices()

	polys := v.AllPolygons()
	require.Len(t, polys, 2)
	for i := range polys[0].Vertices {
		assert.Equal(t, polys[0].Vertices[i].ID, polys[1].Vertices[i].ID)
	}
}
