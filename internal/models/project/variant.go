// Package project holds variants and the project that owns them, along
// with the shared construction and schedule catalogs.
package project

import (
	"github.com/stwalsh4118/phx/internal/models/building"
	"github.com/stwalsh4118/phx/internal/models/climate"
	"github.com/stwalsh4118/phx/internal/models/geometry"
	"github.com/stwalsh4118/phx/internal/models/ids"
	"github.com/stwalsh4118/phx/internal/models/mech"
)

var variantIDs = ids.NewCounter("variant")

// Variant is a single buildable case.
type Variant struct {
	ID              int
	Name            string
	Remarks         string
	Building        *building.Building
	PhCertification *Certification
	Location        *climate.Location
	Mech            *mech.Collection
}

// NewVariant creates an empty variant with the next variant id.
func NewVariant(name string) *Variant {
	return &Variant{
		ID:              variantIDs.Next(),
		Name:            name,
		Building:        building.New(),
		PhCertification: NewCertification(),
		Location:        climate.NewLocation(),
		Mech:            mech.NewCollection(),
	}
}

// AllPolygons returns every polygon of every component.
func (v *Variant) AllPolygons() []*geometry.Polygon {
	return v.Building.Polygons()
}

// WeldVertices welds every component polygon of the variant.
func (v *Variant) WeldVertices() {
	building.WeldVertices(v.AllPolygons())
}

// ZoneIDs returns the ids of the variant's zones.
func (v *Variant) ZoneIDs() []int {
	out := make([]int, 0, len(v.Building.Zones))
	for _, z := range v.Building.Zones {
		out = append(out, z.ID)
	}
	return out
}
