package building

import "github.com/stwalsh4118/phx/internal/models/geometry"

// Building holds a variant's components and zones in insertion order.
type Building struct {
	opaque []*ComponentOpaque
	shades []*ComponentOpaque
	Zones  []*Zone
}

// New creates an empty building.
func New() *Building {
	return &Building{}
}

// AddComponents appends opaque components. Shade-only components are kept
// apart from the envelope.
func (b *Building) AddComponents(cs ...*ComponentOpaque) {
	for _, c := range cs {
		if c.IsShade() {
			b.shades = append(b.shades, c)
			continue
		}
		b.opaque = append(b.opaque, c)
	}
}

// AddZones appends zones.
func (b *Building) AddZones(zs ...*Zone) {
	b.Zones = append(b.Zones, zs...)
}

// OpaqueComponents returns the envelope components.
func (b *Building) OpaqueComponents() []*ComponentOpaque {
	return b.opaque
}

// ShadingComponents returns the shade-only components.
func (b *Building) ShadingComponents() []*ComponentOpaque {
	return b.shades
}

// ApertureComponents returns every aperture hosted by the envelope.
func (b *Building) ApertureComponents() []*ComponentAperture {
	var out []*ComponentAperture
	for _, c := range b.opaque {
		out = append(out, c.Apertures...)
	}
	return out
}

// Polygons returns every polygon of every component: envelope, then
// apertures, then shades.
func (b *Building) Polygons() []*geometry.Polygon {
	var out []*geometry.Polygon
	for _, c := range b.opaque {
		out = append(out, c.Polygons...)
	}
	for _, a := range b.ApertureComponents() {
		out = append(out, a.Polygons...)
	}
	for _, s := range b.shades {
		out = append(out, s.Polygons...)
	}
	return out
}

// MergeOpaqueComponentsByAssembly folds components sharing a unique key into
// one. Groups keep the order of their first member; a group of one is kept
// as is.
func (b *Building) MergeOpaqueComponentsByAssembly() {
	groups := make(map[OpaqueKey][]*ComponentOpaque)
	var order []OpaqueKey
	for _, c := range b.opaque {
		k := c.UniqueKey()
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], c)
	}

	merged := make([]*ComponentOpaque, 0, len(order))
	for _, k := range order {
		group := groups[k]
		acc := group[0]
		for _, c := range group[1:] {
			acc = acc.Add(c)
		}
		merged = append(merged, acc)
	}
	b.opaque = merged
}

// MergeApertureComponentsByAssembly folds, within each opaque component, the
// apertures sharing a unique key.
func (b *Building) MergeApertureComponentsByAssembly() {
	for _, c := range b.opaque {
		groups := make(map[ApertureKey][]*ComponentAperture)
		var order []ApertureKey
		for _, a := range c.Apertures {
			k := a.UniqueKey()
			if _, ok := groups[k]; !ok {
				order = append(order, k)
			}
			groups[k] = append(groups[k], a)
		}

		merged := make([]*ComponentAperture, 0, len(order))
		for _, k := range order {
			group := groups[k]
			acc := group[0]
			for _, a := range group[1:] {
				acc = acc.Add(a)
			}
			acc.Host = c
			merged = append(merged, acc)
		}
		c.Apertures = merged
	}
}

// WeldVertices replaces every boundary vertex with the first vertex seen at
// the same coordinates. Vertex order within each polygon is kept.
func (b *Building) WeldVertices() {
	WeldVertices(b.Polygons())
}

// WeldVertices welds the boundary vertices of polys in place.
func WeldVertices(polys []*geometry.Polygon) {
	canonical := make(map[string]*geometry.Vertex)
	for _, p := range polys {
		for i, v := range p.Vertices {
			k := v.UniqueKey()
			if existing, ok := canonical[k]; ok {
				p.Vertices[i] = existing
				continue
			}
			canonical[k] = v
		}
	}
}

// TotalWeightedNetFloorArea sums the zones' weighted floor area.
func (b *Building) TotalWeightedNetFloorArea() float64 {
	total := 0.0
	for _, z := range b.Zones {
		total += z.WeightedNetFloorArea
	}
	return total
}

// TotalNetVolume sums the zones' net volume.
func (b *Building) TotalNetVolume() float64 {
	total := 0.0
	for _, z := range b.Zones {
		total += z.VolumeNet
	}
	return total
}

// TotalOccupants sums the zones' residential occupants.
func (b *Building) TotalOccupants() int {
	total := 0
	for _, z := range b.Zones {
		total += z.ResOccupantQuantity
	}
	return total
}
