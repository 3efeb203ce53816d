// Package building holds components, zones and the building that groups
// them, together with the merge and weld passes.
package building

import (
	"github.com/stwalsh4118/phx/internal/models/constructions"
	"github.com/stwalsh4118/phx/internal/models/enums"
	"github.com/stwalsh4118/phx/internal/models/geometry"
	"github.com/stwalsh4118/phx/internal/models/ids"
)

var componentIDs = ids.NewCounter("component")

// MergedComponentName is the display name given to the sum of two components.
const MergedComponentName = "Merged_Component"

// OpaqueKey is the structural identity of an opaque component. Components
// with equal keys can be merged.
type OpaqueKey struct {
	FaceType             enums.FaceType
	Opacity              enums.Opacity
	ExposureInterior     int
	InteriorAttachmentID int
	ExposureExterior     enums.ExposureExterior
	AssemblyID           int
}

// ComponentOpaque is one opaque face group (wall, floor, roof) with the
// apertures it hosts.
type ComponentOpaque struct {
	ID                   int
	DisplayName          string
	FaceType             enums.FaceType
	Opacity              enums.Opacity
	ColorInterior        enums.Color
	ColorExterior        enums.Color
	ExposureInterior     int
	InteriorAttachmentID int
	ExposureExterior     enums.ExposureExterior
	Assembly             *constructions.OpaqueConstruction
	Polygons             []*geometry.Polygon
	Apertures            []*ComponentAperture
}

// NewComponentOpaque creates an empty opaque wall with the next component id.
func NewComponentOpaque(displayName string) *ComponentOpaque {
	return &ComponentOpaque{
		ID:                   componentIDs.Next(),
		DisplayName:          displayName,
		FaceType:             enums.FaceTypeWall,
		Opacity:              enums.OpacityOpaque,
		ExposureInterior:     1,
		InteriorAttachmentID: -1,
		ExposureExterior:     enums.ExposureExteriorExterior,
	}
}

// AssemblyID returns the id of the assembly, or -1 when none is set.
func (c *ComponentOpaque) AssemblyID() int {
	if c.Assembly == nil {
		return -1
	}
	return c.Assembly.ID
}

// UniqueKey returns the grouping key.
func (c *ComponentOpaque) UniqueKey() OpaqueKey {
	return OpaqueKey{
		FaceType:             c.FaceType,
		Opacity:              c.Opacity,
		ExposureInterior:     c.ExposureInterior,
		InteriorAttachmentID: c.InteriorAttachmentID,
		ExposureExterior:     c.ExposureExterior,
		AssemblyID:           c.AssemblyID(),
	}
}

// IsShade reports whether this component only shades.
func (c *ComponentOpaque) IsShade() bool {
	return c.ExposureInterior == enums.ExposureInteriorShade
}

// AddPolygons appends polygons.
func (c *ComponentOpaque) AddPolygons(polys ...*geometry.Polygon) {
	c.Polygons = append(c.Polygons, polys...)
}

// AddAperture hosts a and links its polygons into this component's
// polygons as children.
func (c *ComponentOpaque) AddAperture(a *ComponentAperture) {
	a.Host = c
	c.Apertures = append(c.Apertures, a)
	for _, host := range c.Polygons {
		for _, child := range a.Polygons {
			host.AddChildPolygonID(child.ID)
		}
	}
}

// Area sums the polygon areas.
func (c *ComponentOpaque) Area() float64 {
	total := 0.0
	for _, p := range c.Polygons {
		total += p.Area
	}
	return total
}

// Add returns a new component carrying c's fields, the union of both polygon
// lists and both aperture lists. Every aperture is re-hosted on the result.
func (c *ComponentOpaque) Add(o *ComponentOpaque) *ComponentOpaque {
	out := *c
	out.ID = componentIDs.Next()
	out.DisplayName = MergedComponentName

	out.Polygons = make([]*geometry.Polygon, 0, len(c.Polygons)+len(o.Polygons))
	out.Polygons = append(out.Polygons, c.Polygons...)
	out.Polygons = append(out.Polygons, o.Polygons...)

	out.Apertures = make([]*ComponentAperture, 0, len(c.Apertures)+len(o.Apertures))
	for _, a := range c.Apertures {
		a.Host = &out
		out.Apertures = append(out.Apertures, a)
	}
	for _, a := range o.Apertures {
		a.Host = &out
		out.Apertures = append(out.Apertures, a)
	}
	return &out
}

// ApertureKey is the structural identity of an aperture component.
type ApertureKey struct {
	FaceType         enums.FaceType
	Opacity          enums.Opacity
	ExposureInterior int
	ExposureExterior enums.ExposureExterior
	WindowTypeID     int
	InstallDepth     float64
}

// ComponentAperture is a group of windows or doors hosted by one opaque
// component.
type ComponentAperture struct {
	ID               int
	DisplayName      string
	FaceType         enums.FaceType
	Opacity          enums.Opacity
	ColorInterior    enums.Color
	ColorExterior    enums.Color
	ExposureInterior int
	ExposureExterior enums.ExposureExterior
	WindowType       *constructions.WindowType
	InstallDepth     float64 // m
	Host             *ComponentOpaque
	Polygons         []*geometry.Polygon
}

// NewComponentAperture creates a transparent window component hosted by host.
func NewComponentAperture(displayName string, host *ComponentOpaque) *ComponentAperture {
	a := &ComponentAperture{
		ID:               componentIDs.Next(),
		DisplayName:      displayName,
		FaceType:         enums.FaceTypeWindow,
		Opacity:          enums.OpacityTransparent,
		ColorInterior:    enums.ColorWindow,
		ColorExterior:    enums.ColorWindow,
		ExposureInterior: 1,
		ExposureExterior: enums.ExposureExteriorExterior,
		InstallDepth:     0.1,
		Host:             host,
	}
	if host != nil {
		a.ExposureInterior = host.ExposureInterior
		a.ExposureExterior = host.ExposureExterior
	}
	return a
}

// WindowTypeID returns the id of the window type, or -1 when none is set.
func (a *ComponentAperture) WindowTypeID() int {
	if a.WindowType == nil {
		return -1
	}
	return a.WindowType.ID
}

// UniqueKey returns the grouping key.
func (a *ComponentAperture) UniqueKey() ApertureKey {
	return ApertureKey{
		FaceType:         a.FaceType,
		Opacity:          a.Opacity,
		ExposureInterior: a.ExposureInterior,
		ExposureExterior: a.ExposureExterior,
		WindowTypeID:     a.WindowTypeID(),
		InstallDepth:     a.InstallDepth,
	}
}

// AddPolygons appends polygons.
func (a *ComponentAperture) AddPolygons(polys ...*geometry.Polygon) {
	a.Polygons = append(a.Polygons, polys...)
}

// Area sums the polygon areas.
func (a *ComponentAperture) Area() float64 {
	total := 0.0
	for _, p := range a.Polygons {
		total += p.Area
	}
	return total
}

// Add returns a new aperture with a's fields and the union of both polygon
// lists, hosted by a's host.
func (a *ComponentAperture) Add(o *ComponentAperture) *ComponentAperture {
	out := *a
	out.ID = componentIDs.Next()
	out.DisplayName = MergedComponentName
	out.Polygons = make([]*geometry.Polygon, 0, len(a.Polygons)+len(o.Polygons))
	out.Polygons = append(out.Polygons, a.Polygons...)
	out.Polygons = append(out.Polygons, o.Polygons...)
	return &out
}
