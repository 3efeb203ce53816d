package services

import (
	"github.com/stwalsh4118/phx/internal/logger"
	"github.com/stwalsh4118/phx/internal/models/building"
	"github.com/stwalsh4118/phx/internal/models/enums"
	"github.com/stwalsh4118/phx/internal/models/geometry"
	"github.com/stwalsh4118/phx/internal/models/project"
	"github.com/stwalsh4118/phx/internal/source"
)

type faceKind struct {
	faceType enums.FaceType
	opacity  enums.Opacity
}

// faceKinds maps source face types to component face type and opacity.
var faceKinds = map[string]faceKind{
	source.FaceTypeWall:        {enums.FaceTypeWall, enums.OpacityOpaque},
	source.FaceTypeRoofCeiling: {enums.FaceTypeRoofCeiling, enums.OpacityOpaque},
	source.FaceTypeFloor:       {enums.FaceTypeFloor, enums.OpacityOpaque},
	source.FaceTypeAirBoundary: {enums.FaceTypeAirBoundary, enums.OpacityAirBoundary},
}

// exposures maps source boundary conditions to exterior exposure.
var exposures = map[string]enums.ExposureExterior{
	source.BoundaryOutdoors:  enums.ExposureExteriorExterior,
	source.BoundaryGround:    enums.ExposureExteriorGround,
	source.BoundarySurface:   enums.ExposureExteriorSurface,
	source.BoundaryAdiabatic: enums.ExposureExteriorSurface,
}

type colorKey struct {
	faceType string
	boundary string
}

var interiorColors = map[colorKey]enums.Color{
	{source.FaceTypeWall, source.BoundaryOutdoors}:         enums.ColorExtWallInner,
	{source.FaceTypeWall, source.BoundaryGround}:           enums.ColorExtWallInner,
	{source.FaceTypeWall, source.BoundarySurface}:          enums.ColorInnerWall,
	{source.FaceTypeWall, source.BoundaryAdiabatic}:        enums.ColorInnerWall,
	{source.FaceTypeFloor, source.BoundaryOutdoors}:        enums.ColorFloor,
	{source.FaceTypeFloor, source.BoundaryGround}:          enums.ColorFloor,
	{source.FaceTypeFloor, source.BoundarySurface}:         enums.ColorFloor,
	{source.FaceTypeFloor, source.BoundaryAdiabatic}:       enums.ColorFloor,
	{source.FaceTypeRoofCeiling, source.BoundaryOutdoors}:  enums.ColorFlatRoofInner,
	{source.FaceTypeRoofCeiling, source.BoundaryGround}:    enums.ColorCeiling,
	{source.FaceTypeRoofCeiling, source.BoundarySurface}:   enums.ColorCeiling,
	{source.FaceTypeRoofCeiling, source.BoundaryAdiabatic}: enums.ColorCeiling,
}

var exteriorColors = map[colorKey]enums.Color{
	{source.FaceTypeWall, source.BoundaryOutdoors}:         enums.ColorExtWallOuter,
	{source.FaceTypeWall, source.BoundaryGround}:           enums.ColorSurfaceGroundContact,
	{source.FaceTypeWall, source.BoundarySurface}:          enums.ColorInnerWall,
	{source.FaceTypeWall, source.BoundaryAdiabatic}:        enums.ColorInnerWall,
	{source.FaceTypeFloor, source.BoundaryOutdoors}:        enums.ColorExtWallOuter,
	{source.FaceTypeFloor, source.BoundaryGround}:          enums.ColorGroundBeneath,
	{source.FaceTypeFloor, source.BoundarySurface}:         enums.ColorCeiling,
	{source.FaceTypeFloor, source.BoundaryAdiabatic}:       enums.ColorCeiling,
	{source.FaceTypeRoofCeiling, source.BoundaryOutdoors}:  enums.ColorFlatRoofOuter,
	{source.FaceTypeRoofCeiling, source.BoundaryGround}:    enums.ColorGroundAbove,
	{source.FaceTypeRoofCeiling, source.BoundarySurface}:   enums.ColorFloor,
	{source.FaceTypeRoofCeiling, source.BoundaryAdiabatic}: enums.ColorFloor,
}

// faceColors picks the interior and exterior colors of a face. Outdoor roofs
// that are not horizontal use the sloped-roof colors.
func faceColors(faceType, boundary string, poly *geometry.Polygon) (enums.Color, enums.Color) {
	key := colorKey{faceType, boundary}
	in, ok := interiorColors[key]
	if !ok {
		in = enums.ColorInnerWall
	}
	out, ok := exteriorColors[key]
	if !ok {
		out = enums.ColorInnerWall
	}
	if faceType == source.FaceTypeRoofCeiling && boundary == source.BoundaryOutdoors && !poly.IsHorizontal() {
		in, out = enums.ColorSlopedRoofInner, enums.ColorSlopedRoofOuter
	}
	return in, out
}

func vertexOf(p source.Point3D) *geometry.Vertex {
	return geometry.NewVertex(p[0], p[1], p[2])
}

func vectorOf(p source.Point3D) geometry.Vector {
	return geometry.Vector{X: p[0], Y: p[1], Z: p[2]}
}

// polygonFromFace3D builds a polygon from source geometry. Area, center and
// plane are taken as given.
func polygonFromFace3D(name string, g source.Face3D) *geometry.Polygon {
	normal := vectorOf(g.Plane.N)
	plane := geometry.NewPlane(vertexOf(g.Plane.O), normal, vectorOf(g.Plane.X))
	poly := geometry.NewPolygon(name, g.Area, vertexOf(g.Center), normal, plane)
	for _, pt := range g.Boundary {
		poly.AddVertex(vertexOf(pt))
	}
	return poly
}

// buildComponents creates one opaque component per face of room, with an
// aperture component per aperture. zoneID becomes the interior exposure.
func buildComponents(proj *project.Project, room *source.Room, zoneID int, log *logger.Logger) []*building.ComponentOpaque {
	out := make([]*building.ComponentOpaque, 0, len(room.Faces))
	for _, face := range room.Faces {
		out = append(out, buildOpaqueComponent(proj, face, zoneID, log))
	}
	return out
}

func buildOpaqueComponent(proj *project.Project, face *source.Face, zoneID int, log *logger.Logger) *building.ComponentOpaque {
	name := displayName(face.DisplayName, face.Identifier)
	c := building.NewComponentOpaque(name)

	kind, ok := faceKinds[face.FaceType]
	if !ok {
		kind = faceKinds[source.FaceTypeWall]
	}
	c.FaceType = kind.faceType
	c.Opacity = kind.opacity
	c.ExposureInterior = zoneID
	if exp, ok := exposures[face.BoundaryCondition.Type]; ok {
		c.ExposureExterior = exp
	}

	poly := polygonFromFace3D(name, face.Geometry)
	c.ColorInterior, c.ColorExterior = faceColors(face.FaceType, face.BoundaryCondition.Type, poly)
	c.AddPolygons(poly)

	if ref := face.Properties.Energy.Construction; ref != "" {
		if assembly, ok := proj.AssemblyType(ref); ok {
			c.Assembly = assembly
		} else {
			log.Warn("Face references an unknown construction", map[string]interface{}{
				"face":         face.Identifier,
				"construction": ref,
			})
		}
	}

	for _, ap := range face.Apertures {
		c.AddAperture(buildApertureComponent(proj, ap, c, log))
	}
	return c
}

func buildApertureComponent(proj *project.Project, ap *source.Aperture, host *building.ComponentOpaque, log *logger.Logger) *building.ComponentAperture {
	name := displayName(ap.DisplayName, ap.Identifier)
	a := building.NewComponentAperture(name, host)
	if ap.Properties.Ph.InstallDepth > 0 {
		a.InstallDepth = ap.Properties.Ph.InstallDepth
	}

	if ref := ap.Properties.Energy.Construction; ref != "" {
		if wt, ok := proj.WindowType(ref); ok {
			a.WindowType = wt
		} else {
			log.Warn("Aperture references an unknown window construction", map[string]interface{}{
				"aperture":     ap.Identifier,
				"construction": ref,
			})
		}
	}

	a.AddPolygons(polygonFromFace3D(name, ap.Geometry))
	return a
}

// AddModelShadesToVariant adds each shade as a shade-only opaque component,
// i.e. one with an interior exposure of -1.
func AddModelShadesToVariant(variant *project.Variant, shades []*source.Shade) {
	for _, sh := range shades {
		name := displayName(sh.DisplayName, sh.Identifier)
		c := building.NewComponentOpaque(name)
		c.ExposureInterior = enums.ExposureInteriorShade
		c.ExposureExterior = enums.ExposureExteriorExterior
		c.AddPolygons(polygonFromFace3D(name, sh.Geometry))
		variant.Building.AddComponents(c)
	}
}
