package geometry

import (
	"math"

	"github.com/stwalsh4118/phx/internal/models/ids"
)

var polygonIDs = ids.NewCounter("polygon")

// axisTolerance is the tolerance, in degrees, used when deciding whether a
// polygon is vertical or horizontal.
const axisTolerance = 1.0

var zAxis = Vector{Z: 1}

// Polygon is a planar face with numbered identity. Area, centroid, normal
// and plane come from the source model; nothing is recomputed from the
// vertices.
type Polygon struct {
	ID              int
	DisplayName     string
	Area            float64
	Center          *Vertex
	Normal          Vector
	Plane           Plane
	Vertices        []*Vertex
	ChildPolygonIDs []int
}

// NewPolygon creates a polygon with the next polygon id and no vertices.
func NewPolygon(displayName string, area float64, center *Vertex, normal Vector, plane Plane) *Polygon {
	return &Polygon{
		ID:          polygonIDs.Next(),
		DisplayName: displayName,
		Area:        area,
		Center:      center,
		Normal:      normal,
		Plane:       plane,
	}
}

// AddVertex appends a vertex to the boundary.
func (p *Polygon) AddVertex(v *Vertex) {
	p.Vertices = append(p.Vertices, v)
}

// AddChildPolygonID records an inset polygon (e.g. a window in a wall).
// Ids are kept once, in insertion order.
func (p *Polygon) AddChildPolygonID(id int) {
	for _, existing := range p.ChildPolygonIDs {
		if existing == id {
			return
		}
	}
	p.ChildPolygonIDs = append(p.ChildPolygonIDs, id)
}

// CardinalOrientationAngle is the compass angle of the normal projected on
// the horizontal plane, north = 0, east = 90, in [0, 360). Horizontal
// polygons report 0.
func (p *Polygon) CardinalOrientationAngle() float64 {
	if math.Abs(p.Normal.X) < 1e-12 && math.Abs(p.Normal.Y) < 1e-12 {
		return 0
	}
	angle := math.Atan2(p.Normal.X, p.Normal.Y) * 180 / math.Pi
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	if angle >= 360 {
		angle = 0
	}
	return angle
}

// AngleFromHorizontal is the tilt of the polygon: the angle between the
// normal and +Z. 0 faces up, 90 is vertical, 180 faces down.
func (p *Polygon) AngleFromHorizontal() float64 {
	return p.Normal.AngleTo(zAxis)
}

// IsVertical reports a tilt of 90° within the axis tolerance.
func (p *Polygon) IsVertical() bool {
	return math.Abs(p.AngleFromHorizontal()-90) <= axisTolerance
}

// IsHorizontal reports a tilt of 0° or 180° within the axis tolerance.
func (p *Polygon) IsHorizontal() bool {
	tilt := p.AngleFromHorizontal()
	return tilt <= axisTolerance || tilt >= 180-axisTolerance
}

// CardinalDirection buckets the orientation into N/E/S/W quadrants centred on
// each axis. Horizontal polygons return "HORIZONTAL".
func (p *Polygon) CardinalDirection() string {
	if p.IsHorizontal() {
		return "HORIZONTAL"
	}
	a := p.CardinalOrientationAngle()
	switch {
	case a >= 315 || a < 45:
		return "NORTH"
	case a < 135:
		return "EAST"
	case a < 225:
		return "SOUTH"
	default:
		return "WEST"
	}
}
