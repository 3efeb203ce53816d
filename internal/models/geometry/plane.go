package geometry

// Plane is the local plane of a polygon, as given by the source model.
type Plane struct {
	Origin *Vertex
	Normal Vector
	XAxis  Vector
	YAxis  Vector
}

// NewPlane builds a plane from its origin, normal and x-axis. The y-axis is
// derived as normal × x.
func NewPlane(origin *Vertex, normal, xAxis Vector) Plane {
	return Plane{
		Origin: origin,
		Normal: normal,
		XAxis:  xAxis,
		YAxis:  normal.Cross(xAxis),
	}
}
