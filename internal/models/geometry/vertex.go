// Package geometry holds the geometric primitives of the intermediate model:
// vertices, vectors, planes, polygons and line segments.
package geometry

import (
	"fmt"

	"github.com/stwalsh4118/phx/internal/models/ids"
)

var vertexIDs = ids.NewCounter("vertex")

// Vertex is a numbered 3D point. Polygons hold vertices by pointer so that
// welding can make several polygons share one instance.
type Vertex struct {
	ID int
	X  float64
	Y  float64
	Z  float64
}

// NewVertex creates a vertex with the next vertex id.
func NewVertex(x, y, z float64) *Vertex {
	return &Vertex{ID: vertexIDs.Next(), X: x, Y: y, Z: z}
}

// UniqueKey is the deduplication key used for welding: the coordinates at
// ten decimal places.
func (v *Vertex) UniqueKey() string {
	return fmt.Sprintf("%.10f_%.10f_%.10f", v.X, v.Y, v.Z)
}

// Equal compares both coordinates and id.
func (v *Vertex) Equal(o *Vertex) bool {
	if v == nil || o == nil {
		return v == o
	}
	return v.ID == o.ID && v.X == o.X && v.Y == o.Y && v.Z == o.Z
}

// Sub returns the vector from o to v.
func (v *Vertex) Sub(o *Vertex) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v *Vertex) String() string {
	return fmt.Sprintf("Vertex(id=%d, x=%.3f, y=%.3f, z=%.3f)", v.ID, v.X, v.Y, v.Z)
}
