package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector is a free 3D direction, used for normals and plane axes.
type Vector struct {
	X float64
	Y float64
	Z float64
}

func (v Vector) r3() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func fromR3(v r3.Vec) Vector {
	return Vector{X: v.X, Y: v.Y, Z: v.Z}
}

// Length returns the Euclidean norm.
func (v Vector) Length() float64 {
	return r3.Norm(v.r3())
}

// Unit returns the unit vector in the same direction, or the zero vector.
func (v Vector) Unit() Vector {
	if v.Length() < 1e-12 {
		return Vector{}
	}
	return fromR3(r3.Unit(v.r3()))
}

// Dot returns the dot product.
func (v Vector) Dot(o Vector) float64 {
	return r3.Dot(v.r3(), o.r3())
}

// Cross returns the cross product v × o.
func (v Vector) Cross(o Vector) Vector {
	return fromR3(r3.Cross(v.r3(), o.r3()))
}

// AngleTo returns the angle between v and o in degrees.
func (v Vector) AngleTo(o Vector) float64 {
	den := v.Length() * o.Length()
	if den == 0 {
		return 0
	}
	c := v.Dot(o) / den
	// Clamp rounding noise before acos.
	c = math.Max(-1, math.Min(1, c))
	return math.Acos(c) * 180 / math.Pi
}
