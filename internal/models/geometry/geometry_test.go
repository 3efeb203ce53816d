package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stwalsh4118/phx/internal/models/ids"
)

const tolerance = 1e-9

func polygonWithNormal(n Vector) *Polygon {
	origin := NewVertex(0, 0, 0)
	return NewPolygon("test", 1, origin, n, NewPlane(origin, n, Vector{X: 1}))
}

func unitSquare(z float64) *Polygon {
	p := polygonWithNormal(Vector{Z: 1})
	p.AddVertex(NewVertex(0, 0, z))
	p.AddVertex(NewVertex(1, 0, z))
	p.AddVertex(NewVertex(1, 1, z))
	p.AddVertex(NewVertex(0, 1, z))
	return p
}

func TestVertex_IDsIncreaseFromOne(t *testing.T) {
	ids.ResetAll()

	a := NewVertex(0, 0, 0)
	b := NewVertex(1, 1, 1)

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
}

func TestVertex_UniqueKey(t *testing.T) {
	v := NewVertex(1, 2.5, -3)
	assert.Equal(t, "1.0000000000_2.5000000000_-3.0000000000", v.UniqueKey())

	near := NewVertex(1+1e-12, 2.5, -3)
	assert.Equal(t, v.UniqueKey(), near.UniqueKey(), "Expected differences past 10 decimals to collapse")

	far := NewVertex(1+1e-9, 2.5, -3)
	assert.NotEqual(t, v.UniqueKey(), far.UniqueKey())
}

func TestVertex_EqualConsidersID(t *testing.T) {
	a := NewVertex(1, 1, 1)
	b := NewVertex(1, 1, 1)

	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b), "Expected same coordinates with different ids to differ")
}

func TestPolygon_CardinalOrientationAngle(t *testing.T) {
	tests := []struct {
		name   string
		normal Vector
		want   float64
	}{
		{name: "north", normal: Vector{Y: 1}, want: 0},
		{name: "east", normal: Vector{X: 1}, want: 90},
		{name: "south", normal: Vector{Y: -1}, want: 180},
		{name: "west", normal: Vector{X: -1}, want: 270},
		{name: "north-east", normal: Vector{X: 1, Y: 1}, want: 45},
		{name: "up", normal: Vector{Z: 1}, want: 0},
		{name: "down", normal: Vector{Z: -1}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := polygonWithNormal(tt.normal)
			got := p.CardinalOrientationAngle()
			assert.InDelta(t, tt.want, got, tolerance)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, 360.0)
		})
	}
}

func TestPolygon_Tilt(t *testing.T) {
	up := polygonWithNormal(Vector{Z: 1})
	down := polygonWithNormal(Vector{Z: -1})
	wall := polygonWithNormal(Vector{X: 1})
	almostWall := polygonWithNormal(Vector{X: 1, Z: math.Tan(0.5 * math.Pi / 180)})
	sloped := polygonWithNormal(Vector{X: 1, Z: 1})

	assert.InDelta(t, 0, up.AngleFromHorizontal(), tolerance)
	assert.InDelta(t, 180, down.AngleFromHorizontal(), tolerance)
	assert.True(t, up.IsHorizontal())
	assert.True(t, down.IsHorizontal())
	assert.False(t, up.IsVertical())

	assert.True(t, wall.IsVertical())
	assert.False(t, wall.IsHorizontal())
	assert.True(t, almostWall.IsVertical(), "Expected 0.5° off vertical to be within tolerance")

	assert.False(t, sloped.IsVertical())
	assert.False(t, sloped.IsHorizontal())
	assert.InDelta(t, 45, sloped.AngleFromHorizontal(), tolerance)
}

func TestPolygon_CardinalDirection(t *testing.T) {
	assert.Equal(t, "SOUTH", polygonWithNormal(Vector{Y: -1}).CardinalDirection())
	assert.Equal(t, "WEST", polygonWithNormal(Vector{X: -1}).CardinalDirection())
	assert.Equal(t, "HORIZONTAL", polygonWithNormal(Vector{Z: -1}).CardinalDirection())
}

func TestPolygon_AddChildPolygonIDIsOrderedSet(t *testing.T) {
	p := polygonWithNormal(Vector{Y: 1})

	p.AddChildPolygonID(5)
	p.AddChildPolygonID(3)
	p.AddChildPolygonID(5)

	assert.Equal(t, []int{5, 3}, p.ChildPolygonIDs)
}

func TestPolygon_Perimeter(t *testing.T) {
	p := unitSquare(0)

	require.Len(t, p.Edges(), 4)
	assert.InDelta(t, 4.0, p.Perimeter(), tolerance)
}

func TestPlane_YAxis(t *testing.T) {
	pl := NewPlane(NewVertex(0, 0, 0), Vector{Z: 1}, Vector{X: 1})
	assert.InDelta(t, 1.0, pl.YAxis.Y, tolerance)
}
