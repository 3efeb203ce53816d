package geometry

// LineSegment connects two vertices.
type LineSegment struct {
	Start *Vertex
	End   *Vertex
}

// NewLineSegment creates a segment between two vertices.
func NewLineSegment(start, end *Vertex) LineSegment {
	return LineSegment{Start: start, End: end}
}

// Length returns the distance between the end points.
func (s LineSegment) Length() float64 {
	return s.End.Sub(s.Start).Length()
}

// Edges returns the closed boundary of a polygon as segments.
func (p *Polygon) Edges() []LineSegment {
	n := len(p.Vertices)
	if n < 2 {
		return nil
	}
	out := make([]LineSegment, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, NewLineSegment(p.Vertices[i], p.Vertices[(i+1)%n]))
	}
	return out
}

// Perimeter returns the summed edge length of a polygon.
func (p *Polygon) Perimeter() float64 {
	total := 0.0
	for _, e := range p.Edges() {
		total += e.Length()
	}
	return total
}
