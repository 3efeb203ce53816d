package mech

import "github.com/stwalsh4118/phx/internal/models/ids"

var (
	ductIDs = ids.NewCounter("duct")
	pipeIDs = ids.NewCounter("pipe_element")
)

// DuctType says which airstream a duct carries.
type DuctType int

const (
	DuctTypeSupply  DuctType = 1
	DuctTypeExhaust DuctType = 2
)

// DuctSegment is a straight run of duct. A segment with no height or width
// is round.
type DuctSegment struct {
	Identifier             string
	DisplayName            string
	Length                 float64 // m
	Diameter               float64 // mm
	Height                 float64 // mm
	Width                  float64 // mm
	InsulationThickness    float64 // mm
	InsulationConductivity float64 // W/mk
	InsulationReflective   bool
}

// IsRound reports whether the segment is round rather than rectangular.
func (s *DuctSegment) IsRound() bool {
	return s.Height == 0 && s.Width == 0
}

// Duct is a run of segments serving one or more ventilation units.
type Duct struct {
	ID                  int
	DisplayName         string
	DuctType            DuctType
	Segments            []*DuctSegment
	AssignedVentUnitIDs []int
}

// NewDuct creates a duct with the next duct id.
func NewDuct(displayName string, dt DuctType) *Duct {
	return &Duct{ID: ductIDs.Next(), DisplayName: displayName, DuctType: dt}
}

// AddSegment appends a segment.
func (d *Duct) AddSegment(s *DuctSegment) {
	d.Segments = append(d.Segments, s)
}

// Length is the summed segment length.
func (d *Duct) Length() float64 {
	total := 0.0
	for _, s := range d.Segments {
		total += s.Length
	}
	return total
}

// DiameterMM is the length-weighted diameter of the round segments.
func (d *Duct) DiameterMM() float64 {
	num, den := 0.0, 0.0
	for _, s := range d.Segments {
		if !s.IsRound() {
			continue
		}
		num += s.Diameter * s.Length
		den += s.Length
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// PipeSegment is a straight run of DHW pipe.
type PipeSegment struct {
	Identifier             string
	DisplayName            string
	Material               string
	Length                 float64 // m
	DiameterMM             float64
	InsulationThickness    float64 // mm
	InsulationConductivity float64 // W/mk
	InsulationReflective   bool
	WaterTemp              float64 // °C
	DailyPeriod            float64 // hours
}

// PipeElement is a DHW branch or recirculation loop made of segments.
type PipeElement struct {
	ID          int
	DisplayName string
	Segments    []*PipeSegment
}

// NewPipeElement creates a pipe element with the next pipe id.
func NewPipeElement(displayName string) *PipeElement {
	return &PipeElement{ID: pipeIDs.Next(), DisplayName: displayName}
}

// AddSegment appends a segment.
func (p *PipeElement) AddSegment(s *PipeSegment) {
	p.Segments = append(p.Segments, s)
}

// Length is the summed segment length.
func (p *PipeElement) Length() float64 {
	total := 0.0
	for _, s := range p.Segments {
		total += s.Length
	}
	return total
}

// DiameterMM is the length-weighted diameter.
func (p *PipeElement) DiameterMM() float64 {
	num, den := 0.0, 0.0
	for _, s := range p.Segments {
		num += s.DiameterMM * s.Length
		den += s.Length
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// Distribution is the ducting or piping attached to a sub-system.
type Distribution struct {
	SupplyDucts  []*Duct
	ExhaustDucts []*Duct
	BranchPiping []*PipeElement
	RecircPiping []*PipeElement
}

// Ducts returns supply then exhaust ducts.
func (d *Distribution) Ducts() []*Duct {
	out := make([]*Duct, 0, len(d.SupplyDucts)+len(d.ExhaustDucts))
	out = append(out, d.SupplyDucts...)
	return append(out, d.ExhaustDucts...)
}

// IsEmpty reports whether no ducts or pipes are attached.
func (d *Distribution) IsEmpty() bool {
	return len(d.SupplyDucts) == 0 && len(d.ExhaustDucts) == 0 &&
		len(d.BranchPiping) == 0 && len(d.RecircPiping) == 0
}
