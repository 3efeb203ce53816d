// Package loads holds per-space and per-zone load records.
package loads

import "gonum.org/v1/gonum/floats"

// Ventilation flow rates in m3/h.
type Ventilation struct {
	FlowSupply   float64
	FlowExtract  float64
	FlowTransfer float64
}

// Add sums the flow rates.
func (v Ventilation) Add(o Ventilation) Ventilation {
	return Ventilation{
		FlowSupply:   v.FlowSupply + o.FlowSupply,
		FlowExtract:  v.FlowExtract + o.FlowExtract,
		FlowTransfer: v.FlowTransfer + o.FlowTransfer,
	}
}

// Balanced reports whether supply and extract match within 1e-6.
func (v Ventilation) Balanced() bool {
	d := v.FlowSupply - v.FlowExtract
	return d < 1e-6 && d > -1e-6
}

// Occupancy is the people load of a zone.
type Occupancy struct {
	PeoplePerArea float64 // ppl/m2
	NumBedrooms   int
	NumOccupants  int
	NumDwellings  int
}

// Infiltration is the envelope air leakage.
type Infiltration struct {
	FlowPerExteriorArea float64 // m3/s-m2
}

// AirtightnessQ50 converts the infiltration rate to m3/h-m2.
func (i Infiltration) AirtightnessQ50() float64 {
	return i.FlowPerExteriorArea * 3600
}

// ElectricEquipment is the plug load density.
type ElectricEquipment struct {
	WattsPerArea float64
}

// Lighting is the lighting power density.
type Lighting struct {
	WattsPerArea float64
}

// WeightedAverage computes Σ(value_i × weight_i) / Σ weight_i. It returns 0
// when the weights sum to 0. values and weights must have the same length.
func WeightedAverage(values, weights []float64) float64 {
	den := floats.Sum(weights)
	if den == 0 {
		return 0
	}
	return floats.Dot(values, weights) / den
}
