// Package constructions holds assembly types: layered opaque constructions,
// window types and thermal bridges.
package constructions

import (
	"github.com/stwalsh4118/phx/internal/models/ids"
)

var assemblyIDs = ids.NewCounter("opaque_construction")

// Material is a homogeneous layer material.
type Material struct {
	DisplayName  string
	Conductivity float64 // W/mk
	Density      float64 // kg/m3
	HeatCapacity float64 // J/kgK
	Emissivity   float64
}

// Layer is one material at a given thickness.
type Layer struct {
	Thickness float64 // m
	Material  Material
}

// Resistance returns the layer's thermal resistance in m2K/W. A layer with
// no conductivity contributes nothing.
func (l Layer) Resistance() float64 {
	if l.Material.Conductivity <= 0 {
		return 0
	}
	return l.Thickness / l.Material.Conductivity
}

// OpaqueConstruction is a layered assembly, outside to inside.
type OpaqueConstruction struct {
	ID          int
	Identifier  string
	DisplayName string
	Layers      []Layer
}

// NewOpaqueConstruction creates an assembly with the next assembly id.
func NewOpaqueConstruction(identifier, displayName string) *OpaqueConstruction {
	return &OpaqueConstruction{
		ID:          assemblyIDs.Next(),
		Identifier:  identifier,
		DisplayName: displayName,
	}
}

// AddLayer appends a layer on the inside face.
func (c *OpaqueConstruction) AddLayer(l Layer) {
	c.Layers = append(c.Layers, l)
}

// RValue is the summed layer resistance, without surface films.
func (c *OpaqueConstruction) RValue() float64 {
	r := 0.0
	for _, l := range c.Layers {
		r += l.Resistance()
	}
	return r
}

// UValue is 1/RValue, or 0 for an assembly with no resistance.
func (c *OpaqueConstruction) UValue() float64 {
	r := c.RValue()
	if r <= 0 {
		return 0
	}
	return 1 / r
}

// Thickness is the summed layer thickness.
func (c *OpaqueConstruction) Thickness() float64 {
	t := 0.0
	for _, l := range c.Layers {
		t += l.Thickness
	}
	return t
}
