package constructions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stwalsh4118/phx/internal/models/ids"
)

func TestOpaqueConstruction_UValue(t *testing.T) {
	c := NewOpaqueConstruction("wall-1", "Exterior Wall")
	c.AddLayer(Layer{Thickness: 0.2, Material: Material{DisplayName: "Insulation", Conductivity: 0.04}})
	c.AddLayer(Layer{Thickness: 0.1, Material: Material{DisplayName: "Concrete", Conductivity: 2.0}})

	assert.InDelta(t, 5.05, c.RValue(), 1e-9)
	assert.InDelta(t, 1/5.05, c.UValue(), 1e-9)
	assert.InDelta(t, 0.3, c.Thickness(), 1e-9)
}

func TestOpaqueConstruction_NoLayers(t *testing.T) {
	c := NewOpaqueConstruction("empty", "Empty")
	assert.Equal(t, 0.0, c.UValue())
}

func TestNewOpaqueConstruction_IDs(t *testing.T) {
	ids.ResetAll()

	a := NewOpaqueConstruction("a", "A")
	b := NewOpaqueConstruction("b", "B")

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
}

func TestWindowType_AverageFrameUValue(t *testing.T) {
	w := NewWindowType("win-1", "Triple")
	w.FrameLeft.UValue = 1.0
	w.FrameRight.UValue = 1.0
	w.FrameTop.UValue = 0.8
	w.FrameBottom.UValue = 1.2

	assert.InDelta(t, 1.0, w.AverageFrameUValue(), 1e-9)
	assert.Equal(t, 0.8, w.Frames()[2].UValue)
}

func TestThermalBridge_HeatLossCoefficient(t *testing.T) {
	b := NewThermalBridge("tb-1", "Balcony")
	b.Length = 10
	b.PsiValue = 0.05

	assert.InDelta(t, 0.5, b.HeatLossCoefficient(), 1e-9)
}
