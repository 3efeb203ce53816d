package constructions

import "github.com/stwalsh4118/phx/internal/models/ids"

var thermalBridgeIDs = ids.NewCounter("thermal_bridge")

// ThermalBridgeType groups bridges for the downstream tools.
type ThermalBridgeType int

const (
	ThermalBridgeAmbient    ThermalBridgeType = 15
	ThermalBridgePerimeter  ThermalBridgeType = 16
	ThermalBridgeBelowGrade ThermalBridgeType = 17
)

// ThermalBridge is a linear thermal bridge.
type ThermalBridge struct {
	ID          int
	Identifier  string
	DisplayName string
	Quantity    float64
	Length      float64 // m
	PsiValue    float64 // W/mK
	FRsi        float64
	GroupType   ThermalBridgeType
}

// NewThermalBridge creates a bridge with the next id.
func NewThermalBridge(identifier, displayName string) *ThermalBridge {
	return &ThermalBridge{
		ID:          thermalBridgeIDs.Next(),
		Identifier:  identifier,
		DisplayName: displayName,
		Quantity:    1,
		GroupType:   ThermalBridgeAmbient,
	}
}

// HeatLossCoefficient is quantity × length × psi, in W/K.
func (b *ThermalBridge) HeatLossCoefficient() float64 {
	return b.Quantity * b.Length * b.PsiValue
}
