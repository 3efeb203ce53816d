package constructions

import (
	"github.com/stwalsh4118/phx/internal/models/ids"
)

var windowTypeIDs = ids.NewCounter("window_type")

// FrameElement is one side of a window frame.
type FrameElement struct {
	Width      float64 // m
	UValue     float64 // W/m2K
	PsiGlazing float64 // W/mK
	PsiInstall float64 // W/mK
	ChiValue   float64 // W/K
}

// WindowType is a glazing + frame assembly.
type WindowType struct {
	ID          int
	Identifier  string
	DisplayName string

	GlazingUValue float64
	GlazingGValue float64
	UValueWindow  float64

	FrameTop    FrameElement
	FrameRight  FrameElement
	FrameBottom FrameElement
	FrameLeft   FrameElement
}

// NewWindowType creates a window type with the next window-type id.
func NewWindowType(identifier, displayName string) *WindowType {
	return &WindowType{
		ID:          windowTypeIDs.Next(),
		Identifier:  identifier,
		DisplayName: displayName,
	}
}

// Frames returns the four frame elements in left, right, top, bottom order.
func (w *WindowType) Frames() [4]FrameElement {
	return [4]FrameElement{w.FrameLeft, w.FrameRight, w.FrameTop, w.FrameBottom}
}

// AverageFrameUValue is the unweighted mean of the four frame U-values.
func (w *WindowType) AverageFrameUValue() float64 {
	total := 0.0
	for _, f := range w.Frames() {
		total += f.UValue
	}
	return total / 4
}
