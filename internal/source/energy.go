package source

import (
	"encoding/json"
	"fmt"
)

// ModelEnergyProperties holds the model-wide construction, material and
// schedule catalogs. Constructions and materials are polymorphic on their
// "type" key and are resolved when the document is decoded.
type ModelEnergyProperties struct {
	Materials           map[string]*Material           `json:"-" validate:"dive,required"`
	WindowMaterials     map[string]*WindowMaterial     `json:"-" validate:"dive,required"`
	OpaqueConstructions map[string]*OpaqueConstruction `json:"-" validate:"dive,required"`
	WindowConstructions map[string]*WindowConstruction `json:"-" validate:"dive,required"`
	Schedules           []*VentSchedule                `json:"-" validate:"dive,required"`
}

// UnmarshalJSON dispatches each catalog entry on its type tag, then resolves
// material references by identifier.
func (e *ModelEnergyProperties) UnmarshalJSON(data []byte) error {
	var raw struct {
		Materials     []json.RawMessage `json:"materials"`
		Constructions []json.RawMessage `json:"constructions"`
		Schedules     []*VentSchedule   `json:"ventilation_schedules"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.Materials = make(map[string]*Material)
	e.WindowMaterials = make(map[string]*WindowMaterial)
	e.OpaqueConstructions = make(map[string]*OpaqueConstruction)
	e.WindowConstructions = make(map[string]*WindowConstruction)
	e.Schedules = raw.Schedules

	for _, m := range raw.Materials {
		mat, glz, err := decodeMaterial(m)
		if err != nil {
			return err
		}
		if mat != nil {
			e.Materials[mat.Identifier] = mat
		}
		if glz != nil {
			e.WindowMaterials[glz.Identifier] = glz
		}
	}

	for _, c := range raw.Constructions {
		opaque, window, err := decodeConstruction(c)
		if err != nil {
			return err
		}
		if opaque != nil {
			if err := e.resolveOpaque(opaque); err != nil {
				return err
			}
			e.OpaqueConstructions[opaque.Identifier] = opaque
		}
		if window != nil {
			if err := e.resolveWindow(window); err != nil {
				return err
			}
			e.WindowConstructions[window.Identifier] = window
		}
	}
	return nil
}

func (e *ModelEnergyProperties) resolveOpaque(c *OpaqueConstruction) error {
	for _, name := range c.MaterialNames {
		m, ok := e.Materials[name]
		if !ok {
			return fmt.Errorf("construction %q references unknown material %q", c.Identifier, name)
		}
		c.Layers = append(c.Layers, m)
	}
	return nil
}

func (e *ModelEnergyProperties) resolveWindow(w *WindowConstruction) error {
	for _, name := range w.MaterialNames {
		if g, ok := e.WindowMaterials[name]; ok {
			w.Glazing = g
			continue
		}
		if _, ok := e.Materials[name]; !ok {
			return fmt.Errorf("window construction %q references unknown material %q", w.Identifier, name)
		}
	}
	return nil
}
