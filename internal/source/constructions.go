package source

import (
	"encoding/json"
	"fmt"

	phxerrors "github.com/stwalsh4118/phx/internal/errors"
)

// Construction and material type tags.
const (
	TypeOpaqueConstruction         = "OpaqueConstruction"
	TypeOpaqueConstructionAbridged = "OpaqueConstructionAbridged"
	TypeWindowConstruction         = "WindowConstruction"
	TypeWindowConstructionAbridged = "WindowConstructionAbridged"
	TypeEnergyMaterial             = "EnergyMaterial"
	TypeEnergyMaterialNoMass       = "EnergyMaterialNoMass"
	TypeWindowMaterialSimple       = "EnergyWindowMaterialSimpleGlazSys"
)

// Material is an opaque layer material.
type Material struct {
	Type         string  `json:"type"`
	Identifier   string  `json:"identifier" validate:"required"`
	DisplayName  string  `json:"display_name"`
	Thickness    float64 `json:"thickness" validate:"gte=0"`
	Conductivity float64 `json:"conductivity" validate:"gte=0"`
	Density      float64 `json:"density"`
	SpecificHeat float64 `json:"specific_heat"`
	RValue       float64 `json:"r_value"`
}

// WindowMaterial is a simple glazing system.
type WindowMaterial struct {
	Type        string  `json:"type"`
	Identifier  string  `json:"identifier" validate:"required"`
	DisplayName string  `json:"display_name"`
	UFactor     float64 `json:"u_factor" validate:"gte=0"`
	SHGC        float64 `json:"shgc" validate:"gte=0,lte=1"`
}

// OpaqueConstruction is a layered assembly. Abridged documents reference
// materials by identifier; full documents inline them. Both end up in Layers
// once the model is decoded.
type OpaqueConstruction struct {
	Type          string      `json:"type"`
	Identifier    string      `json:"identifier" validate:"required"`
	DisplayName   string      `json:"display_name"`
	MaterialNames []string    `json:"-"`
	Layers        []*Material `json:"-" validate:"dive,required"`
}

// PhFrameElement is one side of a PH window frame.
type PhFrameElement struct {
	Width      float64 `json:"width"`
	UFactor    float64 `json:"u_factor"`
	PsiGlazing float64 `json:"psi_glazing"`
	PsiInstall float64 `json:"psi_install"`
	ChiValue   float64 `json:"chi_value"`
}

// WindowConstruction is a window type with optional PH frame and glazing.
type WindowConstruction struct {
	Type          string            `json:"type"`
	Identifier    string            `json:"identifier" validate:"required"`
	DisplayName   string            `json:"display_name"`
	MaterialNames []string          `json:"-"`
	Glazing       *WindowMaterial   `json:"-"`
	Properties    WindowPhExtension `json:"properties"`
}

// WindowPhExtension holds the PH window data.
type WindowPhExtension struct {
	Ph *struct {
		PhFrame *struct {
			Top    PhFrameElement `json:"top"`
			Right  PhFrameElement `json:"right"`
			Bottom PhFrameElement `json:"bottom"`
			Left   PhFrameElement `json:"left"`
		} `json:"ph_frame"`
		PhGlazing *struct {
			UFactor float64 `json:"u_factor"`
			GValue  float64 `json:"g_value"`
		} `json:"ph_glazing"`
	} `json:"ph"`
}

// typeTag peeks at the "type" key of a raw object.
func typeTag(raw json.RawMessage) (string, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return "", err
	}
	return head.Type, nil
}

// constructionBody is the shared decoding shape of both construction kinds.
// Materials is either a list of names or a list of material objects.
type constructionBody struct {
	Type        string            `json:"type"`
	Identifier  string            `json:"identifier"`
	DisplayName string            `json:"display_name"`
	Materials   []json.RawMessage `json:"materials"`
	Properties  WindowPhExtension `json:"properties"`
}

// materialRefs splits a materials list into names and inline objects.
func materialRefs(raws []json.RawMessage) ([]string, []json.RawMessage) {
	var names []string
	var inline []json.RawMessage
	for _, raw := range raws {
		var name string
		if err := json.Unmarshal(raw, &name); err == nil {
			names = append(names, name)
			continue
		}
		inline = append(inline, raw)
	}
	return names, inline
}

// decodeConstruction decodes one construction object, dispatching on its
// type tag. Exactly one of the two results is non-nil on success.
func decodeConstruction(raw json.RawMessage) (*OpaqueConstruction, *WindowConstruction, error) {
	tag, err := typeTag(raw)
	if err != nil {
		return nil, nil, err
	}

	var body constructionBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, nil, err
	}
	names, inline := materialRefs(body.Materials)

	switch tag {
	case TypeOpaqueConstruction, TypeOpaqueConstructionAbridged:
		c := &OpaqueConstruction{
			Type:          tag,
			Identifier:    body.Identifier,
			DisplayName:   body.DisplayName,
			MaterialNames: names,
		}
		for _, m := range inline {
			mat, _, err := decodeMaterial(m)
			if err != nil {
				return nil, nil, err
			}
			if mat != nil {
				c.Layers = append(c.Layers, mat)
			}
		}
		return c, nil, nil

	case TypeWindowConstruction, TypeWindowConstructionAbridged:
		w := &WindowConstruction{
			Type:          tag,
			Identifier:    body.Identifier,
			DisplayName:   body.DisplayName,
			MaterialNames: names,
			Properties:    body.Properties,
		}
		for _, m := range inline {
			_, glz, err := decodeMaterial(m)
			if err != nil {
				return nil, nil, err
			}
			if glz != nil {
				w.Glazing = glz
			}
		}
		return nil, w, nil

	default:
		return nil, nil, fmt.Errorf("%w: construction %q has type %q", phxerrors.ErrUnknownSourceType, body.Identifier, tag)
	}
}

// decodeMaterial decodes one material object, dispatching on its type tag.
func decodeMaterial(raw json.RawMessage) (*Material, *WindowMaterial, error) {
	tag, err := typeTag(raw)
	if err != nil {
		return nil, nil, err
	}

	switch tag {
	case TypeEnergyMaterial, TypeEnergyMaterialNoMass:
		var m Material
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, nil, err
		}
		// No-mass materials carry an R-value instead of a thickness.
		if tag == TypeEnergyMaterialNoMass && m.RValue > 0 && m.Conductivity == 0 {
			if m.Thickness == 0 {
				m.Thickness = 0.001
			}
			m.Conductivity = m.Thickness / m.RValue
		}
		return &m, nil, nil

	case TypeWindowMaterialSimple:
		var w WindowMaterial
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, nil, err
		}
		return nil, &w, nil

	default:
		var head struct {
			Identifier string `json:"identifier"`
		}
		_ = json.Unmarshal(raw, &head)
		return nil, nil, fmt.Errorf("%w: material %q has type %q", phxerrors.ErrUnknownSourceType, head.Identifier, tag)
	}
}
