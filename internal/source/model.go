// Package source defines the upstream building model read by the converters
// and decodes it from JSON. The document layout follows the Honeybee model
// format with its Passive House extensions.
package source

// Model is the root of a source document. Unknown keys are ignored.
type Model struct {
	Type           string          `json:"type"`
	Identifier     string          `json:"identifier" validate:"required"`
	DisplayName    string          `json:"display_name"`
	Version        string          `json:"version"`
	Units          string          `json:"units" validate:"omitempty,oneof=Meters Millimeters Feet Inches Centimeters"`
	Tolerance      float64         `json:"tolerance" validate:"gte=0"`
	AngleTolerance float64         `json:"angle_tolerance" validate:"gte=0"`
	Rooms          []*Room         `json:"rooms" validate:"dive,required"`
	OrphanedShades []*Shade        `json:"orphaned_shades" validate:"dive,required"`
	Properties     ModelProperties `json:"properties"`
}

// ModelProperties carries the extension sub-trees.
type ModelProperties struct {
	Energy ModelEnergyProperties `json:"energy"`
	Ph     *ModelPhProperties    `json:"ph"`
}

// ModelPhProperties holds the building-segment catalog and project team.
type ModelPhProperties struct {
	BldgSegments []*BldgSegment `json:"bldg_segments" validate:"dive,required"`
	Team         *ProjectTeam   `json:"team"`
}

// Segment looks up a building segment by identifier.
func (p *ModelPhProperties) Segment(identifier string) *BldgSegment {
	if p == nil {
		return nil
	}
	for _, s := range p.BldgSegments {
		if s.Identifier == identifier {
			return s
		}
	}
	return nil
}

// Room is one enclosed volume.
type Room struct {
	Identifier  string         `json:"identifier" validate:"required"`
	DisplayName string         `json:"display_name"`
	Multiplier  int            `json:"multiplier"`
	FloorArea   float64        `json:"floor_area" validate:"gte=0"`
	Volume      float64        `json:"volume" validate:"gte=0"`
	Faces       []*Face        `json:"faces" validate:"dive,required"`
	Properties  RoomProperties `json:"properties"`
}

// Name returns the display name, or the identifier when unnamed.
func (r *Room) Name() string {
	if r.DisplayName != "" {
		return r.DisplayName
	}
	return r.Identifier
}

// ExposedArea sums the area of faces that touch the outdoors, plus those
// touching the ground when includeGround is set.
func (r *Room) ExposedArea(includeGround bool) float64 {
	total := 0.0
	for _, f := range r.Faces {
		switch f.BoundaryCondition.Type {
		case BoundaryOutdoors:
			total += f.Geometry.Area
		case BoundaryGround:
			if includeGround {
				total += f.Geometry.Area
			}
		}
	}
	return total
}

// RoomProperties carries the room extension sub-trees.
type RoomProperties struct {
	Energy *RoomEnergyProperties `json:"energy"`
	Ph     *RoomPhProperties     `json:"ph"`
	PhHvac *RoomPhHvacProperties `json:"ph_hvac"`
}

// RoomEnergyProperties are the energy loads of a room.
type RoomEnergyProperties struct {
	People            *People            `json:"people"`
	Infiltration      *Infiltration      `json:"infiltration"`
	ElectricEquipment *ElectricEquipment `json:"electric_equipment"`
	Lighting          *Lighting          `json:"lighting"`
}

// RoomPhProperties are the PH extensions of a room.
type RoomPhProperties struct {
	IDNum                int      `json:"id_num"`
	PhBldgSegmentID      string   `json:"ph_bldg_segment_id"`
	SpecificHeatCapacity float64  `json:"specific_heat_capacity"`
	Spaces               []*Space `json:"spaces" validate:"dive,required"`
}

// SegmentID returns the room's building-segment identifier. Rooms without
// PH properties share the empty segment.
func (r *Room) SegmentID() string {
	if r.Properties.Ph == nil {
		return ""
	}
	return r.Properties.Ph.PhBldgSegmentID
}

// Shade is a shading surface with no room.
type Shade struct {
	Identifier  string `json:"identifier" validate:"required"`
	DisplayName string `json:"display_name"`
	IsDetached  bool   `json:"is_detached"`
	Geometry    Face3D `json:"geometry"`
}
