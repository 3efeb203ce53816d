package source

// Face types.
const (
	FaceTypeWall        = "Wall"
	FaceTypeFloor       = "Floor"
	FaceTypeRoofCeiling = "RoofCeiling"
	FaceTypeAirBoundary = "AirBoundary"
)

// Boundary condition types.
const (
	BoundaryOutdoors  = "Outdoors"
	BoundaryGround    = "Ground"
	BoundarySurface   = "Surface"
	BoundaryAdiabatic = "Adiabatic"
)

// Point3D is an (x, y, z) triple.
type Point3D [3]float64

// Plane is the local plane of a face.
type Plane struct {
	N Point3D `json:"n"`
	O Point3D `json:"o"`
	X Point3D `json:"x"`
}

// Face3D is planar geometry with its derived values precomputed upstream.
type Face3D struct {
	Boundary []Point3D `json:"boundary" validate:"min=3"`
	Plane    Plane     `json:"plane"`
	Area     float64   `json:"area" validate:"gte=0"`
	Center   Point3D   `json:"center"`
}

// BoundaryCondition says what lies on the other side of a face.
type BoundaryCondition struct {
	Type                     string   `json:"type" validate:"oneof=Outdoors Ground Surface Adiabatic"`
	BoundaryConditionObjects []string `json:"boundary_condition_objects"`
}

// Face is one side of a room.
type Face struct {
	Identifier        string            `json:"identifier" validate:"required"`
	DisplayName       string            `json:"display_name"`
	FaceType          string            `json:"face_type" validate:"oneof=Wall Floor RoofCeiling AirBoundary"`
	Geometry          Face3D            `json:"geometry"`
	BoundaryCondition BoundaryCondition `json:"boundary_condition"`
	Apertures         []*Aperture       `json:"apertures" validate:"dive,required"`
	Properties        FaceProperties    `json:"properties"`
}

// FaceProperties carries the face extension sub-trees.
type FaceProperties struct {
	Energy EnergyRef `json:"energy"`
}

// EnergyRef names the construction of a face or aperture.
type EnergyRef struct {
	Construction string `json:"construction"`
}

// Aperture is a window or glazed door in a face.
type Aperture struct {
	Identifier        string             `json:"identifier" validate:"required"`
	DisplayName       string             `json:"display_name"`
	Geometry          Face3D             `json:"geometry"`
	BoundaryCondition BoundaryCondition  `json:"boundary_condition" validate:"-"`
	Properties        ApertureProperties `json:"properties"`
}

// ApertureProperties carries the aperture extension sub-trees.
type ApertureProperties struct {
	Energy EnergyRef  `json:"energy"`
	Ph     AperturePh `json:"ph"`
}

// AperturePh holds the PH window placement data.
type AperturePh struct {
	InstallDepth        float64 `json:"install_depth"`
	VariantType         string  `json:"variant_type"`
	WinterShadingFactor float64 `json:"winter_shading_factor"`
	SummerShadingFactor float64 `json:"summer_shading_factor"`
}
