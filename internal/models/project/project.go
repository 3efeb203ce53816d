package project

import (
	"errors"
	"fmt"
	"time"

	"github.com/stwalsh4118/phx/internal/models/constructions"
	"github.com/stwalsh4118/phx/internal/models/schedules"
)

// Metadata written into every exported document.
const (
	ProgramName    = "PHX"
	ProgramVersion = "1.0.0"
	DataVersion    = 48
	UnitSystem     = 1
)

// Agent is a person or company attached to the project.
type Agent struct {
	Name      string
	Street    string
	PostCode  string
	City      string
	Email     string
	Telephone string
	License   string
}

// ProjectData describes the project's agents and dates.
type ProjectData struct {
	Customer         Agent
	BuildingOwner    Agent
	Designer         Agent
	Building         Agent
	ProjectDate      time.Time
	OwnerIsClient    bool
	YearConstruction int
	ImageFileName    string
}

// Project is the root of the intermediate model.
type Project struct {
	Name           string
	Variants       []*Variant
	ProjectData    ProjectData
	VentPatterns   *schedules.UtilizationPatternCollectionVent
	ProgramName    string
	ProgramVersion string
	DataVersion    int
	UnitSystem     int
	assemblyTypes  *catalog[*constructions.OpaqueConstruction]
	windowTypes    *catalog[*constructions.WindowType]
}

// New creates an empty project.
func New(name string) *Project {
	return &Project{
		Name:           name,
		VentPatterns:   schedules.NewUtilizationPatternCollectionVent(),
		ProgramName:    ProgramName,
		ProgramVersion: ProgramVersion,
		DataVersion:    DataVersion,
		UnitSystem:     UnitSystem,
		assemblyTypes:  newCatalog[*constructions.OpaqueConstruction](),
		windowTypes:    newCatalog[*constructions.WindowType](),
	}
}

// AddAssemblyType stores an opaque assembly under key, replacing any prior entry.
func (p *Project) AddAssemblyType(key string, c *constructions.OpaqueConstruction) {
	p.assemblyTypes.put(key, c)
}

// AssemblyType looks up an opaque assembly by key.
func (p *Project) AssemblyType(key string) (*constructions.OpaqueConstruction, bool) {
	return p.assemblyTypes.get(key)
}

// AssemblyTypes returns the assemblies in insertion order.
func (p *Project) AssemblyTypes() []*constructions.OpaqueConstruction {
	return p.assemblyTypes.values()
}

// AddWindowType stores a window type under key, replacing any prior entry.
func (p *Project) AddWindowType(key string, w *constructions.WindowType) {
	p.windowTypes.put(key, w)
}

// WindowType looks up a window type by key.
func (p *Project) WindowType(key string) (*constructions.WindowType, bool) {
	return p.windowTypes.get(key)
}

// WindowTypes returns the window types in insertion order.
func (p *Project) WindowTypes() []*constructions.WindowType {
	return p.windowTypes.values()
}

// AddVariant appends a variant.
func (p *Project) AddVariant(v *Variant) {
	p.Variants = append(p.Variants, v)
}

// Validate is run once the project is fully assembled. It checks every
// variant's conversion factors against the allowed fuels.
func (p *Project) Validate() error {
	var errs []error
	for _, v := range p.Variants {
		if err := v.Location.ValidateFactors(); err != nil {
			errs = append(errs, fmt.Errorf("variant %q: %w", v.Name, err))
		}
	}
	return errors.Join(errs...)
}
