package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	phxerrors "github.com/stwalsh4118/phx/internal/errors"
	"github.com/stwalsh4118/phx/internal/logger"
	"github.com/stwalsh4118/phx/internal/models/constructions"
	"github.com/stwalsh4118/phx/internal/models/ids"
	"github.com/stwalsh4118/phx/internal/models/project"
	"github.com/stwalsh4118/phx/internal/models/schedules"
	"github.com/stwalsh4118/phx/internal/repository"
	"github.com/stwalsh4118/phx/internal/source"
)

// DefaultTargetHours is the daily total every ventilation pattern must reach.
const DefaultTargetHours = 24.0

// ErrNoSegments is returned when a source model has no rooms to convert.
var ErrNoSegments = errors.New("source model has no rooms")

// Options controls the assembly pipeline.
type Options struct {
	// GroupComponents merges components with equal unique keys.
	GroupComponents bool
	// WeldVertices deduplicates coincident vertices in every variant.
	WeldVertices bool
	// TargetHours is the daily total checked on ventilation patterns.
	TargetHours float64
	// Progress, when set, is called after each building segment.
	Progress func(done, total int)
}

// DefaultOptions returns grouping and welding on with a 24 hour target.
func DefaultOptions() Options {
	return Options{
		GroupComponents: true,
		WeldVertices:    true,
		TargetHours:     DefaultTargetHours,
	}
}

// ConversionService defines the interface for building a project from a
// source model.
type ConversionService interface {
	// ConvertFile loads the source model at path and converts it.
	ConvertFile(ctx context.Context, path string) (*project.Project, error)

	// Convert builds one variant per building segment of model.
	// Returns an ErrMissingProperties error if a room has no PH properties.
	// Returns an ErrUnknownEquipmentType error for unmapped HVAC or
	// appliance type tags.
	// Returns an ErrFuelNotAllowed error if a conversion factor names an
	// unknown fuel.
	Convert(ctx context.Context, model *source.Model) (*project.Project, error)
}

// conversionService is the concrete implementation of ConversionService.
type conversionService struct {
	repo repository.ModelRepository
	log  *logger.Logger
	opts Options
}

// NewConversionService creates a new instance of ConversionService.
func NewConversionService(repo repository.ModelRepository, log *logger.Logger, opts Options) ConversionService {
	if opts.TargetHours <= 0 {
		opts.TargetHours = DefaultTargetHours
	}
	return &conversionService{
		repo: repo,
		log:  log,
		opts: opts,
	}
}

// ConvertFile loads the model through the repository and converts it.
func (s *conversionService) ConvertFile(ctx context.Context, path string) (*project.Project, error) {
	s.log.Info("Loading source model", map[string]interface{}{
		"path": path,
	})

	model, err := s.repo.Load(ctx, path)
	if err != nil {
		s.log.Error("Failed to load source model", err, map[string]interface{}{
			"path": path,
			"code": phxerrors.Code(err),
		})
		return nil, fmt.Errorf("failed to load source model: %w", err)
	}
	return s.Convert(ctx, model)
}

// Convert runs the assembly pipeline over model.
func (s *conversionService) Convert(ctx context.Context, model *source.Model) (*project.Project, error) {
	if err := model.MissingPhProperties(); err != nil {
		s.log.Error("Source model is missing PH properties", err, map[string]interface{}{
			"model": model.Identifier,
			"code":  phxerrors.Code(err),
		})
		return nil, err
	}
	if len(model.Rooms) == 0 {
		return nil, ErrNoSegments
	}

	name := model.DisplayName
	if name == "" {
		name = model.Identifier
	}
	proj := project.New(name)

	// Shared catalogs
	s.buildAssemblyTypes(proj, model)
	s.buildWindowTypes(proj, model)
	if err := s.buildVentPatterns(proj, model); err != nil {
		return nil, err
	}
	if model.Properties.Ph != nil && model.Properties.Ph.Team != nil {
		proj.ProjectData = buildProjectData(model.Properties.Ph.Team)
	}

	order, groups := GroupRoomsBySegment(model.Rooms)
	s.log.Info("Converting source model", map[string]interface{}{
		"model":    model.Identifier,
		"rooms":    len(model.Rooms),
		"segments": len(order),
	})

	for i, segmentID := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		variant, err := s.buildVariant(proj, model, segmentID, groups[segmentID])
		if err != nil {
			s.log.Error("Failed to build variant", err, map[string]interface{}{
				"segment": segmentID,
				"code":    phxerrors.Code(err),
			})
			return nil, fmt.Errorf("segment %q: %w", segmentID, err)
		}
		proj.AddVariant(variant)

		if s.opts.Progress != nil {
			s.opts.Progress(i+1, len(order))
		}
	}

	if err := proj.Validate(); err != nil {
		s.log.Error("Project validation failed", err, map[string]interface{}{
			"code": phxerrors.Code(err),
		})
		return nil, err
	}

	s.log.Info("Source model converted", map[string]interface{}{
		"model":    model.Identifier,
		"variants": len(proj.Variants),
	})
	s.log.Debug("Issued ids", map[string]interface{}{
		"ids": ids.Snapshot(),
	})
	return proj, nil
}

// buildVariant merges the rooms of one building segment and assembles the
// variant around the merged room.
func (s *conversionService) buildVariant(proj *project.Project, model *source.Model, segmentID string, rooms []*source.Room) (*project.Variant, error) {
	segment := model.Properties.Ph.Segment(segmentID)
	merged, err := MergeRooms(rooms, segment.Phius())
	if err != nil {
		return nil, err
	}

	name := merged.Name()
	if segment != nil {
		name = segment.Name()
	}

	variant := project.NewVariant(name)
	merged.Properties.Ph.IDNum = variant.ID
	log := s.log.WithVariant(variant.ID, variant.Name)
	log.Info("Building variant", map[string]interface{}{
		"segment": segmentID,
		"rooms":   len(rooms),
		"spaces":  len(merged.Properties.Ph.Spaces),
	})

	// Mechanical systems, in installation order
	if err := addMechSubsystems(variant, merged, log); err != nil {
		return nil, err
	}

	// Zone and envelope
	zone := buildZone(proj, variant, merged, segment)
	components := buildComponents(proj, merged, zone.ID, log)
	variant.Building.AddComponents(components...)
	variant.Building.AddZones(zone)
	if s.opts.GroupComponents {
		before := len(variant.Building.OpaqueComponents())
		variant.Building.MergeOpaqueComponentsByAssembly()
		variant.Building.MergeApertureComponentsByAssembly()
		log.Debug("Grouped components", map[string]interface{}{
			"before": before,
			"after":  len(variant.Building.OpaqueComponents()),
		})
	}

	// Certification, climate and factors
	if segment != nil {
		if err := setCertification(variant, segment, merged); err != nil {
			return nil, err
		}
		if err := setLocation(variant, segment); err != nil {
			return nil, err
		}
	} else {
		log.Warn("Building segment not found, using defaults", map[string]interface{}{
			"segment": segmentID,
		})
	}

	appliances, err := buildAppliances(merged)
	if err != nil {
		return nil, err
	}
	for _, z := range variant.Building.Zones {
		for _, a := range appliances {
			z.Appliances.AddAppliance(a)
		}
	}

	if s.opts.WeldVertices {
		variant.WeldVertices()
	}
	AddModelShadesToVariant(variant, model.OrphanedShades)

	return variant, nil
}

func (s *conversionService) buildAssemblyTypes(proj *project.Project, model *source.Model) {
	catalog := model.Properties.Energy.OpaqueConstructions
	for _, key := range sortedKeys(catalog) {
		src := catalog[key]
		c := constructions.NewOpaqueConstruction(src.Identifier, displayName(src.DisplayName, src.Identifier))
		for _, m := range src.Layers {
			c.AddLayer(constructions.Layer{
				Thickness: m.Thickness,
				Material: constructions.Material{
					DisplayName:  displayName(m.DisplayName, m.Identifier),
					Conductivity: m.Conductivity,
					Density:      m.Density,
					HeatCapacity: m.SpecificHeat,
				},
			})
		}
		proj.AddAssemblyType(key, c)
	}
}

func (s *conversionService) buildWindowTypes(proj *project.Project, model *source.Model) {
	catalog := model.Properties.Energy.WindowConstructions
	for _, key := range sortedKeys(catalog) {
		src := catalog[key]
		w := constructions.NewWindowType(src.Identifier, displayName(src.DisplayName, src.Identifier))
		if src.Glazing != nil {
			w.GlazingUValue = src.Glazing.UFactor
			w.GlazingGValue = src.Glazing.SHGC
			w.UValueWindow = src.Glazing.UFactor
		}
		if ph := src.Properties.Ph; ph != nil {
			if ph.PhGlazing != nil {
				w.GlazingUValue = ph.PhGlazing.UFactor
				w.GlazingGValue = ph.PhGlazing.GValue
			}
			if ph.PhFrame != nil {
				w.FrameTop = frameElement(ph.PhFrame.Top)
				w.FrameRight = frameElement(ph.PhFrame.Right)
				w.FrameBottom = frameElement(ph.PhFrame.Bottom)
				w.FrameLeft = frameElement(ph.PhFrame.Left)
			}
		}
		proj.AddWindowType(key, w)
	}
}

func frameElement(f source.PhFrameElement) constructions.FrameElement {
	return constructions.FrameElement{
		Width:      f.Width,
		UValue:     f.UFactor,
		PsiGlazing: f.PsiGlazing,
		PsiInstall: f.PsiInstall,
		ChiValue:   f.ChiValue,
	}
}

// buildVentPatterns adds one utilization pattern per ventilation schedule.
// Patterns whose periods miss the target are kept and logged as warnings.
func (s *conversionService) buildVentPatterns(proj *project.Project, model *source.Model) error {
	for _, sched := range model.Properties.Energy.Schedules {
		if sched.Properties.Ph == nil {
			continue
		}
		ph := sched.Properties.Ph
		p := schedules.NewUtilizationPatternVent(displayName(sched.DisplayName, sched.Identifier))
		p.Identifier = sched.Identifier
		if ph.OperatingDaysWk > 0 {
			p.OperatingDays = ph.OperatingDaysWk
		}
		if ph.OperatingWeeksYear > 0 {
			p.OperatingWeeks = ph.OperatingWeeksYear
		}
		periods := ph.OperatingPeriods
		p.High = schedules.VentOperatingPeriod{Hours: periods.High.OperatingHours, SpeedFraction: periods.High.OperationSpeed}
		p.Standard = schedules.VentOperatingPeriod{Hours: periods.Standard.OperatingHours, SpeedFraction: periods.Standard.OperationSpeed}
		p.Basic = schedules.VentOperatingPeriod{Hours: periods.Basic.OperatingHours, SpeedFraction: periods.Basic.OperationSpeed}
		p.Minimum = schedules.VentOperatingPeriod{Hours: periods.Minimum.OperatingHours, SpeedFraction: periods.Minimum.OperationSpeed}

		proj.VentPatterns.Add(p)
	}

	for _, err := range proj.VentPatterns.Validate(s.opts.TargetHours) {
		fields := map[string]interface{}{
			"code":         phxerrors.Code(err),
			"target_hours": s.opts.TargetHours,
		}
		if !phxerrors.IsWarning(err) {
			s.log.Error("Ventilation pattern check failed", err, fields)
			return err
		}
		s.log.Warn(err.Error(), fields)
	}
	return nil
}

func buildProjectData(team *source.ProjectTeam) project.ProjectData {
	data := project.ProjectData{
		Customer:         agent(team.Customer),
		BuildingOwner:    agent(team.BuildingOwner),
		Designer:         agent(team.Designer),
		Building:         agent(team.Building),
		YearConstruction: team.YearConstruction,
	}
	if team.ProjectDate != "" {
		if t, err := time.Parse("2006-01-02", team.ProjectDate); err == nil {
			data.ProjectDate = t
		}
	}
	return data
}

func agent(c source.Contact) project.Agent {
	return project.Agent{
		Name:      c.Name,
		Street:    c.Street,
		PostCode:  c.PostCode,
		City:      c.City,
		Email:     c.Email,
		Telephone: c.Telephone,
		License:   c.License,
	}
}

func displayName(name, fallback string) string {
	if name != "" {
		return name
	}
	return fallback
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
