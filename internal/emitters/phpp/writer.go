package phpp

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/stwalsh4118/phx/internal/logger"
	"github.com/stwalsh4118/phx/internal/models/building"
	"github.com/stwalsh4118/phx/internal/models/climate"
	"github.com/stwalsh4118/phx/internal/models/constructions"
	"github.com/stwalsh4118/phx/internal/models/enums"
	"github.com/stwalsh4118/phx/internal/models/geometry"
	"github.com/stwalsh4118/phx/internal/models/loads"
	"github.com/stwalsh4118/phx/internal/models/mech"
	"github.com/stwalsh4118/phx/internal/models/project"
	"github.com/stwalsh4118/phx/internal/models/shape"
)

// IDString renders a numbered entity the way PHPP dropdowns list them.
func IDString(id int, name string) string {
	return fmt.Sprintf("%02dud-%s", id, name)
}

// Writer fills a PHPP workbook from the first variant of a project, using a
// shape to locate every cell.
type Writer struct {
	wb     Workbook
	layout *shape.Shape
	log    *logger.Logger
}

// NewWriter creates a Writer.
func NewWriter(wb Workbook, layout *shape.Shape, log *logger.Logger) *Writer {
	return &Writer{wb: wb, layout: layout, log: log}
}

// Write fills every worksheet inside a Silent scope. Cells and columns the
// shape leaves undefined are skipped.
func (w *Writer) Write(ctx context.Context, p *project.Project) error {
	if len(p.Variants) == 0 {
		return fmt.Errorf("project %q has no variants to write", p.Name)
	}
	v := p.Variants[0]
	if len(p.Variants) > 1 {
		w.log.Warn("PHPP holds one building, writing the first variant only", map[string]interface{}{
			"variants": len(p.Variants),
			"written":  v.Name,
		})
	}

	steps := []struct {
		key   string
		write func(*sheetWriter)
	}{
		{shape.SheetClimate, func(s *sheetWriter) { writeClimate(s, v.Location) }},
		{shape.SheetUValues, func(s *sheetWriter) { writeUValues(s, p) }},
		{shape.SheetComponents, func(s *sheetWriter) { writeWindowTypes(s, p) }},
		{shape.SheetAreas, func(s *sheetWriter) { writeAreas(s, v.Building) }},
		{shape.SheetWindows, func(s *sheetWriter) { writeWindows(s, v.Building) }},
		{shape.SheetAdditionalVent, func(s *sheetWriter) { writeAdditionalVent(s, v) }},
		{shape.SheetVentilation, func(s *sheetWriter) { writeVentilation(s, v) }},
		{shape.SheetVerification, func(s *sheetWriter) { writeVerification(s, p, v) }},
	}

	return Silent(w.wb, func() error {
		for _, step := range steps {
			if err := ctx.Err(); err != nil {
				return err
			}
			s := &sheetWriter{wb: w.wb, sheet: w.layout.Sheet(step.key)}
			step.write(s)
			if s.err != nil {
				return s.err
			}
			w.log.Debug("worksheet written", map[string]interface{}{
				"sheet": s.sheet.Name,
				"cells": s.count,
			})
		}
		return nil
	})
}

// sheetWriter writes into one worksheet and keeps the first error.
type sheetWriter struct {
	wb    Workbook
	sheet shape.Sheet
	count int
	err   error
}

func (s *sheetWriter) set(addr string, value interface{}) {
	if s.err != nil || addr == "" {
		return
	}
	if err := s.wb.SetCellValue(s.sheet.Name, addr, value); err != nil {
		s.err = fmt.Errorf("failed to write %s!%s: %w", s.sheet.Name, addr, err)
		return
	}
	s.count++
}

// cell writes a fixed, named cell.
func (s *sheetWriter) cell(name string, value interface{}) {
	s.set(s.sheet.Cell(name), value)
}

// at writes the named column of a table row.
func (s *sheetWriter) at(column string, row int, value interface{}) {
	col := s.sheet.Column(column)
	if col == "" || s.err != nil {
		return
	}
	addr, err := excelize.JoinCellName(col, row)
	if err != nil {
		s.err = fmt.Errorf("invalid column %q for %s in %s: %w", col, column, s.sheet.Name, err)
		return
	}
	s.set(addr, value)
}

// across writes values into consecutive columns, starting at the named cell
// moved down by rowOffset rows.
func (s *sheetWriter) across(name string, rowOffset int, values ...interface{}) {
	addr := s.sheet.Cell(name)
	if addr == "" || s.err != nil {
		return
	}
	col, row, err := excelize.CellNameToCoordinates(addr)
	if err != nil {
		s.err = fmt.Errorf("invalid address %q for %s in %s: %w", addr, name, s.sheet.Name, err)
		return
	}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+i, row+rowOffset)
		if err != nil {
			s.err = fmt.Errorf("address out of range for %s in %s: %w", name, s.sheet.Name, err)
			return
		}
		s.set(cell, v)
	}
}

func monthly(m climate.Monthly) []interface{} {
	out := make([]interface{}, len(m))
	for i, v := range m {
		out[i] = v
	}
	return out
}

func writeClimate(s *sheetWriter, loc *climate.Location) {
	c := loc.Climate
	s.cell("name", c.DisplayName)
	s.cell("latitude", loc.Site.Latitude)
	s.cell("longitude", loc.Site.Longitude)
	s.cell("elevation", loc.Site.Elevation)
	s.cell("station_elevation", c.StationElevation)
	s.cell("daily_temp_swing", c.DailyTempSwing)
	s.cell("wind_speed", c.AverageWindSpeed)

	s.across("air_temps", 0, monthly(c.Monthly.AirTemps)...)
	s.across("dewpoint_temps", 0, monthly(c.Monthly.DewpointTemps)...)
	s.across("sky_temps", 0, monthly(c.Monthly.SkyTemps)...)
	s.across("ground_temps", 0, monthly(c.Monthly.GroundTemps)...)
	s.across("rad_north", 0, monthly(c.Radiation.North)...)
	s.across("rad_east", 0, monthly(c.Radiation.East)...)
	s.across("rad_south", 0, monthly(c.Radiation.South)...)
	s.across("rad_west", 0, monthly(c.Radiation.West)...)
	s.across("rad_global", 0, monthly(c.Radiation.Global)...)

	peaks := []struct {
		name string
		load climate.PeakLoad
	}{
		{"heat1", c.PeakLoads.Heat1},
		{"heat2", c.PeakLoads.Heat2},
		{"cool1", c.PeakLoads.Cool1},
		{"cool2", c.PeakLoads.Cool2},
	}
	for _, pk := range peaks {
		pl := pk.load
		s.across(pk.name, 0, pl.Temperature, pl.RadNorth, pl.RadEast, pl.RadSouth, pl.RadWest, pl.RadGlobal)
	}
}

func writeUValues(s *sheetWriter, p *project.Project) {
	for i, a := range p.AssemblyTypes() {
		row := s.sheet.EntryRow(i)
		if s.sheet.RowsPerEntry > 1 && len(a.Layers) > s.sheet.RowsPerEntry-1 {
			s.err = fmt.Errorf("assembly %q has %d layers, %s holds %d",
				a.DisplayName, len(a.Layers), s.sheet.Name, s.sheet.RowsPerEntry-1)
			return
		}
		s.at("name", row, IDString(a.ID, a.DisplayName))
		for j, l := range a.Layers {
			r := row + 1 + j
			s.at("layer_material", r, l.Material.DisplayName)
			s.at("layer_conductivity", r, l.Material.Conductivity)
			s.at("layer_thickness", r, l.Thickness*1000)
		}
	}
}

func writeWindowTypes(s *sheetWriter, p *project.Project) {
	for i, wt := range p.WindowTypes() {
		row := s.sheet.EntryRow(i)
		s.at("name", row, IDString(wt.ID, wt.DisplayName))
		s.at("g_value", row, wt.GlazingGValue)
		s.at("u_glazing", row, wt.GlazingUValue)
		sides := []struct {
			name  string
			frame constructions.FrameElement
		}{
			{"left", wt.FrameLeft},
			{"right", wt.FrameRight},
			{"bottom", wt.FrameBottom},
			{"top", wt.FrameTop},
		}
		for _, side := range sides {
			s.at("frame_width_"+side.name, row, side.frame.Width)
			s.at("frame_u_"+side.name, row, side.frame.UValue)
			s.at("psi_glazing_"+side.name, row, side.frame.PsiGlazing)
			s.at("psi_install_"+side.name, row, side.frame.PsiInstall)
		}
	}
}

// Area group numbers of the Areas worksheet.
const (
	groupWallAmbient    = 8
	groupWallGround     = 9
	groupRoofAmbient    = 10
	groupFloorSlab      = 11
	groupPartitionWalls = 18
)

func areaGroup(c *building.ComponentOpaque) int {
	switch {
	case c.ExposureExterior == enums.ExposureExteriorSurface:
		return groupPartitionWalls
	case c.FaceType == enums.FaceTypeFloor:
		return groupFloorSlab
	case c.FaceType == enums.FaceTypeRoofCeiling:
		return groupRoofAmbient
	case c.ExposureExterior == enums.ExposureExteriorGround:
		return groupWallGround
	default:
		return groupWallAmbient
	}
}

// writeAreas writes one row per opaque polygon, skipping air boundaries,
// then the zone thermal bridges and the treated floor area.
func writeAreas(s *sheetWriter, b *building.Building) {
	i := 0
	for _, c := range b.OpaqueComponents() {
		if c.Opacity == enums.OpacityAirBoundary {
			continue
		}
		for _, p := range c.Polygons {
			row := s.sheet.EntryRow(i)
			s.at("name", row, IDString(c.ID, c.DisplayName))
			s.at("group", row, areaGroup(c))
			s.at("quantity", row, 1)
			s.at("area", row, p.Area)
			if c.Assembly != nil {
				s.at("assembly", row, IDString(c.Assembly.ID, c.Assembly.DisplayName))
			}
			s.at("angle_north", row, p.CardinalOrientationAngle())
			s.at("angle_horizontal", row, p.AngleFromHorizontal())
			s.at("perimeter", row, p.Perimeter())
			i++
		}
	}

	n := 0
	for _, z := range b.Zones {
		for _, tb := range z.ThermalBridges {
			s.across("thermal_bridges", n, IDString(tb.ID, tb.DisplayName), int(tb.GroupType), tb.Length*tb.Quantity, tb.PsiValue)
			n++
		}
	}
	s.cell("treated_floor_area", b.TotalWeightedNetFloorArea())
}

// windowSize treats the polygon as a rectangle: width is the first edge,
// height follows from the area.
func windowSize(p *geometry.Polygon) (width, height float64) {
	edges := p.Edges()
	if len(edges) == 0 {
		return 0, 0
	}
	width = edges[0].Length()
	if width == 0 {
		return 0, 0
	}
	return width, p.Area / width
}

func writeWindows(s *sheetWriter, b *building.Building) {
	i := 0
	for _, a := range b.ApertureComponents() {
		for _, p := range a.Polygons {
			row := s.sheet.EntryRow(i)
			width, height := windowSize(p)
			s.at("quantity", row, 1)
			s.at("name", row, a.DisplayName)
			s.at("angle_north", row, p.CardinalOrientationAngle())
			s.at("angle_horizontal", row, p.AngleFromHorizontal())
			s.at("orientation", row, p.CardinalDirection())
			s.at("width", row, width)
			s.at("height", row, height)
			if a.Host != nil {
				s.at("host", row, IDString(a.Host.ID, a.Host.DisplayName))
			}
			if a.WindowType != nil {
				ref := IDString(a.WindowType.ID, a.WindowType.DisplayName)
				s.at("glazing", row, ref)
				s.at("frame", row, ref)
			}
			s.at("install_depth", row, a.InstallDepth)
			i++
		}
	}
}

func writeAdditionalVent(s *sheetWriter, v *project.Variant) {
	i := 0
	for _, z := range v.Building.Zones {
		for _, r := range z.WufiRooms {
			row := s.sheet.EntryRow(i)
			s.at("quantity", row, r.Quantity)
			s.at("name", row, r.FullName)
			if ss, err := v.Mech.GetMechSubsystemByID(r.VentilationUnitID); err == nil {
				s.at("unit", row, IDString(ss.ID, ss.DisplayName))
			}
			s.at("area", row, r.WeightedFloorArea)
			if r.WeightedFloorArea > 0 {
				s.at("height", row, r.NetVolume/r.WeightedFloorArea)
			}
			s.at("supply", row, r.Load.FlowSupply)
			s.at("extract", row, r.Load.FlowExtract)
			s.at("transfer", row, r.Load.FlowTransfer)
			if r.VentPattern != nil {
				s.at("pattern", row, IDString(r.VentPattern.ID, r.VentPattern.DisplayName))
			}
			i++
		}
	}

	for n, ss := range v.Mech.VentilationSubsystems() {
		erv, ok := ss.Device.(*mech.Ventilator)
		if !ok {
			continue
		}
		p := erv.Params
		s.across("units", n, IDString(ss.ID, ss.DisplayName), p.SensibleHeatRecovery, p.LatentHeatRecovery,
			p.ElectricEfficiency, p.FrostProtectionReqd, p.TemperatureBelowDefrostUsed, p.InConditionedSpace)
	}

	for n, d := range v.Mech.Ducts() {
		s.across("ducts", n, d.DisplayName, int(d.DuctType), d.DiameterMM(), d.Length())
	}
}

func writeVentilation(s *sheetWriter, v *project.Variant) {
	b := v.PhCertification.Building
	s.cell("n50", b.AirtightnessN50)
	s.cell("q50", b.AirtightnessQ50)
	s.cell("vn50", v.Building.TotalNetVolume())
	s.cell("occupants", v.Building.TotalOccupants())

	var flow loads.Ventilation
	for _, z := range v.Building.Zones {
		flow = flow.Add(z.TotalVentilation())
	}
	s.cell("design_supply", flow.FlowSupply)
	s.cell("design_extract", flow.FlowExtract)
}

// enumString renders an enumerable as PHPP's "N-NAME" dropdown text.
func enumString(e *enums.Enumerable) string {
	if e == nil || e.Value() == "" {
		return ""
	}
	return fmt.Sprintf("%d-%s", e.Number(), e.Value())
}

func writeVerification(s *sheetWriter, p *project.Project, v *project.Variant) {
	d := p.ProjectData
	s.cell("building_name", d.Building.Name)
	s.cell("building_street", d.Building.Street)
	s.cell("building_city", d.Building.City)
	s.cell("building_postcode", d.Building.PostCode)
	s.cell("customer_name", d.Customer.Name)
	s.cell("customer_street", d.Customer.Street)
	s.cell("customer_city", d.Customer.City)
	s.cell("owner_name", d.BuildingOwner.Name)
	s.cell("designer_name", d.Designer.Name)
	if d.YearConstruction != 0 {
		s.cell("year_construction", d.YearConstruction)
	}

	c := v.PhCertification
	s.cell("building_category", enumString(c.Settings.BuildingCategory))
	s.cell("building_use", enumString(c.Settings.BuildingUseType))
	s.cell("building_status", enumString(c.Settings.BuildingStatus))
	s.cell("building_type", enumString(c.Settings.BuildingType))
	s.cell("standard", enumString(c.Settings.Standard))
	s.cell("num_units", c.Building.NumOfUnits)
	s.cell("num_floors", c.Building.NumOfFloors)
	s.cell("setpoint_winter", c.Building.SetPoints.Winter)
	s.cell("setpoint_summer", c.Building.SetPoints.Summer)
	s.cell("mech_room_temp", c.Building.MechRoomTemp)
}
