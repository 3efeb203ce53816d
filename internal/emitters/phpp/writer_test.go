package phpp

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/stwalsh4118/phx/internal/logger"
	"github.com/stwalsh4118/phx/internal/models/building"
	"github.com/stwalsh4118/phx/internal/models/constructions"
	"github.com/stwalsh4118/phx/internal/models/enums"
	"github.com/stwalsh4118/phx/internal/models/geometry"
	"github.com/stwalsh4118/phx/internal/models/ids"
	"github.com/stwalsh4118/phx/internal/models/mech"
	"github.com/stwalsh4118/phx/internal/models/project"
	"github.com/stwalsh4118/phx/internal/models/schedules"
	"github.com/stwalsh4118/phx/internal/models/shape"
)

const testShape = `
version: "10.4"
language: EN
worksheets:
  climate:
    name: Climate
    cells: {name: D9, latitude: D10, air_temps: E24, heat1: E30}
  u_values:
    name: U-Values
    columns: {name: M, layer_material: L, layer_conductivity: M, layer_thickness: T}
    first_row: 14
    rows_per_entry: 4
  components:
    name: Components
    columns: {name: IE, g_value: IF, u_glazing: IG, frame_width_left: IU}
    first_row: 15
  areas:
    name: Areas
    cells: {thermal_bridges: L145, treated_floor_area: V34}
    columns: {name: L, group: M, quantity: P, area: V, assembly: AC, perimeter: AD}
    first_row: 41
  windows:
    name: Windows
    columns: {quantity: L, name: M, width: Q, height: R, host: S, glazing: T, orientation: U}
    first_row: 24
  additional_vent:
    name: Additional Vent
    cells: {units: N97, ducts: N127}
    columns: {quantity: E, name: F, unit: G, area: H, supply: L, pattern: P}
    first_row: 57
  ventilation:
    name: Ventilation
    cells: {n50: P27, vn50: P30, design_supply: P40, design_extract: P41}
  verification:
    name: Verification
    cells: {building_name: K7, customer_name: K10, building_status: R80, num_units: R83}
`

func parseTestShape(t *testing.T) *shape.Shape {
	t.Helper()
	layout, err := shape.Parse(strings.NewReader(testShape))
	require.NoError(t, err)
	return layout
}

func rect(name string, w, h float64) *geometry.Polygon {
	p := geometry.NewPolygon(name, w*h, geometry.NewVertex(w/2, 0, h/2), geometry.Vector{Y: -1}, geometry.Plane{})
	p.AddVertex(geometry.NewVertex(0, 0, 0))
	p.AddVertex(geometry.NewVertex(w, 0, 0))
	p.AddVertex(geometry.NewVertex(w, 0, h))
	p.AddVertex(geometry.NewVertex(0, 0, h))
	return p
}

func testProject(t *testing.T) *project.Project {
	t.Helper()
	ids.ResetAll()

	p := project.New("Test House")
	p.ProjectData.Building.Name = "Maple St"
	p.ProjectData.Customer.Name = "Jane Client"

	wallType := constructions.NewOpaqueConstruction("wall", "Wall")
	wallType.AddLayer(constructions.Layer{Thickness: 0.2, Material: constructions.Material{DisplayName: "Wool", Conductivity: 0.035}})
	wallType.AddLayer(constructions.Layer{Thickness: 0.0125, Material: constructions.Material{DisplayName: "Gypsum", Conductivity: 0.16}})
	p.AddAssemblyType(wallType.Identifier, wallType)

	windowType := constructions.NewWindowType("win", "Triple")
	windowType.GlazingGValue = 0.5
	windowType.FrameLeft.Width = 0.1
	p.AddWindowType(windowType.Identifier, windowType)

	pattern := schedules.NewUtilizationPatternVent("Residential")
	p.VentPatterns.Add(pattern)

	v := project.NewVariant("Segment A")
	v.Location.Climate.DisplayName = "Chicago"
	v.Location.Site.Latitude = 41.9
	v.Location.Climate.Monthly.AirTemps[0] = -4.5
	v.Location.Climate.PeakLoads.Heat1.Temperature = -20
	v.PhCertification.Building.AirtightnessN50 = 0.6
	v.PhCertification.Building.NumOfUnits = 1
	p.AddVariant(v)

	wall := building.NewComponentOpaque("South Wall")
	wall.Assembly = wallType
	wall.AddPolygons(rect("wall", 10, 3))
	win := building.NewComponentAperture("Window", wall)
	win.WindowType = windowType
	win.AddPolygons(rect("win", 2, 1.5))
	wall.AddAperture(win)

	airWall := building.NewComponentOpaque("Air Wall")
	airWall.Opacity = enums.OpacityAirBoundary
	airWall.AddPolygons(rect("air", 4, 3))
	v.Building.AddComponents(wall, airWall)

	erv := mech.NewVentilator("ERV")
	erv.Params.SensibleHeatRecovery = 0.84
	ss := mech.NewSubSystem("ERV", erv)
	duct := mech.NewDuct("Supply", mech.DuctTypeSupply)
	duct.AddSegment(&mech.DuctSegment{Length: 5, Diameter: 160})
	ss.Distribution = &mech.Distribution{SupplyDucts: []*mech.Duct{duct}}
	v.Mech.AddNewMechSubsystem("erv", ss)

	zone := building.NewZone("Zone")
	room := building.NewPhxRoomVentilation("Living")
	room.WeightedFloorArea = 25
	room.NetVolume = 62.5
	room.Load.FlowSupply = 30
	room.VentilationUnitID = ss.ID
	room.VentPattern = pattern
	zone.AddRooms(room)
	tb := constructions.NewThermalBridge("tb", "Balcony")
	tb.Length = 4
	tb.Quantity = 2
	tb.PsiValue = 0.05
	tb.GroupType = constructions.ThermalBridgeAmbient
	zone.AddThermalBridges(tb)
	v.Building.AddZones(zone)

	return p
}

// newTestWorkbook creates an empty workbook holding every sheet of the shape.
func newTestWorkbook(t *testing.T, layout *shape.Shape) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })
	for _, sheet := range layout.Worksheets {
		_, err := f.NewSheet(sheet.Name)
		require.NoError(t, err)
	}
	return f
}

func cellValue(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell)
	require.NoError(t, err)
	return v
}

func TestIDString(t *testing.T) {
	tests := []struct {
		id   int
		name string
		want string
	}{
		{id: 3, name: "Wall", want: "03ud-Wall"},
		{id: 12, name: "Triple Pane", want: "12ud-Triple Pane"},
		{id: 104, name: "Roof", want: "104ud-Roof"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, IDString(tt.id, tt.name))
		})
	}
}

func TestWriter_Write(t *testing.T) {
	// Arrange
	layout := parseTestShape(t)
	p := testProject(t)
	f := newTestWorkbook(t, layout)
	w := NewWriter(f, layout, logger.NewNop())

	// Act
	err := w.Write(context.Background(), p)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "Chicago", cellValue(t, f, "Climate", "D9"))
	assert.Equal(t, "41.9", cellValue(t, f, "Climate", "D10"))
	assert.Equal(t, "-4.5", cellValue(t, f, "Climate", "E24"))
	assert.Equal(t, "-20", cellValue(t, f, "Climate", "E30"))

	assert.Equal(t, "01ud-Wall", cellValue(t, f, "U-Values", "M14"))
	assert.Equal(t, "Wool", cellValue(t, f, "U-Values", "L15"))
	assert.Equal(t, "Gypsum", cellValue(t, f, "U-Values", "L16"))
	thickness, err := strconv.ParseFloat(cellValue(t, f, "U-Values", "T15"), 64)
	require.NoError(t, err)
	assert.InDelta(t, 200, thickness, 1e-9, "Expected layer thickness in mm")

	assert.Equal(t, "01ud-Triple", cellValue(t, f, "Components", "IE15"))
	assert.Equal(t, "0.5", cellValue(t, f, "Components", "IF15"))
	assert.Equal(t, "0.1", cellValue(t, f, "Components", "IU15"))

	wallID := p.Variants[0].Building.OpaqueComponents()[0].ID
	assert.Equal(t, IDString(wallID, "South Wall"), cellValue(t, f, "Areas", "L41"))
	assert.Equal(t, "8", cellValue(t, f, "Areas", "M41"))
	assert.Equal(t, "30", cellValue(t, f, "Areas", "V41"))
	assert.Equal(t, "01ud-Wall", cellValue(t, f, "Areas", "AC41"))
	assert.Equal(t, "26", cellValue(t, f, "Areas", "AD41"))
	assert.Empty(t, cellValue(t, f, "Areas", "L42"), "Expected the air boundary to be skipped")
	assert.Equal(t, "01ud-Balcony", cellValue(t, f, "Areas", "L145"))
	assert.Equal(t, "15", cellValue(t, f, "Areas", "M145"))
	assert.Equal(t, "8", cellValue(t, f, "Areas", "N145"))
	assert.Equal(t, "25", cellValue(t, f, "Areas", "V34"))

	assert.Equal(t, "Window", cellValue(t, f, "Windows", "M24"))
	assert.Equal(t, "2", cellValue(t, f, "Windows", "Q24"))
	assert.Equal(t, "1.5", cellValue(t, f, "Windows", "R24"))
	assert.Equal(t, IDString(wallID, "South Wall"), cellValue(t, f, "Windows", "S24"))
	assert.Equal(t, "01ud-Triple", cellValue(t, f, "Windows", "T24"))
	assert.Equal(t, "SOUTH", cellValue(t, f, "Windows", "U24"))

	assert.Equal(t, "Living", cellValue(t, f, "Additional Vent", "F57"))
	assert.Equal(t, "01ud-ERV", cellValue(t, f, "Additional Vent", "G57"))
	assert.Equal(t, "30", cellValue(t, f, "Additional Vent", "L57"))
	assert.Equal(t, "01ud-Residential", cellValue(t, f, "Additional Vent", "P57"))
	assert.Equal(t, "01ud-ERV", cellValue(t, f, "Additional Vent", "N97"))
	assert.Equal(t, "0.84", cellValue(t, f, "Additional Vent", "O97"))
	assert.Equal(t, "Supply", cellValue(t, f, "Additional Vent", "N127"))
	assert.Equal(t, "160", cellValue(t, f, "Additional Vent", "P127"))

	assert.Equal(t, "0.6", cellValue(t, f, "Ventilation", "P27"))
	assert.Equal(t, "62.5", cellValue(t, f, "Ventilation", "P30"))
	assert.Equal(t, "30", cellValue(t, f, "Ventilation", "P40"))
	assert.Equal(t, "0", cellValue(t, f, "Ventilation", "P41"))

	assert.Equal(t, "Maple St", cellValue(t, f, "Verification", "K7"))
	assert.Equal(t, "Jane Client", cellValue(t, f, "Verification", "K10"))
	assert.Equal(t, "1", cellValue(t, f, "Verification", "R83"))

	props, err := f.GetCalcProps()
	require.NoError(t, err)
	require.NotNil(t, props.CalcMode)
	assert.Equal(t, "auto", *props.CalcMode, "Expected calculation mode restored after writing")
}

func TestWriter_TooManyLayers(t *testing.T) {
	layout := parseTestShape(t)
	p := testProject(t)
	for i := 0; i < 3; i++ {
		p.AssemblyTypes()[0].AddLayer(constructions.Layer{Thickness: 0.01})
	}
	f := newTestWorkbook(t, layout)

	err := NewWriter(f, layout, logger.NewNop()).Write(context.Background(), p)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "has 5 layers")
}

func TestWriter_NoVariants(t *testing.T) {
	ids.ResetAll()
	wb := new(MockWorkbook)

	err := NewWriter(wb, parseTestShape(t), logger.NewNop()).Write(context.Background(), project.New("Empty"))

	require.Error(t, err)
	wb.AssertNotCalled(t, "GetCalcProps")
}

func TestWriter_CellErrorRestoresCalcMode(t *testing.T) {
	// Arrange
	layout := parseTestShape(t)
	p := testProject(t)
	wb := new(MockWorkbook)
	wb.On("GetCalcProps").Return(excelize.CalcPropsOptions{}, nil)
	var modes []string
	recordModes(wb, &modes, nil)
	wb.On("SetCellValue", "Climate", mock.Anything, mock.Anything).Return(errors.New("sheet is protected"))

	// Act
	err := NewWriter(wb, layout, logger.NewNop()).Write(context.Background(), p)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sheet is protected")
	assert.Contains(t, err.Error(), "Climate!")
	assert.Equal(t, []string{"manual", "auto"}, modes)
	wb.AssertNumberOfCalls(t, "SetCellValue", 1)
}

func TestWriter_CancelledContext(t *testing.T) {
	layout := parseTestShape(t)
	p := testProject(t)
	wb := new(MockWorkbook)
	wb.On("GetCalcProps").Return(excelize.CalcPropsOptions{}, nil)
	var modes []string
	recordModes(wb, &modes, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewWriter(wb, layout, logger.NewNop()).Write(ctx, p)

	assert.ErrorIs(t, err, context.Canceled)
	wb.AssertNotCalled(t, "SetCellValue", mock.Anything, mock.Anything, mock.Anything)
	assert.Len(t, modes, 2)
}
