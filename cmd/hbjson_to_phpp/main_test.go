package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/stwalsh4118/phx/internal/models/ids"
)

const testModel = "../../internal/cli/testdata/model.hbjson"

const testShape = `
version: "10.4"
language: EN
worksheets:
  climate:
    name: Climate
    cells: {name: D9}
  u_values:
    name: U-Values
    columns: {name: M, layer_material: L, layer_conductivity: M, layer_thickness: T}
    first_row: 14
    rows_per_entry: 4
  components:
    name: Components
    columns: {name: IE}
    first_row: 15
  areas:
    name: Areas
    cells: {treated_floor_area: V34}
    columns: {name: L, area: V, assembly: AC}
    first_row: 41
  windows:
    name: Windows
    columns: {name: M}
    first_row: 24
  additional_vent:
    name: Additional Vent
    columns: {name: F}
    first_row: 57
  ventilation:
    name: Ventilation
    cells: {n50: P27}
  verification:
    name: Verification
    cells: {building_name: K7}
`

var testSheets = []string{
	"Climate", "U-Values", "Components", "Areas",
	"Windows", "Additional Vent", "Ventilation", "Verification",
}

// fixture writes a shape file and an empty workbook holding its sheets.
func fixture(t *testing.T) (dir, shapePath, workbookPath string) {
	t.Helper()
	dir = t.TempDir()

	shapePath = filepath.Join(dir, "shape.yaml")
	require.NoError(t, os.WriteFile(shapePath, []byte(testShape), 0o644))

	f := excelize.NewFile()
	for _, name := range testSheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
	}
	workbookPath = filepath.Join(dir, "phpp.xlsx")
	require.NoError(t, f.SaveAs(workbookPath))
	require.NoError(t, f.Close())
	return dir, shapePath, workbookPath
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func cellValue(t *testing.T, path, sheet, cell string) string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue(sheet, cell)
	require.NoError(t, err)
	return v
}

func TestRoot_WritesWorkbook(t *testing.T) {
	// Arrange
	ids.ResetAll()
	_, shapePath, workbookPath := fixture(t)

	// Act
	err := execute(t, testModel, shapePath, "--workbook="+workbookPath, "--log-level=disabled")

	// Assert
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(cellValue(t, workbookPath, "U-Values", "M14"), "ud-Ext Wall"))
	assert.Equal(t, "Brick", cellValue(t, workbookPath, "U-Values", "L15"))
}

func TestRoot_SaveAs(t *testing.T) {
	ids.ResetAll()
	dir, shapePath, workbookPath := fixture(t)
	saveAs := filepath.Join(dir, "out.xlsx")

	err := execute(t, testModel, shapePath,
		"--workbook="+workbookPath, "--save-as="+saveAs, "--log-level=disabled")

	require.NoError(t, err)
	assert.Equal(t, "Brick", cellValue(t, saveAs, "U-Values", "L15"))
	assert.Empty(t, cellValue(t, workbookPath, "U-Values", "L15"), "Expected the source workbook untouched")
}

func TestRoot_RequiresWorkbook(t *testing.T) {
	_, shapePath, _ := fixture(t)

	err := execute(t, testModel, shapePath, "--log-level=disabled")

	assert.ErrorIs(t, err, errNoWorkbook)
}

func TestRoot_ArgCount(t *testing.T) {
	err := execute(t, testModel)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestRoot_BadShape(t *testing.T) {
	dir, _, workbookPath := fixture(t)
	shapePath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(shapePath, []byte("worksheets: {}\n"), 0o644))

	err := execute(t, testModel, shapePath, "--workbook="+workbookPath, "--log-level=disabled")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load shape")
}
