// Package shape describes where each PHPP value lives in a localized
// workbook.
package shape

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Worksheet keys of a shape document.
const (
	SheetClimate        = "climate"
	SheetUValues        = "u_values"
	SheetComponents     = "components"
	SheetAreas          = "areas"
	SheetWindows        = "windows"
	SheetAdditionalVent = "additional_vent"
	SheetVentilation    = "ventilation"
	SheetVerification   = "verification"
)

var requiredSheets = []string{
	SheetClimate, SheetUValues, SheetComponents, SheetAreas,
	SheetWindows, SheetAdditionalVent, SheetVentilation, SheetVerification,
}

// Shape locates every cell the writer touches in one localized PHPP
// version.
type Shape struct {
	Version    string           `yaml:"version"`
	Language   string           `yaml:"language"`
	Worksheets map[string]Sheet `yaml:"worksheets"`
}

// Sheet is the layout of one worksheet. Cells are fixed addresses; Columns
// are letters used with FirstRow for tabular blocks.
type Sheet struct {
	Name         string            `yaml:"name"`
	Cells        map[string]string `yaml:"cells"`
	Columns      map[string]string `yaml:"columns"`
	FirstRow     int               `yaml:"first_row"`
	RowsPerEntry int               `yaml:"rows_per_entry"`
}

// Parse decodes a YAML shape document and checks that every worksheet is
// present.
func Parse(r io.Reader) (*Shape, error) {
	var s Shape
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode shape: %w", err)
	}
	for _, key := range requiredSheets {
		sheet, ok := s.Worksheets[key]
		if !ok {
			return nil, fmt.Errorf("shape is missing worksheet %q", key)
		}
		if sheet.Name == "" {
			return nil, fmt.Errorf("shape worksheet %q has no name", key)
		}
	}
	return &s, nil
}

// Sheet returns the layout for key. Parse guarantees presence.
func (s *Shape) Sheet(key string) Sheet {
	return s.Worksheets[key]
}

// Cell returns a fixed address, or "" when the shape does not define it.
func (s Sheet) Cell(name string) string {
	return s.Cells[name]
}

// Column returns a column letter, or "" when the shape does not define it.
func (s Sheet) Column(name string) string {
	return s.Columns[name]
}

// EntryRow is the first row of the i-th entry of a tabular block.
func (s Sheet) EntryRow(i int) int {
	step := s.RowsPerEntry
	if step < 1 {
		step = 1
	}
	return s.FirstRow + i*step
}
