package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	phxerrors "github.com/stwalsh4118/phx/internal/errors"
)

var testAllowed = []string{"STANDARD", "USER_DETERMINED", "", "OFFICE"}

func TestEnumerable_Set(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		wantValue  string
		wantNumber int
		wantErr    bool
	}{
		{name: "bare name", value: "STANDARD", wantValue: "STANDARD", wantNumber: 1},
		{name: "case insensitive", value: "office", wantValue: "OFFICE", wantNumber: 4},
		{name: "number", value: "2", wantValue: "USER_DETERMINED", wantNumber: 2},
		{name: "numbered name", value: "4-OFFICE", wantValue: "OFFICE", wantNumber: 4},
		{name: "hole by number", value: "3", wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "out of range", value: "9", wantErr: true},
		{name: "unknown name", value: "HOSPITAL", wantErr: true},
		{name: "mismatched numbered name", value: "1-OFFICE", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEnumerable("occupancy_type", testAllowed, tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, phxerrors.ErrEnumValueNotAllowed)
				assert.Contains(t, err.Error(), "occupancy_type")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, e.Value())
			assert.Equal(t, tt.wantNumber, e.Number())
		})
	}
}

func TestEnumerable_HoleDoesNotMapToSibling(t *testing.T) {
	e := MustEnumerable("occupancy_type", testAllowed, "OFFICE")

	err := e.Set("3")

	assert.ErrorIs(t, err, phxerrors.ErrEnumValueNotAllowed)
	assert.Equal(t, "OFFICE", e.Value(), "Expected failed assignment to keep the previous value")
}

func TestEnumerable_String(t *testing.T) {
	e := MustEnumerable("occupancy_type", testAllowed, "USER_DETERMINED")
	assert.Equal(t, "2-USER_DETERMINED", e.String())
}

func TestParseFuelType(t *testing.T) {
	f, err := ParseFuelType("WOOD_PELLET")
	require.NoError(t, err)
	assert.Equal(t, FuelTypeWoodPellet, f)

	_, err = ParseFuelType("COAL")
	assert.ErrorIs(t, err, phxerrors.ErrEnumValueNotAllowed)
}

func TestFaceTypeSharedNumber(t *testing.T) {
	assert.Equal(t, FaceTypeRoofCeiling, FaceTypeAirBoundary)
	assert.Equal(t, "WALL", FaceTypeWall.String())
	assert.Equal(t, "EXTERIOR", ExposureExteriorExterior.String())
}
