package climate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	phxerrors "github.com/stwalsh4118/phx/internal/errors"
)

func TestNewMonthly(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		wantErr bool
	}{
		{name: "twelve values", values: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{name: "too few", values: []float64{1, 2, 3}, wantErr: true},
		{name: "too many", values: make([]float64, 13), wantErr: true},
		{name: "nil", values: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMonthly(tt.values)
			if tt.wantErr {
				assert.ErrorIs(t, err, phxerrors.ErrInvalidMonthlyData)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 12.0, m[11])
			assert.InDelta(t, 6.5, m.Average(), 1e-9)
		})
	}
}

func TestConversionFactor_Validate(t *testing.T) {
	// The two standards disagree on gas; both spellings are accepted.
	assert.NoError(t, ConversionFactor{FuelName: "GAS"}.Validate())
	assert.NoError(t, ConversionFactor{FuelName: "NATURAL_GAS"}.Validate())
	assert.ErrorIs(t, ConversionFactor{FuelName: "UNOBTAINIUM"}.Validate(), phxerrors.ErrFuelNotAllowed)
}

func TestLocation_ValidateFactors(t *testing.T) {
	loc := NewLocation()
	loc.SiteToSourceFactors = FactorsFromMap(map[string]float64{"ELECTRICITY": 2.8, "NATURAL_GAS": 1.1}, "kWh/kWh")
	require.NoError(t, loc.ValidateFactors())
	assert.Equal(t, "ELECTRICITY", loc.SiteToSourceFactors[0].FuelName)

	loc.SiteToCO2eFactors = []ConversionFactor{{FuelName: "PLUTONIUM", Value: 1}}
	assert.ErrorIs(t, loc.ValidateFactors(), phxerrors.ErrFuelNotAllowed)
}

func TestDefaultGround(t *testing.T) {
	g := NewLocation().Ground
	assert.Equal(t, 2.0, g.GroundThermalConductivity)
	assert.Contains(t, AllowedFuels(), "PROPANE")
}
