package mech

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	phxerrors "github.com/stwalsh4118/phx/internal/errors"
	"github.com/stwalsh4118/phx/internal/models/ids"
)

func TestHeatPumpAnnual_Add(t *testing.T) {
	a := NewHeatPumpAnnual("HP-1")
	a.Params.AnnualCOP = 4.0
	a.PercentCoverage = 0.6
	b := NewHeatPumpAnnual("HP-2")
	b.Params.AnnualCOP = 2.0
	b.PercentCoverage = 0.4
	b.Usage.Cooling = true

	sum := a.Add(b)

	assert.InDelta(t, 3.0, sum.Params.AnnualCOP, 1e-9)
	assert.InDelta(t, 1.0, sum.PercentCoverage, 1e-9)
	assert.True(t, sum.Usage.SpaceHeating)
	assert.True(t, sum.Usage.Cooling)
	assert.Equal(t, 2, sum.Quantity)
	assert.Equal(t, "HP-1", sum.DisplayName)
	assert.NotEqual(t, a.ID, sum.ID)
	assert.NotEqual(t, b.ID, sum.ID)
}

func TestSafeAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b *float64
		want *float64
	}{
		{name: "both missing", a: nil, b: nil, want: nil},
		{name: "left missing", a: nil, b: Float(2), want: Float(2)},
		{name: "right missing", a: Float(3), b: nil, want: Float(3)},
		{name: "both present", a: Float(3), b: Float(2), want: Float(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := safeAdd(tt.a, tt.b)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestSafeMean(t *testing.T) {
	assert.Nil(t, safeMean(nil, nil))
	assert.InDelta(t, 4.0, *safeMean(nil, Float(4)), 1e-9)
	assert.InDelta(t, 3.0, *safeMean(Float(4), Float(2)), 1e-9)
}

func TestParams_AdditiveIdentity(t *testing.T) {
	vent := VentilatorParams{QuantityVentilators: 2, FrostProtectionReqd: true}
	got := vent.Add(VentilatorParams{})
	assert.Equal(t, 2, got.QuantityVentilators)
	assert.True(t, got.FrostProtectionReqd)

	boiler := FossilBoilerParams{AuxEnergy: Float(120)}
	gotBoiler := boiler.Add(FossilBoilerParams{})
	require.NotNil(t, gotBoiler.AuxEnergy)
	assert.InDelta(t, 120.0, *gotBoiler.AuxEnergy, 1e-9)
	assert.Nil(t, gotBoiler.AuxEnergyDHW)

	tank := HotWaterTankParams{Quantity: 3, InConditionedSpace: true}
	gotTank := tank.Add(HotWaterTankParams{})
	assert.Equal(t, 3, gotTank.Quantity)
	assert.True(t, gotTank.InConditionedSpace)
}

func TestParams_AddIsAssociative(t *testing.T) {
	t.Run("summed optional fields", func(t *testing.T) {
		// Arrange
		a := FossilBoilerParams{EffiPL30: 0.9, RatedCapacity: 10, AuxEnergy: Float(100)}
		b := FossilBoilerParams{EffiPL30: 0.9, RatedCapacity: 10, AuxEnergyDHW: Float(20), Condensing: true}
		c := FossilBoilerParams{EffiPL30: 0.9, RatedCapacity: 10, AuxEnergy: Float(5), AuxEnergyDHW: Float(3)}

		// Act
		left := a.Add(b).Add(c)
		right := a.Add(b.Add(c))

		// Assert
		assert.Equal(t, left, right)
		require.NotNil(t, left.AuxEnergy)
		assert.InDelta(t, 105.0, *left.AuxEnergy, 1e-9)
		require.NotNil(t, left.AuxEnergyDHW)
		assert.InDelta(t, 23.0, *left.AuxEnergyDHW, 1e-9)
		assert.True(t, left.Condensing)
	})

	t.Run("averaged optional fields", func(t *testing.T) {
		// Averages only regroup exactly when the operands agree.
		a := HeatPumpHotWaterParams{AnnualCOP: Float(3)}
		b := HeatPumpHotWaterParams{AnnualCOP: Float(3), AnnualEnergyFactor: Float(2.5)}
		c := HeatPumpHotWaterParams{TotalSystemPerfRatio: Float(0.8), InConditionedSpace: true}

		left := a.Add(b).Add(c)
		right := a.Add(b.Add(c))

		assert.Equal(t, left, right)
		require.NotNil(t, left.TotalSystemPerfRatio)
		assert.InDelta(t, 0.8, *left.TotalSystemPerfRatio, 1e-9)
		assert.True(t, left.InConditionedSpace)
	})
}

func TestAddDevices(t *testing.T) {
	t.Run("same variant", func(t *testing.T) {
		sum, err := AddDevices(NewVentilator("A"), NewVentilator("B"))
		require.NoError(t, err)
		v, ok := sum.(*Ventilator)
		require.True(t, ok)
		assert.Equal(t, 2, v.Params.QuantityVentilators)
	})

	t.Run("mismatched variants", func(t *testing.T) {
		_, err := AddDevices(NewVentilator("A"), NewElectricHeater("B"))
		assert.Error(t, err)
	})
}

func TestSumDevices(t *testing.T) {
	empty, err := SumDevices()
	require.NoError(t, err)
	assert.Nil(t, empty)

	single := NewHotWaterTank("Tank")
	got, err := SumDevices(single)
	require.NoError(t, err)
	assert.Same(t, single, got)

	got, err = SumDevices(NewHotWaterTank("T1"), NewHotWaterTank("T2"), NewHotWaterTank("T3"))
	require.NoError(t, err)
	assert.Equal(t, 3, got.(*HotWaterTank).Params.Quantity)
	assert.Equal(t, 3, got.Base().Quantity)
}

func TestNewDevice_UsageProfiles(t *testing.T) {
	tests := []struct {
		name   string
		device Device
		want   UsageProfile
	}{
		{name: "ventilator", device: NewVentilator("v"), want: UsageProfile{Ventilation: true}},
		{name: "electric heater", device: NewElectricHeater("e"), want: UsageProfile{SpaceHeating: true}},
		{name: "hot water heat pump", device: NewHeatPumpHotWater("hw"), want: UsageProfile{DHWHeating: true}},
		{name: "combined heat pump", device: NewHeatPumpCombined("c"), want: UsageProfile{SpaceHeating: true, DHWHeating: true}},
		{name: "dehumidification", device: NewCoolerDehumidification("d"), want: UsageProfile{Cooling: true, Dehumidification: true}},
		{name: "tank", device: NewHotWaterTank("t"), want: UsageProfile{DHWHeating: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.device.Base().Usage)
		})
	}
}

func TestCollection_VentilationLookup(t *testing.T) {
	ids.ResetAll()
	c := NewCollection()
	sub := NewSubSystem("ERV", NewVentilator("ERV"))
	c.AddNewMechSubsystem("vent-A", sub)
	c.AddNewMechSubsystem("heat-A", NewSubSystem("Heater", NewElectricHeater("Heater")))

	vents := c.VentilationSubsystems()
	require.Len(t, vents, 1)
	assert.Same(t, sub, vents[0])
	assert.Same(t, sub, c.GetMechSubsystemByKey("vent-A"))

	found, err := c.GetMechSubsystemByID(sub.ID)
	require.NoError(t, err)
	assert.Same(t, sub, found)

	_, err = c.GetMechSubsystemByID(sub.ID + 999)
	assert.ErrorIs(t, err, phxerrors.ErrSubsystemNotFound)
}

func TestCollection_ReplaceKeepsOrder(t *testing.T) {
	c := NewCollection()
	c.AddNewMechSubsystem("a", NewSubSystem("a", NewVentilator("a")))
	c.AddNewMechSubsystem("b", NewSubSystem("b", NewElectricHeater("b")))
	replacement := NewSubSystem("a2", NewVentilator("a2"))
	c.AddNewMechSubsystem("a", replacement)

	subs := c.Subsystems()
	require.Len(t, subs, 2)
	assert.Same(t, replacement, subs[0])
	assert.Nil(t, c.GetMechSubsystemByKey("missing"))
}

func TestCollection_DHWFilters(t *testing.T) {
	c := NewCollection()
	c.AddNewMechSubsystem("hp", NewSubSystem("hp", NewHeatPumpHotWater("hp")))
	c.AddNewMechSubsystem("tank", NewSubSystem("tank", NewHotWaterTank("tank")))

	assert.Len(t, c.DHWHeatingSubsystems(), 2)
	assert.Len(t, c.DHWTankSubsystems(), 1)
	assert.Len(t, c.DHWHeaterSubsystems(), 1)
	assert.Empty(t, c.SpaceHeatingSubsystems())
}

func TestDistribution(t *testing.T) {
	duct := NewDuct("Supply", DuctTypeSupply)
	duct.AddSegment(&DuctSegment{Length: 2, Diameter: 160})
	duct.AddSegment(&DuctSegment{Length: 2, Diameter: 100})
	duct.AddSegment(&DuctSegment{Length: 5, Height: 100, Width: 200})

	assert.InDelta(t, 9.0, duct.Length(), 1e-9)
	assert.InDelta(t, 130.0, duct.DiameterMM(), 1e-9)

	d := &Distribution{SupplyDucts: []*Duct{duct}}
	assert.False(t, d.IsEmpty())
	assert.Len(t, d.Ducts(), 1)
	assert.True(t, (&Distribution{}).IsEmpty())
}
