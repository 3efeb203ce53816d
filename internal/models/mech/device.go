package mech

import (
	"fmt"

	"github.com/stwalsh4118/phx/internal/models/enums"
	"github.com/stwalsh4118/phx/internal/models/ids"
)

var deviceIDs = ids.NewCounter("mech_device")

// DeviceBase is the envelope shared by every device variant.
type DeviceBase struct {
	ID              int
	DisplayName     string
	DeviceType      enums.DeviceType
	Quantity        int
	Unit            float64
	PercentCoverage float64
	Usage           UsageProfile
}

func newDeviceBase(dt enums.DeviceType, displayName string, usage UsageProfile) DeviceBase {
	return DeviceBase{
		ID:              deviceIDs.Next(),
		DisplayName:     displayName,
		DeviceType:      dt,
		Quantity:        1,
		PercentCoverage: 1.0,
		Usage:           usage,
	}
}

// Base returns the shared envelope.
func (b *DeviceBase) Base() *DeviceBase {
	return b
}

func (b *DeviceBase) isDevice() {}

// add builds the envelope of a summed device: a new id, the left operand's
// name and type, summed quantity, unit and coverage, and OR'd usage.
func (b *DeviceBase) add(o *DeviceBase) DeviceBase {
	return DeviceBase{
		ID:              deviceIDs.Next(),
		DisplayName:     b.DisplayName,
		DeviceType:      b.DeviceType,
		Quantity:        b.Quantity + o.Quantity,
		Unit:            b.Unit + o.Unit,
		PercentCoverage: b.PercentCoverage + o.PercentCoverage,
		Usage:           b.Usage.Add(o.Usage),
	}
}

// Device is the closed set of mechanical device variants. Every variant
// embeds DeviceBase and carries its own parameter record.
type Device interface {
	Base() *DeviceBase
	isDevice()
}

// AddDevices sums two devices of the same variant.
func AddDevices(a, b Device) (Device, error) {
	switch x := a.(type) {
	case *Ventilator:
		if y, ok := b.(*Ventilator); ok {
			return x.Add(y), nil
		}
	case *ElectricHeater:
		if y, ok := b.(*ElectricHeater); ok {
			return x.Add(y), nil
		}
	case *FossilBoiler:
		if y, ok := b.(*FossilBoiler); ok {
			return x.Add(y), nil
		}
	case *WoodBoiler:
		if y, ok := b.(*WoodBoiler); ok {
			return x.Add(y), nil
		}
	case *DistrictHeater:
		if y, ok := b.(*DistrictHeater); ok {
			return x.Add(y), nil
		}
	case *HeatPumpAnnual:
		if y, ok := b.(*HeatPumpAnnual); ok {
			return x.Add(y), nil
		}
	case *HeatPumpMonthly:
		if y, ok := b.(*HeatPumpMonthly); ok {
			return x.Add(y), nil
		}
	case *HeatPumpHotWater:
		if y, ok := b.(*HeatPumpHotWater); ok {
			return x.Add(y), nil
		}
	case *HeatPumpCombined:
		if y, ok := b.(*HeatPumpCombined); ok {
			return x.Add(y), nil
		}
	case *CoolerVentilation:
		if y, ok := b.(*CoolerVentilation); ok {
			return x.Add(y), nil
		}
	case *CoolerRecirculation:
		if y, ok := b.(*CoolerRecirculation); ok {
			return x.Add(y), nil
		}
	case *CoolerDehumidification:
		if y, ok := b.(*CoolerDehumidification); ok {
			return x.Add(y), nil
		}
	case *CoolerPanel:
		if y, ok := b.(*CoolerPanel); ok {
			return x.Add(y), nil
		}
	case *HotWaterTank:
		if y, ok := b.(*HotWaterTank); ok {
			return x.Add(y), nil
		}
	}
	return nil, fmt.Errorf("cannot add devices of different variants: %T + %T", a, b)
}

// SumDevices folds AddDevices over devs. An empty list yields nil and a single
// device is returned unchanged.
func SumDevices(devs ...Device) (Device, error) {
	if len(devs) == 0 {
		return nil, nil
	}
	acc := devs[0]
	for _, d := range devs[1:] {
		next, err := AddDevices(acc, d)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}
