package mech

import (
	"github.com/google/uuid"

	"github.com/stwalsh4118/phx/internal/models/ids"
)

var subsystemIDs = ids.NewCounter("mech_subsystem")

// SubSystem is one device plus its distribution. The usage profile is the
// device's.
type SubSystem struct {
	ID           int
	Identifier   string
	DisplayName  string
	Device       Device
	Distribution *Distribution
}

// NewSubSystem wraps a device with the next sub-system id and a fresh UUID.
func NewSubSystem(displayName string, device Device) *SubSystem {
	return &SubSystem{
		ID:          subsystemIDs.Next(),
		Identifier:  uuid.NewString(),
		DisplayName: displayName,
		Device:      device,
	}
}

// UsageProfile returns the device's usage profile.
func (s *SubSystem) UsageProfile() UsageProfile {
	if s.Device == nil {
		return UsageProfile{}
	}
	return s.Device.Base().Usage
}
