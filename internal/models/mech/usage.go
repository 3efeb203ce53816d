// Package mech holds the mechanical equipment hierarchy: devices with their
// parameter records, distribution, sub-systems and the per-variant
// collection.
package mech

// UsageProfile says which energy end-uses a device serves.
type UsageProfile struct {
	SpaceHeating     bool
	DHWHeating       bool
	Cooling          bool
	Ventilation      bool
	Humidification   bool
	Dehumidification bool
}

// Add ORs every flag.
func (u UsageProfile) Add(o UsageProfile) UsageProfile {
	return UsageProfile{
		SpaceHeating:     u.SpaceHeating || o.SpaceHeating,
		DHWHeating:       u.DHWHeating || o.DHWHeating,
		Cooling:          u.Cooling || o.Cooling,
		Ventilation:      u.Ventilation || o.Ventilation,
		Humidification:   u.Humidification || o.Humidification,
		Dehumidification: u.Dehumidification || o.Dehumidification,
	}
}

// Any reports whether at least one flag is set.
func (u UsageProfile) Any() bool {
	return u.SpaceHeating || u.DHWHeating || u.Cooling ||
		u.Ventilation || u.Humidification || u.Dehumidification
}
