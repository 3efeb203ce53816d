package mech

import (
	"fmt"

	phxerrors "github.com/stwalsh4118/phx/internal/errors"
)

// Collection is the per-variant set of mechanical sub-systems, keyed by the
// source unit's key and kept in insertion order.
type Collection struct {
	subsystems map[string]*SubSystem
	keys       []string
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{subsystems: make(map[string]*SubSystem)}
}

// GetMechSubsystemByKey returns the sub-system stored under key, or nil.
func (c *Collection) GetMechSubsystemByKey(key string) *SubSystem {
	return c.subsystems[key]
}

// AddNewMechSubsystem stores s under key. An existing entry is replaced in
// place, keeping its position.
func (c *Collection) AddNewMechSubsystem(key string, s *SubSystem) {
	if _, ok := c.subsystems[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.subsystems[key] = s
}

// GetMechSubsystemByID scans for a sub-system with the given id.
func (c *Collection) GetMechSubsystemByID(id int) (*SubSystem, error) {
	for _, s := range c.Subsystems() {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: no subsystem with id %d in collection", phxerrors.ErrSubsystemNotFound, id)
}

// Subsystems returns every sub-system in insertion order.
func (c *Collection) Subsystems() []*SubSystem {
	out := make([]*SubSystem, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.subsystems[k])
	}
	return out
}

// Len returns the number of sub-systems.
func (c *Collection) Len() int {
	return len(c.keys)
}

func (c *Collection) filter(keep func(UsageProfile) bool) []*SubSystem {
	var out []*SubSystem
	for _, s := range c.Subsystems() {
		if keep(s.UsageProfile()) {
			out = append(out, s)
		}
	}
	return out
}

// VentilationSubsystems returns sub-systems whose device serves ventilation.
func (c *Collection) VentilationSubsystems() []*SubSystem {
	return c.filter(func(u UsageProfile) bool { return u.Ventilation })
}

// SpaceHeatingSubsystems returns sub-systems whose device serves space heating.
func (c *Collection) SpaceHeatingSubsystems() []*SubSystem {
	return c.filter(func(u UsageProfile) bool { return u.SpaceHeating })
}

// CoolingSubsystems returns sub-systems whose device serves cooling.
func (c *Collection) CoolingSubsystems() []*SubSystem {
	return c.filter(func(u UsageProfile) bool { return u.Cooling })
}

// DHWHeatingSubsystems returns sub-systems whose device serves DHW heating.
func (c *Collection) DHWHeatingSubsystems() []*SubSystem {
	return c.filter(func(u UsageProfile) bool { return u.DHWHeating })
}

// DHWTankSubsystems returns the DHW storage tanks.
func (c *Collection) DHWTankSubsystems() []*SubSystem {
	var out []*SubSystem
	for _, s := range c.Subsystems() {
		if _, ok := s.Device.(*HotWaterTank); ok {
			out = append(out, s)
		}
	}
	return out
}

// DHWHeaterSubsystems returns DHW-serving sub-systems that are not tanks.
func (c *Collection) DHWHeaterSubsystems() []*SubSystem {
	var out []*SubSystem
	for _, s := range c.DHWHeatingSubsystems() {
		if _, ok := s.Device.(*HotWaterTank); !ok {
			out = append(out, s)
		}
	}
	return out
}

// Ducts returns every duct across the ventilation sub-systems.
func (c *Collection) Ducts() []*Duct {
	var out []*Duct
	for _, s := range c.VentilationSubsystems() {
		if s.Distribution != nil {
			out = append(out, s.Distribution.Ducts()...)
		}
	}
	return out
}
