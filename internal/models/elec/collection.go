package elec

// Collection holds a zone's appliances in insertion order. Adding an
// appliance whose key is already present increments the existing entry's
// quantity.
type Collection struct {
	byKey map[string]*Appliance
	keys  []string
}

// NewCollection creates an empty appliance collection.
func NewCollection() *Collection {
	return &Collection{byKey: make(map[string]*Appliance)}
}

// AddAppliance inserts a or merges it into an existing entry with the same key.
func (c *Collection) AddAppliance(a *Appliance) {
	key := a.Key()
	if existing, ok := c.byKey[key]; ok {
		existing.Quantity += a.Quantity
		return
	}
	c.byKey[key] = a
	c.keys = append(c.keys, key)
}

// Appliances returns every appliance in insertion order.
func (c *Collection) Appliances() []*Appliance {
	out := make([]*Appliance, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.byKey[k])
	}
	return out
}

// OfType returns appliances of type t.
func (c *Collection) OfType(t ApplianceType) []*Appliance {
	var out []*Appliance
	for _, a := range c.Appliances() {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

// Len returns the number of distinct appliances.
func (c *Collection) Len() int {
	return len(c.keys)
}
