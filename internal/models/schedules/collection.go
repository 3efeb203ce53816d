package schedules

// UtilizationPatternCollectionVent is the project-wide catalog of ventilation
// patterns, keyed by identifier and kept in insertion order.
type UtilizationPatternCollectionVent struct {
	patterns map[string]*UtilizationPatternVent
	order    []string
}

// NewUtilizationPatternCollectionVent creates an empty collection.
func NewUtilizationPatternCollectionVent() *UtilizationPatternCollectionVent {
	return &UtilizationPatternCollectionVent{
		patterns: make(map[string]*UtilizationPatternVent),
	}
}

// Add inserts a pattern under its identifier, replacing any prior entry.
func (c *UtilizationPatternCollectionVent) Add(p *UtilizationPatternVent) {
	if _, ok := c.patterns[p.Identifier]; !ok {
		c.order = append(c.order, p.Identifier)
	}
	c.patterns[p.Identifier] = p
}

// Get returns the pattern with the given identifier, or nil.
func (c *UtilizationPatternCollectionVent) Get(identifier string) *UtilizationPatternVent {
	return c.patterns[identifier]
}

// Patterns returns every pattern in insertion order.
func (c *UtilizationPatternCollectionVent) Patterns() []*UtilizationPatternVent {
	out := make([]*UtilizationPatternVent, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.patterns[key])
	}
	return out
}

// Len returns the number of patterns.
func (c *UtilizationPatternCollectionVent) Len() int {
	return len(c.order)
}

// Validate checks every pattern against target hours and returns the
// diagnostics in insertion order.
func (c *UtilizationPatternCollectionVent) Validate(target float64) []error {
	var out []error
	for _, p := range c.Patterns() {
		if err := p.Validate(target); err != nil {
			out = append(out, err)
		}
	}
	return out
}
