// Package ids holds the process-wide monotonic id counters used to number
// entities of the intermediate model. Construction is single-threaded, so the
// counters carry no locking.
package ids

// Counter hands out strictly increasing integer ids for one entity class.
type Counter struct {
	name string
	last int
}

var registry []*Counter

// NewCounter creates a counter and registers it with ResetAll.
func NewCounter(name string) *Counter {
	c := &Counter{name: name}
	registry = append(registry, c)
	return c
}

// Next returns the next id. The first id after a reset is 1.
func (c *Counter) Next() int {
	c.last++
	return c.last
}

// Last returns the most recently issued id, or 0 if none was issued.
func (c *Counter) Last() int {
	return c.last
}

// Name returns the entity class this counter numbers.
func (c *Counter) Name() string {
	return c.name
}

// Reset sets the counter back to zero.
func (c *Counter) Reset() {
	c.last = 0
}

// ResetAll resets every registered counter. Tests call this between runs.
func ResetAll() {
	for _, c := range registry {
		c.Reset()
	}
}

// Snapshot returns the last issued id per counter name.
func Snapshot() map[string]int {
	out := make(map[string]int, len(registry))
	for _, c := range registry {
		out[c.name] = c.last
	}
	return out
}
