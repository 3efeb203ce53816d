package project

// catalog is a name-keyed store that remembers insertion order.
type catalog[T any] struct {
	items map[string]T
	keys  []string
}

func newCatalog[T any]() *catalog[T] {
	return &catalog[T]{items: make(map[string]T)}
}

func (c *catalog[T]) put(key string, item T) {
	if _, ok := c.items[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.items[key] = item
}

func (c *catalog[T]) get(key string) (T, bool) {
	item, ok := c.items[key]
	return item, ok
}

func (c *catalog[T]) values() []T {
	out := make([]T, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.items[k])
	}
	return out
}
