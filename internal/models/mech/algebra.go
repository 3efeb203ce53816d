package mech

// mean averages two operands.
func mean(a, b float64) float64 {
	return (a + b) / 2
}

// safeAdd sums optional counts and capacities. A missing operand yields the
// other one; two missing operands stay missing.
func safeAdd[T int | float64](a, b *T) *T {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		v := *b
		return &v
	case b == nil:
		v := *a
		return &v
	default:
		v := *a + *b
		return &v
	}
}

// safeMean is safeAdd for rates and efficiencies: two present operands are
// averaged instead of summed.
func safeMean(a, b *float64) *float64 {
	if a != nil && b != nil {
		v := mean(*a, *b)
		return &v
	}
	return safeAdd(a, b)
}

// Float returns a pointer to v, for optional parameter fields.
func Float(v float64) *float64 {
	return &v
}
