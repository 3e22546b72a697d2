package fontsize

// Constraints holds the configured font size bounds and default, as read
// from the global preferences.
type Constraints struct {
	// Default is the size restored by reset.
	Default int

	// Min is the smallest size adjustment will produce.
	Min int

	// Max is the largest size adjustment will produce.
	Max int
}

// Clamp constrains a size into [Min, Max]. A size already at a bound
// clamps to itself.
func (c Constraints) Clamp(size int) int {
	if size < c.Min {
		return c.Min
	}
	if size > c.Max {
		return c.Max
	}
	return size
}

// Valid reports whether the bounds bracket a non-empty range.
func (c Constraints) Valid() bool {
	return c.Min <= c.Max
}
