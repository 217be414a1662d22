package arch

// Capacity is the instance-count range [Low, High] of a sub tile. A sub tile
// with capacity [0:3] hosts four interchangeable instances, any of which may
// be occupied by one of the sub tile's equivalent sites.
type Capacity struct {
	Low  int
	High int
}

// Total returns the number of instances in the range.
func (c Capacity) Total() int {
	return c.High - c.Low + 1
}

// Contains reports whether the absolute location loc falls inside the range.
func (c Capacity) Contains(loc int) bool {
	return loc >= c.Low && loc <= c.High
}
