package water

// Energy returns the sum of squared heights and squared velocities, a cheap
// measure of how much motion is left in the grid.
func (g *Grid) Energy() float64 {
	var e float64
	for i, h := range g.heights {
		v := g.velocities[i]
		e += h*h + v*v
	}
	return e
}

// HeightRange returns the lowest and highest column heights.
func (g *Grid) HeightRange() (lo, hi float64) {
	if len(g.heights) == 0 {
		return 0, 0
	}
	lo, hi = g.heights[0], g.heights[0]
	for _, h := range g.heights[1:] {
		lo = min(lo, h)
		hi = max(hi, h)
	}
	return lo, hi
}
