package water

// SetHeight raises or lowers column index by one StepHeight and re-bands it.
// An index outside the grid changes nothing, since a pick may legitimately
// miss. Normals of the whole grid are recomputed either way. It reports
// whether a column was changed.
func (g *Grid) SetHeight(index int, raise bool) bool {
	if g.side == 0 {
		return false
	}

	hit := index >= 0 && index < len(g.heights)
	if hit {
		step := g.params.StepHeight
		if !raise {
			step = -step
		}
		g.heights[index] += step
		g.bands[index] = Classify(g.heights[index], g.params)
	}

	g.recomputeNormals()
	return hit
}
