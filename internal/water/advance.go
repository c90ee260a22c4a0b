package water

// Advance moves the simulation forward by interval seconds.
//
// Each column accelerates by Propagation² times the discrete Laplacian of
// the height field (edge neighbors are clamped, i.e. replicated), its
// velocity is damped, and its height integrates the new velocity. All new
// heights are computed from the previous step's heights and committed
// together at the end.
func (g *Grid) Advance(interval float64) {
	side := g.side
	if side == 0 {
		return
	}

	spacing := g.params.ColumnScale / float64(side)
	invSpacingSq := 1 / (spacing * spacing)
	c2 := g.params.Propagation * g.params.Propagation
	damp := g.params.Dampening

	for y := range side {
		for x := range side {
			i := y*side + x
			h := g.heights[i]

			laplacian := (g.heightAt(x+1, y) +
				g.heightAt(x-1, y) +
				g.heightAt(x, y+1) +
				g.heightAt(x, y-1) -
				4*h) * invSpacingSq

			v := (g.velocities[i] + c2*laplacian*interval) * damp
			g.velocities[i] = v
			g.scratch[i] = h + v*interval
		}
	}

	g.heights, g.scratch = g.scratch, g.heights

	g.recomputeBands()
	g.recomputeNormals()
}
