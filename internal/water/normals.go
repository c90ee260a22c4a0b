package water

import "github.com/Faultbox/ripple/pkg/math"

// minNormalLength is the cross product length below which a normal is
// treated as degenerate and replaced by Up.
const minNormalLength = 1e-12

// Up is the normal of a flat surface.
var Up = math.Vec3d{X: 0, Y: 1, Z: 0}

// recomputeNormals derives every normal from central differences of the
// four axis neighbors. Neighbor heights are clamped to the grid while their
// horizontal positions follow the lattice, so the horizontal terms never
// vanish at the edges.
func (g *Grid) recomputeNormals() {
	side := g.side
	for y := range side {
		for x := range side {
			right := g.latticePoint(x+1, y).Sub(g.latticePoint(x-1, y))
			down := g.latticePoint(x, y+1).Sub(g.latticePoint(x, y-1))
			g.normals[y*side+x] = unitOrUp(down.Cross(right))
		}
	}
}

func (g *Grid) latticePoint(x, y int) math.Vec3d {
	return math.Vec3d{X: g.offset(x), Y: g.heightAt(x, y), Z: g.offset(y)}
}

func unitOrUp(n math.Vec3d) math.Vec3d {
	l := n.Length()
	// !(l >= min) also catches NaN from non-finite heights.
	if !(l >= minNormalLength) {
		return Up
	}
	return n.Scale(1 / l)
}
