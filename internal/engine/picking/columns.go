package picking

import "github.com/Faultbox/ripple/pkg/math"

// Miss is returned by PickColumn when no column is under the ray.
const Miss = -1

// Columns is the part of a water grid picking needs.
type Columns interface {
	SideLength() int
	Len() int
	Position(i int) math.Vec3d
}

// PickColumn returns the linear index of the column nearest along the ray,
// or Miss. Column positions are multiplied by scale to get world space.
// Each column is a cube half a lattice spacing across, so adjacent boxes
// touch and a ray over the surface always finds something.
func PickColumn(r Ray, grid Columns, scale float32) int {
	side := grid.SideLength()
	if side < 2 {
		return Miss
	}
	half := scale / float32(side-1) / 2

	best := Miss
	var bestT float32
	for i := range grid.Len() {
		center := grid.Position(i).Float32().Scale(scale)
		t, hit := r.IntersectAABB(NewAABB(center, half))
		if !hit {
			continue
		}
		if best == Miss || t < bestT {
			best, bestT = i, t
		}
	}
	return best
}
