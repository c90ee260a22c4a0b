// Package picking turns a mouse position into the water column under it.
package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/ripple/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // normalized
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min [3]float32
	Max [3]float32
}

// NewAABB creates a box centered on c extending half in every direction.
func NewAABB(c math.Vec3, half float32) AABB {
	return AABB{
		Min: c.Sub(math.Vec3{X: half, Y: half, Z: half}).Array(),
		Max: c.Add(math.Vec3{X: half, Y: half, Z: half}).Array(),
	}
}

// Lens describes the perspective camera a ray is cast from.
type Lens struct {
	Eye    math.Vec3
	Center math.Vec3
	Up     math.Vec3
	FovY   float32 // radians
	Aspect float32 // width / height
}

// ScreenToRay converts pixel coordinates (origin top-left) to a world-space
// ray leaving the eye.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, lens Lens) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH

	forward := lens.Center.Sub(lens.Eye).Normalize()
	right := forward.Cross(lens.Up).Normalize()
	up := right.Cross(forward)

	tanHalf := math32.Tan(lens.FovY / 2)
	dir := forward.
		Add(right.Scale(ndcX * tanHalf * lens.Aspect)).
		Add(up.Scale(ndcY * tanHalf))

	return Ray{Origin: lens.Eye, Direction: dir.Normalize()}
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	origin := r.Origin.Array()
	dir := r.Direction.Array()

	var tmin, tmax float32 = -math32.MaxFloat32, math32.MaxFloat32

	for axis := range 3 {
		if dir[axis] == 0 {
			if origin[axis] < box.Min[axis] || origin[axis] > box.Max[axis] {
				return 0, false
			}
			continue
		}
		t1 := (box.Min[axis] - origin[axis]) / dir[axis]
		t2 := (box.Max[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
