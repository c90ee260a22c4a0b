// Package camera provides the orbit camera used to view the water surface.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/ripple/pkg/math"
)

// Orbit limits. Polar wraps, radius and azimuth clamp.
const (
	MinRadius  = 1.0
	MaxRadius  = 18.0
	MinAzimuth = 5.0
	MaxAzimuth = 89.0
	FullCircle = 360.0
)

// Input sensitivities.
const (
	DragPolarFactor   = -0.25 // degrees per pixel
	DragAzimuthFactor = 0.25  // degrees per pixel
	ScrollStep        = 0.6   // radius units per wheel notch
	KeyStep           = 2.0   // degrees per key press
)

// OrbitCamera looks at Center from a point on a sphere around it.
type OrbitCamera struct {
	Center math.Vec3

	Radius  float32 // distance from center
	Polar   float32 // degrees around the Y axis, wraps within [0, 360]
	Azimuth float32 // degrees down from the Y axis
}

// NewOrbitCamera creates an orbit camera looking at the origin from above
// and to the side.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Radius:  10,
		Polar:   45,
		Azimuth: 50,
	}
}

// Eye returns the camera position in world space.
func (c *OrbitCamera) Eye() math.Vec3 {
	polar := math32.Pi / 180 * c.Polar
	azimuth := math32.Pi / 180 * c.Azimuth

	sa, ca := math32.Sincos(azimuth)
	sp, cp := math32.Sincos(polar)

	return c.Center.Add(math.Vec3{
		X: c.Radius * sa * cp,
		Y: c.Radius * ca,
		Z: c.Radius * sa * sp,
	})
}

// Up returns the world up vector used for the view matrix.
func (c *OrbitCamera) Up() math.Vec3 {
	return math.Vec3{X: 0, Y: 1, Z: 0}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye(), c.Center, c.Up())
}

// Orbit changes the orientation by the given deltas and re-applies the
// limits.
func (c *OrbitCamera) Orbit(deltaRadius, deltaPolar, deltaAzimuth float32) {
	c.Radius += deltaRadius
	c.Polar += deltaPolar
	c.Azimuth += deltaAzimuth
	c.clamp()
}

// HandleDrag rotates the camera by a mouse drag of dx, dy pixels.
func (c *OrbitCamera) HandleDrag(dx, dy float32) {
	c.Orbit(0, dx*DragPolarFactor, dy*DragAzimuthFactor)
}

// HandleZoom moves the camera by wheel notches. Positive values zoom in.
func (c *OrbitCamera) HandleZoom(notches float32) {
	c.Orbit(-notches*ScrollStep, 0, 0)
}

func (c *OrbitCamera) clamp() {
	c.Radius = min(max(c.Radius, MinRadius), MaxRadius)
	c.Azimuth = min(max(c.Azimuth, MinAzimuth), MaxAzimuth)

	c.Polar = math32.Mod(c.Polar, FullCircle)
	if c.Polar < 0 {
		c.Polar += FullCircle
	}
}
