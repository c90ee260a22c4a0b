// Package lighting holds the light sources used when shading the water.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/ripple/pkg/math"
)

// SunDirection converts longitude/latitude angles in degrees to a unit
// vector pointing towards the sun. Longitude rotates around Y starting at
// +Z, latitude is the elevation above the horizon.
func SunDirection(longitude, latitude float32) math.Vec3 {
	sinLon, cosLon := math32.Sincos(longitude * math32.Pi / 180)
	sinLat, cosLat := math32.Sincos(latitude * math32.Pi / 180)

	return math.Vec3{
		X: cosLat * sinLon,
		Y: sinLat,
		Z: cosLat * cosLon,
	}
}

// PointLight is a light at a fixed world position.
type PointLight struct {
	Position math.Vec3
	Color    [3]float32
}

// Rig is the set of lights the water shader consumes. A light switched off
// contributes nothing; Ambient always applies.
type Rig struct {
	Ambient  float32
	SunDir   math.Vec3
	SunColor [3]float32
	SunOn    bool
	Point    PointLight
	PointOn  bool
}

// DefaultRig returns a white sun at the given angles and a warm point light
// hovering over the middle of the surface.
func DefaultRig(longitude, latitude float32) Rig {
	return Rig{
		Ambient:  0.3,
		SunDir:   SunDirection(longitude, latitude),
		SunColor: [3]float32{1, 1, 1},
		SunOn:    true,
		Point: PointLight{
			Position: math.Vec3{X: 0, Y: 1, Z: 0},
			Color:    [3]float32{1, 1, 0.8},
		},
		PointOn: true,
	}
}

// ToggleSun switches the directional light.
func (r *Rig) ToggleSun() { r.SunOn = !r.SunOn }

// TogglePoint switches the point light.
func (r *Rig) TogglePoint() { r.PointOn = !r.PointOn }
