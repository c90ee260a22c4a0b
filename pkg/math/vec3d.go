package math

import "math"

// Vec3d is a double precision 3D vector. The water simulation keeps its
// authoritative state in float64 and only narrows to Vec3 for upload.
type Vec3d struct {
	X, Y, Z float64
}

// Sub returns v - other.
func (v Vec3d) Sub(other Vec3d) Vec3d {
	return Vec3d{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Cross returns the cross product.
func (v Vec3d) Cross(other Vec3d) Vec3d {
	return Vec3d{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3d) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Scale returns v * s.
func (v Vec3d) Scale(s float64) Vec3d {
	return Vec3d{v.X * s, v.Y * s, v.Z * s}
}

// Float32 narrows v for GPU upload.
func (v Vec3d) Float32() Vec3 {
	return Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}
