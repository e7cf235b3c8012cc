// Package geom provides the 3-D vector primitives used by the lens
// marching core. All quantities are in millimeters.
package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrZeroVector is returned when a zero-length vector is normalized.
var ErrZeroVector = errors.New("zero-length vector")

// unitEpsilon is the squared-length floor below which a vector is
// considered zero for normalization purposes.
const unitEpsilon = 1e-18

// Vec3 is a 3-D point or displacement. The coordinate convention follows
// the observer frame: x out of the right ear, y out of the face, z up.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Principal axes of the observer frame.
var (
	AxisX = Vec3{X: 1} // horizontal marching axis
	AxisY = Vec3{Y: 1} // observer-to-face axis
	AxisZ = Vec3{Z: 1} // vertical marching axis
)

// Add returns the sum of two vectors.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Scale returns the vector scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns the negated vector.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product v × other.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// LengthSquared returns the squared magnitude.
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Unit returns the vector normalized to unit length. A zero (or
// effectively zero) vector has no direction and yields ErrZeroVector.
func (v Vec3) Unit() (Vec3, error) {
	ls := v.LengthSquared()
	if ls < unitEpsilon {
		return Vec3{}, ErrZeroVector
	}
	return v.Scale(1 / math.Sqrt(ls)), nil
}

// IsFinite reports whether all components are finite numbers.
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// String formats the vector for error messages and logs.
func (v Vec3) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
