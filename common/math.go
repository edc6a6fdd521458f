package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// WorldUp is the fixed world-vertical axis shared by every camera.
var WorldUp = mgl64.Vec3{0, 1, 0}

// YawPitchToVector converts a (yaw, pitch) pair in radians to a direction vector.
// Yaw rotates about the Y axis with 0 facing +Z and increasing toward +X.
// Pitch is the elevation above the horizontal XZ plane.
// The result is unit length analytically but callers should normalize it before storing,
// since repeated conversions accumulate floating point drift.
//
// Parameters:
//   - yaw: rotation about the vertical axis in radians
//   - pitch: elevation from the horizontal plane in radians
//
// Returns:
//   - mgl64.Vec3: the un-normalized direction
func YawPitchToVector(yaw, pitch float64) mgl64.Vec3 {
	cosPitch := math.Cos(pitch)
	return mgl64.Vec3{
		cosPitch * math.Sin(yaw),
		math.Sin(pitch),
		cosPitch * math.Cos(yaw),
	}
}

// SafeNormalize returns v scaled to unit length.
// A zero-length vector is returned unchanged instead of dividing by zero.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - mgl64.Vec3: unit vector, or the zero vector if v has no length
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// Horizontal projects v onto the XZ plane by zeroing its vertical component.
// The result is not normalized.
//
// Parameters:
//   - v: the vector to project
//
// Returns:
//   - mgl64.Vec3: v with Y set to zero
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], 0, v[2]}
}

// Clamp limits x to the closed interval [lo, hi].
// Values above hi become hi exactly and values below lo become lo exactly.
//
// Parameters:
//   - x: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float64: the clamped value
func Clamp(x, lo, hi float64) float64 {
	if x > hi {
		return hi
	}
	if x < lo {
		return lo
	}
	return x
}

// Vec3To32 narrows a double precision vector for GPU upload or float32 matrix math.
//
// Parameters:
//   - v: the vector to convert
//
// Returns:
//   - [3]float32: the narrowed components
func Vec3To32(v mgl64.Vec3) [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}
