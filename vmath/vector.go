package vmath

import "github.com/go-gl/mathgl/mgl64"

// Epsilon is the tolerance used by the approximate comparisons in this package
const Epsilon = 1e-9

// Hadamard3 returns the component-wise product of a and b
func Hadamard3(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Negate2 returns -v
func Negate2(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-v[0], -v[1]}
}

// IsZero2 reports whether both components are exactly zero
func IsZero2(v mgl64.Vec2) bool {
	return v[0] == 0 && v[1] == 0
}

// IsZero3 reports whether all components are exactly zero
func IsZero3(v mgl64.Vec3) bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// ClampMagnitude2 limits v to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func ClampMagnitude2(v mgl64.Vec2, maxMag float64) mgl64.Vec2 {
	mag := v.Len()
	if mag <= maxMag || mag == 0 {
		return v
	}
	return v.Mul(maxMag / mag)
}

// Horizontal drops the Z component
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], 0}
}

// Clamp bounds x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
