package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Gravity is zero: the arena is top-down.
const Gravity = 0.0

// TimeEpsilon absorbs the rounding left over after subtracting a fixed step
// many times, e.g. 0.1 - 6*(1/60). Countdowns at or below it are expired.
const TimeEpsilon = 1e-9

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func FiniteVec(v mgl64.Vec2) bool {
	return IsFinite(v[0]) && IsFinite(v[1])
}

// Normalize returns v scaled to unit length, or the zero vector when v has no
// usable direction.
func Normalize(v mgl64.Vec2) mgl64.Vec2 {
	l := v.Len()
	if l <= mgl64.Epsilon || !IsFinite(l) {
		return mgl64.Vec2{}
	}
	n := v.Mul(1 / l)
	if !FiniteVec(n) {
		return mgl64.Vec2{}
	}
	return n
}

// Rotate turns v counter-clockwise by angle radians.
func Rotate(v mgl64.Vec2, angle float64) mgl64.Vec2 {
	return mgl64.Rotate2D(angle).Mul2x1(v)
}
