package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   mgl64.Vec2
		want mgl64.Vec2
	}{
		{"axis", mgl64.Vec2{5, 0}, mgl64.Vec2{1, 0}},
		{"diagonal", mgl64.Vec2{3, 4}, mgl64.Vec2{0.6, 0.8}},
		{"zero", mgl64.Vec2{}, mgl64.Vec2{}},
		{"nan", mgl64.Vec2{math.NaN(), 1}, mgl64.Vec2{}},
		{"inf", mgl64.Vec2{math.Inf(1), 0}, mgl64.Vec2{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in)
			if !got.ApproxEqual(tc.want) {
				t.Fatalf("Normalize(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{-1, 0, 1, 0},
		{0.25, 0, 1, 0.25},
		{3, 0, 1, 1},
	}
	for _, tc := range tests {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestRotate(t *testing.T) {
	got := Rotate(mgl64.Vec2{0, 22}, -math.Pi/2)
	if !got.ApproxEqualThreshold(mgl64.Vec2{22, 0}, 1e-9) {
		t.Fatalf("Rotate = %v, want (22, 0)", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.5); got != 15 {
		t.Fatalf("Lerp = %v, want 15", got)
	}
}
