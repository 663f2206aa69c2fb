package geometry

import (
	"math"
	"testing"
)

func TestRayAt(t *testing.T) {
	ray := NewRay(NewVector3(1, 1, 1), NewVector3(0, 0, -2))

	got := ray.At(3)
	expected := NewVector3(1, 1, -2)
	if got != expected {
		t.Errorf("At failed: expected %v, got %v", expected, got)
	}
}

func TestRayDistanceToPoint(t *testing.T) {
	ray := NewRay(NewVector3(0, 0, 0), NewVector3(0, 0, -1))

	dist := ray.DistanceToPoint(NewVector3(3, 4, -10))
	if math.Abs(dist-5.0) > 1e-10 {
		t.Errorf("DistanceToPoint failed: expected 5.0, got %v", dist)
	}
}

func TestRayDistanceToPointBehindOrigin(t *testing.T) {
	ray := NewRay(NewVector3(0, 0, 0), NewVector3(0, 0, -1))

	// Closest point is clamped to the origin
	dist := ray.DistanceToPoint(NewVector3(0, 0, 2))
	if math.Abs(dist-2.0) > 1e-10 {
		t.Errorf("DistanceToPoint failed: expected 2.0, got %v", dist)
	}
}
