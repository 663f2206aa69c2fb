package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Create a right triangle with sides 3, 4, 5
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	expected := 6.0 // (3 * 4) / 2 = 6

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleEdgeLengths(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	lengths := tri.EdgeLengths()

	// Expected lengths: 3, 5, 4 (Pythagorean triple)
	if math.Abs(lengths[0]-3.0) > 1e-10 {
		t.Errorf("Edge 0 length failed: expected 3.0, got %v", lengths[0])
	}
	if math.Abs(lengths[1]-5.0) > 1e-10 {
		t.Errorf("Edge 1 length failed: expected 5.0, got %v", lengths[1])
	}
	if math.Abs(lengths[2]-4.0) > 1e-10 {
		t.Errorf("Edge 2 length failed: expected 4.0, got %v", lengths[2])
	}
}

func TestTrianglePerimeter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	perimeter := tri.Perimeter()
	expected := 12.0 // 3 + 4 + 5 = 12

	if math.Abs(perimeter-expected) > 1e-10 {
		t.Errorf("Perimeter failed: expected %v, got %v", expected, perimeter)
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)

	center := tri.Center()
	expected := NewVector3(1, 1, 0)

	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestTriangleIntersectHit(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 1, 0),
		NewVector3(-1, 0, -1),
		NewVector3(1, 0, -1),
		NewVector3(0, 0, 1),
	)

	ray := NewRay(NewVector3(0, 2, 0), NewVector3(0, -1, 0))
	dist, ok := tri.Intersect(ray)
	if !ok {
		t.Fatal("Intersect failed: expected a hit")
	}
	if math.Abs(dist-2.0) > 1e-10 {
		t.Errorf("Intersect failed: expected distance 2.0, got %v", dist)
	}
}

func TestTriangleIntersectMiss(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 1, 0),
		NewVector3(-1, 0, -1),
		NewVector3(1, 0, -1),
		NewVector3(0, 0, 1),
	)

	// Outside the triangle
	if _, ok := tri.Intersect(NewRay(NewVector3(5, 2, 0), NewVector3(0, -1, 0))); ok {
		t.Error("Intersect failed: expected miss outside the triangle")
	}
	// Pointing away
	if _, ok := tri.Intersect(NewRay(NewVector3(0, 2, 0), NewVector3(0, 1, 0))); ok {
		t.Error("Intersect failed: expected miss behind the origin")
	}
	// Parallel to the plane
	if _, ok := tri.Intersect(NewRay(NewVector3(0, 0, 0), NewVector3(1, 0, 0))); ok {
		t.Error("Intersect failed: expected miss for parallel ray")
	}
}
