package stl

import (
	"github.com/philipparndt/arruler/pkg/geometry"
)

// spacingSampleSize caps the number of triangles sampled for the vertex spacing estimate
const spacingSampleSize = 1000

// Model is a triangle mesh loaded from an STL file. It stands in for the
// surfaces a tracking session has reconstructed.
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new empty model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// FeaturePoints returns the unique vertices of the mesh in first-seen order
func (m *Model) FeaturePoints() []geometry.Vector3 {
	seen := make(map[geometry.Vector3]struct{}, len(m.Triangles)*3)
	points := make([]geometry.Vector3, 0, len(m.Triangles))
	for _, triangle := range m.Triangles {
		for _, vertex := range [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			if _, ok := seen[vertex]; ok {
				continue
			}
			seen[vertex] = struct{}{}
			points = append(points, vertex)
		}
	}
	return points
}

// AverageEdgeLength estimates the spacing between vertices from a sample of edges.
// Returns 0 for an empty model.
func (m *Model) AverageEdgeLength() float64 {
	sampleSize := min(len(m.Triangles), spacingSampleSize)
	if sampleSize == 0 {
		return 0
	}

	total := 0.0
	for _, triangle := range m.Triangles[:sampleSize] {
		total += triangle.Perimeter()
	}
	return total / float64(sampleSize*3)
}
