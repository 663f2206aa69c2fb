package analysis

import (
	"math"

	"github.com/philipparndt/arruler/pkg/geometry"
	"github.com/philipparndt/arruler/pkg/stl"
)

// Survey summarizes how well a world can be tracked and measured
type Survey struct {
	BoundingBox       geometry.BoundingBox
	Dimensions        geometry.Vector3
	SurfaceArea       float64
	TriangleCount     int
	FeaturePointCount int
	EdgeCount         int
	MinEdgeLength     float64
	MaxEdgeLength     float64
	AvgEdgeLength     float64
}

// SurveyWorld walks every triangle edge of the world
func SurveyWorld(model *stl.Model) Survey {
	result := Survey{
		BoundingBox:       model.BoundingBox(),
		TriangleCount:     model.TriangleCount(),
		FeaturePointCount: len(model.FeaturePoints()),
	}
	result.Dimensions = result.BoundingBox.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, triangle := range model.Triangles {
		result.SurfaceArea += triangle.Area()

		for _, length := range triangle.EdgeLengths() {
			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
			result.EdgeCount++
		}
	}

	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// NearestFeaturePoint returns the feature point closest to point.
// ok is false when points is empty.
func NearestFeaturePoint(points []geometry.Vector3, point geometry.Vector3) (nearest geometry.Vector3, distance float64, ok bool) {
	distance = math.MaxFloat64
	for _, p := range points {
		if d := point.Distance(p); d < distance {
			nearest, distance, ok = p, d, true
		}
	}
	return nearest, distance, ok
}
