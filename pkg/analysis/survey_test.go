package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/arruler/pkg/geometry"
	"github.com/philipparndt/arruler/pkg/stl"
)

func unitSquare() *stl.Model {
	model := stl.NewModel("square")
	a := geometry.NewVector3(0, 0, 0)
	b := geometry.NewVector3(1, 0, 0)
	c := geometry.NewVector3(1, 0, 1)
	d := geometry.NewVector3(0, 0, 1)
	up := geometry.NewVector3(0, 1, 0)
	model.AddTriangle(geometry.NewTriangle(up, a, b, c))
	model.AddTriangle(geometry.NewTriangle(up, a, c, d))
	return model
}

func TestSurveyWorld(t *testing.T) {
	survey := SurveyWorld(unitSquare())

	assert.Equal(t, 2, survey.TriangleCount)
	assert.Equal(t, 4, survey.FeaturePointCount)
	assert.Equal(t, 6, survey.EdgeCount)
	assert.InDelta(t, 1.0, survey.SurfaceArea, 1e-9)
	assert.InDelta(t, 1.0, survey.MinEdgeLength, 1e-9)
	assert.InDelta(t, math.Sqrt2, survey.MaxEdgeLength, 1e-9)
	assert.InDelta(t, (4+2*math.Sqrt2)/6, survey.AvgEdgeLength, 1e-9)
	assert.Equal(t, geometry.NewVector3(1, 0, 1), survey.Dimensions)
}

func TestSurveyWorld_Empty(t *testing.T) {
	survey := SurveyWorld(stl.NewModel("empty"))

	assert.Zero(t, survey.EdgeCount)
	assert.Zero(t, survey.MinEdgeLength)
	assert.Zero(t, survey.AvgEdgeLength)
}

func TestNearestFeaturePoint(t *testing.T) {
	points := unitSquare().FeaturePoints()

	nearest, distance, ok := NearestFeaturePoint(points, geometry.NewVector3(0.9, 0.1, 0.8))
	require.True(t, ok)
	assert.Equal(t, geometry.NewVector3(1, 0, 1), nearest)
	assert.InDelta(t, math.Sqrt(0.01+0.01+0.04), distance, 1e-9)

	_, _, ok = NearestFeaturePoint(nil, geometry.Vector3{})
	assert.False(t, ok)
}
