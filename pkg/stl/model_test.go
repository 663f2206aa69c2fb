package stl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/arruler/pkg/geometry"
)

func TestModel_FeaturePointsAreUnique(t *testing.T) {
	model, err := ParseReader(strings.NewReader(tableTop))
	require.NoError(t, err)

	points := model.FeaturePoints()
	assert.Equal(t, []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(1, 0, 1),
		geometry.NewVector3(0, 0, 1),
	}, points)
}

func TestModel_AverageEdgeLength(t *testing.T) {
	model := NewModel("square")
	model.AddTriangle(geometry.NewTriangle(
		geometry.Vector3{},
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(3, 0, 0),
		geometry.NewVector3(0, 4, 0),
	))

	assert.InDelta(t, 4.0, model.AverageEdgeLength(), 1e-10)
	assert.Zero(t, NewModel("empty").AverageEdgeLength())
}

func TestModel_BoundingBox(t *testing.T) {
	model, err := ParseReader(strings.NewReader(tableTop))
	require.NoError(t, err)

	bbox := model.BoundingBox()
	assert.Equal(t, geometry.NewVector3(0, 0, 0), bbox.Min)
	assert.Equal(t, geometry.NewVector3(1, 0, 1), bbox.Max)
}
