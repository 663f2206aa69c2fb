package measurement

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEuclideanDistance(t *testing.T) {
	assert.InDelta(t, 5.0, EuclideanDistance(Point3{}, Point3{X: 3, Y: 4}), 1e-12)
	assert.InDelta(t, math.Sqrt(3), EuclideanDistance(Point3{X: 1, Y: 1, Z: 1}, Point3{}), 1e-12)
}

func TestEuclideanDistanceProperties(t *testing.T) {
	points := []Point3{
		{},
		{X: 0.1, Y: -0.2, Z: 0.3},
		{X: -12.5, Y: 7, Z: 0.001},
		{X: 1e-3, Y: 1e-3, Z: -1e-3},
	}

	for _, a := range points {
		assert.Zero(t, EuclideanDistance(a, a))
		for _, b := range points {
			assert.Equal(t, EuclideanDistance(a, b), EuclideanDistance(b, a))
		}
	}
}

func TestSingleDistance(t *testing.T) {
	assert.Equal(t, float32(5), singleDistance(Point3{}, Point3{X: 3, Y: 4}))

	a := Point3{X: 0.1, Y: 0.2, Z: 0.3}
	b := Point3{X: -0.4, Y: 0.5, Z: 0.9}
	assert.Equal(t, singleDistance(a, b), singleDistance(b, a))
	assert.InDelta(t, EuclideanDistance(a, b), float64(singleDistance(a, b)), 1e-6)
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{5, "5.0"},
		{0, "0.0"},
		{0.25, "0.25"},
		{0.1, "0.1"},
		{0.123456789, "0.12345679"},
		{1234567, "1234567.0"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{16777216, "1.6777216e+07"},
		{math.Inf(1), "inf"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDistance(tt.in), "FormatDistance(%v)", tt.in)
	}
}
