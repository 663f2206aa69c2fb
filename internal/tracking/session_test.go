package tracking

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/arruler/internal/measurement"
	"github.com/philipparndt/arruler/pkg/geometry"
	"github.com/philipparndt/arruler/pkg/stl"
	"github.com/philipparndt/arruler/pkg/viewer"
)

// floor is a 1m square at y=0 split into two triangles
func floor() *stl.Model {
	m := stl.NewModel("floor")
	up := geometry.NewVector3(0, 1, 0)
	m.AddTriangle(geometry.NewTriangle(up,
		geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0), geometry.NewVector3(1, 0, 1)))
	m.AddTriangle(geometry.NewTriangle(up,
		geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 1), geometry.NewVector3(0, 0, 1)))
	return m
}

func running(t *testing.T, hitTest HitTestType, factor float64) *Session {
	t.Helper()
	s := NewSession(floor(), zerolog.Nop())
	s.Run(Configuration{HitTest: hitTest, SelectionFactor: factor})
	require.Equal(t, Running, s.State())
	return s
}

func down(x, z float64) geometry.Ray {
	return geometry.NewRay(geometry.NewVector3(x, 1, z), geometry.NewVector3(0, -1, 0))
}

func TestSession_NotRunningMisses(t *testing.T) {
	s := NewSession(floor(), zerolog.Nop())

	_, ok := s.HitTestRay(down(0, 0))
	assert.False(t, ok)
	assert.Equal(t, NotRunning, s.State())
}

func TestSession_FeaturePointHit(t *testing.T) {
	s := running(t, FeaturePoint, 0.1)

	point, ok := s.HitTestRay(down(0.01, 0.99))
	require.True(t, ok)
	assert.Equal(t, geometry.NewVector3(0, 0, 1), point)
}

func TestSession_FeaturePointMissBetweenFeatures(t *testing.T) {
	s := running(t, FeaturePoint, 0.1)

	_, ok := s.HitTestRay(down(0.5, 0.5))
	assert.False(t, ok)
}

func TestSession_FeaturePointBehindCamera(t *testing.T) {
	s := running(t, FeaturePoint, 0.1)

	_, ok := s.HitTestRay(geometry.NewRay(geometry.NewVector3(0, 1, 0), geometry.NewVector3(0, 1, 0)))
	assert.False(t, ok)
}

func TestSession_SurfaceHit(t *testing.T) {
	s := running(t, ExistingSurface, 0.1)

	point, ok := s.HitTestRay(down(0.5, 0.25))
	require.True(t, ok)
	assert.InDelta(t, 0.5, point.X, 1e-9)
	assert.InDelta(t, 0.0, point.Y, 1e-9)
	assert.InDelta(t, 0.25, point.Z, 1e-9)

	_, ok = s.HitTestRay(down(2, 2))
	assert.False(t, ok)
}

func TestSession_PauseAndResume(t *testing.T) {
	s := running(t, ExistingSurface, 0)
	assert.Equal(t, DefaultConfiguration().SelectionFactor, s.Configuration().SelectionFactor)

	s.Pause()
	assert.Equal(t, Paused, s.State())
	_, ok := s.HitTestRay(down(0.5, 0.5))
	assert.False(t, ok)

	s.Run(s.Configuration())
	_, ok = s.HitTestRay(down(0.5, 0.5))
	assert.True(t, ok)
}

func TestSession_ScreenHitTest(t *testing.T) {
	s := running(t, FeaturePoint, 0.1)
	cam := s.Camera()
	cam.Position = geometry.NewVector3(0, 1, 1)
	cam.Target = geometry.Vector3{}

	point, ok := s.HitTest(320, 240, 640, 480)
	require.True(t, ok)
	assert.Equal(t, geometry.Vector3{}, point)

	_, ok = s.HitTest(0, 0, 0, 0)
	assert.False(t, ok)
}

func TestSession_DrivesMeasurement(t *testing.T) {
	s := running(t, FeaturePoint, 0.1)
	scene := viewer.NewScene()
	m := measurement.NewSession(scene)

	hit := func(x, z float64) measurement.HitTester {
		return measurement.HitTesterFunc(func(float64, float64) (measurement.Point3, bool) {
			return s.HitTestRay(down(x, z))
		})
	}

	m.Tap(0, 0, hit(0, 0))
	effects := m.Tap(0, 0, hit(1, 0))

	require.Len(t, effects, 2)
	assert.Equal(t, "1.0", effects[1].Text)
	assert.Equal(t, 3, scene.Len())
}

func TestSession_ReplaceWorld(t *testing.T) {
	s := running(t, FeaturePoint, 0.1)
	pose := *s.Camera()

	m := stl.NewModel("step")
	m.AddTriangle(geometry.NewTriangle(geometry.Vector3{},
		geometry.NewVector3(0, 0.5, 0), geometry.NewVector3(1, 0.5, 0), geometry.NewVector3(0, 0.5, 1)))
	s.ReplaceWorld(m)

	assert.Len(t, s.FeaturePoints(), 3)
	assert.Equal(t, pose, *s.Camera())
	point, ok := s.HitTestRay(down(0, 0))
	require.True(t, ok)
	assert.Equal(t, geometry.NewVector3(0, 0.5, 0), point)
}

func TestSession_Frame(t *testing.T) {
	s := NewSession(floor(), zerolog.Nop())
	s.Debug.ShowFeaturePoints = true
	scene := viewer.NewScene()

	frame := s.Frame(scene)
	assert.Same(t, scene, frame.Scene)
	assert.True(t, frame.ShowFeaturePoints)
	assert.Len(t, frame.FeaturePoints, 4)
}

func TestParseHitTestType(t *testing.T) {
	ht, err := ParseHitTestType("featurePoint")
	require.NoError(t, err)
	assert.Equal(t, FeaturePoint, ht)

	ht, err = ParseHitTestType("Surface")
	require.NoError(t, err)
	assert.Equal(t, ExistingSurface, ht)

	_, err = ParseHitTestType("plane")
	assert.Error(t, err)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "paused", Paused.String())
	assert.Equal(t, "not running", NotRunning.String())
}
