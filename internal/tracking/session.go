package tracking

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/philipparndt/arruler/internal/measurement"
	"github.com/philipparndt/arruler/pkg/geometry"
	"github.com/philipparndt/arruler/pkg/stl"
	"github.com/philipparndt/arruler/pkg/viewer"
)

// worldSnapRatio is the snapping radius as a fraction of the world size
const worldSnapRatio = 0.02

// State is the lifecycle state of a tracking session
type State int

const (
	NotRunning State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case NotRunning:
		return "not running"
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Session tracks a reconstructed world from a moving camera and answers
// hit-tests against it. Hit-tests only succeed while the session runs.
// A Session is not safe for concurrent use.
type Session struct {
	Debug DebugOptions

	world         *stl.Model
	featurePoints []geometry.Vector3
	snapRadius    float64
	camera        *viewer.Camera
	config        Configuration
	state         State
	logger        zerolog.Logger
}

// NewSession creates a stopped session over world
func NewSession(world *stl.Model, logger zerolog.Logger) *Session {
	s := &Session{
		config: DefaultConfiguration(),
		logger: logger,
	}
	s.setWorld(world)
	s.camera = viewer.NewCamera(world.BoundingBox())
	return s
}

// Run starts or resumes tracking with cfg
func (s *Session) Run(cfg Configuration) {
	if cfg.SelectionFactor <= 0 {
		cfg.SelectionFactor = DefaultConfiguration().SelectionFactor
	}
	s.config = cfg
	s.state = Running
	s.updateSnapRadius()

	s.logger.Info().
		Str("hitTest", cfg.HitTest.String()).
		Int("featurePoints", len(s.featurePoints)).
		Float64("snapRadius", s.snapRadius).
		Msg("Tracking session running")
}

// Pause stops tracking. Hit-tests miss until Run is called again.
func (s *Session) Pause() {
	if s.state != Running {
		return
	}
	s.state = Paused
	s.logger.Info().Msg("Tracking session paused")
}

// State returns the lifecycle state
func (s *Session) State() State {
	return s.state
}

// Configuration returns the active configuration
func (s *Session) Configuration() Configuration {
	return s.config
}

// Camera returns the tracked camera
func (s *Session) Camera() *viewer.Camera {
	return s.camera
}

// World returns the reconstructed world
func (s *Session) World() *stl.Model {
	return s.world
}

// FeaturePoints returns the detected feature points
func (s *Session) FeaturePoints() []geometry.Vector3 {
	return s.featurePoints
}

// ReplaceWorld swaps in a new reconstruction, keeping the camera pose
func (s *Session) ReplaceWorld(world *stl.Model) {
	s.setWorld(world)
	s.logger.Info().
		Str("name", world.Name).
		Int("triangles", world.TriangleCount()).
		Int("featurePoints", len(s.featurePoints)).
		Msg("World replaced")
}

// Frame returns a frame description for the current world and scene
func (s *Session) Frame(scene *viewer.Scene) viewer.Frame {
	return viewer.Frame{
		Camera:            s.camera,
		World:             s.world,
		FeaturePoints:     s.featurePoints,
		Scene:             scene,
		ShowFeaturePoints: s.Debug.ShowFeaturePoints,
	}
}

// HitTester binds the session to a viewport of the given size
func (s *Session) HitTester(width, height float64) measurement.HitTester {
	return measurement.HitTesterFunc(func(x, y float64) (measurement.Point3, bool) {
		return s.HitTest(x, y, width, height)
	})
}

// HitTest resolves a screen point in a width×height viewport to a world point
func (s *Session) HitTest(x, y, width, height float64) (geometry.Vector3, bool) {
	if width <= 0 || height <= 0 {
		return geometry.Vector3{}, false
	}
	return s.HitTestRay(s.camera.Unproject(x, y, width, height))
}

// HitTestRay resolves a world-space ray to a world point
func (s *Session) HitTestRay(ray geometry.Ray) (geometry.Vector3, bool) {
	if s.state != Running {
		return geometry.Vector3{}, false
	}

	var (
		point geometry.Vector3
		ok    bool
	)
	switch s.config.HitTest {
	case ExistingSurface:
		point, ok = s.hitSurface(ray)
	default:
		point, ok = s.hitFeaturePoint(ray)
	}

	if ok {
		s.logger.Debug().Stringer("point", point).Msg("Hit-test hit")
	} else {
		s.logger.Debug().Stringer("origin", ray.Origin).Stringer("direction", ray.Direction).Msg("Hit-test miss")
	}
	return point, ok
}

func (s *Session) hitFeaturePoint(ray geometry.Ray) (geometry.Vector3, bool) {
	var nearest geometry.Vector3
	minDist := math.MaxFloat64
	found := false

	for _, p := range s.featurePoints {
		if p.Sub(ray.Origin).Dot(ray.Direction) <= 0 {
			continue
		}
		dist := ray.DistanceToPoint(p)
		if dist < minDist && dist < s.snapRadius {
			minDist = dist
			nearest = p
			found = true
		}
	}
	return nearest, found
}

func (s *Session) hitSurface(ray geometry.Ray) (geometry.Vector3, bool) {
	closest := math.MaxFloat64
	found := false

	for _, tri := range s.world.Triangles {
		if t, ok := tri.Intersect(ray); ok && t < closest {
			closest = t
			found = true
		}
	}
	if !found {
		return geometry.Vector3{}, false
	}
	return ray.At(closest), true
}

func (s *Session) setWorld(world *stl.Model) {
	s.world = world
	s.featurePoints = world.FeaturePoints()
	s.updateSnapRadius()
}

func (s *Session) updateSnapRadius() {
	worldSize := s.world.BoundingBox().MaxDimension()
	spacing := s.world.AverageEdgeLength()
	s.snapRadius = math.Max(worldSize*worldSnapRatio, spacing*s.config.SelectionFactor)
}
