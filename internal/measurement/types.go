package measurement

import (
	"image/color"

	"github.com/philipparndt/arruler/pkg/geometry"
)

// Point3 is a world-space position reported by hit-testing
type Point3 = geometry.Vector3

// Handle identifies an artifact placed by a SceneRenderer. Zero is never issued.
type Handle uint64

// MarkerStyle describes how a measured point is drawn
type MarkerStyle struct {
	Radius float64 // Sphere radius in world units
	Color  color.RGBA
}

// LabelStyle describes how the distance text is drawn
type LabelStyle struct {
	Scale          float64 // Uniform node scale applied to the text geometry
	ExtrusionDepth float64 // Depth of the text geometry before scaling
	Color          color.RGBA
}

var (
	// Red is the solid color used for markers and labels
	Red = color.RGBA{R: 255, A: 255}

	// DefaultMarkerStyle is a half-centimeter red sphere
	DefaultMarkerStyle = MarkerStyle{Radius: 0.005, Color: Red}

	// DefaultLabelStyle shrinks the text geometry to 1% of its size
	DefaultLabelStyle = LabelStyle{Scale: 0.01, ExtrusionDepth: 1.0, Color: Red}
)

// LabelOffset lifts the label about 1cm above the second point
const LabelOffset = 0.01

// HitTester resolves a screen coordinate to a point on a detected surface feature
type HitTester interface {
	HitTest(x, y float64) (Point3, bool)
}

// HitTesterFunc adapts a function to HitTester
type HitTesterFunc func(x, y float64) (Point3, bool)

// HitTest calls f(x, y)
func (f HitTesterFunc) HitTest(x, y float64) (Point3, bool) {
	return f(x, y)
}

// SceneRenderer places and removes artifacts in the rendered scene
type SceneRenderer interface {
	PlaceMarker(position Point3, style MarkerStyle) Handle
	PlaceLabel(text string, position Point3, style LabelStyle) Handle
	Remove(handle Handle)
}

// EffectKind enumerates the commands a session sends to its renderer
type EffectKind int

const (
	PlaceMarker EffectKind = iota
	PlaceLabel
	ClearAll
)

func (k EffectKind) String() string {
	switch k {
	case PlaceMarker:
		return "place marker"
	case PlaceLabel:
		return "place label"
	case ClearAll:
		return "clear all"
	default:
		return "unknown"
	}
}

// Effect records one renderer command issued by a tap
type Effect struct {
	Kind     EffectKind
	Position Point3   // Marker or label anchor, unset for ClearAll
	Text     string   // Label text, PlaceLabel only
	Handles  []Handle // Artifact created, or artifacts removed for ClearAll
}

// State is the number of points currently placed
type State int

const (
	Empty State = iota
	OnePoint
	TwoPoints
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case OnePoint:
		return "one point"
	case TwoPoints:
		return "two points"
	default:
		return "unknown"
	}
}
