package tracking

import (
	"fmt"
	"strings"
)

// HitTestType selects what a hit-test is resolved against
type HitTestType int

const (
	// FeaturePoint snaps to the nearest detected feature point along the ray
	FeaturePoint HitTestType = iota
	// ExistingSurface intersects the ray with the reconstructed surface
	ExistingSurface
)

func (t HitTestType) String() string {
	switch t {
	case FeaturePoint:
		return "featurePoint"
	case ExistingSurface:
		return "surface"
	default:
		return "unknown"
	}
}

// ParseHitTestType parses the configuration spelling of a hit-test type
func ParseHitTestType(s string) (HitTestType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "featurepoint", "feature-point", "feature":
		return FeaturePoint, nil
	case "surface", "existingsurface":
		return ExistingSurface, nil
	default:
		return FeaturePoint, fmt.Errorf("unknown hit-test type %q", s)
	}
}

// Configuration controls a world-tracking run
type Configuration struct {
	HitTest HitTestType
	// SelectionFactor scales the average feature spacing into the snapping radius
	SelectionFactor float64
}

// DefaultConfiguration returns the configuration used when none is given
func DefaultConfiguration() Configuration {
	return Configuration{
		HitTest:         FeaturePoint,
		SelectionFactor: 3.0,
	}
}

// DebugOptions toggle diagnostic overlays
type DebugOptions struct {
	ShowFeaturePoints bool
}
