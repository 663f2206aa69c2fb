package app

import (
	"fmt"

	"github.com/philipparndt/arruler/internal/measurement"
)

// statusText describes the measurement progress for the side panel
func statusText(m *measurement.Session) string {
	points := m.Points()
	switch m.State() {
	case measurement.Empty:
		return "Tap a surface to place the first point"
	case measurement.OnePoint:
		return fmt.Sprintf("Point 1: %s\nTap to place the second point", points[0].Position)
	default:
		return fmt.Sprintf("Point 1: %s\nPoint 2: %s\nTap to clear", points[0].Position, points[1].Position)
	}
}
