package app

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/arruler/internal/measurement"
	"github.com/philipparndt/arruler/internal/tracking"
	"github.com/philipparndt/arruler/pkg/geometry"
	"github.com/philipparndt/arruler/pkg/stl"
)

func floorView(t *testing.T) (*ARView, *tracking.Session) {
	t.Helper()
	test.NewTempApp(t)

	world := stl.NewModel("floor")
	world.AddTriangle(geometry.NewTriangle(geometry.Vector3{},
		geometry.NewVector3(-1, 0, -1), geometry.NewVector3(1, 0, -1), geometry.NewVector3(0, 0, 1)))

	ts := tracking.NewSession(world, zerolog.Nop())
	ts.Camera().Position = geometry.NewVector3(0, 1, 1)
	ts.Camera().Target = geometry.NewVector3(0, 0, -0.3)
	ts.Run(tracking.Configuration{HitTest: tracking.ExistingSurface})

	view := NewARView(ts, zerolog.Nop())
	view.Resize(fyne.NewSize(640, 480))
	return view, ts
}

func TestARView_TapsCycleMeasurement(t *testing.T) {
	view, _ := floorView(t)
	changes := 0
	view.SetOnChange(func() { changes++ })

	center := &fyne.PointEvent{Position: fyne.NewPos(320, 240)}
	view.Tapped(center)
	require.Equal(t, measurement.OnePoint, view.Measurement().State())

	view.Tapped(center)
	require.Equal(t, measurement.TwoPoints, view.Measurement().State())
	assert.Equal(t, "0.0", view.Measurement().LabelText())

	view.Tapped(&fyne.PointEvent{Position: fyne.NewPos(0, 0)})
	assert.Equal(t, measurement.Empty, view.Measurement().State())
	assert.Equal(t, 3, changes)
}

func TestARView_MissIsIgnored(t *testing.T) {
	view, ts := floorView(t)
	ts.Pause()

	view.Tapped(&fyne.PointEvent{Position: fyne.NewPos(320, 240)})
	assert.Equal(t, measurement.Empty, view.Measurement().State())
}

func TestARView_DragSuppressesTap(t *testing.T) {
	view, ts := floorView(t)
	before := ts.Camera().RotationY

	view.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(10, 0)})
	assert.NotEqual(t, before, ts.Camera().RotationY)

	view.Tapped(&fyne.PointEvent{Position: fyne.NewPos(320, 240)})
	assert.Equal(t, measurement.Empty, view.Measurement().State())

	view.DragEnd()
	view.Tapped(&fyne.PointEvent{Position: fyne.NewPos(320, 240)})
	assert.Equal(t, measurement.OnePoint, view.Measurement().State())
}

func TestARView_ResetClearsPartialMeasurement(t *testing.T) {
	view, _ := floorView(t)

	view.Tapped(&fyne.PointEvent{Position: fyne.NewPos(320, 240)})
	view.Reset()
	assert.Equal(t, measurement.Empty, view.Measurement().State())
}
