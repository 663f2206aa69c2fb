package app

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/philipparndt/arruler/internal/measurement"
	"github.com/philipparndt/arruler/internal/tracking"
	"github.com/philipparndt/arruler/pkg/viewer"
)

const (
	rotateSpeed = 0.01
	zoomSpeed   = 0.001
)

// ARView shows the tracked world and turns taps into measurement steps
type ARView struct {
	widget.BaseWidget

	tracking *tracking.Session
	session  *measurement.Session
	scene    *viewer.Scene
	raster   *canvas.Raster
	logger   zerolog.Logger

	isDragging bool
	onChange   func()
}

// NewARView creates the view over a tracking session
func NewARView(ts *tracking.Session, logger zerolog.Logger) *ARView {
	v := &ARView{
		tracking: ts,
		scene:    viewer.NewScene(),
		logger:   logger,
	}
	v.session = measurement.NewSession(v.scene)
	v.raster = canvas.NewRaster(v.draw)
	v.ExtendBaseWidget(v)
	return v
}

// SetOnChange sets the callback run after every measurement change
func (v *ARView) SetOnChange(callback func()) {
	v.onChange = callback
}

// Measurement returns the measurement session driven by this view
func (v *ARView) Measurement() *measurement.Session {
	return v.session
}

// CreateRenderer creates the renderer for the widget
func (v *ARView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

// MinSize keeps the view usable in small windows
func (v *ARView) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (v *ARView) draw(w, h int) image.Image {
	return v.tracking.Frame(v.scene).Render(w, h)
}

// Tapped hit-tests the tap and advances the measurement
func (v *ARView) Tapped(event *fyne.PointEvent) {
	if v.isDragging {
		return
	}

	size := v.Size()
	tester := v.tracking.HitTester(float64(size.Width), float64(size.Height))
	effects := v.session.Tap(float64(event.Position.X), float64(event.Position.Y), tester)
	if len(effects) == 0 {
		v.logger.Debug().
			Float32("x", event.Position.X).
			Float32("y", event.Position.Y).
			Msg("Tap did not hit a feature")
		return
	}

	for _, effect := range effects {
		logEffect(v.logger, effect)
	}
	v.changed()
}

// Dragged orbits the camera around the world
func (v *ARView) Dragged(event *fyne.DragEvent) {
	v.tracking.Camera().Rotate(float64(event.Dragged.DY)*rotateSpeed, float64(-event.Dragged.DX)*rotateSpeed)
	v.isDragging = true
	v.raster.Refresh()
}

// DragEnd handles the end of a drag event
func (v *ARView) DragEnd() {
	v.isDragging = false
}

// Scrolled moves the camera closer or further away
func (v *ARView) Scrolled(event *fyne.ScrollEvent) {
	v.tracking.Camera().Zoom(-float64(event.Scrolled.DY) * zoomSpeed)
	v.raster.Refresh()
}

// Reset clears the measurement, used when the world is replaced
func (v *ARView) Reset() {
	for _, effect := range v.session.Reset() {
		logEffect(v.logger, effect)
	}
	v.changed()
}

func (v *ARView) changed() {
	v.raster.Refresh()
	if v.onChange != nil {
		v.onChange()
	}
}

// logEffect writes one renderer command to the log
func logEffect(logger zerolog.Logger, effect measurement.Effect) {
	event := logger.Info().Stringer("effect", effect.Kind)
	switch effect.Kind {
	case measurement.PlaceMarker:
		event = event.Stringer("position", effect.Position)
	case measurement.PlaceLabel:
		event = event.Stringer("position", effect.Position).Str("text", effect.Text)
	case measurement.ClearAll:
		event = event.Int("removed", len(effect.Handles))
	}
	event.Msg("Scene updated")
}
